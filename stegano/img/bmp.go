package img
import (
	"bytes"
	"image"
	"golang.org/x/image/bmp"
)

func decodeBMP( data []byte ) (image.Image, error) {
	return bmp.Decode( bytes.NewReader( data ) )
}

func encodeBMP( m image.Image ) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bmp.Encode( buf, m ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
