package img
import (
	"bytes"
	"image"
	"image/png"
)

func encodePNG( m image.Image ) ([]byte, error) {
	buf := new(bytes.Buffer)
	// compression level does not touch pixel values
	enc := png.Encoder{ CompressionLevel: png.BestCompression }
	if err := enc.Encode( buf, m ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
