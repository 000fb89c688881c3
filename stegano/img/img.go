package img
import (
	"fmt"
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"

	"github.com/r3dacted42/stego/stegano/util"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"
	FormatGIF = "gif"
	FormatJPEG = "jpeg"
)

// determine the container by its magic bytes.
func DetectFormat( data []byte ) string {
	if len(data) >= 3 && data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 {
		return FormatGIF
	}
	if len(data) >= 8 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a {
		return FormatPNG
	}
	if len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff {
		return FormatJPEG
	}
	if len(data) >= 2 && data[0] == 0x42 && data[1] == 0x4d {
		return FormatBMP
	}
	return ""
}

// Surface is a decoded image as a flat straight-alpha RGBA sample buffer.
type Surface struct {
	Pix	[]byte
	Width	int
	Height	int
}

func(s *Surface) PixelCount() int {
	return s.Width * s.Height
}

/*
 * ToRGBA decodes an image file into a Surface. Every failure here means the
 * drawing surface could not be prepared, so it is reported as
 * util.ErrContextUnavailable.
 */
func ToRGBA( data []byte ) (*Surface, error) {
	var (
		src image.Image
		err error
	)
	switch DetectFormat( data ) {
	case FormatBMP:
		src, err = decodeBMP( data )
	case FormatPNG, FormatGIF, FormatJPEG:
		src, _, err = image.Decode( bytes.NewReader( data ) )
	default:
		err = fmt.Errorf("Unsupported image format.")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrContextUnavailable, err)
	}
	return surfaceFrom( src ), nil
}

func surfaceFrom( src image.Image ) *Surface {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make( []byte, width * height * SamplesPerPixel )

	if nrgba, ok := src.(*image.NRGBA); ok {
		// already straight alpha, copy rows as they are
		for y := 0; y < height; y++ {
			from := nrgba.PixOffset( bounds.Min.X, bounds.Min.Y + y )
			copy( pix[y * width * SamplesPerPixel:(y + 1) * width * SamplesPerPixel],
				nrgba.Pix[from:from + width * SamplesPerPixel] )
		}
	} else {
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert( src.At( x, y ) ).(color.NRGBA)
				pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
				i += SamplesPerPixel
			}
		}
	}
	return &Surface{ pix, width, height }
}

func(s *Surface) toImage() (*image.NRGBA, error) {
	if s.Width < 0 || s.Height < 0 || s.Width * s.Height * SamplesPerPixel != len(s.Pix) {
		return nil, util.ErrInvalidPixelBuffer
	}
	return &image.NRGBA{
		Pix: s.Pix,
		Stride: s.Width * SamplesPerPixel,
		Rect: image.Rect( 0, 0, s.Width, s.Height ),
	}, nil
}

// FromRGBA writes a Surface back into a lossless container.
func FromRGBA( s *Surface, format string ) ([]byte, error) {
	m, err := s.toImage()
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatPNG, "":
		return encodePNG( m )
	case FormatBMP:
		return encodeBMP( m )
	default:
		return nil, fmt.Errorf("Unsupported output format %q, only png and bmp keep the hidden bits.", format)
	}
}

/*
 * Whole-file helpers: decode the carrier image, hide or reveal, and for
 * hiding write the result into format.
 */
func HideInImage( decoy, message []byte, format string ) ([]byte, error) {
	s, err := ToRGBA( decoy )
	if err != nil {
		return nil, err
	}
	pix, err := HideMessage( s.Pix, message )
	if err != nil {
		return nil, err
	}
	return FromRGBA( &Surface{ pix, s.Width, s.Height }, format )
}

func RevealFromImage( decoy []byte ) ([]byte, error) {
	s, err := ToRGBA( decoy )
	if err != nil {
		return nil, err
	}
	return RevealMessage( s.Pix )
}

func ImageCapacity( decoy []byte ) (int, error) {
	s, err := ToRGBA( decoy )
	if err != nil {
		return 0, err
	}
	return MaxMessageBytes( s.PixelCount() ), nil
}
