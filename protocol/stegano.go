package protocol
import (
	"fmt"
	"math"

	"github.com/r3dacted42/stego/util"
	"github.com/r3dacted42/stego/stegano/img"
	"github.com/r3dacted42/stego/stegano/text"
	steganoutil "github.com/r3dacted42/stego/stegano/util"
)

/*
 * Processor turns a Request into a Response. Every codec error is flattened
 * into Response.Error here, so nothing unstructured leaves this package.
 */
type Processor struct {
	NormalizeMessages	bool	// NFC-normalise messages before hiding them
	OutputFormat		string	// container for ImageFileEncode when the request has none
}

func NewProcessor( normalize bool, outputFormat string ) *Processor {
	return &Processor{ normalize, outputFormat }
}

func(p *Processor) message( m string ) []byte {
	if p.NormalizeMessages {
		m = steganoutil.NormalizeMessage( m )
	}
	return []byte( m )
}

func checkDimensions( pix []byte, width, height int ) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("Invalid image dimensions %dx%d.", width, height)
	}
	pixels := len(pix) / img.SamplesPerPixel
	// compared by division first, width * height may not fit in an int
	if height != 0 && width > pixels / height ||
		width * height * img.SamplesPerPixel != len(pix) {
		return fmt.Errorf("%w (%d samples for %dx%d)",
			steganoutil.ErrInvalidPixelBuffer, len(pix), width, height)
	}
	return nil
}

func(p *Processor) Process( req Request ) Response {
	switch req.Kind {
	case ImageEncode:
		if err := checkDimensions( req.Pix, req.Width, req.Height ); err != nil {
			return ErrorResponse( err )
		}
		pix, err := img.HideMessage( req.Pix, p.message( req.Message ) )
		if err != nil {
			return ErrorResponse( err )
		}
		return Response{ Pix: pix }

	case ImageDecode:
		if err := checkDimensions( req.Pix, req.Width, req.Height ); err != nil {
			return ErrorResponse( err )
		}
		msg, err := img.RevealMessage( req.Pix )
		if err != nil {
			return ErrorResponse( err )
		}
		return Response{ Message: steganoutil.MessageString( msg ) }

	case ImageCapacity:
		// capacity is counted in bits, width * height * 3 must fit in an int
		if req.Width < 0 || req.Height < 0 ||
			req.Height != 0 && req.Width > math.MaxInt / img.BitsPerPixel / req.Height {
			return ErrorResponse( fmt.Errorf("Invalid image dimensions %dx%d.", req.Width, req.Height) )
		}
		return Response{ MaxMessageBytes: img.MaxMessageBytes( req.Width * req.Height ) }

	case TextEncode:
		enc, err := text.Hide( req.Carrier, p.message( req.Message ) )
		if err != nil {
			return ErrorResponse( err )
		}
		return Response{ EncodedText: enc }

	case TextDecode:
		msg, err := text.Reveal( req.EncodedText )
		if err != nil {
			return ErrorResponse( err )
		}
		return Response{ Message: steganoutil.MessageString( msg ) }

	case ImageFileEncode:
		format := req.Format
		if format == "" {
			format = p.OutputFormat
		}
		data, err := img.HideInImage( req.File, p.message( req.Message ), format )
		if err != nil {
			return ErrorResponse( err )
		}
		return Response{ File: data }

	case ImageFileDecode:
		msg, err := img.RevealFromImage( req.File )
		if err != nil {
			return ErrorResponse( err )
		}
		return Response{ Message: steganoutil.MessageString( msg ) }

	case ImageFileCapacity:
		max, err := img.ImageCapacity( req.File )
		if err != nil {
			return ErrorResponse( err )
		}
		return Response{ MaxMessageBytes: max }
	}
	util.DebugPrintln("[-] Unknown request kind", req.Kind)
	return ErrorResponse( fmt.Errorf("Unknown request kind %d.", req.Kind) )
}
