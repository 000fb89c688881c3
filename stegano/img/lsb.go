package img
import (
	"io"

	"github.com/r3dacted42/stego/stegano/util"
)

// CapacityBits is the number of payload bits pixelCount pixels can carry.
func CapacityBits( pixelCount int ) int {
	return pixelCount * BitsPerPixel
}

// MaxMessageBytes is the longest message (header excluded) that fits.
// It goes negative for images that cannot hold even the header.
func MaxMessageBytes( pixelCount int ) int {
	return CapacityBits( pixelCount ) / 8 - util.HeaderSize
}

func pixelCount( pix []byte ) (int, error) {
	if len(pix) % SamplesPerPixel != 0 {
		return 0, util.ErrInvalidPixelBuffer
	}
	return len(pix) / SamplesPerPixel, nil
}

/*
 * EncodeRGBA embeds payload into the least significant bits of the R, G and B
 * samples of pix, MSB first. The input is not modified; the returned buffer is
 * a full copy with alpha samples passed through.
 */
func EncodeRGBA( pix []byte, payload []byte ) ([]byte, error) {
	count, err := pixelCount( pix )
	if err != nil {
		return nil, err
	}
	available := CapacityBits( count )
	if len(payload) * 8 > available {
		return nil, &util.CapacityError{
			Required: len(payload),
			Available: available / 8,
		}
	}

	out := make( []byte, len(pix) )
	copy( out, pix )
	cur := newChannelCursor( len(out) )
	for _, b := range payload {
		if cur.writeByte( out, b ) == false {
			// unreachable after the capacity check
			return nil, io.ErrUnexpectedEOF
		}
	}
	return out, nil
}

/*
 * DecodeRGBA reads the length header and then exactly as many body bytes as
 * it declares. The returned slice is header ++ body, ready for
 * util.ParsePayload.
 */
func DecodeRGBA( pix []byte ) ([]byte, error) {
	count, err := pixelCount( pix )
	if err != nil {
		return nil, err
	}
	available := CapacityBits( count )
	if available < util.HeaderBits {
		return nil, util.ErrHeaderTooShort
	}

	cur := newChannelCursor( len(pix) )
	header, err := readBytes( cur, pix, util.HeaderSize )
	if err != nil {
		return nil, err
	}
	declared, err := util.ReadHeader( header )
	if err != nil {
		return nil, err
	}
	if declared == 0 {
		return header, nil
	}

	remaining := available - util.HeaderBits
	if uint64(declared) * 8 > uint64(remaining) {
		return nil, &util.CorruptedLengthError{
			Scheme: util.ImageScheme,
			Declared: declared,
			Available: remaining / 8,
		}
	}
	body, err := readBytes( cur, pix, int(declared) )
	if err != nil {
		return nil, err
	}
	return append( header, body... ), nil
}

func readBytes( cur *channelCursor, pix []byte, n int ) ([]byte, error) {
	result := make( []byte, n )
	for i := range result {
		b, ok := cur.readByte( pix )
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		result[i] = b
	}
	return result, nil
}

// HideMessage frames message and embeds it into pix.
func HideMessage( pix []byte, message []byte ) ([]byte, error) {
	count, err := pixelCount( pix )
	if err != nil {
		return nil, err
	}
	// same check EncodeRGBA does, but phrased in message bytes up front
	if max := MaxMessageBytes( count ); len(message) > max {
		return nil, &util.CapacityError{
			Required: len(message) + util.HeaderSize,
			Available: max + util.HeaderSize,
		}
	}
	payload, err := util.BuildPayload( message )
	if err != nil {
		return nil, err
	}
	return EncodeRGBA( pix, payload )
}

// RevealMessage extracts and unframes a message hidden with HideMessage.
func RevealMessage( pix []byte ) ([]byte, error) {
	payload, err := DecodeRGBA( pix )
	if err != nil {
		return nil, err
	}
	return util.ParsePayload( payload )
}
