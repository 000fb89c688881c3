package util
import (
	"encoding/binary"
)

const (
	// size of the big-endian length prefix in front of every message
	HeaderSize = 4
	HeaderBits = HeaderSize * 8

	// largest message the header can declare
	MaxMessageLength = 1<<32 - 1
)

/*
 * PayloadFramer.
 * Both carrier schemes move the same buffer around:
 *	[ uint32 big-endian length ][ message bytes ]
 * so building and parsing it lives here and nowhere else.
 */
func BuildPayload( message []byte ) ([]byte, error) {
	length, err := headerLength( len(message) )
	if err != nil {
		return nil, err
	}
	payload := make( []byte, HeaderSize + len(message) )
	binary.BigEndian.PutUint32( payload, length )
	copy( payload[HeaderSize:], message )
	return payload, nil
}

func headerLength( n int ) (uint32, error) {
	if uint64(n) > MaxMessageLength {
		return 0, ErrMessageTooLong
	}
	return uint32(n), nil
}

// ReadHeader returns the declared message length of a payload.
func ReadHeader( payload []byte ) (uint32, error) {
	if len(payload) < HeaderSize {
		return 0, ErrTruncatedPayload
	}
	return binary.BigEndian.Uint32( payload[:HeaderSize] ), nil
}

// ParsePayload validates the header against the body and returns the message.
// A zero length header is an empty message, even if more bytes follow.
func ParsePayload( payload []byte ) ([]byte, error) {
	declared, err := ReadHeader( payload )
	if err != nil {
		return nil, err
	}
	if declared == 0 {
		return []byte{}, nil
	}
	if uint64(len(payload) - HeaderSize) < uint64(declared) {
		return nil, ErrInsufficientBody
	}
	message := make( []byte, declared )
	copy( message, payload[HeaderSize:HeaderSize + int(declared)] )
	return message, nil
}
