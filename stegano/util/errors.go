package util
import (
	"fmt"
	"errors"
)

var (
	// framing
	ErrTruncatedPayload = errors.New("Payload is shorter than its length header.")
	ErrInsufficientBody = errors.New("Payload body is shorter than the length header declares.")
	ErrMessageTooLong = errors.New("Message does not fit into a 32-bit length header.")

	// decoders
	ErrHeaderTooShort = errors.New("Image is too small to contain a message header.")
	ErrHeaderMissing = errors.New("No message found or data is corrupted (header missing).")

	// carriers
	ErrContextUnavailable = errors.New("Failed to prepare image context")
	ErrEmptyCarrier = errors.New("Carrier text must contain at least one character.")
	ErrCarrierHasZeroWidth = errors.New("Carrier text already contains zero-width characters.")
	ErrInvalidPixelBuffer = errors.New("Pixel buffer is not a whole number of RGBA pixels.")
)

// CapacityError is returned when a payload does not fit into a carrier.
// Both values are payload bytes, i.e. they include the length header.
type CapacityError struct {
	Required	int
	Available	int
}

func(e *CapacityError) Error() string {
	return fmt.Sprintf("Message is too large (%d bytes) for this image (max %d bytes).",
		e.Required - HeaderSize, e.MaxMessage() )
}

// MaxMessage is the largest message the carrier could have held.
func(e *CapacityError) MaxMessage() int {
	return e.Available - HeaderSize
}

type Scheme uint8

const (
	ImageScheme Scheme = iota
	TextScheme
)

// CorruptedLengthError means the header claims more body than the carrier holds.
type CorruptedLengthError struct {
	Scheme		Scheme
	Declared	uint32
	Available	int
}

func(e *CorruptedLengthError) Error() string {
	if e.Scheme == TextScheme {
		return fmt.Sprintf("Corrupted data: Header indicates %d bytes, but only %d were found.",
			e.Declared, e.Available )
	}
	return fmt.Sprintf("Corrupted data: Message length header is %d bytes, but only %d bytes are available.",
		e.Declared, e.Available )
}

// InvalidSymbolError reports a character outside the zero-width alphabet.
// Position is the index of the byte (group of four characters) being decoded.
type InvalidSymbolError struct {
	Position	int
}

func(e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("Corrupted data: Invalid ZW char detected at chunk %d.", e.Position)
}
