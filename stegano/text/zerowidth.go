package text
import (
	"strings"

	"github.com/r3dacted42/stego/stegano/util"
)

// symbols of one byte, least significant pair first.
func encodeByte( b byte, dst []rune ) {
	for i := 0; i < SymbolsPerByte; i++ {
		dst[i] = SymbolToChar( b >> (2 * i) )
	}
}

func decodeByte( group []rune, position int ) (byte, error) {
	b := byte(0)
	for i := SymbolsPerByte - 1; i >= 0; i-- {
		symbol, ok := CharToSymbol( group[i] )
		if !ok {
			return 0, &util.InvalidSymbolError{ Position: position }
		}
		b = (b << 2) | symbol
	}
	return b, nil
}

/*
 * EncodeZeroWidth interleaves payload into carrier.
 * The zero-width stream is cut into chunks of ceil(len / (n-1)) symbols for a
 * carrier of n characters, and chunk i follows carrier character i. Most of
 * the stream ends up behind the first characters and the last character
 * never gets one. A single character carrier takes the whole stream.
 * Carriers holding alphabet characters are refused, their symbols would be
 * read back as part of the payload.
 */
func EncodeZeroWidth( carrier string, payload []byte ) (string, error) {
	visible := []rune( carrier )
	if len(visible) == 0 {
		return "", util.ErrEmptyCarrier
	}
	if strings.IndexFunc( carrier, IsZeroWidth ) >= 0 {
		return "", util.ErrCarrierHasZeroWidth
	}

	stream := make( []rune, len(payload) * SymbolsPerByte )
	for i, b := range payload {
		encodeByte( b, stream[i * SymbolsPerByte:] )
	}

	divisor := len(visible) - 1
	if divisor == 0 {
		divisor = 1
	}
	partLength := (len(stream) + divisor - 1) / divisor

	var sb strings.Builder
	sb.Grow( len(carrier) + len(stream) * 3 )
	for i, r := range visible {
		sb.WriteRune( r )
		from := min( i * partLength, len(stream) )
		to := min( from + partLength, len(stream) )
		for _, z := range stream[from:to] {
			sb.WriteRune( z )
		}
	}
	return sb.String(), nil
}

// Extract keeps only the zero-width alphabet characters of s, in order.
func Extract( s string ) []rune {
	stream := []rune{}
	for _, r := range s {
		if IsZeroWidth( r ) {
			stream = append( stream, r )
		}
	}
	return stream
}

// Visible returns s without any zero-width alphabet character.
func Visible( s string ) string {
	return strings.Map( func( r rune ) rune {
		if IsZeroWidth( r ) {
			return -1
		}
		return r
	}, s )
}

/*
 * DecodeZeroWidth recovers the payload (header ++ body) from an encoded
 * string. Where the zero-width characters sit does not matter, only their
 * order.
 */
func DecodeZeroWidth( encoded string ) ([]byte, error) {
	stream := Extract( encoded )
	if len(stream) < util.HeaderSize * SymbolsPerByte {
		return nil, util.ErrHeaderMissing
	}

	// a trailing partial group is dropped
	payload := make( []byte, len(stream) / SymbolsPerByte )
	for i := range payload {
		b, err := decodeByte( stream[i * SymbolsPerByte:(i + 1) * SymbolsPerByte], i )
		if err != nil {
			return nil, err
		}
		payload[i] = b
	}

	declared, err := util.ReadHeader( payload )
	if err != nil {
		return nil, err
	}
	body := len(payload) - util.HeaderSize
	if uint64(declared) > uint64(body) {
		return nil, &util.CorruptedLengthError{
			Scheme: util.TextScheme,
			Declared: declared,
			Available: body,
		}
	}
	return payload[:util.HeaderSize + int(declared)], nil
}
