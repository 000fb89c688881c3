package util
import (
	"unicode/utf8"
	"golang.org/x/text/unicode/norm"
)

// composes the message so that visually equal strings hide equal bytes.
func NormalizeMessage( in string ) string {
	return norm.NFC.String( in )
}

/*
 * Messages travel as UTF-8. Every maximal invalid subsequence of a recovered
 * message becomes a single U+FFFD, so a truncated multi-byte character
 * yields one replacement, not one per byte.
 */
func MessageString( data []byte ) string {
	if utf8.Valid( data ) {
		return string( data )
	}
	out := make( []rune, 0, len(data) )
	for len(data) > 0 {
		r, size := utf8.DecodeRune( data )
		if r == utf8.RuneError && size == 1 {
			size = invalidSpan( data )
		}
		out = append( out, r )
		data = data[size:]
	}
	return string( out )
}

// length of the invalid sequence starting at data[0]: the lead byte plus
// the continuation bytes that could still have completed it.
func invalidSpan( data []byte ) int {
	lo, hi := byte(0x80), byte(0xbf)
	need := 0
	switch b := data[0]; {
	case b >= 0xc2 && b <= 0xdf:
		need = 1
	case b == 0xe0:
		need, lo = 2, 0xa0
	case b == 0xed:
		need, hi = 2, 0x9f
	case b >= 0xe1 && b <= 0xef:
		need = 2
	case b == 0xf0:
		need, lo = 3, 0x90
	case b == 0xf4:
		need, hi = 3, 0x8f
	case b >= 0xf1 && b <= 0xf3:
		need = 3
	default:
		return 1
	}
	n := 1
	for ; n <= need && n < len(data); n++ {
		if data[n] < lo || data[n] > hi {
			break
		}
		lo, hi = 0x80, 0xbf
	}
	return n
}
