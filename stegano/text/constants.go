package text

const (
	// symbols per payload byte: one per 2-bit pair
	SymbolsPerByte = 4
)

/*
 * The zero-width alphabet. Index is the 2-bit value a character stands for,
 * so the order here is part of the wire format.
 */
var ZeroWidthChars = [SymbolsPerByte]rune{
	'\u200b',	// zero-width space
	'\u200d',	// zero-width joiner
	'\u200c',	// zero-width non-joiner
	'\ufeff',	// zero-width no-break space
}

func SymbolToChar( symbol byte ) rune {
	return ZeroWidthChars[ symbol & 0x3 ]
}

// CharToSymbol returns the 2-bit value of r, or false if r is not in the alphabet.
func CharToSymbol( r rune ) (byte, bool) {
	switch r {
	case ZeroWidthChars[0]:
		return 0, true
	case ZeroWidthChars[1]:
		return 1, true
	case ZeroWidthChars[2]:
		return 2, true
	case ZeroWidthChars[3]:
		return 3, true
	}
	return 0, false
}

func IsZeroWidth( r rune ) bool {
	_, ok := CharToSymbol( r )
	return ok
}
