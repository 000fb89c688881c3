package util
import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload( t *testing.T ) {
	payload, err := BuildPayload( []byte("Hi") )
	require.NoError( t, err )
	assert.Equal( t, []byte{0x00, 0x00, 0x00, 0x02, 0x48, 0x69}, payload )

	empty, err := BuildPayload( nil )
	require.NoError( t, err )
	assert.Equal( t, []byte{0, 0, 0, 0}, empty )
}

func TestHeaderLength( t *testing.T ) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot hold a length past the header limit")
	}
	limit := uint64(MaxMessageLength)
	n, err := headerLength( int(limit) )
	require.NoError( t, err )
	assert.Equal( t, uint32(0xffffffff), n )

	_, err = headerLength( int(limit + 1) )
	assert.True( t, errors.Is( err, ErrMessageTooLong ) )
}

func TestParsePayload( t *testing.T ) {
	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
		[]byte("привет, мир"),
		bytes.Repeat([]byte("a"), 4096),
	}
	for _, data := range tests {
		payload, err := BuildPayload( data )
		require.NoError( t, err )
		dec, err := ParsePayload( payload )
		require.NoError( t, err )
		if bytes.Equal( data, dec ) == false {
			t.Errorf("Framing spoiled the data. %v != %v", data, dec)
		}
	}
}

func TestParsePayloadErrors( t *testing.T ) {
	_, err := ParsePayload( []byte{0, 0, 1} )
	assert.True( t, errors.Is( err, ErrTruncatedPayload ) )

	_, err = ParsePayload( []byte{0, 0, 0, 5, 'a', 'b'} )
	assert.True( t, errors.Is( err, ErrInsufficientBody ) )

	// trailing garbage after the declared body is ignored
	msg, err := ParsePayload( []byte{0, 0, 0, 1, 'a', 'b', 'c'} )
	require.NoError( t, err )
	assert.Equal( t, []byte("a"), msg )

	// zero header wins over any body
	msg, err = ParsePayload( []byte{0, 0, 0, 0, 'x'} )
	require.NoError( t, err )
	assert.Empty( t, msg )
}

func TestErrorMessages( t *testing.T ) {
	ce := &CapacityError{ Required: 14, Available: 10 }
	assert.Equal( t, "Message is too large (10 bytes) for this image (max 6 bytes).", ce.Error() )

	cl := &CorruptedLengthError{ Scheme: ImageScheme, Declared: 100, Available: 3 }
	assert.Equal( t, "Corrupted data: Message length header is 100 bytes, but only 3 bytes are available.", cl.Error() )

	cl = &CorruptedLengthError{ Scheme: TextScheme, Declared: 8, Available: 2 }
	assert.Equal( t, "Corrupted data: Header indicates 8 bytes, but only 2 were found.", cl.Error() )

	var target *InvalidSymbolError
	err := error( &InvalidSymbolError{ Position: 7 } )
	require.True( t, errors.As( err, &target ) )
	assert.Equal( t, 7, target.Position )
}

func TestMessageString( t *testing.T ) {
	assert.Equal( t, "héllo", MessageString( []byte("héllo") ) )
	assert.Equal( t, "a\uFFFDb", MessageString( []byte{'a', 0xff, 'b'} ) )

	tests := []struct {
		in	[]byte
		want	string
	}{
		// truncated three byte sequence is one replacement
		{ []byte{'a', 0xe2, 0x82, 'b'}, "a\uFFFDb" },
		// truncated four byte sequence at the end
		{ []byte{'x', 0xf0, 0x9f, 0x98}, "x\uFFFD" },
		// surrogate: ED must be followed by 80..9F
		{ []byte{0xed, 0xa0, 0x80}, "\uFFFD\uFFFD\uFFFD" },
		// overlong: E0 must be followed by A0..BF
		{ []byte{0xe0, 0x80, 0x80}, "\uFFFD\uFFFD\uFFFD" },
		{ []byte{0xc0, 0xaf}, "\uFFFD\uFFFD" },
		{ []byte{0xf4, 0x90, 0x80, 0x80}, "\uFFFD\uFFFD\uFFFD\uFFFD" },
		{ []byte{0xe2, 0x82, 0xac, 0xe2}, "\u20ac\uFFFD" },
	}
	for _, tt := range tests {
		assert.Equal( t, tt.want, MessageString( tt.in ), "% x", tt.in )
	}
}

func TestNormalizeMessage( t *testing.T ) {
	// e + combining acute composes into a single code point
	assert.Equal( t, "\u00e9", NormalizeMessage( "e\u0301" ) )
}
