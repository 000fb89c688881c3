package protocol
import (
	"bytes"
	"math"
	"strings"
	"testing"
	"image"
	"image/png"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3dacted42/stego/stegano/img"
)

func TestProcessImage( t *testing.T ) {
	p := NewProcessor( false, img.FormatPNG )
	pix := bytes.Repeat( []byte{10, 20, 30, 255}, 20 * 10 )

	enc := p.Process( Request{
		Kind: ImageEncode,
		Pix: pix,
		Width: 20,
		Height: 10,
		Message: "Hi there",
	})
	require.False( t, enc.Failed(), enc.Error )
	require.Len( t, enc.Pix, len(pix) )

	dec := p.Process( Request{ Kind: ImageDecode, Pix: enc.Pix, Width: 20, Height: 10 } )
	if diff := cmp.Diff( Response{ Message: "Hi there" }, dec ); diff != "" {
		t.Errorf("unexpected response (-want +got):\n%s", diff)
	}
}

func TestProcessImageErrors( t *testing.T ) {
	p := NewProcessor( false, img.FormatPNG )
	pix := make( []byte, 4 * 4 * 4 )

	tests := []struct {
		name	string
		req	Request
		want	string
	}{
		{
			name: "dimensions do not match buffer",
			req: Request{ Kind: ImageEncode, Pix: pix, Width: 5, Height: 4 },
			want: "Pixel buffer",
		},
		{
			name: "message too large",
			req: Request{ Kind: ImageEncode, Pix: pix, Width: 4, Height: 4, Message: "way too long" },
			want: "Message is too large (12 bytes) for this image (max 2 bytes).",
		},
		{
			name: "header does not fit",
			req: Request{ Kind: ImageDecode, Pix: make( []byte, 40 ), Width: 10, Height: 1 },
			want: "Image is too small to contain a message header.",
		},
		{
			name: "negative dimensions",
			req: Request{ Kind: ImageCapacity, Width: -1, Height: 3 },
			want: "Invalid image dimensions",
		},
		{
			name: "dimensions overflow int",
			req: Request{ Kind: ImageEncode, Pix: pix, Width: math.MaxInt / 2 + 1, Height: 4 },
			want: "Pixel buffer",
		},
		{
			name: "capacity dimensions overflow int",
			req: Request{ Kind: ImageCapacity, Width: math.MaxInt / 2, Height: 2 },
			want: "Invalid image dimensions",
		},
		{
			name: "carrier already holds zero-width characters",
			req: Request{ Kind: TextEncode, Carrier: "a\u200bbc", Message: "Hi" },
			want: "Carrier text already contains zero-width characters.",
		},
		{
			name: "unknown kind",
			req: Request{ Kind: 42 },
			want: "Unknown request kind 42.",
		},
	}
	for _, tt := range tests {
		t.Run( tt.name, func( t *testing.T ) {
			resp := p.Process( tt.req )
			require.True( t, resp.Failed() )
			assert.Contains( t, resp.Error, tt.want )
		})
	}
}

func TestProcessCapacity( t *testing.T ) {
	p := NewProcessor( false, img.FormatPNG )
	resp := p.Process( Request{ Kind: ImageCapacity, Width: 100, Height: 100 } )
	if diff := cmp.Diff( Response{ MaxMessageBytes: 3746 }, resp ); diff != "" {
		t.Errorf("unexpected response (-want +got):\n%s", diff)
	}
}

func TestProcessText( t *testing.T ) {
	p := NewProcessor( true, img.FormatPNG )
	enc := p.Process( Request{ Kind: TextEncode, Carrier: "abc", Message: "e\u0301" } )
	require.False( t, enc.Failed(), enc.Error )
	assert.True( t, strings.HasPrefix( enc.EncodedText, "a" ) )

	dec := p.Process( Request{ Kind: TextDecode, EncodedText: enc.EncodedText } )
	// normalisation composed the accent before hiding
	assert.Equal( t, Response{ Message: "\u00e9" }, dec )

	bad := p.Process( Request{ Kind: TextEncode, Carrier: "", Message: "x" } )
	assert.True( t, bad.Failed() )

	missing := p.Process( Request{ Kind: TextDecode, EncodedText: "plain" } )
	assert.Equal( t, "No message found or data is corrupted (header missing).", missing.Error )
}

func TestProcessImageFile( t *testing.T ) {
	m := image.NewNRGBA( image.Rect( 0, 0, 16, 16 ) )
	for i := range m.Pix {
		m.Pix[i] = byte(i)
	}
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i] = 0xff
	}
	buf := new(bytes.Buffer)
	require.NoError( t, png.Encode( buf, m ) )

	p := NewProcessor( false, img.FormatBMP )
	capResp := p.Process( Request{ Kind: ImageFileCapacity, File: buf.Bytes() } )
	assert.Equal( t, img.MaxMessageBytes( 256 ), capResp.MaxMessageBytes )

	enc := p.Process( Request{ Kind: ImageFileEncode, File: buf.Bytes(), Message: "file secret" } )
	require.False( t, enc.Failed(), enc.Error )
	assert.Equal( t, img.FormatBMP, img.DetectFormat( enc.File ) )

	dec := p.Process( Request{ Kind: ImageFileDecode, File: enc.File } )
	assert.Equal( t, "file secret", dec.Message )

	broken := p.Process( Request{ Kind: ImageFileDecode, File: []byte("nope") } )
	assert.Contains( t, broken.Error, "Failed to prepare image context" )
}

func TestRequestClone( t *testing.T ) {
	req := Request{ Kind: ImageDecode, Pix: []byte{1, 2, 3, 4}, File: []byte{5} }
	c := req.Clone()
	c.Pix[0] = 9
	c.File[0] = 9
	assert.Equal( t, byte(1), req.Pix[0] )
	assert.Equal( t, byte(5), req.File[0] )
}
