package protocol
import (
)

/*
 * Request is one unit of work crossing the codec boundary. Only the fields
 * relevant to Kind are read:
 *	ImageEncode		Pix, Width, Height, Message
 *	ImageDecode		Pix, Width, Height
 *	ImageCapacity		Width, Height
 *	TextEncode		Carrier, Message
 *	TextDecode		EncodedText
 *	ImageFileEncode		File, Message, Format
 *	ImageFileDecode		File
 *	ImageFileCapacity	File
 */
type Request struct {
	Kind		uint8
	Pix		[]byte
	Width		int
	Height		int
	Message		string
	Carrier		string
	EncodedText	string
	File		[]byte
	Format		string
}

// Response carries either a result or Error, never both.
type Response struct {
	Pix		[]byte
	File		[]byte
	Message		string
	EncodedText	string
	MaxMessageBytes	int
	Error		string
}

func(r *Response) Failed() bool {
	return r.Error != ""
}

func ErrorResponse( err error ) Response {
	return Response{ Error: err.Error() }
}

// Clone copies every buffer so the request shares no memory with the caller.
func(r Request) Clone() Request {
	if r.Pix != nil {
		r.Pix = append( make( []byte, 0, len(r.Pix) ), r.Pix... )
	}
	if r.File != nil {
		r.File = append( make( []byte, 0, len(r.File) ), r.File... )
	}
	return r
}
