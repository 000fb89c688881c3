package local
import (
)

/*
 * JSON bodies of the local API. Byte buffers ([]byte) travel as standard
 * base64 strings, which is what encoding/json does with them anyway.
 */
type ImageEncodeRequest struct {
	Pix		[]byte		`json:"pixel_buffer"`	// RGBA samples, row by row
	Width		int		`json:"width"`
	Height		int		`json:"height"`
	Message		string		`json:"message"`
}

type ImageDecodeRequest struct {
	Pix		[]byte		`json:"pixel_buffer"`
	Width		int		`json:"width"`
	Height		int		`json:"height"`
}

type ImageCapacityRequest struct {
	Width		int		`json:"width"`
	Height		int		`json:"height"`
}

type TextEncodeRequest struct {
	Carrier		string		`json:"carrier"`
	Message		string		`json:"message"`
}

type TextDecodeRequest struct {
	EncodedText	string		`json:"encoded_text"`
}

// a whole image file, in any format the server can read.
type ImageFileRequest struct {
	File		[]byte		`json:"file"`
	Message		string		`json:"message,omitempty"`	// only for hiding
	Format		string		`json:"format,omitempty"`	// png or bmp, only for hiding
}

type PixelsResult struct {
	Pix		[]byte		`json:"pixel_buffer"`
}

type MessageResult struct {
	Message		string		`json:"message"`
}

type CapacityResult struct {
	MaxMessageBytes	int		`json:"max_message_bytes"`
}

type TextResult struct {
	EncodedText	string		`json:"encoded_text"`
}

type FileResult struct {
	File		[]byte		`json:"file"`
}

type ErrorResult struct {
	Error		string		`json:"error"`
}
