package protocol

// kinds of work a request can carry.
// that's a pity Go does not have enumerations...
const (
	ImageEncode = uint8(0)		// hide a message in an RGBA pixel buffer
	ImageDecode = uint8(1)		// reveal a message from an RGBA pixel buffer
	ImageCapacity = uint8(2)	// max message size for width x height
	TextEncode = uint8(3)		// hide a message in a carrier string
	TextDecode = uint8(4)		// reveal a message from an encoded string

	// the same as above, but for whole image files
	ImageFileEncode = uint8(5)
	ImageFileDecode = uint8(6)
	ImageFileCapacity = uint8(7)

	// border values for validation of requests
	MinKind = ImageEncode
	MaxKind = ImageFileCapacity
)

func KindName( kind uint8 ) string {
	switch kind {
	case ImageEncode:
		return "image-encode"
	case ImageDecode:
		return "image-decode"
	case ImageCapacity:
		return "image-capacity"
	case TextEncode:
		return "text-encode"
	case TextDecode:
		return "text-decode"
	case ImageFileEncode:
		return "image-file-encode"
	case ImageFileDecode:
		return "image-file-decode"
	case ImageFileCapacity:
		return "image-file-capacity"
	}
	return "unknown"
}
