package text
import (
	"github.com/r3dacted42/stego/stegano/util"
)

// Hide frames data and hides it in decoy.
func Hide( decoy string, data []byte ) (string, error) {
	payload, err := util.BuildPayload( data )
	if err != nil {
		return "", err
	}
	return EncodeZeroWidth( decoy, payload )
}

func Reveal( encoded string ) ([]byte, error) {
	payload, err := DecodeZeroWidth( encoded )
	if err != nil {
		return nil, err
	}
	return util.ParsePayload( payload )
}
