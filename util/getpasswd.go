package util
import (
	"io"
	"os"
	"fmt"
	"strings"
	"golang.org/x/term"
)

// reads a secret without echoing it. When stdin is not a terminal
// (a pipe or a file) the whole input is the secret.
func GetSecret( prompt string ) ([]byte, error) {
	fd := int( os.Stdin.Fd() )
	if term.IsTerminal( fd ) == false {
		data, err := io.ReadAll( os.Stdin )
		if err != nil {
			return nil, err
		}
		return []byte( strings.TrimRight( string(data), "\r\n" ) ), nil
	}
	fmt.Fprint( os.Stderr, prompt )
	secret, err := term.ReadPassword( fd )
	fmt.Fprintln( os.Stderr )
	return secret, err
}
