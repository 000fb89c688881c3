package main
import (
	"os"
	"fmt"
	"strings"
	"path/filepath"

	"github.com/r3dacted42/stego/util"
	"github.com/r3dacted42/stego/local"
	"github.com/r3dacted42/stego/config"
	"github.com/r3dacted42/stego/protocol"
	"github.com/r3dacted42/stego/stegano/img"
)

const (
	StegoFolder = ".stego"
	ConfigFilename = "config.yaml"
	LogFilename = "log.log"
)

func main() {

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "-debug" {
		util.DebugMode = true
		args = args[1:]
	}
	if len( args ) < 1 || args[0] == "-h" || args[0] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	stegoFolder := filepath.Join( home, StegoFolder )
	configFile := filepath.Join( stegoFolder, ConfigFilename )

	switch args[0] {
	case "serve":
		if len(args) > 1 {
			configFile = args[1]
		} else if err = ensureConfig( stegoFolder, configFile ); err != nil {
			fatal("Failed to create default configuration:", err)
		}
		if err = local.RunStegoServer( configFile ); err != nil {
			fatal("Failed to run server:", err)
		}
	case "genconf":
		if len(args) > 1 {
			configFile = args[1]
		}
		conf := config.DefaultConfig( filepath.Join( filepath.Dir( configFile ), LogFilename ) )
		if err = config.SaveConfig( configFile, conf ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
		fmt.Println("[+] Configuration written to", configFile)
	case "hide-image", "reveal-image", "capacity", "hide-text", "reveal-text":
		proc := processorFor( configFile )
		if err = runCodec( proc, args[0], args[1:] ); err != nil {
			fatal( err )
		}
	default:
		help()
	}
}

func ensureConfig( folder, configFile string ) error {
	if _, err := os.Stat( configFile ); err == nil {
		return nil
	}
	if err := os.MkdirAll( folder, 0700 ); err != nil {
		return err
	}
	return config.SaveConfig( configFile, config.DefaultConfig( filepath.Join( folder, LogFilename ) ) )
}

// codec commands work without a configuration, but honour one if it exists.
func processorFor( configFile string ) *protocol.Processor {
	conf, err := config.LoadConfig( configFile )
	if err != nil {
		util.DebugPrintln("No usable configuration, using defaults:", err)
		conf = config.DefaultConfig( "" )
	}
	return protocol.NewProcessor( conf.StegConfig.NormalizeMessages, conf.StegConfig.ImageOutputFormat )
}

func messageArg( args []string, idx int ) (string, error) {
	if len(args) > idx {
		return args[idx], nil
	}
	secret, err := util.GetSecret("Message: ")
	return string(secret), err
}

func outputFormat( filename string ) string {
	if strings.HasSuffix( strings.ToLower( filename ), ".bmp" ) {
		return img.FormatBMP
	}
	return img.FormatPNG
}

func runCodec( proc *protocol.Processor, command string, args []string ) error {
	need := map[string]int{
		"hide-image": 2,
		"reveal-image": 1,
		"capacity": 1,
		"hide-text": 2,
		"reveal-text": 1,
	}
	if len(args) < need[command] {
		help()
		return fmt.Errorf("Not enough arguments for %s.", command)
	}
	input, err := os.ReadFile( args[0] )
	if err != nil {
		return fmt.Errorf("Failed to read %s: %w", args[0], err)
	}

	var req protocol.Request
	switch command {
	case "hide-image":
		msg, err := messageArg( args, 2 )
		if err != nil {
			return err
		}
		req = protocol.Request{
			Kind: protocol.ImageFileEncode,
			File: input,
			Message: msg,
			Format: outputFormat( args[1] ),
		}
	case "reveal-image":
		req = protocol.Request{ Kind: protocol.ImageFileDecode, File: input }
	case "capacity":
		req = protocol.Request{ Kind: protocol.ImageFileCapacity, File: input }
	case "hide-text":
		msg, err := messageArg( args, 2 )
		if err != nil {
			return err
		}
		req = protocol.Request{
			Kind: protocol.TextEncode,
			Carrier: strings.TrimRight( string(input), "\n" ),
			Message: msg,
		}
	case "reveal-text":
		req = protocol.Request{ Kind: protocol.TextDecode, EncodedText: string(input) }
	}

	resp := proc.Process( req )
	if resp.Failed() {
		return fmt.Errorf("%s", resp.Error)
	}
	switch command {
	case "hide-image":
		return os.WriteFile( args[1], resp.File, 0660 )
	case "hide-text":
		return os.WriteFile( args[1], []byte(resp.EncodedText), 0660 )
	case "capacity":
		fmt.Println( resp.MaxMessageBytes )
	default:
		fmt.Println( resp.Message )
	}
	return nil
}

func fatal( args ...any ) {
	fmt.Fprintln( os.Stderr, args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./stego [-debug] <command> [arguments]

The following commands are supported:
	serve [config]				run the local API server
	genconf [config]			write a default configuration
	hide-image <in> <out.png|out.bmp> [msg]	hide a message in an image
	reveal-image <in>			print the message hidden in an image
	capacity <in>				print how many message bytes an image holds
	hide-text <carrier> <out> [msg]		hide a message in the text of a file
	reveal-text <in>			print the message hidden in a text file

When [msg] is omitted it is read from the terminal without echo, or from stdin.
`

	fmt.Printf("%s", line)
}
