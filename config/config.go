package config

import (
	"os"
	"fmt"
	"gopkg.in/yaml.v3"

	"github.com/r3dacted42/stego/util"
)

/*
 * Server configuration - configuration of the local API server.
 * Besides the API it can serve a few static pages (a web front end, for
 * example), mapped from route pattern to file.
 */
type ServerConfiguration struct {
	Address		string			`yaml:"address"`
	NotFoundPage	string			`yaml:"not_found_page"`
	Pages		map[string]string	`yaml:"pages"`
	MaxBodyBytes	int64			`yaml:"max_body_bytes"`	// limit for a single request body
}

// workers which run the codecs.
type PoolConfig struct {
	Workers		uint	`yaml:"workers"`
	QueueSize	uint	`yaml:"queue_size"`
	Timeout		uint	`yaml:"request_timeout"`	// milliseconds, 0 waits forever
}

type SteganoConfig struct {
	NormalizeMessages	bool	`yaml:"normalize_messages"`
	ImageOutputFormat	string	`yaml:"image_output_format"`	// png or bmp
}

type FullConfig struct {
	ServerConfig	ServerConfiguration	`yaml:"local_server_config"`
	PoolConfig	PoolConfig		`yaml:"pool_config"`
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

func DefaultConfig( logFile string ) *FullConfig {
	return &FullConfig{
		ServerConfig: ServerConfiguration{
			Address: "127.0.0.1:8080",
			NotFoundPage: "www/404.html",
			Pages: map[string]string{},
			MaxBodyBytes: 64 << 20,
		},
		PoolConfig: PoolConfig{
			Workers: 4,
			QueueSize: 16,
			Timeout: 60000,
		},
		StegConfig: SteganoConfig{
			NormalizeMessages: false,
			ImageOutputFormat: "png",
		},
		Logger: util.LoggerInfo{
			Filename: logFile,
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning,
		},
	}
}

func(c *FullConfig) Validate() error {
	switch c.StegConfig.ImageOutputFormat {
	case "png", "bmp":
	default:
		return fmt.Errorf("Unsupported image output format %q, use png or bmp.", c.StegConfig.ImageOutputFormat)
	}
	if c.ServerConfig.Address == "" {
		return fmt.Errorf("Server address is empty.")
	}
	if c.ServerConfig.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive.")
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Missing keys keep their default values.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig( "" )
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}
