package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/usertags/internal/flagx"
	"github.com/dmitrijs2005/usertags/internal/timex"
)

// FileConfig is the on-disk shape of a config file. Only keys present in
// the file override the current values.
type FileConfig struct {
	HTTPAddr        *string         `json:"http_addr" yaml:"http_addr" toml:"http_addr"`
	GRPCAddr        *string         `json:"grpc_addr" yaml:"grpc_addr" toml:"grpc_addr"`
	DataFile        *string         `json:"data_file" yaml:"data_file" toml:"data_file"`
	LogLevel        *string         `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat       *string         `json:"log_format" yaml:"log_format" toml:"log_format"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// decodeFile unmarshals b according to the extension of path.
func decodeFile(path string, b []byte) (*FileConfig, error) {
	c := &FileConfig{}

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	case ".toml":
		err = toml.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return c, nil
}

func (f *FileConfig) apply(config *Config) {
	if f.HTTPAddr != nil {
		config.HTTPAddr = *f.HTTPAddr
	}
	if f.GRPCAddr != nil {
		config.GRPCAddr = *f.GRPCAddr
	}
	if f.DataFile != nil {
		config.DataFile = *f.DataFile
	}
	if f.LogLevel != nil {
		config.LogLevel = *f.LogLevel
	}
	if f.LogFormat != nil {
		config.LogFormat = *f.LogFormat
	}
	if f.ShutdownTimeout != nil {
		config.ShutdownTimeout = f.ShutdownTimeout.Duration
	}
}

// parseFile loads the file named by -c/-config, if any, into config.
// A file that cannot be read or parsed panics.
func parseFile(config *Config, args []string) {

	path := flagx.ConfigFile(args)

	// nothing to load
	if path == "" {
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c, err := decodeFile(path, b)
	if err != nil {
		panic(err)
	}

	c.apply(config)
}
