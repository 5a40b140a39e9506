// Package config handles configuration for the usertags server,
// including defaults, a JSON/YAML/TOML file overlay, and command-line flags.
package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/usertags/internal/common"
)

// Config holds runtime settings for the usertags server.
//
// Fields:
//   - HTTPAddr: bind address for the JSON HTTP API.
//   - GRPCAddr: bind address for the gRPC endpoint.
//   - DataFile: path of the tag store's JSON data file.
//   - LogLevel / LogFormat: slog level (debug, info, warn, error) and
//     handler format (json, text).
//   - ShutdownTimeout: how long the HTTP server may drain on shutdown.
type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	DataFile        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8000"
	c.GRPCAddr = ":50051"
	c.DataFile = common.DefaultDataFile
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config from os.Args by applying defaults, then
// overlaying values from an optional config file and finally from
// command-line flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
