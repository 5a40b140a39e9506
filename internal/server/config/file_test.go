package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "cfg.json",
			content: `{
  "http_addr": "www.example:8080",
  "grpc_addr": "www.example:9090",
  "data_file": "tags.json",
  "log_level": "debug",
  "log_format": "text",
  "shutdown_timeout": "2s"
}`,
		},
		{
			name: "yaml",
			file: "cfg.yml",
			content: `http_addr: "www.example:8080"
grpc_addr: "www.example:9090"
data_file: tags.json
log_level: debug
log_format: text
shutdown_timeout: 2s
`,
		},
		{
			name: "toml",
			file: "cfg.toml",
			content: `http_addr = "www.example:8080"
grpc_addr = "www.example:9090"
data_file = "tags.json"
log_level = "debug"
log_format = "text"
shutdown_timeout = "2s"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)

			cfg := &Config{}
			parseFile(cfg, []string{"-config", path})

			assert.Equal(t, "www.example:8080", cfg.HTTPAddr)
			assert.Equal(t, "www.example:9090", cfg.GRPCAddr)
			assert.Equal(t, "tags.json", cfg.DataFile)
			assert.Equal(t, "debug", cfg.LogLevel)
			assert.Equal(t, "text", cfg.LogFormat)
			assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
		})
	}
}

func Test_parseFile_PartialFileKeepsOtherValues(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{"grpc_addr": ":7000"}`)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, []string{"-c", path})

	assert.Equal(t, ":7000", cfg.GRPCAddr)
	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "user_tags.json", cfg.DataFile)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func Test_parseFile_NoConfigNoChanges(t *testing.T) {
	cfg := &Config{HTTPAddr: "defaults:1234", DataFile: "vault.json"}
	parseFile(cfg, []string{"-a", ":1"})

	assert.Equal(t, "defaults:1234", cfg.HTTPAddr)
	assert.Equal(t, "vault.json", cfg.DataFile)
}

func Test_parseFile_Panics(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "invalid json", path: writeTempFile(t, "bad.json", `{ this is not valid json`)},
		{name: "invalid duration", path: writeTempFile(t, "bad.yaml", "shutdown_timeout: soon\n")},
		{name: "unknown extension", path: writeTempFile(t, "cfg.ini", "a=b")},
		{name: "missing file", path: filepath.Join(t.TempDir(), "absent.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			require.Panics(t, func() { parseFile(cfg, []string{"-c", tt.path}) })
		})
	}
}
