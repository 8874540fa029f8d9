package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dargueta/rlezoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "rlezoo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadConfig__Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig__File(t *testing.T) {
	path := writeConfig(t, "variant: icns\ngzip: true\ngzip_level: 1\nlog_level: debug\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Variant: "icns", Gzip: true, GzipLevel: 1, LogLevel: "debug"}, cfg)

	codec, err := cfg.Codec()
	require.NoError(t, err)
	assert.Equal(t, "icns", codec.Name())
}

func TestLoadConfig__PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "variant: pcx\n"))
	require.NoError(t, err)
	assert.Equal(t, "pcx", cfg.Variant)
	assert.Equal(t, defaultConfig().GzipLevel, cfg.GzipLevel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig__Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected error
	}{
		{"unknown variant", "variant: rle90\n", rlezoo.ErrUnknownVariant},
		{"bad gzip level", "gzip_level: 12\n", rlezoo.ErrInvalidArgument},
		{"bad log level", "log_level: loud\n", rlezoo.ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.text))
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestLoadConfig__MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig__BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "variant: [unclosed\n"))
	assert.Error(t, err)
}
