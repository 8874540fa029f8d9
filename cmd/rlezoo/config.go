package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs"
	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command. Values come from the
// optional YAML file given with --config, then from command-line flags.
type Config struct {
	Variant   string `yaml:"variant"`
	Gzip      bool   `yaml:"gzip"`
	GzipLevel int    `yaml:"gzip_level"`
	LogLevel  string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Variant:   "packbits",
		GzipLevel: gzip.BestCompression,
		LogLevel:  "info",
	}
}

// LoadConfig reads the configuration file at path on top of the defaults. An
// empty path gives the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := codecs.Get(c.Variant); err != nil {
		return err
	}
	if c.GzipLevel < gzip.HuffmanOnly || c.GzipLevel > gzip.BestCompression {
		return rlezoo.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("gzip level must be in [%d, %d], got %d",
				gzip.HuffmanOnly, gzip.BestCompression, c.GzipLevel))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return rlezoo.ErrInvalidArgument.Wrap(err)
	}
	return nil
}

// Codec returns the codec for the configured variant.
func (c Config) Codec() (rlezoo.Codec, error) {
	return codecs.Get(c.Variant)
}
