// Package config loads the CLI configuration file. YAML and TOML files are
// supported and picked by extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/reoring/datagraph"
	"github.com/reoring/datagraph/processor"
	"github.com/reoring/datagraph/reader"
	"github.com/reoring/datagraph/writer"
)

var (
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	ErrInvalid           = errors.New("config: invalid value")
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the content of a configuration file.
type Config struct {
	// Namespace is declared on SOAP bodies.
	Namespace string `yaml:"namespace" toml:"namespace"`
	// Format names the writer used when none is requested.
	Format string `yaml:"format" toml:"format"`
	// Callback is the JSONP callback name.
	Callback string `yaml:"callback" toml:"callback"`
	// XMLNamespace is declared on XML documents.
	XMLNamespace string `yaml:"xml_namespace" toml:"xml_namespace"`
	// RepeatKey selects the repeated element layout for XML arrays.
	RepeatKey bool   `yaml:"repeat_key" toml:"repeat_key"`
	Color     string `yaml:"color" toml:"color"`
	Parse     Parse  `yaml:"parse" toml:"parse"`
}

// Parse holds the JSON reader limits.
type Parse struct {
	MaxDepth   int    `yaml:"max_depth" toml:"max_depth"`
	MaxBytes   int64  `yaml:"max_bytes" toml:"max_bytes"`
	Duplicates string `yaml:"duplicates" toml:"duplicates"` // ignore, warn or error
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		Namespace: processor.DefaultNamespace,
		Format:    processor.JSON,
		Color:     ColorAuto,
		Parse:     Parse{Duplicates: "error"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	if c.Parse.MaxDepth < 0 || c.Parse.MaxBytes < 0 {
		return fmt.Errorf("%w: negative parse limit", ErrInvalid)
	}
	_, err := c.ParseOpt()
	return err
}

// ParseOpt converts the parse section.
func (c *Config) ParseOpt() (datagraph.ParseOpt, error) {
	opt := datagraph.ParseOpt{MaxDepth: c.Parse.MaxDepth, MaxBytes: c.Parse.MaxBytes}
	switch strings.ToLower(c.Parse.Duplicates) {
	case "", "error":
		opt.Strictness.OnDuplicateKey = datagraph.Error
	case "warn":
		opt.Strictness.OnDuplicateKey = datagraph.Warn
	case "ignore":
		opt.Strictness.OnDuplicateKey = datagraph.Ignore
	default:
		return opt, fmt.Errorf("%w: duplicates %q", ErrInvalid, c.Parse.Duplicates)
	}
	return opt, nil
}

// Processor builds the processor configuration described by c.
func (c *Config) Processor() (*processor.Configuration, error) {
	opt, err := c.ParseOpt()
	if err != nil {
		return nil, err
	}
	pc := processor.DefaultConfiguration(c.Namespace)
	pc.Readers.Add(processor.JSON, &reader.JSON{Parse: opt}, 16)
	pc.Writers.Add(processor.JSONP, writer.NewJSONP(c.Callback), 16)
	pc.Writers.Add(processor.XML, &writer.XML{Namespace: c.XMLNamespace, RepeatKey: c.RepeatKey}, 0)
	return pc, nil
}
