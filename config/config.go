//go:build !tinygo

// Package config loads hkdebug settings from TOML, YAML or JSON5 files and
// builds the matching logger on Linux hosts.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"

	"github.com/michcald/hkdebug"
)

// Format is the encoding of a configuration file.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
	FormatJSON5
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON5:
		return "json5"
	default:
		return "unknown"
	}
}

// Backend names accepted in Config.Backend.
const (
	BackendConsole = "console"
	BackendBuffer  = "buffer"
)

const (
	defaultBaud       = 115200
	defaultBufferSize = 4096
)

type Config struct {
	// Level is the threshold name, e.g. "info" or "debug".
	// Defaults to "info".
	Level string `toml:"level" yaml:"level" json:"level"`
	// Tag replaces the default "HomeKit" subsystem tag.
	Tag string `toml:"tag" yaml:"tag" json:"tag"`
	// Backend is "console" or "buffer".
	// Defaults to "console".
	Backend string        `toml:"backend" yaml:"backend" json:"backend"`
	Console ConsoleConfig `toml:"console" yaml:"console" json:"console"`
	Buffer  BufferConfig  `toml:"buffer" yaml:"buffer" json:"buffer"`

	level hkdebug.Level
}

type ConsoleConfig struct {
	// UART is the periph.io port name. Empty means stdout.
	UART string `toml:"uart" yaml:"uart" json:"uart"`
	// Baud defaults to 115200 when UART is set.
	Baud int `toml:"baud" yaml:"baud" json:"baud"`
}

type BufferConfig struct {
	// Size is the ring capacity in bytes.
	// Defaults to 4096.
	Size int `toml:"size" yaml:"size" json:"size"`
}

// Load reads and validates the configuration file at path. The format is
// taken from the extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".json5":
		return FormatJSON5, nil
	default:
		return FormatAuto, errors.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatJSON5:
		err = json5.Unmarshal(data, &cfg)
	default:
		return nil, errors.Errorf("cannot parse config in %s format", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s config", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Level == "" {
		c.Level = hkdebug.DefaultLevel.String()
	}
	level, err := hkdebug.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	c.level = level

	if c.Tag == "" {
		c.Tag = hkdebug.DefaultTag
	}

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case "":
		c.Backend = BackendConsole
	case BackendConsole, BackendBuffer:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}

	if c.Console.UART != "" && c.Console.Baud == 0 {
		c.Console.Baud = defaultBaud
	}
	if c.Console.Baud < 0 {
		return errors.Errorf("invalid baud rate %d", c.Console.Baud)
	}

	if c.Buffer.Size == 0 {
		c.Buffer.Size = defaultBufferSize
	}
	if c.Buffer.Size < 0 {
		return errors.Errorf("invalid buffer size %d", c.Buffer.Size)
	}
	return nil
}

// ParsedLevel returns the threshold resolved by Validate.
func (c *Config) ParsedLevel() hkdebug.Level {
	return c.level
}

// Facility is a logger built from a Config together with the resources it
// owns.
type Facility struct {
	Logger *hkdebug.Logger
	// Ring holds the records of a buffer backend. Nil for console.
	Ring *hkdebug.Ring
	// Level is the runtime threshold of a buffer backend. Nil for console,
	// whose threshold is fixed.
	Level *hkdebug.Runtime

	closer io.Closer
}

// Close releases the UART, if one was opened.
func (f *Facility) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Build creates the logger described by c. Console records go to the
// configured UART, or to stdout when none is set. c must have been validated.
func (c *Config) Build(stdout io.Writer) (*Facility, error) {
	f := &Facility{}
	var backend hkdebug.Backend
	var policy hkdebug.Policy

	switch c.Backend {
	case BackendBuffer:
		f.Ring = hkdebug.NewRing(c.Buffer.Size)
		f.Level = hkdebug.NewRuntime(c.level)
		backend = hkdebug.NewBuffer(f.Ring.LogToBuffer)
		policy = f.Level
	case BackendConsole:
		w := stdout
		if c.Console.UART != "" {
			u, err := hkdebug.OpenUART(hkdebug.UARTConfig{Port: c.Console.UART, Baud: c.Console.Baud})
			if err != nil {
				return nil, errors.Wrap(err, "console")
			}
			w = u
			f.closer = u
		}
		backend = hkdebug.NewConsole(w)
		policy = hkdebug.Static(c.level)
	default:
		return nil, errors.Errorf("unknown backend %q", c.Backend)
	}

	f.Logger = hkdebug.New(
		hkdebug.WithPolicy(policy),
		hkdebug.WithBackend(backend),
		hkdebug.WithTag(c.Tag),
	)
	return f, nil
}
