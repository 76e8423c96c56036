// Package config loads rinfo's display configuration from a YAML file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// CustomAttribute is a named expression evaluated against the probe result.
type CustomAttribute struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// Config holds the display switches and output settings.
type Config struct {
	// OmitCPU hides the CPU section
	OmitCPU bool `yaml:"omitCpu" env:"RINFO_OMIT_CPU"`
	// OmitRAM hides the memory section
	OmitRAM bool `yaml:"omitRam" env:"RINFO_OMIT_RAM"`
	// OmitMotherboard hides the motherboard section
	OmitMotherboard bool `yaml:"omitMotherboard" env:"RINFO_OMIT_MOTHERBOARD"`
	// OmitCaller hides the user and shell
	OmitCaller bool `yaml:"omitCaller" env:"RINFO_OMIT_CALLER"`
	// OmitHostname hides the hostname
	OmitHostname bool `yaml:"omitHostname" env:"RINFO_OMIT_HOSTNAME"`
	// OmitOS hides the operating system section
	OmitOS bool `yaml:"omitOs" env:"RINFO_OMIT_OS"`
	// OmitArt disables the OS art
	OmitArt bool `yaml:"omitArt" env:"RINFO_OMIT_ART"`
	// OmitIP hides the local IP address
	OmitIP bool `yaml:"omitIp" env:"RINFO_OMIT_IP"`
	// VerticalArt prints the art above the information
	VerticalArt bool `yaml:"verticalArt" env:"RINFO_VERTICAL_ART"`

	// Format is the output format, text or json
	Format string `yaml:"format" env:"RINFO_FORMAT"`
	// LogLevel is the logrus level name
	LogLevel string `yaml:"logLevel" env:"RINFO_LOG_LEVEL"`
	// CustomAttributes are extra expressions rendered with the probe
	CustomAttributes []CustomAttribute `yaml:"attributes" env:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "rinfo", "config.yaml"), nil
}

// LoadFile parses the YAML config at path.
// A missing file yields an empty config and no error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// FromEnv parses RINFO_* environment variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}

// Combine merges other into c. A switch enabled in either config stays
// enabled; non-empty settings in other replace those of c, and custom
// attributes accumulate.
func (c *Config) Combine(other *Config) {
	if other == nil {
		return
	}

	c.OmitCPU = c.OmitCPU || other.OmitCPU
	c.OmitRAM = c.OmitRAM || other.OmitRAM
	c.OmitMotherboard = c.OmitMotherboard || other.OmitMotherboard
	c.OmitCaller = c.OmitCaller || other.OmitCaller
	c.OmitHostname = c.OmitHostname || other.OmitHostname
	c.OmitOS = c.OmitOS || other.OmitOS
	c.OmitArt = c.OmitArt || other.OmitArt
	c.OmitIP = c.OmitIP || other.OmitIP
	c.VerticalArt = c.VerticalArt || other.VerticalArt

	if other.Format != "" {
		c.Format = other.Format
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	c.CustomAttributes = append(c.CustomAttributes, other.CustomAttributes...)
}

// Validate checks settings that cannot be expressed as switches.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}

	seen := make(map[string]bool, len(c.CustomAttributes))
	for _, attr := range c.CustomAttributes {
		if attr.Name == "" || attr.Expression == "" {
			return fmt.Errorf("custom attribute %q: name and expression are required", attr.Name)
		}
		if seen[attr.Name] {
			return fmt.Errorf("custom attribute %q defined twice", attr.Name)
		}
		seen[attr.Name] = true
	}
	return nil
}

// ParseCustomAttribute parses a name=expression flag value.
// The expression may itself contain '='.
func ParseCustomAttribute(s string) (CustomAttribute, error) {
	name, expression, found := strings.Cut(s, "=")
	if !found {
		return CustomAttribute{}, fmt.Errorf("invalid attribute %q: expected name=expression", s)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return CustomAttribute{}, fmt.Errorf("invalid attribute %q: empty name", s)
	}
	if strings.TrimSpace(expression) == "" {
		return CustomAttribute{}, fmt.Errorf("invalid attribute %q: empty expression", s)
	}

	return CustomAttribute{Name: name, Expression: expression}, nil
}
