package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdquiz/internal/fileutil"
	"github.com/alnah/go-mdquiz/internal/logging"
	"github.com/alnah/go-mdquiz/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength  = 4096 // Directory and file paths
	MaxNameLength  = 64   // Style and template set names
	MaxWorkerCount = 64   // Parallel page builds
)

// appConfigDir is the directory name under the user config directory.
const appConfigDir = "go-mdquiz"

// Config holds all configuration for a site build.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	CSS    CSSConfig    `yaml:"css"`
	Assets AssetsConfig `yaml:"assets"`
	Links  LinksConfig  `yaml:"links"`
	Log    LogConfig    `yaml:"log"`
	Build  BuildConfig  `yaml:"build"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// CSSConfig defines page theme options.
// The quiz style is always appended to pages with quizzes.
type CSSConfig struct {
	Style    string `yaml:"style"`    // Theme name or .css file path (empty = built-in default)
	Disabled bool   `yaml:"disabled"` // No page theme at all
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	Template string `yaml:"template"` // Template set name (empty = "default")
}

// LinksConfig defines link handling options.
type LinksConfig struct {
	RewriteMarkdown bool `yaml:"rewriteMarkdown"` // Point .md links at the built .html pages
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error (empty = warn)
	Format string `yaml:"format"` // console, json (empty = console)
}

// BuildConfig defines build execution options.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto from GOMAXPROCS
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., library users).
func (c *Config) Validate() error {
	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"css.style", c.CSS.Style, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.template", c.Assets.Template, MaxNameLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}
	if c.Log.Format != "" {
		switch strings.ToLower(c.Log.Format) {
		case logging.FormatConsole, logging.FormatJSON:
			// valid
		default:
			return fmt.Errorf("%w: log.format %q (must be %s)", ErrInvalidValue, c.Log.Format, strings.Join(logging.ValidFormats, " or "))
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkerCount {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkerCount, c.Build.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// built-in theme and templates, link rewriting on, warnings logged.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		CSS:    CSSConfig{Style: ""},
		Assets: AssetsConfig{BasePath: ""},
		Links:  LinksConfig{RewriteMarkdown: true},
		Log:    LogConfig{Level: logging.DefaultLevel, Format: logging.FormatConsole},
		Build:  BuildConfig{Workers: 0},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory, then ~/.config/go-mdquiz/, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appConfigDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
