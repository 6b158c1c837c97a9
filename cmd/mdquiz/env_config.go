package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdquiz/internal/config"
	"github.com/alnah/go-mdquiz/internal/logging"
)

// envPrefix starts every environment variable read by mdquiz.
const envPrefix = "MDQUIZ_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDQUIZ_CONFIG: config file name or path
	Style      string // MDQUIZ_STYLE: theme name or CSS path
	AssetPath  string // MDQUIZ_ASSET_PATH: custom asset directory
	Template   string // MDQUIZ_TEMPLATE: quiz template set name
	InputDir   string // MDQUIZ_INPUT_DIR: default input directory
	OutputDir  string // MDQUIZ_OUTPUT_DIR: default output directory
	LogLevel   string // MDQUIZ_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // MDQUIZ_LOG_FORMAT: console, json
	Workers    int    // MDQUIZ_WORKERS: parallel page builds
}

// knownEnvVars lists valid MDQUIZ_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDQUIZ_CONFIG":     true,
	"MDQUIZ_STYLE":      true,
	"MDQUIZ_ASSET_PATH": true,
	"MDQUIZ_TEMPLATE":   true,
	"MDQUIZ_INPUT_DIR":  true,
	"MDQUIZ_OUTPUT_DIR": true,
	"MDQUIZ_LOG_LEVEL":  true,
	"MDQUIZ_LOG_FORMAT": true,
	"MDQUIZ_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDQUIZ_CONFIG"),
		Style:      os.Getenv("MDQUIZ_STYLE"),
		AssetPath:  os.Getenv("MDQUIZ_ASSET_PATH"),
		Template:   os.Getenv("MDQUIZ_TEMPLATE"),
		InputDir:   os.Getenv("MDQUIZ_INPUT_DIR"),
		OutputDir:  os.Getenv("MDQUIZ_OUTPUT_DIR"),
		LogLevel:   os.Getenv("MDQUIZ_LOG_LEVEL"),
		LogFormat:  os.Getenv("MDQUIZ_LOG_FORMAT"),
	}

	// Invalid or non-positive worker counts are ignored
	if workers := os.Getenv("MDQUIZ_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized MDQUIZ_* variables.
// Helps catch typos like MDQUIZ_TEMPLATES instead of MDQUIZ_TEMPLATE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty, zero,
// or still the default. This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Template != "" && cfg.Assets.Template == "" {
		cfg.Assets.Template = env.Template
	}

	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.LogLevel != "" && (cfg.Log.Level == "" || cfg.Log.Level == logging.DefaultLevel) {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" && (cfg.Log.Format == "" || cfg.Log.Format == logging.FormatConsole) {
		cfg.Log.Format = env.LogFormat
	}

	if env.Workers > 0 && cfg.Build.Workers == 0 {
		cfg.Build.Workers = env.Workers
	}
}
