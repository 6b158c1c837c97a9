package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// - applyEnvConfig: priority behavior is tested (env doesn't override config).

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-mdquiz/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("MDQUIZ_CONFIG", "/path/to/site.yaml")
		t.Setenv("MDQUIZ_STYLE", "default")
		t.Setenv("MDQUIZ_ASSET_PATH", "/assets")
		t.Setenv("MDQUIZ_TEMPLATE", "compact")
		t.Setenv("MDQUIZ_INPUT_DIR", "/input")
		t.Setenv("MDQUIZ_OUTPUT_DIR", "/output")
		t.Setenv("MDQUIZ_LOG_LEVEL", "debug")
		t.Setenv("MDQUIZ_LOG_FORMAT", "json")
		t.Setenv("MDQUIZ_WORKERS", "4")

		cfg := loadEnvConfig()

		want := envConfig{
			ConfigPath: "/path/to/site.yaml",
			Style:      "default",
			AssetPath:  "/assets",
			Template:   "compact",
			InputDir:   "/input",
			OutputDir:  "/output",
			LogLevel:   "debug",
			LogFormat:  "json",
			Workers:    4,
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		for _, v := range []string{"abc", "-2", "0"} {
			t.Setenv("MDQUIZ_WORKERS", v)
			if cfg := loadEnvConfig(); cfg.Workers != 0 {
				t.Errorf("MDQUIZ_WORKERS=%q: Workers = %d, want 0", v, cfg.Workers)
			}
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("MDQUIZ_TEMPLATES", "typo")
	t.Setenv("MDQUIZ_STYLE", "default")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)
	output := buf.String()

	if !strings.Contains(output, "MDQUIZ_TEMPLATES") {
		t.Errorf("output = %q, want warning for MDQUIZ_TEMPLATES", output)
	}
	if strings.Contains(output, "MDQUIZ_STYLE") {
		t.Errorf("output = %q, known variable should not warn", output)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		Style:     "env-style",
		AssetPath: "/env/assets",
		Template:  "env-template",
		InputDir:  "/env/in",
		OutputDir: "/env/out",
		LogLevel:  "info",
		LogFormat: "json",
		Workers:   6,
	}

	t.Run("fills defaults", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.CSS.Style != "env-style" || cfg.Assets.BasePath != "/env/assets" || cfg.Assets.Template != "env-template" {
			t.Errorf("assets not applied: %+v", cfg)
		}
		if cfg.Input.DefaultDir != "/env/in" || cfg.Output.DefaultDir != "/env/out" {
			t.Errorf("directories not applied: %+v", cfg)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v, want info/json", cfg.Log)
		}
		if cfg.Build.Workers != 6 {
			t.Errorf("Build.Workers = %d, want 6", cfg.Build.Workers)
		}
	})

	t.Run("does not override config file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.CSS.Style = "file-style"
		cfg.Assets.Template = "file-template"
		cfg.Input.DefaultDir = "/file/in"
		cfg.Log.Level = "error"
		cfg.Build.Workers = 2
		applyEnvConfig(env, cfg)

		if cfg.CSS.Style != "file-style" {
			t.Errorf("CSS.Style = %q, want file-style", cfg.CSS.Style)
		}
		if cfg.Assets.Template != "file-template" {
			t.Errorf("Assets.Template = %q, want file-template", cfg.Assets.Template)
		}
		if cfg.Input.DefaultDir != "/file/in" {
			t.Errorf("Input.DefaultDir = %q, want /file/in", cfg.Input.DefaultDir)
		}
		if cfg.Log.Level != "error" {
			t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
		}
		if cfg.Build.Workers != 2 {
			t.Errorf("Build.Workers = %d, want 2", cfg.Build.Workers)
		}
	})
}
