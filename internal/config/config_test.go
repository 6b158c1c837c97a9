package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.CSS.Style != "" || cfg.CSS.Disabled {
		t.Errorf("CSS = %+v, want built-in theme", cfg.CSS)
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if !cfg.Links.RewriteMarkdown {
		t.Error("Links.RewriteMarkdown = false, want true")
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" {
		t.Errorf("Log = %+v, want warn/console", cfg.Log)
	}
	if cfg.Build.Workers != 0 {
		t.Errorf("Build.Workers = %d, want 0", cfg.Build.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value", "", 10, false},
		{"under limit", "short", 10, false},
		{"at limit", "exactly10!", 10, false},
		{"over limit", "this is too long", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error should wrap ErrFieldTooLong, got %v", err)
				}
				if !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error should name the field, got %v", err)
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:   "custom style path",
			modify: func(c *Config) { c.CSS.Style = "./themes/site.css" },
		},
		{
			name:    "template name too long",
			modify:  func(c *Config) { c.Assets.Template = strings.Repeat("a", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "base path too long",
			modify:  func(c *Config) { c.Assets.BasePath = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "empty log level allowed",
			modify: func(c *Config) { c.Log.Level = "" },
		},
		{
			name:   "debug level",
			modify: func(c *Config) { c.Log.Level = "debug" },
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "json log format",
			modify: func(c *Config) { c.Log.Format = "JSON" },
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Log.Format = "logfmt" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "max workers",
			modify: func(c *Config) { c.Build.Workers = MaxWorkerCount },
		},
		{
			name:    "negative workers",
			modify:  func(c *Config) { c.Build.Workers = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			modify:  func(c *Config) { c.Build.Workers = MaxWorkerCount + 1 },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "test.yaml", `css:
  style: "default"
assets:
  template: "default"
log:
  level: "debug"
  format: "json"
build:
  workers: 4
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CSS.Style != "default" {
			t.Errorf("CSS.Style = %q, want %q", cfg.CSS.Style, "default")
		}
		if cfg.Assets.Template != "default" {
			t.Errorf("Assets.Template = %q, want %q", cfg.Assets.Template, "default")
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v, want debug/json", cfg.Log)
		}
		if cfg.Build.Workers != 4 {
			t.Errorf("Build.Workers = %d, want 4", cfg.Build.Workers)
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "partial.yaml", "css:\n  disabled: true\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.CSS.Disabled {
			t.Error("CSS.Disabled = false, want true")
		}
		if !cfg.Links.RewriteMarkdown {
			t.Error("Links.RewriteMarkdown should keep its default")
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("Log.Level = %q, want default warn", cfg.Log.Level)
		}
	})

	t.Run("link rewriting can be turned off", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "links.yaml", "links:\n  rewriteMarkdown: false\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Links.RewriteMarkdown {
			t.Error("Links.RewriteMarkdown = true, want false")
		}
	})

	t.Run("loads input and output directories", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "dirs.yaml", `input:
  defaultDir: "/path/to/input"
output:
  defaultDir: "/path/to/output"
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "/path/to/input" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "/path/to/input")
		}
		if cfg.Output.DefaultDir != "/path/to/output" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/path/to/output")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "invalid.yaml", "css: [unclosed")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "unknown.yaml", "css:\n  style: default\nunknownField: \"should fail\"\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value returns ErrInvalidValue", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "workers.yaml", "build:\n  workers: -2\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}
		configPath := writeConfig(t, t.TempDir(), "unreadable.yaml", "css:\n  style: test\n")
		if err := os.Chmod(configPath, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(configPath, 0600)

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "css:\n  style: fromname\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CSS.Style != "fromname" {
			t.Errorf("CSS.Style = %q, want %q", cfg.CSS.Style, "fromname")
		}
	})

	t.Run("config name resolves yml when yaml not found", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yml", "css:\n  style: fromyml\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CSS.Style != "fromyml" {
			t.Errorf("CSS.Style = %q, want %q", cfg.CSS.Style, "fromyml")
		}
	})

	t.Run("config name prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "css:\n  style: yaml\n")
		writeConfig(t, dir, "myconfig.yml", "css:\n  style: yml\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CSS.Style != "yaml" {
			t.Errorf("CSS.Style = %q, want %q (should prefer .yaml)", cfg.CSS.Style, "yaml")
		}
	})

	t.Run("config name resolves from user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		t.Setenv("AppData", home)

		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			t.Skip("cannot get user config dir")
		}
		appDir := filepath.Join(userConfigDir, appConfigDir)
		if err := os.MkdirAll(appDir, 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		writeConfig(t, appDir, "testconfig.yaml", "css:\n  style: userdir\n")

		// Change to empty dir so local file isn't found
		t.Chdir(t.TempDir())

		cfg, err := LoadConfig("testconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CSS.Style != "userdir" {
			t.Errorf("CSS.Style = %q, want %q", cfg.CSS.Style, "userdir")
		}
	})

	t.Run("config name not found lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nonexistent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nonexistent.yaml") || !strings.Contains(err.Error(), "nonexistent.yml") {
			t.Errorf("error should list searched paths, got %v", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)

	paths := SearchPaths("site")

	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Errorf("local candidates = %v, want [site.yaml site.yml]", paths[:2])
	}
	if len(paths) == 4 && !strings.Contains(paths[2], appConfigDir) {
		t.Errorf("user candidate %q should be under %s", paths[2], appConfigDir)
	}
}
