// Package config loads lintfmt settings from .lintfmt.toml.
//
// The project file is searched from the working directory upward. When none
// exists the user file under $XDG_CONFIG_HOME/lintfmt/config.toml is used.
// Missing files are not an error; command-line flags override every value.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"lintfmt/internal/lintfmt"
	"lintfmt/internal/report"
	"lintfmt/internal/style"
)

const (
	// FileName is the project configuration file.
	FileName = ".lintfmt.toml"
	// AppName names the directory under the XDG config home.
	AppName = "lintfmt"
)

// Config mirrors the TOML document.
type Config struct {
	Output Output `toml:"output"`
	Input  Input  `toml:"input"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Output holds the [output] section.
type Output struct {
	Format   string `toml:"format"`
	Color    string `toml:"color"`
	Symbols  string `toml:"symbols"`
	Theme    string `toml:"theme"`
	PathMode string `toml:"path_mode"`
	Tag      string `toml:"tag"`
	// MaxWarnings fails the run when exceeded; negative disables the check.
	MaxWarnings int `toml:"max_warnings"`
}

// Input holds the [input] section.
type Input struct {
	Format string `toml:"format"`
	Jobs   int    `toml:"jobs"`
	Dedup  bool   `toml:"dedup"`
}

// Default returns the settings used without any config file.
func Default() Config {
	return Config{
		Output: Output{
			Format:      "grouped",
			Color:       "auto",
			Symbols:     "unicode",
			Theme:       "ansi",
			PathMode:    "as-is",
			MaxWarnings: -1,
		},
		Input: Input{
			Format: "auto",
		},
	}
}

// UserPath returns the user-level config file location.
func UserPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Find returns the nearest .lintfmt.toml at or above startDir.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the project config found from startDir, falling back to
// the user config and then to Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		path = UserPath()
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Default(), nil
			}
			return Config{}, fmt.Errorf("failed to stat %q: %w", path, err)
		}
	}
	return Load(path)
}

// Load reads one config file. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("input", "jobs") && cfg.Input.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [input].jobs must not be negative", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	if _, err := lintfmt.Lookup(c.Output.Format, lintfmt.Options{}); err != nil {
		return fmt.Errorf("[output].format: %w", err)
	}
	if _, err := style.ParseColorMode(c.Output.Color); err != nil {
		return fmt.Errorf("[output].color: %w", err)
	}
	if _, err := style.ParseSymbols(c.Output.Symbols); err != nil {
		return fmt.Errorf("[output].symbols: %w", err)
	}
	if _, err := style.ParseTheme(c.Output.Theme); err != nil {
		return fmt.Errorf("[output].theme: %w", err)
	}
	if _, err := lintfmt.ParsePathMode(c.Output.PathMode); err != nil {
		return fmt.Errorf("[output].path_mode: %w", err)
	}
	if _, err := report.ParseCodec(c.Input.Format); err != nil {
		return fmt.Errorf("[input].format: %w", err)
	}
	return nil
}
