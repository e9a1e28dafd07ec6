// Package config loads sheetnav.toml.
//
// The file is optional. It is looked up from the working directory upwards;
// missing sections keep their defaults and CLI flags override whatever the
// file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file searched for.
const FileName = "sheetnav.toml"

// Config is the decoded sheetnav.toml.
type Config struct {
	Output Output `toml:"output"`
	Check  Check  `toml:"check"`
	Cache  Cache  `toml:"cache"`
	Trace  Trace  `toml:"trace"`

	// Path of the file the values came from, empty for defaults.
	Path string `toml:"-"`
}

type Output struct {
	Format string `toml:"format"` // pretty|json|msgpack|short
	Color  string `toml:"color"`  // auto|on|off
}

type Check struct {
	Jobs           int `toml:"jobs"` // 0 means GOMAXPROCS
	MaxDiagnostics int `toml:"max-diagnostics"`
}

type Cache struct {
	Size int `toml:"size"`
}

type Trace struct {
	Level      string `toml:"level"`
	Mode       string `toml:"mode"`
	Output     string `toml:"output"`
	MaxSizeMB  int    `toml:"max-size-mb"`
	MaxBackups int    `toml:"max-backups"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Output: Output{Format: "pretty", Color: "auto"},
		Check:  Check{MaxDiagnostics: 100},
		Cache:  Cache{Size: 1024},
		Trace: Trace{
			Level:      "off",
			Mode:       "stream",
			Output:     "-",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Find walks from startDir to the filesystem root looking for sheetnav.toml.
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
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(names, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest sheetnav.toml, or returns defaults.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerations and bounds.
func (c Config) Validate() error {
	var errs []error
	if !oneOf(c.Output.Format, "pretty", "json", "msgpack", "short") {
		errs = append(errs, fmt.Errorf("[output].format: %q (expected pretty|json|msgpack|short)", c.Output.Format))
	}
	if !oneOf(c.Output.Color, "auto", "on", "off") {
		errs = append(errs, fmt.Errorf("[output].color: %q (expected auto|on|off)", c.Output.Color))
	}
	if c.Check.Jobs < 0 {
		errs = append(errs, fmt.Errorf("[check].jobs: %d is negative", c.Check.Jobs))
	}
	if c.Check.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("[check].max-diagnostics: %d is negative", c.Check.MaxDiagnostics))
	}
	if c.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("[cache].size: %d is negative", c.Cache.Size))
	}
	if c.Trace.MaxSizeMB < 0 || c.Trace.MaxBackups < 0 {
		errs = append(errs, errors.New("[trace]: max-size-mb and max-backups must not be negative"))
	}
	return errors.Join(errs...)
}

// Workers resolves the worker count.
func (c Check) Workers() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
