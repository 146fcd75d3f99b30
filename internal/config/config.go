// Package config loads the survey configuration: endpoint, required agency
// fields, year range, and toggle rules. Bundled defaults are overlaid by an
// optional JSON or YAML file and then by environment variables.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jateonwr/dem-survey/pkg/toggle"
)

// Environment variables read by ApplyEnv.
const (
	EnvEndpoint  = "DEM_SURVEY_ENDPOINT"
	EnvYearStart = "DEM_SURVEY_YEAR_START"
	EnvYearEnd   = "DEM_SURVEY_YEAR_END"
	EnvTimeout   = "DEM_SURVEY_TIMEOUT_SECONDS"
)

//go:embed defaults/form.yaml
var defaultsYAML []byte

// Config is the declarative input of the form engine.
type Config struct {
	Endpoint          string        `json:"endpoint" yaml:"endpoint"`
	TimeoutSeconds    int           `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	RequiredAgencyIDs []string      `json:"requiredAgencyIds" yaml:"requiredAgencyIds"`
	YearStart         int           `json:"yearStart" yaml:"yearStart"`
	YearEnd           int           `json:"yearEnd" yaml:"yearEnd"`
	ToggleRules       []toggle.Rule `json:"toggleRules" yaml:"toggleRules"`
}

// Timeout converts TimeoutSeconds; zero means no client-side timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultsYAML returns the bundled defaults document.
func DefaultsYAML() []byte { return append([]byte(nil), defaultsYAML...) }

// Default parses the bundled defaults.
func Default() (Config, error) {
	var cfg Config
	if err := parseInto(&cfg, defaultsYAML, "defaults/form.yaml"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the file at path. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := parseInto(&cfg, data, path); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFS is Load against an fs.FS.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := parseInto(&cfg, data, path); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// parseInto overlays data onto cfg; keys absent from data keep their value.
func parseInto(cfg *Config, data []byte, source string) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("config: file %s is empty", source)
	}
	candidate := *cfg
	if err := json.Unmarshal(data, &candidate); err == nil {
		*cfg = candidate
		return nil
	}
	candidate = *cfg
	if err := yaml.Unmarshal(data, &candidate); err == nil {
		*cfg = candidate
		return nil
	}
	return fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from the environment. lookup defaults to
// os.LookupEnv.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvEndpoint); ok && strings.TrimSpace(v) != "" {
		cfg.Endpoint = strings.TrimSpace(v)
	}
	for _, item := range []struct {
		name   string
		target *int
	}{
		{EnvYearStart, &cfg.YearStart},
		{EnvYearEnd, &cfg.YearEnd},
		{EnvTimeout, &cfg.TimeoutSeconds},
	} {
		v, ok := lookup(item.name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", item.name, err)
		}
		*item.target = n
	}
	return cfg.Validate()
}

// Years are submitted as four-digit strings.
const (
	minYear = 1000
	maxYear = 9999
)

// Validate checks the ranges and compiles the toggle rules.
func (c Config) Validate() error {
	for _, y := range []int{c.YearStart, c.YearEnd} {
		if y < minYear || y > maxYear {
			return fmt.Errorf("config: year %d must have four digits", y)
		}
	}
	if c.YearStart > c.YearEnd {
		return fmt.Errorf("config: yearStart %d is after yearEnd %d", c.YearStart, c.YearEnd)
	}
	if c.TimeoutSeconds < 0 {
		return errors.New("config: timeoutSeconds must not be negative")
	}
	if _, err := c.Rules(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Rules compiles the toggle rules.
func (c Config) Rules() (*toggle.Set, error) {
	return toggle.Compile(c.ToggleRules)
}
