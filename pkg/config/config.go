// Package config loads and persists tool configuration for the tempora CLI:
// the default UTC offset for output, the preferred date representation, and
// whether local-offset queries are permitted.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/tempora/pkg/civil"
)

// OutputForm selects how dates are rendered by default.
type OutputForm string

const (
	// OutputCalendar renders year-month-day.
	OutputCalendar OutputForm = "calendar"

	// OutputOrdinal renders year and day-of-year.
	OutputOrdinal OutputForm = "ordinal"

	// OutputISOWeek renders ISO year, week, and weekday.
	OutputISOWeek OutputForm = "iso-week"

	// OutputJulian renders the Julian day number.
	OutputJulian OutputForm = "julian"
)

// Config holds the CLI's persistent settings.
type Config struct {
	// DefaultOffset is the offset applied to output when none is given on
	// the command line, e.g. "UTC", "+05:30", or "-08:00:00".
	DefaultOffset string `yaml:"default_offset"`

	// Output is the default date representation.
	Output OutputForm `yaml:"output"`

	// AllowLocalOffset permits querying the system's local UTC offset.
	AllowLocalOffset bool `yaml:"allow_local_offset"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DefaultOffset: "UTC",
		Output:        OutputCalendar,
	}
}

// Load reads a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if _, err := ParseOffset(c.DefaultOffset); err != nil {
		return fmt.Errorf("invalid default_offset %q: %w", c.DefaultOffset, err)
	}
	switch c.Output {
	case OutputCalendar, OutputOrdinal, OutputISOWeek, OutputJulian:
		return nil
	default:
		return fmt.Errorf("invalid output form %q", c.Output)
	}
}

// Offset returns the configured default offset as a civil.UtcOffset.
func (c *Config) Offset() (civil.UtcOffset, error) {
	return ParseOffset(c.DefaultOffset)
}

// ParseOffset parses an offset of the form "UTC", "Z", "+HH:MM", "-HH:MM",
// or "±HH:MM:SS".
func ParseOffset(s string) (civil.UtcOffset, error) {
	switch s {
	case "UTC", "utc", "Z", "z", "+00:00", "-00:00":
		return civil.UTC, nil
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return civil.UTC, fmt.Errorf("offset must look like +HH:MM or -HH:MM:SS, got %q", s)
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	parts := strings.Split(s[1:], ":")
	if len(parts) < 1 || len(parts) > 3 {
		return civil.UTC, fmt.Errorf("offset must look like +HH:MM or -HH:MM:SS, got %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return civil.UTC, fmt.Errorf("invalid offset component %q: %w", p, err)
		}
		nums[i] = n
	}
	return civil.OffsetFromHMS(sign*nums[0], sign*nums[1], sign*nums[2])
}
