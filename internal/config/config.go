package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixed unit scaling of the Green Button export: consumption values are
// micro-kWh integers, cost values are thousandths-of-a-cent integers.
const (
	ConsumptionDivisor = 1_000_000.0
	CostDivisor        = 100_000.0
)

// Config holds the application configuration. It is built once at startup
// and passed into each pipeline component; nothing mutates it afterwards.
type Config struct {
	Timezone     string `yaml:"timezone,omitempty"`       // reference zone for daily bucketing
	Source       string `yaml:"source,omitempty"`         // statistic source tag, e.g. "greenbutton"
	BatchSize    int    `yaml:"batch_size,omitempty"`     // rows per INSERT statement
	DailyHourUTC int    `yaml:"daily_hour_utc,omitempty"` // UTC hour stamped on daily rows
	DatabasePath string `yaml:"database,omitempty"`       // recorder database for the apply command
}

// SeriesSpec describes one output statistic
type SeriesSpec struct {
	ID   string // short id, e.g. "on_peak"
	Unit string // "kWh" or "CAD"
	Name string // display name registered in statistics_meta
}

// Load reads the config file, returning defaults if it doesn't exist
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetTimezone returns the reference time zone for daily aggregation
func (c *Config) GetTimezone() string {
	if c.Timezone == "" {
		return "America/Toronto"
	}
	return c.Timezone
}

// GetSource returns the statistics source tag
func (c *Config) GetSource() string {
	if c.Source == "" {
		return "greenbutton"
	}
	return c.Source
}

// GetBatchSize returns the number of rows per insert statement
func (c *Config) GetBatchSize() int {
	if c.BatchSize <= 0 {
		return 500
	}
	return c.BatchSize
}

// GetDailyHourUTC returns the UTC hour used as the daily-row timestamp.
// 05:00 UTC approximates Toronto midnight; it is deliberately not
// DST-adjusted so each date maps to exactly one stable timestamp.
func (c *Config) GetDailyHourUTC() int {
	if c.DailyHourUTC <= 0 {
		return 5
	}
	return c.DailyHourUTC
}

// GetDatabasePath returns the recorder database path for the apply command
func (c *Config) GetDatabasePath() string {
	if c.DatabasePath == "" {
		return "home-assistant_v2.db"
	}
	return c.DatabasePath
}

// StatisticID returns the namespaced external statistic id for a series
func (c *Config) StatisticID(seriesID string) string {
	return c.GetSource() + ":" + seriesID
}

// Series returns the fixed catalogue of the 8 output statistics, in
// emission order: TOU consumption, TOU cost, then the daily aggregates.
func (c *Config) Series() []SeriesSpec {
	return []SeriesSpec{
		{ID: "on_peak", Unit: "kWh", Name: "On-Peak Consumption"},
		{ID: "mid_peak", Unit: "kWh", Name: "Mid-Peak Consumption"},
		{ID: "off_peak", Unit: "kWh", Name: "Off-Peak Consumption"},
		{ID: "on_peak_cost", Unit: "CAD", Name: "On-Peak Cost"},
		{ID: "mid_peak_cost", Unit: "CAD", Name: "Mid-Peak Cost"},
		{ID: "off_peak_cost", Unit: "CAD", Name: "Off-Peak Cost"},
		{ID: "daily_usage", Unit: "kWh", Name: "Daily Consumption"},
		{ID: "daily_cost", Unit: "CAD", Name: "Daily Cost"},
	}
}
