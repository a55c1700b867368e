package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultOverheadCategory = "Email (various)"
	defaultThresholdHours   = 2.0
)

type Config struct {
	// OverheadCategory is the project whose time gets redistributed onto
	// the rest of its week.
	OverheadCategory string `yaml:"overheadCategory"`

	// DailyThresholdHours separates workday holidays from normal days and
	// worked weekends from free ones. A pointer so that an explicit 0 can
	// be told apart from an absent key.
	DailyThresholdHours *float64 `yaml:"dailyThresholdHours"`

	// Color-scale hints passed through to rendering consumers; the core
	// never reads them.
	MaxPlausibleDailyHours  float64 `yaml:"maxPlausibleDailyHours"`
	MaxPlausibleWeeklyHours float64 `yaml:"maxPlausibleWeeklyHours"`

	Exporter *ExporterConfig `yaml:"exporter"`
	Output   *OutputConfig   `yaml:"output"`
}

type ExporterConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

type OutputConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

// Threshold returns the configured daily threshold in hours, or the 2.0
// default.
func (c *Config) Threshold() float64 {
	if c.DailyThresholdHours == nil {
		return defaultThresholdHours
	}
	return *c.DailyThresholdHours
}

func Load(path string) (*Config, error) {
	var useDefaultConf bool
	useDefaultConf = (path == "")

	if useDefaultConf {
		path = ".weekfold.yaml"
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			return withDefaults(&conf), nil
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if conf.DailyThresholdHours != nil && *conf.DailyThresholdHours < 0 {
		return nil, fmt.Errorf("dailyThresholdHours must be >= 0, got %v", *conf.DailyThresholdHours)
	}

	return withDefaults(&conf), nil
}

func withDefaults(conf *Config) *Config {
	if conf.OverheadCategory == "" {
		conf.OverheadCategory = defaultOverheadCategory
	}
	if conf.MaxPlausibleDailyHours == 0 {
		conf.MaxPlausibleDailyHours = 16
	}
	if conf.MaxPlausibleWeeklyHours == 0 {
		conf.MaxPlausibleWeeklyHours = 80
	}
	return conf
}
