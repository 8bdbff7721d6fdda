// Package config defines the data structures related to configuration and
// includes functions for loading and resolving it.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/solar-forecast/internal/tables"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for solar-forecast.
type Configuration struct {
	TablesFile string           `mapstructure:"tablesFile" yaml:"tablesFile,omitempty"`
	Tables     tables.Overrides `mapstructure:"tables" yaml:"tables,omitempty"`
	Scenarios  []Scenario       `mapstructure:"scenarios" yaml:"scenarios"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging,omitempty"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv
	CurrencySymbol string `mapstructure:"currencySymbol" yaml:"currencySymbol,omitempty"`
	Locale         string `mapstructure:"locale" yaml:"locale,omitempty"` // BCP 47 tag for digit grouping
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A relative tablesFile is resolved against the
// directory of the configuration file.
func LoadConfiguration(configPath string) (*Configuration, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	conf, err := LoadConfigurationFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if conf.TablesFile != "" && !filepath.IsAbs(conf.TablesFile) {
		conf.TablesFile = filepath.Join(filepath.Dir(configPath), conf.TablesFile)
	}
	return conf, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory document. Each call uses its own viper instance.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ReferenceTables builds the tables bundle: the built-in defaults, then the
// tablesFile overrides, then the inline overrides. The result is validated.
func (c *Configuration) ReferenceTables() (tables.Tables, error) {
	base := tables.Default()
	if c.TablesFile != "" {
		loaded, err := tables.Load(c.TablesFile)
		if err != nil {
			return tables.Tables{}, fmt.Errorf("failed to load tables file %s: %w", c.TablesFile, err)
		}
		base = loaded
	}

	merged, err := c.Tables.Apply(base)
	if err != nil {
		return tables.Tables{}, err
	}
	if err := merged.Validate(); err != nil {
		return tables.Tables{}, err
	}
	return merged, nil
}

// ActiveScenarios returns the scenarios marked active, in file order.
func (c *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.ActiveScenarios()) == 0 {
		warnings = append(warnings, "no active scenarios; nothing will be estimated")
	}

	seen := make(map[string]bool)
	for _, scenario := range c.Scenarios {
		if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate scenario name '%s'", scenario.Name))
		}
		seen[scenario.Name] = true

		if scenario.PropertyType != "" && scenario.AnnualConsumptionKWh > 0 {
			warnings = append(warnings, fmt.Sprintf("scenario '%s' sets both propertyType and annualConsumptionKWh; the explicit consumption is used", scenario.Name))
		}
		if scenario.BenchmarkPreset != "" && scenario.BenchmarkInterestPercent != nil {
			warnings = append(warnings, fmt.Sprintf("scenario '%s' sets both benchmarkPreset and benchmarkInterestPercent; the explicit rate is used", scenario.Name))
		}
	}

	return warnings
}
