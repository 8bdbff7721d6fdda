package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/solar-forecast/internal/solar"
	"github.com/iwvelando/solar-forecast/internal/tables"
)

// Benchmark rate presets selectable by name.
const (
	BenchmarkPresetGeneral       = "general"
	BenchmarkPresetSeniorCitizen = "seniorCitizen"
)

// Scenario holds one household profile to estimate.
type Scenario struct {
	Name                     string   `mapstructure:"name" yaml:"name" json:"name"`
	Active                   bool     `mapstructure:"active" yaml:"active" json:"active"`
	PropertyType             string   `mapstructure:"propertyType" yaml:"propertyType,omitempty" json:"propertyType,omitempty"`
	AnnualConsumptionKWh     float64  `mapstructure:"annualConsumptionKWh" yaml:"annualConsumptionKWh,omitempty" json:"annualConsumptionKWh,omitempty"`
	ElectricityPrice         float64  `mapstructure:"electricityPrice" yaml:"electricityPrice" json:"electricityPrice"`
	RoofAreaM2               float64  `mapstructure:"roofAreaM2" yaml:"roofAreaM2" json:"roofAreaM2"`
	Orientation              string   `mapstructure:"orientation" yaml:"orientation" json:"orientation"`
	CoveragePercent          *float64 `mapstructure:"coveragePercent" yaml:"coveragePercent,omitempty" json:"coveragePercent,omitempty"`
	Budget                   float64  `mapstructure:"budget" yaml:"budget,omitempty" json:"budget,omitempty"`
	PriceInflationPercent    *float64 `mapstructure:"priceInflationPercent" yaml:"priceInflationPercent,omitempty" json:"priceInflationPercent,omitempty"`
	BenchmarkInterestPercent *float64 `mapstructure:"benchmarkInterestPercent" yaml:"benchmarkInterestPercent,omitempty" json:"benchmarkInterestPercent,omitempty"`
	BenchmarkPreset          string   `mapstructure:"benchmarkPreset" yaml:"benchmarkPreset,omitempty" json:"benchmarkPreset,omitempty"`
	HorizonYears             int      `mapstructure:"horizonYears" yaml:"horizonYears,omitempty" json:"horizonYears,omitempty"`
}

// Profile converts the scenario into an engine profile. A property type
// stands in for consumption when no consumption is given; coverage defaults
// to the table value; a benchmark preset picks the interest rate when no
// explicit rate is given.
func (s Scenario) Profile(t tables.Tables) (solar.InputProfile, error) {
	orientation, _ := tables.ParseOrientation(s.Orientation)

	profile := solar.InputProfile{
		AnnualConsumptionKWh:     s.AnnualConsumptionKWh,
		ElectricityPrice:         s.ElectricityPrice,
		RoofAreaM2:               s.RoofAreaM2,
		Orientation:              orientation,
		CoveragePercent:          t.Rates.CoveragePercent,
		Budget:                   s.Budget,
		PriceInflationPercent:    copyRate(s.PriceInflationPercent),
		BenchmarkInterestPercent: copyRate(s.BenchmarkInterestPercent),
		HorizonYears:             s.HorizonYears,
	}

	if s.CoveragePercent != nil {
		profile.CoveragePercent = *s.CoveragePercent
	}

	if profile.AnnualConsumptionKWh <= 0 && s.PropertyType != "" {
		kwh, ok := t.ConsumptionPreset(s.PropertyType)
		if !ok {
			return solar.InputProfile{}, fmt.Errorf("scenario '%s': unknown property type %q", s.Name, s.PropertyType)
		}
		profile.AnnualConsumptionKWh = kwh
	}

	if profile.BenchmarkInterestPercent == nil && s.BenchmarkPreset != "" {
		switch strings.ToLower(s.BenchmarkPreset) {
		case strings.ToLower(BenchmarkPresetGeneral):
			rate := t.Rates.BenchmarkInterestPercent
			profile.BenchmarkInterestPercent = &rate
		case strings.ToLower(BenchmarkPresetSeniorCitizen):
			rate := t.Rates.SeniorInterestPercent
			profile.BenchmarkInterestPercent = &rate
		default:
			return solar.InputProfile{}, fmt.Errorf("scenario '%s': unknown benchmark preset %q", s.Name, s.BenchmarkPreset)
		}
	}

	return profile, nil
}

func copyRate(rate *float64) *float64 {
	if rate == nil {
		return nil
	}
	v := *rate
	return &v
}
