package tables

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Overrides is the partial, file-facing form of Tables. Unset fields keep the
// value of the bundle they are applied to. Capacity tiers and the subsidy
// policy are replaced as a whole because their invariants span entries.
type Overrides struct {
	ReferenceDailyYield *float64           `mapstructure:"referenceDailyYield" yaml:"referenceDailyYield,omitempty"`
	FallbackAnnualYield *float64           `mapstructure:"fallbackAnnualYield" yaml:"fallbackAnnualYield,omitempty"`
	AreaPerUnit         *float64           `mapstructure:"areaPerUnit" yaml:"areaPerUnit,omitempty"`
	PanelRatingWatts    *float64           `mapstructure:"panelRatingWatts" yaml:"panelRatingWatts,omitempty"`
	CapacityTiers       []CapacityTier     `mapstructure:"capacityTiers" yaml:"capacityTiers,omitempty"`
	AboveMaxCostPerUnit *float64           `mapstructure:"aboveMaxCostPerUnit" yaml:"aboveMaxCostPerUnit,omitempty"`
	Subsidy             *SubsidyPolicy     `mapstructure:"subsidy" yaml:"subsidy,omitempty"`
	OrientationDerate   map[string]float64 `mapstructure:"orientationDerate" yaml:"orientationDerate,omitempty"`
	Rates               *RateOverrides     `mapstructure:"rates" yaml:"rates,omitempty"`
	ConsumptionPresets  map[string]float64 `mapstructure:"consumptionPresets" yaml:"consumptionPresets,omitempty"`
}

// RateOverrides is the partial form of Rates.
type RateOverrides struct {
	PriceInflationPercent     *float64 `mapstructure:"priceInflationPercent" yaml:"priceInflationPercent,omitempty"`
	BenchmarkInterestPercent  *float64 `mapstructure:"benchmarkInterestPercent" yaml:"benchmarkInterestPercent,omitempty"`
	SeniorInterestPercent     *float64 `mapstructure:"seniorCitizenInterestPercent" yaml:"seniorCitizenInterestPercent,omitempty"`
	HorizonYears              *int     `mapstructure:"horizonYears" yaml:"horizonYears,omitempty"`
	MinHorizonYears           *int     `mapstructure:"minHorizonYears" yaml:"minHorizonYears,omitempty"`
	MaxHorizonYears           *int     `mapstructure:"maxHorizonYears" yaml:"maxHorizonYears,omitempty"`
	CoveragePercent           *float64 `mapstructure:"coveragePercent" yaml:"coveragePercent,omitempty"`
	DegradationPercentPerYear *float64 `mapstructure:"degradationPercentPerYear" yaml:"degradationPercentPerYear,omitempty"`
	MaxOffsetPercent          *float64 `mapstructure:"maxOffsetPercent" yaml:"maxOffsetPercent,omitempty"`
	GridConnectionChargeMin   *float64 `mapstructure:"gridConnectionChargeMin" yaml:"gridConnectionChargeMin,omitempty"`
	GridConnectionChargeMax   *float64 `mapstructure:"gridConnectionChargeMax" yaml:"gridConnectionChargeMax,omitempty"`
}

// Empty reports whether o changes nothing.
func (o Overrides) Empty() bool {
	return o.ReferenceDailyYield == nil && o.FallbackAnnualYield == nil && o.AreaPerUnit == nil &&
		o.PanelRatingWatts == nil && len(o.CapacityTiers) == 0 && o.AboveMaxCostPerUnit == nil &&
		o.Subsidy == nil && len(o.OrientationDerate) == 0 && o.Rates == nil && len(o.ConsumptionPresets) == 0
}

// Apply returns a copy of base with the overrides laid on top. Orientation
// names are matched leniently since viper lowercases map keys; an unknown
// orientation name is an error.
func (o Overrides) Apply(base Tables) (Tables, error) {
	out := base.Clone()

	setFloat(&out.ReferenceDailyYield, o.ReferenceDailyYield)
	setFloat(&out.FallbackAnnualYield, o.FallbackAnnualYield)
	setFloat(&out.AreaPerUnit, o.AreaPerUnit)
	setFloat(&out.PanelRatingWatts, o.PanelRatingWatts)
	setFloat(&out.CapacityTiers.AboveMax.CostPerUnit, o.AboveMaxCostPerUnit)

	if len(o.CapacityTiers) > 0 {
		out.CapacityTiers.Tiers = append([]CapacityTier(nil), o.CapacityTiers...)
		last := out.CapacityTiers.Tiers[len(out.CapacityTiers.Tiers)-1]
		out.CapacityTiers.AboveMax.Label = fmt.Sprintf("Above %gkW", last.UpperBound)
	}
	if o.Subsidy != nil {
		out.Subsidy = *o.Subsidy
	}

	for name, factor := range o.OrientationDerate {
		orientation, ok := ParseOrientation(name)
		if !ok {
			return Tables{}, fmt.Errorf("unknown orientation %q in orientationDerate", name)
		}
		out.OrientationDerate[orientation] = factor
	}

	for name, kwh := range o.ConsumptionPresets {
		out.ConsumptionPresets[strings.ToLower(strings.TrimSpace(name))] = kwh
	}

	if r := o.Rates; r != nil {
		setFloat(&out.Rates.PriceInflationPercent, r.PriceInflationPercent)
		setFloat(&out.Rates.BenchmarkInterestPercent, r.BenchmarkInterestPercent)
		setFloat(&out.Rates.SeniorInterestPercent, r.SeniorInterestPercent)
		setInt(&out.Rates.HorizonYears, r.HorizonYears)
		setInt(&out.Rates.MinHorizonYears, r.MinHorizonYears)
		setInt(&out.Rates.MaxHorizonYears, r.MaxHorizonYears)
		setFloat(&out.Rates.CoveragePercent, r.CoveragePercent)
		setFloat(&out.Rates.DegradationPercentPerYear, r.DegradationPercentPerYear)
		setFloat(&out.Rates.MaxOffsetPercent, r.MaxOffsetPercent)
		setFloat(&out.Rates.GridConnectionChargeMin, r.GridConnectionChargeMin)
		setFloat(&out.Rates.GridConnectionChargeMax, r.GridConnectionChargeMax)
	}

	return out, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Load reads YAML-formatted table overrides from path, applies them to the
// built-in defaults and validates the result.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("error reading tables file, %s", err)
	}
	return LoadFromReader(bytes.NewReader(data))
}

// LoadFromReader is Load for an in-memory document.
func LoadFromReader(reader io.Reader) (Tables, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(reader); err != nil {
		return Tables{}, fmt.Errorf("error reading tables data, %s", err)
	}

	var overrides Overrides
	if err := v.Unmarshal(&overrides); err != nil {
		return Tables{}, fmt.Errorf("unable to decode tables into struct, %s", err)
	}

	return Build(overrides)
}

// Build applies overrides to the defaults and validates the result.
func Build(overrides Overrides) (Tables, error) {
	t, err := overrides.Apply(Default())
	if err != nil {
		return Tables{}, err
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}
