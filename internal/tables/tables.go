// Package tables holds the reference data consumed by the sizing and
// projection engine: capacity cost tiers, the subsidy schedule, orientation
// derate factors and default financial rates.
//
// A Tables value is a plain data bundle. It is validated once when it is
// built or loaded; the engine assumes the invariants hold afterwards.
package tables

import (
	"sort"
	"strings"
)

// Orientation is the compass direction (or flat mounting) of the roof.
type Orientation string

// Supported roof orientations.
const (
	South     Orientation = "South"
	SouthEast Orientation = "South-East"
	SouthWest Orientation = "South-West"
	East      Orientation = "East"
	West      Orientation = "West"
	North     Orientation = "North"
	Flat      Orientation = "Flat"
)

// Orientations lists the full enumeration in display order.
var Orientations = []Orientation{South, SouthEast, SouthWest, East, West, North, Flat}

// ParseOrientation matches a name against the enumeration ignoring case,
// spaces and underscores, so "south east", "SOUTH_EAST" and "South-East" are
// equivalent. The second result is false for unknown names.
func ParseOrientation(name string) (Orientation, bool) {
	key := normalizeKey(name)
	for _, o := range Orientations {
		if normalizeKey(string(o)) == key {
			return o, true
		}
	}
	return Orientation(strings.TrimSpace(name)), false
}

func normalizeKey(name string) string {
	replacer := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(replacer.Replace(strings.TrimSpace(name)))
}

// CapacityTier is one bracket of the cost table.
type CapacityTier struct {
	Label       string  `mapstructure:"label" yaml:"label" json:"label"`
	UpperBound  float64 `mapstructure:"upperBound" yaml:"upperBound" json:"upperBound"`   // kWp, inclusive
	CostPerUnit float64 `mapstructure:"costPerUnit" yaml:"costPerUnit" json:"costPerUnit"` // currency per kWp
}

// CapacityTierTable maps installed capacity to a cost per kWp.
type CapacityTierTable struct {
	Tiers    []CapacityTier `yaml:"tiers" json:"tiers"`
	AboveMax CapacityTier   `yaml:"aboveMax" json:"aboveMax"`
}

// Lookup returns the first tier whose upper bound is at least capacity, or
// the above-max tier when capacity exceeds every bound. Tiers must be sorted
// by UpperBound, which Validate enforces.
func (t CapacityTierTable) Lookup(capacity float64) CapacityTier {
	i := sort.Search(len(t.Tiers), func(i int) bool {
		return t.Tiers[i].UpperBound >= capacity
	})
	if i < len(t.Tiers) {
		return t.Tiers[i]
	}
	return t.AboveMax
}

// SubsidyPolicy is the piecewise-linear subsidy schedule.
type SubsidyPolicy struct {
	FirstThreshold  float64 `mapstructure:"firstThreshold" yaml:"firstThreshold" json:"firstThreshold"`    // T1, kWp
	FirstRate       float64 `mapstructure:"firstRate" yaml:"firstRate" json:"firstRate"`                   // per kWp up to T1
	SecondThreshold float64 `mapstructure:"secondThreshold" yaml:"secondThreshold" json:"secondThreshold"` // T2, kWp
	SecondRate      float64 `mapstructure:"secondRate" yaml:"secondRate" json:"secondRate"`                // per kWp between T1 and T2
	Cap             float64 `mapstructure:"cap" yaml:"cap" json:"cap"`                                     // fixed amount at and above T2
}

// Rates holds default financial assumptions applied when a profile leaves
// them unset.
type Rates struct {
	PriceInflationPercent     float64 `mapstructure:"priceInflationPercent" yaml:"priceInflationPercent" json:"priceInflationPercent"`
	BenchmarkInterestPercent  float64 `mapstructure:"benchmarkInterestPercent" yaml:"benchmarkInterestPercent" json:"benchmarkInterestPercent"`
	SeniorInterestPercent     float64 `mapstructure:"seniorCitizenInterestPercent" yaml:"seniorCitizenInterestPercent" json:"seniorCitizenInterestPercent"`
	HorizonYears              int     `mapstructure:"horizonYears" yaml:"horizonYears" json:"horizonYears"`
	MinHorizonYears           int     `mapstructure:"minHorizonYears" yaml:"minHorizonYears" json:"minHorizonYears"`
	MaxHorizonYears           int     `mapstructure:"maxHorizonYears" yaml:"maxHorizonYears" json:"maxHorizonYears"`
	CoveragePercent           float64 `mapstructure:"coveragePercent" yaml:"coveragePercent" json:"coveragePercent"`
	DegradationPercentPerYear float64 `mapstructure:"degradationPercentPerYear" yaml:"degradationPercentPerYear" json:"degradationPercentPerYear"`
	MaxOffsetPercent          float64 `mapstructure:"maxOffsetPercent" yaml:"maxOffsetPercent" json:"maxOffsetPercent"`
	GridConnectionChargeMin   float64 `mapstructure:"gridConnectionChargeMin" yaml:"gridConnectionChargeMin" json:"gridConnectionChargeMin"`
	GridConnectionChargeMax   float64 `mapstructure:"gridConnectionChargeMax" yaml:"gridConnectionChargeMax" json:"gridConnectionChargeMax"`
}

// Tables is the complete reference data bundle.
type Tables struct {
	ReferenceDailyYield float64                 `yaml:"referenceDailyYield" json:"referenceDailyYield"` // kWh/kWp/day, South facing
	FallbackAnnualYield float64                 `yaml:"fallbackAnnualYield" json:"fallbackAnnualYield"` // kWh/kWp/year
	AreaPerUnit         float64                 `yaml:"areaPerUnit" json:"areaPerUnit"`                 // m² per kWp
	PanelRatingWatts    float64                 `yaml:"panelRatingWatts" json:"panelRatingWatts"`
	CapacityTiers       CapacityTierTable       `yaml:"capacityTiers" json:"capacityTiers"`
	Subsidy             SubsidyPolicy           `yaml:"subsidy" json:"subsidy"`
	OrientationDerate   map[Orientation]float64 `yaml:"orientationDerate" json:"orientationDerate"`
	Rates               Rates                   `yaml:"rates" json:"rates"`
	ConsumptionPresets  map[string]float64      `yaml:"consumptionPresets" json:"consumptionPresets"` // kWh/year by property type
}

// Default returns the built-in reference tables. Every call returns a fresh
// copy, so callers may modify the result without affecting other callers.
func Default() Tables {
	return Tables{
		ReferenceDailyYield: 5,
		FallbackAnnualYield: 1400,
		AreaPerUnit:         4.53,
		PanelRatingWatts:    570,
		CapacityTiers: CapacityTierTable{
			Tiers: []CapacityTier{
				{Label: "1kW", UpperBound: 1, CostPerUnit: 75000},
				{Label: "2kW", UpperBound: 2, CostPerUnit: 70000},
				{Label: "3kW", UpperBound: 3.3, CostPerUnit: 72727},
				{Label: "4kW", UpperBound: 4.6, CostPerUnit: 73913},
				{Label: "5kW", UpperBound: 5, CostPerUnit: 73000},
			},
			AboveMax: CapacityTier{Label: "Above 5kW", CostPerUnit: 72000},
		},
		Subsidy: SubsidyPolicy{
			FirstThreshold:  2,
			FirstRate:       30000,
			SecondThreshold: 3,
			SecondRate:      18000,
			Cap:             78000,
		},
		OrientationDerate: map[Orientation]float64{
			South:     1.00,
			SouthEast: 0.95,
			SouthWest: 0.95,
			East:      0.75,
			West:      0.75,
			North:     0.60,
			Flat:      0.90,
		},
		Rates: Rates{
			PriceInflationPercent:     6,
			BenchmarkInterestPercent:  6,
			SeniorInterestPercent:     7,
			HorizonYears:              25,
			MinHorizonYears:           5,
			MaxHorizonYears:           30,
			CoveragePercent:           100,
			DegradationPercentPerYear: 0.5,
			MaxOffsetPercent:          90,
			GridConnectionChargeMin:   15000,
			GridConnectionChargeMax:   20000,
		},
		ConsumptionPresets: map[string]float64{
			"apartment-small":  1500,
			"apartment-medium": 3000,
			"house-small":      5000,
			"house-medium":     8000,
			"house-large":      12000,
		},
	}
}

// Clone returns a deep copy of t.
func (t Tables) Clone() Tables {
	out := t
	out.CapacityTiers.Tiers = append([]CapacityTier(nil), t.CapacityTiers.Tiers...)
	out.OrientationDerate = make(map[Orientation]float64, len(t.OrientationDerate))
	for k, v := range t.OrientationDerate {
		out.OrientationDerate[k] = v
	}
	out.ConsumptionPresets = make(map[string]float64, len(t.ConsumptionPresets))
	for k, v := range t.ConsumptionPresets {
		out.ConsumptionPresets[k] = v
	}
	return out
}

// ConsumptionPreset returns the typical annual consumption for a property
// type. Lookup ignores case.
func (t Tables) ConsumptionPreset(propertyType string) (float64, bool) {
	v, ok := t.ConsumptionPresets[strings.ToLower(strings.TrimSpace(propertyType))]
	return v, ok
}
