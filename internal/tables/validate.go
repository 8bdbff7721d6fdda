package tables

import (
	"fmt"
	"strings"

	"github.com/iwvelando/solar-forecast/pkg/constants"
)

// Validate checks the integrity of the bundle: tier bounds strictly
// increasing, positive costs and yields, a monotone subsidy schedule that
// reaches its cap exactly at the second threshold, a derate factor in (0, 1]
// for every orientation and sane default rates. All problems are reported in
// a single error.
func (t Tables) Validate() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if t.ReferenceDailyYield <= 0 {
		add("referenceDailyYield must be positive, got %v", t.ReferenceDailyYield)
	}
	if t.FallbackAnnualYield <= 0 {
		add("fallbackAnnualYield must be positive, got %v", t.FallbackAnnualYield)
	}
	if t.AreaPerUnit <= 0 {
		add("areaPerUnit must be positive, got %v", t.AreaPerUnit)
	}
	if t.PanelRatingWatts <= 0 {
		add("panelRatingWatts must be positive, got %v", t.PanelRatingWatts)
	}

	if len(t.CapacityTiers.Tiers) == 0 {
		add("capacity tier table is empty")
	}
	previous := 0.0
	for i, tier := range t.CapacityTiers.Tiers {
		if tier.UpperBound <= previous {
			add("capacity tier %d (%s) bound %v is not above previous bound %v", i, tier.Label, tier.UpperBound, previous)
		}
		if tier.CostPerUnit <= 0 {
			add("capacity tier %d (%s) cost must be positive, got %v", i, tier.Label, tier.CostPerUnit)
		}
		previous = tier.UpperBound
	}
	if t.CapacityTiers.AboveMax.CostPerUnit <= 0 {
		add("above-max tier cost must be positive, got %v", t.CapacityTiers.AboveMax.CostPerUnit)
	}

	s := t.Subsidy
	if s.FirstThreshold <= 0 {
		add("subsidy firstThreshold must be positive, got %v", s.FirstThreshold)
	}
	if s.SecondThreshold <= s.FirstThreshold {
		add("subsidy secondThreshold %v must be above firstThreshold %v", s.SecondThreshold, s.FirstThreshold)
	}
	if s.FirstRate < 0 || s.SecondRate < 0 || s.Cap < 0 {
		add("subsidy rates and cap must not be negative")
	}
	if atFirst := s.FirstThreshold * s.FirstRate; atFirst > s.Cap {
		add("subsidy at firstThreshold (%v) exceeds cap %v", atFirst, s.Cap)
	}
	if atSecond := s.FirstThreshold*s.FirstRate + (s.SecondThreshold-s.FirstThreshold)*s.SecondRate; atSecond < s.Cap {
		add("subsidy at secondThreshold (%v) does not reach cap %v", atSecond, s.Cap)
	}

	for _, o := range Orientations {
		factor, ok := t.OrientationDerate[o]
		if !ok {
			add("missing derate factor for orientation %s", o)
			continue
		}
		if factor <= 0 || factor > 1 {
			add("derate factor for %s must be in (0, 1], got %v", o, factor)
		}
	}

	r := t.Rates
	if r.PriceInflationPercent < 0 || r.BenchmarkInterestPercent < 0 || r.SeniorInterestPercent < 0 {
		add("default rates must not be negative")
	}
	if r.HorizonYears <= 0 {
		add("default horizonYears must be positive, got %d", r.HorizonYears)
	}
	if r.HorizonYears > constants.MaxProjectionYears || r.MaxHorizonYears > constants.MaxProjectionYears {
		add("horizon defaults must not exceed %d years", constants.MaxProjectionYears)
	}
	if r.MinHorizonYears > r.MaxHorizonYears {
		add("minHorizonYears %d exceeds maxHorizonYears %d", r.MinHorizonYears, r.MaxHorizonYears)
	}
	if r.CoveragePercent < 0 || r.CoveragePercent > 100 {
		add("default coveragePercent must be within 0-100, got %v", r.CoveragePercent)
	}
	if r.DegradationPercentPerYear < 0 || r.DegradationPercentPerYear >= 100 {
		add("degradationPercentPerYear must be within [0, 100), got %v", r.DegradationPercentPerYear)
	}
	if r.MaxOffsetPercent <= 0 || r.MaxOffsetPercent > 100 {
		add("maxOffsetPercent must be within (0, 100], got %v", r.MaxOffsetPercent)
	}
	if r.GridConnectionChargeMin < 0 || r.GridConnectionChargeMax < r.GridConnectionChargeMin {
		add("grid connection charge range [%v, %v] is invalid", r.GridConnectionChargeMin, r.GridConnectionChargeMax)
	}

	for name, kwh := range t.ConsumptionPresets {
		if kwh <= 0 {
			add("consumption preset %q must be positive, got %v", name, kwh)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid reference tables: %s", strings.Join(problems, "; "))
	}
	return nil
}
