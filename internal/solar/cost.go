package solar

import (
	"github.com/iwvelando/solar-forecast/pkg/mathutil"
)

// CostBreakdown is the installed cost of a system. Amounts are rounded to
// whole currency units.
type CostBreakdown struct {
	Tier        string  `json:"tier,omitempty"`
	CostPerUnit float64 `json:"costPerUnit"`
	GrossCost   float64 `json:"grossCost"`
	Subsidy     float64 `json:"subsidy"`
	NetCost     float64 `json:"netCost"`
}

// Cost prices a capacity from its own tier and subtracts the subsidy.
// Rounding happens once, on the final figures. NetCost is reported as
// computed even if a misconfigured subsidy exceeds the gross cost.
func (e *Engine) Cost(capacity float64) CostBreakdown {
	if capacity <= 0 {
		return CostBreakdown{}
	}

	tier := e.tables.CapacityTiers.Lookup(capacity)
	gross := tier.CostPerUnit * capacity
	subsidy := e.Subsidy(capacity)

	return CostBreakdown{
		Tier:        tier.Label,
		CostPerUnit: tier.CostPerUnit,
		GrossCost:   mathutil.RoundWhole(gross),
		Subsidy:     mathutil.RoundWhole(subsidy),
		NetCost:     mathutil.RoundWhole(gross - subsidy),
	}
}

// Subsidy evaluates the piecewise-linear subsidy schedule, unrounded.
func (e *Engine) Subsidy(capacity float64) float64 {
	s := e.tables.Subsidy
	switch {
	case capacity <= 0:
		return 0
	case capacity <= s.FirstThreshold:
		return capacity * s.FirstRate
	case capacity <= s.SecondThreshold:
		incremental := s.FirstThreshold*s.FirstRate + (capacity-s.FirstThreshold)*s.SecondRate
		return mathutil.Min(incremental, s.Cap)
	default:
		return s.Cap
	}
}
