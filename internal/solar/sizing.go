package solar

import (
	"math"

	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// SizeSystem converts the desired coverage into a recommended capacity in
// kWp, then clamps it by roof area and, when a budget is set, by budget. The
// clamps run in that order; the budget clamp prices the already area-clamped
// capacity using the same tier table as Cost. Degenerate inputs give 0.
func (e *Engine) SizeSystem(p InputProfile, yieldPerUnit float64) float64 {
	if p.AnnualConsumptionKWh <= 0 || yieldPerUnit <= 0 {
		return 0
	}

	targetEnergy := mathutil.ApplyPercentage(p.AnnualConsumptionKWh, p.CoveragePercent)
	capacity := targetEnergy / yieldPerUnit

	if areaCap := e.MaxCapacityForArea(p.RoofAreaM2); capacity > areaCap {
		e.logger.Debug("capacity limited by roof area",
			zap.String("op", "solar.SizeSystem"),
			zap.Float64("required", capacity),
			zap.Float64("areaCap", areaCap),
		)
		capacity = areaCap
	}

	if p.HasBudget() {
		// The tier is chosen from the area-clamped capacity, before the
		// budget clamp moves it; Cost re-selects from the final value.
		tier := e.tables.CapacityTiers.Lookup(capacity)
		budgetCap := p.Budget / tier.CostPerUnit
		if capacity > budgetCap {
			e.logger.Debug("capacity limited by budget",
				zap.String("op", "solar.SizeSystem"),
				zap.Float64("required", capacity),
				zap.Float64("budgetCap", budgetCap),
				zap.String("tier", tier.Label),
			)
			capacity = budgetCap
		}
	}

	return mathutil.Max(capacity, 0)
}

// MaxCapacityForArea is the largest capacity the roof area can hold.
func (e *Engine) MaxCapacityForArea(roofAreaM2 float64) float64 {
	return roofAreaM2 / e.tables.AreaPerUnit
}

// PanelCount is the number of reference panels needed for a capacity.
func (e *Engine) PanelCount(capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Ceil(capacity * constants.WattsPerKilowatt / e.tables.PanelRatingWatts))
}
