package solar

import (
	"github.com/iwvelando/solar-forecast/pkg/format"
	"go.uber.org/zap"
)

// Estimate is the full engine output for one profile.
type Estimate struct {
	Profile            InputProfile     `json:"profile"`
	YieldPerUnit       float64          `json:"yieldPerUnit"`
	CapacityKW         float64          `json:"capacityKW"`
	PanelCount         int              `json:"panelCount"`
	Year1ProductionKWh float64          `json:"year1ProductionKWh"`
	Year1Savings       float64          `json:"year1Savings"`
	Cost               CostBreakdown    `json:"cost"`
	Projection         ProjectionResult `json:"projection"`
	Notes              []string         `json:"notes,omitempty"`
}

// Estimate chains the calculators in order: production, sizing, costing,
// savings and projection. Unset rates and horizon come from the tables.
func (e *Engine) Estimate(p InputProfile) Estimate {
	p = p.WithDefaults(e.tables.Rates)

	yieldPerUnit := e.AnnualYieldPerUnit(p.Orientation)
	capacity := e.SizeSystem(p, yieldPerUnit)
	cost := e.Cost(capacity)
	year1Production := capacity * yieldPerUnit
	year1Savings := e.AnnualSavings(p, year1Production)
	projection := e.Project(p, cost.NetCost, year1Production, year1Savings, p.HorizonYears)

	est := Estimate{
		Profile:            p,
		YieldPerUnit:       yieldPerUnit,
		CapacityKW:         capacity,
		PanelCount:         e.PanelCount(capacity),
		Year1ProductionKWh: year1Production,
		Year1Savings:       year1Savings,
		Cost:               cost,
		Projection:         projection,
		Notes:              e.notes(capacity),
	}

	fields := []zap.Field{
		zap.String("op", "solar.Estimate"),
		zap.Float64("capacityKW", capacity),
		zap.Float64("netCost", cost.NetCost),
		zap.Int("horizonYears", p.HorizonYears),
	}
	if year, ok := projection.Payback(); ok {
		fields = append(fields, zap.Int("paybackYear", year))
	}
	e.logger.Debug("estimate computed", fields...)

	return est
}

func (e *Engine) notes(capacity float64) []string {
	if capacity <= 0 {
		return nil
	}
	r := e.tables.Rates
	if r.GridConnectionChargeMax <= 0 {
		return nil
	}
	return []string{
		"net cost excludes one-time grid connection (meter) charges of " +
			format.Currency(r.GridConnectionChargeMin) + "-" + format.NumericCurrency(r.GridConnectionChargeMax),
	}
}
