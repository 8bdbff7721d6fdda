package solar

import (
	"github.com/iwvelando/solar-forecast/internal/tables"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"go.uber.org/zap"
)

// ReferenceAnnualYield is the South-facing yield in kWh per kWp per year.
func (e *Engine) ReferenceAnnualYield() float64 {
	return e.tables.ReferenceDailyYield * constants.DaysPerYear
}

// AnnualYieldPerUnit estimates the annual energy yield in kWh per installed
// kWp for a roof orientation. Orientations outside the enumeration get the
// generic fallback yield.
func (e *Engine) AnnualYieldPerUnit(orientation tables.Orientation) float64 {
	factor, ok := e.tables.OrientationDerate[orientation]
	if !ok {
		e.logger.Debug("unknown orientation, using fallback yield",
			zap.String("op", "solar.AnnualYieldPerUnit"),
			zap.String("orientation", string(orientation)),
			zap.Float64("yield", e.tables.FallbackAnnualYield),
		)
		return e.tables.FallbackAnnualYield
	}
	return e.ReferenceAnnualYield() * factor
}
