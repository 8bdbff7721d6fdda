package solar

import (
	"github.com/iwvelando/solar-forecast/pkg/mathutil"
)

// AnnualSavings values one year of production at the profile's electricity
// price. At most MaxOffsetPercent of consumption can be offset, since some
// residual grid bill always remains; production is not credited beyond it.
func (e *Engine) AnnualSavings(p InputProfile, productionKWh float64) float64 {
	if p.AnnualConsumptionKWh <= 0 || p.ElectricityPrice <= 0 || productionKWh <= 0 {
		return 0
	}

	offsetCeiling := mathutil.ApplyPercentage(p.AnnualConsumptionKWh, e.tables.Rates.MaxOffsetPercent)
	if productionKWh >= offsetCeiling {
		return offsetCeiling * p.ElectricityPrice
	}
	return productionKWh * p.ElectricityPrice
}
