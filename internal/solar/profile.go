package solar

import (
	"github.com/iwvelando/solar-forecast/internal/tables"
)

// InputProfile describes one household and installation site. Rates are in
// percent. A nil rate pointer or a zero horizon means "use the table
// default"; a Budget of zero or less means no budget constraint.
type InputProfile struct {
	AnnualConsumptionKWh     float64            `json:"annualConsumptionKWh"`
	ElectricityPrice         float64            `json:"electricityPrice"`
	RoofAreaM2               float64            `json:"roofAreaM2"`
	Orientation              tables.Orientation `json:"orientation"`
	CoveragePercent          float64            `json:"coveragePercent"`
	Budget                   float64            `json:"budget,omitempty"`
	PriceInflationPercent    *float64           `json:"priceInflationPercent,omitempty"`
	BenchmarkInterestPercent *float64           `json:"benchmarkInterestPercent,omitempty"`
	HorizonYears             int                `json:"horizonYears,omitempty"`
}

// HasBudget reports whether the budget constraint applies.
func (p InputProfile) HasBudget() bool {
	return p.Budget > 0
}

// WithDefaults returns a copy of p with unset rates and horizon filled from
// the rate table.
func (p InputProfile) WithDefaults(r tables.Rates) InputProfile {
	inflation := p.priceInflation(r)
	interest := p.benchmarkInterest(r)
	p.PriceInflationPercent = &inflation
	p.BenchmarkInterestPercent = &interest
	if p.HorizonYears <= 0 {
		p.HorizonYears = r.HorizonYears
	}
	return p
}

func (p InputProfile) priceInflation(r tables.Rates) float64 {
	if p.PriceInflationPercent == nil {
		return r.PriceInflationPercent
	}
	return *p.PriceInflationPercent
}

func (p InputProfile) benchmarkInterest(r tables.Rates) float64 {
	if p.BenchmarkInterestPercent == nil {
		return r.BenchmarkInterestPercent
	}
	return *p.BenchmarkInterestPercent
}
