package solar

import (
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/finance"
	"github.com/iwvelando/solar-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// SolarYear is one year of the solar series. Figures are rounded to whole
// units for display.
type SolarYear struct {
	Year               int     `json:"year"`
	ProductionKWh      float64 `json:"productionKWh"`
	Savings            float64 `json:"savings"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
}

// BenchmarkYear is one year of the fixed-deposit benchmark series.
type BenchmarkYear struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

// ProjectionResult holds both series, each horizon+1 entries long starting
// at year 0. PaybackYear is nil when the cumulative solar cash flow never
// reaches zero within the horizon.
type ProjectionResult struct {
	Solar       []SolarYear     `json:"solar"`
	Benchmark   []BenchmarkYear `json:"benchmark"`
	PaybackYear *int            `json:"paybackYear"`
}

// Payback returns the payback year and whether one was reached.
func (r ProjectionResult) Payback() (int, bool) {
	if r.PaybackYear == nil {
		return 0, false
	}
	return *r.PaybackYear, true
}

// projectionState is the accumulator folded over the year sequence.
// Cumulative holds unrounded savings.
type projectionState struct {
	cumulative float64
	deposit    finance.DepositState
	payback    *int
}

// Project runs the year-by-year comparison. Each year degrades production,
// inflates the price and recomputes savings through AnnualSavings. The
// benchmark compounds netCost at a rate fixed for the whole horizon.
// year1Savings is only used to cross-check the year-1 recomputation.
func (e *Engine) Project(p InputProfile, netCost, year1Production, year1Savings float64, horizonYears int) ProjectionResult {
	if horizonYears < 0 {
		horizonYears = 0
	}
	if horizonYears > constants.MaxProjectionYears {
		e.logger.Warn("projection horizon clamped",
			zap.String("op", "solar.Project"),
			zap.Int("requested", horizonYears),
			zap.Int("limit", constants.MaxProjectionYears))
		horizonYears = constants.MaxProjectionYears
	}

	rates := e.tables.Rates
	inflation := p.priceInflation(rates)
	interest := p.benchmarkInterest(rates)

	result := ProjectionResult{
		Solar:     make([]SolarYear, 0, horizonYears+1),
		Benchmark: make([]BenchmarkYear, 0, horizonYears+1),
	}
	result.Solar = append(result.Solar, SolarYear{Year: 0, CumulativeCashFlow: -netCost})
	result.Benchmark = append(result.Benchmark, BenchmarkYear{Year: 0, Balance: netCost})

	state := projectionState{
		cumulative: -netCost,
		deposit:    finance.NewDeposit(netCost, interest),
	}

	for year := 1; year <= horizonYears; year++ {
		production := finance.Degrade(year1Production, rates.DegradationPercentPerYear, year-1)
		priced := p
		priced.ElectricityPrice = finance.Inflate(p.ElectricityPrice, inflation, year-1)
		savings := e.AnnualSavings(priced, production)

		if year == 1 && !mathutil.WithinTolerance(savings, year1Savings, 1e-6) {
			e.logger.Debug("year-1 savings differ from supplied figure",
				zap.String("op", "solar.Project"),
				zap.Float64("computed", savings),
				zap.Float64("supplied", year1Savings),
			)
		}

		var solarYear SolarYear
		var benchmarkYear BenchmarkYear
		state, solarYear, benchmarkYear = advance(state, year, production, savings)
		result.Solar = append(result.Solar, solarYear)
		result.Benchmark = append(result.Benchmark, benchmarkYear)
	}

	result.PaybackYear = state.payback
	return result
}

// advance folds one year into the running state and emits the rounded
// records for it.
func advance(state projectionState, year int, production, savings float64) (projectionState, SolarYear, BenchmarkYear) {
	state.cumulative += savings
	if state.payback == nil && state.cumulative >= 0 {
		y := year
		state.payback = &y
	}
	state.deposit = state.deposit.Compound()

	return state,
		SolarYear{
			Year:               year,
			ProductionKWh:      mathutil.RoundWhole(production),
			Savings:            mathutil.RoundWhole(savings),
			CumulativeCashFlow: mathutil.RoundWhole(state.cumulative),
		},
		BenchmarkYear{
			Year:    year,
			Balance: mathutil.RoundWhole(state.deposit.Balance),
		}
}
