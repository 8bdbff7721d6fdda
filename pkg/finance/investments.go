// Package finance provides the compounding primitives behind the year-over-year
// projections: price inflation, output degradation and deposit growth.
package finance

import (
	"math"

	"github.com/iwvelando/solar-forecast/pkg/mathutil"
)

// Inflate returns base grown by ratePercent per period for the given number
// of periods.
func Inflate(base, ratePercent float64, periods int) float64 {
	if periods <= 0 {
		return base
	}
	return base * math.Pow(1+mathutil.PercentToDecimal(ratePercent), float64(periods))
}

// Degrade returns base reduced by ratePercent per period for the given
// number of periods.
func Degrade(base, ratePercent float64, periods int) float64 {
	if periods <= 0 {
		return base
	}
	return base * math.Pow(1-mathutil.PercentToDecimal(ratePercent), float64(periods))
}

// DepositState tracks the running balance of a fixed-rate deposit that is
// renewed at the same rate every period.
type DepositState struct {
	Balance     float64
	RatePercent float64
}

// NewDeposit opens a deposit with the given principal and fixed rate.
func NewDeposit(principal, ratePercent float64) DepositState {
	return DepositState{Balance: principal, RatePercent: ratePercent}
}

// Compound returns the state after one more period of interest. The rate is
// never adjusted between periods.
func (d DepositState) Compound() DepositState {
	d.Balance *= 1 + mathutil.PercentToDecimal(d.RatePercent)
	return d
}
