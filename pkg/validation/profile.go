package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/solar-forecast/internal/solar"
	"github.com/iwvelando/solar-forecast/internal/tables"
	"github.com/iwvelando/solar-forecast/pkg/constants"
)

// FieldError describes one rejected profile field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ProfileErrors aggregates every rejected field of a profile.
type ProfileErrors []FieldError

func (e ProfileErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "invalid input profile: " + strings.Join(parts, "; ")
}

// ValidateProfile rejects profiles the engine would only degenerate on:
// non-positive consumption, price or roof area, an unrecognized orientation,
// coverage outside 0-100, a negative budget, negative rates or a horizon that is
// negative or beyond constants.MaxProjectionYears. A horizon outside the
// recommended bounds is returned as a warning.
func ValidateProfile(p solar.InputProfile, t tables.Tables) ([]string, error) {
	var errs ProfileErrors
	reject := func(field, format string, args ...interface{}) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if p.AnnualConsumptionKWh <= 0 {
		reject("annualConsumptionKWh", "must be positive, got %v", p.AnnualConsumptionKWh)
	}
	if p.ElectricityPrice <= 0 {
		reject("electricityPrice", "must be positive, got %v", p.ElectricityPrice)
	}
	if p.RoofAreaM2 <= 0 {
		reject("roofAreaM2", "must be positive, got %v", p.RoofAreaM2)
	}
	if _, ok := t.OrientationDerate[p.Orientation]; !ok {
		reject("orientation", "unrecognized orientation %q", p.Orientation)
	}
	if p.CoveragePercent < 0 || p.CoveragePercent > 100 {
		reject("coveragePercent", "must be within 0-100, got %v", p.CoveragePercent)
	}
	if p.Budget < 0 {
		reject("budget", "must not be negative, got %v", p.Budget)
	}
	if p.PriceInflationPercent != nil && *p.PriceInflationPercent < 0 {
		reject("priceInflationPercent", "must not be negative, got %v", *p.PriceInflationPercent)
	}
	if p.BenchmarkInterestPercent != nil && *p.BenchmarkInterestPercent < 0 {
		reject("benchmarkInterestPercent", "must not be negative, got %v", *p.BenchmarkInterestPercent)
	}
	if p.HorizonYears < 0 {
		reject("horizonYears", "must not be negative, got %d", p.HorizonYears)
	}
	if p.HorizonYears > constants.MaxProjectionYears {
		reject("horizonYears", "must not exceed %d, got %d", constants.MaxProjectionYears, p.HorizonYears)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	var warnings []string
	r := t.Rates
	if p.HorizonYears != 0 && (p.HorizonYears < r.MinHorizonYears || p.HorizonYears > r.MaxHorizonYears) {
		warnings = append(warnings, fmt.Sprintf("projection horizon of %d years is outside the recommended %d-%d years",
			p.HorizonYears, r.MinHorizonYears, r.MaxHorizonYears))
	}
	return warnings, nil
}
