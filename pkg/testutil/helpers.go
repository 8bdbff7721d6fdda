// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/solar-forecast/internal/forecast"
	"github.com/iwvelando/solar-forecast/internal/solar"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindScenario(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// SolarYear returns the projection record for year, or nil when the
// projection does not reach it.
func SolarYear(result *forecast.Forecast, year int) *solar.SolarYear {
	if result == nil {
		return nil
	}
	for i := range result.Estimate.Projection.Solar {
		if result.Estimate.Projection.Solar[i].Year == year {
			return &result.Estimate.Projection.Solar[i]
		}
	}
	return nil
}
