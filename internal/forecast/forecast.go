// Package forecast runs the configured scenarios through the solar engine.
package forecast

import (
	"fmt"

	"github.com/iwvelando/solar-forecast/internal/config"
	"github.com/iwvelando/solar-forecast/internal/solar"
	"github.com/iwvelando/solar-forecast/internal/tables"
	"github.com/iwvelando/solar-forecast/pkg/validation"
	"go.uber.org/zap"
)

// Forecast holds the estimate for one scenario along with any non-fatal
// validation warnings.
type Forecast struct {
	Name     string         `json:"name"`
	Estimate solar.Estimate `json:"estimate"`
	Warnings []string       `json:"warnings,omitempty"`
}

// GetForecast processes the Forecasts for all active Scenarios. An invalid
// scenario aborts the run with an error naming it.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	referenceTables, err := conf.ReferenceTables()
	if err != nil {
		return nil, fmt.Errorf("failed to build reference tables: %w", err)
	}

	return Run(logger, solar.NewEngine(logger, referenceTables), conf.Scenarios)
}

// Run estimates each active scenario with the given engine.
func Run(logger *zap.Logger, engine *solar.Engine, scenarios []config.Scenario) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	referenceTables := engine.Tables()

	var results []Forecast
	for _, scenario := range scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.Run"),
			)
			continue
		}

		result, err := RunScenario(engine, referenceTables, scenario)
		if err != nil {
			return results, err
		}

		for _, warning := range result.Warnings {
			logger.Warn(warning,
				zap.String("op", "forecast.Run"),
				zap.String("scenario", scenario.Name),
			)
		}
		results = append(results, result)
	}

	return results, nil
}

// RunScenario converts, validates and estimates a single scenario.
func RunScenario(engine *solar.Engine, t tables.Tables, scenario config.Scenario) (Forecast, error) {
	profile, err := scenario.Profile(t)
	if err != nil {
		return Forecast{}, err
	}

	warnings, err := validation.ValidateProfile(profile, t)
	if err != nil {
		return Forecast{}, fmt.Errorf("scenario '%s': %w", scenario.Name, err)
	}

	return Forecast{
		Name:     scenario.Name,
		Estimate: engine.Estimate(profile),
		Warnings: warnings,
	}, nil
}
