package forecast

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/solar-forecast/internal/config"
	"github.com/iwvelando/solar-forecast/internal/solar"
	"github.com/iwvelando/solar-forecast/internal/tables"
	"github.com/iwvelando/solar-forecast/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func referenceScenario(name string) config.Scenario {
	return config.Scenario{
		Name:                 name,
		Active:               true,
		AnnualConsumptionKWh: 5000,
		ElectricityPrice:     8,
		RoofAreaM2:           50,
		Orientation:          "South",
	}
}

func TestGetForecast(t *testing.T) {
	inactive := referenceScenario("Inactive")
	inactive.Active = false

	conf := config.Configuration{
		Scenarios: []config.Scenario{referenceScenario("Reference"), inactive},
	}

	results, err := GetForecast(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	est := results[0].Estimate
	if results[0].Name != "Reference" {
		t.Errorf("name = %q", results[0].Name)
	}
	if math.Abs(est.CapacityKW-5000.0/1825.0) > 1e-9 {
		t.Errorf("capacity = %v, want %v", est.CapacityKW, 5000.0/1825.0)
	}
	if est.Cost.NetCost != 125937 {
		t.Errorf("net cost = %v, want 125937", est.Cost.NetCost)
	}
	if year, ok := est.Projection.Payback(); !ok || year != 4 {
		t.Errorf("payback = %d (%v), want 4", year, ok)
	}
	if len(est.Projection.Solar) != 26 {
		t.Errorf("default horizon not applied: %d solar years", len(est.Projection.Solar))
	}
}

func TestGetForecastNilLogger(t *testing.T) {
	conf := config.Configuration{Scenarios: []config.Scenario{referenceScenario("Reference")}}
	if _, err := GetForecast(nil, conf); err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}
}

func TestGetForecastTableOverrides(t *testing.T) {
	yield := 4.0
	conf := config.Configuration{
		Tables:    tables.Overrides{ReferenceDailyYield: &yield},
		Scenarios: []config.Scenario{referenceScenario("Reference")},
	}

	results, err := GetForecast(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}
	if got := results[0].Estimate.YieldPerUnit; got != 1460 {
		t.Errorf("yield per unit = %v, want 1460", got)
	}
}

func TestGetForecastInvalidTables(t *testing.T) {
	area := 0.0
	conf := config.Configuration{
		Tables:    tables.Overrides{AreaPerUnit: &area},
		Scenarios: []config.Scenario{referenceScenario("Reference")},
	}
	if _, err := GetForecast(zap.NewNop(), conf); err == nil {
		t.Fatal("expected error for invalid tables")
	}
}

func TestGetForecastInvalidScenario(t *testing.T) {
	bad := referenceScenario("Broken")
	bad.ElectricityPrice = 0
	bad.Orientation = "Sideways"

	conf := config.Configuration{
		Scenarios: []config.Scenario{referenceScenario("Good"), bad},
	}

	results, err := GetForecast(zap.NewNop(), conf)
	if err == nil {
		t.Fatal("expected error for invalid scenario")
	}
	if !strings.Contains(err.Error(), "scenario 'Broken'") {
		t.Errorf("error should name the scenario: %v", err)
	}

	var profileErrs validation.ProfileErrors
	if !errors.As(err, &profileErrs) {
		t.Fatalf("expected validation.ProfileErrors in chain, got %T", err)
	}
	if len(profileErrs) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(profileErrs), profileErrs)
	}
	if len(results) != 1 {
		t.Errorf("results before the failure should be returned, got %d", len(results))
	}
}

func TestRunLogsWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	scenario := referenceScenario("Short horizon")
	scenario.HorizonYears = 3

	engine := solar.NewEngine(logger, tables.Default())
	results, err := Run(logger, engine, []config.Scenario{scenario})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results[0].Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", results[0].Warnings)
	}
	if len(results[0].Estimate.Projection.Solar) != 4 {
		t.Errorf("out-of-range horizon should still be honoured, got %d years", len(results[0].Estimate.Projection.Solar))
	}

	entries := logs.FilterField(zap.String("scenario", "Short horizon")).All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 logged warning, got %d", len(entries))
	}
}

func TestRunScenarioPresets(t *testing.T) {
	tbl := tables.Default()
	engine := solar.NewEngine(zap.NewNop(), tbl)

	scenario := config.Scenario{
		Name:             "Preset",
		Active:           true,
		PropertyType:     "house-small",
		ElectricityPrice: 8,
		RoofAreaM2:       50,
		Orientation:      "south",
		BenchmarkPreset:  config.BenchmarkPresetSeniorCitizen,
		HorizonYears:     5,
	}

	result, err := RunScenario(engine, tbl, scenario)
	if err != nil {
		t.Fatalf("RunScenario() error = %v", err)
	}
	est := result.Estimate
	if est.Profile.AnnualConsumptionKWh != 5000 {
		t.Errorf("consumption = %v, want 5000", est.Profile.AnnualConsumptionKWh)
	}
	if *est.Profile.BenchmarkInterestPercent != 7 {
		t.Errorf("benchmark rate = %v, want 7", *est.Profile.BenchmarkInterestPercent)
	}

	want := est.Cost.NetCost * math.Pow(1.07, 5)
	got := est.Projection.Benchmark[5].Balance
	if math.Abs(got-math.Round(want)) > 1 {
		t.Errorf("benchmark year 5 = %v, want about %v", got, want)
	}
}

func TestRunScenarioUnknownPropertyType(t *testing.T) {
	tbl := tables.Default()
	engine := solar.NewEngine(zap.NewNop(), tbl)

	scenario := referenceScenario("Castle")
	scenario.AnnualConsumptionKWh = 0
	scenario.PropertyType = "castle"

	if _, err := RunScenario(engine, tbl, scenario); err == nil {
		t.Fatal("expected error for unknown property type")
	}
}
