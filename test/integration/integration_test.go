package integration

import (
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/solar-forecast/internal/config"
	"github.com/iwvelando/solar-forecast/internal/forecast"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/output"
	"github.com/iwvelando/solar-forecast/pkg/testutil"
	"go.uber.org/zap"
)

func loadResults(t *testing.T) []forecast.Forecast {
	t.Helper()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("unexpected configuration warnings: %v", warnings)
	}

	results, err := forecast.GetForecast(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}
	return results
}

// TestMainIntegrationBaseline runs the sample configuration the way main()
// does and checks hand-derived figures for each scenario.
func TestMainIntegrationBaseline(t *testing.T) {
	results := loadResults(t)

	expectedScenarios := []string{
		"Reference home",
		"Small east roof with budget",
		"Senior benchmark",
		"Tiny north roof",
	}
	if len(results) != len(expectedScenarios) {
		t.Fatalf("Expected %d scenarios, got %d", len(expectedScenarios), len(results))
	}
	for i, expected := range expectedScenarios {
		if results[i].Name != expected {
			t.Errorf("Expected scenario %s, got %s", expected, results[i].Name)
		}
	}

	baselineChecks := []struct {
		scenario     string
		capacity     float64
		tier         string
		netCost      float64
		year1Savings float64
		payback      int // 0 means not within horizon
	}{
		{"Reference home", 5000.0 / 1825.0, "3kW", 125937, 36000, 4},
		{"Small east roof with budget", 60000.0 / 70000.0, "1kW", 38571, 8212.5, 5},
		{"Senior benchmark", 6400.0 / 1733.75, "4kW", 194844, 57600, 4},
	}

	for _, check := range baselineChecks {
		result := testutil.FindScenario(results, check.scenario)
		if result == nil {
			t.Errorf("Scenario '%s' not found in results", check.scenario)
			continue
		}
		est := result.Estimate

		if math.Abs(est.CapacityKW-check.capacity) > 1e-9 {
			t.Errorf("%s: capacity = %v, want %v", check.scenario, est.CapacityKW, check.capacity)
		}
		if est.Cost.Tier != check.tier {
			t.Errorf("%s: tier = %s, want %s", check.scenario, est.Cost.Tier, check.tier)
		}
		if est.Cost.NetCost != check.netCost {
			t.Errorf("%s: net cost = %v, want %v", check.scenario, est.Cost.NetCost, check.netCost)
		}
		if math.Abs(est.Year1Savings-check.year1Savings) > 1e-6 {
			t.Errorf("%s: year-1 savings = %v, want %v", check.scenario, est.Year1Savings, check.year1Savings)
		}
		year, ok := est.Projection.Payback()
		if check.payback == 0 && ok {
			t.Errorf("%s: expected no payback, got year %d", check.scenario, year)
		}
		if check.payback != 0 && (!ok || year != check.payback) {
			t.Errorf("%s: payback = %d (%v), want %d", check.scenario, year, ok, check.payback)
		}
	}
}

// TestScenarioInvariants checks the relationships every estimate must hold.
func TestScenarioInvariants(t *testing.T) {
	for _, result := range loadResults(t) {
		t.Run(result.Name, func(t *testing.T) {
			est := result.Estimate
			proj := est.Projection

			if est.CapacityKW < 0 {
				t.Errorf("negative capacity %v", est.CapacityKW)
			}
			if area := est.CapacityKW * 4.53; area > est.Profile.RoofAreaM2+1e-9 {
				t.Errorf("system needs %v m² on a %v m² roof", area, est.Profile.RoofAreaM2)
			}
			if math.Abs(est.Cost.NetCost-(est.Cost.GrossCost-est.Cost.Subsidy)) > constants.ToleranceForComparison {
				t.Errorf("net cost %v does not match gross %v less subsidy %v",
					est.Cost.NetCost, est.Cost.GrossCost, est.Cost.Subsidy)
			}
			if est.Cost.Subsidy > 78000 {
				t.Errorf("subsidy %v exceeds cap", est.Cost.Subsidy)
			}

			horizon := est.Profile.HorizonYears
			if len(proj.Solar) != horizon+1 || len(proj.Benchmark) != horizon+1 {
				t.Fatalf("expected %d rows, got %d/%d", horizon+1, len(proj.Solar), len(proj.Benchmark))
			}
			if proj.Solar[0].CumulativeCashFlow != -est.Cost.NetCost {
				t.Errorf("year 0 cumulative = %v, want %v", proj.Solar[0].CumulativeCashFlow, -est.Cost.NetCost)
			}
			for y := 1; y <= horizon; y++ {
				if proj.Solar[y].ProductionKWh > proj.Solar[y-1].ProductionKWh && y > 1 {
					t.Errorf("production rose in year %d", y)
				}
				if proj.Benchmark[y].Balance < proj.Benchmark[y-1].Balance {
					t.Errorf("benchmark shrank in year %d", y)
				}
			}

			if year, ok := proj.Payback(); ok {
				if proj.Solar[year].CumulativeCashFlow < -1 {
					t.Errorf("payback year %d has cumulative %v", year, proj.Solar[year].CumulativeCashFlow)
				}
				if year > 1 && proj.Solar[year-1].CumulativeCashFlow > 1 {
					t.Errorf("payback year %d is not the first non-negative year", year)
				}
			}
		})
	}
}

// TestCSVOutputFormat tests that the CSV output parses and covers every row.
func TestCSVOutputFormat(t *testing.T) {
	results := loadResults(t)

	csvData, err := output.CsvString(results)
	if err != nil {
		t.Fatalf("CsvString() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(csvData)).ReadAll()
	if err != nil {
		t.Fatalf("CSV output does not parse: %v", err)
	}

	expectedRows := 1
	for _, result := range results {
		expectedRows += len(result.Estimate.Projection.Solar)
	}
	if len(records) != expectedRows {
		t.Errorf("expected %d CSV records, got %d", expectedRows, len(records))
	}
	for i, record := range records {
		if len(record) != len(output.CsvHeader) {
			t.Errorf("record %d has %d columns, want %d", i, len(record), len(output.CsvHeader))
		}
	}
}

// TestPrettyOutputFormat tests the pretty print output
func TestPrettyOutputFormat(t *testing.T) {
	results := loadResults(t)

	var buf strings.Builder
	if err := output.WritePretty(&buf, results, output.Options{}); err != nil {
		t.Fatalf("WritePretty() error = %v", err)
	}
	out := buf.String()

	for _, result := range results {
		if !strings.Contains(out, "--- Results for scenario "+result.Name+" ---") {
			t.Errorf("pretty output missing header for %s", result.Name)
		}
	}
	if !strings.Contains(out, "grid connection") {
		t.Error("pretty output missing grid connection note")
	}
}
