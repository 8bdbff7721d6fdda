package solar

import (
	"math"
	"testing"
)

func TestAnnualSavings(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name        string
		consumption float64
		price       float64
		production  float64
		expected    float64
	}{
		{"Production covers consumption", 5000, 8, 5000, 36000},
		{"Production exactly at offset ceiling", 5000, 8, 4500, 36000},
		{"Production above consumption", 5000, 8, 9000, 36000},
		{"Production below ceiling", 5000, 8, 3000, 24000},
		{"Zero consumption", 0, 8, 3000, 0},
		{"Zero price", 5000, 0, 3000, 0},
		{"Zero production", 5000, 8, 0, 0},
		{"Negative production", 5000, 8, -10, 0},
		{"Negative price", 5000, -8, 3000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := InputProfile{AnnualConsumptionKWh: tt.consumption, ElectricityPrice: tt.price}
			got := engine.AnnualSavings(p, tt.production)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("AnnualSavings(%v, %v, %v) = %v, want %v",
					tt.consumption, tt.price, tt.production, got, tt.expected)
			}
		})
	}
}

func TestAnnualSavingsBounded(t *testing.T) {
	engine := newTestEngine(t)

	for _, consumption := range []float64{100, 1500, 5000, 12000} {
		for _, price := range []float64{1, 6.5, 8, 12} {
			for _, production := range []float64{0, 50, 1000, 4000, 5000, 20000} {
				p := InputProfile{AnnualConsumptionKWh: consumption, ElectricityPrice: price}
				got := engine.AnnualSavings(p, production)
				if bound := 0.9 * consumption * price; got > bound+1e-9 {
					t.Errorf("savings %v exceed bound %v (consumption %v, price %v, production %v)",
						got, bound, consumption, price, production)
				}
				if got < 0 {
					t.Errorf("negative savings %v", got)
				}
			}
		}
	}
}
