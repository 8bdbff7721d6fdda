package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "₹0"},
		{"Small", 999, "₹999"},
		{"Thousands", 78000, "₹78,000"},
		{"Rounds to whole", 199273.98, "₹199,274"},
		{"Negative", -121274, "-₹121,274"},
		{"Millions", 1234567, "₹1,234,567"},
		{"Negative rounding to zero", -0.2, "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	if got := NumericCurrency(-150000); got != "-150,000" {
		t.Errorf("NumericCurrency(-150000) = %q", got)
	}
	if got := CurrencyWithSymbol("$", 1500); got != "$1,500" {
		t.Errorf("CurrencyWithSymbol($, 1500) = %q", got)
	}
}

func TestEnergyAndCapacity(t *testing.T) {
	if got := Energy(5000.4); got != "5,000 kWh" {
		t.Errorf("Energy(5000.4) = %q", got)
	}
	if got := Capacity(2.7397); got != "2.74 kWp" {
		t.Errorf("Capacity(2.7397) = %q", got)
	}
}

func TestPayback(t *testing.T) {
	year := 7
	if got := Payback(&year, 25); got != "7 years" {
		t.Errorf("Payback(7) = %q", got)
	}
	one := 1
	if got := Payback(&one, 25); got != "1 year" {
		t.Errorf("Payback(1) = %q", got)
	}
	if got := Payback(nil, 25); got != "not within 25 years" {
		t.Errorf("Payback(nil) = %q", got)
	}
}
