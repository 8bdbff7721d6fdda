// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iwvelando/solar-forecast/internal/forecast"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Options controls presentation of the pretty format.
type Options struct {
	CurrencySymbol string
	Locale         string
}

func (o Options) withDefaults() Options {
	if o.CurrencySymbol == "" {
		o.CurrencySymbol = constants.DefaultCurrencySymbol
	}
	if o.Locale == "" {
		o.Locale = constants.DefaultLocale
	}
	return o
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []forecast.Forecast, opts Options) {
	_ = WritePretty(os.Stdout, results, opts)
}

// WritePretty writes the human-readable report for every result to w.
func WritePretty(w io.Writer, results []forecast.Forecast, opts Options) error {
	opts = opts.withDefaults()
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	money := func(v float64) string {
		return p.Sprintf("%s%.0f", opts.CurrencySymbol, v)
	}

	var buf bytes.Buffer
	for i, result := range results {
		est := result.Estimate
		fmt.Fprintf(&buf, "--- Results for scenario %s ---\n", result.Name)
		fmt.Fprintf(&buf, "System size       | %s (%d panels)\n", format.Capacity(est.CapacityKW), est.PanelCount)
		_, _ = p.Fprintf(&buf, "Year-1 production | %.0f kWh\n", est.Year1ProductionKWh)
		fmt.Fprintf(&buf, "Cost tier         | %s\n", est.Cost.Tier)
		fmt.Fprintf(&buf, "Gross cost        | %s\n", money(est.Cost.GrossCost))
		fmt.Fprintf(&buf, "Subsidy           | %s\n", money(est.Cost.Subsidy))
		fmt.Fprintf(&buf, "Net cost          | %s\n", money(est.Cost.NetCost))
		fmt.Fprintf(&buf, "Year-1 savings    | %s\n", money(est.Year1Savings))
		fmt.Fprintf(&buf, "Payback           | %s\n", format.Payback(est.Projection.PaybackYear, est.Profile.HorizonYears))
		for _, note := range est.Notes {
			fmt.Fprintf(&buf, "Note: %s\n", note)
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(&buf, "Warning: %s\n", warning)
		}

		fmt.Fprintf(&buf, "\nYear | Production | Savings | Cumulative | Deposit\n")
		fmt.Fprintf(&buf, "____ | __________ | _______ | __________ | _______\n")
		for j, year := range est.Projection.Solar {
			balance := 0.0
			if j < len(est.Projection.Benchmark) {
				balance = est.Projection.Benchmark[j].Balance
			}
			_, _ = p.Fprintf(&buf, "%4d | %.0f kWh | %s | %s | %s\n",
				year.Year, year.ProductionKWh, money(year.Savings), money(year.CumulativeCashFlow), money(balance))
		}
		if i < len(results)-1 {
			buf.WriteString("\n")
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// CsvHeader is the column layout of the CSV format.
var CsvHeader = []string{
	"scenario", "year", "production_kwh", "savings", "cumulative_cash_flow", "deposit_balance",
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []forecast.Forecast) {
	_ = WriteCsv(os.Stdout, results)
}

// WriteCsv writes one row per scenario and projection year to w.
func WriteCsv(w io.Writer, results []forecast.Forecast) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CsvHeader); err != nil {
		return err
	}

	for _, result := range results {
		proj := result.Estimate.Projection
		for j, year := range proj.Solar {
			balance := 0.0
			if j < len(proj.Benchmark) {
				balance = proj.Benchmark[j].Balance
			}
			record := []string{
				result.Name,
				strconv.Itoa(year.Year),
				formatWhole(year.ProductionKWh),
				formatWhole(year.Savings),
				formatWhole(year.CumulativeCashFlow),
				formatWhole(balance),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// CsvString renders the CSV format into a string.
func CsvString(results []forecast.Forecast) (string, error) {
	var buf bytes.Buffer
	if err := WriteCsv(&buf, results); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
