package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/solar-forecast/internal/config"
	"github.com/iwvelando/solar-forecast/internal/forecast"
	"github.com/iwvelando/solar-forecast/internal/logging"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/output"
	"github.com/iwvelando/solar-forecast/pkg/validation"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var version = "dev"

// profileFlags collects a single scenario given on the command line.
type profileFlags struct {
	propertyType    string
	consumption     float64
	price           float64
	roofArea        float64
	orientation     string
	coverage        float64
	budget          float64
	inflation       float64
	interest        float64
	benchmarkPreset string
	horizon         int
}

// scenario converts the flags into a configuration scenario. Rates are only
// set when the corresponding flag was given so table defaults still apply.
func (f profileFlags) scenario(flags *pflag.FlagSet) config.Scenario {
	s := config.Scenario{
		Name:                 "command line",
		Active:               true,
		PropertyType:         f.propertyType,
		AnnualConsumptionKWh: f.consumption,
		ElectricityPrice:     f.price,
		RoofAreaM2:           f.roofArea,
		Orientation:          f.orientation,
		Budget:               f.budget,
		BenchmarkPreset:      f.benchmarkPreset,
		HorizonYears:         f.horizon,
	}
	if flags.Changed("coverage") {
		v := f.coverage
		s.CoveragePercent = &v
	}
	if flags.Changed("inflation") {
		v := f.inflation
		s.PriceInflationPercent = &v
	}
	if flags.Changed("interest") {
		v := f.interest
		s.BenchmarkInterestPercent = &v
	}
	return s
}

func main() {
	var pf profileFlags

	configLocation := pflag.StringP("config", "c", constants.DefaultConfigFile, "path to configuration file")
	tablesFile := pflag.StringP("tables", "t", "", "path to reference tables override file")
	outputFormatFlag := pflag.StringP("output-format", "o", "", "type of output override: pretty, csv")
	logLevel := pflag.String("log-level", "", "log level override (debug, info, warn, error)")
	showVersion := pflag.Bool("version", false, "print version and exit")

	pflag.StringVar(&pf.propertyType, "property-type", "", "consumption preset instead of --consumption (e.g. house-small)")
	pflag.Float64Var(&pf.consumption, "consumption", 0, "annual electricity consumption in kWh")
	pflag.Float64Var(&pf.price, "price", 0, "electricity price per kWh")
	pflag.Float64Var(&pf.roofArea, "roof-area", 0, "usable roof area in square meters")
	pflag.StringVar(&pf.orientation, "orientation", "South", "roof orientation: South, South-East, South-West, East, West, North, Flat")
	pflag.Float64Var(&pf.coverage, "coverage", 100, "percentage of consumption to target")
	pflag.Float64Var(&pf.budget, "budget", 0, "maximum gross spend, 0 for no limit")
	pflag.Float64Var(&pf.inflation, "inflation", 0, "annual electricity price inflation percent")
	pflag.Float64Var(&pf.interest, "interest", 0, "benchmark deposit interest percent")
	pflag.StringVar(&pf.benchmarkPreset, "benchmark", "", "benchmark rate preset: general, seniorCitizen")
	pflag.IntVar(&pf.horizon, "horizon", 0, "projection horizon in years")
	pflag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	// A profile on the command line replaces the scenarios of the config file.
	var conf *config.Configuration
	if pflag.CommandLine.Changed("consumption") || pflag.CommandLine.Changed("property-type") {
		conf = &config.Configuration{Scenarios: []config.Scenario{pf.scenario(pflag.CommandLine)}}
	} else {
		var err error
		conf, err = config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
	}
	if *tablesFile != "" {
		conf.TablesFile = *tablesFile
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := forecast.GetForecast(logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute forecast",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results, output.Options{
			CurrencySymbol: conf.Output.CurrencySymbol,
			Locale:         conf.Output.Locale,
		})
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}
}
