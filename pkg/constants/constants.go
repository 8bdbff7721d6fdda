// Package constants provides shared constants for the solar-forecast application.
package constants

// Energy constants
const (
	// DaysPerYear is the number of days used to annualize daily yields
	DaysPerYear = 365

	// WattsPerKilowatt converts panel ratings to capacity units
	WattsPerKilowatt = 1000.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DefaultCurrencySymbol prefixes rendered currency amounts
	DefaultCurrencySymbol = "₹"

	// DefaultLocale is the locale used for digit grouping in rendered output
	DefaultLocale = "en"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the estimate API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// ToleranceForComparison is the tolerance for whole-unit financial comparisons
	ToleranceForComparison = 1.0
)

// Projection limits
const (
	// MaxProjectionYears is the hard ceiling on a projection horizon. The
	// recommended band in the rate tables is a warning only; this is not.
	MaxProjectionYears = 100
)
