// Package constants provides shared constants for the mitsumori-gate simulation engine.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for monetary rounding (2 decimal places)
	DecimalPrecision = 100

	// BonusInstallmentsPerYear is the number of bonus repayment installments
	// per year; Japanese housing-loan bonus schemes pay semi-annually.
	BonusInstallmentsPerYear = 2

	// RepaymentAgeLimit is the age by which a housing loan must be repaid.
	RepaymentAgeLimit = 80

	// MaxLoanTermYears caps the loan term regardless of applicant age.
	MaxLoanTermYears = 50

	// DTIRatioCap bounds the reported debt-to-income ratio percentage.
	DTIRatioCap = 1000.0

	// TsuboToSquareMeters converts floor area in tsubo to square meters.
	TsuboToSquareMeters = 3.305785
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

	// DefaultInputFile is the default simulation input file name
	DefaultInputFile = "input.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestBytes int64 = 256 * 1024
)
