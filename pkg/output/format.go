// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"fmt"
	"io"

	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/simulation"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable summary of a simulation result.
func PrettyFormat(w io.Writer, result simulation.Result) {
	p := message.NewPrinter(language.Japanese)

	fmt.Fprintf(w, "--- Loan affordability simulation ---\n")
	_, _ = p.Fprintf(w, "Maximum loan amount     | %s\n", format.ManYen(result.MaxLoanAmount))
	_, _ = p.Fprintf(w, "Desired loan amount     | %s\n", format.ManYen(result.WishLoanAmount))
	_, _ = p.Fprintf(w, "Total budget            | %s\n", format.ManYen(result.TotalBudget))
	_, _ = p.Fprintf(w, "Building budget         | %s\n", format.ManYen(result.BuildingBudget))
	_, _ = p.Fprintf(w, "Land cost               | %s\n", format.ManYen(result.LandCost))
	_, _ = p.Fprintf(w, "Demolition cost         | %s\n", format.ManYen(result.DemolitionCost))
	_, _ = p.Fprintf(w, "Miscellaneous cost      | %s\n", format.ManYen(result.MiscCost))
	_, _ = p.Fprintf(w, "Unit price (base tier)  | %s/tsubo\n", format.ManYen(result.UnitPricePerTsubo))
	_, _ = p.Fprintf(w, "Estimated floor area    | %s (%s)\n",
		format.Area(result.EstimatedTsubo, "tsubo"), format.Area(result.EstimatedSquareMeters, "m²"))
	_, _ = p.Fprintf(w, "Monthly capacity        | %s\n", format.ManYen(result.MonthlyPaymentCapacity))
	_, _ = p.Fprintf(w, "Debt-to-income ratio    | %s\n", format.Percent(result.DTIRatio))
	_, _ = p.Fprintf(w, "Loan ratio              | %.4f\n", result.LoanRatio)
	_, _ = p.Fprintf(w, "Loan term / max term    | %d / %d years\n", result.LoanTerm, result.MaxTermYears)
	_, _ = p.Fprintf(w, "Total payment           | %s (interest %s)\n",
		format.ManYen(result.TotalPayment), format.ManYen(result.TotalInterest))

	if result.Warnings.ExceedsMaxLoan {
		fmt.Fprintf(w, "WARNING: desired loan exceeds the maximum borrowable amount\n")
	}
	if result.Warnings.ExceedsMaxTerm {
		fmt.Fprintf(w, "WARNING: desired term exceeds the age-derived maximum\n")
	}
}

// CsvFormat writes the result as a single CSV header and row.
func CsvFormat(w io.Writer, result simulation.Result) {
	fmt.Fprintf(w, `"maxLoanAmount","wishLoanAmount","totalBudget","buildingBudget","landCost","demolitionCost","miscCost","unitPricePerTsubo","estimatedTsubo","estimatedSquareMeters","monthlyPaymentCapacity","dtiRatio","loanRatio","loanTerm","maxTermYears","exceedsMaxLoan","exceedsMaxTerm"`)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, `"%.3f","%.3f","%.3f","%.3f","%.3f","%.3f","%.3f","%.2f","%.3f","%.3f","%.4f","%.3f","%.4f","%d","%d","%t","%t"`,
		result.MaxLoanAmount,
		result.WishLoanAmount,
		result.TotalBudget,
		result.BuildingBudget,
		result.LandCost,
		result.DemolitionCost,
		result.MiscCost,
		result.UnitPricePerTsubo,
		result.EstimatedTsubo,
		result.EstimatedSquareMeters,
		result.MonthlyPaymentCapacity,
		result.DTIRatio,
		result.LoanRatio,
		result.LoanTerm,
		result.MaxTermYears,
		result.Warnings.ExceedsMaxLoan,
		result.Warnings.ExceedsMaxTerm,
	)
	fmt.Fprintf(w, "\n")
}
