// =============================================================================
// Performance Index Calculator - Index Calculations
// =============================================================================
//
// This package holds the two formulas the whole program exists for:
//
//   SPI = Σ(credits[i] * grades[i]) / Σ(credits[i])
//   CPI = Σ(spiValues[i]) / len(spiValues)
//
// Both return a (value, error) pair. A failed calculation never produces a
// number; callers inspect the error (a *validation.Error) instead.
//
// Out-of-scale values (negative credits, grades above 10) are accepted as-is.
//
// =============================================================================

package index

import (
	"errors"
	"fmt"

	"github.com/ginjaninja78/performance-index/internal/validation"
)

// Sentinel causes wrapped by the returned validation errors.
var (
	ErrZeroTotalCredits = errors.New("total credits is zero")
	ErrZeroSemesters    = errors.New("semester count is zero")
	ErrLengthMismatch   = errors.New("credits and grades differ in length")
)

// User-facing messages.
const (
	MsgZeroTotalCredits = "Please provide the credits of each subject"
	MsgZeroSemesters    = "Enter the correct number of semesters"
)

// SPI returns the credit-weighted average of grades.
//
// credits[i] pairs with grades[i]. Total credits of zero (including empty
// input) is an invalid configuration.
func SPI(credits, grades []float64) (float64, error) {
	if len(credits) != len(grades) {
		return 0, validation.Wrap(
			validation.KindInvalidConfiguration,
			"course grades",
			fmt.Sprintf("Expected %d grades, got %d", len(credits), len(grades)),
			ErrLengthMismatch,
		)
	}

	var weighted, totalCredits float64
	for i := range credits {
		weighted += credits[i] * grades[i]
		totalCredits += credits[i]
	}

	if totalCredits == 0 {
		return 0, validation.Wrap(validation.KindInvalidConfiguration, "course credits", MsgZeroTotalCredits, ErrZeroTotalCredits)
	}

	return weighted / totalCredits, nil
}

// CPI returns the unweighted mean of per-semester SPI values. The semester
// count is len(spiValues).
func CPI(spiValues []float64) (float64, error) {
	if len(spiValues) == 0 {
		return 0, validation.Wrap(validation.KindInvalidConfiguration, "number of semesters", MsgZeroSemesters, ErrZeroSemesters)
	}

	var sum float64
	for _, v := range spiValues {
		sum += v
	}

	return sum / float64(len(spiValues)), nil
}
