// =============================================================================
// Performance Index Calculator - Input Collector
// =============================================================================
//
// This module reads numeric values from an input stream (normally stdin).
// Input is tokenised on whitespace, so values may be typed one per line or
// several per line:
//
//   Enter course credits:
//   3 4
//   Enter course grades:
//   8
//   9
//
// FEATURES:
//   - Streaming: tokens are read as they arrive, nothing is buffered ahead
//   - Prompts are written to the output stream before each read
//   - Malformed tokens fail fast with a validation error naming the field
//
// No range checks are applied. Negative or out-of-scale numbers are stored
// exactly as typed.
//
// =============================================================================

package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ginjaninja78/performance-index/internal/validation"
)

// ErrEndOfInput is wrapped when the stream ends before all values are read.
var ErrEndOfInput = errors.New("unexpected end of input")

// MaxTokenSize is the longest token accepted, in bytes.
const MaxTokenSize = bufio.MaxScanTokenSize

// =============================================================================
// COLLECTOR
// =============================================================================

// Collector reads whitespace-separated numbers from a stream.
type Collector struct {
	// scanner splits the input into whitespace-separated tokens.
	scanner *bufio.Scanner

	// out receives prompts.
	out io.Writer

	// tokensRead counts tokens consumed so far, for logging.
	tokensRead int
}

// New creates a Collector reading from in and prompting on out.
func New(in io.Reader, out io.Writer) *Collector {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), MaxTokenSize)
	scanner.Split(bufio.ScanWords)

	return &Collector{
		scanner: scanner,
		out:     out,
	}
}

// TokensRead returns the number of tokens consumed so far.
func (c *Collector) TokensRead() int {
	return c.tokensRead
}

// =============================================================================
// READ FUNCTIONS
// =============================================================================

// ReadCount writes prompt (without a trailing newline) and reads one
// non-negative integer.
//
// RETURNS:
//   - The count.
//   - A KindInvalidInput validation error if the token is not a
//     non-negative integer or the stream is exhausted.
//   - The underlying error if the stream itself fails.
func (c *Collector) ReadCount(prompt, field string) (int, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	token, err := c.next(field)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, validation.InvalidInput(field, token, err)
	}
	if n < 0 {
		return 0, &validation.Error{
			Kind:    validation.KindInvalidInput,
			Field:   field,
			Value:   token,
			Message: fmt.Sprintf("Invalid value for %s: %q must not be negative", field, token),
		}
	}

	return n, nil
}

// Collect writes "Enter <field>:" on its own line and then reads n real
// numbers, in order.
//
// PARAMETERS:
//   - n: Number of values to read. Values are appended as they arrive, so
//     memory grows with the input actually typed, never with n alone.
//   - field: Human-readable name used in the prompt and in errors.
//
// RETURNS:
//   - The values read. On failure this holds the values read before the
//     failing token.
//   - A KindInvalidInput validation error on the first malformed token or on
//     early end of input.
func (c *Collector) Collect(n int, field string) ([]float64, error) {
	if _, err := fmt.Fprintf(c.out, "Enter %s:\n", field); err != nil {
		return nil, fmt.Errorf("failed to write prompt: %w", err)
	}

	values := []float64{}
	for len(values) < n {
		token, err := c.next(field)
		if err != nil {
			return values, err
		}

		value, err := parseReal(token)
		if err != nil {
			return values, validation.InvalidInput(field, token, err)
		}

		values = append(values, value)
	}

	return values, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// next returns the next token or an error if none is available.
func (c *Collector) next(field string) (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", validation.Wrap(
					validation.KindInvalidInput,
					field,
					fmt.Sprintf("Invalid value for %s: value is longer than %d characters", field, MaxTokenSize),
					err,
				)
			}
			return "", fmt.Errorf("failed to read %s: %w", field, err)
		}
		return "", validation.Wrap(
			validation.KindInvalidInput,
			field,
			fmt.Sprintf("Input ended before all values for %s were entered", field),
			ErrEndOfInput,
		)
	}

	c.tokensRead++
	return c.scanner.Text(), nil
}

// parseReal parses a finite real number.
func parseReal(token string) (float64, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("value %q is not finite", token)
	}
	return value, nil
}
