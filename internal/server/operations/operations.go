// Package operations holds the arithmetic the service performs. All
// functions are pure and safe to call concurrently.
package operations

import "github.com/dberestov/webcalc/internal/common"

func Add(a, b float64) float64 { return a + b }

func Subtract(a, b float64) float64 { return a - b }

func Multiply(a, b float64) float64 { return a * b }

// Divide returns common.ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, common.ErrDivisionByZero
	}
	return a / b, nil
}
