package common

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidInterval is returned when the bracket [a, b] is malformed
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrInvalidPrecision is returned when (eps, l) cannot guarantee termination
	ErrInvalidPrecision = errors.New("invalid precision")
)

// CheckInterval returns an error marked with ErrInvalidInterval unless a and b
// are finite, b > a and b-a is finite
func CheckInterval(a, b float64) error {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return errors.Mark(errors.Newf("interval [%v, %v] is not finite", a, b), ErrInvalidInterval)
	}
	if !(b > a) {
		return errors.Mark(errors.Newf("invalid interval [%v, %v]: b must exceed a", a, b), ErrInvalidInterval)
	}
	if math.IsInf(b-a, 0) {
		return errors.Mark(errors.Newf("interval [%v, %v] is too wide to represent", a, b), ErrInvalidInterval)
	}
	return nil
}

// CheckPrecision returns an error marked with ErrInvalidPrecision if eps or l
// is negative (or NaN)
func CheckPrecision(eps, l float64) error {
	if !(eps >= 0) {
		return PrecisionError("eps = %v should not be negative", eps)
	}
	if !(l >= 0) {
		return PrecisionError("l = %v should not be negative", l)
	}
	return nil
}

// PrecisionError formats an error marked with ErrInvalidPrecision. It is used
// by methods that add their own requirements on (eps, l).
func PrecisionError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidPrecision)
}
