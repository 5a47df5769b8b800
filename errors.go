package ripsgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/ripsgo/internal/binomial"
)

var (
	// ErrThresholdRequired is returned by Sparse when no finite threshold
	// is configured. Sparse input enumerates stored edges only, so the
	// filtration scale must be fixed up front.
	ErrThresholdRequired = errors.New("sparse input requires a finite threshold")

	// ErrEmptyBatch is returned by BatchRun when no matrices are given.
	ErrEmptyBatch = errors.New("batch requires at least one matrix")
)

// ErrNonPrimeModulus indicates a coefficient modulus that is not a prime.
// Field inverses are computed by a recurrence that is only valid mod p.
type ErrNonPrimeModulus struct {
	Modulus int16
}

func (e *ErrNonPrimeModulus) Error() string {
	return fmt.Sprintf("modulus must be prime, got %d", e.Modulus)
}

// ErrInvalidMaxDim indicates a negative homology dimension bound.
type ErrInvalidMaxDim struct {
	MaxDim int
}

func (e *ErrInvalidMaxDim) Error() string {
	return fmt.Sprintf("invalid max dimension: %d", e.MaxDim)
}

// ErrInvalidThreshold indicates a NaN or negative distance threshold.
type ErrInvalidThreshold struct {
	Threshold float32
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid threshold: %v", e.Threshold)
}

// ErrInvalidRatio indicates a non-positive persistence ratio.
type ErrInvalidRatio struct {
	Ratio float32
}

func (e *ErrInvalidRatio) Error() string {
	return fmt.Sprintf("invalid persistence ratio: %v", e.Ratio)
}

// ErrIndexOverflow indicates that the simplex index space is too small for
// the requested point count and dimension. Indices are packed into 47 bits
// alongside the coefficient, which bounds the largest representable binomial.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOverflow struct {
	Points    int
	Dimension int
	cause     error
}

func (e *ErrIndexOverflow) Error() string {
	return fmt.Sprintf("simplex index overflow for %d points in dimension %d", e.Points, e.Dimension)
}

func (e *ErrIndexOverflow) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ov *binomial.OverflowError
	if errors.As(err, &ov) {
		return &ErrIndexOverflow{Points: ov.N, Dimension: ov.K - 2, cause: err}
	}

	return err
}
