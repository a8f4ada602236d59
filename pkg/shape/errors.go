package shape

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidShape matches every *InvalidShapeError.
	ErrInvalidShape = errors.New("invalid shape provided")

	// ErrInvalidDimension is wrapped by *DimensionError.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrUnknownKind is returned when a catalog has no builder for a kind.
	ErrUnknownKind = errors.New("unknown shape kind")

	// ErrMissingParam is returned when a definition lacks a required parameter.
	ErrMissingParam = errors.New("missing shape parameter")
)

// InvalidShapeError reports a collection element that cannot take part in
// aggregation. Index is the element's position in the collection.
type InvalidShapeError struct {
	Index  int
	Value  any
	Reason string
	Err    error
}

func (e *InvalidShapeError) Error() string {
	msg := fmt.Sprintf("%s at index %d (%T)", ErrInvalidShape, e.Index, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidShapeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidShape.
func (e *InvalidShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// IsInvalidShape checks if err is or wraps an *InvalidShapeError.
func IsInvalidShape(err error) bool {
	var ise *InvalidShapeError
	return errors.As(err, &ise)
}

// DimensionError describes a rejected constructor argument.
type DimensionError struct {
	Kind  string
	Name  string
	Value float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s must be a positive finite number, got %g", e.Kind, e.Name, e.Value)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

func checkDimension(kind, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &DimensionError{Kind: kind, Name: name, Value: v}
	}
	return nil
}

// checkMeasure rejects an area or volume that overflows even though every
// dimension was valid.
func checkMeasure(kind, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DimensionError{Kind: kind, Name: name, Value: v}
	}
	return nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
