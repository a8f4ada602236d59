// Package calculator aggregates measurements over collections of shapes.
//
// An AreaCalculator knows nothing about individual shape formulas or about
// presentation: it only sums what each element reports through the
// shape.AreaCapable capability. New variants therefore need no change here.
package calculator

import (
	"math"
	"reflect"

	"github.com/ternarybob/areacalc/pkg/shape"
)

// Summer is implemented by every calculator in this package.
type Summer interface {
	Sum() (float64, error)
}

// AreaCalculator sums the areas of an ordered, fixed collection of shapes.
type AreaCalculator struct {
	values []any
}

// New creates a calculator over statically typed shapes.
func New(shapes ...shape.AreaCapable) *AreaCalculator {
	values := make([]any, len(shapes))
	for i, s := range shapes {
		values[i] = s
	}
	return &AreaCalculator{values: values}
}

// FromValues creates a calculator over values of unknown type, such as those
// produced from external input. Each element is checked for the area
// capability when Sum is called.
func FromValues(values ...any) *AreaCalculator {
	return &AreaCalculator{values: append([]any(nil), values...)}
}

// With returns a new calculator holding the receiver's shapes followed by
// the given ones. The receiver is not modified.
func (c *AreaCalculator) With(shapes ...shape.AreaCapable) *AreaCalculator {
	values := make([]any, 0, len(c.values)+len(shapes))
	values = append(values, c.values...)
	for _, s := range shapes {
		values = append(values, s)
	}
	return &AreaCalculator{values: values}
}

// Len returns the number of elements in the collection.
func (c *AreaCalculator) Len() int {
	return len(c.values)
}

// Shapes returns a copy of the collection.
func (c *AreaCalculator) Shapes() []any {
	return append([]any(nil), c.values...)
}

// Sum returns the total area of the collection. An empty collection sums to
// zero. If any element is not a usable shape, Sum returns 0 and an
// *shape.InvalidShapeError naming the first offending index.
func (c *AreaCalculator) Sum() (float64, error) {
	return sum(c.values, "AreaCapable", "area", func(s shape.AreaCapable) float64 {
		return s.Area()
	})
}

// VolumeCalculator sums the volumes of an ordered, fixed collection of solids.
type VolumeCalculator struct {
	values []any
}

// NewVolume creates a calculator over statically typed solids.
func NewVolume(solids ...shape.VolumeCapable) *VolumeCalculator {
	values := make([]any, len(solids))
	for i, s := range solids {
		values[i] = s
	}
	return &VolumeCalculator{values: values}
}

// VolumeFromValues creates a volume calculator over values of unknown type.
func VolumeFromValues(values ...any) *VolumeCalculator {
	return &VolumeCalculator{values: append([]any(nil), values...)}
}

// Len returns the number of elements in the collection.
func (c *VolumeCalculator) Len() int {
	return len(c.values)
}

// Sum returns the total volume with the same failure contract as
// AreaCalculator.Sum.
func (c *VolumeCalculator) Sum() (float64, error) {
	return sum(c.values, "VolumeCapable", "volume", func(s shape.VolumeCapable) float64 {
		return s.Volume()
	})
}

// sum checks every element before it contributes, so a failure never
// exposes a partial total.
func sum[T any](values []any, capability, measure string, fn func(T) float64) (float64, error) {
	var total float64
	for i, v := range values {
		s, ok := v.(T)
		if !ok || isNil(v) {
			return 0, &shape.InvalidShapeError{
				Index:  i,
				Value:  v,
				Reason: "does not implement " + capability,
			}
		}

		m := fn(s)
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return 0, &shape.InvalidShapeError{
				Index:  i,
				Value:  v,
				Reason: measure + " must be a finite non-negative number",
			}
		}
		total += m
		if math.IsInf(total, 0) {
			return 0, &shape.InvalidShapeError{
				Index:  i,
				Value:  v,
				Reason: "total " + measure + " overflows",
			}
		}
	}
	return total, nil
}

// isNil reports whether v is nil or a typed nil reference.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
