// Package areacalc sums the areas of heterogeneous shape collections and
// renders the result.
//
// # Quick Start
//
//	calc := areacalc.NewCalculator(
//	    shape.MustCircle(2),
//	    shape.MustSquare(5),
//	    shape.MustSquare(6),
//	)
//	out, err := areacalc.NewFormatter(calc).PlainText()
//	// "Sum of the areas of provided shapes: 73.566..."
//
// # Architecture
//
//   - pkg/shape: shape variants, the AreaCapable and VolumeCapable
//     capabilities, and a catalog that builds shapes from untyped input
//   - pkg/calculator: sums areas (or volumes) over a collection
//   - pkg/format: renders a sum as text, HTML, JSON, YAML or TOML
//
// Adding a shape variant touches only the code defining it. Adding an output
// representation touches only pkg/format.
package areacalc

import (
	"github.com/ternarybob/areacalc/pkg/calculator"
	"github.com/ternarybob/areacalc/pkg/format"
	"github.com/ternarybob/areacalc/pkg/shape"
)

// AreaCalculator is an alias for the calculator type.
type AreaCalculator = calculator.AreaCalculator

// Formatter is an alias for the formatter type.
type Formatter = format.Formatter

// AreaCapable is an alias for the area capability.
type AreaCapable = shape.AreaCapable

// VolumeCapable is an alias for the volume capability.
type VolumeCapable = shape.VolumeCapable

// InvalidShapeError is an alias for the aggregation error.
type InvalidShapeError = shape.InvalidShapeError

// NewCalculator creates an area calculator over the given shapes.
func NewCalculator(shapes ...AreaCapable) *AreaCalculator {
	return calculator.New(shapes...)
}

// NewFormatter creates a formatter over a calculator.
func NewFormatter(summer calculator.Summer, opts ...format.Option) *Formatter {
	return format.New(summer, opts...)
}

// SumDocument builds the shapes in a document file with the default catalog
// and renders their total area in the named output format.
func SumDocument(path, outputFormat string) (string, error) {
	defs, err := shape.LoadDocument(path)
	if err != nil {
		return "", err
	}
	shapes, err := shape.DefaultCatalog().BuildAll(defs)
	if err != nil {
		return "", err
	}
	return NewFormatter(NewCalculator(shapes...)).Render(outputFormat)
}
