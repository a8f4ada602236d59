// Package shape defines the geometric shape variants and the capability
// interfaces they satisfy.
//
// Capabilities are deliberately split: every shape can report an area, but
// only genuine solids report a volume. A variant implements only the
// capabilities it can honour, so flat shapes never carry a Volume method.
//
// All variants are immutable values. Dimensions are fixed by the constructor,
// which rejects non-positive and non-finite input. Specialisations that add an
// invariant (a Square is a Rectangle with equal sides) are independent types,
// not subtypes, so no mutator can break the invariant.
package shape

// AreaCapable is implemented by anything that can report its area.
// Area must return a finite, non-negative number.
type AreaCapable interface {
	Area() float64
}

// VolumeCapable is implemented by three-dimensional shapes only.
// Volume must return a finite, non-negative number.
type VolumeCapable interface {
	Volume() float64
}

// Solid combines both capabilities.
type Solid interface {
	AreaCapable
	VolumeCapable
}

// Kinded is implemented by the built-in variants to report their catalog kind.
type Kinded interface {
	Kind() string
}

// Built-in kind names.
const (
	KindSquare    = "square"
	KindCircle    = "circle"
	KindRectangle = "rectangle"
	KindTriangle  = "triangle"
	KindCuboid    = "cuboid"
	KindSphere    = "sphere"
)

// Compile-time capability checks.
var (
	_ AreaCapable = Square{}
	_ AreaCapable = Circle{}
	_ AreaCapable = Rectangle{}
	_ AreaCapable = Triangle{}
	_ Solid       = Cuboid{}
	_ Solid       = Sphere{}

	_ Kinded = Square{}
	_ Kinded = Circle{}
	_ Kinded = Rectangle{}
	_ Kinded = Triangle{}
	_ Kinded = Cuboid{}
	_ Kinded = Sphere{}
)
