package shape

import (
	"fmt"
	"math"
)

// Square is a flat shape with four equal edges.
//
// Square is not a Rectangle: it has no width or height mutators, and
// converting it with Rectangle yields an independent value.
type Square struct {
	length float64
}

// NewSquare creates a square with the given edge length.
func NewSquare(length float64) (Square, error) {
	if err := checkDimension(KindSquare, "length", length); err != nil {
		return Square{}, err
	}
	s := Square{length: length}
	if err := checkMeasure(KindSquare, "area", s.Area()); err != nil {
		return Square{}, err
	}
	return s, nil
}

// MustSquare is like NewSquare but panics on invalid input.
func MustSquare(length float64) Square {
	return must(NewSquare(length))
}

// Length returns the edge length.
func (s Square) Length() float64 { return s.length }

// Area returns length².
func (s Square) Area() float64 { return s.length * s.length }

// WithLength returns a new square with a different edge length.
func (s Square) WithLength(length float64) (Square, error) {
	return NewSquare(length)
}

// Rectangle returns an equal-sided rectangle with the same area.
// The result is a copy; changing its sides does not affect s.
func (s Square) Rectangle() Rectangle {
	return Rectangle{width: s.length, height: s.length}
}

func (s Square) Kind() string { return KindSquare }

func (s Square) String() string {
	return fmt.Sprintf("square(length=%g)", s.length)
}

// Circle is a flat round shape.
type Circle struct {
	radius float64
}

// NewCircle creates a circle with the given radius.
func NewCircle(radius float64) (Circle, error) {
	if err := checkDimension(KindCircle, "radius", radius); err != nil {
		return Circle{}, err
	}
	c := Circle{radius: radius}
	if err := checkMeasure(KindCircle, "area", c.Area()); err != nil {
		return Circle{}, err
	}
	return c, nil
}

// MustCircle is like NewCircle but panics on invalid input.
func MustCircle(radius float64) Circle {
	return must(NewCircle(radius))
}

// Radius returns the radius.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·radius².
func (c Circle) Area() float64 { return math.Pi * c.radius * c.radius }

func (c Circle) Kind() string { return KindCircle }

func (c Circle) String() string {
	return fmt.Sprintf("circle(radius=%g)", c.radius)
}

// Rectangle is a flat shape whose width and height vary independently.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle creates a rectangle.
func NewRectangle(width, height float64) (Rectangle, error) {
	if err := checkDimension(KindRectangle, "width", width); err != nil {
		return Rectangle{}, err
	}
	if err := checkDimension(KindRectangle, "height", height); err != nil {
		return Rectangle{}, err
	}
	r := Rectangle{width: width, height: height}
	if err := checkMeasure(KindRectangle, "area", r.Area()); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

// MustRectangle is like NewRectangle but panics on invalid input.
func MustRectangle(width, height float64) Rectangle {
	return must(NewRectangle(width, height))
}

// Width returns the width.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the height.
func (r Rectangle) Height() float64 { return r.height }

// Area returns width·height.
func (r Rectangle) Area() float64 { return r.width * r.height }

// WithWidth returns a copy of r with a new width. r is unchanged.
func (r Rectangle) WithWidth(width float64) (Rectangle, error) {
	return NewRectangle(width, r.height)
}

// WithHeight returns a copy of r with a new height. r is unchanged.
func (r Rectangle) WithHeight(height float64) (Rectangle, error) {
	return NewRectangle(r.width, height)
}

func (r Rectangle) Kind() string { return KindRectangle }

func (r Rectangle) String() string {
	return fmt.Sprintf("rectangle(width=%g, height=%g)", r.width, r.height)
}

// Triangle is a flat three-sided shape described by base and perpendicular height.
type Triangle struct {
	base   float64
	height float64
}

// NewTriangle creates a triangle.
func NewTriangle(base, height float64) (Triangle, error) {
	if err := checkDimension(KindTriangle, "base", base); err != nil {
		return Triangle{}, err
	}
	if err := checkDimension(KindTriangle, "height", height); err != nil {
		return Triangle{}, err
	}
	t := Triangle{base: base, height: height}
	if err := checkMeasure(KindTriangle, "area", t.Area()); err != nil {
		return Triangle{}, err
	}
	return t, nil
}

// MustTriangle is like NewTriangle but panics on invalid input.
func MustTriangle(base, height float64) Triangle {
	return must(NewTriangle(base, height))
}

// Base returns the base length.
func (t Triangle) Base() float64 { return t.base }

// Height returns the perpendicular height.
func (t Triangle) Height() float64 { return t.height }

// Area returns base·height/2.
func (t Triangle) Area() float64 { return t.base * t.height / 2 }

func (t Triangle) Kind() string { return KindTriangle }

func (t Triangle) String() string {
	return fmt.Sprintf("triangle(base=%g, height=%g)", t.base, t.height)
}
