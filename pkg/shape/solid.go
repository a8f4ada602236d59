package shape

import (
	"fmt"
	"math"
)

// Cuboid is a rectangular box. Its Area is the total surface area.
type Cuboid struct {
	length float64
	width  float64
	height float64
}

// NewCuboid creates a cuboid.
func NewCuboid(length, width, height float64) (Cuboid, error) {
	if err := checkDimension(KindCuboid, "length", length); err != nil {
		return Cuboid{}, err
	}
	if err := checkDimension(KindCuboid, "width", width); err != nil {
		return Cuboid{}, err
	}
	if err := checkDimension(KindCuboid, "height", height); err != nil {
		return Cuboid{}, err
	}
	c := Cuboid{length: length, width: width, height: height}
	if err := checkMeasure(KindCuboid, "area", c.Area()); err != nil {
		return Cuboid{}, err
	}
	if err := checkMeasure(KindCuboid, "volume", c.Volume()); err != nil {
		return Cuboid{}, err
	}
	return c, nil
}

// MustCuboid is like NewCuboid but panics on invalid input.
func MustCuboid(length, width, height float64) Cuboid {
	return must(NewCuboid(length, width, height))
}

// Length returns the length.
func (c Cuboid) Length() float64 { return c.length }

// Width returns the width.
func (c Cuboid) Width() float64 { return c.width }

// Height returns the height.
func (c Cuboid) Height() float64 { return c.height }

// Area returns the surface area 2(lw + lh + wh).
func (c Cuboid) Area() float64 {
	return 2 * (c.length*c.width + c.length*c.height + c.width*c.height)
}

// Volume returns l·w·h.
func (c Cuboid) Volume() float64 {
	return c.length * c.width * c.height
}

func (c Cuboid) Kind() string { return KindCuboid }

func (c Cuboid) String() string {
	return fmt.Sprintf("cuboid(length=%g, width=%g, height=%g)", c.length, c.width, c.height)
}

// Sphere is a round solid. Its Area is the surface area.
type Sphere struct {
	radius float64
}

// NewSphere creates a sphere.
func NewSphere(radius float64) (Sphere, error) {
	if err := checkDimension(KindSphere, "radius", radius); err != nil {
		return Sphere{}, err
	}
	s := Sphere{radius: radius}
	if err := checkMeasure(KindSphere, "area", s.Area()); err != nil {
		return Sphere{}, err
	}
	if err := checkMeasure(KindSphere, "volume", s.Volume()); err != nil {
		return Sphere{}, err
	}
	return s, nil
}

// MustSphere is like NewSphere but panics on invalid input.
func MustSphere(radius float64) Sphere {
	return must(NewSphere(radius))
}

// Radius returns the radius.
func (s Sphere) Radius() float64 { return s.radius }

// Area returns 4πr².
func (s Sphere) Area() float64 { return 4 * math.Pi * s.radius * s.radius }

// Volume returns 4/3·πr³.
func (s Sphere) Volume() float64 { return 4.0 / 3.0 * math.Pi * s.radius * s.radius * s.radius }

func (s Sphere) Kind() string { return KindSphere }

func (s Sphere) String() string {
	return fmt.Sprintf("sphere(radius=%g)", s.radius)
}
