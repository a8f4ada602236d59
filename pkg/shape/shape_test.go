package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquare_Area(t *testing.T) {
	sq, err := NewSquare(5)
	require.NoError(t, err)

	assert.Equal(t, 25.0, sq.Area())
	assert.Equal(t, 5.0, sq.Length())
	assert.Equal(t, KindSquare, sq.Kind())
	assert.Equal(t, "square(length=5)", sq.String())
}

func TestCircle_Area(t *testing.T) {
	c, err := NewCircle(2)
	require.NoError(t, err)

	assert.InDelta(t, 4*math.Pi, c.Area(), 1e-12)
	assert.Equal(t, 2.0, c.Radius())
}

func TestRectangle_Area(t *testing.T) {
	r, err := NewRectangle(10, 2)
	require.NoError(t, err)

	assert.Equal(t, 20.0, r.Area())
}

func TestTriangle_Area(t *testing.T) {
	tr, err := NewTriangle(10, 5)
	require.NoError(t, err)

	assert.Equal(t, 25.0, tr.Area())
}

func TestCuboid_AreaAndVolume(t *testing.T) {
	c, err := NewCuboid(2, 3, 4)
	require.NoError(t, err)

	// 2(6 + 8 + 12)
	assert.Equal(t, 52.0, c.Area())
	assert.Equal(t, 24.0, c.Volume())
}

func TestSphere_AreaAndVolume(t *testing.T) {
	s, err := NewSphere(3)
	require.NoError(t, err)

	assert.InDelta(t, 36*math.Pi, s.Area(), 1e-9)
	assert.InDelta(t, 36*math.Pi, s.Volume(), 1e-9)
}

func TestConstructors_RejectInvalidDimensions(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
	}{
		{"zero square", func() error { _, err := NewSquare(0); return err }},
		{"negative circle", func() error { _, err := NewCircle(-1); return err }},
		{"NaN rectangle width", func() error { _, err := NewRectangle(math.NaN(), 1); return err }},
		{"infinite rectangle height", func() error { _, err := NewRectangle(1, math.Inf(1)); return err }},
		{"zero triangle base", func() error { _, err := NewTriangle(0, 1); return err }},
		{"negative cuboid height", func() error { _, err := NewCuboid(1, 1, -2); return err }},
		{"zero sphere", func() error { _, err := NewSphere(0); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDimension), "expected ErrInvalidDimension, got %v", err)

			var de *DimensionError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestConstructors_RejectOverflowingMeasures(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
	}{
		{"square area", func() error { _, err := NewSquare(1e200); return err }},
		{"circle area", func() error { _, err := NewCircle(1e155); return err }},
		{"rectangle area", func() error { _, err := NewRectangle(1e300, 1e10); return err }},
		{"triangle area", func() error { _, err := NewTriangle(1e300, 1e300); return err }},
		{"cuboid volume", func() error { _, err := NewCuboid(1e120, 1e120, 1e120); return err }},
		{"sphere volume", func() error { _, err := NewSphere(1e110); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDimension), "expected ErrInvalidDimension, got %v", err)
		})
	}
}

func TestConstructors_OverflowMessage(t *testing.T) {
	_, err := NewSquare(1e200)
	require.Error(t, err)
	assert.Equal(t, "square: area must be a positive finite number, got +Inf", err.Error())

	_, err = NewCuboid(1e120, 1e120, 1e120)
	require.Error(t, err)
	assert.Equal(t, "cuboid: volume must be a positive finite number, got +Inf", err.Error())
}

func TestDimensionError_Message(t *testing.T) {
	_, err := NewCuboid(1, -3, 1)
	require.Error(t, err)
	assert.Equal(t, "cuboid: width must be a positive finite number, got -3", err.Error())
}

func TestMust_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { MustSquare(-1) })
	assert.NotPanics(t, func() { MustSquare(1) })
}

func TestSquare_IsNotAMutableRectangle(t *testing.T) {
	sq := MustSquare(5)

	// Derive a rectangle and change its sides independently.
	rect := sq.Rectangle()
	rect, err := rect.WithWidth(10)
	require.NoError(t, err)
	rect, err = rect.WithHeight(2)
	require.NoError(t, err)

	assert.Equal(t, 20.0, rect.Area(), "rectangle sides vary independently")
	assert.Equal(t, 25.0, sq.Area(), "square is unaffected by rectangle changes")

	wider, err := rect.WithWidth(5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, wider.Area())
	assert.Equal(t, 25.0, sq.Area())
}

func TestSquare_WithLengthReturnsNewValue(t *testing.T) {
	sq := MustSquare(5)

	bigger, err := sq.WithLength(6)
	require.NoError(t, err)

	assert.Equal(t, 36.0, bigger.Area())
	assert.Equal(t, 25.0, sq.Area())
}

func TestCapabilities_AreSegregated(t *testing.T) {
	flat := []any{MustSquare(1), MustCircle(1), MustRectangle(1, 2), MustTriangle(1, 2)}
	for _, s := range flat {
		_, isArea := s.(AreaCapable)
		_, isVolume := s.(VolumeCapable)
		assert.True(t, isArea, "%v should report area", s)
		assert.False(t, isVolume, "%v should not report volume", s)
	}

	solids := []any{MustCuboid(1, 2, 3), MustSphere(1)}
	for _, s := range solids {
		_, isSolid := s.(Solid)
		assert.True(t, isSolid, "%v should report area and volume", s)
	}
}

func TestBuiltins_ReportKind(t *testing.T) {
	builtins := map[string]any{
		KindSquare:    MustSquare(1),
		KindCircle:    MustCircle(1),
		KindRectangle: MustRectangle(1, 2),
		KindTriangle:  MustTriangle(1, 2),
		KindCuboid:    MustCuboid(1, 2, 3),
		KindSphere:    MustSphere(1),
	}
	for kind, s := range builtins {
		k, ok := s.(Kinded)
		require.True(t, ok, "%v should report its kind", s)
		assert.Equal(t, kind, k.Kind())
	}
}
