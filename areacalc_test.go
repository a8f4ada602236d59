package areacalc

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/areacalc/pkg/calculator"
	"github.com/ternarybob/areacalc/pkg/format"
	"github.com/ternarybob/areacalc/pkg/shape"
)

func TestFormattersEmbedExactSum(t *testing.T) {
	calc := NewCalculator(shape.MustCircle(2), shape.MustSquare(5), shape.MustSquare(6))
	want, err := calc.Sum()
	require.NoError(t, err)

	f := NewFormatter(calc)

	text, err := f.PlainText()
	require.NoError(t, err)
	assert.Equal(t, "Sum of the areas of provided shapes: "+format.FormatNumber(want), text)

	structured, err := f.Structured()
	require.NoError(t, err)
	var decoded struct{ Sum float64 }
	require.NoError(t, json.Unmarshal([]byte(structured), &decoded))
	assert.Equal(t, want, decoded.Sum)
}

func TestInvalidShapeSurfacesThroughFormatter(t *testing.T) {
	f := NewFormatter(calculator.FromValues(shape.MustSquare(5), "not-a-shape"))

	_, err := f.PlainText()
	var ise *InvalidShapeError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, 1, ise.Index)
}

func TestSumDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shapes:\n  - kind: square\n    length: 5\n  - kind: triangle\n    base: 4\n    height: 3\n"), 0644))

	out, err := SumDocument(path, "json")
	require.NoError(t, err)
	assert.Equal(t, `{"sum":31}`, out)
}
