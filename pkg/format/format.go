// Package format renders calculator results for presentation.
//
// A Formatter only reads the sum from a calculator.Summer; it never computes
// areas itself. Every method asks for a fresh sum and returns the
// calculator's error unchanged.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/areacalc/pkg/calculator"
)

// Labels used by the plain text and HTML representations.
const (
	AreaLabel   = "Sum of the areas of provided shapes: "
	VolumeLabel = "Sum of the volumes of provided shapes: "
)

// Result is the structured representation of a sum.
type Result struct {
	Sum float64 `json:"sum" yaml:"sum" toml:"sum"`
}

// Formatter renders the sum reported by a calculator.
type Formatter struct {
	summer calculator.Summer
	label  string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLabel overrides the label used by PlainText and HTML.
func WithLabel(label string) Option {
	return func(f *Formatter) {
		f.label = label
	}
}

// New creates a formatter over summer. The formatter does not own summer.
func New(summer calculator.Summer, opts ...Option) *Formatter {
	f := &Formatter{
		summer: summer,
		label:  AreaLabel,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Label returns the plain text label.
func (f *Formatter) Label() string {
	return f.label
}

// PlainText returns the label followed by the sum.
func (f *Formatter) PlainText() (string, error) {
	sum, err := f.summer.Sum()
	if err != nil {
		return "", err
	}
	return f.label + FormatNumber(sum), nil
}

// HTML returns the plain text wrapped in a paragraph element.
func (f *Formatter) HTML() (string, error) {
	sum, err := f.summer.Sum()
	if err != nil {
		return "", err
	}
	return "<p>" + html.EscapeString(f.label) + FormatNumber(sum) + "</p>", nil
}

// Structured returns the sum as a JSON object with a single "sum" field.
func (f *Formatter) Structured() (string, error) {
	sum, err := f.summer.Sum()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(Result{Sum: sum})
	if err != nil {
		return "", fmt.Errorf("marshal json result: %w", err)
	}
	return string(data), nil
}

// YAML returns the sum as a YAML document.
func (f *Formatter) YAML() (string, error) {
	sum, err := f.summer.Sum()
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(Result{Sum: sum})
	if err != nil {
		return "", fmt.Errorf("marshal yaml result: %w", err)
	}
	return string(data), nil
}

// TOML returns the sum as a TOML document.
func (f *Formatter) TOML() (string, error) {
	sum, err := f.summer.Sum()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Result{Sum: sum}); err != nil {
		return "", fmt.Errorf("marshal toml result: %w", err)
	}
	return buf.String(), nil
}

// FormatNumber returns the shortest decimal form of v that parses back to
// exactly v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
