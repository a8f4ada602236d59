package format

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFormat is returned by Render for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer produces one output representation from a Formatter.
type Renderer func(f *Formatter) (string, error)

// Built-in format names.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var (
	renderersMu sync.RWMutex
	renderers   = map[string]Renderer{
		FormatText: (*Formatter).PlainText,
		FormatHTML: (*Formatter).HTML,
		FormatJSON: (*Formatter).Structured,
		FormatYAML: (*Formatter).YAML,
		FormatTOML: (*Formatter).TOML,
	}
)

// RegisterRenderer adds a named output representation.
func RegisterRenderer(name string, r Renderer) error {
	if name == "" {
		return fmt.Errorf("renderer name cannot be empty")
	}
	if r == nil {
		return fmt.Errorf("renderer %q is nil", name)
	}

	renderersMu.Lock()
	defer renderersMu.Unlock()

	if _, exists := renderers[name]; exists {
		return fmt.Errorf("renderer %q already registered", name)
	}
	renderers[name] = r
	return nil
}

// Has checks if a format name is registered.
func Has(name string) bool {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	_, exists := renderers[name]
	return exists
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	renderersMu.RLock()
	defer renderersMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render produces the named representation.
func (f *Formatter) Render(name string) (string, error) {
	renderersMu.RLock()
	r, exists := renderers[name]
	renderersMu.RUnlock()

	if !exists {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return r(f)
}
