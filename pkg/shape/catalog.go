package shape

import (
	"fmt"
	"sync"
)

// Params holds the numeric parameters of an untyped shape definition.
type Params map[string]float64

// Get returns the named parameter or ErrMissingParam.
func (p Params) Get(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingParam, name)
	}
	return v, nil
}

// Definition is a shape described by kind name and parameters, as read from
// a document or other untyped input.
type Definition struct {
	Kind   string
	Params Params
}

// Builder constructs a shape from definition parameters.
type Builder func(params Params) (AreaCapable, error)

// Entry is a registered shape kind.
type Entry struct {
	Kind   string
	Params []string
	Build  Builder
}

// Catalog maps kind names to builders. It is the runtime boundary where
// untyped input becomes typed shape values.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string // Maintains registration order
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]Entry),
	}
}

// DefaultCatalog creates a catalog with every built-in variant registered.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, e := range builtinEntries() {
		// Built-ins have unique, non-empty kinds.
		_ = c.Register(e)
	}
	return c
}

// Register adds a shape kind to the catalog.
func (c *Catalog) Register(entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.Kind == "" {
		return fmt.Errorf("shape kind cannot be empty")
	}
	if entry.Build == nil {
		return fmt.Errorf("shape kind %q has no builder", entry.Kind)
	}
	if _, exists := c.entries[entry.Kind]; exists {
		return fmt.Errorf("shape kind %q already registered", entry.Kind)
	}

	c.entries[entry.Kind] = entry
	c.order = append(c.order, entry.Kind)
	return nil
}

// Has checks if a kind is registered.
func (c *Catalog) Has(kind string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.entries[kind]
	return exists
}

// Entries returns all registered kinds in registration order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry, len(c.order))
	for i, kind := range c.order {
		entries[i] = c.entries[kind]
	}
	return entries
}

// Kinds returns the registered kind names in registration order.
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	kinds := make([]string, len(c.order))
	copy(kinds, c.order)
	return kinds
}

// Build constructs one shape from its definition.
func (c *Catalog) Build(def Definition) (AreaCapable, error) {
	c.mu.RLock()
	entry, exists := c.entries[def.Kind]
	c.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, def.Kind)
	}
	params := def.Params
	if params == nil {
		params = Params{}
	}
	return entry.Build(params)
}

// BuildAll constructs every definition in order. The first failure is
// returned as an *InvalidShapeError carrying the definition's index, and no
// shapes are returned.
func (c *Catalog) BuildAll(defs []Definition) ([]AreaCapable, error) {
	shapes := make([]AreaCapable, 0, len(defs))
	for i, def := range defs {
		s, err := c.Build(def)
		if err != nil {
			return nil, &InvalidShapeError{Index: i, Value: def, Reason: "cannot build " + quoteKind(def.Kind), Err: err}
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func quoteKind(kind string) string {
	if kind == "" {
		return "shape without kind"
	}
	return fmt.Sprintf("%q", kind)
}

func builtinEntries() []Entry {
	return []Entry{
		{
			Kind:   KindSquare,
			Params: []string{"length"},
			Build: func(p Params) (AreaCapable, error) {
				length, err := p.Get("length")
				if err != nil {
					return nil, err
				}
				return NewSquare(length)
			},
		},
		{
			Kind:   KindCircle,
			Params: []string{"radius"},
			Build: func(p Params) (AreaCapable, error) {
				radius, err := p.Get("radius")
				if err != nil {
					return nil, err
				}
				return NewCircle(radius)
			},
		},
		{
			Kind:   KindRectangle,
			Params: []string{"width", "height"},
			Build: func(p Params) (AreaCapable, error) {
				vals, err := getAll(p, "width", "height")
				if err != nil {
					return nil, err
				}
				return NewRectangle(vals[0], vals[1])
			},
		},
		{
			Kind:   KindTriangle,
			Params: []string{"base", "height"},
			Build: func(p Params) (AreaCapable, error) {
				vals, err := getAll(p, "base", "height")
				if err != nil {
					return nil, err
				}
				return NewTriangle(vals[0], vals[1])
			},
		},
		{
			Kind:   KindCuboid,
			Params: []string{"length", "width", "height"},
			Build: func(p Params) (AreaCapable, error) {
				vals, err := getAll(p, "length", "width", "height")
				if err != nil {
					return nil, err
				}
				return NewCuboid(vals[0], vals[1], vals[2])
			},
		},
		{
			Kind:   KindSphere,
			Params: []string{"radius"},
			Build: func(p Params) (AreaCapable, error) {
				radius, err := p.Get("radius")
				if err != nil {
					return nil, err
				}
				return NewSphere(radius)
			},
		},
	}
}

func getAll(p Params, names ...string) ([]float64, error) {
	vals := make([]float64, len(names))
	for i, name := range names {
		v, err := p.Get(name)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
