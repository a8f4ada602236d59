package shape

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DocumentFormat identifies the encoding of a shape document.
type DocumentFormat string

const (
	DocumentYAML DocumentFormat = "yaml"
	DocumentJSON DocumentFormat = "json"
	DocumentTOML DocumentFormat = "toml"
)

// document is the on-disk layout:
//
//	shapes:
//	  - kind: circle
//	    radius: 2
//	  - kind: square
//	    length: 5
type document struct {
	Shapes []map[string]any `json:"shapes" yaml:"shapes" toml:"shapes"`
}

// FormatFromPath returns the document format implied by a file extension.
// Unknown extensions are treated as YAML.
func FormatFromPath(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DocumentJSON
	case ".toml":
		return DocumentTOML
	default:
		return DocumentYAML
	}
}

// LoadDocument reads a shape document from a file.
func LoadDocument(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shape document: %w", err)
	}
	return ParseDocument(data, FormatFromPath(path))
}

// ParseDocument decodes a shape document into definitions.
func ParseDocument(data []byte, format DocumentFormat) ([]Definition, error) {
	var doc document

	var err error
	switch format {
	case DocumentJSON:
		err = json.Unmarshal(data, &doc)
	case DocumentTOML:
		err = toml.Unmarshal(data, &doc)
	case DocumentYAML, "":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s shape document: %w", format, err)
	}

	defs := make([]Definition, 0, len(doc.Shapes))
	for i, raw := range doc.Shapes {
		def, err := definitionFromMap(raw)
		if err != nil {
			return nil, &InvalidShapeError{Index: i, Value: raw, Reason: "malformed definition", Err: err}
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func definitionFromMap(raw map[string]any) (Definition, error) {
	kind, ok := raw["kind"].(string)
	if !ok || kind == "" {
		return Definition{}, fmt.Errorf("kind must be a non-empty string")
	}

	params := make(Params, len(raw)-1)

	// Sorted for stable error messages.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if k != "kind" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, err := toFloat(raw[k])
		if err != nil {
			return Definition{}, fmt.Errorf("parameter %q: %w", k, err)
		}
		params[k] = v
	}

	return Definition{Kind: kind, Params: params}, nil
}

// toFloat accepts the numeric types produced by the YAML, JSON and TOML decoders.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

// Encode writes definitions back into a document in the given format.
func Encode(defs []Definition, format DocumentFormat) ([]byte, error) {
	doc := document{Shapes: make([]map[string]any, len(defs))}
	for i, def := range defs {
		m := make(map[string]any, len(def.Params)+1)
		m["kind"] = def.Kind
		for k, v := range def.Params {
			m[k] = v
		}
		doc.Shapes[i] = m
	}

	switch format {
	case DocumentJSON:
		return json.MarshalIndent(doc, "", "  ")
	case DocumentTOML:
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(doc); err != nil {
			return nil, fmt.Errorf("encode toml shape document: %w", err)
		}
		return []byte(sb.String()), nil
	case DocumentYAML, "":
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}
