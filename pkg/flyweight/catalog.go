package flyweight

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rsheldon/flyweight/pkg/flyweight/params"
)

// Preset names one (identifier, params) pair, typically loaded from a
// catalog file and used to warm a factory's cache up front.
type Preset struct {
	Identifier string         `yaml:"identifier" json:"identifier"`
	Params     map[string]any `yaml:"params" json:"params"`
}

// catalogFile is the on-disk shape of a preset catalog.
type catalogFile struct {
	Presets []Preset `yaml:"presets" json:"presets"`
}

// LoadCatalog reads a preset catalog from a file, auto-detecting format
// by extension. Supported extensions: .yaml, .yml, .json
//
// Catalog shape:
//
//	presets:
//	  - identifier: arrow
//	    params:
//	      color: red
//	  - identifier: box
func LoadCatalog(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog file extension: %s", ext)
	}

	for i, preset := range file.Presets {
		if preset.Identifier == "" {
			return nil, fmt.Errorf("catalog preset %d: identifier is required", i)
		}
	}
	return file.Presets, nil
}

// Warm acquires every preset, constructing and caching any instance not
// already present. It stops at the first failure and returns that
// producer's error; presets warmed before the failure stay cached.
func (f *Factory[V]) Warm(ctx context.Context, presets []Preset) error {
	for _, preset := range presets {
		if _, err := f.Acquire(ctx, preset.Identifier, params.New(preset.Params)); err != nil {
			return fmt.Errorf("warm %q: %w", preset.Identifier, err)
		}
	}
	return nil
}
