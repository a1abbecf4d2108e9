package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

var (
	ErrDuplicateSKU = errors.New("duplicate sku")
	ErrMissingSKU   = errors.New("tour without sku")
)

type document struct {
	Tours []model.Tour `json:"tours" yaml:"tours"`
}

// LoadFile reads a catalog from a .json, .yaml or .yml file. The top level
// is either a list of tours or an object with a "tours" list.
func LoadFile(path string) ([]model.Tour, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var tours []model.Tour
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		tours, err = decodeJSON(b)
	case ".yaml", ".yml":
		tours, err = decodeYAML(b)
	default:
		return nil, fmt.Errorf("read catalog %s: unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if err := Validate(tours); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return tours, nil
}

// Validate checks that every tour has a unique, non-empty SKU.
func Validate(tours []model.Tour) error {
	seen := make(map[string]struct{}, len(tours))
	for i, t := range tours {
		if t.SKU == "" {
			return fmt.Errorf("entry %d: %w", i, ErrMissingSKU)
		}
		if _, dup := seen[t.SKU]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSKU, t.SKU)
		}
		seen[t.SKU] = struct{}{}
	}
	return nil
}

func decodeJSON(b []byte) ([]model.Tour, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tours []model.Tour
		err := json.Unmarshal(trimmed, &tours)
		return tours, err
	}
	var doc document
	err := json.Unmarshal(trimmed, &doc)
	return doc.Tours, err
}

func decodeYAML(b []byte) ([]model.Tour, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	if root.Content[0].Kind == yaml.SequenceNode {
		var tours []model.Tour
		err := root.Content[0].Decode(&tours)
		return tours, err
	}
	var doc document
	err := root.Content[0].Decode(&doc)
	return doc.Tours, err
}
