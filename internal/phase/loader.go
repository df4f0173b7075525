package phase

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a catalog from YAML.
// Unknown fields are rejected so typos in level files surface early.
func Parse(data []byte) (Catalog, error) {
	var cat Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return Catalog{}, fmt.Errorf("phase: failed to parse catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("phase: failed to read catalog %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Marshal encodes a catalog as YAML.
func Marshal(cat Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return nil, fmt.Errorf("phase: failed to encode catalog %s: %w", cat.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("phase: failed to encode catalog %s: %w", cat.Name, err)
	}
	return buf.Bytes(), nil
}
