package classmodel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultMethodDescriptor = "()V"

// LoadFile loads every class snapshot from a YAML file. Multiple classes
// are separated by "---" document markers.
func LoadFile(path string) ([]*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file %s: %w", path, err)
	}

	return ParseAll(data)
}

// Parse parses a single class snapshot from YAML.
func Parse(data []byte) (*Snapshot, error) {
	all, err := ParseAll(data)
	if err != nil {
		return nil, err
	}

	switch len(all) {
	case 0:
		return nil, errors.New("failed to parse class YAML: no document")
	case 1:
		return all[0], nil
	default:
		return nil, fmt.Errorf("failed to parse class YAML: expected one document, got %d", len(all))
	}
}

// ParseAll parses every YAML document in data as a class snapshot.
func ParseAll(data []byte) ([]*Snapshot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var out []*Snapshot

	for {
		var s Snapshot

		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse class YAML: %w", err)
		}

		applyDefaults(&s)
		out = append(out, &s)
	}

	return out, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Snapshot) {
	for i := range s.MethodEntries {
		if s.MethodEntries[i].Descriptor == "" {
			s.MethodEntries[i].Descriptor = defaultMethodDescriptor
		}
	}

	for i := range s.ConstructorEntries {
		if s.ConstructorEntries[i].Descriptor == "" {
			s.ConstructorEntries[i].Descriptor = defaultMethodDescriptor
		}
	}
}

// Marshal serializes snapshots to YAML, one document per class.
func Marshal(snapshots ...*Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	for _, s := range snapshots {
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("failed to marshal class %s: %w", s.QualifiedName, err)
		}
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes snapshots to the given path.
func WriteFile(path string, snapshots ...*Snapshot) error {
	data, err := Marshal(snapshots...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write class file %s: %w", path, err)
	}

	return nil
}
