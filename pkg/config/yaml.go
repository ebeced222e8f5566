package config

import (
	"bytes"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes the YAML file at path into the provided struct.
// Unknown fields are rejected so typos in operator-edited files fail loudly.
func LoadYAML[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrParsingFile, err)
	}

	return nil
}
