package config

import (
	"fmt"

	"github.com/go-ini/ini"
)

// Reader provides typed access to a parsed configuration file. All keys live
// in the parser's default section.
type Reader struct {
	section *ini.Section
}

// Read parses the configuration file at path. Key lookup is
// case-insensitive, so a file may spell a key `Model` or `KN_B` and still
// resolve the schema's `model` and `KN_b`.
func Read(path string) (*Reader, error) {
	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	return &Reader{section: file.Section(ini.DefaultSection)}, nil
}

// Has reports whether the configuration defines the given key.
func (r *Reader) Has(name string) bool {
	return r.section.HasKey(name)
}

// GetString returns the raw value of a required key.
func (r *Reader) GetString(name string) (string, error) {
	if !r.section.HasKey(name) {
		return "", &MissingParameterError{Name: name}
	}
	return r.section.Key(name).String(), nil
}

// GetInt returns the value of a required key parsed as an integer.
func (r *Reader) GetInt(name string) (int, error) {
	if !r.section.HasKey(name) {
		return 0, &MissingParameterError{Name: name}
	}
	val, err := r.section.Key(name).Int()
	if err != nil {
		return 0, &CoercionError{Name: name, Type: "int"}
	}
	return val, nil
}

// GetFloat returns the value of a required key parsed as a float.
func (r *Reader) GetFloat(name string) (float64, error) {
	if !r.section.HasKey(name) {
		return 0, &MissingParameterError{Name: name}
	}
	val, err := r.section.Key(name).Float64()
	if err != nil {
		return 0, &CoercionError{Name: name, Type: "float"}
	}
	return val, nil
}
