package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/brokkr/pkg/format"
)

// File is the on-disk layout of a format definition file.
type File struct {
	Formats map[string][]Field `yaml:"formats"`
}

// Registry holds named, pre-built formats together with the field lists
// that produced them.
type Registry struct {
	formats map[string]*format.Format
	fields  map[string][]Field
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]*format.Format),
		fields:  make(map[string][]Field),
	}
}

// Load reads a YAML definition file and builds every format in it.
func Load(path string) (*Registry, error) {
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid definition path: %w", err)
		}
		path = absPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse definition file: %w", err)
	}

	r := NewRegistry()
	for name, fields := range file.Formats {
		if err := r.Add(name, fields); err != nil {
			return nil, fmt.Errorf("format %q: %w", name, err)
		}
	}
	return r, nil
}

// Add builds a format from fields and registers it under name.
func (r *Registry) Add(name string, fields []Field) error {
	if name == "" {
		return fmt.Errorf("format name must not be empty")
	}
	f, err := Build(fields)
	if err != nil {
		return err
	}
	r.formats[name] = f
	r.fields[name] = fields
	return nil
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format returns the built format registered under name.
func (r *Registry) Format(name string) (*format.Format, bool) {
	f, ok := r.formats[name]
	return f, ok
}

// Fields returns the field list a format was built from.
func (r *Registry) Fields(name string) ([]Field, bool) {
	fields, ok := r.fields[name]
	return fields, ok
}
