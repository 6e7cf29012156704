// Package shaping implements client-driven field selection.
//
// Each response DTO registers a FieldSet at startup: an ordered table
// of field names with accessor functions. Shaping is then a
// lookup-driven copy, no reflection at request time. Handlers call
// MissingFields first so Shape itself never fails: it is a pure
// projection over known-valid names.
package shaping

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Shaped is an order-preserving field projection. Insertion order is
// kept through JSON serialization, matching the order the client
// requested the fields in.
type Shaped struct {
	keys   []string
	values map[string]interface{}
}

func NewShaped() *Shaped {
	return &Shaped{values: make(map[string]interface{})}
}

// Set appends a field, or overwrites it in place when already present.
func (s *Shaped) Set(key string, value interface{}) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *Shaped) Get(key string) (interface{}, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Shaped) Keys() []string {
	return s.keys
}

func (s *Shaped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FieldDef declares one shapeable field of a DTO.
type FieldDef[T any] struct {
	Name string
	Get  func(T) interface{}
}

// FieldSet is the descriptor table for one DTO type, built once at
// startup. Field matching is case-insensitive; declared order is the
// default projection order.
type FieldSet[T any] struct {
	fields []FieldDef[T]
	byName map[string]FieldDef[T]
	canon  map[string]string
}

func NewFieldSet[T any](fields ...FieldDef[T]) *FieldSet[T] {
	fs := &FieldSet[T]{
		fields: fields,
		byName: make(map[string]FieldDef[T], len(fields)),
		canon:  make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		lower := strings.ToLower(f.Name)
		fs.byName[lower] = f
		fs.canon[lower] = f.Name
	}
	return fs
}

// MissingFields returns the names in the CSV that are not declared on
// the DTO. An empty CSV has nothing missing. This is the existence
// check handlers run before shaping to produce a 400.
func (fs *FieldSet[T]) MissingFields(fieldsCsv string) []string {
	var missing []string
	for _, name := range splitFields(fieldsCsv) {
		if _, ok := fs.byName[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Shape projects v onto the requested fields. An empty CSV selects
// every declared field in declared order; otherwise fields appear in
// the order listed. Unknown names are skipped, but callers are
// expected to have rejected them via MissingFields already.
func (fs *FieldSet[T]) Shape(v T, fieldsCsv string) *Shaped {
	shaped := NewShaped()

	requested := splitFields(fieldsCsv)
	if len(requested) == 0 {
		for _, f := range fs.fields {
			shaped.Set(f.Name, f.Get(v))
		}
		return shaped
	}

	for _, name := range requested {
		f, ok := fs.byName[strings.ToLower(name)]
		if !ok {
			continue
		}
		shaped.Set(f.Name, f.Get(v))
	}
	return shaped
}

// ShapeSlice applies Shape to every element.
func (fs *FieldSet[T]) ShapeSlice(vs []T, fieldsCsv string) []*Shaped {
	shaped := make([]*Shaped, len(vs))
	for i, v := range vs {
		shaped[i] = fs.Shape(v, fieldsCsv)
	}
	return shaped
}

func splitFields(fieldsCsv string) []string {
	if strings.TrimSpace(fieldsCsv) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(fieldsCsv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
