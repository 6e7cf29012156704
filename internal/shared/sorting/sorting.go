// Package sorting validates client order-by expressions against a
// whitelist and translates them into SQL ORDER BY fragments.
//
// Client-facing field names rarely match columns one-to-one: a single
// "name" field may sort on first_name plus last_name, and a field such
// as "age" sorts on date_of_birth with the direction flipped. Each
// mapping is registered once at startup, keyed by the (source, target)
// shape pair.
package sorting

import (
	"fmt"
	"strings"
)

// ColumnMapping is one backing column for a client-facing field.
// Revert flips the requested direction for this column (e.g. sorting
// by "age" ascending means date_of_birth descending).
type ColumnMapping struct {
	Column string
	Revert bool
}

// Mapping maps lowercase client field names to their backing columns.
type Mapping map[string][]ColumnMapping

// Registry holds the property mappings for every (source, target)
// shape pair. Built once at startup, read-only afterwards.
type Registry struct {
	mappings map[string]Mapping
}

func NewRegistry() *Registry {
	return &Registry{mappings: make(map[string]Mapping)}
}

func key(source, target string) string {
	return source + "->" + target
}

// Register installs the mapping for a shape pair. Field names are
// stored lowercase so lookups are case-insensitive.
func (r *Registry) Register(source, target string, m Mapping) {
	normalized := make(Mapping, len(m))
	for field, cols := range m {
		normalized[strings.ToLower(field)] = cols
	}
	r.mappings[key(source, target)] = normalized
}

// ValidMappingExistsFor reports whether every field in the order-by
// expression has a registered mapping. An empty expression is valid:
// no ordering was requested. Unknown fields signal via the boolean,
// never via an error.
func (r *Registry) ValidMappingExistsFor(source, target, orderBy string) bool {
	if strings.TrimSpace(orderBy) == "" {
		return true
	}

	mapping, ok := r.mappings[key(source, target)]
	if !ok {
		return false
	}

	for _, clause := range strings.Split(orderBy, ",") {
		field, _ := splitClause(clause)
		if field == "" {
			return false
		}
		if _, ok := mapping[strings.ToLower(field)]; !ok {
			return false
		}
	}
	return true
}

// Translate converts the order-by expression into a SQL ORDER BY
// fragment over whitelisted columns, preserving left-to-right
// priority. Callers must have validated the expression first.
func (r *Registry) Translate(source, target, orderBy string) (string, error) {
	if strings.TrimSpace(orderBy) == "" {
		return "", nil
	}

	mapping, ok := r.mappings[key(source, target)]
	if !ok {
		return "", fmt.Errorf("no property mapping registered for %s", key(source, target))
	}

	var parts []string
	for _, clause := range strings.Split(orderBy, ",") {
		field, descending := splitClause(clause)

		cols, ok := mapping[strings.ToLower(field)]
		if !ok {
			return "", fmt.Errorf("no mapping for field %q", field)
		}

		for _, col := range cols {
			// Requested direction XOR per-column revert flag.
			dir := "ASC"
			if descending != col.Revert {
				dir = "DESC"
			}
			parts = append(parts, col.Column+" "+dir)
		}
	}

	return strings.Join(parts, ", "), nil
}

// splitClause parses one "<field>[ asc|desc]" token. The direction
// keyword is case-insensitive and surrounding whitespace is ignored.
func splitClause(clause string) (field string, descending bool) {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return "", false
	}

	if idx := strings.IndexByte(clause, ' '); idx >= 0 {
		field = clause[:idx]
		dir := strings.TrimSpace(clause[idx+1:])
		descending = strings.EqualFold(dir, "desc")
	} else {
		field = clause
	}
	return field, descending
}
