package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.Register("AuthorResponse", "Author", Mapping{
		"id":           {{Column: "id"}},
		"mainCategory": {{Column: "main_category"}},
		"age":          {{Column: "date_of_birth", Revert: true}},
		"name":         {{Column: "first_name"}, {Column: "last_name"}},
	})
	return r
}

func TestValidMappingExistsFor(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		name    string
		orderBy string
		want    bool
	}{
		{"empty order-by is valid", "", true},
		{"whitespace only is valid", "   ", true},
		{"single mapped field", "name", true},
		{"case-insensitive field", "NAME desc", true},
		{"multi-column field", "name desc, age", true},
		{"unknown field", "bogus", false},
		{"unknown field among valid ones", "name, bogus desc", false},
		{"dangling comma", "name,", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ValidMappingExistsFor("AuthorResponse", "Author", tt.orderBy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidMappingExistsForUnknownPair(t *testing.T) {
	r := newTestRegistry()
	assert.False(t, r.ValidMappingExistsFor("CourseResponse", "Course", "title"))
	// Empty order-by needs no mapping at all.
	assert.True(t, r.ValidMappingExistsFor("CourseResponse", "Course", ""))
}

func TestTranslate(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		name    string
		orderBy string
		want    string
	}{
		{"empty", "", ""},
		{"simple ascending", "mainCategory", "main_category ASC"},
		{"explicit descending", "mainCategory desc", "main_category DESC"},
		{"direction keyword case-insensitive", "mainCategory DESC", "main_category DESC"},
		{"revert flips ascending", "age", "date_of_birth DESC"},
		{"revert flips descending", "age desc", "date_of_birth ASC"},
		{"one field to two columns", "name", "first_name ASC, last_name ASC"},
		{"multi-key keeps priority", "name desc, age", "first_name DESC, last_name DESC, date_of_birth DESC"},
		{"whitespace tolerated", "  name  ,  age desc ", "first_name ASC, last_name ASC, date_of_birth ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Translate("AuthorResponse", "Author", tt.orderBy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateUnknownField(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Translate("AuthorResponse", "Author", "bogus")
	assert.Error(t, err)

	_, err = r.Translate("Unknown", "Pair", "name")
	assert.Error(t, err)
}
