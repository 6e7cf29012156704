package author

import (
	"courselibrary-backend/internal/shared/shaping"
	"courselibrary-backend/internal/shared/sorting"
)

// Shape names used as keys in the property-mapping registry.
const (
	ResponseShape     = "AuthorResponse"
	FullResponseShape = "AuthorFullResponse"
	EntityShape       = "Author"
)

// ResponseFields is the descriptor table for the friendly shape.
// Declared order is the default projection order.
var ResponseFields = shaping.NewFieldSet(
	shaping.FieldDef[AuthorResponse]{Name: "id", Get: func(a AuthorResponse) interface{} { return a.ID }},
	shaping.FieldDef[AuthorResponse]{Name: "name", Get: func(a AuthorResponse) interface{} { return a.Name }},
	shaping.FieldDef[AuthorResponse]{Name: "age", Get: func(a AuthorResponse) interface{} { return a.Age }},
	shaping.FieldDef[AuthorResponse]{Name: "mainCategory", Get: func(a AuthorResponse) interface{} { return a.MainCategory }},
)

// FullResponseFields is the descriptor table for the full shape.
var FullResponseFields = shaping.NewFieldSet(
	shaping.FieldDef[AuthorFullResponse]{Name: "id", Get: func(a AuthorFullResponse) interface{} { return a.ID }},
	shaping.FieldDef[AuthorFullResponse]{Name: "firstName", Get: func(a AuthorFullResponse) interface{} { return a.FirstName }},
	shaping.FieldDef[AuthorFullResponse]{Name: "lastName", Get: func(a AuthorFullResponse) interface{} { return a.LastName }},
	shaping.FieldDef[AuthorFullResponse]{Name: "dateOfBirth", Get: func(a AuthorFullResponse) interface{} { return a.DateOfBirth }},
	shaping.FieldDef[AuthorFullResponse]{Name: "dateOfDeath", Get: func(a AuthorFullResponse) interface{} { return a.DateOfDeath }},
	shaping.FieldDef[AuthorFullResponse]{Name: "mainCategory", Get: func(a AuthorFullResponse) interface{} { return a.MainCategory }},
)

// PropertyMapping whitelists the sortable fields of the friendly shape
// and maps them onto columns. "name" fans out to two columns; "age"
// sorts on date_of_birth with the direction flipped, since an earlier
// birth date means an older author.
func PropertyMapping() sorting.Mapping {
	return sorting.Mapping{
		"id":           {{Column: "id"}},
		"mainCategory": {{Column: "main_category"}},
		"age":          {{Column: "date_of_birth", Revert: true}},
		"name":         {{Column: "first_name"}, {Column: "last_name"}},
	}
}

// RegisterMappings installs the author mappings into the shared
// registry. Called once from the container at startup.
func RegisterMappings(reg *sorting.Registry) {
	reg.Register(ResponseShape, EntityShape, PropertyMapping())
}
