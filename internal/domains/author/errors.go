package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
)
