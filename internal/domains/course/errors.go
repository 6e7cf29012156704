package course

import "errors"

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrAuthorNotFound = errors.New("author not found")
)
