package errs

import "errors"

// Categories that use-case sentinels are marked with; the HTTP layer maps them to status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Category creates a sentinel marked with the given category.
// Sentinels sharing a category still match only themselves.
func Category(msg string, category error) error {
	return Classify(New(msg), category)
}

// Classify marks an existing sentinel with a category. The outer mark is the
// sentinel's own, so IsAny(x, sentinel) does not match its category siblings.
func Classify(sentinel, category error) error {
	return Mark(Mark(sentinel, category), sentinel)
}

// Tag marks err as both sentinel and category.
func Tag(err, sentinel, category error) error {
	return Mark(Mark(err, category), sentinel)
}
