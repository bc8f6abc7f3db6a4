package models

import "errors"

// Sentinels shared by every repository and app. Wrap them with context and
// test with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)
