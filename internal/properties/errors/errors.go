package errors

import "errors"

var (
	ErrNotFound = errors.New("property not found")

	ErrCorruptCatalog = errors.New("stored catalog is not valid JSON")

	ErrInvalidSeed = errors.New("default catalog failed validation")
)
