package apperrors

import "errors"

// ErrNotFound indicates that a requested account or interest rule does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// An operation rejected with this error must not have mutated any store.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates an identifier collision. The existing entity is kept
// unchanged and the new one is discarded.
var ErrDuplicate = errors.New("resource already exists")
