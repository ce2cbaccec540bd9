package apperr

import "errors"

// Invalid is returned when the input violates a business rule.
var Invalid = errors.New("validation error")

// Conflict indicates the entities exist but their current state forbids the operation (HTTP 409).
var Conflict = errors.New("conflict")

// NotFound indicates that the referenced record does not exist.
var NotFound = errors.New("not found")
