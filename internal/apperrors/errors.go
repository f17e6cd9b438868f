package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the operation cannot proceed because other resources
// still reference the target (e.g. deleting a client that has invoices).
var ErrConflict = errors.New("resource is referenced by other resources")

// ErrNoTemplates indicates that the PDF template registry is empty. This is a
// fatal configuration error: a correctly composed process always registers at
// least one template at startup.
var ErrNoTemplates = errors.New("no PDF templates registered")
