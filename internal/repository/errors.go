// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific error strings.
package repository

import "errors"

// ErrNotFound is returned when a single-row lookup matches nothing.
// Handlers translate this into a terminal "could not load" message or
// an HTTP 404 depending on the surface.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when account creation collides with an
// existing email address.
var ErrEmailExists = errors.New("email already exists")

// ErrForbidden is returned when the caller attempts an operation
// reserved for another role, such as a non-admin toggling the
// admin-wide important flag. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")
