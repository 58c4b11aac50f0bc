// Package service implements the catalog domain logic.
package service

import "fmt"

// ValidationError is a user-correctable input error
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError means a referenced entity does not exist
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// PermissionError means the authenticated user may not perform the operation
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return e.Reason
}

// ConflictError means a concurrent duplicate-name creation race could not be
// resolved after the retry
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting concurrent create for %q", e.Name)
}
