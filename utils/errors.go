package utils

import (
	"fmt"
)

// Typed errors raised by the entity services. SendError maps each of them to
// an HTTP status code; raw internal error text never reaches the client.

// ValidationError carries field-level messages for invalid input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError signals that a referenced record does not exist. Resource is
// the display name used in the response message ("Buku", "Kategori", ...).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " tidak ditemukan"
}

// StorageError wraps a failure of the public file store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
