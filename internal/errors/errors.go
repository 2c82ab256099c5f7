package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this unique number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a lost-update race: the row still exists but was
// modified concurrently between the caller's read and its conditional write.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified concurrently", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ReferenceError represents a deletion blocked because other entities still
// reference the record.
type ReferenceError struct {
	Entity string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s cannot be deleted because it is referenced by other entities", e.Entity)
}

// Is enables errors.Is() comparison for ReferenceError
func (e *ReferenceError) Is(target error) bool {
	t, ok := target.(*ReferenceError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Errors
var (
	ErrTrainComponentNotFound = &NotFoundError{Entity: "train component"}
	ErrUniqueNumberExists     = &AlreadyExistsError{Entity: "train component", Context: "with this unique number"}
	ErrTrainComponentConflict = &ConflictError{Entity: "train component"}
	ErrTrainComponentInUse    = &ReferenceError{Entity: "train component"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = &ValidationError{Message: "page number and page size must be positive integers"}
	ErrQuantityNotPositive     = &ValidationError{Field: "quantity", Message: "quantity must be a positive integer"}
	ErrQuantityNotAssignable   = &ValidationError{Field: "quantity", Message: "quantity cannot be assigned to this component"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsReference checks if an error is a ReferenceError
func IsReference(err error) bool {
	var refErr *ReferenceError
	return errors.As(err, &refErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
