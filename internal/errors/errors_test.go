package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "train component"}
		assert.Equal(t, "train component not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "train component"}
		err2 := &NotFoundError{Entity: "train component"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "train component"}
		err2 := &NotFoundError{Entity: "wagon"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTrainComponentNotFound, ErrTrainComponentNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTrainComponentNotFound))
		assert.False(t, IsNotFound(ErrUniqueNumberExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "train component", Context: "with this unique number"}
		assert.Equal(t, "train component already exists with this unique number", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "train component"}
		assert.Equal(t, "train component already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "train component", Context: "with this unique number"}
		assert.True(t, errors.Is(err1, ErrUniqueNumberExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUniqueNumberExists))
		assert.False(t, IsAlreadyExists(ErrTrainComponentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "quantity", Message: "must be positive"}
		assert.Equal(t, "validation error: quantity - must be positive", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid input"}
		assert.Equal(t, "validation error: invalid input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("quantity", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTrainComponentNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ConflictError{Entity: "train component"}
		assert.Equal(t, "train component was modified concurrently", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err := &ConflictError{Entity: "train component"}
		assert.True(t, errors.Is(err, ErrTrainComponentConflict))
		assert.False(t, errors.Is(err, &ConflictError{Entity: "wagon"}))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrTrainComponentConflict))
		assert.False(t, IsConflict(ErrTrainComponentNotFound))
		assert.False(t, IsConflict(ErrTrainComponentInUse))
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ReferenceError{Entity: "train component"}
		assert.Equal(t, "train component cannot be deleted because it is referenced by other entities", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err := &ReferenceError{Entity: "train component"}
		assert.True(t, errors.Is(err, ErrTrainComponentInUse))
	})

	t.Run("IsReference helper", func(t *testing.T) {
		assert.True(t, IsReference(ErrTrainComponentInUse))
		assert.False(t, IsReference(ErrTrainComponentConflict))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Pagination and quantity errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidPaginationParams)
		assert.Error(t, ErrQuantityNotPositive)
		assert.Error(t, ErrQuantityNotAssignable)
		assert.True(t, IsValidation(ErrInvalidPaginationParams))
		assert.True(t, IsValidation(ErrQuantityNotPositive))
		assert.True(t, IsValidation(ErrQuantityNotAssignable))
	})
}
