package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrStoreFailure    = errors.New("store failure")
)

// InvalidArgumentError reports a precondition the caller violated
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func NewInvalidArgument(field, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Reason: reason}
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return "invalid argument: " + e.Reason
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// AlreadyExistsError reports a violated uniqueness constraint.
// Field is the constrained attribute ("name" or "sku").
type AlreadyExistsError struct {
	Entity string
	Field  string
	Value  string
}

func NewAlreadyExists(entity, field, value string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity, Field: field, Value: value}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with the %s already exists: %s", e.Entity, e.Field, e.Value)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// StoreError wraps a failure of the persistence layer with the operation and entity involved
type StoreError struct {
	Op     string
	Entity string
	Err    error
}

func NewStoreError(op, entity string, err error) *StoreError {
	return &StoreError{Op: op, Entity: entity, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreFailure
}

// ParseID parses the canonical string form of an entity id
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, NewInvalidArgument("id", "must be a UUID")
	}
	return id, nil
}

// IsDomainError reports whether err is one of the errors raised deliberately by use cases
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrNotFound)
}
