package models

import "github.com/pkg/errors"

// ValidationError - caller supplied arguments are missing or malformed
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return ValidationError{Message: message}
}

type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}

// StorageBusyError - the collection lock was not obtained in time
type StorageBusyError struct {
	Message string
}

func (e StorageBusyError) Error() string {
	return e.Message
}

func NewStorageBusyError(message string) error {
	return StorageBusyError{Message: message}
}

// StorageError wraps a failed load/save of a store
type StorageError struct {
	Err error
}

func (e StorageError) Error() string {
	return e.Err.Error()
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(err error, message string) error {
	return StorageError{Err: errors.Wrap(err, message)}
}

func IsValidationError(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFoundError(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsStorageBusyError(err error) bool {
	var target StorageBusyError
	return errors.As(err, &target)
}
