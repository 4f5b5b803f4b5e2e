// Package errors provides error types and utilities for the hotcache engine.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeCache represents cache lifecycle errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeOperation represents operation-specific errors
	ErrorTypeOperation ErrorType = "operation"
)

// Common error types
var (
	// Cache errors
	ErrCacheClosed = errors.New("cache is closed")

	// TTL errors
	ErrInvalidTTL  = errors.New("invalid TTL value")
	ErrTTLTooShort = errors.New("TTL value is too short")
	ErrTTLTooLong  = errors.New("TTL value is too long")

	// Operation errors
	ErrBadPattern  = errors.New("malformed key pattern")
	ErrFetchFailed = errors.New("fetch failed")
	ErrWarmUp      = errors.New("warm-up failed")
)

// CacheError represents a cache operation error
type CacheError struct {
	Op      string
	Key     any
	Err     error
	ErrType ErrorType
}

// determineErrorType determines the error type based on the error
func determineErrorType(err error) ErrorType {
	switch {
	case errors.Is(err, ErrCacheClosed):
		return ErrorTypeCache
	case errors.Is(err, ErrInvalidTTL) || errors.Is(err, ErrTTLTooShort) ||
		errors.Is(err, ErrTTLTooLong) || errors.Is(err, ErrBadPattern):
		return ErrorTypeValidation
	default:
		return ErrorTypeOperation
	}
}

// Error implements the error interface
func (e *CacheError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s: %s: key=%v: %v", e.ErrType, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.ErrType, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *CacheError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error is of the same type as the receiver
func (e *CacheError) Is(target error) bool {
	t, ok := target.(*CacheError)
	if !ok {
		return false
	}
	return e.ErrType == t.ErrType && e.Op == t.Op && errors.Is(e.Err, t.Err)
}

// WrapError wraps an error with operation context
func WrapError(op string, key any, err error) error {
	if err == nil {
		return nil
	}
	return &CacheError{
		ErrType: determineErrorType(err),
		Op:      op,
		Key:     key,
		Err:     err,
	}
}

// GetCacheError returns the CacheError if the error is a CacheError
func GetCacheError(err error) *CacheError {
	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr
	}
	return nil
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if cacheErr := GetCacheError(err); cacheErr != nil {
		return cacheErr.ErrType == errType
	}
	return false
}

// IsCacheClosed checks if the error is a cache closed error
func IsCacheClosed(err error) bool {
	return errors.Is(err, ErrCacheClosed)
}

// IsBadPattern checks if the error is a malformed pattern error
func IsBadPattern(err error) bool {
	return errors.Is(err, ErrBadPattern)
}
