package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	err := WrapError("Get", "key1", ErrCacheClosed)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCacheClosed)

	cacheErr := GetCacheError(err)
	require.NotNil(t, cacheErr)
	require.Equal(t, "Get", cacheErr.Op)
	require.Equal(t, "key1", cacheErr.Key)
	require.Equal(t, ErrorTypeCache, cacheErr.ErrType)
}

func TestWrapErrorNil(t *testing.T) {
	require.NoError(t, WrapError("Get", "key1", nil))
}

func TestErrorTypes(t *testing.T) {
	require.True(t, IsErrorType(WrapError("Set", nil, ErrInvalidTTL), ErrorTypeValidation))
	require.True(t, IsErrorType(WrapError("Set", nil, ErrTTLTooLong), ErrorTypeValidation))
	require.True(t, IsErrorType(WrapError("GetByPattern", nil, ErrBadPattern), ErrorTypeValidation))
	require.True(t, IsErrorType(WrapError("Close", nil, ErrCacheClosed), ErrorTypeCache))
	require.True(t, IsErrorType(WrapError("WarmUp", nil, errors.New("boom")), ErrorTypeOperation))
}

func TestErrorMessage(t *testing.T) {
	err := WrapError("Get", "key1", ErrCacheClosed)
	require.Contains(t, err.Error(), "Get")
	require.Contains(t, err.Error(), "key1")
	require.Contains(t, err.Error(), "cache is closed")

	err = WrapError("Clear", nil, ErrCacheClosed)
	require.NotContains(t, err.Error(), "key=")
}

func TestPredicates(t *testing.T) {
	require.True(t, IsCacheClosed(WrapError("Set", "k", ErrCacheClosed)))
	require.False(t, IsCacheClosed(WrapError("Set", "k", ErrInvalidTTL)))

	require.True(t, IsBadPattern(WrapError("DeleteByPattern", "[", ErrBadPattern)))
	require.False(t, IsBadPattern(nil))
}

func TestCacheErrorIs(t *testing.T) {
	a := WrapError("Get", "k", ErrCacheClosed)
	b := WrapError("Get", "k", ErrCacheClosed)
	require.True(t, errors.Is(a, b))

	c := WrapError("Set", "k", ErrCacheClosed)
	require.False(t, errors.Is(a, c))
}
