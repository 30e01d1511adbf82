package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_UnwrapsToSentinel(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrCodeInvalidArgument: ErrInvalidArgument,
		ErrCodeEmpty:           ErrStoreEmpty,
		ErrCodeClosed:          ErrStoreClosed,
	}
	for code, sentinel := range cases {
		err := NewError(code, "boom")
		assert.True(t, errors.Is(err, sentinel), "code %d", code)
	}
	assert.Nil(t, errors.Unwrap(NewError(ErrCodeInternal, "boom")))
}

func TestError_Message(t *testing.T) {
	err := NewError(ErrCodeInvalidArgument, "bad capacity")
	assert.Equal(t, "bad capacity", err.Error())
	err.WithContext("capacity", 0)
	assert.Equal(t, "bad capacity (context: map[capacity:0])", err.Error())
}
