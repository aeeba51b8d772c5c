package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestAsType(t *testing.T) {
	base := &codedError{code: 7}
	wrapped := Wrap(base, "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestJoin_KeepsBothBranches(t *testing.T) {
	first := New("first")
	second := &codedError{code: 1}
	joined := Join(first, Wrap(second, "ctx"))

	assert.True(t, Is(joined, first))
	assert.True(t, Is(joined, second))
	assert.Equal(t, second, Cause(Wrap(second, "again")))
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ctx"))
	assert.NoError(t, WithStack(nil))
	assert.Nil(t, Join(nil, nil))
}

func TestWithMessagef(t *testing.T) {
	base := New("boom")
	err := WithMessagef(base, "step %d", 2)

	assert.EqualError(t, err, "step 2: boom")
	assert.True(t, Is(err, base))
}
