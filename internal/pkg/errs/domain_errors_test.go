//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"mynbala-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	closed := errs.Category("closed", errs.ErrConflict)
	busy := errs.Category("busy", errs.ErrConflict)
	missing := errs.Category("missing", errs.ErrNotFound)

	t.Run("siblings stay distinct", func(t *testing.T) {
		assert.False(t, errs.IsAny(busy, closed))
		assert.False(t, errs.IsAny(closed, busy))
		assert.False(t, errs.IsAny(errs.Wrap(busy, "submit"), closed))
	})

	t.Run("matches itself and its category", func(t *testing.T) {
		wrapped := errs.Wrap(busy, "submit")
		assert.True(t, errs.IsAny(wrapped, busy))
		assert.True(t, errs.IsAny(wrapped, errs.ErrConflict))
		assert.False(t, errs.IsAny(wrapped, errs.ErrNotFound))
		assert.True(t, errs.IsAny(missing, errs.ErrNotFound))
	})
}

func TestClassify(t *testing.T) {
	leafA := errors.New("too long")
	leafB := errors.New("too many")
	a := errs.Classify(leafA, errs.ErrValidation)
	b := errs.Classify(leafB, errs.ErrValidation)

	assert.False(t, errs.IsAny(a, b))
	assert.False(t, errs.IsAny(b, a))
	assert.True(t, errs.IsAny(a, leafA, errs.ErrValidation))
	assert.Equal(t, "too long", a.Error())
}

func TestTag(t *testing.T) {
	sentinel := errs.Category("incomplete", errs.ErrValidation)
	other := errs.Category("unknown", errs.ErrValidation)
	tagged := errs.Tag(errors.New("boom"), sentinel, errs.ErrValidation)

	assert.True(t, errs.IsAny(tagged, sentinel))
	assert.True(t, errs.IsAny(tagged, errs.ErrValidation))
	assert.False(t, errs.IsAny(tagged, other))
	assert.Equal(t, "boom", tagged.Error())
}
