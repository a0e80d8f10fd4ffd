//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"badminton-club/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("slot conflict")

	t.Run("marked error matches sentinel and keeps message", func(t *testing.T) {
		cause := errors.New("condition failed")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.Equal(t, "condition failed", marked.Error())
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("wrap preserves the mark", func(t *testing.T) {
		marked := errs.Mark(errors.New("boom"), sentinel)
		assert.True(t, errs.Is(errs.Wrap(marked, "creating booking"), sentinel))
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.Len(t, lines, 2)
	assert.Equal(t, "boom", lines[0])
}
