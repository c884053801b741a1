package webcrawl_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/webcrawl"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := webcrawl.Errorf(webcrawl.ENOTFOUND, "crawl %q not found", "test")

	assert.Equal(t, webcrawl.ENOTFOUND, webcrawl.ErrorCode(err))
	assert.Equal(t, "crawl \"test\" not found", webcrawl.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webcrawl.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, webcrawl.EINTERNAL, webcrawl.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webcrawl.ErrorMessage(nil))
}
