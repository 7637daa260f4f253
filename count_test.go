package tokcount_test

import (
	"testing"

	"github.com/fwojciec/tokcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid count", func(t *testing.T) {
		t.Parallel()

		c := &tokcount.Count{Path: "prompt.txt", Model: "gpt-4o", Tokens: 12}

		require.NoError(t, c.Validate())
	})

	t.Run("zero tokens is valid", func(t *testing.T) {
		t.Parallel()

		c := &tokcount.Count{Path: "empty.txt", Model: "gpt-4o"}

		require.NoError(t, c.Validate())
	})

	t.Run("requires path", func(t *testing.T) {
		t.Parallel()

		err := (&tokcount.Count{Model: "gpt-4o"}).Validate()

		assert.Equal(t, tokcount.EINVALID, tokcount.ErrorCode(err))
	})

	t.Run("requires model", func(t *testing.T) {
		t.Parallel()

		err := (&tokcount.Count{Path: "prompt.txt"}).Validate()

		assert.Equal(t, tokcount.EINVALID, tokcount.ErrorCode(err))
	})

	t.Run("rejects negative tokens", func(t *testing.T) {
		t.Parallel()

		err := (&tokcount.Count{Path: "prompt.txt", Model: "gpt-4o", Tokens: -1}).Validate()

		assert.Equal(t, tokcount.EINVALID, tokcount.ErrorCode(err))
	})
}
