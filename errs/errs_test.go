package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockChecksumMismatch_WrapAndUnwrap(t *testing.T) {
	err := NewBlockChecksumMismatch(7)

	idx, ok := IsBlockChecksumMismatch(err)
	assert.True(t, ok)
	assert.Equal(t, 7, idx)

	wrapped := fmt.Errorf("decode failed: %w", err)
	idx, ok = IsBlockChecksumMismatch(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, idx)
}

func TestIsBlockChecksumMismatch_FalseForOtherErrors(t *testing.T) {
	_, ok := IsBlockChecksumMismatch(ErrUnsupportedFormat)
	assert.False(t, ok)
}

func TestCodecFailure_Unwrap(t *testing.T) {
	inner := errors.New("lz4: short buffer")
	err := NewCodecFailure("lz4-fast", 0, inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "lz4-fast")
}

func TestSentinels_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUnsupportedFormat, ErrCorruptMetadata, ErrMalformedIndex,
		ErrGlobalChecksumMismatch, ErrCancelled, ErrUsageError,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
