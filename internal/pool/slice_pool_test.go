package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetByteSlice_ExactLength(t *testing.T) {
	s, cleanup := GetByteSlice(128)
	defer cleanup()

	assert.Len(t, s, 128)
}

func TestGetByteSlice_Reuse(t *testing.T) {
	s1, cleanup1 := GetByteSlice(64)
	s1[0] = 0xAB
	cleanup1()

	s2, cleanup2 := GetByteSlice(32)
	defer cleanup2()

	assert.Len(t, s2, 32)
}

func TestGetByteSlice_GrowsWhenTooSmall(t *testing.T) {
	s, cleanup := GetByteSlice(4096)
	defer cleanup()

	assert.Len(t, s, 4096)
	assert.GreaterOrEqual(t, cap(s), 4096)
}
