package preprocess

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelta_RoundTrip_Sequence(t *testing.T) {
	n := 1000
	data := make([]byte, n*4)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(i))
	}

	d := NewDelta()
	encoded := d.Forward(data)
	decoded, err := d.Inverse(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDelta_RoundTrip_WithTrailingRemainder(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	d := NewDelta()
	encoded := d.Forward(data)
	decoded, err := d.Inverse(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
	assert.Equal(t, len(data), len(encoded))
}

func TestDelta_RoundTrip_NegativeWraparound(t *testing.T) {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint32(data[0:], 100)
	binary.LittleEndian.PutUint32(data[4:], 50) // decreasing
	binary.LittleEndian.PutUint32(data[8:], 0)
	binary.LittleEndian.PutUint32(data[12:], 4294967295)

	d := NewDelta()
	encoded := d.Forward(data)
	decoded, err := d.Inverse(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDelta_Empty(t *testing.T) {
	d := NewDelta()
	encoded := d.Forward(nil)
	decoded, err := d.Inverse(encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestRLE_RoundTrip_SingleByte(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = 0x41
	}

	r := NewRLE()
	encoded := r.Forward(data)
	assert.Less(t, len(encoded), len(data))

	decoded, err := r.Inverse(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestRLE_RoundTrip_LongRunSplitting(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = 0x00
	}

	r := NewRLE()
	encoded := r.Forward(data)
	decoded, err := r.Inverse(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
	assert.Equal(t, 1000/255+1, len(encoded)/2) // ceil(1000/255) runs
}

func TestRLE_RoundTrip_RandomData(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	data := make([]byte, 4096)
	_, _ = r.Read(data)

	rle := NewRLE()
	encoded := rle.Forward(data)
	decoded, err := rle.Inverse(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestRLE_Empty(t *testing.T) {
	r := NewRLE()
	encoded := r.Forward(nil)
	assert.Empty(t, encoded)

	decoded, err := r.Inverse(encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestRLE_Inverse_MalformedOddLength(t *testing.T) {
	r := NewRLE()
	_, err := r.Inverse([]byte{1, 2, 3})
	require.Error(t, err)
}
