package container

import (
	"testing"

	"github.com/Llucs/TurboZip/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_RoundTrip(t *testing.T) {
	report := analyzer.Report{
		Entropy:                 6.5,
		PatternDensity:          0.3,
		RepetitionFactor:        0.1,
		ContentClass:            analyzer.ClassStructuredText,
		CompressibilityEstimate: 0.6,
		SampleSizeBytes:         65536,
	}
	m := NewMetadata(report, "balanced", map[string]int{"zstd-balanced": 3, "stored": 1})

	encoded, err := m.Encode()
	require.NoError(t, err)

	got, err := ParseMetadata(encoded)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMetadata_Encode_NoInsignificantWhitespace(t *testing.T) {
	m := NewMetadata(analyzer.Report{ContentClass: analyzer.ClassText}, "fast", map[string]int{})
	encoded, err := m.Encode()
	require.NoError(t, err)

	for _, b := range encoded {
		assert.NotEqual(t, byte('\n'), b)
	}
}

func TestParseMetadata_RejectsUnknownFields(t *testing.T) {
	bad := []byte(`{"entropy":1.0,"totally_unknown_field":true}`)

	_, err := ParseMetadata(bad)
	assert.Error(t, err)
}

func TestParseMetadata_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseMetadata([]byte(`{not json`))
	assert.Error(t, err)
}
