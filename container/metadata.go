package container

import (
	"bytes"
	"encoding/json"

	"github.com/Llucs/TurboZip/analyzer"
	"github.com/Llucs/TurboZip/errs"
)

// Metadata is the compact textual map stored immediately after the
// header, serialized from the AnalysisReport plus the active profile and
// a per-block algorithm histogram (section 4.5 step 4).
//
// The reference encoding is UTF-8 JSON without insignificant whitespace.
type Metadata struct {
	Entropy                 float64        `json:"entropy"`
	PatternDensity          float64        `json:"pattern_density"`
	RepetitionFactor        float64        `json:"repetition_factor"`
	ContentClass            string         `json:"content_class"`
	CompressibilityEstimate float64        `json:"compressibility_estimate"`
	SampleSizeBytes         int            `json:"sample_size_bytes"`
	Profile                 string         `json:"profile"`
	AlgorithmHistogram      map[string]int `json:"algorithm_histogram"`
}

// NewMetadata builds a Metadata value from an analysis report, the active
// profile name, and the per-block algorithm-code histogram.
func NewMetadata(report analyzer.Report, profile string, histogram map[string]int) Metadata {
	return Metadata{
		Entropy:                 report.Entropy,
		PatternDensity:          report.PatternDensity,
		RepetitionFactor:        report.RepetitionFactor,
		ContentClass:            report.ContentClass.String(),
		CompressibilityEstimate: report.CompressibilityEstimate,
		SampleSizeBytes:         report.SampleSizeBytes,
		Profile:                 profile,
		AlgorithmHistogram:      histogram,
	}
}

// Encode serializes m as compact (whitespace-free) UTF-8 JSON.
func (m Metadata) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMetadata decodes data as the metadata section, rejecting unknown
// keys so that future format versions can add fields without silently
// being misread by older readers (section 9 design note).
func ParseMetadata(data []byte) (Metadata, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m Metadata
	if err := dec.Decode(&m); err != nil {
		return Metadata{}, errs.ErrCorruptMetadata
	}

	return m, nil
}
