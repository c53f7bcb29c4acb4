package analyzer

// Sampling policy thresholds (section 4.1).
const (
	wholeFileThreshold = 64 * 1024
	sampleChunkSize    = 16 * 1024
)

// Analyze computes an AnalysisReport for data, optionally aided by a
// filename hint (used only for extension-based classification).
//
// Analyze is pure and allocation-bounded, with no hidden state across
// calls, and never fails: any internal panic is recovered into a
// conservative report (content_class = unknown, compressibility_estimate
// = 0.5), matching the analyzer's "never fails" contract.
func Analyze(data []byte, filenameHint string) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			report = conservativeReport(len(data))
		}
	}()

	sample := buildSample(data)

	entropy := shannonEntropy(sample)
	density := patternDensity(sample)
	repetition := repetitionFactor(sample)
	class := classify(sample, filenameHint, entropy, repetition)

	compressibility := clamp01((8-entropy)/8*0.7 + density*0.2 + repetition*0.1)

	return Report{
		Entropy:                 entropy,
		PatternDensity:          density,
		RepetitionFactor:        repetition,
		ContentClass:            class,
		CompressibilityEstimate: compressibility,
		SampleSizeBytes:         len(sample),
	}
}

// buildSample implements the sampling policy: files at or below the whole-
// file threshold are analyzed whole; larger files use the deterministic
// first/middle/last 16KiB sample.
func buildSample(data []byte) []byte {
	if len(data) <= wholeFileThreshold {
		return data
	}

	first := data[:sampleChunkSize]

	mid := len(data) / 2
	midStart := mid - sampleChunkSize/2
	middle := data[midStart : midStart+sampleChunkSize]

	last := data[len(data)-sampleChunkSize:]

	sample := make([]byte, 0, 3*sampleChunkSize)
	sample = append(sample, first...)
	sample = append(sample, middle...)
	sample = append(sample, last...)

	return sample
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
