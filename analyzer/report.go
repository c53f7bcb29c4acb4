package analyzer

// ContentClass is the analyzer's best inference of what kind of data a
// block of bytes holds.
type ContentClass uint8

const (
	ClassText ContentClass = iota
	ClassStructuredText
	ClassSourceCode
	ClassBinary
	ClassExecutable
	ClassMedia
	ClassCompressed
	ClassRepetitive
	ClassUnknown
)

func (c ContentClass) String() string {
	switch c {
	case ClassText:
		return "text"
	case ClassStructuredText:
		return "structured_text"
	case ClassSourceCode:
		return "source_code"
	case ClassBinary:
		return "binary"
	case ClassExecutable:
		return "executable"
	case ClassMedia:
		return "media"
	case ClassCompressed:
		return "compressed"
	case ClassRepetitive:
		return "repetitive"
	default:
		return "unknown"
	}
}

// Report summarizes the content-analysis pass over an input (or a sample
// of it). It is built once per input, is immutable thereafter, and is
// serialized into the container's metadata section.
type Report struct {
	// Entropy is the Shannon entropy of the sample, in bits per byte, in [0,8].
	Entropy float64

	// PatternDensity is the mean, over window sizes 4/8/16, of the
	// fraction of distinct windows that occur at least twice in the sample.
	PatternDensity float64

	// RepetitionFactor is the mean, over window sizes 32/64, of the
	// fraction of windows that exactly match an earlier window.
	RepetitionFactor float64

	// ContentClass is the inferred content classification.
	ContentClass ContentClass

	// CompressibilityEstimate is a heuristic estimate in [0,1] of how well
	// the input is expected to compress.
	CompressibilityEstimate float64

	// SampleSizeBytes is the number of bytes actually analyzed (the whole
	// input for small files, or the stitched first/middle/last sample for
	// larger ones).
	SampleSizeBytes int
}

// conservativeReport is returned when analysis cannot proceed normally
// (empty input edge cases aside, this is mainly a defensive fallback: the
// analyzer must never fail).
func conservativeReport(sampleSize int) Report {
	return Report{
		ContentClass:            ClassUnknown,
		CompressibilityEstimate: 0.5,
		SampleSizeBytes:         sampleSize,
	}
}
