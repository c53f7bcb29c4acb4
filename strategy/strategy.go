// Package strategy implements the per-block strategy selector: given a
// block's local entropy, the input's global analysis report, and the
// active profile, it picks the preprocess flags, algorithm code, and level
// a block should be compressed with.
package strategy

import (
	"encoding/binary"

	"github.com/Llucs/TurboZip/analyzer"
	"github.com/Llucs/TurboZip/codec"
)

// Profile names a user-selected strategy preset.
type Profile string

const (
	Lightning Profile = "lightning"
	Fast      Profile = "fast"
	Balanced  Profile = "balanced"
	High      Profile = "high"
	Max       Profile = "max"
)

// Preprocess flag bits, matching the on-disk block_flags bits 0-1
// (section 6.4).
const (
	FlagDelta uint8 = 1 << 0
	FlagRLE   uint8 = 1 << 1
)

// Strategy is the chosen (preprocess_flags, algorithm_code, level) for one
// block.
type Strategy struct {
	PreprocessFlags uint8
	Algorithm       codec.Algorithm
	Level           int
}

// highEntropyThreshold is the local-entropy cutoff at which a block is
// treated as already incompressible, per section 4.3 rule 1.
const highEntropyThreshold = 7.5

// Select picks a Strategy for one block, given its local entropy, the
// global analysis report, the active profile, and the block's raw bytes
// (used only to evaluate the preprocessing heuristics).
func Select(localEntropy float64, report analyzer.Report, profile Profile, block []byte) Strategy {
	algo, level := selectAlgorithm(localEntropy, report, profile)

	if algo == codec.Stored {
		return Strategy{PreprocessFlags: 0, Algorithm: algo, Level: level}
	}

	return Strategy{
		PreprocessFlags: selectPreprocessFlags(block),
		Algorithm:       algo,
		Level:           level,
	}
}

// selectAlgorithm applies the ordered rules of section 4.3 steps 1-7.
func selectAlgorithm(localEntropy float64, report analyzer.Report, profile Profile) (codec.Algorithm, int) {
	switch {
	case localEntropy >= highEntropyThreshold,
		report.ContentClass == analyzer.ClassCompressed,
		report.ContentClass == analyzer.ClassMedia,
		report.ContentClass == analyzer.ClassExecutable:
		return codec.Stored, 0

	case isTextLike(report.ContentClass) && (profile == Lightning || profile == Fast):
		return codec.LZ4Fast, 0

	case report.RepetitionFactor >= 0.5 && profile == Lightning:
		return codec.LZ4HC, 9

	case profile == Balanced:
		return codec.ZstdBalanced, codec.ZstdLevelForAlgorithm(codec.ZstdBalanced)

	case profile == High:
		return codec.ZstdHigh, codec.ZstdLevelForAlgorithm(codec.ZstdHigh)

	case profile == Max && report.CompressibilityEstimate >= 0.5:
		return codec.Hybrid, codec.PackHybridLevel(9, 1) // LZ4-HC 9, Zstd level 19

	case profile == Max:
		return codec.ZstdMax, codec.ZstdLevelForAlgorithm(codec.ZstdMax)

	default:
		// No profile matched any rule (unrecognized profile string):
		// fall back to the balanced tier rather than leaving a block
		// unstrategized.
		return codec.ZstdBalanced, codec.ZstdLevelForAlgorithm(codec.ZstdBalanced)
	}
}

func isTextLike(c analyzer.ContentClass) bool {
	return c == analyzer.ClassText || c == analyzer.ClassSourceCode || c == analyzer.ClassStructuredText
}

// selectPreprocessFlags evaluates the delta/RLE heuristics of section 4.3:
// delta wins on tie, and at most one flag is ever set.
func selectPreprocessFlags(block []byte) uint8 {
	if looksLikeDeltaEncodable(block) {
		return FlagDelta
	}
	if looksLikeRLEEncodable(block) {
		return FlagRLE
	}
	return 0
}

// looksLikeDeltaEncodable enables delta only when the block appears to be
// a sequence of 4-byte little-endian integers whose successive
// differences have variance at least 4x smaller than the variance of the
// raw values.
func looksLikeDeltaEncodable(block []byte) bool {
	n := len(block) / 4
	if n < 2 {
		return false
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = float64(binary.LittleEndian.Uint32(block[i*4:]))
	}

	deltas := make([]float64, n-1)
	for i := 1; i < n; i++ {
		deltas[i-1] = values[i] - values[i-1]
	}

	rawVar := variance(values)
	if rawVar == 0 {
		return false
	}

	deltaVar := variance(deltas)

	return deltaVar*4 <= rawVar
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}

	return sum / float64(len(xs))
}

// looksLikeRLEEncodable enables RLE only when a single byte value accounts
// for at least 30% of the block.
func looksLikeRLEEncodable(block []byte) bool {
	if len(block) == 0 {
		return false
	}

	var counts [256]int
	for _, b := range block {
		counts[b]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	return float64(maxCount)/float64(len(block)) >= 0.3
}

// ParseProfile validates and normalizes a user-supplied profile name.
func ParseProfile(name string) (Profile, bool) {
	switch Profile(name) {
	case Lightning, Fast, Balanced, High, Max:
		return Profile(name), true
	default:
		return "", false
	}
}
