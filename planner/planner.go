// Package planner implements the adaptive block planner: it partitions a
// total input length into a deterministic sequence of (offset, length)
// blocks, sized from the content analyzer's report and, for structured
// text, snapped to nearby line or bracket boundaries.
package planner

import (
	"github.com/Llucs/TurboZip/analyzer"
)

const (
	KiB = 1024
	MiB = 1024 * 1024
)

// Block is a single planned (offset, length) span of the input.
type Block struct {
	Offset int64
	Length int64
}

// BaseBlockSize chooses the base block size B from the analysis report,
// per the size table of section 4.2 step 1.
func BaseBlockSize(totalLen int64, report analyzer.Report) int64 {
	switch {
	case report.ContentClass == analyzer.ClassCompressed,
		report.ContentClass == analyzer.ClassMedia,
		totalLen < 64*KiB:
		return 64 * KiB
	case report.ContentClass == analyzer.ClassText,
		report.ContentClass == analyzer.ClassSourceCode:
		return 1 * MiB
	case report.ContentClass == analyzer.ClassStructuredText:
		return 2 * MiB
	case report.ContentClass == analyzer.ClassBinary && report.CompressibilityEstimate < 0.3:
		return 1 * MiB
	case report.ContentClass == analyzer.ClassRepetitive, report.CompressibilityEstimate >= 0.7:
		return 8 * MiB
	default:
		return 1 * MiB
	}
}

// Plan partitions [0, totalLen) into a deterministic sequence of blocks,
// sized by BaseBlockSize and, for structured text, boundary-snapped per
// section 4.2 step 3. data is the full input buffer: snapping needs to
// inspect bytes near each candidate boundary.
func Plan(data []byte, report analyzer.Report) []Block {
	totalLen := int64(len(data))
	if totalLen == 0 {
		return nil
	}

	base := BaseBlockSize(totalLen, report)
	boundaries := chunkBoundaries(totalLen, base)

	if report.ContentClass == analyzer.ClassStructuredText {
		boundaries = snapBoundaries(data, boundaries, base)
	}

	return boundariesToBlocks(boundaries, totalLen)
}

// chunkBoundaries returns the interior boundary offsets (excluding 0 and
// totalLen) of naive fixed-size chunking at stride base.
func chunkBoundaries(totalLen, base int64) []int64 {
	var boundaries []int64
	for off := base; off < totalLen; off += base {
		boundaries = append(boundaries, off)
	}
	return boundaries
}

// snapBoundaries adjusts each interior boundary to the nearest '\n' within
// +/- base/16 bytes, falling back to '}' or ']', per section 4.2 step 3.
// Boundaries must remain strictly increasing; a boundary that would
// collide with or cross its predecessor after snapping is left unsnapped.
func snapBoundaries(data []byte, boundaries []int64, base int64) []int64 {
	window := base / 16
	if window < 1 {
		window = 1
	}

	out := make([]int64, len(boundaries))
	prev := int64(0)
	for i, b := range boundaries {
		snapped := snapOne(data, b, window)
		if snapped <= prev {
			snapped = b
		}
		out[i] = snapped
		prev = snapped
	}

	return out
}

// snapOne finds the nearest occurrence of '\n', then '}', then ']' within
// [boundary-window, boundary+window], preferring the closest match; if
// none is found, returns boundary unchanged.
func snapOne(data []byte, boundary, window int64) int64 {
	lo := boundary - window
	if lo < 0 {
		lo = 0
	}
	hi := boundary + window
	if hi > int64(len(data)) {
		hi = int64(len(data))
	}

	if best, ok := nearestByte(data, boundary, lo, hi, '\n'); ok {
		return best
	}
	if best, ok := nearestByte(data, boundary, lo, hi, '}'); ok {
		return best
	}
	if best, ok := nearestByte(data, boundary, lo, hi, ']'); ok {
		return best
	}

	return boundary
}

// nearestByte scans [lo, hi) for occurrences of target and returns the one
// closest to boundary.
func nearestByte(data []byte, boundary, lo, hi int64, target byte) (int64, bool) {
	found := false
	var best int64
	var bestDist int64

	for i := lo; i < hi; i++ {
		if data[i] != target {
			continue
		}
		dist := i - boundary
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			found = true
			best = i
			bestDist = dist
		}
	}

	return best, found
}

// boundariesToBlocks converts a sorted list of interior boundaries into
// the final (offset, length) block sequence covering [0, totalLen).
func boundariesToBlocks(boundaries []int64, totalLen int64) []Block {
	blocks := make([]Block, 0, len(boundaries)+1)

	prev := int64(0)
	for _, b := range boundaries {
		if b <= prev || b >= totalLen {
			continue
		}
		blocks = append(blocks, Block{Offset: prev, Length: b - prev})
		prev = b
	}
	blocks = append(blocks, Block{Offset: prev, Length: totalLen - prev})

	return blocks
}
