package analyzer

import "math"

// Entropy computes the Shannon entropy of data's byte distribution
// directly, with no sampling. The strategy selector uses this to
// recompute a single block's local entropy (section 4.3), as distinct
// from Analyze's report, which may be built from a sampled view of a
// much larger input.
func Entropy(data []byte) float64 {
	return shannonEntropy(data)
}

// shannonEntropy computes the Shannon entropy of data's byte distribution,
// in bits per byte, in the range [0, 8].
func shannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var histogram [256]int
	for _, b := range data {
		histogram[b]++
	}

	n := float64(len(data))
	var h float64
	for _, count := range histogram {
		if count == 0 {
			continue
		}

		p := float64(count) / n
		h -= p * math.Log2(p)
	}

	return h
}
