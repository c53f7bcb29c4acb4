// Package analyzer implements the content analyzer: it classifies a byte
// stream (or a bounded, deterministic sample of it) by Shannon entropy,
// pattern density, repetition factor, and an inferred content class, and
// derives a compressibility estimate from those signals.
//
// Analyze is a pure function with no hidden state: given the same bytes
// and filename hint, it always returns the same Report. This mirrors the
// "analyzer must be pure and allocation-bounded" design note: there is
// nothing here a caller needs to construct, configure, or reset between
// calls.
package analyzer
