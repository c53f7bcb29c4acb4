// Package turbozip provides a lossless, block-based compression container
// format. Each input is split into independently-decodable blocks, analyzed
// for content characteristics, and compressed with a strategy chosen per
// block (stored, LZ4, Zstd, or a hybrid of the two), so that a single file
// can mix a fast path for incompressible regions with a high-ratio path for
// repetitive or text-like ones.
//
// # Basic usage
//
//	encoded, err := turbozip.Compress(ctx, data, "input.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	original, err := turbozip.Decompress(ctx, encoded)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Package structure
//
// This package is a convenience wrapper around the engine package, which
// implements the orchestrator, worker pool, and reader. Use engine directly
// for access to *engine.Config and its functional options.
package turbozip

import (
	"context"

	"github.com/Llucs/TurboZip/engine"
)

// Option configures a compress or decompress call. It is an alias for
// engine.Option so callers never need to import the engine package for
// ordinary use.
type Option = engine.Option

// Re-exported functional options, so callers only need this package for the
// common case.
var (
	WithProfile = engine.WithProfile
	WithThreads = engine.WithThreads
	WithForce   = engine.WithForce
	WithVerbose = engine.WithVerbose
)

// Compress encodes data into a container file, using filenameHint (may be
// empty) to help classify the content. It uses the balanced profile and
// runtime.NumCPU worker threads unless overridden by opts.
func Compress(ctx context.Context, data []byte, filenameHint string, opts ...Option) ([]byte, error) {
	cfg, err := engine.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return engine.Compress(ctx, data, filenameHint, cfg)
}

// Decompress reconstructs the original input from a container file produced
// by Compress.
func Decompress(ctx context.Context, data []byte, opts ...Option) ([]byte, error) {
	cfg, err := engine.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return engine.Decompress(ctx, data, cfg)
}

// CompressFile reads inputPath, compresses it, and writes the container
// file to outputPath.
func CompressFile(ctx context.Context, inputPath, outputPath string, opts ...Option) error {
	cfg, err := engine.NewConfig(opts...)
	if err != nil {
		return err
	}

	return engine.CompressFile(ctx, inputPath, outputPath, cfg)
}

// DecompressFile reads a container file from inputPath and writes the
// reconstructed original to outputPath.
func DecompressFile(ctx context.Context, inputPath, outputPath string, opts ...Option) error {
	cfg, err := engine.NewConfig(opts...)
	if err != nil {
		return err
	}

	return engine.DecompressFile(ctx, inputPath, outputPath, cfg)
}
