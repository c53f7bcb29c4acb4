package engine

import (
	"context"
	"crypto/sha256"

	"github.com/Llucs/TurboZip/analyzer"
	"github.com/Llucs/TurboZip/container"
	"github.com/Llucs/TurboZip/internal/pool"
	"github.com/Llucs/TurboZip/pipeline"
	"github.com/Llucs/TurboZip/planner"
	"github.com/Llucs/TurboZip/strategy"
)

// Compress runs the full encode pipeline over input and returns the
// complete container file bytes, per section 4.5.
//
// Compress always buffers the block index and payload in memory before
// returning (the "alternative single-pass layout" permitted for files
// under 256 MiB of output), whatever the input size; there is no
// streaming path for larger outputs.
func Compress(ctx context.Context, input []byte, filenameHint string, cfg *Config) ([]byte, error) {
	report := analyzer.Analyze(input, filenameHint)
	blocks := planner.Plan(input, report)
	globalHash := truncatedSHA256(input)

	records, err := runParallel(ctx, len(blocks), cfg.Threads(), func(i int) (pipeline.Record, error) {
		b := blocks[i]
		data := input[b.Offset : b.Offset+b.Length]

		localEntropy := analyzer.Entropy(data)
		s := strategy.Select(localEntropy, report, cfg.Profile(), data)

		return pipeline.Encode(data, s), nil
	})
	if err != nil {
		return nil, err
	}

	return assemble(report, string(cfg.Profile()), blocks, records, uint64(len(input)), globalHash), nil
}

// assemble serializes the header, metadata, block index, and payload
// region into one contiguous byte slice, per section 6.1.
func assemble(report analyzer.Report, profile string, blocks []planner.Block, records []pipeline.Record, totalLen uint64, globalHash [8]byte) []byte {
	histogram := algorithmHistogram(records)
	metadata := container.NewMetadata(report, profile, histogram)

	metadataBytes, err := metadata.Encode()
	if err != nil {
		// Metadata is built entirely from in-process values with known
		// JSON-encodable types; marshaling cannot fail here.
		panic("engine: metadata encoding failed: " + err.Error())
	}

	entries := make([]container.IndexEntry, len(records))
	var payloadOffset uint64
	for i, r := range records {
		entries[i] = container.IndexEntry{
			PayloadOffset:  payloadOffset,
			CompressedSize: r.CompressedSize,
			OriginalSize:   r.OriginalSize,
			Algorithm:      r.Algorithm,
			Level:          r.Level,
			BlockFlags:     r.BlockFlags,
			CRC32:          r.CRC32,
		}
		payloadOffset += uint64(r.CompressedSize)
	}

	header := container.Header{
		Flags:         globalFlags(report, records, len(blocks)),
		OriginalLen:   totalLen,
		BlockCount:    uint32(len(entries)),
		BaseBlockSize: uint32(planner.BaseBlockSize(int64(totalLen), report)),
		GlobalHash:    globalHash,
		MetadataLen:   uint32(len(metadataBytes)),
	}

	total := container.HeaderSize + len(metadataBytes) + len(entries)*container.IndexEntrySize + int(payloadOffset)

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)
	buf.Grow(total)

	buf.MustWrite(header.Bytes())
	buf.MustWrite(metadataBytes)
	buf.MustWrite(container.EncodeIndex(entries))
	for _, r := range records {
		buf.MustWrite(r.Payload)
	}

	// buf is returned to the pool on defer, so the assembled bytes are
	// copied into a slice the caller can keep past this call.
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// algorithmHistogram counts how many blocks were emitted with each
// algorithm, for the metadata section's per-block algorithm histogram.
func algorithmHistogram(records []pipeline.Record) map[string]int {
	histogram := make(map[string]int)
	for _, r := range records {
		histogram[r.Algorithm.String()]++
	}

	return histogram
}

// globalFlags derives the section 6.2 global flags from the report and
// the emitted records.
func globalFlags(report analyzer.Report, records []pipeline.Record, blockCount int) uint16 {
	var flags uint16 = container.FlagAnalysisPerformed

	for _, r := range records {
		if r.BlockFlags&0x0003 != 0 {
			flags |= container.FlagPreprocessingApplied
		}
		if r.BlockFlags&0x0008 != 0 {
			flags |= container.FlagMultiPassUsed
		}
	}

	if report.ContentClass == analyzer.ClassStructuredText {
		flags |= container.FlagAdaptiveBlockSizing
	}
	if blockCount > 1 {
		flags |= container.FlagAdaptiveBlockSizing
	}
	if report.PatternDensity >= 0.5 {
		flags |= container.FlagPatternOptimization
	}

	return flags
}

// truncatedSHA256 returns the first 8 bytes of SHA-256(data), the global
// hash stored in the header.
func truncatedSHA256(data []byte) [8]byte {
	sum := sha256.Sum256(data)

	var out [8]byte
	copy(out[:], sum[:8])

	return out
}
