package engine

import (
	"context"

	"github.com/Llucs/TurboZip/container"
	"github.com/Llucs/TurboZip/errs"
	"github.com/Llucs/TurboZip/pipeline"
)

// Decompress parses a container file and reconstructs the original input,
// per section 4.6.
func Decompress(ctx context.Context, data []byte, cfg *Config) ([]byte, error) {
	if len(data) < container.HeaderSize {
		return nil, errs.ErrUnsupportedFormat
	}

	header, err := container.ParseHeader(data[:container.HeaderSize])
	if err != nil {
		return nil, err
	}

	offset := container.HeaderSize
	if offset+int(header.MetadataLen) > len(data) {
		return nil, errs.ErrCorruptMetadata
	}

	if _, err := container.ParseMetadata(data[offset : offset+int(header.MetadataLen)]); err != nil {
		return nil, err
	}
	offset += int(header.MetadataLen)

	indexLen := int(header.BlockCount) * container.IndexEntrySize
	if offset+indexLen > len(data) {
		return nil, errs.ErrMalformedIndex
	}

	entries, err := container.ParseIndex(data[offset:offset+indexLen], int(header.BlockCount))
	if err != nil {
		return nil, err
	}
	offset += indexLen

	payload := data[offset:]

	blocks, err := runParallel(ctx, len(entries), cfg.Threads(), func(i int) ([]byte, error) {
		e := entries[i]
		if e.PayloadOffset+uint64(e.CompressedSize) > uint64(len(payload)) {
			return nil, errs.ErrMalformedIndex
		}

		blockPayload := payload[e.PayloadOffset : e.PayloadOffset+uint64(e.CompressedSize)]

		return pipeline.Decode(blockPayload, e.Algorithm, e.Level, e.BlockFlags, int(e.OriginalSize), e.CRC32, i)
	})
	if err != nil {
		return nil, err
	}

	output := make([]byte, 0, header.OriginalLen)
	for _, b := range blocks {
		output = append(output, b...)
	}

	if truncatedSHA256(output) != header.GlobalHash {
		return nil, errs.ErrGlobalChecksumMismatch
	}

	return output, nil
}
