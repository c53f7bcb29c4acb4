package engine

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Llucs/TurboZip/errs"
)

// CompressFile reads inputPath, compresses it, and writes the container
// file to outputPath. It writes to a temporary path in the same directory
// and renames on success, so a cancelled or failed run never leaves a
// partial file at outputPath (section 5, "Cancellation and timeouts").
func CompressFile(ctx context.Context, inputPath, outputPath string, cfg *Config) error {
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	if !cfg.Force() {
		if _, err := os.Stat(outputPath); err == nil {
			return errs.ErrUsageError
		}
	}

	out, err := Compress(ctx, input, filepath.Base(inputPath), cfg)
	if err != nil {
		return err
	}

	return writeViaTemp(outputPath, out)
}

// DecompressFile reads a container file from inputPath, decompresses it,
// and writes the original bytes to outputPath, using the same
// temp-file-then-rename finalize as CompressFile.
func DecompressFile(ctx context.Context, inputPath, outputPath string, cfg *Config) error {
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	if !cfg.Force() {
		if _, err := os.Stat(outputPath); err == nil {
			return errs.ErrUsageError
		}
	}

	out, err := Decompress(ctx, input, cfg)
	if err != nil {
		return err
	}

	return writeViaTemp(outputPath, out)
}

// writeViaTemp writes data to a temporary file beside path, then renames
// it into place. On any failure the temporary file is removed and no
// partial output is left at path.
func writeViaTemp(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
