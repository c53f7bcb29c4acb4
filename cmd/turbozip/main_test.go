package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	_, err := root.ExecuteC()
	return out.String(), err
}

func TestCompressDecompress_RoundTripViaCLI(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello turbozip, hello turbozip, hello turbozip"), 0o600))

	archive := input + containerExt
	_, err := runCmd(t, "compress", input, "--verbose")
	require.NoError(t, err)
	_, statErr := os.Stat(archive)
	require.NoError(t, statErr)

	restored := filepath.Join(dir, "restored.txt")
	_, err = runCmd(t, "decompress", archive, restored)
	require.NoError(t, err)

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	original, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestCompress_RefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("data"), 0o600))

	archive := input + containerExt
	require.NoError(t, os.WriteFile(archive, []byte("existing"), 0o600))

	_, err := runCmd(t, "compress", input)
	assert.Error(t, err)
}

func TestCompress_InvalidProfileRejected(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("data"), 0o600))

	_, err := runCmd(t, "compress", input, "--profile=nonsense")
	assert.Error(t, err)
}

func TestDecompress_RejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "decompress", filepath.Join(dir, "missing.tzip"))
	assert.Error(t, err)
}

func TestDiagnostic_NamesBlockIndexForChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("abcdefghijklmnopqrstuvwxyz0123456789"), 0o600))

	archive := input + containerExt
	_, err := runCmd(t, "compress", input)
	require.NoError(t, err)

	data, err := os.ReadFile(archive)
	require.NoError(t, err)
	// Flip a byte well past the header and index, inside the payload.
	if len(data) > 80 {
		data[len(data)-1] ^= 0xFF
	}
	require.NoError(t, os.WriteFile(archive, data, 0o600))

	msg := diagnostic("decompress", os.ErrInvalid)
	assert.Contains(t, msg, "decompress")

	_, err = runCmd(t, "decompress", archive, filepath.Join(dir, "out.txt"))
	assert.Error(t, err)
	assert.Contains(t, diagnostic("decompress", err), "block 0 checksum mismatch")
}
