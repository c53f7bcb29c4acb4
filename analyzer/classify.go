package analyzer

import (
	"strings"
	"unicode/utf8"
)

// extensionClass maps the small fixed table of known media/archive/
// executable extensions (section 4.1, step 2) to the class they imply.
var extensionClass = map[string]ContentClass{
	".jpg":  ClassMedia,
	".jpeg": ClassMedia,
	".png":  ClassMedia,
	".gif":  ClassMedia,
	".mp3":  ClassMedia,
	".mp4":  ClassMedia,
	".avi":  ClassMedia,
	".zip":  ClassCompressed,
	".gz":   ClassCompressed,
	".xz":   ClassCompressed,
	".7z":   ClassCompressed,
	".bz2":  ClassCompressed,
	".zst":  ClassCompressed,
	".exe":  ClassExecutable,
	".dll":  ClassExecutable,
	".so":   ClassExecutable,
}

// magicPrefix is one entry of the well-known magic-number table (section
// 4.1, step 3): bytes is the literal prefix to match at offset 0.
type magicPrefix struct {
	bytes []byte
	class ContentClass
}

var magicTable = []magicPrefix{
	{[]byte{0xFF, 0xD8, 0xFF}, ClassMedia},                   // JPEG
	{[]byte{0x89, 0x50, 0x4E, 0x47}, ClassMedia},              // PNG
	{[]byte("GIF87a"), ClassMedia},                            // GIF
	{[]byte("GIF89a"), ClassMedia},                            // GIF
	{[]byte("ID3"), ClassMedia},                                // MP3 (ID3 tag)
	{[]byte{0xFF, 0xFB}, ClassMedia},                           // MP3 (frame sync)
	{[]byte{0x50, 0x4B, 0x03, 0x04}, ClassCompressed},          // ZIP
	{[]byte{0x1F, 0x8B}, ClassCompressed},                      // GZIP
	{[]byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, ClassCompressed}, // XZ
	{[]byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}, ClassCompressed}, // 7z
	{[]byte("BZh"), ClassCompressed},                           // BZIP2
	{[]byte{0x28, 0xB5, 0x2F, 0xFD}, ClassCompressed},          // Zstandard
	{[]byte{0x7F, 0x45, 0x4C, 0x46}, ClassExecutable},          // ELF
	{[]byte{0x4D, 0x5A}, ClassExecutable},                      // PE/EXE (MZ)
}

// classifyByFilename resolves step 2: the filename extension table.
func classifyByFilename(filenameHint string) (ContentClass, bool) {
	if filenameHint == "" {
		return 0, false
	}

	lower := strings.ToLower(filenameHint)
	for ext, class := range extensionClass {
		if strings.HasSuffix(lower, ext) {
			return class, true
		}
	}

	return 0, false
}

// classifyByMagic resolves step 3: the first-8-bytes magic number table.
func classifyByMagic(sample []byte) (ContentClass, bool) {
	for _, m := range magicTable {
		if len(sample) >= len(m.bytes) && string(sample[:len(m.bytes)]) == string(m.bytes) {
			return m.class, true
		}
	}

	return 0, false
}

// structuralChars are the characters considered candidates for structured
// textual data (JSON-like delimiters).
const structuralChars = "{}[]\":,"

// sourceKeywords is a small, language-agnostic set of tokens common to
// mainstream programming languages, used as a coarse source-code signal.
var sourceKeywords = []string{
	"func ", "def ", "class ", "import ", "package ", "return ", "public ",
	"private ", "void ", "namespace ", "struct ", "interface ", "using ",
	"#include", "fn ", "impl ", "pub ", "async ", "const ", "let ", "var ",
}

// classifyText resolves step 4: structured text vs. source code vs. plain
// text, given the sample is valid UTF-8.
func classifyText(sample []byte) ContentClass {
	structural, punctuation := 0, 0
	for _, r := range string(sample) {
		if strings.ContainsRune(structuralChars, r) {
			structural++
			punctuation++
		} else if isPunctuation(r) {
			punctuation++
		}
	}

	if punctuation > 0 && float64(structural)/float64(punctuation) >= 0.8 {
		return ClassStructuredText
	}

	text := string(sample)
	semicolons := strings.Count(text, ";")
	semicolonDensity := float64(semicolons) / float64(max(len(sample), 1))

	keywordHits := 0
	for _, kw := range sourceKeywords {
		if strings.Contains(text, kw) {
			keywordHits++
		}
	}

	if semicolonDensity >= 0.005 || keywordHits >= 2 {
		return ClassSourceCode
	}

	return ClassText
}

func isPunctuation(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == ' ' || r == '\n' || r == '\t' || r == '\r':
		return false
	default:
		return true
	}
}

// classify resolves the full content-class priority order of section 4.1.
func classify(sample []byte, filenameHint string, entropy, repFactor float64) ContentClass {
	if entropy >= 7.5 {
		return ClassCompressed
	}

	if class, ok := classifyByFilename(filenameHint); ok {
		return class
	}

	if class, ok := classifyByMagic(sample); ok {
		return class
	}

	if utf8.Valid(sample) {
		if class := classifyText(sample); class != ClassText || repFactor < 0.5 {
			return class
		}
		// Valid UTF-8 that doesn't look like structured text or source and
		// is highly repetitive (e.g. a run of a single printable byte) is
		// more useful to downstream block-size/strategy selection as
		// repetitive than as plain text.
		return ClassRepetitive
	}

	if repFactor >= 0.5 {
		return ClassRepetitive
	}

	return ClassBinary
}
