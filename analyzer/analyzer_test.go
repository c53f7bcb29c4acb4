package analyzer

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Empty(t *testing.T) {
	r := Analyze(nil, "")
	assert.Equal(t, 0, r.SampleSizeBytes)
	assert.Equal(t, float64(0), r.Entropy)
}

func TestAnalyze_RepetitiveSingleByte(t *testing.T) {
	data := bytes.Repeat([]byte{0x41}, 4096)
	r := Analyze(data, "")

	assert.Equal(t, ClassRepetitive.String(), r.ContentClass.String())
	assert.Less(t, r.Entropy, 1.0)
	assert.GreaterOrEqual(t, r.RepetitionFactor, 0.5)
	assert.Greater(t, r.CompressibilityEstimate, 0.8)
}

func TestAnalyze_RandomData_HighEntropy(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := make([]byte, 1<<20)
	_, _ = r.Read(data)

	report := Analyze(data, "")

	assert.Equal(t, ClassCompressed.String(), report.ContentClass.String())
	assert.GreaterOrEqual(t, report.Entropy, 7.5)
	assert.Less(t, report.CompressibilityEstimate, 0.3)
}

func TestAnalyze_JSON_StructuredText(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100000; i++ {
		sb.WriteString(`{"a":1,"b":2,"c":3}`)
	}
	data := []byte(sb.String())

	report := Analyze(data, "")

	assert.Equal(t, ClassStructuredText.String(), report.ContentClass.String())
}

func TestAnalyze_SourceCode(t *testing.T) {
	code := strings.Repeat(`
func add(a int, b int) int {
	return a + b;
}
`, 200)

	report := Analyze([]byte(code), "main.go")
	assert.Equal(t, ClassSourceCode.String(), report.ContentClass.String())
}

func TestAnalyze_PlainText(t *testing.T) {
	text := "Rain fell softly over the quiet harbor while fishermen mended their nets beside small wooden boats. " +
		"Gulls circled above the water and an old lighthouse keeper watched the tide roll in across gray stones. " +
		"Later that evening the village gathered near the square to share bread and stories about distant islands."

	report := Analyze([]byte(text), "")
	assert.Equal(t, ClassText.String(), report.ContentClass.String())
}

func TestAnalyze_FilenameHint_Media(t *testing.T) {
	data := make([]byte, 1024)
	report := Analyze(data, "photo.JPG")
	assert.Equal(t, ClassMedia.String(), report.ContentClass.String())
}

func TestAnalyze_FilenameHint_Executable(t *testing.T) {
	data := make([]byte, 1024)
	report := Analyze(data, "app.exe")
	assert.Equal(t, ClassExecutable.String(), report.ContentClass.String())
}

func TestAnalyze_MagicNumber_Gzip(t *testing.T) {
	data := append([]byte{0x1F, 0x8B, 0x08, 0x00}, make([]byte, 1024)...)
	report := Analyze(data, "")
	assert.Equal(t, ClassCompressed.String(), report.ContentClass.String())
}

func TestAnalyze_LargeFile_Sampling(t *testing.T) {
	data := make([]byte, 1<<20) // 1 MiB, above the whole-file threshold
	for i := range data {
		data[i] = byte(i % 7)
	}

	report := Analyze(data, "")
	assert.Equal(t, 3*sampleChunkSize, report.SampleSizeBytes)
}

func TestAnalyze_SmallFile_WholeFile(t *testing.T) {
	data := make([]byte, 1024)
	report := Analyze(data, "")
	assert.Equal(t, 1024, report.SampleSizeBytes)
}

func TestAnalyze_Deterministic(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 10000)

	r1 := Analyze(data, "hint.txt")
	r2 := Analyze(data, "hint.txt")

	assert.Equal(t, r1, r2)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 1.0, clamp01(2))
	assert.Equal(t, 0.5, clamp01(0.5))
}
