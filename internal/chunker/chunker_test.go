package chunker

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

func joinChunks(chunks []note.Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Text)
	}
	return b.String()
}

func TestSplitRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
	}{
		{"short text", "一句话。", 100},
		{"sentence boundaries", strings.Repeat("这是一个测试句子。", 50), 80},
		{"paragraph boundaries", strings.Repeat("第一段内容。\n\n第二段内容。\n\n", 30), 100},
		{"no boundaries at all", strings.Repeat("字", 500), 64},
		{"mixed latin and cjk", strings.Repeat("Hello world. 你好世界。", 40), 50},
		{"boundary outside lookback", strings.Repeat("x", 300) + "。" + strings.Repeat("y", 700), 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Split(tt.text, tt.maxChars)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if got := joinChunks(chunks); got != tt.text {
				t.Errorf("round trip mismatch: got %d chars, want %d", len(got), len(tt.text))
			}
			for _, c := range chunks {
				if n := utf8.RuneCountInString(c.Text); n > tt.maxChars {
					t.Errorf("chunk %d has %d runes, limit %d", c.Index, n, tt.maxChars)
				}
			}
			for i, c := range chunks {
				if c.Index != i {
					t.Errorf("chunk at position %d has index %d", i, c.Index)
				}
			}
		})
	}
}

func TestSplitDeterminism(t *testing.T) {
	text := strings.Repeat("determinism test sentence. 判定性测试。\n\n", 100)
	first, err := Split(text, 120)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Split(text, 120)
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: %d chunks, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j].Text != first[j].Text {
				t.Fatalf("run %d: chunk %d boundary changed", i, j)
			}
		}
	}
}

func TestSplitSingleChunk(t *testing.T) {
	text := "短文本，不需要分块。"
	chunks, err := Split(text, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("chunk text = %q, want %q", chunks[0].Text, text)
	}
}

func TestSplitEmptyText(t *testing.T) {
	chunks, err := Split("", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 0 {
		t.Errorf("got %d chunks for empty text, want 0", len(chunks))
	}
}

func TestSplitInvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, err := Split("some text", limit)
		if err == nil {
			t.Fatalf("Split() with limit %d should fail", limit)
		}
		var ce *note.ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("error type = %T, want *note.ConfigError", err)
		}
	}
}

func TestSplitPrefersParagraphBreak(t *testing.T) {
	text := strings.Repeat("a", 50) + "。\n\n" + strings.Repeat("b", 100)
	chunks, err := Split(text, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(chunks[0].Text, "\n\n") {
		t.Errorf("first chunk should end at the paragraph break, got %q", chunks[0].Text)
	}
}

func TestSplitFallsBackToSentenceBreak(t *testing.T) {
	text := strings.Repeat("a", 50) + "。" + strings.Repeat("b", 100)
	chunks, err := Split(text, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(chunks[0].Text, "。") {
		t.Errorf("first chunk should end at the sentence break, got %q", chunks[0].Text)
	}
}

// A 50,000-char transcript with chunk_max_chars=2000 must not exceed
// ceil(50000/2000) chunks when no natural boundary shortens a cut.
func TestSplitLongTranscriptChunkCount(t *testing.T) {
	text := strings.Repeat("字", 50000)
	chunks, err := Split(text, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) > 25 {
		t.Errorf("got %d chunks, want at most 25", len(chunks))
	}
	if got := joinChunks(chunks); got != text {
		t.Error("round trip mismatch on long transcript")
	}
}
