package chunker

import (
	"github.com/nguyentantai21042004/notegen/internal/note"
)

// lookbackWindow bounds how far Split searches backward from the size
// limit for a natural break before giving up and hard-cutting.
const lookbackWindow = 200

// Split divides text into ordered chunks of at most maxChars runes each.
// Cut points prefer a paragraph break, then a sentence break, within the
// look-back window; otherwise the chunk is cut hard at the limit.
// Concatenating the returned chunks reproduces text exactly.
func Split(text string, maxChars int) ([]note.Chunk, error) {
	if maxChars <= 0 {
		return nil, &note.ConfigError{Field: "chunk_max_chars", Reason: "must be positive"}
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}
	if len(runes) <= maxChars {
		return []note.Chunk{{Index: 0, Text: text}}, nil
	}

	var chunks []note.Chunk
	pos := 0
	for pos < len(runes) {
		remaining := len(runes) - pos
		if remaining <= maxChars {
			chunks = append(chunks, note.Chunk{Index: len(chunks), Text: string(runes[pos:])})
			break
		}

		cut := findCut(runes, pos, pos+maxChars)
		chunks = append(chunks, note.Chunk{Index: len(chunks), Text: string(runes[pos:cut])})
		pos = cut
	}

	return chunks, nil
}

// findCut returns the cut position in (lo, hi], preferring a paragraph
// break, then a sentence break, within the look-back window ending at hi.
func findCut(runes []rune, lo, hi int) int {
	windowStart := hi - lookbackWindow
	if windowStart <= lo {
		windowStart = lo + 1
	}

	// Paragraph break: cut right after a blank line.
	for i := hi - 2; i >= windowStart; i-- {
		if runes[i] == '\n' && runes[i+1] == '\n' {
			if i+2 > lo {
				return i + 2
			}
			break
		}
	}

	// Sentence break: cut right after a terminator.
	for i := hi - 1; i >= windowStart; i-- {
		if isSentenceEnd(runes[i]) {
			if i+1 > lo {
				return i + 1
			}
			break
		}
	}

	// Hard cut at the limit so chunk size stays bounded.
	return hi
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?', '.', '…':
		return true
	}
	return false
}
