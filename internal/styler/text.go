package styler

import (
	"sort"
	"strings"
	"unicode"
)

// truncateAtSentence cuts s to at most maxChars runes, preferring the
// last sentence boundary below the limit, then the last word boundary,
// so the cut never lands mid-word.
func truncateAtSentence(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}

	for i := maxChars - 1; i >= 0; i-- {
		if isSentenceEnd(runes[i]) {
			return string(runes[:i+1])
		}
	}
	for i := maxChars - 1; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return strings.TrimRight(string(runes[:i]), " \t\n")
		}
	}
	return string(runes[:maxChars])
}

// firstSentence returns the first sentence of s with markdown markers
// stripped, as the heuristic title fallback.
func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#*- "))
		if line == "" {
			continue
		}
		runes := []rune(line)
		for i, r := range runes {
			if isSentenceEnd(r) {
				return string(runes[:i+1])
			}
		}
		return line
	}
	return s
}

func clipRunes(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?', '.', '…':
		return true
	}
	return false
}

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "that": true, "this": true,
	"with": true, "are": true, "was": true, "you": true, "your": true,
	"have": true, "from": true, "not": true, "but": true, "can": true,
	"我们": true, "他们": true, "这个": true, "那个": true, "就是": true,
	"可以": true, "因为": true, "所以": true, "但是": true, "如果": true,
	"一个": true, "没有": true, "什么": true, "这样": true, "还是": true,
}

// heuristicTags extracts the most frequent meaningful terms from the
// note as the tag fallback.
func heuristicTags(text string, max int) []string {
	counts := make(map[string]int)
	order := make(map[string]int)

	idx := 0
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		term := strings.ToLower(field)
		if len([]rune(term)) < 2 || len([]rune(term)) > 12 || stopwords[term] {
			continue
		}
		if _, ok := counts[term]; !ok {
			order[term] = idx
			idx++
		}
		counts[term]++
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	// Frequency first, first appearance as tie-break for determinism.
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return order[terms[i]] < order[terms[j]]
	})

	if max > 0 && len(terms) > max {
		terms = terms[:max]
	}
	return terms
}
