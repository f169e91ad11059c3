package styler

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/notegen/internal/note"
	"github.com/nguyentantai21042004/notegen/internal/rewriter"
)

func (s *implStyler) ToShortNote(ctx context.Context, longForm string, rules note.PlatformRules) note.ShortNote {
	return note.ShortNote{
		Title: s.makeTitle(ctx, longForm, rules),
		Body:  s.makeBody(ctx, longForm, rules),
		Tags:  s.makeTags(ctx, longForm, rules),
	}
}

func (s *implStyler) makeBody(ctx context.Context, longForm string, rules note.PlatformRules) string {
	tone := ""
	if len(rules.ToneHints) > 0 {
		tone = "- 语气提示：" + strings.Join(rules.ToneHints, "，")
	}
	prompt := rewriter.Prompt{
		System: styleSystemPrompt,
		User:   fmt.Sprintf(bodyUserPrompt, rules.BodyMinChars, rules.BodyMaxChars, tone),
	}

	body, err := s.rewriter.RewriteWhole(ctx, longForm, prompt)
	if err != nil {
		s.logger.Warn(ctx, "Body generation failed, keeping long-form text: %v", err)
		body = longForm
	}

	// Over-length bodies are cut at a sentence boundary instead of
	// discarding the note.
	return truncateAtSentence(strings.TrimSpace(body), rules.BodyMaxChars)
}

func (s *implStyler) makeTitle(ctx context.Context, longForm string, rules note.PlatformRules) string {
	prompt := rewriter.Prompt{
		System: styleSystemPrompt,
		User:   fmt.Sprintf(titleUserPrompt, rules.TitleMaxChars),
	}

	title, err := s.rewriter.RewriteWhole(ctx, longForm, prompt)
	if err != nil {
		s.logger.Warn(ctx, "Title generation failed, falling back to first sentence: %v", err)
		title = firstSentence(longForm)
	}

	title = strings.TrimSpace(firstLine(title))
	if title == "" {
		title = firstSentence(longForm)
	}
	return clipRunes(title, rules.TitleMaxChars)
}

func (s *implStyler) makeTags(ctx context.Context, longForm string, rules note.PlatformRules) []string {
	prompt := rewriter.Prompt{
		System: styleSystemPrompt,
		User:   fmt.Sprintf(tagsUserPrompt, rules.TagsMin, rules.TagsMax),
	}

	var tags []string
	raw, err := s.rewriter.RewriteWhole(ctx, longForm, prompt)
	if err != nil {
		s.logger.Warn(ctx, "Tag generation failed, falling back to frequent terms: %v", err)
	} else {
		tags = parseTags(raw)
	}

	// Top up from the heuristic when generation came back short.
	if len(tags) < rules.TagsMin {
		tags = mergeTags(tags, heuristicTags(longForm, rules.TagsMax))
	}
	if rules.TagsMax > 0 && len(tags) > rules.TagsMax {
		tags = tags[:rules.TagsMax]
	}
	return tags
}

// parseTags splits generated tag output, strips the leading # and
// deduplicates by exact string match.
func parseTags(raw string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, field := range strings.Fields(raw) {
		tag := strings.TrimSpace(strings.TrimPrefix(field, "#"))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func mergeTags(tags, extra []string) []string {
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		seen[t] = true
	}
	for _, t := range extra {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
