package styler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/internal/note"
	"github.com/nguyentantai21042004/notegen/internal/rewriter"
)

// fakeRewriter returns canned answers per prompt kind, keyed on a
// distinctive substring of each user template.
type fakeRewriter struct {
	bodyOut    string
	titleOut   string
	tagsOut    string
	failAll    bool
	bodyPrompt string
}

func (f *fakeRewriter) Rewrite(ctx context.Context, chunks []note.Chunk, p rewriter.Prompt) (note.Note, error) {
	return note.Note{}, errors.New("not used by styler")
}

func (f *fakeRewriter) RewriteWhole(ctx context.Context, text string, p rewriter.Prompt) (string, error) {
	if f.failAll {
		return "", &note.GenerationError{Category: note.GenerationTransient, Err: errors.New("down")}
	}
	switch {
	case strings.Contains(p.User, "创作一个小红书标题"):
		return f.titleOut, nil
	case strings.Contains(p.User, "个小红书标签"):
		return f.tagsOut, nil
	default:
		f.bodyPrompt = p.User
		return f.bodyOut, nil
	}
}

func testRules() note.PlatformRules {
	return note.PlatformRules{
		BodyMinChars:  10,
		BodyMaxChars:  100,
		TitleMaxChars: 20,
		TagsMin:       3,
		TagsMax:       5,
	}
}

func TestToShortNote(t *testing.T) {
	fake := &fakeRewriter{
		bodyOut:  "💡开头很吸引人。中间是干货。结尾有号召！",
		titleOut: "🔥超实用的笔记",
		tagsOut:  "#学习 #干货 #效率 #职场",
	}
	s := New(fake, logger.New("error"))

	sn := s.ToShortNote(context.Background(), "原始长文内容。", testRules())

	if sn.Title != "🔥超实用的笔记" {
		t.Errorf("Title = %q", sn.Title)
	}
	if sn.Body != fake.bodyOut {
		t.Errorf("Body = %q", sn.Body)
	}
	want := []string{"学习", "干货", "效率", "职场"}
	if len(sn.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", sn.Tags, want)
	}
	for i := range want {
		if sn.Tags[i] != want[i] {
			t.Errorf("Tags[%d] = %q, want %q", i, sn.Tags[i], want[i])
		}
	}
}

func TestBodyNeverExceedsMax(t *testing.T) {
	long := strings.Repeat("这是一个很长的句子。", 50)
	fake := &fakeRewriter{bodyOut: long, titleOut: "标题", tagsOut: "#一 #二 #三"}
	s := New(fake, logger.New("error"))

	rules := testRules()
	sn := s.ToShortNote(context.Background(), "长文。", rules)

	if n := utf8.RuneCountInString(sn.Body); n > rules.BodyMaxChars {
		t.Errorf("body has %d runes, limit %d", n, rules.BodyMaxChars)
	}
	if !strings.HasSuffix(sn.Body, "。") {
		t.Errorf("truncated body should end at a sentence boundary, got %q", sn.Body)
	}
}

func TestBodyPromptCarriesLengthBounds(t *testing.T) {
	fake := &fakeRewriter{bodyOut: "正文。", titleOut: "标题", tagsOut: "#一 #二 #三"}
	s := New(fake, logger.New("error"))

	rules := testRules()
	rules.BodyMinChars = 123
	rules.BodyMaxChars = 456
	s.ToShortNote(context.Background(), "长文。", rules)

	if !strings.Contains(fake.bodyPrompt, "123 到 456 个字") {
		t.Errorf("body prompt carries no length target:\n%s", fake.bodyPrompt)
	}
}

func TestTruncateAtSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"under limit unchanged", "短句。", 100, "短句。"},
		{"cuts at sentence end", "第一句。第二句。第三句很长很长很长", 10, "第一句。第二句。"},
		{"cuts at word boundary", "one two three four five six", 15, "one two three"},
		{"hard cut without boundaries", "aaaaaaaaaaaaaaaaaaaa", 5, "aaaaa"},
		{"zero limit disables", "任意内容", 0, "任意内容"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateAtSentence(tt.in, tt.max); got != tt.want {
				t.Errorf("truncateAtSentence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagDeduplication(t *testing.T) {
	fake := &fakeRewriter{
		bodyOut:  "正文。",
		titleOut: "标题",
		tagsOut:  "#学习 #学习 #干货 #学习 #干货 #效率",
	}
	s := New(fake, logger.New("error"))

	sn := s.ToShortNote(context.Background(), "长文。", testRules())

	seen := make(map[string]bool)
	for _, tag := range sn.Tags {
		if seen[tag] {
			t.Errorf("duplicate tag %q", tag)
		}
		seen[tag] = true
	}
	if len(sn.Tags) != 3 {
		t.Errorf("Tags = %v, want 3 unique entries", sn.Tags)
	}
}

func TestTagCountBounds(t *testing.T) {
	fake := &fakeRewriter{
		bodyOut:  "正文。",
		titleOut: "标题",
		tagsOut:  "#a1 #b2 #c3 #d4 #e5 #f6 #g7 #h8",
	}
	s := New(fake, logger.New("error"))

	rules := testRules()
	sn := s.ToShortNote(context.Background(), "长文。", rules)

	if len(sn.Tags) > rules.TagsMax {
		t.Errorf("got %d tags, max %d", len(sn.Tags), rules.TagsMax)
	}
}

func TestFallbacksWhenServiceDown(t *testing.T) {
	longForm := "深度工作是一种专注能力。它能让你在嘈杂的世界里保持高效。focus focus deep work work work"
	s := New(&fakeRewriter{failAll: true}, logger.New("error"))

	rules := testRules()
	sn := s.ToShortNote(context.Background(), longForm, rules)

	// Title falls back to the first sentence, clipped to the bound.
	if sn.Title == "" {
		t.Error("fallback title is empty")
	}
	if n := utf8.RuneCountInString(sn.Title); n > rules.TitleMaxChars {
		t.Errorf("fallback title has %d runes, limit %d", n, rules.TitleMaxChars)
	}
	if !strings.HasPrefix("深度工作是一种专注能力。", sn.Title) {
		t.Errorf("fallback title = %q, want prefix of first sentence", sn.Title)
	}

	// Body falls back to the long-form text, still bounded.
	if sn.Body == "" {
		t.Error("fallback body is empty")
	}
	if n := utf8.RuneCountInString(sn.Body); n > rules.BodyMaxChars {
		t.Errorf("fallback body has %d runes, limit %d", n, rules.BodyMaxChars)
	}

	// Tags fall back to frequent meaningful terms.
	if len(sn.Tags) == 0 {
		t.Error("fallback tags are empty")
	}
	if len(sn.Tags) > rules.TagsMax {
		t.Errorf("got %d fallback tags, max %d", len(sn.Tags), rules.TagsMax)
	}
}

func TestHeuristicTags(t *testing.T) {
	text := "golang golang golang testing testing pipeline the the the a"
	tags := heuristicTags(text, 3)
	if len(tags) != 3 {
		t.Fatalf("tags = %v, want 3", tags)
	}
	if tags[0] != "golang" {
		t.Errorf("tags[0] = %q, want golang (most frequent)", tags[0])
	}
	if tags[1] != "testing" {
		t.Errorf("tags[1] = %q, want testing", tags[1])
	}
	for _, tag := range tags {
		if stopwords[tag] {
			t.Errorf("stopword %q leaked into tags", tag)
		}
	}
}
