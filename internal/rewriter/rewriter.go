package rewriter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/notegen/internal/note"
	"github.com/nguyentantai21042004/notegen/pkg/retry"
)

// continuityHintRunes is how much of the previous chunk's tail is passed
// along as context so the rewrite does not lose the thread at a cut point.
const continuityHintRunes = 120

func (r *implRewriter) Rewrite(ctx context.Context, chunks []note.Chunk, prompt Prompt) (note.Note, error) {
	if len(chunks) == 0 {
		return note.Note{}, nil
	}

	results := make([]note.RewriteResult, len(chunks))
	sem := newSemaphore(r.maxInFlight)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		if err := sem.acquire(ctx); err != nil {
			return note.Note{}, err
		}
		wg.Add(1)
		go func(i int, chunk note.Chunk) {
			defer wg.Done()
			defer sem.release()

			hint := ""
			if i > 0 {
				hint = tail(chunks[i-1].Text, continuityHintRunes)
			}
			results[i] = r.rewriteChunk(ctx, chunk, len(chunks), hint, prompt)
		}(i, chunk)
	}
	wg.Wait()

	// Assembly is strictly chunk-index order, never completion order.
	parts := make([]string, len(results))
	for i, res := range results {
		parts[i] = res.Text
	}

	return note.Note{
		Text:    strings.Join(parts, "\n\n"),
		Results: results,
	}, nil
}

func (r *implRewriter) RewriteWhole(ctx context.Context, text string, prompt Prompt) (string, error) {
	res := r.rewriteChunk(ctx, note.Chunk{Index: note.WholeDocument, Text: text}, 1, "", prompt)
	if res.Failed {
		return "", res.Err
	}
	return res.Text, nil
}

// rewriteChunk runs one request to completion, for a single chunk or for
// a whole-document call. Exhausted retries and permanent failures degrade
// to the original text so no content is ever dropped.
func (r *implRewriter) rewriteChunk(ctx context.Context, chunk note.Chunk, total int, hint string, prompt Prompt) note.RewriteResult {
	var content strings.Builder
	if total > 1 {
		fmt.Fprintf(&content, "这是文章的第 %d/%d 部分。\n", chunk.Index+1, total)
	}
	if hint != "" {
		fmt.Fprintf(&content, "上一部分的结尾（仅供衔接，不要重写）：\n%s\n\n", hint)
	}
	content.WriteString(chunk.Text)

	text, err := r.generate(ctx, prompt.System, fmt.Sprintf(prompt.User, content.String()))
	if err != nil {
		if chunk.Index == note.WholeDocument {
			r.logger.Warn(ctx, "Whole-document rewrite failed: %v", err)
		} else {
			r.logger.Warn(ctx, "Chunk %d/%d rewrite failed, keeping original text: %v", chunk.Index+1, total, err)
		}
		return note.RewriteResult{
			Index:  chunk.Index,
			Text:   chunk.Text,
			Failed: true,
			Err:    err,
		}
	}

	return note.RewriteResult{Index: chunk.Index, Text: strings.TrimSpace(text)}
}

// generate issues one request with retry. Only transient generation
// errors are retried; permanent ones stop immediately.
func (r *implRewriter) generate(ctx context.Context, system, user string) (string, error) {
	var out string
	err := retry.Do(ctx, r.policy, func() error {
		text, err := r.gen.Generate(ctx, system, user)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return &note.GenerationError{
				Category: note.GenerationTransient,
				Err:      errors.New("empty response"),
			}
		}
		out = text
		return nil
	}, note.IsTransientGeneration)
	return out, err
}

func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
