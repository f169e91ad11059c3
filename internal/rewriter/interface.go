package rewriter

import (
	"context"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Rewriter sends text through the generative service and assembles the
// results back into a single document.
type Rewriter interface {
	// Rewrite processes every chunk independently and stitches the
	// outputs together in chunk-index order. Chunks whose requests
	// exhaust their retries keep their original text verbatim, so the
	// returned note never loses content.
	Rewrite(ctx context.Context, chunks []note.Chunk, prompt Prompt) (note.Note, error)

	// RewriteWhole is the degenerate single-call form used for short
	// texts and for the style transformer's prompted calls.
	RewriteWhole(ctx context.Context, text string, prompt Prompt) (string, error)
}

// Generator is the narrow contract of the generative text service.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Prompt carries a role-specific system prompt and a user template with
// one %s placeholder for the content.
type Prompt struct {
	System string
	User   string
}
