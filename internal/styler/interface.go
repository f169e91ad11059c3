package styler

import (
	"context"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Styler turns a long-form note into the platform-styled short note.
type Styler interface {
	// ToShortNote generates body, title and tags through three
	// independent prompted calls. Every call degrades to a heuristic
	// derived from the long-form note instead of failing the job.
	ToShortNote(ctx context.Context, longForm string, rules note.PlatformRules) note.ShortNote
}
