package images

import (
	"context"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Sourcer finds illustrative images for a short note. Image absence is a
// valid degraded outcome; Fetch never fails the job.
type Sourcer interface {
	Fetch(ctx context.Context, title string, tags []string, maxImages int) []note.ImageRef
}

// Searcher is the narrow contract of the external image index.
type Searcher interface {
	Search(ctx context.Context, term string, limit int) ([]note.ImageRef, error)
}
