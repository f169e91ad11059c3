package storage

import (
	"context"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Storage persists the per-job workspace and the three output artifacts.
type Storage interface {
	// TempDir creates and returns the scratch directory for a job.
	TempDir(jobKey string) (string, error)

	// SaveTranscript writes the raw transcript artifact and returns its path.
	SaveTranscript(ctx context.Context, key string, info note.MediaInfo, transcript string) (string, error)

	// SaveOrganized writes the long-form note artifact (plus a docx copy)
	// and returns the markdown path.
	SaveOrganized(ctx context.Context, key string, info note.MediaInfo, content string) (string, error)

	// SaveShortNote writes the final short-note artifact and returns its path.
	SaveShortNote(ctx context.Context, key string, info note.MediaInfo, sn note.ShortNote) (string, error)

	// Cleanup removes the job's scratch directory.
	Cleanup(ctx context.Context, jobKey string)
}
