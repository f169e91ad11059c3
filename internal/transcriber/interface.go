package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Transcriber converts a local audio file into a timed transcript.
// It never retries internally; retry policy belongs to the orchestrator.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (note.Transcript, error)
}
