package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Pipeline runs the full video-to-note flow for one or more URLs.
type Pipeline interface {
	// ProcessURL runs one job end to end and always returns a report,
	// failed jobs included.
	ProcessURL(ctx context.Context, url string) note.JobReport

	// ProcessBatch runs the URLs sequentially. A failed job never stops
	// the batch; the returned reports are in input order.
	ProcessBatch(ctx context.Context, urls []string) []note.JobReport
}
