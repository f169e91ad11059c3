package downloader

import (
	"context"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Downloader fetches the media behind a URL into destDir and returns the
// local file path plus the video metadata.
type Downloader interface {
	Download(ctx context.Context, url, destDir string) (string, note.MediaInfo, error)
}
