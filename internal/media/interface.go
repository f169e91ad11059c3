package media

import "context"

// Extractor pulls the audio track out of a downloaded media file.
type Extractor interface {
	ExtractAudio(ctx context.Context, mediaPath string) (string, error)
}
