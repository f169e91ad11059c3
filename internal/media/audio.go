package media

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// ExtractAudio converts the media file to 16kHz mono WAV, the format the
// speech-to-text engine works best with.
func (e *implExtractor) ExtractAudio(ctx context.Context, mediaPath string) (string, error) {
	audioPath := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + ".wav"

	e.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	// -vn: drop video
	// -ar 16000 / -ac 1: 16kHz mono
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", &note.MediaError{Path: mediaPath, Err: err}
	}

	e.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
