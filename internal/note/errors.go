package note

import (
	"errors"
	"fmt"
)

// DownloadError indicates the media downloader could not produce a local
// file. Fatal for the job; the orchestrator retries the stage before
// giving up.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// MediaError indicates audio extraction failed. Fatal for the job.
type MediaError struct {
	Path string
	Err  error
}

func (e *MediaError) Error() string {
	return fmt.Sprintf("extract audio from %s: %v", e.Path, e.Err)
}

func (e *MediaError) Unwrap() error { return e.Err }

// TranscriptionError indicates the speech-to-text engine was unreachable,
// the audio was unreadable, or the output was empty. Fatal for the job.
type TranscriptionError struct {
	Path string
	Err  error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe %s: %v", e.Path, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// GenerationCategory classifies generative-service failures.
type GenerationCategory string

const (
	// GenerationTransient covers rate limits, timeouts and malformed
	// responses. Retried with backoff before falling back.
	GenerationTransient GenerationCategory = "transient"
	// GenerationPermanent covers invalid requests and safety blocks.
	// Never retried; goes straight to the fallback path.
	GenerationPermanent GenerationCategory = "permanent"
)

// GenerationError wraps a failed generation request with its retry category.
type GenerationError struct {
	Category GenerationCategory
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation (%s): %v", e.Category, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsTransientGeneration reports whether err should be retried.
func IsTransientGeneration(err error) bool {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Category == GenerationTransient
	}
	return false
}

// ImageServiceError indicates the image index was unreachable. The job
// always degrades to an empty image list instead of failing.
type ImageServiceError struct {
	Term string
	Err  error
}

func (e *ImageServiceError) Error() string {
	return fmt.Sprintf("image search %q: %v", e.Term, e.Err)
}

func (e *ImageServiceError) Unwrap() error { return e.Err }

// ConfigError indicates invalid configuration. Fatal at startup; no job
// runs with a broken config.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}
