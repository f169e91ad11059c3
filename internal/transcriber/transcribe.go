package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// Transcribe runs Whisper on the audio file and parses the resulting SRT
// into a timed transcript.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (note.Transcript, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, audioPath)

	// -osrt: SRT output
	// -l: force language to prevent hallucination
	// -bo 5: best-of 5 for accuracy
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return note.Transcript{}, &note.TranscriptionError{Path: audioPath, Err: err}
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return note.Transcript{}, &note.TranscriptionError{Path: audioPath, Err: fmt.Errorf("read srt: %w", err)}
	}
	defer os.Remove(srtPath)

	transcript := parseSRT(string(data))
	if len(transcript.Segments) == 0 {
		return note.Transcript{}, &note.TranscriptionError{Path: audioPath, Err: fmt.Errorf("empty transcript")}
	}

	t.logger.Info(ctx, "Transcription completed: %d segments", len(transcript.Segments))
	return transcript, nil
}
