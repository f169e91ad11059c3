package note

import (
	"time"

	"github.com/google/uuid"
)

// Stage is one phase of the pipeline state machine.
type Stage string

const (
	StageQueued          Stage = "queued"
	StageDownloading     Stage = "downloading"
	StageExtractingAudio Stage = "extracting_audio"
	StageTranscribing    Stage = "transcribing"
	StageReorganizing    Stage = "reorganizing"
	StageStyleOptimizing Stage = "style_optimizing"
	StageSourcingImages  Stage = "sourcing_images"
	StagePersisting      Stage = "persisting"
	StageDone            Stage = "done"
	StageFailed          Stage = "failed"
)

// KeyFormat is the timestamp layout for artifact names. All three files
// of one job share the same key.
const KeyFormat = "20060102_150405"

// NewJob creates a job for the given URL with a fresh ID and artifact key.
// The key carries the ID's first segment so jobs started within the same
// second never collide on temp dirs or artifact names.
func NewJob(url string) Job {
	now := time.Now()
	id := uuid.New().String()
	return Job{
		ID:        id,
		URL:       url,
		Key:       now.Format(KeyFormat) + "_" + id[:8],
		CreatedAt: now,
	}
}
