package note

import (
	"strings"
	"time"
)

// Segment is one timed line of a transcript.
type Segment struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Transcript is the ordered, immutable output of the transcriber.
type Transcript struct {
	Segments []Segment
}

// Text joins all segment texts into the flat transcript body.
func (t Transcript) Text() string {
	parts := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, "\n")
}

// Chunk is a contiguous slice of transcript text bounded by the chunker.
// Concatenating all chunks in index order reproduces the source text.
type Chunk struct {
	Index int
	Text  string
}

// WholeDocument marks a RewriteResult that covers the full text
// rather than a single chunk.
const WholeDocument = -1

// RewriteResult is the outcome of one generation request.
type RewriteResult struct {
	Index  int
	Text   string
	Failed bool
	Err    error
}

// Note is the long-form reorganized document assembled from
// RewriteResults in chunk-index order.
type Note struct {
	Text    string
	Results []RewriteResult
}

// ImageRef is one entry returned by the image index.
type ImageRef struct {
	ID        string
	URL       string
	Relevance float64
}

// ShortNote is the final platform-styled micro-article.
type ShortNote struct {
	Title  string
	Body   string
	Tags   []string
	Images []ImageRef
}

// PlatformRules bounds the short-note output.
type PlatformRules struct {
	BodyMinChars  int
	BodyMaxChars  int
	TitleMaxChars int
	TagsMin       int
	TagsMax       int
	ToneHints     []string
}

// MediaInfo describes the downloaded source video.
type MediaInfo struct {
	Title    string
	Uploader string
	Duration time.Duration
	Platform string
	URL      string
}

// Job is one unit of work per input URL.
type Job struct {
	ID        string
	URL       string
	Key       string // timestamp key shared by all artifacts of this job
	CreatedAt time.Time
}

// JobReport is the per-job outcome line of a batch run.
type JobReport struct {
	Job         Job
	Success     bool
	FailedStage Stage
	Err         error
	Artifacts   []string
	CompletedAt time.Time
}
