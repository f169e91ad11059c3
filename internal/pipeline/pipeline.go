package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/notegen/internal/chunker"
	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/internal/note"
	"github.com/nguyentantai21042004/notegen/internal/rewriter"
)

func (p *implPipeline) ProcessBatch(ctx context.Context, urls []string) []note.JobReport {
	reports := make([]note.JobReport, 0, len(urls))
	for i, url := range urls {
		if ctx.Err() != nil {
			p.logger.Warn(ctx, "batch interrupted, %d of %d jobs done", i, len(urls))
			break
		}
		p.logger.Info(ctx, "processing %d/%d: %s", i+1, len(urls), url)
		reports = append(reports, p.ProcessURL(ctx, url))
	}
	return reports
}

func (p *implPipeline) ProcessURL(ctx context.Context, url string) note.JobReport {
	job := note.NewJob(url)
	log := p.logger.WithField("job_id", job.ID)

	tempDir, err := p.storage.TempDir(job.Key)
	if err != nil {
		return p.fail(ctx, job, note.StageQueued, err)
	}
	defer p.storage.Cleanup(ctx, job.Key)

	log.Info(ctx, "stage %s: %s", note.StageDownloading, url)
	mediaPath, info, err := p.download(ctx, url, tempDir, log)
	if err != nil {
		return p.fail(ctx, job, note.StageDownloading, err)
	}

	log.Info(ctx, "stage %s: %s", note.StageExtractingAudio, mediaPath)
	audioPath, err := p.extractor.ExtractAudio(ctx, mediaPath)
	if err != nil {
		return p.fail(ctx, job, note.StageExtractingAudio, err)
	}

	log.Info(ctx, "stage %s: %s", note.StageTranscribing, audioPath)
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return p.fail(ctx, job, note.StageTranscribing, err)
	}
	text := transcript.Text()

	// Cancellation is honored between stages; an aborted job must never
	// persist degraded output as a success.
	if err := ctx.Err(); err != nil {
		return p.fail(ctx, job, note.StageReorganizing, err)
	}

	log.Info(ctx, "stage %s: %d chars", note.StageReorganizing, len([]rune(text)))
	organized := p.reorganize(ctx, text, log)

	log.Info(ctx, "stage %s", note.StageStyleOptimizing)
	sn := p.styler.ToShortNote(ctx, organized, p.cfg.Rules())

	log.Info(ctx, "stage %s", note.StageSourcingImages)
	sn.Images = p.sourcer.Fetch(ctx, sn.Title, sn.Tags, p.cfg.Unsplash.MaxImages)

	if err := ctx.Err(); err != nil {
		return p.fail(ctx, job, note.StagePersisting, err)
	}

	log.Info(ctx, "stage %s", note.StagePersisting)
	artifacts := make([]string, 0, 3)
	for _, save := range []func() (string, error){
		func() (string, error) { return p.storage.SaveTranscript(ctx, job.Key, info, text) },
		func() (string, error) { return p.storage.SaveOrganized(ctx, job.Key, info, organized) },
		func() (string, error) { return p.storage.SaveShortNote(ctx, job.Key, info, sn) },
	} {
		path, err := save()
		if err != nil {
			return p.fail(ctx, job, note.StagePersisting, err)
		}
		artifacts = append(artifacts, path)
	}

	log.Info(ctx, "stage %s: %v", note.StageDone, artifacts)
	return note.JobReport{
		Job:         job,
		Success:     true,
		Artifacts:   artifacts,
		CompletedAt: time.Now(),
	}
}

// download retries the full fetch a fixed number of times with a pause
// between attempts; transient network hiccups dominate this stage.
func (p *implPipeline) download(ctx context.Context, url, destDir string, log logger.Logger) (string, note.MediaInfo, error) {
	attempts := p.cfg.Pipeline.DownloadAttempts
	var lastErr error
	for i := 1; i <= attempts; i++ {
		path, info, err := p.downloader.Download(ctx, url, destDir)
		if err == nil {
			return path, info, nil
		}
		lastErr = err
		log.Warn(ctx, "download attempt %d/%d failed: %v", i, attempts, err)

		if i < attempts {
			select {
			case <-time.After(p.downloadPause):
			case <-ctx.Done():
				return "", note.MediaInfo{}, ctx.Err()
			}
		}
	}
	return "", note.MediaInfo{}, lastErr
}

// reorganize rewrites the transcript chunk by chunk and then smooths the
// stitched result. Both steps degrade instead of failing the job: the
// worst outcome is the raw transcript text.
func (p *implPipeline) reorganize(ctx context.Context, text string, log logger.Logger) string {
	chunks, err := chunker.Split(text, p.cfg.Pipeline.ChunkMaxChars)
	if err != nil {
		log.Warn(ctx, "chunking failed, keeping raw transcript: %v", err)
		return text
	}

	n, err := p.rewriter.Rewrite(ctx, chunks, rewriter.OrganizePrompt())
	if err != nil {
		log.Warn(ctx, "rewrite failed, keeping raw transcript: %v", err)
		return text
	}
	for _, r := range n.Results {
		if r.Failed {
			log.Warn(ctx, "chunk %d kept verbatim: %v", r.Index, r.Err)
		}
	}

	if len(chunks) > 1 {
		smoothed, err := p.rewriter.RewriteWhole(ctx, n.Text, rewriter.CoherencePrompt())
		if err != nil {
			log.Warn(ctx, "coherence pass skipped: %v", err)
			return n.Text
		}
		return smoothed
	}
	return n.Text
}

func (p *implPipeline) fail(ctx context.Context, job note.Job, stage note.Stage, err error) note.JobReport {
	p.logger.Error(ctx, "job %s failed at stage %s: %v", job.ID, stage, err)
	return note.JobReport{
		Job:         job,
		Success:     false,
		FailedStage: stage,
		Err:         err,
		CompletedAt: time.Now(),
	}
}
