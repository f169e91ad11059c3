package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/notegen/internal/batch"
	"github.com/nguyentantai21042004/notegen/internal/config"
	"github.com/nguyentantai21042004/notegen/internal/downloader"
	"github.com/nguyentantai21042004/notegen/internal/images"
	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/internal/media"
	"github.com/nguyentantai21042004/notegen/internal/note"
	"github.com/nguyentantai21042004/notegen/internal/pipeline"
	"github.com/nguyentantai21042004/notegen/internal/rewriter"
	"github.com/nguyentantai21042004/notegen/internal/storage"
	"github.com/nguyentantai21042004/notegen/internal/styler"
	"github.com/nguyentantai21042004/notegen/internal/transcriber"
	"github.com/nguyentantai21042004/notegen/internal/watcher"
	"github.com/nguyentantai21042004/notegen/pkg/executor"
	"github.com/nguyentantai21042004/notegen/pkg/retry"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml configuration")
	urlArg := flag.String("url", "", "single video URL to process")
	fileArg := flag.String("file", "", "path to a .txt/.md file of video URLs")
	watchMode := flag.Bool("watch", false, "watch the configured drop directory for URL lists")
	flag.Parse()

	ctx := context.Background()

	// Secrets come from the environment; .env is a local convenience.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "video note generator starting")
	log.Info(ctx, "output: %s, model: %s", cfg.Paths.Output, cfg.Gemini.Model)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "failed to create directories: %v", err)
		os.Exit(1)
	}

	p, err := buildPipeline(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to build pipeline: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "shutdown signal received")
		cancel()
	}()

	switch {
	case *urlArg != "":
		report := p.ProcessURL(ctx, *urlArg)
		printReports(ctx, log, []note.JobReport{report})
		exitPerReports([]note.JobReport{report})

	case *fileArg != "":
		urls, err := batch.FromFile(*fileArg)
		if err != nil {
			log.Error(ctx, "failed to read URL file: %v", err)
			os.Exit(1)
		}
		reports := p.ProcessBatch(ctx, urls)
		printReports(ctx, log, reports)
		exitPerReports(reports)

	case *watchMode:
		if err := runWatch(ctx, cfg, p, log); err != nil && err != context.Canceled {
			log.Error(ctx, "watcher error: %v", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: notegen -url <video-url> | -file <urls.txt> | -watch")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	exec := executor.New()

	gen, err := rewriter.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, cfg.Gemini.Temperature, cfg.Gemini.MaxTokens, log)
	if err != nil {
		return nil, err
	}

	policy := retry.Default()
	policy.MaxAttempts = cfg.Pipeline.MaxAttempts
	rw := rewriter.New(gen, policy, cfg.Performance.MaxInFlight, log)

	var searcher images.Searcher
	if cfg.Unsplash.AccessKey != "" {
		searcher = images.NewUnsplash(cfg.Unsplash.AccessKey)
	}

	return pipeline.New(
		cfg,
		downloader.New(cfg.Downloader, exec, log),
		media.New(exec, log),
		transcriber.New(cfg.Whisper, exec, log),
		rw,
		styler.New(rw, log),
		images.New(searcher, log),
		storage.New(cfg.Paths.Output, cfg.Paths.Temp, log),
		log,
	), nil
}

func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) error {
	if cfg.Paths.Watch == "" {
		return &note.ConfigError{Field: "paths.watch", Reason: "is required for watch mode"}
	}

	handler := func(ctx context.Context, filePath string) error {
		urls, err := batch.FromFile(filePath)
		if err != nil {
			return err
		}
		printReports(ctx, log, p.ProcessBatch(ctx, urls))
		return nil
	}

	w, err := watcher.New(cfg.Paths.Watch, handler, log, 1)
	if err != nil {
		return err
	}
	defer w.Stop()

	return w.Start(ctx)
}

func printReports(ctx context.Context, log logger.Logger, reports []note.JobReport) {
	ok := 0
	for _, r := range reports {
		if r.Success {
			ok++
			log.Info(ctx, "done %s -> %v", r.Job.URL, r.Artifacts)
		} else {
			log.Error(ctx, "failed %s at %s: %v", r.Job.URL, r.FailedStage, r.Err)
		}
	}
	log.Info(ctx, "batch finished: %d/%d succeeded", ok, len(reports))
}

func exitPerReports(reports []note.JobReport) {
	for _, r := range reports {
		if !r.Success {
			os.Exit(1)
		}
	}
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Paths.Output, cfg.Paths.Temp}
	if cfg.Paths.Watch != "" {
		dirs = append(dirs, cfg.Paths.Watch)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
