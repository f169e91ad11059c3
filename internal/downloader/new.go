package downloader

import (
	"github.com/nguyentantai21042004/notegen/internal/config"
	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/pkg/executor"
)

type implDownloader struct {
	cfg      config.DownloaderConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by the yt-dlp binary.
func New(cfg config.DownloaderConfig, exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
