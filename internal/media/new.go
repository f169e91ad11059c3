package media

import (
	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Extractor backed by ffmpeg.
func New(exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		executor: exec,
		logger:   log,
	}
}
