package storage

import (
	"github.com/nguyentantai21042004/notegen/internal/logger"
)

type implStorage struct {
	outputDir string
	tempDir   string
	logger    logger.Logger
}

// New creates a Storage rooted at the configured output and temp dirs.
func New(outputDir, tempDir string, log logger.Logger) Storage {
	return &implStorage{
		outputDir: outputDir,
		tempDir:   tempDir,
		logger:    log,
	}
}
