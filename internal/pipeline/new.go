package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/notegen/internal/config"
	"github.com/nguyentantai21042004/notegen/internal/downloader"
	"github.com/nguyentantai21042004/notegen/internal/images"
	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/internal/media"
	"github.com/nguyentantai21042004/notegen/internal/rewriter"
	"github.com/nguyentantai21042004/notegen/internal/storage"
	"github.com/nguyentantai21042004/notegen/internal/styler"
	"github.com/nguyentantai21042004/notegen/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	downloader  downloader.Downloader
	extractor   media.Extractor
	transcriber transcriber.Transcriber
	rewriter    rewriter.Rewriter
	styler      styler.Styler
	sourcer     images.Sourcer
	storage     storage.Storage
	logger      logger.Logger

	downloadPause time.Duration
}

// New wires the pipeline from its stage components.
func New(
	cfg *config.Config,
	dl downloader.Downloader,
	ex media.Extractor,
	tr transcriber.Transcriber,
	rw rewriter.Rewriter,
	st styler.Styler,
	src images.Sourcer,
	store storage.Storage,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:           cfg,
		downloader:    dl,
		extractor:     ex,
		transcriber:   tr,
		rewriter:      rw,
		styler:        st,
		sourcer:       src,
		storage:       store,
		logger:        log,
		downloadPause: 5 * time.Second,
	}
}
