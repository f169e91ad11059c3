package styler

import (
	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/internal/rewriter"
)

type implStyler struct {
	rewriter rewriter.Rewriter
	logger   logger.Logger
}

// New creates a Styler backed by the rewrite engine's single-call form.
func New(rw rewriter.Rewriter, log logger.Logger) Styler {
	return &implStyler{
		rewriter: rw,
		logger:   log,
	}
}
