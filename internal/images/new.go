package images

import (
	"github.com/nguyentantai21042004/notegen/internal/logger"
)

// topTagsForSearch bounds how many tags become search terms; full-body
// text would make queries too noisy.
const topTagsForSearch = 2

type implSourcer struct {
	searcher Searcher
	logger   logger.Logger
}

// New creates a Sourcer over the given image index.
func New(searcher Searcher, log logger.Logger) Sourcer {
	return &implSourcer{
		searcher: searcher,
		logger:   log,
	}
}
