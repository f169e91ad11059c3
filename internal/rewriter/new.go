package rewriter

import (
	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/pkg/retry"
)

type implRewriter struct {
	gen         Generator
	policy      retry.Policy
	maxInFlight int
	logger      logger.Logger
}

// New creates a Rewriter that dispatches at most maxInFlight concurrent
// requests against gen, retrying each per the given policy.
func New(gen Generator, policy retry.Policy, maxInFlight int, log logger.Logger) Rewriter {
	if maxInFlight <= 0 {
		maxInFlight = 2
	}
	return &implRewriter{
		gen:         gen,
		policy:      policy,
		maxInFlight: maxInFlight,
		logger:      log,
	}
}
