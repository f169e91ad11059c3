package rewriter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/notegen/internal/logger"
	"github.com/nguyentantai21042004/notegen/internal/note"
)

type geminiGenerator struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int

	model       string
	temperature float64
	maxTokens   int
	logger      logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API, rotating
// through the supplied keys when one hits its quota.
func NewGemini(apiKeys []string, model string, temperature float64, maxTokens int, log logger.Logger) (Generator, error) {
	if len(apiKeys) == 0 {
		return nil, &note.ConfigError{Field: "gemini.api_keys", Reason: "at least one key is required"}
	}
	return &geminiGenerator{
		apiKeys:     apiKeys,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      log,
	}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.key(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &note.GenerationError{
			Category: note.GenerationTransient,
			Err:      fmt.Errorf("create client: %w", err),
		}
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(g.temperature)),
		MaxOutputTokens: int32(g.maxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", g.classify(ctx, err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &note.GenerationError{
			Category: note.GenerationTransient,
			Err:      errors.New("empty response from Gemini"),
		}
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

// classify maps a Gemini error onto the retry taxonomy. Quota errors also
// rotate to the next API key so the retry lands on a fresh one.
func (g *geminiGenerator) classify(ctx context.Context, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		g.rotateKey(ctx)
		return &note.GenerationError{Category: note.GenerationTransient, Err: err}
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline"),
		strings.Contains(msg, "500"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "UNAVAILABLE"):
		return &note.GenerationError{Category: note.GenerationTransient, Err: err}
	default:
		return &note.GenerationError{Category: note.GenerationPermanent, Err: err}
	}
}

func (g *geminiGenerator) key() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey]
}

func (g *geminiGenerator) rotateKey(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.apiKeys) > 1 {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
		g.logger.Warn(ctx, "Gemini key rate limited, rotating to key %d", g.currentKey+1)
	}
}
