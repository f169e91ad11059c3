package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

const unsplashSearchURL = "https://api.unsplash.com/search/photos"

type unsplashSearcher struct {
	accessKey string
	client    *http.Client
}

// NewUnsplash creates a Searcher over the Unsplash photo search API.
func NewUnsplash(accessKey string) Searcher {
	return &unsplashSearcher{
		accessKey: accessKey,
		client:    &http.Client{Timeout: 12 * time.Second},
	}
}

type unsplashResponse struct {
	Results []struct {
		ID   string `json:"id"`
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

func (u *unsplashSearcher) Search(ctx context.Context, term string, limit int) ([]note.ImageRef, error) {
	if u.accessKey == "" {
		return nil, &note.ImageServiceError{Term: term, Err: fmt.Errorf("unsplash access key not configured")}
	}

	q := url.Values{}
	q.Set("query", term)
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, unsplashSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &note.ImageServiceError{Term: term, Err: err}
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, &note.ImageServiceError{Term: term, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &note.ImageServiceError{
			Term: term,
			Err:  fmt.Errorf("unsplash returned %d: %s", resp.StatusCode, string(body)),
		}
	}

	var parsed unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &note.ImageServiceError{Term: term, Err: fmt.Errorf("decode response: %w", err)}
	}

	// Relevance order is whatever the index returned.
	refs := make([]note.ImageRef, 0, len(parsed.Results))
	for i, r := range parsed.Results {
		refs = append(refs, note.ImageRef{
			ID:        r.ID,
			URL:       r.URLs.Regular,
			Relevance: 1 - float64(i)/float64(len(parsed.Results)),
		})
	}
	return refs, nil
}
