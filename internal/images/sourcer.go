package images

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

func (s *implSourcer) Fetch(ctx context.Context, title string, tags []string, maxImages int) []note.ImageRef {
	if maxImages <= 0 || s.searcher == nil {
		return nil
	}

	terms := searchTerms(title, tags)
	seen := make(map[string]bool)
	var images []note.ImageRef

	for _, term := range terms {
		if len(images) >= maxImages {
			break
		}

		refs, err := s.searcher.Search(ctx, term, maxImages)
		if err != nil {
			// Degraded-but-valid: log and move on to the next term.
			s.logger.Warn(ctx, "Image search for %q failed: %v", term, err)
			continue
		}

		for _, ref := range refs {
			if seen[ref.ID] {
				continue
			}
			seen[ref.ID] = true
			images = append(images, ref)
			if len(images) >= maxImages {
				break
			}
		}
	}

	return images
}

// searchTerms derives queries from the title and top tags only.
func searchTerms(title string, tags []string) []string {
	var terms []string
	if t := strings.TrimSpace(title); t != "" {
		terms = append(terms, t)
	}
	for i, tag := range tags {
		if i >= topTagsForSearch {
			break
		}
		if tag = strings.TrimSpace(tag); tag != "" {
			terms = append(terms, tag)
		}
	}
	return terms
}
