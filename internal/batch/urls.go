package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	reMarkdownLink = regexp.MustCompile(`\[[^\]]*\]\((https?://[^\s\)]+)\)`)
	reBareURL      = regexp.MustCompile(`https?://[^\s\)]+`)
)

// Resolve turns a CLI argument into the list of URLs to process: a URL
// is passed through, a file path is parsed per its extension.
func Resolve(arg string) ([]string, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return []string{arg}, nil
	}
	return FromFile(arg)
}

// FromFile extracts URLs from a .txt (one per line) or .md (markdown
// links first, then bare URLs) file, deduplicated in first-seen order.
func FromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read url file: %w", err)
	}

	var urls []string
	if strings.ToLower(filepath.Ext(path)) == ".md" {
		urls = fromMarkdown(string(data))
	} else {
		urls = fromLines(string(data))
	}

	urls = dedupe(urls)
	if len(urls) == 0 {
		return nil, fmt.Errorf("no valid URLs found in %s", path)
	}
	return urls, nil
}

func fromLines(content string) []string {
	var urls []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			urls = append(urls, line)
		}
	}
	return urls
}

func fromMarkdown(content string) []string {
	var urls []string

	// Markdown-link URLs first, then bare ones not already captured.
	for _, m := range reMarkdownLink.FindAllStringSubmatch(content, -1) {
		urls = append(urls, m[1])
		content = strings.ReplaceAll(content, m[1], "")
	}
	urls = append(urls, reBareURL.FindAllString(content, -1)...)

	return urls
}

func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	var out []string
	for _, u := range urls {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}
