package downloader

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

// ytdlpInfo is the subset of yt-dlp's -J output we keep.
type ytdlpInfo struct {
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
}

func (d *implDownloader) Download(ctx context.Context, url, destDir string) (string, note.MediaInfo, error) {
	platform := detectPlatform(url)
	if platform == "" {
		return "", note.MediaInfo{}, &note.DownloadError{
			URL: url,
			Err: fmt.Errorf("unsupported video platform"),
		}
	}

	d.logger.Info(ctx, "Fetching metadata: %s", url)
	info, err := d.fetchInfo(ctx, url)
	if err != nil {
		return "", note.MediaInfo{}, &note.DownloadError{URL: url, Err: err}
	}
	info.Platform = platform
	info.URL = url

	d.logger.Info(ctx, "Downloading media: %s (%s)", info.Title, platform)
	outTemplate := filepath.Join(destDir, "source.%(ext)s")
	args := []string{
		"-f", d.cfg.Format,
		"-o", outTemplate,
		"--no-warnings",
		"--no-playlist",
		// print the final path so we don't have to guess the extension
		"--print", "after_move:filepath",
		"--no-simulate",
	}
	if d.cfg.Proxy != "" {
		args = append(args, "--proxy", d.cfg.Proxy)
	}
	args = append(args, url)

	out, err := d.executor.Execute(ctx, d.cfg.BinaryPath, args...)
	if err != nil {
		return "", note.MediaInfo{}, &note.DownloadError{URL: url, Err: err}
	}

	mediaPath := strings.TrimSpace(out)
	if i := strings.IndexByte(mediaPath, '\n'); i >= 0 {
		mediaPath = strings.TrimSpace(mediaPath[:i])
	}
	if mediaPath == "" {
		return "", note.MediaInfo{}, &note.DownloadError{
			URL: url,
			Err: fmt.Errorf("yt-dlp reported no output file"),
		}
	}

	d.logger.Info(ctx, "Downloaded: %s", mediaPath)
	return mediaPath, info, nil
}

func (d *implDownloader) fetchInfo(ctx context.Context, url string) (note.MediaInfo, error) {
	args := []string{"-J", "--no-download", "--no-warnings", "--no-playlist"}
	if d.cfg.Proxy != "" {
		args = append(args, "--proxy", d.cfg.Proxy)
	}
	args = append(args, url)

	out, err := d.executor.Execute(ctx, d.cfg.BinaryPath, args...)
	if err != nil {
		return note.MediaInfo{}, fmt.Errorf("fetch video info: %w", err)
	}

	var parsed ytdlpInfo
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return note.MediaInfo{}, fmt.Errorf("parse video info: %w", err)
	}

	return note.MediaInfo{
		Title:    parsed.Title,
		Uploader: parsed.Uploader,
		Duration: time.Duration(parsed.Duration * float64(time.Second)),
	}, nil
}

func detectPlatform(url string) string {
	switch {
	case strings.Contains(url, "youtube.com"), strings.Contains(url, "youtu.be"):
		return "youtube"
	case strings.Contains(url, "douyin.com"):
		return "douyin"
	case strings.Contains(url, "bilibili.com"):
		return "bilibili"
	}
	return ""
}
