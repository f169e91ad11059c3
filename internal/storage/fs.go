package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

func (s *implStorage) TempDir(jobKey string) (string, error) {
	dir := filepath.Join(s.tempDir, jobKey)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	return dir, nil
}

func (s *implStorage) SaveTranscript(ctx context.Context, key string, info note.MediaInfo, transcript string) (string, error) {
	content := fmt.Sprintf("# %s\n\n%s## 原始转录内容\n\n%s\n", info.Title, infoSection(info), transcript)
	return s.write(key+".md", content)
}

func (s *implStorage) SaveOrganized(ctx context.Context, key string, info note.MediaInfo, content string) (string, error) {
	md := fmt.Sprintf("# %s - 整理版\n\n%s## 内容整理\n\n%s\n", info.Title, infoSection(info), content)
	path, err := s.write(key+"_organized.md", md)
	if err != nil {
		return "", err
	}

	// Docx copy is best-effort; the markdown artifact is the contract.
	docxPath := filepath.Join(s.outputDir, key+"_organized.docx")
	if err := markdownToDocx(info.Title, content, docxPath); err != nil {
		s.logger.Warn(ctx, "Failed to write docx copy %s: %v", docxPath, err)
	}

	return path, nil
}

func (s *implStorage) SaveShortNote(ctx context.Context, key string, info note.MediaInfo, sn note.ShortNote) (string, error) {
	return s.write(key+"_xiaohongshu.md", shortNoteMarkdown(info, sn))
}

func (s *implStorage) Cleanup(ctx context.Context, jobKey string) {
	dir := filepath.Join(s.tempDir, jobKey)
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	}
}

func (s *implStorage) write(filename, content string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.outputDir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return path, nil
}
