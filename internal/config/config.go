package config

import (
	"os"
	"strings"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

type Config struct {
	Downloader  DownloaderConfig  `yaml:"downloader"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Unsplash    UnsplashConfig    `yaml:"unsplash"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Style       StyleConfig       `yaml:"style"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type DownloaderConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Format     string `yaml:"format"`
	Proxy      string `yaml:"proxy"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model       string   `yaml:"model"`
	Temperature float64  `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
	APIKeys     []string `yaml:"-"` // from GEMINI_API_KEYS, never from yaml
}

type UnsplashConfig struct {
	AccessKey string `yaml:"-"` // from UNSPLASH_ACCESS_KEY
	MaxImages int    `yaml:"max_images"`
}

type PipelineConfig struct {
	ChunkMaxChars    int `yaml:"chunk_max_chars"`
	MaxAttempts      int `yaml:"max_attempts"`
	DownloadAttempts int `yaml:"download_attempts"`
}

type StyleConfig struct {
	BodyMinChars  int      `yaml:"body_min_chars"`
	BodyMaxChars  int      `yaml:"body_max_chars"`
	TitleMaxChars int      `yaml:"title_max_chars"`
	TagsMin       int      `yaml:"tags_min"`
	TagsMax       int      `yaml:"tags_max"`
	ToneHints     []string `yaml:"tone_hints"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
	Watch  string `yaml:"watch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxInFlight int `yaml:"max_in_flight"`
}

// LoadCredentials overlays secrets from the environment. Keys never live
// in the yaml file.
func (c *Config) LoadCredentials() {
	if raw := os.Getenv("GEMINI_API_KEYS"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
			}
		}
	}
	c.Unsplash.AccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	if c.Downloader.Proxy == "" {
		c.Downloader.Proxy = os.Getenv("HTTPS_PROXY")
	}
}

// Rules builds the platform rules handed to the style transformer.
func (c *Config) Rules() note.PlatformRules {
	return note.PlatformRules{
		BodyMinChars:  c.Style.BodyMinChars,
		BodyMaxChars:  c.Style.BodyMaxChars,
		TitleMaxChars: c.Style.TitleMaxChars,
		TagsMin:       c.Style.TagsMin,
		TagsMax:       c.Style.TagsMax,
		ToneHints:     c.Style.ToneHints,
	}
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return &note.ConfigError{Field: "whisper.model_path", Reason: "is required"}
	}
	if c.Whisper.BinaryPath == "" {
		return &note.ConfigError{Field: "whisper.binary_path", Reason: "is required"}
	}
	if c.Paths.Output == "" {
		return &note.ConfigError{Field: "paths.output", Reason: "is required"}
	}
	if c.Pipeline.ChunkMaxChars < 0 {
		return &note.ConfigError{Field: "pipeline.chunk_max_chars", Reason: "must be positive"}
	}
	if c.Style.BodyMaxChars != 0 && c.Style.BodyMinChars > c.Style.BodyMaxChars {
		return &note.ConfigError{Field: "style.body_min_chars", Reason: "exceeds body_max_chars"}
	}
	if c.Style.TagsMax != 0 && c.Style.TagsMin > c.Style.TagsMax {
		return &note.ConfigError{Field: "style.tags_min", Reason: "exceeds tags_max"}
	}

	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.Format == "" {
		c.Downloader.Format = "bestaudio/best"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "zh"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.7
	}
	if c.Gemini.MaxTokens == 0 {
		c.Gemini.MaxTokens = 4000
	}
	if c.Unsplash.MaxImages == 0 {
		c.Unsplash.MaxImages = 3
	}
	if c.Pipeline.ChunkMaxChars == 0 {
		c.Pipeline.ChunkMaxChars = 2000
	}
	if c.Pipeline.MaxAttempts == 0 {
		c.Pipeline.MaxAttempts = 3
	}
	if c.Pipeline.DownloadAttempts == 0 {
		c.Pipeline.DownloadAttempts = 3
	}
	if c.Style.BodyMaxChars == 0 {
		c.Style.BodyMaxChars = 1000
	}
	if c.Style.BodyMinChars == 0 {
		c.Style.BodyMinChars = 100
	}
	if c.Style.TitleMaxChars == 0 {
		c.Style.TitleMaxChars = 20
	}
	if c.Style.TagsMin == 0 {
		c.Style.TagsMin = 3
	}
	if c.Style.TagsMax == 0 {
		c.Style.TagsMax = 8
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxInFlight == 0 {
		c.Performance.MaxInFlight = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
