package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/meetingassistant/meeting-assistant/internal/apperror"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// DefaultSupportedFormats mirrors the file types accepted by the Whisper API.
var DefaultSupportedFormats = []string{".mp3", ".wav", ".m4a", ".mp4", ".mpeg", ".mpga", ".webm", ".ogg", ".flac"}

type Config struct {
	Provider      string              `yaml:"provider"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summary       SummaryConfig       `yaml:"summary"`
	Server        ServerConfig        `yaml:"server"`
	Watch         WatchConfig         `yaml:"watch"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type OpenAIConfig struct {
	APIKey             string        `yaml:"api_key"`
	BaseURL            string        `yaml:"base_url"`
	TranscriptionModel string        `yaml:"transcription_model"`
	SummaryModel       string        `yaml:"summary_model"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type TranscriptionConfig struct {
	Language         string   `yaml:"language"`
	SupportedFormats []string `yaml:"supported_formats"`
}

type SummaryConfig struct {
	// PromptTemplate overrides the built-in template. Must contain {meeting_text}.
	PromptTemplate string `yaml:"prompt_template"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	BodyLimitMB int    `yaml:"body_limit_mb"`
	UploadDir   string `yaml:"upload_dir"`
}

type WatchConfig struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	Archived      string `yaml:"archived"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Addr returns the host:port the web UI binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsSupportedFormat reports whether ext (with leading dot, any case) is accepted.
func (t TranscriptionConfig) IsSupportedFormat(ext string) bool {
	ext = strings.ToLower(ext)
	for _, f := range t.SupportedFormats {
		if ext == f {
			return true
		}
	}
	return false
}

// Validate fills defaults and checks the settings needed before any API call.
func (c *Config) Validate() error {
	c.applyDefaults()

	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return apperror.New(apperror.KindConfiguration,
				"OpenAI API key not provided. Set OPENAI_API_KEY environment variable or openai.api_key")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return apperror.New(apperror.KindConfiguration,
				"Gemini API key not provided. Set GEMINI_API_KEY environment variable or gemini.api_key")
		}
	default:
		return apperror.Newf(apperror.KindConfiguration, "unknown provider %q (want %q or %q)",
			c.Provider, ProviderOpenAI, ProviderGemini)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperror.Newf(apperror.KindConfiguration, "server.port out of range: %d", c.Server.Port)
	}
	if len(c.Transcription.SupportedFormats) == 0 {
		return apperror.New(apperror.KindConfiguration, "transcription.supported_formats must not be empty")
	}

	return nil
}

func (c *Config) applyDefaults() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.OpenAI.SummaryModel == "" {
		c.OpenAI.SummaryModel = "gpt-3.5-turbo"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "ar"
	}
	if len(c.Transcription.SupportedFormats) == 0 {
		c.Transcription.SupportedFormats = append([]string(nil), DefaultSupportedFormats...)
	}
	c.Transcription.SupportedFormats = normalizeFormats(c.Transcription.SupportedFormats)
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 7860
	}
	if c.Server.BodyLimitMB == 0 {
		c.Server.BodyLimitMB = 25
	}
	if c.Watch.Input == "" {
		c.Watch.Input = "data/inbox"
	}
	if c.Watch.Output == "" {
		c.Watch.Output = "data/output"
	}
	if c.Watch.Archived == "" {
		c.Watch.Archived = "data/archived"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

func normalizeFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if !strings.HasPrefix(f, ".") {
			f = "." + f
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

func (c *Config) String() string {
	return fmt.Sprintf("provider=%s language=%s addr=%s formats=%v",
		c.Provider, c.Transcription.Language, c.Server.Addr(), c.Transcription.SupportedFormats)
}
