package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meetingassistant/meeting-assistant/internal/apperror"
)

var envKeys = []string{
	"AI_PROVIDER", "OPENAI_API_KEY", "OPENAI_BASE_URL", "WHISPER_MODEL", "GPT_MODEL",
	"OPENAI_REQUEST_TIMEOUT", "GEMINI_API_KEY", "GEMINI_MODEL", "TRANSCRIPTION_LANGUAGE",
	"SUPPORTED_AUDIO_FORMATS", "LANGCHAIN_PROMPT_TEMPLATE", "SUMMARY_PROMPT_TEMPLATE",
	"SERVER_HOST", "SERVER_PORT", "UPLOAD_DIR", "WATCH_INPUT", "WATCH_OUTPUT",
	"WATCH_ARCHIVED", "WATCH_MAX_CONCURRENT", "LOG_LEVEL", "LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantKind apperror.Kind
	}{
		{
			name:     "valid openai config",
			config:   Config{OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantKind: apperror.KindNone,
		},
		{
			name:     "missing openai key",
			config:   Config{},
			wantKind: apperror.KindConfiguration,
		},
		{
			name:     "gemini without gemini key",
			config:   Config{Provider: "gemini", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantKind: apperror.KindConfiguration,
		},
		{
			name:     "valid gemini config",
			config:   Config{Provider: "Gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantKind: apperror.KindNone,
		},
		{
			name:     "unknown provider",
			config:   Config{Provider: "azure", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantKind: apperror.KindConfiguration,
		},
		{
			name:     "port out of range",
			config:   Config{OpenAI: OpenAIConfig{APIKey: "sk-test"}, Server: ServerConfig{Port: 70000}},
			wantKind: apperror.KindConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if got := apperror.KindOf(err); got != tt.wantKind {
				t.Errorf("Validate() kind = %v, want %v (err = %v)", got, tt.wantKind, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{OpenAI: OpenAIConfig{APIKey: "sk-test"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderOpenAI)
	}
	if cfg.OpenAI.TranscriptionModel != "whisper-1" {
		t.Errorf("TranscriptionModel = %q", cfg.OpenAI.TranscriptionModel)
	}
	if cfg.OpenAI.SummaryModel != "gpt-3.5-turbo" {
		t.Errorf("SummaryModel = %q", cfg.OpenAI.SummaryModel)
	}
	if cfg.Transcription.Language != "ar" {
		t.Errorf("Language = %q", cfg.Transcription.Language)
	}
	if cfg.Server.Addr() != "127.0.0.1:7860" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if !cfg.Transcription.IsSupportedFormat(".MP3") {
		t.Error("IsSupportedFormat should be case-insensitive")
	}
	if cfg.Transcription.IsSupportedFormat(".txt") {
		t.Error(".txt should not be supported")
	}
}

func TestNormalizeFormats(t *testing.T) {
	got := normalizeFormats([]string{"MP3", ".wav", " .Wav ", "", "ogg"})
	want := []string{".mp3", ".wav", ".ogg"}

	if len(got) != len(want) {
		t.Fatalf("normalizeFormats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("normalizeFormats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	tmpfile := filepath.Join(t.TempDir(), "config.yaml")
	content := `
provider: openai

openai:
  api_key: "sk-from-file"
  summary_model: "gpt-4o-mini"
  request_timeout: 90s

transcription:
  language: "en"
  supported_formats: [".mp3", "WAV"]

server:
  host: "0.0.0.0"
  port: 8080

logging:
  level: "debug"
`
	if err := os.WriteFile(tmpfile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-from-file" {
		t.Errorf("APIKey = %v, want %v", cfg.OpenAI.APIKey, "sk-from-file")
	}
	if cfg.OpenAI.SummaryModel != "gpt-4o-mini" {
		t.Errorf("SummaryModel = %v", cfg.OpenAI.SummaryModel)
	}
	if cfg.OpenAI.RequestTimeout != 90*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.OpenAI.RequestTimeout)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %v", cfg.Server.Addr())
	}
	if !cfg.Transcription.IsSupportedFormat(".wav") {
		t.Error("wav should be supported after normalization")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("GPT_MODEL", "gpt-4o")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SUPPORTED_AUDIO_FORMATS", ".mp3, .m4a")
	t.Setenv("SUMMARY_PROMPT_TEMPLATE", "Summarize: {meeting_text}")

	tmpfile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tmpfile, []byte("openai:\n  api_key: sk-from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("APIKey = %q, want env value", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.SummaryModel != "gpt-4o" {
		t.Errorf("SummaryModel = %q", cfg.OpenAI.SummaryModel)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Transcription.IsSupportedFormat(".wav") || !cfg.Transcription.IsSupportedFormat(".m4a") {
		t.Errorf("SupportedFormats = %v", cfg.Transcription.SupportedFormats)
	}
	if cfg.Summary.PromptTemplate != "Summarize: {meeting_text}" {
		t.Errorf("PromptTemplate = %q", cfg.Summary.PromptTemplate)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env-only")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-env-only" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
}

func TestLoadMissingCredential(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	if !apperror.Is(err, apperror.KindConfiguration) {
		t.Errorf("Load() error = %v, want configuration error", err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
