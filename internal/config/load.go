package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path (skipped when path is empty), overlays
// environment variables and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with any environment variable that is set.
func (c *Config) applyEnv() {
	c.Provider = getEnv("AI_PROVIDER", c.Provider)

	c.OpenAI.APIKey = getEnv("OPENAI_API_KEY", c.OpenAI.APIKey)
	c.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", c.OpenAI.BaseURL)
	c.OpenAI.TranscriptionModel = getEnv("WHISPER_MODEL", c.OpenAI.TranscriptionModel)
	c.OpenAI.SummaryModel = getEnv("GPT_MODEL", c.OpenAI.SummaryModel)
	c.OpenAI.RequestTimeout = getEnvDuration("OPENAI_REQUEST_TIMEOUT", c.OpenAI.RequestTimeout)

	c.Gemini.APIKey = getEnv("GEMINI_API_KEY", c.Gemini.APIKey)
	c.Gemini.Model = getEnv("GEMINI_MODEL", c.Gemini.Model)

	c.Transcription.Language = getEnv("TRANSCRIPTION_LANGUAGE", c.Transcription.Language)
	c.Transcription.SupportedFormats = getEnvList("SUPPORTED_AUDIO_FORMATS", c.Transcription.SupportedFormats)

	c.Summary.PromptTemplate = getEnv("LANGCHAIN_PROMPT_TEMPLATE", c.Summary.PromptTemplate)
	c.Summary.PromptTemplate = getEnv("SUMMARY_PROMPT_TEMPLATE", c.Summary.PromptTemplate)

	c.Server.Host = getEnv("SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnvInt("SERVER_PORT", c.Server.Port)
	c.Server.UploadDir = getEnv("UPLOAD_DIR", c.Server.UploadDir)

	c.Watch.Input = getEnv("WATCH_INPUT", c.Watch.Input)
	c.Watch.Output = getEnv("WATCH_OUTPUT", c.Watch.Output)
	c.Watch.Archived = getEnv("WATCH_ARCHIVED", c.Watch.Archived)
	c.Watch.MaxConcurrent = getEnvInt("WATCH_MAX_CONCURRENT", c.Watch.MaxConcurrent)

	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				result = append(result, t)
			}
		}
		return result
	}
	return def
}
