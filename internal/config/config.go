// Package config loads antnotes settings from an optional YAML file,
// a .env file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when no
// explicit path is given.
const DefaultPath = "antnotes.yaml"

const (
	EngineWhisperCPP = "whisper-cpp"
	EngineOpenAI     = "openai"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	RootDir string        `yaml:"root_dir"`
	Audio   AudioConfig   `yaml:"audio"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Whisper WhisperConfig `yaml:"whisper"`
	LLM     LLMConfig     `yaml:"llm"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

type AudioConfig struct {
	SampleRate      int `yaml:"sample_rate"`
	Channels        int `yaml:"channels"`
	FramesPerBuffer int `yaml:"frames_per_buffer"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Bitrate    string `yaml:"bitrate"`
}

type WhisperConfig struct {
	Engine     string `yaml:"engine"`
	Model      string `yaml:"model"`
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	APIKey     string `yaml:"api_key"`
}

type LLMConfig struct {
	Provider      string `yaml:"provider"`
	BaseURL       string `yaml:"base_url"`
	APIKey        string `yaml:"api_key"`
	SummaryModel  string `yaml:"summary_model"`
	QuestionModel string `yaml:"question_model"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type UIConfig struct {
	Theme string `yaml:"theme"`
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path falls back to DefaultPath, which may
// be absent.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// built-in defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ANTNOTES_ROOT_DIR"); v != "" {
		cfg.RootDir = v
	}
	if v := os.Getenv("ANTNOTES_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("ANTNOTES_LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("ANTNOTES_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && cfg.Whisper.APIKey == "" {
		cfg.Whisper.APIKey = v
	}
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case ProviderGemini:
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		case ProviderOpenAI:
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
}

// Validate rejects unknown enum values and fills defaults.
func (c *Config) Validate() error {
	c.Whisper.Engine = strings.ToLower(c.Whisper.Engine)
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	c.UI.Theme = strings.ToLower(c.UI.Theme)

	switch c.Whisper.Engine {
	case "":
		c.Whisper.Engine = EngineWhisperCPP
	case EngineWhisperCPP, EngineOpenAI:
	default:
		return fmt.Errorf("whisper.engine %q is not supported", c.Whisper.Engine)
	}

	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = ProviderOpenAI
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}

	switch c.UI.Theme {
	case "":
		c.UI.Theme = ThemeLight
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("ui.theme %q is not supported", c.UI.Theme)
	}

	if c.Audio.Channels < 0 || c.Audio.SampleRate < 0 || c.Audio.FramesPerBuffer < 0 {
		return fmt.Errorf("audio settings must not be negative")
	}

	if c.RootDir == "" {
		c.RootDir = "."
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Audio.FramesPerBuffer == 0 {
		c.Audio.FramesPerBuffer = 1024
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.Bitrate == "" {
		c.FFmpeg.Bitrate = "128k"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "turbo"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/" + whisperModelFile(c.Whisper.Model)
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.LLM.BaseURL == "" && c.LLM.Provider == ProviderOpenAI {
		c.LLM.BaseURL = "http://localhost:11434/v1"
	}
	if c.LLM.APIKey == "" && c.LLM.Provider == ProviderOpenAI {
		// Ollama ignores the key but the client requires one.
		c.LLM.APIKey = "ollama"
	}
	if c.LLM.SummaryModel == "" {
		c.LLM.SummaryModel = "ALIENTELLIGENCE/contentsummarizer"
	}
	if c.LLM.QuestionModel == "" {
		c.LLM.QuestionModel = "llama3.2"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = "antnotes.log"
	}

	return nil
}

// whisperModelFile maps a model size selector to the whisper.cpp ggml file.
func whisperModelFile(model string) string {
	switch model {
	case "turbo":
		return "ggml-large-v3-turbo.bin"
	case "large":
		return "ggml-large-v3.bin"
	default:
		return "ggml-" + model + ".bin"
	}
}
