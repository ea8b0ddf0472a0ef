package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jwulff/antnotes/internal/app"
	"github.com/jwulff/antnotes/internal/audio"
	"github.com/jwulff/antnotes/internal/config"
	"github.com/jwulff/antnotes/internal/executor"
	"github.com/jwulff/antnotes/internal/export"
	"github.com/jwulff/antnotes/internal/llm"
	"github.com/jwulff/antnotes/internal/logger"
	"github.com/jwulff/antnotes/internal/microphone"
	"github.com/jwulff/antnotes/internal/notes"
	"github.com/jwulff/antnotes/internal/opener"
	"github.com/jwulff/antnotes/internal/store"
	"github.com/jwulff/antnotes/internal/transcribe"
	"github.com/jwulff/antnotes/internal/version"
	"github.com/jwulff/antnotes/internal/watcher"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "antnotes",
		Short:        "Record lectures, transcribe them and turn them into study notes",
		Long:         "A.N.T AI NOTE TAKER records the microphone, transcribes recordings with Whisper, summarizes transcripts into notes with a local LLM and answers questions about them.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runUI(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath+")")
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(newDoctorCmd(&configPath))

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runUI(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.New(cfg.Logging.Level, cfg.Logging.File)

	st, err := store.Open(cfg.RootDir)
	if err != nil {
		return err
	}

	exec := executor.New()
	chat := newChatClient(cfg)

	deps := app.Deps{
		Store: st,
		Recorder: audio.NewRecorder(microphone.NewSource(), audio.Format{
			SampleRate:      cfg.Audio.SampleRate,
			Channels:        cfg.Audio.Channels,
			FramesPerBuffer: cfg.Audio.FramesPerBuffer,
		}),
		Encoder:     audio.NewEncoder(st, exec, log, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.Bitrate),
		Transcriber: transcribe.NewService(newEngine(cfg, exec, log), st, log),
		Notes:       notes.NewSummarizer(chat, cfg.LLM.SummaryModel, st, log),
		Asker:       notes.NewAsker(chat, cfg.LLM.QuestionModel, log),
		Exporter:    export.New(st, log),
		Opener:      opener.New(exec),
		Logger:      log,
		Theme:       cfg.UI.Theme,
	}

	w, err := watcher.New(st, watcher.DefaultDebounce, log)
	if err != nil {
		log.Warn(ctx, "Folder watching disabled: %v", err)
	} else {
		defer w.Close()
		go w.Run(ctx)
		deps.Changes = w.Changes()
	}

	log.Info(ctx, "Starting antnotes %s in %s", version.Version, st.Root())
	if _, err := tea.NewProgram(app.New(ctx, deps), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func newEngine(cfg *config.Config, exec executor.Executor, log logger.Logger) transcribe.Engine {
	if cfg.Whisper.Engine == config.EngineOpenAI {
		return transcribe.NewOpenAI(cfg.Whisper.APIKey, "")
	}
	return transcribe.NewWhisperCPP(transcribe.WhisperCPPConfig{
		BinaryPath: cfg.Whisper.BinaryPath,
		ModelPath:  cfg.Whisper.ModelPath,
		FFmpegPath: cfg.FFmpeg.BinaryPath,
		Language:   cfg.Whisper.Language,
		Threads:    cfg.Whisper.Threads,
	}, exec, log)
}

func newChatClient(cfg *config.Config) llm.Client {
	if cfg.LLM.Provider == config.ProviderGemini {
		return llm.NewGemini(cfg.LLM.APIKey)
	}
	return llm.NewOpenAI(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}
