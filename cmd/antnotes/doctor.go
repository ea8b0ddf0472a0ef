package main

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jwulff/antnotes/internal/config"
	"github.com/jwulff/antnotes/internal/microphone"
	"github.com/jwulff/antnotes/internal/output"
	"github.com/jwulff/antnotes/internal/store"
)

func newDoctorCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			f := output.NewFormatter(cmd.OutOrStdout())
			f.Header("antnotes prerequisites")
			if ok := runChecks(f, cfg); ok {
				f.Success("\nAll prerequisites met. Ready to record!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

func runChecks(f *output.Formatter, cfg *config.Config) bool {
	ok := true
	check := func(name string, pass bool, detail string) {
		f.SetupCheck(name, pass, detail)
		ok = ok && pass
	}

	if _, err := exec.LookPath(cfg.FFmpeg.BinaryPath); err != nil {
		check("ffmpeg", false, "not found. Install ffmpeg and put it on PATH")
	} else {
		check("ffmpeg", true, "installed")
	}

	switch cfg.Whisper.Engine {
	case config.EngineOpenAI:
		check("OpenAI API key", cfg.Whisper.APIKey != "", keyDetail(cfg.Whisper.APIKey, "OPENAI_API_KEY"))
	default:
		if _, err := exec.LookPath(cfg.Whisper.BinaryPath); err != nil {
			check("whisper.cpp", false, cfg.Whisper.BinaryPath+" not found")
		} else {
			check("whisper.cpp", true, "installed")
		}
		if _, err := os.Stat(cfg.Whisper.ModelPath); err != nil {
			check("Whisper model", false, "missing "+cfg.Whisper.ModelPath)
		} else {
			check("Whisper model", true, cfg.Whisper.ModelPath)
		}
	}

	if name, err := microphone.DefaultDeviceName(); err != nil {
		check("Input device", false, err.Error())
	} else {
		check("Input device", true, name)
	}

	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		check("Gemini API key", cfg.LLM.APIKey != "", keyDetail(cfg.LLM.APIKey, "GEMINI_API_KEY"))
	default:
		check("LLM endpoint", true, cfg.LLM.BaseURL)
	}

	if st, err := store.Open(cfg.RootDir); err != nil {
		check("Library folders", false, err.Error())
	} else {
		check("Library folders", true, st.Root())
	}

	return ok
}

func keyDetail(key, env string) string {
	if key != "" {
		return "configured"
	}
	return "not set. Set " + env + " or add it to the config file"
}
