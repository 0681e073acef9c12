package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the whole environment surface. Every policy constant the
// evaluators and handlers use is named here rather than embedded in logic.
type Config struct {
	Port  string `env:"PORT" envDefault:"8000"`
	Debug bool   `env:"DEBUG" envDefault:"false"`

	// Engine selects the default vision provider for analysis calls.
	Engine       string `env:"VISION_ENGINE" envDefault:"openai"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// AnalyzeTimeout bounds upload-mode evaluations; URLAnalyzeTimeout is
	// longer because a render step precedes the model call.
	AnalyzeTimeout    time.Duration `env:"ANALYZE_TIMEOUT" envDefault:"60s"`
	URLAnalyzeTimeout time.Duration `env:"URL_ANALYZE_TIMEOUT" envDefault:"120s"`

	// TieThreshold is the 0-100 score gap below which a comparison is a tie.
	TieThreshold float64 `env:"TIE_THRESHOLD" envDefault:"2"`

	CaptureNavTimeout time.Duration `env:"CAPTURE_NAV_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Engine {
	case "openai", "gpt":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for VISION_ENGINE=%s", cfg.Engine)
		}
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for VISION_ENGINE=gemini")
		}
	default:
		return nil, fmt.Errorf("unknown VISION_ENGINE %q; use 'openai' or 'gemini'", cfg.Engine)
	}

	return &cfg, nil
}
