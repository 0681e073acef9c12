package main

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"design-evaluator/api/internal/capture"
	"design-evaluator/api/internal/config"
	"design-evaluator/api/internal/evaluate"
	"design-evaluator/api/internal/handle"
	"design-evaluator/api/internal/httpserver"
	"design-evaluator/api/internal/vision"
	"design-evaluator/api/internal/vision/gemini"
	"design-evaluator/api/internal/vision/openai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	engines := &vision.Engines{
		OpenAI:  openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Gemini:  gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		Default: cfg.Engine,
	}
	engine, err := engines.GetEngine("")
	if err != nil {
		logger.Fatal("engine selection", zap.Error(err))
	}

	ev := evaluate.New(evaluate.Options{
		Engine:        engine,
		Log:           logger,
		MaxImageBytes: cfg.MaxUploadBytes,
		TieThreshold:  cfg.TieThreshold,
	})

	captCfg := capture.DefaultConfig()
	captCfg.NavTimeout = cfg.CaptureNavTimeout
	capt := capture.New(captCfg, logger)

	h := handle.New(ev, capt, cfg, logger)

	addr := ":" + cfg.Port
	logger.Info("design-evaluator listening",
		zap.String("addr", addr),
		zap.String("engine", engine.Name()),
		zap.String("model", engine.GetModel()))
	if err := httpserver.Run(addr, h.Router(), logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
