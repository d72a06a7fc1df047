package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ontrack/internal/adapter/cli"
	"ontrack/internal/adapter/seed"
	"ontrack/internal/app/service"
	"ontrack/internal/config"
	"ontrack/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translationFolder := cfg.TranslationFolder
	if _, err := os.Stat(translationFolder); err != nil {
		logger.Debug("translation folder not found, using embedded messages", zap.String("folder", translationFolder))
		translationFolder = ""
	}
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: cfg.SupportedLanguages,
	})

	dataset, err := loadDataset(cfg)
	if err != nil {
		logger.Fatal("failed to load seed data", zap.String("file", cfg.SeedFile), zap.Error(err))
	}

	svc := service.NewOnTrackService()
	if err := dataset.Apply(svc); err != nil {
		logger.Fatal("failed to apply seed data", zap.Error(err))
	}

	handler := cli.NewHandler(svc, os.Stdout, cfg.Language)
	if err := cli.NewRootCmd(handler, os.Stdin).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// Keep stdout for the CLI output.
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

func loadDataset(cfg *config.Config) (*seed.Dataset, error) {
	if cfg.SeedFile == "" {
		return seed.Default()
	}
	return seed.Load(cfg.SeedFile)
}
