package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/analyzer"
	"github.com/aliskhannn/intelligent-quiz/internal/config"
	"github.com/aliskhannn/intelligent-quiz/internal/delivery/console"
	"github.com/aliskhannn/intelligent-quiz/internal/logger"
	"github.com/aliskhannn/intelligent-quiz/internal/repository"
	"github.com/aliskhannn/intelligent-quiz/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quiz: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// An explicit path argument overrides the configured input.
	if len(os.Args) > 1 {
		cfg.InputPath = os.Args[1]
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	textRepo := repository.NewTextRepository(cfg.InputPath)
	text, err := textRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load input text",
			zap.String("path", textRepo.Path()),
			zap.Error(err),
		)
		return err
	}

	builder := service.NewQuizBuilder(
		analyzer.New(log),
		service.GeneratorLimits{
			Cloze:        cfg.Quiz.ClozeLimit,
			MCQ:          cfg.Quiz.MCQLimit,
			TrueFalse:    cfg.Quiz.TrueFalseLimit,
			MaxQuestions: cfg.Quiz.MaxQuestions,
		},
		cfg.Quiz.Seed,
		log,
	)

	questions, err := builder.Build(ctx, text)
	if err != nil {
		return fmt.Errorf("build quiz: %w", err)
	}

	runner := service.NewQuizRunner(
		console.NewHandler(os.Stdin, os.Stdout, log),
		service.NewAnswerValidator(cfg.Quiz.FuzzyThreshold),
		log,
	)

	if _, err := runner.Run(ctx, questions); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("run quiz: %w", err)
	}

	return nil
}
