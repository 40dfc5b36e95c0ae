package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string `mapstructure:"env"`        // current application environment (local, dev, production etc)
	LogLevel  string `mapstructure:"log_level"`  // minimal level of log entries written to stderr
	InputPath string `mapstructure:"input_path"` // path to the UTF-8 text the quiz is built from
	Quiz      Quiz   `mapstructure:"quiz"`       // quiz generation section
}

// Quiz contains question generation and answer checking parameters.
type Quiz struct {
	Seed           int64   `mapstructure:"seed"`             // random seed, 0 picks a time-based one
	ClozeLimit     int     `mapstructure:"cloze_limit"`      // maximum fill-in-the-blank questions
	MCQLimit       int     `mapstructure:"mcq_limit"`        // maximum multiple choice questions
	TrueFalseLimit int     `mapstructure:"true_false_limit"` // maximum true/false questions
	MaxQuestions   int     `mapstructure:"max_questions"`    // maximum questions in the whole quiz
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold"`  // similarity for free-text answers, 1 means exact
}

// Validate checks that quiz parameters are in range.
func (q Quiz) Validate() error {
	if q.ClozeLimit < 0 || q.MCQLimit < 0 || q.TrueFalseLimit < 0 {
		return fmt.Errorf("%w: question limits must not be negative", ErrInvalidConfig)
	}
	if q.MaxQuestions < 1 || q.MaxQuestions > 25 {
		return fmt.Errorf("%w: max_questions must be between 1 and 25, got %d", ErrInvalidConfig, q.MaxQuestions)
	}
	if q.FuzzyThreshold <= 0 || q.FuzzyThreshold > 1 {
		return fmt.Errorf("%w: fuzzy_threshold must be in (0, 1], got %v", ErrInvalidConfig, q.FuzzyThreshold)
	}
	return nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values already present in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("log_level", "warn")
	v.SetDefault("input_path", "sample.txt")
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.cloze_limit", 10)
	v.SetDefault("quiz.mcq_limit", 7)
	v.SetDefault("quiz.true_false_limit", 8)
	v.SetDefault("quiz.max_questions", 25)
	v.SetDefault("quiz.fuzzy_threshold", 1.0)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // quiz.cloze_limit -> QUIZ_CLOZE_LIMIT
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("input_path", "QUIZ_INPUT_PATH")
	_ = v.BindEnv("quiz.seed", "QUIZ_SEED")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if strings.TrimSpace(cfg.InputPath) == "" {
		return nil, fmt.Errorf("%w: input_path is empty", ErrInvalidConfig)
	}
	if err := cfg.Quiz.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
