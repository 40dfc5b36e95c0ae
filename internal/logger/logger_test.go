package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/intelligent-quiz/internal/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       config.Config
		wantLevel zapcore.Level
	}{
		{name: "development default level", cfg: config.Config{Env: "local"}, wantLevel: zapcore.DebugLevel},
		{name: "production default level", cfg: config.Config{Env: "production"}, wantLevel: zapcore.InfoLevel},
		{name: "explicit level", cfg: config.Config{Env: "local", LogLevel: "warn"}, wantLevel: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(&config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}
