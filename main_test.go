package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantErr   string
		wantLevel slog.Level
		wantJSON  bool
	}{
		{name: "defaults", level: "info", format: "text", wantLevel: slog.LevelInfo},
		{name: "debug json", level: "debug", format: "json", wantLevel: slog.LevelDebug, wantJSON: true},
		{name: "case insensitive", level: "WARN", format: "JSON", wantLevel: slog.LevelWarn, wantJSON: true},
		{name: "error level", level: "error", format: "text", wantLevel: slog.LevelError},
		{name: "unknown level", level: "verbose", format: "text", wantErr: "invalid log level"},
		{name: "unknown format", level: "info", format: "yaml", wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.level, tt.format)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.wantLevel))
			assert.False(t, logger.Enabled(ctx, tt.wantLevel-1))

			logger.Log(ctx, tt.wantLevel, "hello")
			assert.Equal(t, tt.wantJSON, strings.HasPrefix(buf.String(), "{"))
		})
	}
}
