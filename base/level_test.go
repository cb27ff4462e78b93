package base

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevel_ZapLevel(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		zap   zapcore.Level
	}{
		{LevelTrace, "trace", zapcore.DebugLevel},
		{LevelDebug, "debug", zapcore.DebugLevel},
		{LevelInfo, "info", zapcore.InfoLevel},
		{LevelWarn, "warn", zapcore.WarnLevel},
		{LevelError, "error", zapcore.ErrorLevel},
	}

	if len(tests) != LevelCount {
		t.Fatalf("table covers %d levels, want %d", len(tests), LevelCount)
	}
	for _, tt := range tests {
		if tt.level.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.level.String(), tt.name)
		}
		if tt.level.ZapLevel() != tt.zap {
			t.Errorf("%s.ZapLevel() = %v, want %v", tt.name, tt.level.ZapLevel(), tt.zap)
		}
	}
}
