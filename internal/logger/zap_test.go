package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"bogus":    zapcore.DebugLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestNewZapLogger_FileSinkEnabled(t *testing.T) {
	path := t.TempDir() + "/neopixel.log"
	l := newZapLogger(Options{Level: InfoLevel, File: path})
	if l.SugaredLogger == nil {
		t.Fatalf("expected sugared logger")
	}
	if !l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be enabled")
	}
	if l.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled at info level")
	}
	l.Infow("test_line", "k", "v")
	_ = l.Sync()
}

func TestOrDefault(t *testing.T) {
	if orDefault(0, 7) != 7 || orDefault(-1, 7) != 7 || orDefault(3, 7) != 3 {
		t.Fatalf("orDefault misbehaves")
	}
}

func TestNop(t *testing.T) {
	Nop().Infow("discarded")
}
