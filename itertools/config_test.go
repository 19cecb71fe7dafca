package itertools

import (
	"testing"

	"github.com/kbukum/iterkit/errors"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.TeeBlockSize != DefaultTeeBlockSize {
		t.Errorf("got %d, want %d", cfg.TeeBlockSize, DefaultTeeBlockSize)
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { _ = Configure(Config{}) })

	if err := Configure(Config{TeeBlockSize: 4}); err != nil {
		t.Fatal(err)
	}
	if got := NewTee(ints(1)).arena.size; got != 4 {
		t.Errorf("got block size %d, want 4", got)
	}
	if got := NewTee(ints(1), WithBlockSize(9)).arena.size; got != 9 {
		t.Errorf("option should override config, got %d", got)
	}
	if got := NewTee(ints(1), WithBlockSize(0)).arena.size; got != 4 {
		t.Errorf("invalid option should be ignored, got %d", got)
	}

	err := Configure(Config{TeeBlockSize: -1})
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
	if got := NewTee(ints(1)).arena.size; got != 4 {
		t.Errorf("rejected config must not change defaults, got %d", got)
	}
}
