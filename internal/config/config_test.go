package config

import (
	"testing"
	"time"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.TwentyFourHour {
		t.Error("expected 24-hour format by default")
	}
	if cfg.SpeedX != DefaultSpeedX || cfg.SpeedY != DefaultSpeedY {
		t.Errorf("expected default speed %dx%d, got %dx%d",
			DefaultSpeedX, DefaultSpeedY, cfg.SpeedX, cfg.SpeedY)
	}
	if cfg.IntervalMS != DefaultInterval {
		t.Errorf("expected interval %d, got %d", DefaultInterval, cfg.IntervalMS)
	}
	if cfg.IdleSec != DefaultIdle {
		t.Errorf("expected idle %d, got %d", DefaultIdle, cfg.IdleSec)
	}
	if cfg.SettleMS != DefaultSettle {
		t.Errorf("expected settle %d, got %d", DefaultSettle, cfg.SettleMS)
	}
	if cfg.Sound {
		t.Error("expected sound off by default")
	}
	if cfg.Mono {
		t.Error("expected color cycling by default")
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--format", "12", "--speed-x", "3", "--speed-y", "2",
		"--interval", "40", "--idle", "10", "--settle", "1000", "--sound", "--mono"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TwentyFourHour {
		t.Error("expected 12-hour format")
	}
	if cfg.SpeedX != 3 || cfg.SpeedY != 2 {
		t.Errorf("expected speed 3x2, got %dx%d", cfg.SpeedX, cfg.SpeedY)
	}
	if cfg.IntervalMS != 40 {
		t.Errorf("expected interval 40, got %d", cfg.IntervalMS)
	}
	if cfg.IdleSec != 10 {
		t.Errorf("expected idle 10, got %d", cfg.IdleSec)
	}
	if cfg.SettleMS != 1000 {
		t.Errorf("expected settle 1000, got %d", cfg.SettleMS)
	}
	if !cfg.Sound {
		t.Error("expected sound enabled")
	}
	if !cfg.Mono {
		t.Error("expected mono enabled")
	}
}

func TestParseArgs_InvalidFormat(t *testing.T) {
	if _, err := ParseArgs([]string{"--format", "13"}); err == nil {
		t.Error("expected error for format 13")
	}
}

func TestParseArgs_InvalidSpeed(t *testing.T) {
	if _, err := ParseArgs([]string{"--speed-x", "0"}); err == nil {
		t.Error("expected error for zero horizontal speed")
	}
	if _, err := ParseArgs([]string{"--speed-y", "-1"}); err == nil {
		t.Error("expected error for negative vertical speed")
	}
}

func TestParseArgs_InvalidInterval(t *testing.T) {
	if _, err := ParseArgs([]string{"--interval", "5"}); err == nil {
		t.Error("expected error for interval below 10 ms")
	}
	if _, err := ParseArgs([]string{"--interval", "2000"}); err == nil {
		t.Error("expected error for interval above 1000 ms")
	}
}

func TestParseArgs_InvalidIdle(t *testing.T) {
	if _, err := ParseArgs([]string{"--idle", "0"}); err == nil {
		t.Error("expected error for zero idle")
	}
}

func TestParseArgs_SettleShorterThanInterval(t *testing.T) {
	if _, err := ParseArgs([]string{"--interval", "100", "--settle", "50"}); err == nil {
		t.Error("expected error when settle is shorter than one tick")
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := &Config{IntervalMS: 50, IdleSec: 5, SettleMS: 2000}

	if d := cfg.TickInterval(); d != 50*time.Millisecond {
		t.Errorf("expected 50ms tick, got %v", d)
	}
	if d := cfg.IdleDelay(); d != 5*time.Second {
		t.Errorf("expected 5s idle, got %v", d)
	}
	if d := cfg.SettleDuration(); d != 2*time.Second {
		t.Errorf("expected 2s settle, got %v", d)
	}
}
