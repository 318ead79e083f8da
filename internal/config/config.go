package config

import (
	"flag"
	"fmt"
	"time"
)

// Default values for configuration
const (
	DefaultFormat   = 24
	DefaultSpeedX   = 2
	DefaultSpeedY   = 1
	DefaultInterval = 50   // ms per animation tick
	DefaultIdle     = 5    // seconds of motion before settling
	DefaultSettle   = 2000 // ms to decelerate to rest
)

// Config holds the application configuration
type Config struct {
	TwentyFourHour bool
	SpeedX         int
	SpeedY         int
	IntervalMS     int
	IdleSec        int
	SettleMS       int
	Sound          bool
	Mono           bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("bounceclock", flag.ContinueOnError)

	format := fs.Int("format", DefaultFormat, "clock format: 12 or 24")
	speedX := fs.Int("speed-x", DefaultSpeedX, "horizontal cells per tick")
	speedY := fs.Int("speed-y", DefaultSpeedY, "vertical cells per tick")
	interval := fs.Int("interval", DefaultInterval, "animation tick in milliseconds")
	idle := fs.Int("idle", DefaultIdle, "seconds of motion before settling")
	settle := fs.Int("settle", DefaultSettle, "settle duration in milliseconds")
	sound := fs.Bool("sound", false, "bounce blips and an hourly chime")
	mono := fs.Bool("mono", false, "white on black, no color cycling")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *format != 12 && *format != 24 {
		return nil, fmt.Errorf("format must be 12 or 24, got %d", *format)
	}
	if *speedX < 1 || *speedY < 1 {
		return nil, fmt.Errorf("speed must be at least 1 cell per tick, got %dx%d", *speedX, *speedY)
	}
	if *interval < 10 || *interval > 1000 {
		return nil, fmt.Errorf("interval must be between 10 and 1000 ms, got %d", *interval)
	}
	if *idle < 1 {
		return nil, fmt.Errorf("idle must be at least 1 second, got %d", *idle)
	}
	if *settle < *interval {
		return nil, fmt.Errorf("settle (%d ms) must be at least one tick interval (%d ms)", *settle, *interval)
	}

	cfg := &Config{
		TwentyFourHour: *format == 24,
		SpeedX:         *speedX,
		SpeedY:         *speedY,
		IntervalMS:     *interval,
		IdleSec:        *idle,
		SettleMS:       *settle,
		Sound:          *sound,
		Mono:           *mono,
	}

	return cfg, nil
}

// TickInterval returns the animation tick as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// IdleDelay returns the active period before settling as a duration.
func (c *Config) IdleDelay() time.Duration {
	return time.Duration(c.IdleSec) * time.Second
}

// SettleDuration returns the deceleration period as a duration.
func (c *Config) SettleDuration() time.Duration {
	return time.Duration(c.SettleMS) * time.Millisecond
}
