package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mjurik/bounceclock/internal/audio"
	"github.com/mjurik/bounceclock/internal/clockface"
	"github.com/mjurik/bounceclock/internal/config"
	"github.com/mjurik/bounceclock/internal/motion"
	"github.com/mjurik/bounceclock/internal/sched"
	"github.com/mjurik/bounceclock/internal/ui"
)

// App wires the clock, the motion controller and the terminal together and
// owns the single event loop everything runs on.
type App struct {
	cfg        *config.Config
	clock      motion.Clock
	screen     *ui.Screen
	theme      *ui.Theme
	renderer   *ui.Renderer
	controller *motion.Controller
	timers     *sched.Timers

	// Previous tick state, for bounce and settle detection
	prevDX, prevDY int
	prevPhase      motion.Phase

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:   cfg,
		clock: sched.SystemClock{},
		quit:  make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, builds the controller, and runs the event loop.
func (a *App) Run() error {
	// Initialize audio (ignore errors - the face works without sound)
	if a.cfg.Sound {
		_ = audio.Init()
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.screen.EnableFocus()

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	a.theme = ui.NewTheme(a.cfg.Mono)
	a.renderer = ui.NewRenderer(a.screen, a.theme)
	a.timers = sched.NewTimers()

	text := clockface.TimeText(a.clock.Now(), a.cfg.TwentyFourHour)
	a.renderer.SetText(text)

	w, h := a.screen.Size()
	spriteW, spriteH := ui.Measure(text)
	a.controller = motion.New(motion.Config{
		BoundsW: w, BoundsH: h,
		SpriteW: spriteW, SpriteH: spriteH,
		VelocityX:      a.cfg.SpeedX,
		VelocityY:      a.cfg.SpeedY,
		TickInterval:   a.cfg.TickInterval(),
		IdleDelay:      a.cfg.IdleDelay(),
		SettleDuration: a.cfg.SettleDuration(),
	}, a.clock, a.timers, a.renderer)
	a.prevDX, a.prevDY = a.controller.Velocity()
	a.prevPhase = motion.PhaseActive

	a.controller.Start()
	a.renderer.Draw()

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// mainLoop handles all input, timer and clock events serially.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	// Once-per-minute clock text refresh, aligned to the minute boundary
	minute := time.NewTimer(clockface.NextMinute(a.clock.Now()))
	defer minute.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case fn := <-a.timers.C():
			fn()
			a.afterTick()

		case <-minute.C:
			a.onMinute()
			minute.Reset(clockface.NextMinute(a.clock.Now()))
		}
	}
}

// handleEvent processes keyboard, resize and focus events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ui.KeyAction(ev.Key(), ev.Rune()) {
		case ui.ActionQuit:
			return true
		case ui.ActionTap:
			a.reactivate()
		}

	case *tcell.EventResize:
		w, h := a.screen.Size()
		a.controller.SetBounds(w, h)
		a.screen.Clear()
		a.renderer.Draw()

	case *tcell.EventFocus:
		if ev.Focused {
			a.reactivate()
		}
	}

	return false
}

// reactivate wakes the face: full speed, full brightness, fresh idle
// countdown.
func (a *App) reactivate() {
	a.controller.Reactivate()
	a.theme.Reset()
	a.prevPhase = motion.PhaseActive
	a.renderer.Draw()
}

// afterTick runs once per animation frame, after the controller moved.
// Bounces are detected by comparing velocity signs across ticks.
func (a *App) afterTick() {
	dx, dy := a.controller.Velocity()
	if dx*a.prevDX < 0 || dy*a.prevDY < 0 {
		a.theme.NextColor()
		audio.PlayBounce()
	}
	a.prevDX, a.prevDY = dx, dy

	phase := a.controller.Phase()
	if phase == motion.PhaseTransitioning {
		if a.prevPhase == motion.PhaseActive {
			a.theme.StartFade(a.cfg.SettleDuration().Seconds())
		}
		a.theme.Update(a.cfg.TickInterval().Seconds())
	}
	a.prevPhase = phase

	a.renderer.Draw()
}

// onMinute refreshes the displayed time and the sprite bounds it occupies.
func (a *App) onMinute() {
	now := a.clock.Now()
	text := clockface.TimeText(now, a.cfg.TwentyFourHour)
	a.renderer.SetText(text)

	w, h := ui.Measure(text)
	a.controller.SetSpriteSize(w, h)

	if clockface.IsHourTop(now) {
		audio.PlayChime()
	}
	a.renderer.Draw()
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.controller != nil {
		a.controller.Stop()
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
