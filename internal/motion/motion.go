package motion

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Default animation timings
const (
	DefaultTickInterval   = 50 * time.Millisecond
	DefaultIdleDelay      = 5 * time.Second
	DefaultSettleDuration = 2 * time.Second

	// Scaled steps below this speed multiplier are skipped entirely;
	// they would only produce sub-cell jitter.
	minSettleSpeed = 0.01
)

// Phase is the activity state of the controller.
type Phase int

const (
	// PhaseActive moves the sprite at full velocity every tick.
	PhaseActive Phase = iota
	// PhaseTransitioning decelerates the sprite over a fixed number of frames.
	PhaseTransitioning
	// PhaseStopped keeps the sprite at rest until a reactivation event.
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseStopped:
		return "stopped"
	}
	return "unknown"
}

// Clock supplies wall-clock time. The idle countdown is measured against it.
type Clock interface {
	Now() time.Time
}

// Handle identifies a pending scheduled callback. *time.Timer satisfies it.
type Handle interface {
	Stop() bool
}

// Scheduler arms single-shot callbacks. Cancel must be a no-op for nil
// handles and for handles that already fired.
type Scheduler interface {
	ScheduleOnce(d time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// Sink receives the draw rectangle after every position update.
type Sink interface {
	SetPosition(x, y, w, h int)
}

// Config describes the animation space and timings for a Controller.
type Config struct {
	BoundsW, BoundsH int // display size in cells
	SpriteW, SpriteH int // rendered text size in cells
	VelocityX        int // cells per tick
	VelocityY        int

	TickInterval   time.Duration
	IdleDelay      time.Duration
	SettleDuration time.Duration
}

func (c Config) withDefaults() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.IdleDelay <= 0 {
		c.IdleDelay = DefaultIdleDelay
	}
	if c.SettleDuration < c.TickInterval {
		c.SettleDuration = DefaultSettleDuration
	}
	return c
}

// Controller owns the sprite position, velocity and the
// active/transitioning/stopped state machine. It re-arms its own tick via
// the injected Scheduler, so at most one timer is ever pending. All methods
// must be called from a single goroutine.
type Controller struct {
	cfg   Config
	clock Clock
	sched Scheduler
	sink  Sink

	x, y             int
	dx, dy           int
	boundsW, boundsH int
	spriteW, spriteH int

	phase       Phase
	activatedAt time.Time
	frame       int
	totalFrames int

	pending Handle
	gen     uint64
}

// New creates a controller with the sprite centered in the bounds.
// Start must be called to begin animating.
func New(cfg Config, clock Clock, sched Scheduler, sink Sink) *Controller {
	cfg = cfg.withDefaults()

	c := &Controller{
		cfg:         cfg,
		clock:       clock,
		sched:       sched,
		sink:        sink,
		dx:          cfg.VelocityX,
		dy:          cfg.VelocityY,
		boundsW:     cfg.BoundsW,
		boundsH:     cfg.BoundsH,
		spriteW:     cfg.SpriteW,
		spriteH:     cfg.SpriteH,
		phase:       PhaseStopped,
		totalFrames: int(cfg.SettleDuration / cfg.TickInterval),
	}
	c.x = max(0, (c.boundsW-c.spriteW)/2)
	c.y = max(0, (c.boundsH-c.spriteH)/2)
	return c
}

// Start begins full-speed animation and arms the first tick.
func (c *Controller) Start() {
	c.activatedAt = c.clock.Now()
	c.phase = PhaseActive
	c.frame = 0
	c.publish()
	c.arm()
}

// Reactivate restarts the idle countdown and resumes full-speed motion from
// the current position. Position and velocity direction are untouched. Any
// pending tick is cancelled and a fresh one armed, regardless of phase.
func (c *Controller) Reactivate() {
	c.activatedAt = c.clock.Now()
	c.phase = PhaseActive
	c.frame = 0

	c.cancelPending()
	c.arm()
}

// Tick runs one animation frame. It is normally invoked by the Scheduler;
// tests may call it directly.
func (c *Controller) Tick() {
	c.pending = nil

	if c.phase == PhaseActive && c.clock.Now().Sub(c.activatedAt) >= c.cfg.IdleDelay {
		c.phase = PhaseTransitioning
		c.frame = 0
	}

	switch c.phase {
	case PhaseActive:
		c.applyScaledStep(1)
		c.publish()
		c.arm()

	case PhaseTransitioning:
		mult := SettleMultiplier(c.frame, c.totalFrames)
		if mult > minSettleSpeed {
			c.applyScaledStep(mult)
		}
		c.frame++
		c.publish()
		if c.frame >= c.totalFrames {
			c.phase = PhaseStopped
			return
		}
		c.arm()

	case PhaseStopped:
		// Dormant. Reactivate arms the next tick.
	}
}

// Stop cancels any pending tick and parks the controller. Used on shutdown.
func (c *Controller) Stop() {
	c.phase = PhaseStopped
	c.cancelPending()
}

// SetSpriteSize updates the sprite dimensions after the displayed text
// changed. The position is reclamped against the new size but never
// recentered, so a dormant sprite stays where it settled.
func (c *Controller) SetSpriteSize(w, h int) {
	c.spriteW = w
	c.spriteH = h
	c.reclamp()
	c.publish()
}

// SetBounds updates the display dimensions, reclamping the position the
// same way a sprite resize does.
func (c *Controller) SetBounds(w, h int) {
	c.boundsW = w
	c.boundsH = h
	c.reclamp()
	c.publish()
}

// Position returns the current top-left draw coordinate.
func (c *Controller) Position() (x, y int) {
	return c.x, c.y
}

// Velocity returns the current unscaled velocity.
func (c *Controller) Velocity() (dx, dy int) {
	return c.dx, c.dy
}

// Phase returns the current activity phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// TransitionFrame returns the number of settle frames completed so far.
func (c *Controller) TransitionFrame() int {
	return c.frame
}

// TotalFrames returns the length of the settle period in frames.
func (c *Controller) TotalFrames() int {
	return c.totalFrames
}

// SettleMultiplier is the speed factor applied during settle frame f of n:
// (1 - f/n)^2, quadratic ease-out. Fast initial slowdown, gradual rest.
func SettleMultiplier(frame, total int) float64 {
	return float64(ease.OutQuad(float32(frame), 1, -1, float32(total)))
}

// applyScaledStep advances the position by velocity scaled by mult,
// bouncing off edges, then restores the unscaled velocity magnitude. A
// bounce during the scaled step keeps its sign flip in the restored
// velocity. The step is skipped when both scaled components truncate to
// zero. Reports which axes bounced.
func (c *Controller) applyScaledStep(mult float64) (bouncedX, bouncedY bool) {
	sdx := int(float64(c.dx) * mult)
	sdy := int(float64(c.dy) * mult)
	if sdx == 0 && sdy == 0 {
		return false, false
	}

	origDx, origDy := c.dx, c.dy
	c.dx, c.dy = sdx, sdy
	c.advance()

	// advance negated the scaled component on bounce; a sign change
	// relative to the scaled input means the axis reflected.
	bouncedX = sdx*c.dx < 0
	bouncedY = sdy*c.dy < 0

	if bouncedX {
		c.dx = -origDx
	} else {
		c.dx = origDx
	}
	if bouncedY {
		c.dy = -origDy
	} else {
		c.dy = origDy
	}
	return bouncedX, bouncedY
}

// advance moves by the current velocity and reflects each axis
// independently at the edges, clamping to exact boundary contact.
func (c *Controller) advance() {
	c.x += c.dx
	c.y += c.dy

	if c.x <= 0 || c.x+c.spriteW >= c.boundsW {
		c.dx = -c.dx
		if c.x <= 0 {
			c.x = 0
		} else {
			c.x = max(0, c.boundsW-c.spriteW)
		}
	}

	if c.y <= 0 || c.y+c.spriteH >= c.boundsH {
		c.dy = -c.dy
		if c.y <= 0 {
			c.y = 0
		} else {
			c.y = max(0, c.boundsH-c.spriteH)
		}
	}
}

// reclamp pulls the position back inside the bounds without touching
// velocity. Oversized sprites clamp to the origin edge.
func (c *Controller) reclamp() {
	c.x = min(c.x, max(0, c.boundsW-c.spriteW))
	c.x = max(c.x, 0)
	c.y = min(c.y, max(0, c.boundsH-c.spriteH))
	c.y = max(c.y, 0)
}

func (c *Controller) publish() {
	if c.sink != nil {
		c.sink.SetPosition(c.x, c.y, c.spriteW, c.spriteH)
	}
}

// cancelPending drops the armed tick. Bumping the generation also
// invalidates a tick that already fired but has not run yet, so a
// reactivation can never leave two tick chains alive.
func (c *Controller) cancelPending() {
	c.gen++
	if c.pending != nil {
		c.sched.Cancel(c.pending)
		c.pending = nil
	}
}

func (c *Controller) arm() {
	gen := c.gen
	c.pending = c.sched.ScheduleOnce(c.cfg.TickInterval, func() {
		if gen == c.gen {
			c.Tick()
		}
	})
}
