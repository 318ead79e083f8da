package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// Degrees of hue advanced per bounce. Chosen so consecutive colors
	// stay visibly apart and the cycle takes a long time to repeat.
	hueStep = 47.0

	hueSaturation = 0.85
	dimBrightness = 0.35
)

// Theme drives the DVD-logo color scheme: the hue advances on every bounce
// and the text fades out while the sprite settles.
type Theme struct {
	mono       bool
	hueIndex   int
	brightness float64
	fade       *gween.Tween
}

// NewTheme creates a theme at full brightness. Mono themes ignore the hue
// and render white-on-black like the original watch face.
func NewTheme(mono bool) *Theme {
	return &Theme{mono: mono, brightness: 1}
}

// NextColor advances the palette one step. Called once per bounce.
func (t *Theme) NextColor() {
	t.hueIndex++
}

// StartFade begins dimming toward the settled brightness over the given
// number of seconds.
func (t *Theme) StartFade(seconds float64) {
	t.fade = gween.New(float32(t.brightness), dimBrightness, float32(seconds), ease.OutQuad)
}

// Update advances an in-progress fade by dt seconds.
func (t *Theme) Update(dt float64) {
	if t.fade == nil {
		return
	}
	v, done := t.fade.Update(float32(dt))
	t.brightness = float64(v)
	if done {
		t.fade = nil
	}
}

// Reset restores full brightness and cancels any fade. Called on
// reactivation.
func (t *Theme) Reset() {
	t.fade = nil
	t.brightness = 1
}

// Brightness returns the current brightness in [dimBrightness, 1].
func (t *Theme) Brightness() float64 {
	return t.brightness
}

// Style returns the text style for the current color state.
func (t *Theme) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Color()).Bold(true)
}

// Color returns the current sprite color.
func (t *Theme) Color() tcell.Color {
	if t.mono {
		v := int32(math.Round(255 * t.brightness))
		return tcell.NewRGBColor(v, v, v)
	}
	hue := math.Mod(float64(t.hueIndex)*hueStep, 360)
	r, g, b := colorful.Hsv(hue, hueSaturation, t.brightness).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
