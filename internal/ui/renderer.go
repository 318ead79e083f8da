package ui

// Renderer is the display sink for the watch face. It holds the current
// text, draw rectangle and theme, and repaints the whole screen on Draw.
type Renderer struct {
	screen *Screen
	theme  *Theme

	text       string
	x, y, w, h int
}

// NewRenderer creates a renderer drawing to the given screen.
func NewRenderer(screen *Screen, theme *Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// SetText replaces the displayed clock text.
func (r *Renderer) SetText(text string) {
	r.text = text
}

// SetPosition moves the rendered text. Implements the motion sink.
func (r *Renderer) SetPosition(x, y, w, h int) {
	r.x, r.y, r.w, r.h = x, y, w, h
}

// Draw repaints the face: black background, block digits at the current
// position in the current theme color.
func (r *Renderer) Draw() {
	r.screen.Clear()
	r.screen.DrawGlyphs(r.x, r.y, r.text, r.theme.Style())
	r.screen.Show()
}
