package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Block font for the watch digits, 5 rows tall. Only the characters the
// clock text can contain have glyphs; anything else renders as a blank.
const (
	GlyphHeight = 5
	glyphGap    = 1
)

var glyphs = map[rune][GlyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

var blankGlyph = [GlyphHeight]string{"   ", "   ", "   ", "   ", "   "}

func glyphFor(r rune) [GlyphHeight]string {
	if g, ok := glyphs[r]; ok {
		return g
	}
	return blankGlyph
}

func glyphWidth(g [GlyphHeight]string) int {
	w := 0
	for _, row := range g {
		if rw := runewidth.StringWidth(row); rw > w {
			w = rw
		}
	}
	return w
}

// Measure returns the bounding box of text in the block font. This is the
// sprite size the motion controller collides with.
func Measure(text string) (w, h int) {
	if text == "" {
		return 0, 0
	}
	for i, r := range []rune(text) {
		if i > 0 {
			w += glyphGap
		}
		w += glyphWidth(glyphFor(r))
	}
	return w, GlyphHeight
}

// DrawGlyphs renders text in the block font with its top-left at (x, y).
// Blank cells are left untouched so the background shows through.
func (s *Screen) DrawGlyphs(x, y int, text string, style tcell.Style) {
	cx := x
	for i, r := range []rune(text) {
		if i > 0 {
			cx += glyphGap
		}
		g := glyphFor(r)
		for row, line := range g {
			col := 0
			for _, cell := range line {
				if cell != ' ' {
					s.SetCell(cx+col, y+row, style, cell)
				}
				col += runewidth.RuneWidth(cell)
			}
		}
		cx += glyphWidth(g)
	}
}
