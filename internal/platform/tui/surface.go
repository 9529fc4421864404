package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// ScreenSurface implements core.Surface on a character Screen, scaling the
// world rectangle onto the whole screen.
type ScreenSurface struct {
	screen *core.Screen
	sheets map[core.Image]Sheet
	worldW float64
	worldH float64

	color core.Color
	align core.TextAlign
}

// NewScreenSurface creates a surface mapping a worldW x worldH world onto screen.
func NewScreenSurface(screen *core.Screen, worldW, worldH float64, sheets map[core.Image]Sheet) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		sheets: sheets,
		worldW: worldW,
		worldH: worldH,
		color:  core.ColorWhite,
	}
}

// scale returns cells per world pixel on each axis.
func (s *ScreenSurface) scale() (float64, float64) {
	return float64(s.screen.Width()) / s.worldW, float64(s.screen.Height()) / s.worldH
}

// cellRect returns the cells whose centers fall inside the world rectangle r.
func (s *ScreenSurface) cellRect(r core.RectF) core.Rect {
	sx, sy := s.scale()
	x0 := int(math.Ceil(r.X*sx - 0.5))
	y0 := int(math.Ceil(r.Y*sy - 0.5))
	x1 := int(math.Ceil(r.Right()*sx - 0.5))
	y1 := int(math.Ceil(r.Bottom()*sy - 0.5))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Blit samples the src region of the image's sheet at each destination cell center.
func (s *ScreenSurface) Blit(img core.Image, src, dst core.RectF) {
	sheet, ok := s.sheets[img]
	if !ok || dst.W <= 0 || dst.H <= 0 {
		return
	}
	sx, sy := s.scale()
	cells := s.cellRect(dst)

	x0, x1 := max(cells.X, 0), min(cells.Right(), s.screen.Width())
	y0, y1 := max(cells.Y, 0), min(cells.Bottom(), s.screen.Height())
	for cy := y0; cy < y1; cy++ {
		wy := (float64(cy) + 0.5) / sy
		v := src.Y + (wy-dst.Y)*src.H/dst.H
		for cx := x0; cx < x1; cx++ {
			wx := (float64(cx) + 0.5) / sx
			u := src.X + (wx-dst.X)*src.W/dst.W
			if r, c, ok := sheet.At(u, v); ok {
				s.screen.Set(cx, cy, r, c)
			}
		}
	}
}

// FillText writes text with its baseline row at world y. The font is ignored;
// cells have one size.
func (s *ScreenSurface) FillText(text string, x, y float64) {
	sx, sy := s.scale()
	col := int(math.Round(x * sx))
	row := int(math.Floor(y * sy))

	n := utf8.RuneCountInString(text)
	switch s.align {
	case core.AlignCenter:
		col -= n / 2
	case core.AlignRight:
		col -= n
	}
	s.screen.DrawText(col, row, text, s.color)
}

// SetFont is a no-op on a character screen.
func (s *ScreenSurface) SetFont(string) {}

// SetFillColor sets the color used by FillText.
func (s *ScreenSurface) SetFillColor(c core.Color) {
	s.color = c
}

// SetTextAlign sets the alignment used by FillText.
func (s *ScreenSurface) SetTextAlign(a core.TextAlign) {
	s.align = a
}

// Clear blanks the cells covering r.
func (s *ScreenSurface) Clear(r core.RectF) {
	s.screen.ClearRect(s.cellRect(r))
}

var _ core.Surface = (*ScreenSurface)(nil)
