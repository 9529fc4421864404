package window

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

const defaultFontPx = 40

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 255, G: 255, B: 255, A: 255},
	core.ColorBlack:        {R: 0, G: 0, B: 0, A: 255},
	core.ColorRed:          {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:        {R: 13, G: 188, B: 121, A: 255},
	core.ColorYellow:       {R: 229, G: 229, B: 16, A: 255},
	core.ColorBlue:         {R: 36, G: 114, B: 200, A: 255},
	core.ColorMagenta:      {R: 188, G: 63, B: 188, A: 255},
	core.ColorCyan:         {R: 17, G: 168, B: 205, A: 255},
	core.ColorWhite:        {R: 255, G: 255, B: 255, A: 255},
	core.ColorBrightGreen:  {R: 35, G: 209, B: 139, A: 255},
	core.ColorBrightYellow: {R: 245, G: 245, B: 67, A: 255},
	core.ColorOrange:       {R: 255, G: 135, B: 0, A: 255},
	core.ColorGray:         {R: 138, G: 138, B: 138, A: 255},
}

// ImageSurface implements core.Surface on an ebiten image. World pixels map
// one to one onto the image.
type ImageSurface struct {
	canvas  *ebiten.Image
	sheets  map[core.Image]*ebiten.Image
	scratch *ebiten.Image // text is printed here, then scaled and tinted

	fontPx float64
	color  color.RGBA
	align  core.TextAlign
}

// NewImageSurface creates a surface drawing into canvas.
func NewImageSurface(canvas *ebiten.Image, sheets map[core.Image]*ebiten.Image) *ImageSurface {
	return &ImageSurface{
		canvas: canvas,
		sheets: sheets,
		fontPx: defaultFontPx,
		color:  palette[core.ColorWhite],
	}
}

// Blit draws the src region of a sprite sheet scaled into dst.
func (s *ImageSurface) Blit(img core.Image, src, dst core.RectF) {
	sheet, ok := s.sheets[img]
	if !ok || src.W <= 0 || src.H <= 0 {
		return
	}
	sub := sheet.SubImage(toRect(src)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	s.canvas.DrawImage(sub, op)
}

// FillText prints text with its baseline at y using the debug font scaled
// to the current font size.
func (s *ImageSurface) FillText(text string, x, y float64) {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return
	}
	if s.scratch == nil || s.scratch.Bounds().Dx() < n*glyphW {
		s.scratch = ebiten.NewImage(max(n, 32)*glyphW, glyphH)
	}
	area := s.scratch.SubImage(image.Rect(0, 0, n*glyphW, glyphH)).(*ebiten.Image)
	area.Clear()
	ebitenutil.DebugPrintAt(area, text, 0, 0)

	scale := s.fontPx / glyphH
	left, top := textOrigin(n, x, y, s.fontPx, s.align)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(s.color)
	s.canvas.DrawImage(area, op)
}

// SetFont takes a CSS-like font string; only the pixel size is honored.
func (s *ImageSurface) SetFont(font string) {
	if px, ok := parseFontPx(font); ok {
		s.fontPx = px
	}
}

// SetFillColor sets the text color.
func (s *ImageSurface) SetFillColor(c core.Color) {
	if rgba, ok := palette[c]; ok {
		s.color = rgba
	}
}

// SetTextAlign sets the horizontal text alignment.
func (s *ImageSurface) SetTextAlign(a core.TextAlign) {
	s.align = a
}

// Clear makes the pixels inside r transparent.
func (s *ImageSurface) Clear(r core.RectF) {
	rect := toRect(r).Intersect(s.canvas.Bounds())
	if rect.Empty() {
		return
	}
	s.canvas.SubImage(rect).(*ebiten.Image).Clear()
}

// textOrigin returns the top-left corner for n glyphs drawn at px pixels
// high with their baseline at y.
func textOrigin(n int, x, y, px float64, align core.TextAlign) (float64, float64) {
	width := float64(n*glyphW) * px / glyphH
	switch align {
	case core.AlignCenter:
		x -= width / 2
	case core.AlignRight:
		x -= width
	}
	return x, y - px*0.75
}

// parseFontPx extracts the pixel size from strings like "40px Helvetica".
func parseFontPx(font string) (float64, bool) {
	for _, field := range strings.Fields(font) {
		num, ok := strings.CutSuffix(field, "px")
		if !ok {
			continue
		}
		px, err := strconv.ParseFloat(num, 64)
		if err == nil && px > 0 {
			return px, true
		}
	}
	return 0, false
}

func toRect(r core.RectF) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

var _ core.Surface = (*ImageSurface)(nil)
