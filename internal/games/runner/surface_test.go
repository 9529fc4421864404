package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

type blitCall struct {
	img      core.Image
	src, dst core.RectF
}

type textCall struct {
	text  string
	x, y  float64
	color core.Color
	align core.TextAlign
	font  string
}

// recordingSurface captures every drawing call in order.
type recordingSurface struct {
	blits  []blitCall
	texts  []textCall
	clears []core.RectF

	font  string
	color core.Color
	align core.TextAlign
}

func (s *recordingSurface) Blit(img core.Image, src, dst core.RectF) {
	s.blits = append(s.blits, blitCall{img: img, src: src, dst: dst})
}

func (s *recordingSurface) FillText(text string, x, y float64) {
	s.texts = append(s.texts, textCall{text: text, x: x, y: y, color: s.color, align: s.align, font: s.font})
}

func (s *recordingSurface) SetFont(font string)           { s.font = font }
func (s *recordingSurface) SetFillColor(c core.Color)     { s.color = c }
func (s *recordingSurface) SetTextAlign(a core.TextAlign) { s.align = a }

func (s *recordingSurface) Clear(r core.RectF) {
	s.clears = append(s.clears, r)
}

func (s *recordingSurface) calls() int {
	return len(s.blits) + len(s.texts) + len(s.clears)
}

func (s *recordingSurface) blitsOf(img core.Image) []blitCall {
	var out []blitCall
	for _, b := range s.blits {
		if b.img == img {
			out = append(out, b)
		}
	}
	return out
}

var _ core.Surface = (*recordingSurface)(nil)
