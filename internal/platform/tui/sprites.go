package tui

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Sheet paints one image as glyphs. At returns the glyph for the source
// pixel (u, v) of the image; ok=false means the pixel is transparent.
type Sheet interface {
	At(u, v float64) (r rune, c core.Color, ok bool)
}

// SheetFunc adapts a function to the Sheet interface.
type SheetFunc func(u, v float64) (rune, core.Color, bool)

// At implements Sheet.
func (f SheetFunc) At(u, v float64) (rune, core.Color, bool) {
	return f(u, v)
}

// DefaultSheets returns the built-in glyph sheets for the configured sprite sizes.
func DefaultSheets(playerW, playerH, enemyW, enemyH, tileW, tileH float64) map[core.Image]Sheet {
	return map[core.Image]Sheet{
		core.ImageBackground: backgroundSheet(tileW, tileH),
		core.ImagePlayer:     playerSheet(playerW, playerH),
		core.ImageEnemy:      enemySheet(enemyW, enemyH),
	}
}

// backgroundSheet draws sky, clouds, hills and ground. Every feature uses a
// whole number of periods per tile so the wrap is seamless.
func backgroundSheet(tileW, tileH float64) Sheet {
	groundTop := tileH - 40
	return SheetFunc(func(u, v float64) (rune, core.Color, bool) {
		phase := 2 * math.Pi * u / tileW
		hill := 90 + 50*math.Sin(3*phase) + 25*math.Sin(7*phase)
		cloudBand := v > tileH*0.12 && v < tileH*0.18

		switch {
		case v >= groundTop:
			return '▓', core.ColorGreen, true
		case v >= groundTop-hill:
			return '░', core.ColorGray, true
		case cloudBand && math.Sin(5*phase) > 0.6:
			return '~', core.ColorWhite, true
		default:
			return ' ', core.ColorDefault, true
		}
	})
}

// playerSheet draws a runner: head, torso and legs that alternate per frame.
// Row 0 is running, row 1 airborne with tucked legs.
func playerSheet(w, h float64) Sheet {
	return SheetFunc(func(u, v float64) (rune, core.Color, bool) {
		frame := int(u / w)
		row := int(v / h)
		lu, lv := math.Mod(u, w)/w, math.Mod(v, h)/h

		color := core.ColorBrightGreen
		if row == 1 {
			color = core.ColorBrightYellow
		}

		switch {
		case lv < 0.3:
			if lu > 0.35 && lu < 0.7 {
				return '●', color, true
			}
		case lv < 0.7:
			if lu > 0.25 && lu < 0.75 {
				return '█', color, true
			}
		default:
			if row == 1 {
				if lu > 0.3 && lu < 0.7 {
					return '▀', color, true
				}
				break
			}
			if frame%2 == 0 && (lu > 0.2 && lu < 0.4 || lu > 0.6 && lu < 0.8) {
				return '╱', color, true
			}
			if frame%2 == 1 && lu > 0.4 && lu < 0.6 {
				return '║', color, true
			}
		}
		return 0, core.ColorDefault, false
	})
}

// enemySheet draws a crawling blob with eyes and wiggling feet.
func enemySheet(w, h float64) Sheet {
	return SheetFunc(func(u, v float64) (rune, core.Color, bool) {
		frame := int(u / w)
		lu, lv := math.Mod(u, w)/w, math.Mod(v, h)/h

		switch {
		case lv < 0.2:
			return 0, core.ColorDefault, false
		case lv < 0.4:
			if lu > 0.2 && lu < 0.35 {
				return 'o', core.ColorWhite, true
			}
			if lu > 0.1 && lu < 0.9 {
				return '▄', core.ColorRed, true
			}
		case lv < 0.85:
			if lu > 0.05 && lu < 0.95 {
				return '▓', core.ColorRed, true
			}
		default:
			// Feet shift with the frame
			if int(lu*10+float64(frame))%3 == 0 {
				return '╹', core.ColorOrange, true
			}
		}
		return 0, core.ColorDefault, false
	})
}
