package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

var (
	skyColor    = color.RGBA{R: 120, G: 180, B: 230, A: 255}
	hillColor   = color.RGBA{R: 70, G: 120, B: 90, A: 255}
	groundColor = color.RGBA{R: 90, G: 160, B: 60, A: 255}
	cloudColor  = color.RGBA{R: 245, G: 245, B: 250, A: 255}
	runColor    = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	jumpColor   = color.RGBA{R: 240, G: 210, B: 60, A: 255}
	enemyColor  = color.RGBA{R: 210, G: 60, B: 60, A: 255}
	eyeColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// buildSheets generates the three sprite sheets at the sizes the simulation
// addresses: frames laid out left to right, animation rows top to bottom.
func buildSheets(cfg config.RunnerConfig) map[core.Image]*ebiten.Image {
	return map[core.Image]*ebiten.Image{
		core.ImageBackground: backgroundSheet(int(cfg.Background.Width), int(cfg.Background.Height)),
		core.ImagePlayer: playerSheet(int(cfg.Player.Width), int(cfg.Player.Height),
			max(cfg.Player.GroundFrames, cfg.Player.AirFrames)+1),
		core.ImageEnemy: enemySheet(int(cfg.Enemy.Width), int(cfg.Enemy.Height), cfg.Enemy.Frames+1),
	}
}

// backgroundSheet paints a tile whose left and right edges match, so two
// copies side by side scroll without a seam.
func backgroundSheet(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(skyColor)

	groundTop := float32(h - 40)
	for x := 0; x < w; x += 4 {
		phase := 2 * math.Pi * float64(x) / float64(w)
		hill := float32(90 + 50*math.Sin(3*phase) + 25*math.Sin(7*phase))
		vector.DrawFilledRect(img, float32(x), groundTop-hill, 4, hill, hillColor, false)
		if math.Sin(5*phase) > 0.6 {
			vector.DrawFilledRect(img, float32(x), float32(h)*0.12, 4, float32(h)*0.06, cloudColor, false)
		}
	}
	vector.DrawFilledRect(img, 0, groundTop, float32(w), 40, groundColor, false)
	return img
}

// playerSheet paints two rows: running with alternating legs, airborne tucked.
func playerSheet(w, h, frames int) *ebiten.Image {
	img := ebiten.NewImage(w*frames, h*2)
	fw, fh := float32(w), float32(h)

	for row, clr := range []color.RGBA{runColor, jumpColor} {
		for f := 0; f < frames; f++ {
			cell := img.SubImage(image.Rect(f*w, row*h, (f+1)*w, (row+1)*h)).(*ebiten.Image)
			ox, oy := float32(f*w), float32(row*h)

			vector.DrawFilledCircle(cell, ox+fw*0.52, oy+fh*0.15, fh*0.12, clr, true)
			vector.DrawFilledRect(cell, ox+fw*0.3, oy+fh*0.3, fw*0.4, fh*0.4, clr, false)

			switch {
			case row == 1:
				vector.DrawFilledRect(cell, ox+fw*0.3, oy+fh*0.7, fw*0.4, fh*0.1, clr, false)
			case f%2 == 0:
				vector.StrokeLine(cell, ox+fw*0.45, oy+fh*0.7, ox+fw*0.25, oy+fh*0.98, fw*0.06, clr, true)
				vector.StrokeLine(cell, ox+fw*0.55, oy+fh*0.7, ox+fw*0.75, oy+fh*0.98, fw*0.06, clr, true)
			default:
				vector.DrawFilledRect(cell, ox+fw*0.44, oy+fh*0.7, fw*0.12, fh*0.3, clr, false)
			}
		}
	}
	return img
}

// enemySheet paints a blob whose feet shift each frame.
func enemySheet(w, h, frames int) *ebiten.Image {
	img := ebiten.NewImage(w*frames, h)
	fw, fh := float32(w), float32(h)

	for f := 0; f < frames; f++ {
		ox := float32(f * w)
		vector.DrawFilledRect(img, ox+fw*0.05, fh*0.3, fw*0.9, fh*0.55, enemyColor, false)
		vector.DrawFilledCircle(img, ox+fw*0.28, fh*0.4, fh*0.06, eyeColor, true)
		for i := 0; i < 4; i++ {
			x := ox + fw*(0.12+0.22*float32(i)) + float32((f+i)%3)*fw*0.03
			vector.DrawFilledRect(img, x, fh*0.85, fw*0.08, fh*0.15, enemyColor, false)
		}
	}
	return img
}
