package core

// Image identifies a drawable sprite resource. Frontends own the actual
// pixels (or glyphs) behind each image; the simulation only names them.
type Image int

const (
	ImageBackground Image = iota // 2400x720 single tile
	ImagePlayer                  // sheet: row 0 running, row 1 airborne
	ImageEnemy                   // sheet: one row of frames
)

// String returns the image name.
func (i Image) String() string {
	switch i {
	case ImageBackground:
		return "background"
	case ImagePlayer:
		return "player"
	case ImageEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// TextAlign controls how FillText positions text relative to x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Surface is the 2D drawing target the game renders into once per frame.
// All coordinates are world pixels.
type Surface interface {
	// Blit copies the src sub-region of img into the dst rectangle.
	Blit(img Image, src, dst RectF)

	// FillText draws text at (x, y) using the current font, color and alignment.
	FillText(text string, x, y float64)

	SetFont(font string)
	SetFillColor(c Color)
	SetTextAlign(a TextAlign)

	// Clear erases the given region.
	Clear(r RectF)
}

// NopSurface discards every drawing call. Used for headless simulation.
type NopSurface struct{}

func (NopSurface) Blit(Image, RectF, RectF) {}
func (NopSurface) FillText(string, float64, float64) {}
func (NopSurface) SetFont(string) {}
func (NopSurface) SetFillColor(Color) {}
func (NopSurface) SetTextAlign(TextAlign) {}
func (NopSurface) Clear(RectF) {}

var _ Surface = NopSurface{}
