// pkg/render/canvas.go
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas keeps the last presented frame on the GPU and draws it with an
// opacity applied as an alpha colour scale.
type Canvas struct {
	img     *ebiten.Image
	opacity int
}

func NewCanvas() *Canvas {
	return &Canvas{opacity: 255}
}

// Present uploads frame. The GPU image is recreated only when the frame size
// changes (window resize).
func (c *Canvas) Present(frame *image.RGBA, opacity int) {
	c.opacity = opacity

	b := frame.Bounds()
	if b.Empty() {
		return
	}
	if c.img == nil || c.img.Bounds().Size() != b.Size() {
		if c.img != nil {
			c.img.Deallocate()
		}
		c.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	c.img.WritePixels(frame.Pix)
}

// Draw draws the last frame onto the screen.
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Clear()
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(Alpha(c.opacity))
	screen.DrawImage(c.img, op)
}

// Alpha converts a 0..255 opacity to a colour-scale factor.
func Alpha(opacity int) float32 {
	switch {
	case opacity <= 0:
		return 0
	case opacity >= 255:
		return 1
	}
	return float32(opacity) / 255
}
