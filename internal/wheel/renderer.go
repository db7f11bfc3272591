// internal/wheel/renderer.go
package wheel

import (
	"image"
)

// Renderer владеет исходным и рабочим изображениями и на каждое значение оси
// выдаёт кадр размером с окно.
type Renderer struct {
	maxAngle float64
	side     int

	source  image.Image
	working *image.RGBA
	frame   *image.RGBA

	lastAngle float64
}

// NewRenderer создаёт рендерер для окна со стороной side. src может быть nil,
// тогда кадры пустые до вызова SetSource.
func NewRenderer(src image.Image, side int, maxAngle float64) *Renderer {
	r := &Renderer{maxAngle: maxAngle}
	if src == nil {
		src = image.NewRGBA(image.Rectangle{})
	}
	r.source = src
	r.Resize(side)
	return r
}

// Render переводит ось в угол, поворачивает рабочее изображение и кладёт его
// в кадр. Кадр переиспользуется между вызовами.
func (r *Renderer) Render(axis float64) (*image.RGBA, float64) {
	angle := Angle(axis, r.maxAngle)
	r.draw(angle)
	return r.frame, angle
}

// Resize пересоздаёт рабочее изображение под новую сторону окна и
// перерисовывает кадр под последним углом.
func (r *Renderer) Resize(side int) *image.RGBA {
	r.side = side
	r.working = Fit(r.source, side)
	r.frame = image.NewRGBA(image.Rect(0, 0, side, side))
	r.draw(r.lastAngle)
	return r.frame
}

// SetSource заменяет исходное изображение (смена руля) и перерисовывает кадр.
func (r *Renderer) SetSource(src image.Image) *image.RGBA {
	if src == nil {
		src = image.NewRGBA(image.Rectangle{})
	}
	r.source = src
	return r.Resize(r.side)
}

func (r *Renderer) draw(angle float64) {
	r.lastAngle = angle
	Compose(r.frame, Rotate(r.working, angle))
}

// Side — текущая сторона окна.
func (r *Renderer) Side() int { return r.side }

// Frame — последний собранный кадр.
func (r *Renderer) Frame() *image.RGBA { return r.frame }

// Working — копия источника под текущий размер окна.
func (r *Renderer) Working() *image.RGBA { return r.working }

// LastAngle — угол последнего кадра.
func (r *Renderer) LastAngle() float64 { return r.lastAngle }
