// internal/ui/click.go
package ui

import (
	"image"
	"time"

	"wheel-overlay/internal/utils"
)

// DoubleClick распознаёт двойной клик: два нажатия подряд в пределах Interval
// и не дальше Slop пикселей друг от друга.
type DoubleClick struct {
	Interval time.Duration
	Slop     int

	lastClickTime time.Time
	lastPos       image.Point
	armed         bool
}

func NewDoubleClick(interval time.Duration, slop int) *DoubleClick {
	return &DoubleClick{Interval: interval, Slop: slop}
}

// Press регистрирует нажатие и возвращает true, если это второй клик пары.
// После срабатывания счётчик сбрасывается, третий клик начинает новую пару.
func (d *DoubleClick) Press(now time.Time, pos image.Point) bool {
	if d.armed &&
		now.Sub(d.lastClickTime) <= d.Interval &&
		utils.Abs(pos.X-d.lastPos.X) <= d.Slop &&
		utils.Abs(pos.Y-d.lastPos.Y) <= d.Slop {
		d.armed = false
		return true
	}
	d.armed = true
	d.lastClickTime = now
	d.lastPos = pos
	return false
}
