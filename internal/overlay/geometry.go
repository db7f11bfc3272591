// internal/overlay/geometry.go
package overlay

import (
	"image"

	"wheel-overlay/internal/config"
)

// Geometry — единственная запись о положении и размере окна.
// Меняют её только обработчики событий оверлея.
type Geometry struct {
	X, Y int
	Side int

	dragging   bool
	dragOffset image.Point
}

// BeginDrag запоминает смещение курсора внутри окна.
func (g *Geometry) BeginDrag(cursor image.Point) {
	g.dragging = true
	g.dragOffset = cursor
}

// DragTo двигает окно так, чтобы захваченная точка осталась под курсором:
// pos = window + cursor - offset. Без активного перетаскивания вернёт false.
func (g *Geometry) DragTo(window, cursor image.Point) bool {
	if !g.dragging {
		return false
	}
	p := window.Add(cursor).Sub(g.dragOffset)
	g.X, g.Y = p.X, p.Y
	return true
}

func (g *Geometry) EndDrag() { g.dragging = false }

func (g Geometry) Dragging() bool { return g.dragging }

// Center возвращает начальную позицию окна на мониторе screenW x screenH.
// CenterLegacy сохраняет формулу старой сборки, где пополам делилась только
// высота окна (sh - side/2). Окно при этом почти целиком уходит за нижний край
// экрана. Похоже на ошибку приоритета, но режим оставлен до подтверждения.
func Center(screenW, screenH, side int, mode config.CenterMode) image.Point {
	x := (screenW - side) / 2
	if mode == config.CenterLegacy {
		return image.Pt(x, screenH-side/2)
	}
	return image.Pt(x, (screenH-side)/2)
}
