// internal/state/window.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// EbitenWindow применяет геометрию оверлея к настоящему окну.
type EbitenWindow struct{}

func (EbitenWindow) SetPosition(x, y int) { ebiten.SetWindowPosition(x, y) }
func (EbitenWindow) SetSize(side int)     { ebiten.SetWindowSize(side, side) }
