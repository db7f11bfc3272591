// internal/input/gamepad.go
package input

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"wheel-overlay/internal/utils"
)

// gamepadSampler читает оси через ebiten. Работает только внутри игрового
// цикла: ebiten перечисляет геймпады после старта игры.
type gamepadSampler struct {
	id   ebiten.GamepadID
	axis int
	name string
}

func openGamepad(axis int) (Sampler, error) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return nil, ErrNoJoystick
	}
	slices.Sort(ids)
	id := ids[0]

	if n := ebiten.GamepadAxisCount(id); axis >= n {
		return nil, fmt.Errorf("gamepad %q has %d axes, axis %d requested", ebiten.GamepadName(id), n, axis)
	}
	return &gamepadSampler{id: id, axis: axis, name: ebiten.GamepadName(id)}, nil
}

func (g *gamepadSampler) Axis() float64 {
	return utils.Clamp(ebiten.GamepadAxisValue(g.id, g.axis), -1, 1)
}

func (g *gamepadSampler) Name() string { return g.name }

// Close ничего не делает, устройством владеет ebiten.
func (g *gamepadSampler) Close() error { return nil }
