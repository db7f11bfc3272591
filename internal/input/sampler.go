// internal/input/sampler.go
package input

import (
	"errors"
	"fmt"

	"wheel-overlay/internal/config"
)

// ErrNoJoystick — ни одного контроллера не найдено.
var ErrNoJoystick = errors.New("no joysticks found")

// Sampler читает горизонтальную ось одного контроллера.
type Sampler interface {
	// Axis возвращает текущее отклонение в [-1, 1].
	Axis() float64
	Name() string
	Close() error
}

// Open открывает первое найденное устройство выбранного бэкенда. Дескриптор
// действует до Close, горячее подключение не поддерживается.
func Open(backend config.Backend, axis int) (Sampler, error) {
	switch backend {
	case config.BackendEbiten:
		return openGamepad(axis)
	case config.BackendNative:
		return openJoystick(axis)
	default:
		return nil, fmt.Errorf("unknown input backend %q", backend)
	}
}
