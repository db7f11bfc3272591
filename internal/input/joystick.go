// internal/input/joystick.go
package input

import (
	"fmt"

	"github.com/0xcafed00d/joystick"
	"github.com/rs/zerolog"

	"wheel-overlay/internal/logging"
	"wheel-overlay/internal/utils"
)

const (
	maxJoysticks = 4
	axisRange    = 32767.0
)

// openDevice подменяется в тестах.
var openDevice = joystick.Open

// joystickSampler читает устройство напрямую через системный API джойстиков.
type joystickSampler struct {
	js   joystick.Joystick
	axis int
	log  zerolog.Logger

	last   float64
	failed bool
}

func openJoystick(axis int) (Sampler, error) {
	for i := 0; i < maxJoysticks; i++ {
		js, err := openDevice(i)
		if err != nil {
			continue
		}
		if n := js.AxisCount(); axis >= n {
			js.Close()
			return nil, fmt.Errorf("joystick %q has %d axes, axis %d requested", js.Name(), n, axis)
		}
		return &joystickSampler{
			js:   js,
			axis: axis,
			log:  logging.Module("input").With().Str("device", js.Name()).Logger(),
		}, nil
	}
	return nil, ErrNoJoystick
}

// Axis возвращает нормированное значение. Ошибка чтения не исправляется:
// остаётся последнее удачное значение, в журнал пишется один раз.
func (j *joystickSampler) Axis() float64 {
	state, err := j.js.Read()
	if err != nil || j.axis >= len(state.AxisData) {
		if !j.failed {
			j.failed = true
			j.log.Warn().Err(err).Msg("joystick read failed, holding last value")
		}
		return j.last
	}
	j.failed = false
	j.last = normalize(state.AxisData[j.axis])
	return j.last
}

func (j *joystickSampler) Name() string { return j.js.Name() }

func (j *joystickSampler) Close() error {
	j.js.Close()
	return nil
}

// normalize переводит сырое значение из диапазона int16 в [-1, 1].
func normalize(raw int) float64 {
	return utils.Clamp(float64(raw)/axisRange, -1, 1)
}
