// internal/state/boot_state.go
package state

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"wheel-overlay/internal/config"
	"wheel-overlay/internal/input"
	"wheel-overlay/internal/overlay"
	"wheel-overlay/pkg/render"
)

// Убеждаемся, что BootState соответствует интерфейсу State
var _ State = (*BootState)(nil)

// BootState открывает джойстик внутри игрового цикла: ebiten перечисляет
// геймпады только после RunGame. Пока устройств нет, состояние ждёт до
// config.DeviceProbeTicks тиков, потом сдаётся.
type BootState struct {
	sm     *StateMachine
	open   overlay.OpenFunc
	opts   overlay.Options
	canvas *render.Canvas
	ticks  int
}

func NewBootState(sm *StateMachine, open overlay.OpenFunc, opts overlay.Options, canvas *render.Canvas) *BootState {
	return &BootState{sm: sm, open: open, opts: opts, canvas: canvas}
}

func (b *BootState) Enter() {}

func (b *BootState) Update() error {
	sampler, err := b.open(b.opts.Config.Backend, b.opts.Config.Axis)
	b.ticks++
	if errors.Is(err, input.ErrNoJoystick) && b.ticks < config.DeviceProbeTicks {
		if b.ticks == 1 {
			log.Info().Int("ticks", config.DeviceProbeTicks).Msg("waiting for joystick")
		}
		return nil
	}

	// Результат уже получен, Boot только собирает оверлей или показывает ошибку.
	o, err := overlay.Boot(func(config.Backend, int) (input.Sampler, error) {
		return sampler, err
	}, b.opts)
	if err != nil {
		log.Error().Err(err).Int("ticks", b.ticks).Msg("closing window")
		return ebiten.Termination
	}
	b.sm.SetState(NewOverlayState(o, b.canvas))
	return nil
}

func (b *BootState) Draw(screen *ebiten.Image) {
	screen.Clear()
}

func (b *BootState) Exit() {}
