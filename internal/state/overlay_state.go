// internal/state/overlay_state.go
package state

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"wheel-overlay/internal/event"
	"wheel-overlay/internal/overlay"
	"wheel-overlay/pkg/render"
)

var _ State = (*OverlayState)(nil)

// OverlayState — основной режим: переводит ввод ebiten в события оверлея и
// раз в тик опрашивает руль.
type OverlayState struct {
	overlay    *overlay.Overlay
	canvas     *render.Canvas
	lastCursor image.Point
}

// frameInput — снимок мыши и клавиатуры за один тик.
type frameInput struct {
	escape   bool
	pressed  bool // левая кнопка нажата в этом тике
	released bool // левая кнопка отпущена в этом тике
	held     bool
	pointer  event.Pointer
	now      time.Time
}

func NewOverlayState(o *overlay.Overlay, canvas *render.Canvas) *OverlayState {
	return &OverlayState{overlay: o, canvas: canvas}
}

func (s *OverlayState) Enter() {}

func (s *OverlayState) Update() error {
	s.route(readInput())

	if _, err := s.overlay.Tick(); err != nil {
		if errors.Is(err, overlay.ErrClosed) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func readInput() frameInput {
	cx, cy := ebiten.CursorPosition()
	wx, wy := ebiten.WindowPosition()
	return frameInput{
		escape:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		pointer:  event.Pointer{Cursor: image.Pt(cx, cy), Window: image.Pt(wx, wy)},
		now:      time.Now(),
	}
}

// route переводит снимок ввода в события оверлея.
func (s *OverlayState) route(in frameInput) {
	events := s.overlay.Events()

	if in.escape {
		events.Dispatch(event.Event{Type: event.CloseRequested})
		return
	}

	p := in.pointer
	switch {
	case in.pressed:
		events.Dispatch(event.Event{Type: event.DragStarted, Data: p})
		s.overlay.Click(in.now, p)
	case in.released:
		events.Dispatch(event.Event{Type: event.DragEnded})
	case in.held && p.Cursor != s.lastCursor:
		events.Dispatch(event.Event{Type: event.DragMoved, Data: p})
	}
	s.lastCursor = p.Cursor
}

func (s *OverlayState) Draw(screen *ebiten.Image) {
	s.canvas.Draw(screen)
}

// Exit освобождает устройство.
func (s *OverlayState) Exit() {
	if err := s.overlay.Close(); err != nil {
		log.Error().Err(err).Msg("overlay teardown")
	}
}
