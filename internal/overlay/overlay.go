// internal/overlay/overlay.go
package overlay

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"

	"wheel-overlay/internal/assets"
	"wheel-overlay/internal/config"
	"wheel-overlay/internal/event"
	"wheel-overlay/internal/input"
	"wheel-overlay/internal/logging"
	"wheel-overlay/internal/ui"
	"wheel-overlay/internal/wheel"
)

// ErrClosed возвращается из Tick после запроса на закрытие.
var ErrClosed = errors.New("overlay closed")

// Window — та часть оконной системы, которой управляет оверлей.
type Window interface {
	SetPosition(x, y int)
	SetSize(side int)
}

// Presenter показывает готовый кадр. Вызывается раз в тик, после отрисовки.
type Presenter interface {
	Present(frame *image.RGBA, opacity int)
}

// Options — зависимости оверлея.
type Options struct {
	Config     config.Config
	ConfigPath string
	Sampler    input.Sampler
	Catalog    *assets.Catalog
	Window     Window
	Presenter  Presenter
	Prompter   ui.Prompter
	Origin     image.Point // initial window position
	Exit       func(code int)
}

// Overlay владеет состоянием окна и устройства на всё время работы.
// Создаётся после открытия устройства, освобождается через Close.
type Overlay struct {
	cfg        config.Config
	configPath string
	log        zerolog.Logger

	sampler  input.Sampler
	renderer *wheel.Renderer
	catalog  *assets.Catalog
	window   Window
	present  Presenter
	dialog   *ui.SettingsDialog
	clicks   *ui.DoubleClick
	events   *event.Dispatcher
	exit     func(code int)

	geom    Geometry
	opacity int
	wheel   string

	ticks   uint64
	closing bool
	closed  bool
}

// OpenFunc открывает устройство ввода. В программе это input.Open.
type OpenFunc func(backend config.Backend, axis int) (input.Sampler, error)

// Boot открывает устройство и собирает оверлей. Без устройства работать
// нечему: ошибка пишется в журнал, показывается пользователю и возвращается,
// чтобы вызывающий закрыл окно.
func Boot(open OpenFunc, opts Options) (*Overlay, error) {
	sampler, err := open(opts.Config.Backend, opts.Config.Axis)
	if err != nil {
		l := logging.Module("overlay")
		l.Error().Err(err).Str("backend", string(opts.Config.Backend)).Msg("cannot start overlay")
		if opts.Prompter != nil {
			if perr := opts.Prompter.Error(config.WindowTitle, diagnostic(err)); perr != nil {
				l.Warn().Err(perr).Msg("diagnostic dialog failed")
			}
		}
		return nil, fmt.Errorf("open joystick: %w", err)
	}
	opts.Sampler = sampler
	return New(opts), nil
}

func diagnostic(err error) string {
	if errors.Is(err, input.ErrNoJoystick) {
		return "No joysticks found!"
	}
	return "Cannot open joystick: " + err.Error()
}

// New связывает оверлей и рисует первый кадр под углом 0.
func New(opts Options) *Overlay {
	o := &Overlay{
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		log:        logging.Module("overlay"),
		sampler:    opts.Sampler,
		catalog:    opts.Catalog,
		window:     opts.Window,
		present:    opts.Presenter,
		dialog:     ui.NewSettingsDialog(opts.Prompter),
		clicks:     ui.NewDoubleClick(config.DoubleClickInterval, config.DoubleClickSlop),
		events:     event.NewDispatcher(),
		exit:       opts.Exit,
		geom:       Geometry{X: opts.Origin.X, Y: opts.Origin.Y, Side: opts.Config.Size},
		opacity:    opts.Config.Opacity,
		wheel:      opts.Config.Wheel,
	}

	src := o.catalog.LoadOrBlank(o.wheel)
	o.renderer = wheel.NewRenderer(src, o.geom.Side, o.cfg.MaxAngle)
	o.present.Present(o.renderer.Frame(), o.opacity)

	o.events.Subscribe(event.DragStarted, event.ListenerFunc(o.onDragStarted))
	o.events.Subscribe(event.DragMoved, event.ListenerFunc(o.onDragMoved))
	o.events.Subscribe(event.DragEnded, event.ListenerFunc(o.onDragEnded))
	o.events.Subscribe(event.SettingsRequested, event.ListenerFunc(o.onSettingsRequested))
	o.events.Subscribe(event.SettingsApplied, event.ListenerFunc(o.onSettingsApplied))
	o.events.Subscribe(event.CloseRequested, event.ListenerFunc(o.onCloseRequested))

	o.log.Info().
		Str("device", o.sampler.Name()).
		Str("wheel", o.wheel).
		Int("side", o.geom.Side).
		Msg("overlay ready")
	return o
}

// Tick один раз опрашивает ось, рисует и показывает кадр. Пропущенные тики
// не догоняются.
func (o *Overlay) Tick() (float64, error) {
	if o.closing {
		return 0, ErrClosed
	}
	axis := o.sampler.Axis()
	frame, angle := o.renderer.Render(axis)
	o.present.Present(frame, o.opacity)
	o.ticks++
	if o.ticks%600 == 0 {
		o.log.Debug().Float64("axis", axis).Float64("angle", angle).Uint64("ticks", o.ticks).Msg("tick")
	}
	return angle, nil
}

// Events возвращает диспетчер, в который пишет слой ввода.
func (o *Overlay) Events() *event.Dispatcher { return o.events }

// Click передаёт нажатие левой кнопки детектору двойного клика и на втором
// клике пары отправляет SettingsRequested.
func (o *Overlay) Click(now time.Time, p event.Pointer) {
	if o.clicks.Press(now, p.Window.Add(p.Cursor)) {
		o.events.Dispatch(event.Event{Type: event.SettingsRequested})
	}
}

func (o *Overlay) Geometry() Geometry { return o.geom }
func (o *Overlay) Opacity() int       { return o.opacity }
func (o *Overlay) Wheel() string      { return o.wheel }
func (o *Overlay) Closing() bool      { return o.closing }

// Close освобождает устройство. Повторный вызов ничего не делает.
func (o *Overlay) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	o.log.Info().Uint64("ticks", o.ticks).Msg("overlay closed")
	if err := o.sampler.Close(); err != nil {
		return fmt.Errorf("failed to release joystick: %w", err)
	}
	return nil
}

func (o *Overlay) onDragStarted(e event.Event) {
	p := e.Data.(event.Pointer)
	o.geom.BeginDrag(p.Cursor)
}

func (o *Overlay) onDragMoved(e event.Event) {
	p := e.Data.(event.Pointer)
	if o.geom.DragTo(p.Window, p.Cursor) {
		o.window.SetPosition(o.geom.X, o.geom.Y)
	}
}

func (o *Overlay) onDragEnded(event.Event) {
	o.geom.EndDrag()
}

func (o *Overlay) onSettingsRequested(event.Event) {
	// Нажатие, открывшее диалог, своего отпускания уже не получит.
	o.geom.EndDrag()

	current := event.Settings{Opacity: o.opacity, Size: o.geom.Side, Wheel: o.wheel}
	o.catalog.Refresh()
	next, err := o.dialog.Run(current, o.catalog.Names())
	if errors.Is(err, zenity.ErrCanceled) {
		o.log.Debug().Msg("settings dismissed")
		return
	}
	if err != nil {
		o.log.Error().Err(err).Msg("settings dialog failed")
		return
	}
	o.events.Dispatch(event.Event{Type: event.SettingsApplied, Data: next})
}

func (o *Overlay) onSettingsApplied(e event.Event) {
	s := e.Data.(event.Settings)

	o.opacity = s.Opacity

	if s.Size != o.geom.Side {
		o.geom.Side = s.Size
		o.window.SetSize(s.Size)
		o.present.Present(o.renderer.Resize(s.Size), o.opacity)
	}

	if s.Wheel != "" && s.Wheel != o.wheel {
		o.wheel = s.Wheel
		o.present.Present(o.renderer.SetSource(o.catalog.LoadOrBlank(s.Wheel)), o.opacity)
	}

	o.log.Info().
		Int("opacity", o.opacity).
		Int("side", o.geom.Side).
		Str("wheel", o.wheel).
		Bool("save", s.Save).
		Msg("settings applied")

	if s.Save {
		if err := o.persist(); err != nil {
			o.log.Error().Err(err).Str("path", o.configPath).Msg("failed to save settings")
		}
	}
}

// persist пишет в файл только поля из диалога настроек. Флаги командной
// строки действуют на один запуск, поэтому файл перечитывается заново.
func (o *Overlay) persist() error {
	saved, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	saved.Opacity, saved.Size, saved.Wheel = o.opacity, o.geom.Side, o.wheel
	return config.Save(o.configPath, saved)
}

func (o *Overlay) onCloseRequested(event.Event) {
	o.closing = true
	if o.cfg.Escape != config.EscapeTerminate {
		return
	}
	o.log.Info().Msg("escape: terminating process")
	if err := o.Close(); err != nil {
		o.log.Error().Err(err).Msg("teardown before exit")
	}
	o.exit(0)
}
