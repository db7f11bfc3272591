// cmd/overlay/main.go
package main

import (
	"errors"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"wheel-overlay/internal/assets"
	"wheel-overlay/internal/config"
	"wheel-overlay/internal/input"
	"wheel-overlay/internal/logging"
	"wheel-overlay/internal/overlay"
	"wheel-overlay/internal/state"
	"wheel-overlay/internal/ui"
	"wheel-overlay/pkg/render"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout — один пиксель экрана на пиксель окна, окно всегда квадратное.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the YAML config file")
	assetsDir := flag.String("assets", "", "directory that contains wheels/ (overrides assets_dir)")
	backend := flag.String("backend", "", "joystick backend: ebiten or native (overrides backend)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}
	// Флаги меняют только этот запуск, сохранение настроек их не записывает.
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}
	if *backend != "" {
		cfg.Backend = config.Backend(*backend)
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("bad -backend flag")
		}
	}

	logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger")
	}
	defer logFile.Close()

	if cfg.PprofAddr != "" {
		go func() {
			log.Warn().Err(http.ListenAndServe(cfg.PprofAddr, nil)).Msg("pprof listener stopped")
		}()
	}

	base := assets.ResolveBase(cfg.AssetsDir)
	log.Info().Str("assets", base).Str("config", *configPath).Str("backend", string(cfg.Backend)).Msg("starting wheel overlay")

	sw, sh := ebiten.Monitor().Size()
	origin := overlay.Center(sw, sh, cfg.Size, cfg.Centering)
	if cfg.Centering == config.CenterLegacy {
		log.Warn().Int("y", origin.Y).Msg("legacy centering selected: suspected defect, window may start off screen")
	}

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(cfg.Size, cfg.Size)
	ebiten.SetWindowPosition(origin.X, origin.Y)
	if cfg.TPS == 0 {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	} else {
		ebiten.SetTPS(cfg.TPS)
	}

	canvas := render.NewCanvas()
	opts := overlay.Options{
		Config:     cfg,
		ConfigPath: *configPath,
		Catalog:    assets.NewCatalog(base),
		Window:     state.EbitenWindow{},
		Presenter:  canvas,
		Prompter:   ui.ZenityPrompter{},
		Origin:     origin,
		Exit:       os.Exit,
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewBootState(sm, input.Open, opts, canvas))
	app := &AppGame{stateMachine: sm}

	err = ebiten.RunGameWithOptions(app, &ebiten.RunGameOptions{ScreenTransparent: true})
	sm.SetState(nil) // Exit текущего состояния освобождает джойстик
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("run loop failed")
	}
	log.Info().Msg("bye")
}
