// internal/config/config.go
package config

import (
	"fmt"
	"time"
)

const (
	AppName     = "wheel-overlay"
	WindowTitle = "Wheel Overlay"

	MinSize     = 90
	MaxSize     = 360
	DefaultSize = 180

	MaxOpacity     = 255
	DefaultOpacity = 255

	DefaultMaxAngle = 270.0 // градусов при полном отклонении оси
	DefaultAxis     = 0
	DefaultTPS      = 60 // ~16 мс на тик

	DefaultWheel = "steering_wheel.png"
	WheelsDir    = "wheels"

	DoubleClickInterval = 400 * time.Millisecond
	DoubleClickSlop     = 4 // пикселей между двумя кликами

	// DeviceProbeTicks — сколько тиков загрузка ждёт появления первого
	// устройства. На macOS ebiten видит геймпады только через несколько тиков.
	DeviceProbeTicks = 60
)

// Backend выбирает источник данных джойстика.
type Backend string

const (
	BackendEbiten Backend = "ebiten"
	BackendNative Backend = "native"
)

// EscapeMode — поведение по нажатию Escape.
type EscapeMode string

const (
	EscapeClose     EscapeMode = "close"     // закрыть окно, штатное завершение
	EscapeTerminate EscapeMode = "terminate" // закрыть окно и сразу завершить процесс
)

// CenterMode — формула начального размещения окна.
type CenterMode string

const (
	CenterExact CenterMode = "exact"
	// CenterLegacy повторяет `screen.height() - self.height() // 2` из ранней
	// сборки. Похоже на ошибку приоритета операций, оставлено до подтверждения.
	CenterLegacy CenterMode = "legacy"
)

// LogConfig — настройки журнала.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config — всё, что задаётся в YAML-файле или флагами.
type Config struct {
	AssetsDir string     `yaml:"assets_dir"`
	Wheel     string     `yaml:"wheel"`
	Size      int        `yaml:"size"`
	Opacity   int        `yaml:"opacity"`
	MaxAngle  float64    `yaml:"max_angle"`
	Axis      int        `yaml:"axis"`
	Backend   Backend    `yaml:"backend"`
	TPS       int        `yaml:"tps"`
	Escape    EscapeMode `yaml:"escape"`
	Centering CenterMode `yaml:"centering"`
	PprofAddr string     `yaml:"pprof_addr"`
	Log       LogConfig  `yaml:"log"`
}

// Default возвращает конфигурацию на случай, когда файла нет.
func Default() Config {
	return Config{
		Wheel:     DefaultWheel,
		Size:      DefaultSize,
		Opacity:   DefaultOpacity,
		MaxAngle:  DefaultMaxAngle,
		Axis:      DefaultAxis,
		Backend:   BackendEbiten,
		TPS:       DefaultTPS,
		Escape:    EscapeClose,
		Centering: CenterExact,
		Log:       LogConfig{Level: "info"},
	}
}

// Validate проверяет диапазоны и перечисления.
func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("size %d out of range [%d, %d]", c.Size, MinSize, MaxSize)
	}
	if c.Opacity < 0 || c.Opacity > MaxOpacity {
		return fmt.Errorf("opacity %d out of range [0, %d]", c.Opacity, MaxOpacity)
	}
	if c.MaxAngle <= 0 {
		return fmt.Errorf("max_angle must be positive, got %v", c.MaxAngle)
	}
	if c.Axis < 0 {
		return fmt.Errorf("axis must not be negative, got %d", c.Axis)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps must not be negative, got %d", c.TPS)
	}
	switch c.Backend {
	case BackendEbiten, BackendNative:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Escape {
	case EscapeClose, EscapeTerminate:
	default:
		return fmt.Errorf("unknown escape mode %q", c.Escape)
	}
	switch c.Centering {
	case CenterExact, CenterLegacy:
	default:
		return fmt.Errorf("unknown centering mode %q", c.Centering)
	}
	return nil
}
