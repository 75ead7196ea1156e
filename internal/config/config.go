// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

const (
	DefaultWidth         = 700
	DefaultHeight        = 450
	DefaultEnemyCount    = 30
	DefaultPadding       = 20.0
	DefaultTickInterval  = 2000 * time.Millisecond
	DefaultScoreInterval = 50 * time.Millisecond
	DefaultPlayerRadius  = 5.0
	DefaultEnemyRadius   = 5.0

	MaxDeltaTime = 0.06 // секунды; защита от скачков после сворачивания окна

	NormalizedMax = 100.0 // верхняя граница нормализованного пространства [0,100)

	PlayerGrabMargin = 8.0 // запас вокруг игрока, в котором нажатие начинает перетаскивание
	HitSoundCooldown = 150 * time.Millisecond
	TouchHighlight   = 90 // насколько светлее рисуется враг, касающийся игрока

	ScoreTextX      = 10
	ScoreTextY      = 20
	ScoreLineHeight = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	EnemyColor      = color.RGBA{0, 0, 0, 255}
	EnemyStroke     = color.RGBA{240, 240, 240, 255}
	PlayerColor     = color.RGBA{255, 102, 0, 255} // #ff6600
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
)

// TriggerMode — когда срабатывает сброс счёта при касании врага.
type TriggerMode string

const (
	// TriggerEdge — один раз при входе врага в пересечение.
	TriggerEdge TriggerMode = "edge"
	// TriggerLevel — на каждом тике, пока пересечение сохраняется.
	TriggerLevel TriggerMode = "level"
)

var (
	ErrInvalidDimensions  = errors.New("width and height must be positive")
	ErrInvalidEnemyCount  = errors.New("enemy count must be positive")
	ErrInvalidPadding     = errors.New("padding must leave a non-empty playing area")
	ErrInvalidInterval    = errors.New("intervals must be positive")
	ErrInvalidRadius      = errors.New("radii must be non-negative")
	ErrInvalidTriggerMode = errors.New("unknown trigger mode")
)

// Config — параметры одной игровой сессии.
type Config struct {
	Width         int
	Height        int
	EnemyCount    int
	Padding       float64
	TickInterval  time.Duration // период смены цели врагов и длительность одного перемещения
	ScoreInterval time.Duration // период прироста счёта
	PlayerRadius  float64
	EnemyRadius   float64
	TriggerMode   TriggerMode
	Seed          int64 // 0 — взять из текущего времени
}

// Default возвращает конфигурацию, совпадающую с исходной игрой.
func Default() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		EnemyCount:    DefaultEnemyCount,
		Padding:       DefaultPadding,
		TickInterval:  DefaultTickInterval,
		ScoreInterval: DefaultScoreInterval,
		PlayerRadius:  DefaultPlayerRadius,
		EnemyRadius:   DefaultEnemyRadius,
		TriggerMode:   TriggerEdge,
	}
}

// Validate проверяет конфигурацию и возвращает все найденные ошибки сразу.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height))
	}
	if c.EnemyCount <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidEnemyCount, c.EnemyCount))
	}
	if c.Padding < 0 || 2*c.Padding >= float64(c.Width) || 2*c.Padding >= float64(c.Height) {
		errs = append(errs, fmt.Errorf("%w: padding %.1f on %dx%d", ErrInvalidPadding, c.Padding, c.Width, c.Height))
	}
	if c.TickInterval <= 0 || c.ScoreInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: tick %s, score %s", ErrInvalidInterval, c.TickInterval, c.ScoreInterval))
	}
	if c.PlayerRadius < 0 || c.EnemyRadius < 0 {
		errs = append(errs, fmt.Errorf("%w: player %.1f, enemy %.1f", ErrInvalidRadius, c.PlayerRadius, c.EnemyRadius))
	}
	switch c.TriggerMode {
	case TriggerEdge, TriggerLevel:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTriggerMode, c.TriggerMode))
	}
	return errors.Join(errs...)
}
