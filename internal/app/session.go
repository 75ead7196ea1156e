// internal/app/session.go
package app

import (
	"fmt"
	"log/slog"
	"time"

	"go-watch-out/internal/component"
	"go-watch-out/internal/config"
	"go-watch-out/internal/entity"
	"go-watch-out/internal/event"
	"go-watch-out/internal/scheduler"
	"go-watch-out/internal/system"
	"go-watch-out/internal/utils"
	"go-watch-out/pkg/render"
	"go-watch-out/pkg/scale"

	"github.com/google/uuid"
)

// Session владеет всем состоянием одной партии: сущностями, системами и
// таймерами. Других изменяемых глобальных данных нет.
type Session struct {
	ID         uuid.UUID
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	Scheduler  *scheduler.Scheduler
	Rng        *utils.PRNGService
	Axes       scale.Axes

	MotionSystem    *system.MotionSystem
	CollisionSystem *system.CollisionSystem
	ScoreSystem     *system.ScoreSystem
	PlayerSystem    *system.PlayerSystem
	RenderSystem    *system.RenderSystem

	cfg        config.Config
	logger     *slog.Logger
	motionTask *scheduler.Task
	scoreTask  *scheduler.Task
	collisions int
	stopped    bool
}

// Option настраивает сессию при создании.
type Option func(*Session)

// WithLogger задаёт логгер; по умолчанию slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithDispatcher позволяет подписаться на события до появления врагов.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(s *Session) { s.Dispatcher = d }
}

// NewSession проверяет конфигурацию, создаёт игрока и врагов и регистрирует
// периодические задачи. Ошибка возвращается только при неверной конфигурации.
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	s := &Session{
		ID:     uuid.New(),
		ECS:    entity.NewECS(),
		Rng:    utils.NewPRNGService(cfg.Seed),
		Axes:   scale.NewAxes(config.NormalizedMax, float64(cfg.Width), float64(cfg.Height)),
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Dispatcher == nil {
		s.Dispatcher = event.NewDispatcher()
	}
	s.logger = s.logger.With("session", s.ID.String())

	width, height := float64(cfg.Width), float64(cfg.Height)
	s.ScoreSystem = system.NewScoreSystem(s.ECS, s.Dispatcher)
	s.PlayerSystem = system.NewPlayerSystem(s.ECS, width, height)
	s.MotionSystem = system.NewMotionSystem(s.ECS, s.Rng, s.Axes, cfg.TickInterval, s.Dispatcher)
	s.CollisionSystem = system.NewCollisionSystem(s.ECS, s.ScoreSystem, cfg.TriggerMode, s.Dispatcher)
	s.RenderSystem = system.NewRenderSystem(s.ECS, s.CollisionSystem)

	s.spawnEnemies()
	s.spawnPlayer()

	s.Scheduler = scheduler.New()
	var err error
	s.motionTask, err = s.Scheduler.Every("motion", cfg.TickInterval, s.MotionSystem.Advance, scheduler.Immediate())
	if err != nil {
		return nil, fmt.Errorf("failed to schedule motion: %w", err)
	}
	s.scoreTask, err = s.Scheduler.Every("score", cfg.ScoreInterval, s.ScoreSystem.Increment)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule score: %w", err)
	}

	s.Dispatcher.Subscribe(event.EnemyCollided, s)

	s.logger.Info("session started",
		"seed", s.Rng.Seed(),
		"enemies", cfg.EnemyCount,
		"board", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"trigger", cfg.TriggerMode,
	)
	return s, nil
}

// spawnEnemies создаёт врагов в случайных точках с нулевым радиусом.
func (s *Session) spawnEnemies() {
	for i := 0; i < s.cfg.EnemyCount; i++ {
		x, y := s.Axes.Map(
			s.Rng.Range(0, config.NormalizedMax),
			s.Rng.Range(0, config.NormalizedMax),
		)
		s.ECS.AddEnemy(component.Position{X: x, Y: y}, s.cfg.EnemyRadius, component.Renderable{
			Kind:   render.KindCircle,
			Color:  config.EnemyColor,
			Stroke: config.EnemyStroke,
		})
	}
}

// spawnPlayer ставит игрока в (0,0), что после ограничения даёт левый верхний угол поля.
func (s *Session) spawnPlayer() {
	s.ECS.AddPlayer(component.Position{}, s.cfg.PlayerRadius, s.cfg.Padding, component.Renderable{
		Kind:  render.KindPlayer,
		Color: config.PlayerColor,
	})
	s.PlayerSystem.MoveTo(0, 0)
}

// Update продвигает сессию на dt. Сначала враги доходят по текущему отрезку,
// затем срабатывают таймеры: новый отрезок начинается с конца предыдущего
// и сразу получает время, прошедшее после границы периода.
func (s *Session) Update(dt time.Duration) {
	if s.stopped {
		return
	}
	s.MotionSystem.Update(dt.Seconds())
	legs := s.MotionSystem.Legs()
	s.Scheduler.Advance(dt)
	if s.MotionSystem.Legs() != legs {
		s.MotionSystem.Update(s.motionTask.SinceFire().Seconds())
	}
	s.CollisionSystem.Tick()
}

// Drag — относительное смещение игрока от жеста перетаскивания.
func (s *Session) Drag(dx, dy float64) {
	if s.stopped {
		return
	}
	s.PlayerSystem.MoveBy(dx, dy)
}

// MoveTo — абсолютное перемещение игрока.
func (s *Session) MoveTo(x, y float64) {
	if s.stopped {
		return
	}
	s.PlayerSystem.MoveTo(x, y)
}

// Tick выполняет одну проверку столкновений вне основного цикла.
func (s *Session) Tick() int {
	if s.stopped {
		return 0
	}
	return s.CollisionSystem.Tick()
}

// OnEvent реализует интерфейс event.Listener.
func (s *Session) OnEvent(e event.Event) {
	if e.Type != event.EnemyCollided {
		return
	}
	s.collisions++
	if data, ok := e.Data.(event.CollisionData); ok {
		s.logger.Debug("enemy collided",
			"enemy", data.EnemyID,
			"score", data.ScoreBefore,
			"best", s.ECS.Score.Best,
		)
	}
}

// Stop отменяет все таймеры. Повторный вызов ничего не делает.
func (s *Session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.Scheduler.Stop()
	s.Dispatcher.Dispatch(event.Event{Type: event.SessionStopped})
	s.logger.Info("session stopped",
		"elapsed", s.Scheduler.Elapsed(),
		"score", s.ECS.Score.Current,
		"best", s.ECS.Score.Best,
		"collisions", s.collisions,
	)
}

func (s *Session) Stopped() bool         { return s.stopped }
func (s *Session) Config() config.Config { return s.cfg }
func (s *Session) Collisions() int       { return s.collisions }
