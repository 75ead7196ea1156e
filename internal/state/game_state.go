// internal/state/game_state.go
package state

import (
	"time"

	"go-watch-out/internal/app"
	"go-watch-out/internal/config"
	"go-watch-out/internal/event"
	"go-watch-out/internal/ui"
	"go-watch-out/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — идущая партия. P открывает паузу, Escape возвращает в меню.
type GameState struct {
	sm         *StateMachine
	env        Env
	session    *app.Session
	scoreBoard *ui.ScoreBoard
	sink       *render.EbitenSink

	drag     dragTracker
	touchID  ebiten.TouchID
	byTouch  bool
	touchBuf []ebiten.TouchID
}

func NewGameState(sm *StateMachine, env Env, session *app.Session) *GameState {
	g := &GameState{
		sm:         sm,
		env:        env,
		session:    session,
		scoreBoard: ui.NewScoreBoard(config.ScoreTextX, config.ScoreTextY),
		sink:       render.NewEbitenSink(),
	}

	// подписки делаются один раз: Enter вызывается и после выхода из паузы
	session.Dispatcher.Subscribe(event.ScoreChanged, g.scoreBoard)
	for eventType, listeners := range env.Listeners {
		for _, l := range listeners {
			session.Dispatcher.Subscribe(eventType, l)
		}
	}
	return g
}

func (g *GameState) Enter() {
	g.drag.Release()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Stop()
		g.sm.SetState(NewMenuState(g.sm, g.env, g.session.ECS.Score.Best))
		return
	}

	g.handleMouse()
	g.handleTouch()

	g.session.Update(time.Duration(deltaTime * float64(time.Second)))
}

// onPlayer — попадает ли точка экрана в игрока с учётом запаса.
func (g *GameState) onPlayer(x, y int) bool {
	return g.session.PlayerSystem.Contains(float64(x), float64(y), config.PlayerGrabMargin)
}

func (g *GameState) handleMouse() {
	if g.byTouch {
		return
	}
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drag.Press(float64(x), float64(y), g.onPlayer(x, y))
	}
	if !g.drag.Active() {
		return
	}
	if dx, dy, ok := g.drag.Move(float64(x), float64(y)); ok {
		g.session.Drag(dx, dy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drag.Release()
	}
}

func (g *GameState) handleTouch() {
	if !g.byTouch && !g.drag.Active() {
		g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
		for _, id := range g.touchBuf {
			x, y := ebiten.TouchPosition(id)
			if g.drag.Press(float64(x), float64(y), g.onPlayer(x, y)) {
				g.touchID, g.byTouch = id, true
				break
			}
		}
	}
	if !g.byTouch {
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.drag.Release()
		g.byTouch = false
		return
	}
	x, y := ebiten.TouchPosition(g.touchID)
	if dx, dy, ok := g.drag.Move(float64(x), float64(y)); ok {
		g.session.Drag(dx, dy)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.sink.SetTarget(screen)
	g.session.RenderSystem.Draw(g.sink)
	g.scoreBoard.Draw(screen)
}

func (g *GameState) Exit() {}

// Session — текущая партия.
func (g *GameState) Session() *app.Session {
	return g.session
}
