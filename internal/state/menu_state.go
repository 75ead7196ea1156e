// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-watch-out/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран. Space или клик начинает партию, Escape выходит.
type MenuState struct {
	sm       *StateMachine
	env      Env
	lastBest int
}

func NewMenuState(sm *StateMachine, env Env, lastBest int) *MenuState {
	return &MenuState{sm: sm, env: env, lastBest: lastBest}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		m.start()
	}
}

func (m *MenuState) start() {
	session, err := m.env.NewSession()
	if err != nil {
		m.env.logger().Error("failed to start session", "error", err)
		m.sm.Quit()
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.env, session))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	lines := []string{"WATCH OUT", "drag the orange shape, avoid the circles", "space or click to start"}
	if m.lastBest > 0 {
		lines = append(lines, fmt.Sprintf("best: %d", m.lastBest))
	}
	face := basicfont.Face7x13
	y := h/2 - len(lines)*config.ScoreLineHeight/2
	for _, line := range lines {
		x := (w - text.BoundString(face, line).Dx()) / 2
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += config.ScoreLineHeight
	}
}

func (m *MenuState) Exit() {}
