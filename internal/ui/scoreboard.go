// internal/ui/scoreboard.go
package ui

import (
	"fmt"
	"image/color"

	"go-watch-out/internal/config"
	"go-watch-out/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ScoreBoard показывает текущий и лучший счёт. Значения приходят
// только через событие ScoreChanged.
type ScoreBoard struct {
	X, Y       int
	LineHeight int
	Color      color.Color
	fontFace   font.Face

	current, best int
}

func NewScoreBoard(x, y int) *ScoreBoard {
	return &ScoreBoard{
		X:          x,
		Y:          y,
		LineHeight: config.ScoreLineHeight,
		Color:      config.TextLightColor,
		fontFace:   basicfont.Face7x13,
	}
}

// OnEvent реализует event.Listener.
func (b *ScoreBoard) OnEvent(e event.Event) {
	if e.Type != event.ScoreChanged {
		return
	}
	if data, ok := e.Data.(event.ScoreData); ok {
		b.current, b.best = data.Current, data.Best
	}
}

// Lines — строки табло сверху вниз.
func (b *ScoreBoard) Lines() []string {
	return []string{
		fmt.Sprintf("Score: %d", b.current),
		fmt.Sprintf("Best: %d", b.best),
	}
}

func (b *ScoreBoard) Draw(screen *ebiten.Image) {
	for i, line := range b.Lines() {
		text.Draw(screen, line, b.fontFace, b.X, b.Y+i*b.LineHeight, b.Color)
	}
}
