package render

import "image/color"

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Kind selects how a shape is drawn.
type Kind int

const (
	KindCircle Kind = iota
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Shape is one drawable entity in pixel space.
type Shape struct {
	ID       int
	Kind     Kind
	X, Y     float64
	Radius   float64
	Rotation float64 // degrees
	Color    color.RGBA
	Stroke   color.RGBA
}

// Sink consumes shapes once per frame. It owns every graphics resource.
type Sink interface {
	DrawShape(s Shape)
}
