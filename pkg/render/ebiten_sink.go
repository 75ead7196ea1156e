package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const strokeWidth = 1.5

// EbitenSink draws shapes onto an ebiten image. Create one per frame with
// NewEbitenSink or reuse it across frames via SetTarget.
type EbitenSink struct {
	target  *ebiten.Image
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewEbitenSink() *EbitenSink {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &EbitenSink{
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 64),
		fillIs:  make([]uint16, 0, 96),
	}
}

// SetTarget задаёт изображение, на котором рисуется текущий кадр.
func (s *EbitenSink) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *EbitenSink) DrawShape(sh Shape) {
	if s.target == nil {
		return
	}
	switch sh.Kind {
	case KindPlayer:
		s.drawPlayer(sh)
	default:
		if sh.Radius <= 0 {
			return
		}
		cx, cy, r := float32(sh.X), float32(sh.Y), float32(sh.Radius)
		vector.DrawFilledCircle(s.target, cx, cy, r, sh.Color, true)
		if sh.Stroke.A > 0 {
			vector.StrokeCircle(s.target, cx, cy, r, strokeWidth, sh.Stroke, true)
		}
	}
}

func (s *EbitenSink) drawPlayer(sh Shape) {
	start, segs := PlayerOutline(sh.X, sh.Y, sh.Rotation)

	path := vector.Path{}
	path.MoveTo(float32(start.X), float32(start.Y))
	for _, seg := range segs {
		path.CubicTo(
			float32(seg.C1.X), float32(seg.C1.Y),
			float32(seg.C2.X), float32(seg.C2.Y),
			float32(seg.End.X), float32(seg.End.Y),
		)
	}
	path.Close()

	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].ColorR = float32(sh.Color.R) / 255
		s.fillVs[i].ColorG = float32(sh.Color.G) / 255
		s.fillVs[i].ColorB = float32(sh.Color.B) / 255
		s.fillVs[i].ColorA = float32(sh.Color.A) / 255
	}
	s.target.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
