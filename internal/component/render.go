// internal/component/render.go
package component

import (
	"image/color"

	"go-watch-out/pkg/render"
)

// Renderable — компонент для отрисовки. Не содержит ссылок на графические ресурсы.
type Renderable struct {
	Kind   render.Kind
	Color  color.RGBA
	Stroke color.RGBA
}
