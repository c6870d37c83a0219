package wirecanvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// projUniform is the name of the projection matrix uniform.
const projUniform = "ProjMat"

// canvasShaderSrc is the single program every view quad is drawn with.
// Ebitengine runs a fixed vertex stage over pixel positions, so the
// projection is applied to vertices on the CPU before submission (see
// Renderer.Render). ProjMat is still uploaded each frame but this program
// never reads it; it is there for replacement shaders supplied through
// RendererConfig.ShaderSource. The fragment stage emits the interpolated
// vertex color unchanged.
const canvasShaderSrc = `//kage:unit pixels
package main

var ProjMat mat4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	return color
}
`

// compileShader compiles Kage source, wrapping failures.
func compileShader(src []byte) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile canvas shader: %w", err)
	}
	return s, nil
}
