// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/frustum/internal/engine/shader"
	"github.com/Faultbox/frustum/internal/logger"
	"github.com/Faultbox/frustum/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Wireframe bool
}

// Renderer owns the GL state and the programs used by the preview.
type Renderer struct {
	config Config

	meshProgram *shader.Program
	lineProgram *shader.Program

	Projection math.Mat4
	View       math.Mat4
	Model      math.Mat4

	LightDir   [3]float32
	Ambient    float32
	ClearColor [4]float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		Model:    math.ZUpToYUp(),
		View:     math.Identity(),
		LightDir:   [3]float32{0.3, 1, 0.5},
		Ambient:    0.25,
		ClearColor: [4]float32{0.1, 0.1, 0.15, 1},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.MULTISAMPLE)

	var err error
	r.meshProgram, err = shader.New(shader.MeshVertex, shader.MeshFragment,
		"uModel", "uView", "uProjection", "uLightDir", "uColor", "uAmbient", "uHasNormal", "uHasST")
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r.lineProgram, err = shader.New(shader.LineVertex, shader.LineFragment,
		"uModel", "uView", "uProjection", "uColor")
	if err != nil {
		r.meshProgram.Delete()
		return nil, fmt.Errorf("line program: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.meshProgram.Delete()
	r.lineProgram.Delete()
}

// Resize updates the viewport and projection.
func (r *Renderer) Resize(width, height int) {
	r.SetSize(width, height)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetSize updates the projection for a target of the given size without
// touching the viewport, for targets that manage their own.
func (r *Renderer) SetSize(width, height int) {
	r.config.Width = max(width, 1)
	r.config.Height = max(height, 1)
	r.Projection = math.Perspective(0.8, float32(r.config.Width)/float32(r.config.Height), 0.01, 1000)
}

// SetDepthRange rescales the projection so near and far planes bracket a
// scene of the given radius seen from distance.
func (r *Renderer) SetDepthRange(distance, radius float32) {
	near := distance - 2*radius
	if near < distance*0.001 {
		near = distance * 0.001
	}
	far := distance + 2*radius
	r.Projection = math.Perspective(0.8, float32(r.config.Width)/float32(r.config.Height), near, far)
}

// SetWireframe sets polygon fill mode.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
}

// ToggleWireframe flips polygon fill mode and returns the new state.
func (r *Renderer) ToggleWireframe() bool {
	r.config.Wireframe = !r.config.Wireframe
	return r.config.Wireframe
}

// Begin starts a new frame. Depth and culling state is set every frame
// because a UI pass sharing the context may change it.
func (r *Renderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.SCISSOR_TEST)

	c := r.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh draws an uploaded mesh with the lit program.
func (r *Renderer) DrawMesh(m *GPUMesh, color [3]float32) {
	p := r.meshProgram
	p.Use()
	r.setMatrices(p)
	p.SetVec3("uLightDir", r.LightDir)
	p.SetVec3("uColor", color)
	p.SetFloat("uAmbient", r.Ambient)
	p.SetBool("uHasNormal", m.hasNormal)
	p.SetBool("uHasST", m.hasST)

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Disable(gl.CULL_FACE)
	}
	m.draw()
	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		gl.Enable(gl.CULL_FACE)
	}
}

// DrawLines draws an uploaded line list in a flat color.
func (r *Renderer) DrawLines(l *GPULines, color [3]float32) {
	p := r.lineProgram
	p.Use()
	r.setMatrices(p)
	p.SetVec3("uColor", color)
	l.draw()
}

func (r *Renderer) setMatrices(p *shader.Program) {
	p.SetMat4("uModel", r.Model.Ptr())
	p.SetMat4("uView", r.View.Ptr())
	p.SetMat4("uProjection", r.Projection.Ptr())
}

// ReadPixels reads the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
