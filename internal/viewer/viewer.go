// Package viewer implements the interactive frustum preview loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/internal/engine/camera"
	"github.com/Faultbox/frustum/internal/engine/debug"
	"github.com/Faultbox/frustum/internal/engine/input"
	"github.com/Faultbox/frustum/internal/engine/lighting"
	"github.com/Faultbox/frustum/internal/engine/picking"
	"github.com/Faultbox/frustum/internal/engine/renderer"
	"github.com/Faultbox/frustum/internal/engine/window"
	"github.com/Faultbox/frustum/internal/logger"
	"github.com/Faultbox/frustum/pkg/frustum"
	"github.com/Faultbox/frustum/pkg/math"
)

// Viewer is the preview instance.
type Viewer struct {
	cfg     *config.Config
	opts    frustum.Options
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	shots    *debug.ScreenshotCapture

	scene renderer.Scene
}

// New creates the window and renderer and uploads the initial mesh.
func New(cfg *config.Config, opts frustum.Options) (*Viewer, error) {
	v := &Viewer{
		cfg:    cfg,
		opts:   opts,
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		shots:  debug.NewScreenshotCapture("screenshots", "frustum"),
	}
	v.scene.ShowBounds = cfg.Viewer.ShowBounds

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Frustum",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderer.
	fbWidth, fbHeight := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:     fbWidth,
		Height:    fbHeight,
		Wireframe: cfg.Viewer.Wireframe,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.LightDir = lighting.SunDirection(45, 50)

	if err := v.rebuild(opts); err != nil {
		v.Close()
		return nil, err
	}

	logger.Info("viewer initialized")
	return v, nil
}

// rebuild builds a mesh for opts and replaces the uploaded one.
func (v *Viewer) rebuild(opts frustum.Options) error {
	f, err := frustum.New(opts)
	if err != nil {
		return err
	}

	start := time.Now()
	mesh := f.Build()
	logger.Info("mesh built", append(logger.MeshFields(mesh), zap.Duration("took", time.Since(start)))...)

	if err := v.scene.SetMesh(mesh); err != nil {
		return fmt.Errorf("upload mesh: %w", err)
	}
	v.opts = f.Options()

	bs := mesh.BoundingSphere
	v.camera.FitToSphere(bs.Center.Vec3(), float32(bs.Radius))
	v.updateTitle()
	return nil
}

func (v *Viewer) updateTitle() {
	v.window.SetTitle(fmt.Sprintf("Frustum h=%g rt=%g rb=%g slices=%d | %d vertices, %d triangles (%s)",
		v.opts.Height, v.opts.TopRadius, v.opts.BottomRadius, v.opts.Slices,
		v.scene.Mesh.VertexCount(), v.scene.Mesh.TriangleCount(), v.scene.Mesh.Indices.Datatype()))
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if err := v.handleEvent(event); err != nil {
				return err
			}
		}

		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		v.renderer.Resize(v.window.DrawableSize())
	case input.EventMouseMove:
		if v.input.Dragging() {
			v.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
		}
	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_RIGHT {
			v.pick(event.MouseX, event.MouseY)
		}
	case input.EventMouseWheel:
		v.camera.HandleZoom(event.Wheel)
	case input.EventKeyDown:
		return v.handleKey(event.Key)
	}
	return nil
}

func (v *Viewer) handleKey(key sdl.Scancode) error {
	switch key {
	case sdl.SCANCODE_W:
		logger.Info("wireframe", zap.Bool("enabled", v.renderer.ToggleWireframe()))
	case sdl.SCANCODE_B:
		v.scene.ShowBounds = !v.scene.ShowBounds
	case sdl.SCANCODE_N:
		v.scene.ShowNormals = !v.scene.ShowNormals
	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		return v.setSlices(NextSlices(v.opts.Slices, 1))
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		return v.setSlices(NextSlices(v.opts.Slices, -1))
	case sdl.SCANCODE_F12:
		pixels, w, h := v.renderer.ReadPixels()
		path, err := v.shots.CaptureFromPixels(pixels, w, h)
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
			return nil
		}
		logger.Info("screenshot saved", zap.String("path", path))
	}
	return nil
}

// pick logs the triangle under a window position.
func (v *Viewer) pick(x, y int) {
	r := v.renderer
	inv, ok := r.Projection.Mul(r.View).Mul(r.Model).Inverse()
	if !ok {
		return
	}
	w, h := v.window.Size()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), inv)

	hit, ok := picking.PickTriangle(ray, v.scene.Mesh)
	if !ok {
		logger.Info("pick: no triangle")
		return
	}
	tri := v.scene.Mesh.Triangle(hit.Triangle)
	logger.Info("pick",
		zap.Int("triangle", hit.Triangle),
		zap.Uint32s("indices", tri[:]),
		zap.Float64("x", hit.Point.X),
		zap.Float64("y", hit.Point.Y),
		zap.Float64("z", hit.Point.Z),
	)
}

func (v *Viewer) setSlices(slices int) error {
	if slices == v.opts.Slices {
		return nil
	}
	opts := v.opts
	opts.Slices = slices
	return v.rebuild(opts)
}

// NextSlices steps the slice count up or down by roughly a quarter, never
// below frustum.MinSlices.
func NextSlices(slices, dir int) int {
	step := max(slices/4, 1)
	return max(slices+dir*step, frustum.MinSlices)
}

func (v *Viewer) render() {
	v.renderer.View = v.camera.ViewMatrix()
	v.renderer.SetDepthRange(v.camera.Distance, float32(v.scene.Mesh.BoundingSphere.Radius))
	v.renderer.Model = math.ZUpToYUp()

	v.renderer.Begin()
	v.scene.Draw(v.renderer)
}

// Close releases GL resources and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	v.scene.Delete()
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
