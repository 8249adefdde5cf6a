package main

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/internal/engine/camera"
	"github.com/Faultbox/frustum/internal/engine/debug"
	"github.com/Faultbox/frustum/internal/engine/framebuffer"
	"github.com/Faultbox/frustum/internal/engine/lighting"
	"github.com/Faultbox/frustum/internal/engine/renderer"
	"github.com/Faultbox/frustum/internal/logger"
	"github.com/Faultbox/frustum/internal/meshcache"
	"github.com/Faultbox/frustum/pkg/frustum"
	"github.com/Faultbox/frustum/pkg/geometry"
)

const (
	controlsPanelWidth = float32(340)
	validateTolerance  = 1e-6
	statusDuration     = 3 * time.Second
)

// App is the editor state.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	renderer *renderer.Renderer
	target   *framebuffer.Target
	camera   *camera.OrbitCamera
	scene    renderer.Scene
	shots    *debug.ScreenshotCapture
	cache    *meshcache.Cache

	shape     *shapeState
	wireframe bool
	buildErr  error
	buildTime time.Duration
	problems  []geometry.Problem

	// Written by the dialog goroutine, drained on the main thread.
	savePaths chan string

	status     string
	statusTime time.Time

	lastMouse imgui.Vec2
}

// NewApp creates the window, GL resources and the initial mesh.
func NewApp(cfg *config.Config, opts frustum.Options) (*App, error) {
	app := &App{
		cfg:       cfg,
		camera:    camera.NewOrbitCamera(),
		shots:     debug.NewScreenshotCapture("screenshots", "frustumlab"),
		cache:     meshcache.New(meshcache.DefaultCapacity),
		shape:     newShapeState(opts),
		wireframe: cfg.Viewer.Wireframe,
		savePaths: make(chan string, 1),
	}
	app.scene.ShowBounds = cfg.Viewer.ShowBounds

	var err error
	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow("Frustum Lab", cfg.Viewer.Width, cfg.Viewer.Height)

	// renderer.New loads the GL function pointers for the backend's context.
	app.renderer, err = renderer.New(renderer.Config{Width: 1, Height: 1, Wireframe: app.wireframe})
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	app.renderer.LightDir = lighting.SunDirection(45, 50)
	app.renderer.ClearColor = [4]float32{0.15, 0.15, 0.2, 1}

	app.target, err = framebuffer.New(640, 480)
	if err != nil {
		app.renderer.Close()
		return nil, err
	}

	app.rebuild()
	return app, nil
}

// Run starts the UI loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close releases GL resources.
func (app *App) Close() {
	app.scene.Delete()
	if app.target != nil {
		app.target.Destroy()
	}
	if app.renderer != nil {
		app.renderer.Close()
	}
}

// rebuild builds the mesh for the current shape state. Parameter errors are
// kept for display and the previous mesh stays on screen.
func (app *App) rebuild() {
	start := time.Now()
	mesh, err := app.cache.Get(app.shape.Options())
	if err != nil {
		app.buildErr = err
		return
	}
	app.buildTime = time.Since(start)

	first := app.scene.Mesh == nil
	if err := app.scene.SetMesh(mesh); err != nil {
		app.buildErr = err
		return
	}
	app.buildErr = nil
	app.problems = geometry.Validate(mesh, validateTolerance)

	bs := mesh.BoundingSphere
	if first || !app.cameraHolds(bs) {
		app.camera.FitToSphere(bs.Center.Vec3(), float32(bs.Radius))
	}

	hits, misses := app.cache.Stats()
	logger.Debug("mesh rebuilt", append(logger.MeshFields(mesh),
		zap.Duration("took", app.buildTime),
		zap.Int("problems", len(app.problems)),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)...)
}

// cameraHolds reports whether the current zoom limits still suit a sphere,
// so small parameter tweaks keep the user's view.
func (app *App) cameraHolds(bs geometry.BoundingSphere) bool {
	r := float32(bs.Radius)
	return app.camera.MinDistance <= r && app.camera.MaxDistance >= 4*r
}

func (app *App) setStatus(format string, args ...any) {
	app.status = fmt.Sprintf(format, args...)
	app.statusTime = time.Now()
}

// render draws one UI frame.
func (app *App) render() {
	select {
	case path := <-app.savePaths:
		app.saveConfig(path)
	default:
	}

	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		app.screenshot()
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlsPanelWidth, workSize.Y))
	if imgui.BeginV("Shape", nil, flags) {
		app.renderControls()
		imgui.Separator()
		app.renderStats()
		imgui.Separator()
		app.renderValidation()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+controlsPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-controlsPanelWidth, workSize.Y))
	if imgui.BeginV("Preview", nil, flags) {
		app.renderPreview()
	}
	imgui.End()
}

func (app *App) renderControls() {
	s := app.shape
	changed := false

	imgui.Text("Dimensions")
	changed = imgui.SliderFloatV("Height", &s.Height, 0.01, 100, "%.2f", imgui.SliderFlagsNone) || changed
	changed = imgui.SliderFloatV("Top radius", &s.TopRadius, 0, 50, "%.2f", imgui.SliderFlagsNone) || changed
	changed = imgui.SliderFloatV("Bottom radius", &s.BottomRadius, 0, 50, "%.2f", imgui.SliderFlagsNone) || changed
	changed = imgui.SliderIntV("Slices", &s.Slices, frustum.MinSlices, 20000, "%d", imgui.SliderFlagsNone) || changed

	imgui.Spacing()
	imgui.Text("Vertex format")
	for i, t := range formatToggles {
		if i > 0 {
			imgui.SameLine()
		}
		changed = imgui.Checkbox(t.label, &s.Attributes[i]) || changed
	}

	imgui.Spacing()
	imgui.Text("applyOffset")
	for i, mode := range offsetModes {
		if i > 0 {
			imgui.SameLine()
		}
		label := mode.String()
		if label == "" {
			label = "off"
		}
		if mode == s.Offset {
			label = "[" + label + "]"
		}
		if imgui.ButtonV(label+"##offset", imgui.NewVec2(70, 0)) && mode != s.Offset {
			s.Offset = mode
			changed = true
		}
	}

	if changed {
		app.rebuild()
	}

	imgui.Spacing()
	imgui.Checkbox("Bounding sphere", &app.scene.ShowBounds)
	imgui.SameLine()
	imgui.Checkbox("Normals", &app.scene.ShowNormals)
	if imgui.Checkbox("Wireframe", &app.wireframe) {
		app.renderer.SetWireframe(app.wireframe)
	}

	imgui.Spacing()
	if imgui.ButtonV("Export YAML...", imgui.NewVec2(-1, 0)) {
		app.openSaveDialog()
	}
	if imgui.ButtonV("Screenshot (F12)", imgui.NewVec2(-1, 0)) {
		app.screenshot()
	}

	if app.status != "" && time.Since(app.statusTime) < statusDuration {
		imgui.TextWrapped(app.status)
	}
}

func (app *App) renderStats() {
	if app.buildErr != nil {
		imgui.TextColored(imgui.NewVec4(0.9, 0.3, 0.3, 1), app.buildErr.Error())
		imgui.TextDisabled("(showing the last valid mesh)")
	}
	m := app.scene.Mesh
	if m == nil {
		return
	}

	imgui.Text(fmt.Sprintf("Vertices:  %d", m.VertexCount()))
	imgui.Text(fmt.Sprintf("Triangles: %d", m.TriangleCount()))
	imgui.Text(fmt.Sprintf("Indices:   %d (%s)", m.Indices.Len(), m.Indices.Datatype()))
	imgui.Text(fmt.Sprintf("Bounds:    r=%.4f", m.BoundingSphere.Radius))
	imgui.Text(fmt.Sprintf("Build:     %s", app.buildTime.Round(time.Microsecond)))

	var bytes int
	for _, a := range m.Attributes {
		bytes += a.Len() * a.Datatype.Size()
	}
	bytes += m.Indices.Len() * m.Indices.Datatype().Size()
	imgui.Text(fmt.Sprintf("Memory:    %.1f KiB", float64(bytes)/1024))
}

func (app *App) renderValidation() {
	if app.scene.Mesh == nil {
		return
	}
	if len(app.problems) == 0 {
		imgui.TextColored(imgui.NewVec4(0.4, 0.8, 0.4, 1), "Mesh valid")
		return
	}

	imgui.TextColored(imgui.NewVec4(1, 0.8, 0, 1), fmt.Sprintf("%d problems", len(app.problems)))
	for _, p := range app.problems[:min(len(app.problems), 20)] {
		imgui.TextWrapped(p.Error())
	}
}

func (app *App) renderPreview() {
	avail := imgui.ContentRegionAvail()
	w, h := int32(avail.X), int32(avail.Y-24)
	app.target.Resize(w, h)

	texture := app.target.Render(func(width, height int) {
		app.renderer.SetSize(width, height)
		app.renderer.View = app.camera.ViewMatrix()
		if m := app.scene.Mesh; m != nil {
			app.renderer.SetDepthRange(app.camera.Distance, float32(m.BoundingSphere.Radius))
		}
		app.renderer.Begin()
		app.scene.Draw(app.renderer)
	})

	tw, th := app.target.Size()
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(float32(tw), float32(th)),
		imgui.NewVec2(0, 1), // GL textures are bottom-up
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.15, 0.15, 0.15, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if imgui.IsItemHovered() {
		mousePos := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			app.camera.HandleDrag(mousePos.X-app.lastMouse.X, mousePos.Y-app.lastMouse.Y)
		}
		app.lastMouse = mousePos

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			app.camera.HandleZoom(wheel)
		}
	}

	if imgui.Button("Reset View") && app.scene.Mesh != nil {
		bs := app.scene.Mesh.BoundingSphere
		app.camera.FitToSphere(bs.Center.Vec3(), float32(bs.Radius))
	}
	imgui.SameLine()
	imgui.TextDisabled("(Drag to rotate, scroll to zoom)")
}

// openSaveDialog asks for an export path without blocking the UI loop.
func (app *App) openSaveDialog() {
	go func() {
		path, err := dialog.File().
			Filter("YAML", "yaml", "yml").
			Title("Export configuration").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		app.savePaths <- path
	}()
}

func (app *App) saveConfig(path string) {
	cfg := *app.cfg
	cfg.Shape = app.shape.Config()
	cfg.Viewer.Wireframe = app.wireframe
	cfg.Viewer.ShowBounds = app.scene.ShowBounds

	if err := cfg.SaveTo(path); err != nil {
		logger.Error("export failed", zap.String("path", path), zap.Error(err))
		app.setStatus("Export failed: %v", err)
		return
	}
	logger.Info("configuration exported", zap.String("path", path))
	app.setStatus("Saved %s", path)
}

func (app *App) screenshot() {
	w, h := app.target.Size()
	path, err := app.shots.CaptureFromPixels(app.target.ReadPixels(), w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		app.setStatus("Screenshot failed: %v", err)
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	app.setStatus("Saved %s", path)
}
