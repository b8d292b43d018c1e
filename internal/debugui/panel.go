package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
	"github.com/Faultbox/raging-sea/internal/viewer"
)

const panelWidth = 320

// Panel draws the scene as a full-window background and the parameter
// window on top of it.
type Panel struct {
	viewer  *viewer.Viewer
	backend *Backend
	cfg     *config.Config

	groups []controlGroup
	colors []ocean.ColorControl

	visible   bool
	presetDir string
	status    statusLine
	scene     *sceneController

	// Native dialogs run off the render thread; results are applied in Frame.
	dialogs    chan dialogResult
	dialogOpen bool

	log *zap.Logger
}

// NewPanel creates the panel for v. "Save settings" writes the live state
// back through cfg.
func NewPanel(v *viewer.Viewer, b *Backend, cfg *config.Config, presetDir string) *Panel {
	b.SetWindowTitle(titleFor(cfg.Ocean.Preset))
	return &Panel{
		viewer:    v,
		backend:   b,
		cfg:       cfg,
		groups:    groupControls(ocean.Controls()),
		colors:    ocean.ColorControls(),
		visible:   cfg.Debug.ShowPanel,
		presetDir: presetDir,
		status:    statusLine{ttl: 4 * time.Second},
		scene:     newSceneController(v.Camera()),
		dialogs:   make(chan dialogResult, 1),
		log:       logger.Named("debugui"),
	}
}

// Frame renders the scene and the panel. Call it from Backend.Run.
func (p *Panel) Frame() {
	p.drainDialogs()
	p.handleKeys()

	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	p.viewer.RenderFrame(int(size.X), int(size.Y), scale.X)

	p.drawScene(size.X, size.Y)
	if p.visible {
		p.drawPanel()
	}
	p.drawStatus()
}

func (p *Panel) handleKeys() {
	// Keep shortcuts out of text fields in the color editors.
	if imgui.IsAnyItemActive() {
		return
	}
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		p.screenshot()
	}
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyH)) {
		p.visible = !p.visible
	}
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyEscape)) {
		p.log.Info("quit requested")
		p.backend.Close()
	}
}

// drawScene shows the offscreen target behind every other window and
// routes pointer input over it to the camera.
func (p *Panel) drawScene(w, h float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(p.viewer.Scene().ColorTexture()))
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1), // UV flipped
			imgui.NewVec2(1, 0))

		mouse := imgui.MousePos()
		pointer, ok := p.scene.handle(sceneInput{
			Hovered:      imgui.IsItemHovered(),
			X:            mouse.X,
			Y:            mouse.Y,
			Width:        w,
			Height:       h,
			LeftDown:     imgui.IsMouseDown(imgui.MouseButtonLeft),
			LeftClicked:  imgui.IsMouseClickedBool(imgui.MouseButtonLeft),
			RightDown:    imgui.IsMouseDown(imgui.MouseButtonRight),
			RightClicked: imgui.IsMouseClickedBool(imgui.MouseButtonRight),
			Wheel:        imgui.CurrentIO().MouseWheel(),
		})
		if ok {
			p.viewer.SetPointer(pointer)
		}
	}
	imgui.End()
	imgui.PopStyleVar()
}

func (p *Panel) drawPanel() {
	vp := imgui.MainViewport()
	pos := vp.WorkPos()
	size := vp.WorkSize()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+size.X-panelWidth-10, pos.Y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0))
	imgui.SetNextWindowBgAlpha(0.85)

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsAlwaysAutoResize
	if imgui.BeginV(windowTitle, nil, flags) {
		params := p.viewer.Params()
		surface := p.viewer.Ocean()

		wireframe := surface.Wireframe()
		if imgui.Checkbox("Wireframe", &wireframe) {
			surface.SetWireframe(wireframe)
		}

		for _, g := range p.groups {
			if g.Name == "" {
				p.drawSliders(params, g)
				continue
			}
			if imgui.TreeNodeExStrV(g.Name, imgui.TreeNodeFlagsDefaultOpen) {
				p.drawSliders(params, g)
				imgui.TreePop()
			}
		}

		imgui.Separator()
		for _, c := range p.colors {
			col := c.Get(params).Array()
			if imgui.ColorEdit3(c.Name, &col) {
				c.Set(params, ocean.RGBFromArray(col))
			}
		}

		imgui.Separator()
		if imgui.Button("Reset") {
			p.viewer.ResetParams()
			p.setStatus("Parameters reset", false)
		}
		imgui.SameLine()
		if imgui.Button("Save preset...") {
			p.openDialog(dialogSave)
		}
		imgui.SameLine()
		if imgui.Button("Load preset...") {
			p.openDialog(dialogLoad)
		}
		if imgui.Button("Screenshot") {
			p.screenshot()
		}
		imgui.SameLine()
		if imgui.Button("Save settings") {
			p.saveSettings()
		}

		imgui.Separator()
		p.drawReadouts()
	}
	imgui.End()
}

func (p *Panel) drawSliders(params *ocean.Params, g controlGroup) {
	for _, c := range g.Controls {
		v := c.Value(params)
		if imgui.SliderFloatV(c.Name, &v, c.Min, c.Max, c.Format, imgui.SliderFlagsNone) {
			c.Set(params, v)
		}
	}
}

func (p *Panel) drawReadouts() {
	evaluator := "GPU"
	if p.viewer.Ocean().CPU() {
		evaluator = "CPU"
	}
	imgui.Text(fmt.Sprintf("%.0f FPS  |  %s evaluator  |  t = %.1fs", p.viewer.FPS(), evaluator, p.viewer.Time()))

	pointer := p.viewer.Pointer()
	imgui.Text(fmt.Sprintf("Pointer: %+.3f, %+.3f", pointer.X, pointer.Y))

	if lo, hi, ok := p.viewer.ElevationRange(); ok {
		imgui.Text(fmt.Sprintf("Elevation: %.3f .. %.3f", lo, hi))
	} else {
		imgui.TextDisabled("Elevation range: CPU evaluator only")
	}
	imgui.TextDisabled("Screenshots: " + p.viewer.ScreenshotDir())
	imgui.TextDisabled("Drag: orbit  Right-drag: pan  Wheel: zoom  H: hide")
}

func (p *Panel) drawStatus() {
	now := time.Now()
	if !p.status.visible(now) {
		return
	}

	vp := imgui.MainViewport()
	pos := vp.WorkPos()
	size := vp.WorkSize()
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+10, pos.Y+size.Y-40))
	imgui.SetNextWindowBgAlpha(0.7)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##Status", nil, flags) {
		color := imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
		if p.status.isError {
			color = imgui.NewVec4(1.0, 0.35, 0.3, 1.0)
		}
		imgui.TextColored(color, p.status.text)
	}
	imgui.End()
}

func (p *Panel) setStatus(text string, isError bool) {
	p.status.set(text, isError, time.Now())
}

func (p *Panel) screenshot() {
	path, err := p.viewer.Screenshot()
	if err != nil {
		p.log.Error("screenshot failed", zap.Error(err))
		p.setStatus(err.Error(), true)
		return
	}
	p.setStatus("Saved "+path, false)
}

func (p *Panel) saveSettings() {
	cfg := settingsToSave(*p.cfg, *p.viewer.Params(), p.viewer.Ocean().Wireframe(), p.visible)
	if err := cfg.Save(); err != nil {
		p.log.Error("settings save failed", zap.Error(err))
		p.setStatus(err.Error(), true)
		return
	}
	*p.cfg = cfg
	p.setStatus("Settings saved to "+config.UserConfigFile(), false)
}

func (p *Panel) openDialog(kind dialogKind) {
	if p.dialogOpen {
		return
	}
	p.dialogOpen = true
	openPresetDialog(kind, p.presetDir, p.dialogs)
}

// drainDialogs applies a finished dialog on the render thread.
func (p *Panel) drainDialogs() {
	select {
	case res := <-p.dialogs:
		p.dialogOpen = false
		p.applyDialog(res)
	default:
	}
}

func (p *Panel) applyDialog(res dialogResult) {
	if res.err != nil {
		p.log.Warn("file dialog failed", zap.Error(res.err))
		p.setStatus("Dialog failed: "+res.err.Error(), true)
		return
	}
	if res.path == "" {
		return
	}

	var err error
	var msg string
	switch res.kind {
	case dialogSave:
		err = p.viewer.SavePreset(res.path)
		msg = "Preset saved to " + res.path
	case dialogLoad:
		err = p.viewer.LoadPreset(res.path)
		msg = "Preset loaded from " + res.path
	}
	if err != nil {
		p.log.Error("preset failed", zap.String("path", res.path), zap.Error(err))
		p.setStatus(err.Error(), true)
		return
	}
	p.backend.SetWindowTitle(titleFor(res.path))
	p.setStatus(msg, false)
}
