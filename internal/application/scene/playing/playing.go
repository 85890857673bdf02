// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/kingsdoor/internal/application/run"
	"github.com/younwookim/kingsdoor/internal/application/scene"
	"github.com/younwookim/kingsdoor/internal/application/state"
	"github.com/younwookim/kingsdoor/internal/application/system"
	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{63, 56, 81, 255}
	colorBlock    = color.RGBA{80, 80, 100, 255}
	colorDoor     = color.RGBA{140, 90, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorInDoor   = color.RGBA{200, 200, 100, 255}
	colorFacing   = color.RGBA{255, 255, 255, 255}
	colorHitbox   = color.RGBA{100, 100, 200, 128}
	colorGround   = color.RGBA{200, 100, 100, 160}
	colorDebugBox = color.RGBA{255, 255, 255, 60}
)

// InputSource is what the scene polls once per tick
type InputSource interface {
	Poll(diag system.Diagnostics) []system.InputEvent
	RestartRequested() bool
	SaveRequested() bool
	DebugHeld() bool
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	ctrl    *run.Controller
	input   InputSource
	diag    system.Diagnostics
	screenW int
	screenH int
	debug   bool

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene and starts the first run.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, levels run.LevelSource, diag system.Diagnostics, recordPath string) (*Playing, error) {
	if diag == nil {
		diag = system.NopDiagnostics
	}

	p := &Playing{
		config:         cfg,
		ctrl:           run.New(cfg, levels, diag),
		input:          system.NewEbitenInput(),
		diag:           diag,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
	}

	if err := p.ctrl.StartGame(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if recordPath != "" {
		p.recorder = NewRecorder(cfg.Run.StartLevel)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p, nil
}

// Controller exposes the run being played
func (p *Playing) Controller() *run.Controller {
	return p.ctrl
}

// Update feeds this tick's input into the run and advances it
// (implements scene.Scene)
func (p *Playing) Update(deltaMillis float64) (scene.Scene, error) {
	p.debug = p.input.DebugHeld()

	if p.ctrl.Ended() && p.input.RestartRequested() {
		return nil, p.restart()
	}

	// F5: Save recording manually
	if p.recorder != nil && p.input.SaveRequested() {
		p.saveRecording()
	}

	events := p.input.Poll(p.diag)
	for _, ev := range events {
		p.ctrl.HandleEvent(ev)
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(deltaMillis, events)
	}

	if err := p.ctrl.Update(deltaMillis); err != nil {
		return nil, err
	}

	// Auto-save recording once the run is over
	if p.ctrl.Ended() {
		p.finishRecording()
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) restart() error {
	if err := p.ctrl.StartGame(); err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.config.Run.StartLevel)
		log.Printf("Recording restarted")
	}
	return nil
}

// finishRecording stops a live recording and writes it out. Frames after
// the end of a run are not worth replaying.
func (p *Playing) finishRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()
	p.saveRecording()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.diag.Logf(system.ChannelApp, "entered playing scene")
}

// OnExit implements scene.Scene. Flushes an unsaved recording.
func (p *Playing) OnExit() {
	p.finishRecording()
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	v := p.ctrl.View()

	p.drawStage(screen, v)
	p.drawPlayer(screen, v)

	if v.Alpha > 0 {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlayColor(v.Alpha))
	}

	p.drawUI(screen, v)
}

func (p *Playing) drawStage(screen *ebiten.Image, v run.View) {
	for _, b := range v.Blocks {
		fillRect(screen, b, colorBlock)
	}
	if v.HasDoor {
		fillRect(screen, v.Door, colorDoor)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, v run.View) {
	pv := v.Player
	fillRect(screen, pv.Bounds, playerColor(pv.State))

	// Facing marker on the leading edge
	const markerW = 6
	marker := entity.NewRect(pv.Bounds.Right-markerW, pv.Bounds.Top+pv.Bounds.Height()/3, markerW, markerW)
	if pv.State.FacesLeft() {
		marker = entity.NewRect(pv.Bounds.Left, marker.Top, markerW, markerW)
	}
	fillRect(screen, marker, colorFacing)

	// Draw hitbox debug
	if p.debug {
		for _, b := range v.Blocks {
			fillRect(screen, b, colorDebugBox)
		}
		fillRect(screen, pv.Hitbox, colorHitbox)
		if ground, ok := p.ctrl.Stage().Block(p.ctrl.Player().GroundBlock); ok {
			fillRect(screen, ground, colorGround)
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, v run.View) {
	ebitenutil.DebugPrintAt(screen, v.LevelText(), 10, 10)
	ebitenutil.DebugPrintAt(screen, v.TimeText(), 10, 26)

	if p.debug {
		debugText := fmt.Sprintf("state=%s anim=%s frame=%d run=%s",
			v.Player.State, v.Player.Animation, v.Player.Frame, v.State)
		ebitenutil.DebugPrintAt(screen, debugText, 10, 42)
	}

	if v.Outcome != state.OutcomeNone {
		text := fmt.Sprintf("%s\n\nPress Enter to restart", v.Outcome)
		ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-20)
	}
}

func fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	ebitenutil.DrawRect(screen, r.Left, r.Top, r.Width(), r.Height(), c)
}

// overlayColor is black at the given opacity, pre-multiplied
func overlayColor(alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{0, 0, 0, uint8(alpha * 255)}
}

func playerColor(s entity.PlayerState) color.RGBA {
	if s.IsEnterDoor() {
		return colorInDoor
	}
	return colorPlayer
}
