//go:build ebiten

package app

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/stuXoon/game-of-life/internal/core"
	"github.com/stuXoon/game-of-life/internal/render"
	"github.com/stuXoon/game-of-life/internal/ui"
	"github.com/stuXoon/game-of-life/pkg/life"
	"github.com/stuXoon/game-of-life/pkg/pattern"
)

// Game wires the engine, camera and painter into the ebiten loop. The engine
// is owned here and passed by reference; nothing in the simulation knows
// about frames, pixels or input.
type Game struct {
	engine  *life.Engine
	cam     *render.Camera
	painter *render.Painter
	hud     *ui.HUD
	flasher *render.Flasher
	step    *core.FixedStep
	rng     *core.RNG

	themes   []render.Theme
	themeIdx int

	patterns     []string
	patternIdx   int // -1 is freehand painting
	patternTurns int

	brush    life.Color
	paused   bool
	tickOnce bool
	erasing  bool

	prevMX, prevMY int
	lastFrame      time.Time

	width, height int
	soupExtent    int
	soupDensity   float64
}

// New constructs a Game around an engine the caller owns.
func New(engine *life.Engine, cfg *Config) *Game {
	theme := render.ThemeByName(cfg.Theme)
	themes := render.Themes()
	themeIdx := 0
	for i, t := range themes {
		if t.Name == theme.Name {
			themeIdx = i
		}
	}
	g := &Game{
		engine:      engine,
		cam:         render.NewCamera(),
		painter:     render.NewPainter(theme),
		hud:         ui.NewHUD(),
		flasher:     render.NewFlasher(),
		step:        core.NewFixedStep(cfg.StepInterval()),
		rng:         core.NewRNG(cfg.Seed),
		themes:      themes,
		themeIdx:    themeIdx,
		patterns:    pattern.Names(),
		patternIdx:  -1,
		brush:       life.Color1,
		width:       cfg.Width,
		height:      cfg.Height,
		soupExtent:  cfg.SoupExtent,
		soupDensity: cfg.SoupDensity,
	}
	g.hud.SetTextColor(theme.Text)
	g.cam.CenterOn(life.Rect{}, cfg.Width, cfg.Height)
	return g
}

// Update handles input, advances the simulation on its own cadence and ages
// the capture flashes.
func (g *Game) Update() error {
	now := time.Now()
	if g.lastFrame.IsZero() {
		g.lastFrame = now
	}
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now

	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handleMouse()

	halted := g.engine.BattleResult() != life.ResultOngoing
	if (!g.paused && !halted && g.step.ShouldStep()) || g.tickOnce {
		st := g.engine.NextGeneration()
		g.flasher.Add(st.Captured)
		g.tickOnce = false
	}
	g.flasher.Advance(dt)
	return nil
}

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.step.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Clear()
		g.flasher.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.engine.SetBattle(!g.engine.Battle())
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.brush = life.Color1
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.brush = life.Color2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.patternIdx++
		if g.patternIdx >= len(g.patterns) {
			g.patternIdx = -1
		}
		g.patternTurns = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.patternIdx >= 0 {
		g.patternTurns = (g.patternTurns + 1) % 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themeIdx = (g.themeIdx + 1) % len(g.themes)
		g.painter.SetTheme(g.themes[g.themeIdx])
		g.hud.SetTextColor(g.themes[g.themeIdx].Text)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		ext := g.soupExtent
		if ext <= 0 {
			ext = 48
		}
		cells := g.rng.Soup(-ext/2, -ext/2, ext, ext, g.soupDensity)
		if g.engine.Battle() {
			for _, c := range cells {
				if c.X < 0 {
					g.engine.SetColoredCell(c.X, c.Y, life.Color1)
				} else {
					g.engine.SetColoredCell(c.X, c.Y, life.Color2)
				}
			}
		} else {
			g.engine.SetCells(cells)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if r, ok := g.engine.Bounds(); ok {
			g.cam.CenterOn(r, g.width, g.height)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.step.SetInterval(g.step.Interval() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		if half := g.step.Interval() / 2; half >= 10*time.Millisecond {
			g.step.SetInterval(half)
		}
	}
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.cam.ZoomAt(math.Pow(1.1, wheelY), float64(mx), float64(my))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		g.cam.Pan(float64(mx-g.prevMX), float64(my-g.prevMY))
	}
	g.prevMX, g.prevMY = mx, my

	cell := g.cam.ScreenToCell(mx, my)
	if g.patternIdx >= 0 {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p, _ := pattern.Lookup(g.patterns[g.patternIdx])
			placed := pattern.PlaceAt(pattern.Rotate(p, g.patternTurns), cell.X, cell.Y)
			if g.engine.Battle() {
				g.engine.SetColoredCells(placed, g.brush)
			} else {
				g.engine.SetCells(placed)
			}
		}
		return
	}

	// Freehand painting: the cell hit on press decides paint-vs-erase for
	// the whole stroke.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.erasing = g.engine.IsAlive(cell.X, cell.Y)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.erasing {
			g.engine.KillCell(cell.X, cell.Y)
		} else if g.engine.Battle() {
			g.engine.SetColoredCell(cell.X, cell.Y, g.brush)
		} else {
			g.engine.SetCell(cell.X, cell.Y)
		}
	}
}

// Draw renders the canvas, pattern ghost and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.cam, g.engine.ColoredCells(), g.engine.Battle(), g.flasher.Active())
	if g.patternIdx >= 0 {
		mx, my := ebiten.CursorPosition()
		cell := g.cam.ScreenToCell(mx, my)
		p, _ := pattern.Lookup(g.patterns[g.patternIdx])
		g.painter.DrawGhost(screen, g.cam, pattern.PlaceAt(pattern.Rotate(p, g.patternTurns), cell.X, cell.Y))
	}
	g.hud.Draw(screen, g.hudInfo())
}

func (g *Game) hudInfo() ui.Info {
	name := ""
	if g.patternIdx >= 0 {
		name = g.patterns[g.patternIdx]
	}
	// Population reflects edits made since the last advance, not just the
	// last step result.
	st := g.engine.Stats()
	st.Population = g.engine.Population()
	return ui.Info{
		Generation: g.engine.Generation(),
		Stats:      st,
		Battle:     g.engine.Battle(),
		Result:     g.engine.BattleResult(),
		Paused:     g.paused,
		Interval:   g.step.Interval(),
		Pattern:    name,
		Brush:      g.brush,
		Theme:      g.themes[g.themeIdx].Name,
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
