// Package gui is the raylib client of the inventory view.
package gui

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/config"
	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/logging"
	uitheme "github.com/appengine-ltd/invview/internal/ui/theme"
	"github.com/appengine-ltd/invview/internal/view"
)

const hintLine = "I inventory  L loot  Tab switch  Enter use  Q drop  Space drop one  F filter  / console  Esc close"

type Options struct {
	Config config.Config
	World  *game.World
	// Loot opens this container at start when set.
	Loot     item.EntityID
	AssetDir string
	Logger   *logging.Logger
}

type app struct {
	opts     Options
	log      *logging.Logger
	session  *game.Session
	renderer *renderer

	width, height int32
	lastTick      time.Time

	consoleOpen bool
	consoleLine string
	messages    []string
	quit        bool
}

func newApp(opts Options) *app {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	previewOpts, spin := view.PreviewFromConfig(opts.Config)
	session := game.NewSession(opts.World, view.Options{
		Layout:    view.LayoutFromConfig(opts.Config),
		Preview:   previewOpts,
		SpinSpeed: spin,
		Logger:    log,
	})
	return &app{
		opts:     opts,
		log:      log,
		session:  session,
		renderer: newRenderer(opts.World.Policy(), opts.World.Name),
		width:    opts.Config.Window.Width,
		height:   opts.Config.Window.Height,
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.World == nil {
		return fmt.Errorf("gui: no world")
	}
	a := newApp(opts)
	return a.run()
}

func (a *app) run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(a.width, a.height, "invview")
	rl.SetExitKey(0)
	rl.SetTargetFPS(a.opts.Config.Window.FPS)
	defer rl.CloseWindow()

	font := loadWindowFont(a.opts.AssetDir)
	defer font.unload()
	uitheme.InitSkin(a.opts.AssetDir)
	defer uitheme.UnloadSkin()
	a.renderer.load()
	defer a.renderer.unload()
	a.renderer.fitCamera(a.width, a.height)

	if a.opts.Loot != item.NoEntity {
		if err := a.session.Loot(a.opts.Loot); err != nil {
			a.appendMessage(err.Error())
		}
	} else if err := a.session.ToggleInventory(); err != nil {
		return err
	}
	a.log.Info("gui: window %dx%d, %d containers", a.width, a.height, len(a.opts.World.Containers()))

	a.lastTick = time.Now()
	for !a.quit && !rl.WindowShouldClose() {
		now := time.Now()
		dt := max(now.Sub(a.lastTick), 0)
		a.lastTick = now

		a.update(dt.Seconds())

		rl.BeginDrawing()
		rl.ClearBackground(uitheme.BG)
		a.renderer.draw(a.session.Frame())
		a.drawFooter()
		rl.EndDrawing()
	}
	return nil
}

func (a *app) update(dt float64) {
	if a.consoleOpen {
		a.updateConsole()
	} else {
		in := readInput(rl.IsKeyPressed)
		quit, err := applyInput(a.session, in)
		if err != nil {
			a.appendMessage(err.Error())
		}
		a.quit = quit
		if in.OpenConsole {
			a.consoleOpen = true
			a.consoleLine = ""
		}
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			applyClick(a.session, rl.GetMousePosition(), false)
		} else if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
			applyClick(a.session, rl.GetMousePosition(), true)
		}
	}

	before := a.session.Status()
	if _, err := a.session.Step(dt); err != nil {
		a.log.Error("gui: %v", err)
	}
	if status := a.session.Status(); status != before {
		a.appendMessage(status)
	}
}

func (a *app) updateConsole() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.consoleOpen = false
		return
	}
	captureTextInput(&a.consoleLine, 120)
	if !rl.IsKeyPressed(rl.KeyEnter) {
		return
	}
	line := strings.TrimSpace(a.consoleLine)
	a.consoleLine = ""
	a.consoleOpen = false
	if line == "" {
		return
	}
	a.appendMessage("> " + line)
	if _, err := a.session.Execute(line); err != nil {
		a.appendMessage(err.Error())
	}
}

func (a *app) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	a.messages = append(a.messages, line)
	if len(a.messages) > 60 {
		a.messages = append([]string(nil), a.messages[len(a.messages)-60:]...)
	}
}

func (a *app) drawFooter() {
	pad := int32(uitheme.PaddingM)
	y := a.height - pad - uitheme.Type.Small
	uitheme.DrawHintText(hintLine, pad, y)

	y -= uitheme.LineHeight(uitheme.Type.Body)
	if a.consoleOpen {
		uitheme.DrawText("> "+a.consoleLine+"_", pad, y, uitheme.Type.Body, uitheme.AccentBrass)
		y -= uitheme.LineHeight(uitheme.Type.Body)
	}
	for i := len(a.messages) - 1; i >= 0 && i >= len(a.messages)-3; i-- {
		uitheme.DrawText(a.messages[i], pad, y, uitheme.Type.Small, uitheme.TextSecondary)
		y -= uitheme.LineHeight(uitheme.Type.Small)
	}
}
