package gui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/input"
	"github.com/appengine-ltd/itemdetail/internal/scene"
	"github.com/appengine-ltd/itemdetail/internal/termui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Settings config.Settings
	Params   config.Config
	Database *data.Database
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newDemoUI(a.cfg)
	return ui.Run()
}

type screen int

const (
	screenMenu screen = iota
	screenScene
)

type menuAction int

const (
	actionBrowse menuAction = iota
	actionClassicUI
	actionQuit
)

type menuItem struct {
	Label   string
	Action  menuAction
	Context scene.Context
}

type demoUI struct {
	cfg      AppConfig
	viewport detail.Viewport
	keymap   input.Keymap
	in       *input.State
	cues     *detail.AudioCueRegistry

	screen     screen
	menuCursor int
	context    scene.Context
	scene      scene.Scene
	surface    *windowSurface

	quit          bool
	launchClassic bool
}

func newDemoUI(cfg AppConfig) *demoUI {
	if cfg.Database == nil {
		cfg.Database = &data.Database{Terms: data.DefaultTerms()}
	}
	s := cfg.Settings
	km := input.DefaultKeymap(cfg.Params.OpenKey)
	return &demoUI{
		cfg: cfg,
		viewport: detail.Viewport{
			ScreenWidth:  int(s.Width),
			ScreenHeight: int(s.Height),
			BoxWidth:     int(s.BoxWidth),
			BoxHeight:    int(s.BoxHeight),
		},
		keymap: km,
		in:     input.NewState(km),
		screen: screenMenu,
	}
}

func (ui *demoUI) Run() error {
	s := ui.cfg.Settings
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(s.Width, s.Height, "itemdetail")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	initTypography(s.FontFile, databaseText(ui.cfg.Database))
	initSkin(s.WindowFrame(), s.IconSheet())
	ui.cues = detail.NewAudioCueRegistry(newSoundPlayer(s.SoundDir), ui.cfg.Params.Cue, detail.DefaultSystemCues())

	for !ui.quit && !rl.WindowShouldClose() {
		ui.update()
		if ui.launchClassic {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	if err := ui.cues.Close(); err != nil {
		return fmt.Errorf("closing audio: %w", err)
	}
	unloadSkin()
	shutdownTypography()
	rl.CloseWindow()

	if ui.launchClassic {
		return termui.NewApp(termui.AppConfig{
			Version:   ui.cfg.Version,
			Params:    ui.cfg.Params,
			Database:  ui.cfg.Database,
			IconSheet: s.IconSheet(),
		}).Run()
	}
	return nil
}

func (ui *demoUI) update() {
	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenScene:
		ui.updateScene()
	}
}

func (ui *demoUI) draw() {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenScene:
		drawScene(ui.scene, ui.surface, ui.viewport)
		hint := fmt.Sprintf("%s   Up/Down move, Z/Enter select, X/Esc back, %s or tap help for details",
			ui.context, keyName(ui.cfg.Params.OpenKey))
		drawText(hint, 12, int32(rl.GetScreenHeight())-typeScale.Small-8, typeScale.Small, AppTheme.TextMuted)
	}
}

func (ui *demoUI) updateMenu() {
	items := ui.menuItems()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuCursor = wrapIndex(ui.menuCursor+1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = wrapIndex(ui.menuCursor-1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyZ) {
		switch item := items[ui.menuCursor]; item.Action {
		case actionBrowse:
			ui.openScene(item.Context)
		case actionClassicUI:
			ui.launchClassic = true
		case actionQuit:
			ui.quit = true
		}
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *demoUI) openScene(ctx scene.Context) {
	width := int32(ui.viewport.BoxWidth) - int32(2*windowPadding)
	deps := scene.Deps{
		Config:   ui.cfg.Params,
		Tables:   ui.cfg.Database,
		Cues:     ui.cues,
		Viewport: ui.viewport,
		NewSurface: func() detail.Surface {
			ui.surface = newWindowSurface(width)
			return ui.surface
		},
	}
	ui.context = ctx
	ui.scene = scene.NewDemo(ctx, deps, ui.cfg.Database)
	// The key that picked the menu entry is still down; record it as held.
	ui.in.Update(pollInput(ui.keymap))
	ui.in.Clear()
	ui.screen = screenScene
}

func (ui *demoUI) updateScene() {
	ui.in.Update(pollInput(ui.keymap))
	idle := !ui.scene.Detail().Active() && !anyListActive(ui.scene)
	ui.scene.Update(ui.in)
	if ui.scene.Done() || (idle && ui.in.IsTriggered(input.Cancel)) {
		ui.scene = nil
		ui.surface = nil
		ui.in.Clear()
		ui.screen = screenMenu
	}
}

func (ui *demoUI) drawMenu() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	titleRect := rl.NewRectangle(20, 20, w-40, 110)
	drawNineSlice(skin.Window, titleRect, rl.White)
	title := "ITEM DETAIL"
	drawText(title, int32(titleRect.X+(titleRect.Width-float32(measureText(title, 40)))/2), int32(titleRect.Y)+20, 40, AppTheme.TextPrimary)
	version := fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate)
	drawText(version, int32(titleRect.X+(titleRect.Width-float32(measureText(version, typeScale.Small)))/2), int32(titleRect.Y)+72, typeScale.Small, AppTheme.TextMuted)

	items := ui.menuItems()
	menuHeight := min(float32(110+len(items)*64), h-200)
	menuRect := rl.NewRectangle(w/2-230, 160, 460, menuHeight)
	drawNineSlice(skin.Window, menuRect, rl.White)
	for i, item := range items {
		y := int32(menuRect.Y) + 40 + int32(i*64)
		r := rl.NewRectangle(menuRect.X+36, float32(y), menuRect.Width-72, 48)
		if i == ui.menuCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(AppTheme.Accent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, AppTheme.Accent)
			drawText(item.Label, int32(r.X)+18, y+11, typeScale.Body, AppTheme.Accent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(AppTheme.Panel, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, AppTheme.Border)
			drawText(item.Label, int32(r.X)+18, y+11, typeScale.Body, AppTheme.TextPrimary)
		}
	}

	drawHint("Up/Down to move, Enter to select, Q to quit", rl.NewRectangle(20, h-64, w-40, 40))
}

func (ui *demoUI) menuItems() []menuItem {
	var items []menuItem
	for _, ctx := range scene.Contexts() {
		items = append(items, menuItem{Label: ctx.String(), Action: actionBrowse, Context: ctx})
	}
	items = append(items,
		menuItem{Label: "Terminal Preview", Action: actionClassicUI},
		menuItem{Label: "Quit", Action: actionQuit},
	)
	return items
}

func anyListActive(s scene.Scene) bool {
	for _, l := range s.Lists() {
		if l.Active() {
			return true
		}
	}
	return false
}

// databaseText gathers every string the demo may draw so the font atlas
// covers it.
func databaseText(db *data.Database) string {
	var b strings.Builder
	for _, e := range db.All() {
		b.WriteString(e.Name)
		b.WriteString(e.Description)
		for _, v := range e.Meta {
			b.WriteString(v)
		}
	}
	for _, table := range [][]string{db.WeaponTypes, db.ArmorTypes, db.SkillTypes} {
		for _, name := range table {
			b.WriteString(name)
		}
	}
	b.WriteString(db.Terms.Item)
	b.WriteString(db.Terms.KeyItem)
	return b.String()
}

func keyName(key int32) string {
	if key >= 'A' && key <= 'Z' || key >= '0' && key <= '9' {
		return string(rune(key))
	}
	return fmt.Sprintf("key %d", key)
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	return i % size
}
