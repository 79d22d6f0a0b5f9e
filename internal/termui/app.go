package termui

import (
	"fmt"
	"image"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/input"
	"github.com/appengine-ltd/itemdetail/internal/scene"
)

type AppConfig struct {
	Version  string
	Params   config.Config
	Database *data.Database
	// IconSheet is the path to the 16-column icon PNG. Optional.
	IconSheet string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	sheet, err := loadIconSheet(a.cfg.IconSheet)
	if err != nil {
		return err
	}
	m := newModel(a.cfg, sheet)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	panel       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("2"))
	focused     = panel.BorderForeground(lipgloss.Color("10"))
)

const (
	tickRate  = time.Second / 60
	maxBoxW   = 80
	maxBoxH   = 24
	queueSize = 16
)

type screen int

const (
	screenMenu screen = iota
	screenScene
)

type tickMsg time.Time

// cueLog stands in for a sound device: the status line shows the last cue.
type cueLog struct {
	last  string
	count int
}

func (c *cueLog) Play(cue config.Cue) {
	c.last = cue.Name
	c.count++
}

func (c *cueLog) Close() error { return nil }

type model struct {
	cfg    AppConfig
	sheet  image.Image
	keymap input.Keymap
	queue  *input.Queue
	in     *input.State
	cues   *detail.AudioCueRegistry
	sounds *cueLog

	width, height int

	screen  screen
	idx     int
	context scene.Context
	scene   scene.Scene
	surface *cellSurface
}

func newModel(cfg AppConfig, sheet image.Image) model {
	if cfg.Database == nil {
		cfg.Database = &data.Database{Terms: data.DefaultTerms()}
	}
	km := input.DefaultKeymap(cfg.Params.OpenKey)
	q := input.NewQueue(queueSize)
	in := input.NewState(km)
	in.Attach(q)
	sounds := &cueLog{}
	return model{
		cfg:    cfg,
		sheet:  sheet,
		keymap: km,
		queue:  q,
		in:     in,
		sounds: sounds,
		cues:   detail.NewAudioCueRegistry(sounds, cfg.Params.Cue, detail.DefaultSystemCues()),
		width:  maxBoxW,
		height: maxBoxH + 1,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen == screenScene {
			m = m.step()
		}
		return m, tick()
	case tea.MouseMsg:
		if m.screen == screenScene && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.queue.Enqueue(input.Event{Pointer: true, X: msg.X, Y: msg.Y})
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			_ = m.cues.Close()
			return m, tea.Quit
		}
		if m.screen == screenMenu {
			return m.updateMenu(msg)
		}
		if key, ok := keyCode(msg); ok {
			m.queue.Enqueue(input.Event{Key: key})
		}
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	contexts := scene.Contexts()
	n := len(contexts) + 1
	switch msg.String() {
	case "q":
		_ = m.cues.Close()
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + n - 1) % n
	case "down", "j":
		m.idx = (m.idx + 1) % n
	case "enter", "z":
		if m.idx == len(contexts) {
			_ = m.cues.Close()
			return m, tea.Quit
		}
		m = m.openScene(contexts[m.idx])
	}
	return m, nil
}

func (m model) viewport() detail.Viewport {
	bw := min(m.width, maxBoxW)
	bh := min(m.height-1, maxBoxH)
	return detail.Viewport{ScreenWidth: m.width, ScreenHeight: m.height - 1, BoxWidth: bw, BoxHeight: bh}
}

func (m model) openScene(ctx scene.Context) model {
	v := m.viewport()
	width := v.BoxWidth - 2
	if m.sheet != nil {
		width -= iconSize + 1
	}
	deps := scene.Deps{
		Config:   m.cfg.Params,
		Tables:   m.cfg.Database,
		Cues:     m.cues,
		Viewport: v,
	}
	surface := newCellSurface(width)
	deps.NewSurface = func() detail.Surface { return surface }
	m.surface = surface
	m.context = ctx
	m.scene = scene.NewDemo(ctx, deps, m.cfg.Database)
	m.in.Clear()
	m.screen = screenScene
	return m
}

// step runs one scene tick on the next buffered event.
func (m model) step() model {
	idle := !m.scene.Detail().Active() && !anyListActive(m.scene)
	m.in.Drain(m.queue)
	m.scene.Update(m.in)
	if m.scene.Done() || (idle && m.in.IsTriggered(input.Cancel)) {
		m.scene = nil
		m.surface = nil
		m.in.Clear()
		m.screen = screenMenu
	}
	return m
}

func (m model) View() string {
	if m.screen == screenScene {
		return m.sceneView()
	}

	title := brightGreen.Render("ITEM DETAIL") + dimGreen.Render("  terminal preview")
	ver := dimGreen.Render("v" + m.cfg.Version)

	var b strings.Builder
	b.WriteString(title + "\n" + ver + "\n")
	b.WriteString(border.Render("----------------------------------------") + "\n\n")
	labels := make([]string, 0, len(scene.Contexts())+1)
	for _, ctx := range scene.Contexts() {
		labels = append(labels, ctx.String())
	}
	labels = append(labels, "Quit")
	for i, it := range labels {
		cursor := "  "
		line := green.Render(it)
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(it)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + border.Render("----------------------------------------") + "\n")
	b.WriteString(dimGreen.Render("↑/↓ to move, Enter to select, q to quit") + "\n")
	return b.String()
}

func (m model) sceneView() string {
	v := m.viewport()
	box := m.renderBox(v)
	dx, dy := v.Offset()
	pad := strings.Repeat(" ", max(dx, 0))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(dy, 0)))
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(pad + line + "\n")
	}
	status := fmt.Sprintf("%s  ↑/↓ move  z select  x back  %s details", m.context, keyLabel(m.cfg.Params.OpenKey))
	if m.sounds.last != "" {
		status += "  ♪ " + m.sounds.last
	}
	b.WriteString(dimGreen.Render(status))
	return b.String()
}

// renderBox draws the help window, the open lists side by side and the
// detail window over them, in exactly v.BoxWidth × v.BoxHeight cells.
func (m model) renderBox(v detail.Viewport) string {
	var rows []string
	top := 0
	if h := m.scene.Help(); h != nil && h.Visible() {
		height := min(h.Rect.Height, v.BoxHeight)
		text := strings.Join(detail.SplitLines(h.Text), " ")
		rows = append(rows, boxed(panel, text, v.BoxWidth, height))
		top = height
	}
	bodyH := v.BoxHeight - top
	if bodyH <= 0 {
		return strings.Join(rows, "\n")
	}

	if c := m.scene.Detail(); c.Openness() > 0 {
		rows = append(rows, m.renderDetail(c, v.BoxWidth, bodyH))
		return strings.Join(rows, "\n")
	}

	var open []*scene.ListWindow
	for _, l := range m.scene.Lists() {
		if l.IsOpen() {
			open = append(open, l)
		}
	}
	if len(open) == 0 {
		rows = append(rows, boxed(panel, dimGreen.Render("Nothing to browse. x returns to the menu."), v.BoxWidth, bodyH))
		return strings.Join(rows, "\n")
	}
	cols := make([]string, 0, len(open))
	w := v.BoxWidth / len(open)
	for i, l := range open {
		cw := w
		if i == len(open)-1 {
			cw = v.BoxWidth - w*(len(open)-1)
		}
		cols = append(cols, renderList(l, cw, bodyH))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	return strings.Join(rows, "\n")
}

// renderDetail grows the window from the middle of the body as it opens and
// shows its contents once fully open.
func (m model) renderDetail(c *detail.Controller, width, height int) string {
	h := max(2, height*c.Openness()/255)
	content := ""
	if c.Openness() >= 255 && m.surface != nil {
		content = m.surface.Render(h - 2)
		if m.sheet != nil && c.Entry() != nil {
			if art := renderIcon(m.sheet, c.Entry().IconIndex, iconSize); art != "" {
				content = lipgloss.JoinHorizontal(lipgloss.Top, art+" ", content)
			}
		}
	}
	win := boxed(focused, content, width, h)
	above := (height - h) / 2
	below := height - h - above
	var parts []string
	for i := 0; i < above; i++ {
		parts = append(parts, "")
	}
	parts = append(parts, win)
	for i := 0; i < below; i++ {
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}

func renderList(l *scene.ListWindow, width, height int) string {
	items := l.Items()
	visible := max(height-2, 1)
	first := 0
	if l.Index() >= visible {
		first = l.Index() - visible + 1
	}
	var lines []string
	for i := first; i < len(items) && i < first+visible; i++ {
		lines = append(lines, listRow(items[i], i == l.Index() && l.Active()))
	}
	st := panel
	if l.Active() {
		st = focused
	}
	return boxed(st, strings.Join(lines, "\n"), width, height)
}

func listRow(e *data.Entry, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	if e == nil {
		return cursor + dimGreen.Render("(empty)")
	}
	name := e.Name
	if e.IconIndex > 0 {
		name = iconGlyph + " " + name
	}
	if selected {
		return cursor + brightGreen.Render(name)
	}
	return cursor + green.Render(name)
}

// boxed renders content inside a bordered panel of exactly width × height
// cells, truncating what does not fit.
func boxed(st lipgloss.Style, content string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	return st.Width(width - 2).Height(height - 2).MaxWidth(width).MaxHeight(height).Render(content)
}

func anyListActive(s scene.Scene) bool {
	for _, l := range s.Lists() {
		if l.Active() {
			return true
		}
	}
	return false
}

// keyCode maps a terminal key onto the key codes the keymap uses.
func keyCode(msg tea.KeyMsg) (int32, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return input.KeyUp, true
	case tea.KeyDown:
		return input.KeyDown, true
	case tea.KeyEnter:
		return input.KeyEnter, true
	case tea.KeyEsc:
		return input.KeyEscape, true
	case tea.KeySpace:
		return input.KeySpace, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return 0, false
		}
		r := unicode.ToUpper(msg.Runes[0])
		if r > unicode.MaxASCII {
			return 0, false
		}
		return int32(r), true
	}
	return 0, false
}

func keyLabel(key int32) string {
	if key >= 'A' && key <= 'Z' {
		return string(unicode.ToLower(rune(key)))
	}
	if key >= '0' && key <= '9' {
		return string(rune(key))
	}
	return fmt.Sprintf("key %d", key)
}
