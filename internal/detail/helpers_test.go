package detail

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/input"
)

// recordingSurface logs draw calls as readable strings.
type recordingSurface struct {
	ops    []string
	clears int
}

func (s *recordingSurface) Clear()             { s.clears++; s.ops = nil }
func (s *recordingSurface) LineHeight() int    { return 36 }
func (s *recordingSurface) TextPadding() int   { return 6 }
func (s *recordingSurface) ContentsWidth() int { return 780 }

func (s *recordingSurface) DrawItemName(icon int, name string, x, y, width int) {
	s.ops = append(s.ops, fmt.Sprintf("name %q icon=%d at %d,%d", name, icon, x, y))
}

func (s *recordingSurface) DrawText(text string, x, y, width int, align Align) {
	s.ops = append(s.ops, fmt.Sprintf("text %q at %d,%d w=%d align=%d", text, x, y, width, align))
}

func (s *recordingSurface) DrawTextEx(text string, x, y int) int {
	s.ops = append(s.ops, fmt.Sprintf("rich %q at %d,%d", text, x, y))
	return len(text)
}

func (s *recordingSurface) ChangeTextColor(color int) {
	s.ops = append(s.ops, fmt.Sprintf("color %d", color))
}

func (s *recordingSurface) ResetTextColor() {
	s.ops = append(s.ops, "reset")
}

// draws drops colour bookkeeping and keeps draw calls only.
func (s *recordingSurface) draws() []string {
	var out []string
	for _, op := range s.ops {
		if op == "reset" || strings.HasPrefix(op, "color ") {
			continue
		}
		out = append(out, op)
	}
	return out
}

type fakeTables struct {
	weapons, armors, skills []string
}

func (f fakeTables) TypeName(kind data.Kind, id int) (string, bool) {
	var t []string
	switch kind {
	case data.KindWeapon:
		t = f.weapons
	case data.KindArmor:
		t = f.armors
	case data.KindSkill:
		t = f.skills
	}
	if id < 0 || id >= len(t) {
		return "", false
	}
	return t[id], true
}

func (fakeTables) ItemTerm() string    { return "Item" }
func (fakeTables) KeyItemTerm() string { return "Key Item" }

var testTables = fakeTables{
	weapons: []string{"", "Dagger", "Axe"},
	armors:  []string{"", "General Armor"},
	skills:  []string{"", "Magic", "Special"},
}

// fakeInput is a scripted InputState.
type fakeInput struct {
	repeated  map[input.Action]bool
	triggered map[input.Action]bool
	pressed   bool
	x, y      int
	clears    int
}

func newFakeInput() *fakeInput {
	return &fakeInput{repeated: map[input.Action]bool{}, triggered: map[input.Action]bool{}}
}

func (f *fakeInput) IsTriggered(a input.Action) bool { return f.triggered[a] }
func (f *fakeInput) IsRepeated(a input.Action) bool  { return f.repeated[a] }
func (f *fakeInput) PointerTriggered() bool          { return f.pressed }
func (f *fakeInput) PointerPosition() (int, int)     { return f.x, f.y }
func (f *fakeInput) Clear() {
	f.clears++
	clear(f.repeated)
	clear(f.triggered)
	f.pressed = false
}

type recordingPlayer struct {
	played []string
	closed int
}

func (p *recordingPlayer) Play(cue config.Cue) { p.played = append(p.played, cue.Name) }
func (p *recordingPlayer) Close() error        { p.closed++; return nil }

type focusProbe struct {
	active      bool
	activations int
}

func (f *focusProbe) Activate()    { f.active = true; f.activations++ }
func (f *focusProbe) Deactivate()  { f.active = false }
func (f *focusProbe) Active() bool { return f.active }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.DetailTypeTag = "T"
	cfg.DetailTextTag = "D"
	cfg.HiddenLabelA = "Relic"
	cfg.HiddenLabelB = "Curio"
	return cfg
}
