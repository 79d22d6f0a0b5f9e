package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/input"
)

type recordingPlayer struct {
	played []string
}

func (p *recordingPlayer) Play(cue config.Cue) { p.played = append(p.played, cue.Name) }
func (p *recordingPlayer) Close() error        { return nil }

func (p *recordingPlayer) count(name string) int {
	n := 0
	for _, s := range p.played {
		if s == name {
			n++
		}
	}
	return n
}

type countingSurface struct {
	nopSurface
	rich []string
}

func (s *countingSurface) Clear() { s.rich = nil }
func (s *countingSurface) DrawTextEx(text string, x, y int) int {
	s.rich = append(s.rich, text)
	return 0
}

type harness struct {
	deps    Deps
	player  *recordingPlayer
	in      *input.State
	surface *countingSurface
	db      *data.Database
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{player: &recordingPlayer{}, surface: &countingSurface{}}
	cfg := config.Default()
	cfg.DetailTypeTag = "T"
	cfg.DetailTextTag = "D"
	h.db = &data.Database{
		Items: []*data.Entry{
			{ID: 1, Kind: data.KindItem, Name: "Potion", Description: "Heals 500 HP.", SubtypeID: 1, Meta: map[string]string{"D": "brewed\nfresh"}},
			{ID: 2, Kind: data.KindItem, Name: "Old Key", Description: "Opens something.", SubtypeID: 2},
		},
		Weapons: []*data.Entry{
			{ID: 1, Kind: data.KindWeapon, Name: "Hand Axe", SubtypeID: 2, Meta: map[string]string{"T": "Light Axe"}},
			{ID: 2, Kind: data.KindWeapon, Name: "Sword", SubtypeID: 1},
		},
		Skills: []*data.Entry{
			{ID: 1, Kind: data.KindSkill, Name: "Fire", SubtypeID: 1},
		},
		WeaponTypes: []string{"", "Sword", "Axe"},
		SkillTypes:  []string{"", "Magic"},
		Terms:       data.DefaultTerms(),
	}
	h.deps = Deps{
		Config:     cfg,
		Tables:     h.db,
		Cues:       detail.NewAudioCueRegistry(h.player, cfg.Cue, detail.DefaultSystemCues()),
		Viewport:   detail.Viewport{ScreenWidth: 816, ScreenHeight: 624, BoxWidth: 816, BoxHeight: 624},
		NewSurface: func() detail.Surface { return h.surface },
	}
	h.in = input.NewState(input.DefaultKeymap(cfg.OpenKey))
	return h
}

// press runs one tick with key held, then one idle tick.
func (h *harness) press(s Scene, key int32) {
	h.in.Update(input.Sample{Down: []int32{key}})
	s.Update(h.in)
	h.in.Update(input.Sample{})
	s.Update(h.in)
}

func (h *harness) tap(s Scene, x, y int) {
	h.in.Update(input.Sample{Pointer: input.Pointer{X: x, Y: y, Pressed: true}})
	s.Update(h.in)
	h.in.Update(input.Sample{})
	s.Update(h.in)
}

func (h *harness) settle(s Scene) {
	for i := 0; i < 10; i++ {
		h.in.Update(input.Sample{})
		s.Update(h.in)
	}
}

func TestItemSceneOpensAndClosesDetail(t *testing.T) {
	h := newHarness(t)
	s := NewItemScene(h.deps, h.db.Items)

	h.press(s, h.deps.Config.OpenKey)
	if s.Items.Active() {
		t.Fatalf("expected item list to lose focus")
	}
	if s.Detail().State() != detail.StateActive || s.Detail().Entry() != h.db.Items[0] {
		t.Fatalf("expected detail active on Potion, got %s %v", s.Detail().State(), s.Detail().Entry())
	}
	if diff := cmp.Diff([]string{"Heals 500 HP.", "brewed", "fresh"}, h.surface.rich); diff != "" {
		t.Fatalf("rendered text mismatch (-want +got):\n%s", diff)
	}
	if h.player.count("Book1") != 1 {
		t.Fatalf("expected open cue, got %v", h.player.played)
	}

	h.settle(s)
	h.press(s, input.KeyEscape)
	if s.Detail().Visible() {
		t.Fatalf("expected cancel to close the detail window")
	}
	if !s.Items.Active() || s.MainList() != s.Items {
		t.Fatalf("expected item list to regain focus")
	}
	if s.Done() {
		t.Fatalf("expected cancel to be consumed by the detail window, not the scene")
	}
}

func TestOpenKeyTogglesDetailClosed(t *testing.T) {
	h := newHarness(t)
	s := NewItemScene(h.deps, h.db.Items)

	h.press(s, h.deps.Config.OpenKey)
	h.settle(s)
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().Visible() {
		t.Fatalf("expected open key to toggle the window closed")
	}
	if !s.Items.Active() {
		t.Fatalf("expected list to regain focus")
	}
	if h.player.count("Book1") != 2 {
		t.Fatalf("expected open cue on open and close, got %v", h.player.played)
	}
}

func TestTapOnHelpWindowOpensDetail(t *testing.T) {
	h := newHarness(t)
	s := NewItemScene(h.deps, h.db.Items)
	s.Items.Select(1)

	h.tap(s, 400, 500)
	if s.Detail().Visible() {
		t.Fatalf("expected tap outside help window to do nothing")
	}
	h.tap(s, 400, 20)
	if s.Detail().Entry() != h.db.Items[1] || !s.Detail().Visible() {
		t.Fatalf("expected tap on help window to open Old Key")
	}
	if s.Help().Text != "Opens something." {
		t.Fatalf("expected help text to follow the cursor, got %q", s.Help().Text)
	}
}

func TestBlankSelectionBuzzes(t *testing.T) {
	h := newHarness(t)
	s := NewItemScene(h.deps, nil)

	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().State() != detail.StateClosed {
		t.Fatalf("expected detail to stay closed, got %s", s.Detail().State())
	}
	if h.player.count("Buzzer1") != 1 || h.player.count("Book1") != 0 {
		t.Fatalf("expected buzzer instead of open cue, got %v", h.player.played)
	}
	if !s.Items.Active() {
		t.Fatalf("expected list to keep focus")
	}
}

func TestRebindSameEntryDoesNotRedraw(t *testing.T) {
	h := newHarness(t)
	s := NewItemScene(h.deps, h.db.Items)

	h.press(s, h.deps.Config.OpenKey)
	h.settle(s)
	h.press(s, input.KeyEscape)
	h.settle(s)
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().RenderCount() != 1 {
		t.Fatalf("expected a single render for the same entry, got %d", s.Detail().RenderCount())
	}

	h.settle(s)
	h.press(s, input.KeyEscape)
	h.press(s, input.KeyDown)
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().RenderCount() != 2 {
		t.Fatalf("expected a redraw after moving the cursor, got %d", s.Detail().RenderCount())
	}
}

func TestListCursorAndConfirm(t *testing.T) {
	h := newHarness(t)
	s := NewItemScene(h.deps, h.db.Items)

	h.press(s, input.KeyDown)
	h.press(s, input.KeyDown)
	if s.Items.Index() != 0 {
		t.Fatalf("expected cursor to wrap to 0, got %d", s.Items.Index())
	}
	h.press(s, input.KeyEnter)
	if len(s.Used) != 1 || s.Used[0] != h.db.Items[0] {
		t.Fatalf("expected Potion confirmed, got %v", s.Used)
	}
	h.press(s, input.KeyEscape)
	if !s.Done() {
		t.Fatalf("expected cancel on the list to leave the scene")
	}
}

func TestEquipSceneSlotsAndCandidates(t *testing.T) {
	h := newHarness(t)
	s := NewEquipScene(h.deps, []*data.Entry{h.db.Weapons[0], nil}, func(slot int) []*data.Entry {
		if slot == 0 {
			return h.db.Weapons
		}
		return nil
	})

	h.press(s, input.KeyDown)
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().Visible() || h.player.count("Buzzer1") != 1 {
		t.Fatalf("expected empty slot to buzz")
	}

	h.press(s, input.KeyUp)
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().Entry() != h.db.Weapons[0] {
		t.Fatalf("expected slot detail to show Hand Axe")
	}
	h.settle(s)
	h.press(s, input.KeyEscape)
	if !s.Slots.Active() {
		t.Fatalf("expected slot list to regain focus")
	}

	h.press(s, input.KeyEnter)
	if !s.Candidates.Active() {
		t.Fatalf("expected candidate list focused")
	}
	h.press(s, input.KeyDown)
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().Entry() != h.db.Weapons[1] || s.MainList() != s.Candidates {
		t.Fatalf("expected candidate detail for Sword")
	}
	h.settle(s)
	h.press(s, input.KeyEscape)
	if !s.Candidates.Active() || s.Slots.Active() {
		t.Fatalf("expected candidate list to regain focus, not the slots")
	}

	h.press(s, input.KeyEnter)
	if s.Equipped()[0] != h.db.Weapons[1] || !s.Slots.Active() {
		t.Fatalf("expected Sword equipped and slots focused, got %v", s.Equipped())
	}
}

func TestShopSceneBuyAndSell(t *testing.T) {
	h := newHarness(t)
	s := NewShopScene(h.deps, h.db.Weapons, h.db.Items)

	s.StartBuy()
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().Entry() != h.db.Weapons[0] {
		t.Fatalf("expected buy list detail")
	}
	h.settle(s)
	h.press(s, input.KeyEscape)
	h.press(s, input.KeyEnter)
	if len(s.Purchases) != 1 {
		t.Fatalf("expected a purchase, got %v", s.Purchases)
	}
	h.press(s, input.KeyEscape)
	if s.Buy.Active() || s.Buy.IsOpen() {
		t.Fatalf("expected buy list closed after cancel")
	}

	s.StartSell()
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().Entry() != h.db.Items[0] || s.MainList() != s.Sell {
		t.Fatalf("expected sell list detail")
	}
	h.settle(s)
	h.press(s, input.KeyEscape)
	if !s.Sell.Active() {
		t.Fatalf("expected sell list to regain focus")
	}
	s.Leave()
	if !s.Done() {
		t.Fatalf("expected leave to finish the scene")
	}
}

func TestSkillSceneUsesSkillTypeCategory(t *testing.T) {
	h := newHarness(t)
	s := NewSkillScene(h.deps, h.db.Skills)
	h.press(s, h.deps.Config.OpenKey)
	if s.Detail().Entry() != h.db.Skills[0] {
		t.Fatalf("expected skill detail")
	}
	got := detail.Resolve(s.Detail().Entry(), h.deps.Config, h.db).Category
	if got != "Magic" {
		t.Fatalf("expected Magic category, got %q", got)
	}
}

func TestMapItemChoiceBlocksMessageWhileReading(t *testing.T) {
	h := newHarness(t)
	s := NewMapScene(h.deps)
	s.Message.StartItemChoice(h.db.Items)

	h.press(s, h.deps.Config.OpenKey)
	if !s.Message.IsAnySubWindowActive() {
		t.Fatalf("expected message window to report the detail window busy")
	}
	if s.Message.itemChoice.Active() {
		t.Fatalf("expected item choice to lose focus")
	}
	h.settle(s)
	h.press(s, input.KeyEscape)
	h.press(s, input.KeyDown)
	h.press(s, input.KeyEnter)
	if s.Message.IsChoosing() || s.Message.ChosenID != 2 {
		t.Fatalf("expected Old Key chosen, got %d", s.Message.ChosenID)
	}
	if s.Message.IsAnySubWindowActive() {
		t.Fatalf("expected message window idle after the choice")
	}
}

func TestBattleSceneInputWindowsIncludeDetail(t *testing.T) {
	h := newHarness(t)
	s := NewBattleScene(h.deps)
	if s.IsAnyInputWindowActive() {
		t.Fatalf("expected idle battle")
	}

	s.StartItemSelection(h.db.Items)
	h.press(s, h.deps.Config.OpenKey)
	if !s.Detail().Active() || s.Items.Active() {
		t.Fatalf("expected detail to own focus")
	}
	if !s.IsAnyInputWindowActive() {
		t.Fatalf("expected detail window to count as an input window")
	}
	h.settle(s)
	h.press(s, input.KeyEscape)
	h.press(s, input.KeyEnter)
	if s.Chosen != h.db.Items[0] {
		t.Fatalf("expected Potion chosen, got %v", s.Chosen)
	}

	s.StartSkillSelection(h.db.Skills)
	h.press(s, input.KeyEscape)
	if s.Chosen != nil || s.IsAnyInputWindowActive() {
		t.Fatalf("expected cancelled skill selection")
	}
}

func TestFocusIsNeverSharedWithDetail(t *testing.T) {
	h := newHarness(t)
	s := NewItemScene(h.deps, h.db.Items)
	keys := []int32{h.deps.Config.OpenKey, 0, 0, 0, 0, 0, 0, 0, 0, input.KeyEscape, input.KeyDown, h.deps.Config.OpenKey}
	for _, k := range keys {
		var down []int32
		if k != 0 {
			down = []int32{k}
		}
		h.in.Update(input.Sample{Down: down})
		s.Update(h.in)
		if s.Detail().Active() && s.Items.Active() {
			t.Fatalf("detail and list active at the same time")
		}
	}
}

func TestNewDemoLeavesAListFocused(t *testing.T) {
	h := newHarness(t)
	for _, ctx := range Contexts() {
		s := NewDemo(ctx, h.deps, h.db)
		focused := 0
		for _, l := range s.Lists() {
			if l.Active() {
				focused++
			}
		}
		if focused != 1 {
			t.Fatalf("%s: expected exactly one focused list, got %d", ctx, focused)
		}
		if s.Detail().Visible() {
			t.Fatalf("%s: expected detail window hidden", ctx)
		}
	}
}

func TestNewDemoEquipSlots(t *testing.T) {
	h := newHarness(t)
	s := NewDemo(ContextEquip, h.deps, h.db).(*EquipScene)
	slots := s.Equipped()
	if len(slots) != 5 || slots[0] != h.db.Weapons[0] || slots[1] != nil {
		t.Fatalf("unexpected starter equipment %v", slots)
	}
}

func TestContextString(t *testing.T) {
	if ContextShop.String() != "Shop" {
		t.Fatalf("expected Shop, got %q", ContextShop.String())
	}
	if Context(42).String() != "Context(42)" {
		t.Fatalf("unexpected out-of-range name %q", Context(42).String())
	}
}
