package scene

import (
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/detail"
	"github.com/appengine-ltd/itemdetail/internal/input"
)

// MessageWindow is the part of the map/battle message box that asks the
// player to pick an item. The detail window counts as one of its busy
// sub-windows so the message does not advance underneath it.
type MessageWindow struct {
	itemChoice *ListWindow
	detail     *detail.Controller
	choosing   bool
	// ChosenID is the picked item's id, 0 when the choice was cancelled.
	ChosenID int
}

func (m *MessageWindow) StartItemChoice(items []*data.Entry) {
	m.choosing = true
	m.ChosenID = 0
	m.itemChoice.SetItems(items)
	m.itemChoice.Select(0)
	activate(m.itemChoice)
}

func (m *MessageWindow) IsChoosing() bool { return m.choosing }

func (m *MessageWindow) IsAnySubWindowActive() bool {
	return m.itemChoice.Active() || m.detail.Active()
}

func (m *MessageWindow) finishChoice(id int) {
	m.ChosenID = id
	m.choosing = false
	m.itemChoice.Close()
	m.itemChoice.Deactivate()
}

func newMessageWindow(b *Base, cues *detail.AudioCueRegistry) *MessageWindow {
	m := &MessageWindow{detail: b.detail}
	m.itemChoice = b.addList(NewListWindow("eventItem", detail.RequireEntry, cues))
	m.itemChoice.SetHandler(input.OK, func(l *ListWindow) {
		id := 0
		if e := l.Item(); e != nil {
			id = e.ID
		}
		m.finishChoice(id)
	})
	m.itemChoice.SetHandler(input.Cancel, func(*ListWindow) { m.finishChoice(0) })
	return m
}

// MapScene hosts the event item choice on the field map.
type MapScene struct {
	*Base
	Message *MessageWindow
}

func NewMapScene(deps Deps) *MapScene {
	b := newBase(deps)
	return &MapScene{Base: b, Message: newMessageWindow(b, deps.Cues)}
}

// ItemScene is the inventory menu.
type ItemScene struct {
	*Base
	Items *ListWindow
	// Used collects entries confirmed with OK.
	Used []*data.Entry
}

func NewItemScene(deps Deps, items []*data.Entry) *ItemScene {
	b := newBase(deps)
	s := &ItemScene{Base: b}
	help := b.createHelpWindow(deps.Viewport)
	s.Items = b.addList(NewListWindow("item", detail.RequireEntry, deps.Cues))
	s.Items.SetHelpWindow(help)
	s.Items.SetItems(items)
	s.Items.SetHandler(input.OK, func(l *ListWindow) {
		s.Used = append(s.Used, l.Item())
		l.Activate()
	})
	s.Items.SetHandler(input.Cancel, func(*ListWindow) { b.finish() })
	activate(s.Items)
	return s
}

// SkillScene lists one actor's skills.
type SkillScene struct {
	*Base
	Skills *ListWindow
	Used   []*data.Entry
}

func NewSkillScene(deps Deps, skills []*data.Entry) *SkillScene {
	b := newBase(deps)
	s := &SkillScene{Base: b}
	help := b.createHelpWindow(deps.Viewport)
	s.Skills = b.addList(NewListWindow("skill", detail.RequireEntry, deps.Cues))
	s.Skills.SetHelpWindow(help)
	s.Skills.SetItems(skills)
	s.Skills.SetHandler(input.OK, func(l *ListWindow) {
		s.Used = append(s.Used, l.Item())
		l.Activate()
	})
	s.Skills.SetHandler(input.Cancel, func(*ListWindow) { b.finish() })
	activate(s.Skills)
	return s
}

// EquipScene pairs the slot list with the candidate list for the chosen
// slot. Both can open the detail window.
type EquipScene struct {
	*Base
	Slots      *ListWindow
	Candidates *ListWindow

	equipped   []*data.Entry
	candidates func(slot int) []*data.Entry
}

// NewEquipScene takes the current equipment (nil for an empty slot) and a
// source of candidates per slot.
func NewEquipScene(deps Deps, equipped []*data.Entry, candidates func(slot int) []*data.Entry) *EquipScene {
	b := newBase(deps)
	s := &EquipScene{Base: b, equipped: append([]*data.Entry(nil), equipped...), candidates: candidates}
	help := b.createHelpWindow(deps.Viewport)

	s.Slots = b.addList(NewListWindow("equipSlot", detail.RequireEntry, deps.Cues))
	s.Slots.SetHelpWindow(help)
	s.Slots.SetItems(s.equipped)
	s.Slots.SetHandler(input.OK, s.onSlotOK)
	s.Slots.SetHandler(input.Cancel, func(*ListWindow) { b.finish() })

	s.Candidates = b.addList(NewListWindow("equipItem", detail.RequireEntry, deps.Cues))
	s.Candidates.SetHelpWindow(help)
	s.Candidates.SetHandler(input.OK, s.onCandidateOK)
	s.Candidates.SetHandler(input.Cancel, s.onCandidateCancel)

	activate(s.Slots)
	return s
}

func (s *EquipScene) Equipped() []*data.Entry { return s.equipped }

func (s *EquipScene) onSlotOK(l *ListWindow) {
	var list []*data.Entry
	if s.candidates != nil {
		list = s.candidates(l.Index())
	}
	// The trailing nil row unequips the slot.
	s.Candidates.SetItems(append(list, nil))
	s.Candidates.Select(0)
	activate(s.Candidates)
}

func (s *EquipScene) onCandidateOK(l *ListWindow) {
	slot := s.Slots.Index()
	if slot >= 0 && slot < len(s.equipped) {
		s.equipped[slot] = l.Item()
		s.Slots.SetItems(s.equipped)
	}
	s.backToSlots()
}

func (s *EquipScene) onCandidateCancel(*ListWindow) {
	s.backToSlots()
}

func (s *EquipScene) backToSlots() {
	s.Candidates.Close()
	s.Candidates.Deactivate()
	activate(s.Slots)
}

// ShopScene hosts the buy and sell lists. With neither list focused the
// scene sits on its command row, driven by StartBuy, StartSell and Leave.
type ShopScene struct {
	*Base
	Buy  *ListWindow
	Sell *ListWindow

	Purchases []*data.Entry
	Sales     []*data.Entry
}

func NewShopScene(deps Deps, goods []*data.Entry, inventory []*data.Entry) *ShopScene {
	b := newBase(deps)
	s := &ShopScene{Base: b}
	help := b.createHelpWindow(deps.Viewport)

	s.Buy = b.addList(NewListWindow("shopBuy", detail.RequireEntry, deps.Cues))
	s.Buy.SetHelpWindow(help)
	s.Buy.SetItems(goods)
	s.Buy.SetHandler(input.OK, func(l *ListWindow) {
		s.Purchases = append(s.Purchases, l.Item())
		l.Activate()
	})
	s.Buy.SetHandler(input.Cancel, s.toCommand)

	s.Sell = b.addList(NewListWindow("shopSell", detail.RequireEntry, deps.Cues))
	s.Sell.SetHelpWindow(help)
	s.Sell.SetItems(inventory)
	s.Sell.SetHandler(input.OK, func(l *ListWindow) {
		s.Sales = append(s.Sales, l.Item())
		l.Activate()
	})
	s.Sell.SetHandler(input.Cancel, s.toCommand)
	return s
}

func (s *ShopScene) StartBuy() {
	s.Sell.Close()
	s.Sell.Deactivate()
	activate(s.Buy)
}

func (s *ShopScene) StartSell() {
	s.Buy.Close()
	s.Buy.Deactivate()
	activate(s.Sell)
}

func (s *ShopScene) Leave() { s.finish() }

func (s *ShopScene) toCommand(l *ListWindow) {
	l.Close()
	l.Deactivate()
}

// BattleScene hosts skill and item selection plus the battle message
// window's item choice.
type BattleScene struct {
	*Base
	Skills  *ListWindow
	Items   *ListWindow
	Message *MessageWindow

	// Chosen is the last confirmed skill or item, nil after a cancel.
	Chosen *data.Entry
}

func NewBattleScene(deps Deps) *BattleScene {
	b := newBase(deps)
	s := &BattleScene{Base: b}
	help := b.createHelpWindow(deps.Viewport)

	s.Skills = b.addList(NewListWindow("battleSkill", detail.RequireEntry, deps.Cues))
	s.Skills.SetHelpWindow(help)
	s.Skills.SetHandler(input.OK, s.onChoose)
	s.Skills.SetHandler(input.Cancel, s.onCancel)

	s.Items = b.addList(NewListWindow("battleItem", detail.RequireEntry, deps.Cues))
	s.Items.SetHelpWindow(help)
	s.Items.SetHandler(input.OK, s.onChoose)
	s.Items.SetHandler(input.Cancel, s.onCancel)

	s.Message = newMessageWindow(b, deps.Cues)
	return s
}

func (s *BattleScene) StartSkillSelection(skills []*data.Entry) {
	s.Skills.SetItems(skills)
	s.Skills.Select(0)
	activate(s.Skills)
}

func (s *BattleScene) StartItemSelection(items []*data.Entry) {
	s.Items.SetItems(items)
	s.Items.Select(0)
	activate(s.Items)
}

// IsAnyInputWindowActive keeps the battle from advancing while the player
// reads a description.
func (s *BattleScene) IsAnyInputWindowActive() bool {
	for _, l := range s.lists {
		if l.Active() {
			return true
		}
	}
	return s.detail.Active()
}

func (s *BattleScene) onChoose(l *ListWindow) {
	s.Chosen = l.Item()
	l.Close()
}

func (s *BattleScene) onCancel(l *ListWindow) {
	s.Chosen = nil
	l.Close()
}
