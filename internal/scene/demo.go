package scene

import (
	"fmt"

	"github.com/appengine-ltd/itemdetail/internal/data"
)

// Context names one of the browsing contexts that can host the detail window.
type Context int

const (
	ContextMap Context = iota
	ContextItem
	ContextSkill
	ContextEquip
	ContextShop
	ContextBattle
)

var contextNames = [...]string{"Map item choice", "Items", "Skills", "Equipment", "Shop", "Battle"}

func (c Context) String() string {
	if c < 0 || int(c) >= len(contextNames) {
		return fmt.Sprintf("Context(%d)", int(c))
	}
	return contextNames[c]
}

// Contexts lists every context in menu order.
func Contexts() []Context {
	return []Context{ContextMap, ContextItem, ContextSkill, ContextEquip, ContextShop, ContextBattle}
}

// NewDemo builds ctx over db and leaves it in its browsing state, with a
// list focused and ready for the detail trigger.
func NewDemo(ctx Context, deps Deps, db *data.Database) Scene {
	if db == nil {
		db = &data.Database{}
	}
	inventory := append(append(append([]*data.Entry(nil), db.Items...), db.Weapons...), db.Armors...)
	switch ctx {
	case ContextMap:
		s := NewMapScene(deps)
		s.Message.StartItemChoice(db.Items)
		return s
	case ContextSkill:
		return NewSkillScene(deps, db.Skills)
	case ContextEquip:
		return NewEquipScene(deps, starterEquipment(db), func(slot int) []*data.Entry {
			if slot == 0 {
				return db.Weapons
			}
			return db.Armors
		})
	case ContextShop:
		s := NewShopScene(deps, inventory, db.Items)
		s.StartBuy()
		return s
	case ContextBattle:
		s := NewBattleScene(deps)
		s.StartSkillSelection(db.Skills)
		return s
	default:
		return NewItemScene(deps, inventory)
	}
}

// starterEquipment fills a weapon slot and four armor slots from the first
// entries of each table.
func starterEquipment(db *data.Database) []*data.Entry {
	slots := make([]*data.Entry, 5)
	if len(db.Weapons) > 0 {
		slots[0] = db.Weapons[0]
	}
	for i := 1; i < len(slots) && i-1 < len(db.Armors); i++ {
		slots[i] = db.Armors[i-1]
	}
	return slots
}
