package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Terms holds the vocabulary labels the category fallback needs.
type Terms struct {
	Item    string
	KeyItem string
}

type Database struct {
	Items   []*Entry
	Weapons []*Entry
	Armors  []*Entry
	Skills  []*Entry

	WeaponTypes []string
	ArmorTypes  []string
	SkillTypes  []string
	Terms       Terms
}

func DefaultTerms() Terms {
	return Terms{Item: "アイテム", KeyItem: "大事なもの"}
}

// TypeName looks up a subtype label. Unknown ids report false.
func (db *Database) TypeName(kind Kind, id int) (string, bool) {
	if db == nil {
		return "", false
	}
	var table []string
	switch kind {
	case KindWeapon:
		table = db.WeaponTypes
	case KindArmor:
		table = db.ArmorTypes
	case KindSkill:
		table = db.SkillTypes
	default:
		return "", false
	}
	if id < 0 || id >= len(table) {
		return "", false
	}
	return table[id], true
}

func (db *Database) ItemTerm() string    { return db.Terms.Item }
func (db *Database) KeyItemTerm() string { return db.Terms.KeyItem }

// Lookup finds an entry by kind and id.
func (db *Database) Lookup(kind Kind, id int) *Entry {
	if db == nil {
		return nil
	}
	var list []*Entry
	switch kind {
	case KindItem:
		list = db.Items
	case KindWeapon:
		list = db.Weapons
	case KindArmor:
		list = db.Armors
	case KindSkill:
		list = db.Skills
	}
	for _, e := range list {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// All returns every entry in table order: items, weapons, armors, skills.
func (db *Database) All() []*Entry {
	out := make([]*Entry, 0, len(db.Items)+len(db.Weapons)+len(db.Armors)+len(db.Skills))
	out = append(out, db.Items...)
	out = append(out, db.Weapons...)
	out = append(out, db.Armors...)
	out = append(out, db.Skills...)
	return out
}

// LoadDatabase reads the data tables from dir. Missing table files load as
// empty tables; malformed files are errors.
func LoadDatabase(dir string) (*Database, error) {
	db := &Database{Terms: DefaultTerms()}
	var err error
	if db.Items, err = loadTable(filepath.Join(dir, "Items.json"), KindItem, "itypeId"); err != nil {
		return nil, err
	}
	if db.Weapons, err = loadTable(filepath.Join(dir, "Weapons.json"), KindWeapon, "wtypeId"); err != nil {
		return nil, err
	}
	if db.Armors, err = loadTable(filepath.Join(dir, "Armors.json"), KindArmor, "atypeId"); err != nil {
		return nil, err
	}
	if db.Skills, err = loadTable(filepath.Join(dir, "Skills.json"), KindSkill, "stypeId"); err != nil {
		return nil, err
	}
	if err := loadSystem(filepath.Join(dir, "System.json"), db); err != nil {
		return nil, err
	}
	return db, nil
}

func readJSON(path string) (gjson.Result, bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return gjson.Result{}, false, nil
	}
	if err != nil {
		return gjson.Result{}, false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, false, fmt.Errorf("parse %s: invalid json", filepath.Base(path))
	}
	return gjson.ParseBytes(raw), true, nil
}

func loadTable(path string, kind Kind, subtypeKey string) ([]*Entry, error) {
	root, ok, err := readJSON(path)
	if err != nil || !ok {
		return nil, err
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("parse %s: expected an array", filepath.Base(path))
	}
	var out []*Entry
	for _, rec := range root.Array() {
		// Slot 0 and deleted records are null.
		if !rec.IsObject() {
			continue
		}
		e := NewEntry(kind, int(rec.Get("id").Int()), rec.Get("name").String(), rec.Get("note").String())
		e.IconIndex = int(rec.Get("iconIndex").Int())
		e.Description = rec.Get("description").String()
		e.SubtypeID = int(rec.Get(subtypeKey).Int())
		out = append(out, e)
	}
	return out, nil
}

func loadSystem(path string, db *Database) error {
	root, ok, err := readJSON(path)
	if err != nil || !ok {
		return err
	}
	db.WeaponTypes = stringArray(root.Get("weaponTypes"))
	db.ArmorTypes = stringArray(root.Get("armorTypes"))
	db.SkillTypes = stringArray(root.Get("skillTypes"))
	if v := root.Get("terms.commands.4"); v.Exists() && v.String() != "" {
		db.Terms.Item = v.String()
	}
	if v := root.Get("terms.commands.14"); v.Exists() && v.String() != "" {
		db.Terms.KeyItem = v.String()
	}
	return nil
}

func stringArray(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	items := v.Array()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}
