package data

import "regexp"

type Kind int

const (
	KindNone Kind = iota
	KindItem
	KindWeapon
	KindArmor
	KindSkill
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindWeapon:
		return "weapon"
	case KindArmor:
		return "armor"
	case KindSkill:
		return "skill"
	default:
		return "none"
	}
}

// Item type ids stored in Entry.SubtypeID for KindItem.
const (
	ItemTypeRegular = 1
	ItemTypeKey     = 2
	ItemTypeHiddenA = 3
	ItemTypeHiddenB = 4
)

// Entry is one database record. Entries are shared by pointer; the detail
// window uses pointer identity to decide whether it needs to redraw.
type Entry struct {
	ID          int
	Kind        Kind
	Name        string
	IconIndex   int
	Description string
	// SubtypeID is the item type, weapon type, armor type or skill type id
	// depending on Kind.
	SubtypeID int
	Note      string
	Meta      map[string]string
}

// Annotation returns the note tag value for name, if present.
func (e *Entry) Annotation(name string) (string, bool) {
	if e == nil || e.Meta == nil {
		return "", false
	}
	v, ok := e.Meta[name]
	return v, ok
}

var metaTagPattern = regexp.MustCompile(`<([^<>:]+)(:?)([^>]*)>`)

// ExtractMeta reads <name:value> and <name> tags out of a note field. Values
// may span several lines. Bare tags are recorded as "true".
func ExtractMeta(note string) map[string]string {
	meta := map[string]string{}
	for _, m := range metaTagPattern.FindAllStringSubmatch(note, -1) {
		if m[2] == ":" {
			meta[m[1]] = m[3]
		} else {
			meta[m[1]] = "true"
		}
	}
	return meta
}

// NewEntry builds an entry and fills Meta from note.
func NewEntry(kind Kind, id int, name string, note string) *Entry {
	return &Entry{ID: id, Kind: kind, Name: name, Note: note, Meta: ExtractMeta(note)}
}
