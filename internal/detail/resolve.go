package detail

import (
	"strings"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
)

// TypeTables supplies the labels used when an entry carries no explicit
// category annotation. *data.Database implements it.
type TypeTables interface {
	TypeName(kind data.Kind, id int) (string, bool)
	ItemTerm() string
	KeyItemTerm() string
}

// Description is everything the detail window shows for one entry.
type Description struct {
	Name        string
	IconIndex   int
	Category    string
	Profile     string
	DetailLines []string
}

func Resolve(e *data.Entry, cfg config.Config, tables TypeTables) Description {
	return ResolveWithFallback(e, cfg, tables, "")
}

// ResolveWithFallback is Resolve with an explicit category for entries whose
// kind has no derivation rule.
func ResolveWithFallback(e *data.Entry, cfg config.Config, tables TypeTables, text string) Description {
	if e == nil {
		return Description{}
	}
	desc := Description{
		Name:      e.Name,
		IconIndex: e.IconIndex,
		Profile:   e.Description,
		Category:  category(e, cfg, tables, text),
	}
	if body, ok := e.Annotation(cfg.DetailTextTag); ok && body != "" {
		desc.DetailLines = SplitLines(body)
	}
	return desc
}

func category(e *data.Entry, cfg config.Config, tables TypeTables, text string) string {
	if v, ok := e.Annotation(cfg.DetailTypeTag); ok && v != "" {
		return v
	}
	switch e.Kind {
	case data.KindItem:
		switch e.SubtypeID {
		case data.ItemTypeRegular:
			if tables != nil {
				return tables.ItemTerm()
			}
			return ""
		case data.ItemTypeKey:
			if tables != nil {
				return tables.KeyItemTerm()
			}
			return ""
		case data.ItemTypeHiddenA:
			return cfg.HiddenLabelA
		case data.ItemTypeHiddenB:
			return cfg.HiddenLabelB
		}
	case data.KindWeapon, data.KindArmor, data.KindSkill:
		if tables == nil {
			return ""
		}
		name, _ := tables.TypeName(e.Kind, e.SubtypeID)
		return name
	}
	return text
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits on CRLF, CR and LF.
func SplitLines(s string) []string {
	return strings.Split(lineBreaks.Replace(s), "\n")
}
