// Package lint reports note tags that will not reach the detail window:
// misspelt tag names, bare tags and tags with empty values.
package lint

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
)

type Problem int

const (
	NearMiss Problem = iota
	BareTag
	EmptyValue
)

func (p Problem) String() string {
	switch p {
	case NearMiss:
		return "near-miss"
	case BareTag:
		return "bare-tag"
	case EmptyValue:
		return "empty"
	default:
		return fmt.Sprintf("Problem(%d)", int(p))
	}
}

type Finding struct {
	Kind    data.Kind
	ID      int
	Name    string
	Tag     string
	Want    string
	Problem Problem
}

func (f Finding) String() string {
	where := fmt.Sprintf("%s %d %q", f.Kind, f.ID, f.Name)
	switch f.Problem {
	case NearMiss:
		return fmt.Sprintf("%s: tag <%s> looks like <%s>", where, f.Tag, f.Want)
	case BareTag:
		return fmt.Sprintf("%s: tag <%s> has no value; write <%s:...>", where, f.Tag, f.Tag)
	default:
		return fmt.Sprintf("%s: tag <%s> is empty", where, f.Tag)
	}
}

// Check inspects every entry's note tags against the configured tag names.
func Check(db *data.Database, cfg config.Config) []Finding {
	if db == nil {
		return nil
	}
	tags := []string{cfg.DetailTextTag, cfg.DetailTypeTag}
	var out []Finding
	for _, e := range db.All() {
		out = append(out, checkEntry(e, tags)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

func checkEntry(e *data.Entry, tags []string) []Finding {
	if e == nil {
		return nil
	}
	var out []Finding
	add := func(tag, want string, p Problem) {
		out = append(out, Finding{Kind: e.Kind, ID: e.ID, Name: e.Name, Tag: tag, Want: want, Problem: p})
	}
	for key, value := range e.Meta {
		if want, ok := exactTag(key, tags); ok {
			switch {
			case strings.Contains(e.Note, "<"+key+">"):
				add(key, want, BareTag)
			case strings.TrimSpace(value) == "":
				add(key, want, EmptyValue)
			}
			continue
		}
		if want, ok := nearestTag(key, tags); ok {
			add(key, want, NearMiss)
		}
	}
	return out
}

func exactTag(key string, tags []string) (string, bool) {
	for _, t := range tags {
		if t != "" && key == t {
			return t, true
		}
	}
	return "", false
}

// nearestTag returns the configured tag within edit distance of key.
func nearestTag(key string, tags []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, t := range tags {
		if t == "" {
			continue
		}
		dist := levenshtein.ComputeDistance(key, t)
		if dist > distanceLimit(utf8.RuneCountInString(t)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = t, dist
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
