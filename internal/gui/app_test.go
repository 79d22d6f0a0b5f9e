package gui

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/itemdetail/internal/data"
)

func TestSoundPanCentresAtZero(t *testing.T) {
	cases := map[int]float32{-100: 0, 0: 0.5, 100: 1, 50: 0.75}
	for pan, want := range cases {
		if got := soundPan(pan); got != want {
			t.Fatalf("soundPan(%d) = %v, want %v", pan, got, want)
		}
	}
}

func TestWrapIndex(t *testing.T) {
	if got := wrapIndex(-1, 4); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := wrapIndex(9, 4); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := wrapIndex(2, 0); got != 0 {
		t.Fatalf("expected 0 for empty menu, got %d", got)
	}
}

func TestKeyName(t *testing.T) {
	if got := keyName(65); got != "A" {
		t.Fatalf("expected A, got %q", got)
	}
	if got := keyName(290); got != "key 290" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestDatabaseTextCoversDrawnStrings(t *testing.T) {
	db := &data.Database{
		Items:       []*data.Entry{{Name: "薬草", Description: "回復", Meta: map[string]string{"詳細": "苦い"}}},
		WeaponTypes: []string{"", "剣"},
		Terms:       data.DefaultTerms(),
	}
	text := databaseText(db)
	for _, want := range []string{"薬草", "回復", "苦い", "剣", "大事なもの"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in glyph text %q", want, text)
		}
	}
}

func TestGlyphRunesIncludesASCIIAndDeduplicates(t *testing.T) {
	runes := glyphRunes("ああA")
	count := 0
	hasSpace := false
	for _, r := range runes {
		if r == 'あ' {
			count++
		}
		if r == ' ' {
			hasSpace = true
		}
	}
	if count != 1 || !hasSpace {
		t.Fatalf("unexpected glyph set: count=%d space=%v", count, hasSpace)
	}
}

func TestSplitHelpKeepsTwoLines(t *testing.T) {
	got := splitHelp("one\ntwo\r\nthree")
	if len(got) != 2 || got[1] != "two" {
		t.Fatalf("unexpected help lines %q", got)
	}
}

func TestTextColorZeroFollowsTheme(t *testing.T) {
	if textColor(0) != AppTheme.TextPrimary {
		t.Fatalf("expected palette 0 to use the theme text colour")
	}
	if textColor(16) == AppTheme.TextPrimary {
		t.Fatalf("expected system colour to differ from body text")
	}
}
