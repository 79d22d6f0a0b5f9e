package detail

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/appengine-ltd/itemdetail/internal/data"
)

func TestResolveCategoryAnnotationWinsForEveryKind(t *testing.T) {
	cfg := testConfig()
	for _, kind := range []data.Kind{data.KindItem, data.KindWeapon, data.KindArmor, data.KindSkill, data.KindNone} {
		e := &data.Entry{Kind: kind, SubtypeID: 1, Meta: map[string]string{"T": "Light Axe"}}
		if got := Resolve(e, cfg, testTables).Category; got != "Light Axe" {
			t.Fatalf("kind %s: expected annotation category, got %q", kind, got)
		}
	}
}

func TestResolveCategoryDerivedFromItemType(t *testing.T) {
	cfg := testConfig()
	cases := map[int]string{
		data.ItemTypeRegular: "Item",
		data.ItemTypeKey:     "Key Item",
		data.ItemTypeHiddenA: "Relic",
		data.ItemTypeHiddenB: "Curio",
		9:                    "",
	}
	for itype, want := range cases {
		e := &data.Entry{Kind: data.KindItem, SubtypeID: itype}
		if got := Resolve(e, cfg, testTables).Category; got != want {
			t.Fatalf("item type %d: expected %q, got %q", itype, want, got)
		}
	}
}

func TestResolveCategoryEmptyAnnotationFallsThrough(t *testing.T) {
	e := &data.Entry{Kind: data.KindWeapon, SubtypeID: 2, Meta: map[string]string{"T": ""}}
	if got := Resolve(e, testConfig(), testTables).Category; got != "Axe" {
		t.Fatalf("expected weapon type, got %q", got)
	}
}

func TestResolveCategoryFromSubtypeTables(t *testing.T) {
	cfg := testConfig()
	cases := []struct {
		entry *data.Entry
		want  string
	}{
		{&data.Entry{Kind: data.KindWeapon, SubtypeID: 1}, "Dagger"},
		{&data.Entry{Kind: data.KindArmor, SubtypeID: 1}, "General Armor"},
		{&data.Entry{Kind: data.KindSkill, SubtypeID: 2}, "Special"},
		{&data.Entry{Kind: data.KindSkill, SubtypeID: 40}, ""},
	}
	for _, tc := range cases {
		if got := Resolve(tc.entry, cfg, testTables).Category; got != tc.want {
			t.Fatalf("%s/%d: expected %q, got %q", tc.entry.Kind, tc.entry.SubtypeID, tc.want, got)
		}
	}
}

func TestResolveFallbackTextForUnknownKind(t *testing.T) {
	e := &data.Entry{Kind: data.KindNone}
	if got := ResolveWithFallback(e, testConfig(), testTables, "Misc").Category; got != "Misc" {
		t.Fatalf("expected fallback text, got %q", got)
	}
	if got := Resolve(e, testConfig(), nil).Category; got != "" {
		t.Fatalf("expected blank category, got %q", got)
	}
}

func TestResolveSplitsDetailLines(t *testing.T) {
	e := &data.Entry{Kind: data.KindItem, Meta: map[string]string{"D": "あ\r\nい\rう\nえ"}}
	got := Resolve(e, testConfig(), testTables).DetailLines
	if diff := cmp.Diff([]string{"あ", "い", "う", "え"}, got); diff != "" {
		t.Fatalf("detail lines mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWithoutDetailTag(t *testing.T) {
	e := &data.Entry{Kind: data.KindItem, Name: "Potion", Description: "Heals."}
	desc := Resolve(e, testConfig(), testTables)
	if len(desc.DetailLines) != 0 {
		t.Fatalf("expected no detail lines, got %q", desc.DetailLines)
	}
	if desc.Name != "Potion" || desc.Profile != "Heals." {
		t.Fatalf("unexpected name/profile %+v", desc)
	}
}

func TestResolveNilEntry(t *testing.T) {
	if diff := cmp.Diff(Description{}, Resolve(nil, testConfig(), testTables)); diff != "" {
		t.Fatalf("expected zero description:\n%s", diff)
	}
}
