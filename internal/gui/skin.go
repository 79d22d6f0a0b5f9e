package gui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NineSlice describes a scalable 9-patch texture.
// The corner sizes are specified in source-texture pixels.
// Centre area is stretched; edges are stretched along one axis; corners are drawn verbatim.
type NineSlice struct {
	Tex    rl.Texture2D
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

// skin holds the window frame and the icon sheet. Zero-value textures fall
// back to flat shapes.
var skin skinAssets

type skinAssets struct {
	Window NineSlice
	Icons  rl.Texture2D

	loaded bool
}

const (
	windowSlice  = int32(12)
	iconSize     = int32(32)
	iconsPerRow  = int32(16)
	iconBoxWidth = int32(36)
)

// initSkin loads skin textures. Call once after rl.InitWindow().
func initSkin(frame, icons string) {
	if skin.loaded {
		return
	}
	skin.loaded = true
	skin.Window = loadNineSlice(frame, windowSlice, windowSlice, windowSlice, windowSlice)
	skin.Icons = loadTexture(icons)
}

// unloadSkin releases GPU texture memory. Call before rl.CloseWindow().
func unloadSkin() {
	unloadTex(&skin.Window.Tex)
	unloadTex(&skin.Icons)
	skin.loaded = false
}

// drawNineSlice renders ns into dest, tinted by tint.
// If the texture is not loaded (ID == 0) a rounded panel is drawn instead.
func drawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRounded(dest, cornerRadius, cornerSegments, fadeAlpha(AppTheme.Panel, float32(tint.A)/255))
		rl.DrawRectangleRoundedLinesEx(dest, cornerRadius, cornerSegments, borderWidth, fadeAlpha(AppTheme.Border, float32(tint.A)/255))
		return
	}

	sw := float32(ns.Tex.Width)
	sh := float32(ns.Tex.Height)
	l := float32(ns.Left)
	r := float32(ns.Right)
	t := float32(ns.Top)
	b := float32(ns.Bottom)
	cx := sw - l - r
	cy := sh - t - b

	dx, dy, dw, dh := dest.X, dest.Y, dest.Width, dest.Height
	dl, dr, dt, db := l, r, t, b

	// Clamp so corners never overflow
	if dl+dr > dw {
		dl = dw / 2
		dr = dw / 2
	}
	if dt+db > dh {
		dt = dh / 2
		db = dh / 2
	}
	dcx := dw - dl - dr
	dcy := dh - dt - db

	type patch struct {
		src  rl.Rectangle
		dest rl.Rectangle
	}

	patches := [9]patch{
		{rl.NewRectangle(0, 0, l, t), rl.NewRectangle(dx, dy, dl, dt)},
		{rl.NewRectangle(l, 0, cx, t), rl.NewRectangle(dx+dl, dy, dcx, dt)},
		{rl.NewRectangle(sw-r, 0, r, t), rl.NewRectangle(dx+dw-dr, dy, dr, dt)},
		{rl.NewRectangle(0, t, l, cy), rl.NewRectangle(dx, dy+dt, dl, dcy)},
		{rl.NewRectangle(l, t, cx, cy), rl.NewRectangle(dx+dl, dy+dt, dcx, dcy)},
		{rl.NewRectangle(sw-r, t, r, cy), rl.NewRectangle(dx+dw-dr, dy+dt, dr, dcy)},
		{rl.NewRectangle(0, sh-b, l, b), rl.NewRectangle(dx, dy+dh-db, dl, db)},
		{rl.NewRectangle(l, sh-b, cx, b), rl.NewRectangle(dx+dl, dy+dh-db, dcx, db)},
		{rl.NewRectangle(sw-r, sh-b, r, b), rl.NewRectangle(dx+dw-dr, dy+dh-db, dr, db)},
	}

	for _, p := range patches {
		if p.dest.Width <= 0 || p.dest.Height <= 0 {
			continue
		}
		rl.DrawTexturePro(ns.Tex, p.src, p.dest, rl.Vector2{}, 0, tint)
	}
}

func drawIcon(index int, x, y float32, alpha float32) {
	if index <= 0 {
		return
	}
	if skin.Icons.ID == 0 {
		rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, float32(iconSize), float32(iconSize)), 1, fadeAlpha(AppTheme.TextMuted, alpha))
		return
	}
	i := int32(index)
	src := rl.NewRectangle(float32(i%iconsPerRow*iconSize), float32(i/iconsPerRow*iconSize), float32(iconSize), float32(iconSize))
	rl.DrawTextureRec(skin.Icons, src, rl.Vector2{X: x, Y: y}, fadeAlpha(rl.White, alpha))
}

func loadNineSlice(path string, left, right, top, bottom int32) NineSlice {
	return NineSlice{Tex: loadTexture(path), Left: left, Right: right, Top: top, Bottom: bottom}
}

func loadTexture(path string) rl.Texture2D {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}
	}
	tex := rl.LoadTexture(path)
	if tex.ID != 0 {
		rl.SetTextureFilter(tex, rl.FilterBilinear)
	}
	return tex
}

func unloadTex(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
