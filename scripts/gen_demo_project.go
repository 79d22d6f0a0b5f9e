//go:build ignore

// gen_demo_project.go – run with:
//
//	go run scripts/gen_demo_project.go [dir]
//
// Writes a small game project (default ./demo) that both hosts can browse:
// data/*.json tables with detail note tags, plugin parameters, a settings
// file, a placeholder window frame and a placeholder icon sheet. Point
// -settings at demo/itemdetail.toml.
package main

import (
	"encoding/json"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

const (
	iconCell    = 32
	iconsPerRow = 16
	frameSize   = 48
	frameSlice  = 12
)

func main() {
	root := "demo"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	for _, dir := range []string{"data", filepath.Join("img", "system"), filepath.Join("audio", "se")} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			log.Fatal(err)
		}
	}

	genFrame(filepath.Join(root, "img", "system", "window_9slice.png"),
		color.RGBA{0x2E, 0x3A, 0x40, 0xFF}, // border: steel
		color.RGBA{0x1C, 0x23, 0x29, 0xF0}, // centre: panel dark
	)
	genIcons(filepath.Join(root, "img", "system", "IconSet.png"), 64)

	writeJSON(filepath.Join(root, "data", "Items.json"), []any{
		nil,
		record(1, "ポーション", 176, "HPを500回復する。", "itypeId", 1,
			"<詳細説明テキスト:修道院で醸造された薬。\n\\C[3]冷暗所\\C[0]で保管すること。>"),
		record(2, "古い鍵", 195, "どこかの扉を開ける。", "itypeId", 2,
			"<詳細説明テキスト:錆びついた真鍮の鍵。\n\\I[195]は地下倉庫の扉に合うらしい。>"),
		record(3, "賢者の石", 161, "？？？", "itypeId", 3,
			"<詳細分類ワード:伝説の素材>\n<詳細説明テキスト:\\{触れた者は\\}\n言葉を失うという。>"),
		record(4, "エーテル", 176, "MPを50回復する。", "itypeId", 1, ""),
	})
	writeJSON(filepath.Join(root, "data", "Weapons.json"), []any{
		nil,
		record(1, "ハンドアクス", 99, "軽くて扱いやすい斧。", "wtypeId", 2,
			"<詳細分類ワード:片手斧>\n<詳細説明テキスト:木こりが使う斧を戦闘用に鍛え直したもの。>"),
		record(2, "ロングソード", 97, "標準的な剣。", "wtypeId", 1, ""),
	})
	writeJSON(filepath.Join(root, "data", "Armors.json"), []any{
		nil,
		record(1, "革の盾", 128, "革を張った木の盾。", "atypeId", 5,
			"<詳細説明テキスト:\\C[2]火\\C[0]に弱い。>"),
		record(2, "帽子", 130, "日差しを防ぐ。", "atypeId", 2, ""),
	})
	writeJSON(filepath.Join(root, "data", "Skills.json"), []any{
		nil,
		record(1, "ファイア", 64, "敵単体に炎属性のダメージ。", "stypeId", 1,
			"<詳細説明テキスト:初歩の攻撃魔法。\n\n\\C[16]威力\\C[0]: 魔法力 × 2>"),
		record(2, "ヒール", 72, "味方単体のHPを回復。", "stypeId", 1, ""),
		record(3, "強打", 76, "敵単体に強力な一撃。", "stypeId", 2, "<詳細説明テキト:誤字のあるタグ>"),
	})

	commands := make([]string, 20)
	commands[4] = "アイテム"
	commands[14] = "大事なもの"
	writeJSON(filepath.Join(root, "data", "System.json"), map[string]any{
		"weaponTypes": []string{"", "剣", "斧"},
		"armorTypes":  []string{"", "一般防具", "帽子", "", "", "盾"},
		"skillTypes":  []string{"", "魔法", "必殺技"},
		"terms":       map[string]any{"commands": commands},
	})

	writeJSON(filepath.Join(root, "data", "plugin_params.json"), map[string]string{
		"WindowOpenKey":     "65",
		"secretItemA":       "隠しアイテムＡ",
		"secretItemB":       "隠しアイテムＢ",
		"detailTextTagName": "詳細説明テキスト",
		"detailTypeTagName": "詳細分類ワード",
		"secretTextType":    "1",
		"soundEffect":       `{"name":"Book1","volume":"90","pitch":"100","pan":"0"}`,
	})

	settings := "data_dir = \"data\"\nparams_file = \"data/plugin_params.json\"\nsound_dir = \"audio/se\"\nwidth = 1280\nheight = 720\nbox_width = 1104\nbox_height = 624\n"
	if err := os.WriteFile(filepath.Join(root, "itemdetail.toml"), []byte(settings), 0o644); err != nil {
		log.Fatal(err)
	}

	log.Printf("Demo project written to %s/", root)
}

func record(id int, name string, icon int, desc string, subtypeKey string, subtype int, note string) map[string]any {
	return map[string]any{
		"id":          id,
		"name":        name,
		"iconIndex":   icon,
		"description": desc,
		subtypeKey:    subtype,
		"note":        note,
	}
}

func writeJSON(path string, v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("  wrote %s", path)
}

// genFrame writes the nine-slice window frame. The outer frameSlice pixels
// are the border.
func genFrame(path string, border, centre color.RGBA) {
	dc := gg.NewContext(frameSize, frameSize)
	dc.SetColor(border)
	dc.DrawRoundedRectangle(0, 0, frameSize, frameSize, 6)
	dc.Fill()
	dc.SetColor(centre)
	dc.DrawRectangle(frameSlice/2, frameSlice/2, frameSize-frameSlice, frameSize-frameSlice)
	dc.Fill()
	if err := dc.SavePNG(path); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s (%dx%d slice=%d)", path, frameSize, frameSize, frameSlice)
}

// genIcons writes a sheet of rows×16 icons. Each icon is a gem whose hue
// follows its index, so every index used by the demo data is distinct.
func genIcons(path string, rows int) {
	dc := gg.NewContext(iconCell*iconsPerRow, iconCell*rows)
	for i := 1; i < iconsPerRow*rows; i++ {
		x := float64(i%iconsPerRow*iconCell) + iconCell/2
		y := float64(i/iconsPerRow*iconCell) + iconCell/2
		hue := float64(i*37%360) / 360
		r, g, b := hsv(hue, 0.65, 0.95)
		dc.SetRGB(r, g, b)
		dc.DrawRegularPolygon(4+i%3, x, y, iconCell/2-3, math.Pi/4)
		dc.FillPreserve()
		dc.SetRGBA(0, 0, 0, 0.6)
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}
	if err := dc.SavePNG(path); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s (%d icons)", path, iconsPerRow*rows)
}

func hsv(h, s, v float64) (float64, float64, float64) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
