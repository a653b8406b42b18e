package theme

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds the loaded inventory textures. Zero-value slices draw a flat
// colour fallback in DrawNineSlice, so the view works without any art.
var Skin skinAssets

type skinAssets struct {
	Back            NineSlice // panel background
	Slot            NineSlice
	SlotHighlighted NineSlice
	SlotEquipped    NineSlice
	Tooltip         NineSlice

	loaded bool
}

// Slice guides of the placeholder textures from scripts/gen_ui_placeholders.go.
const (
	backSlice    = int32(12)
	slotSlice    = int32(6)
	tooltipSlice = int32(8)
)

// SkinFiles maps skin parts to file names under the asset directory.
var SkinFiles = struct {
	Back, Slot, SlotHighlighted, SlotEquipped, Tooltip string
}{
	Back:            "inv_back.png",
	Slot:            "inv_slot.png",
	SlotHighlighted: "inv_slot_highlighted.png",
	SlotEquipped:    "inv_slot_equipped.png",
	Tooltip:         "inv_tooltip.png",
}

// InitSkin loads the inventory textures from dir. Call once after
// rl.InitWindow(). Missing files keep their flat fallback.
func InitSkin(dir string) {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	Skin.Back = loadNineSlice(filepath.Join(dir, SkinFiles.Back), backSlice)
	Skin.Slot = loadNineSlice(filepath.Join(dir, SkinFiles.Slot), slotSlice)
	Skin.SlotHighlighted = loadNineSlice(filepath.Join(dir, SkinFiles.SlotHighlighted), slotSlice)
	Skin.SlotEquipped = loadNineSlice(filepath.Join(dir, SkinFiles.SlotEquipped), slotSlice)
	Skin.Tooltip = loadNineSlice(filepath.Join(dir, SkinFiles.Tooltip), tooltipSlice)
}

// UnloadSkin releases GPU texture memory. Call before rl.CloseWindow().
func UnloadSkin() {
	unloadTex(&Skin.Back.Tex)
	unloadTex(&Skin.Slot.Tex)
	unloadTex(&Skin.SlotHighlighted.Tex)
	unloadTex(&Skin.SlotEquipped.Tex)
	unloadTex(&Skin.Tooltip.Tex)
	Skin.loaded = false
}

func loadNineSlice(path string, slice int32) NineSlice {
	ns := NineSlice{Left: slice, Right: slice, Top: slice, Bottom: slice}
	if _, err := os.Stat(path); err != nil {
		return ns
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return ns
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	ns.Tex = tex
	return ns
}

func unloadTex(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
