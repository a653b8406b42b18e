//go:build ignore

// gen_ui_placeholders.go – run with:
//
//	go run scripts/gen_ui_placeholders.go [dir]
//
// Writes placeholder inventory skin textures (default dir assets/ui). The
// border of each image is exactly one 9-slice inset wide, so the corners
// show clearly when stretched. File names and insets must match
// internal/ui/theme/textures.go.
package main

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

type placeholder struct {
	name   string
	size   int
	slice  int
	border color.RGBA
	centre color.RGBA
	accent color.RGBA
}

var placeholders = []placeholder{
	// Panel background: dark walnut frame around a dark slate field.
	{name: "inv_back.png", size: 64, slice: 12,
		border: color.RGBA{0x3E, 0x28, 0x12, 0xFF},
		centre: color.RGBA{0x14, 0x1A, 0x1F, 0xFF}},
	{name: "inv_slot.png", size: 32, slice: 6,
		border: color.RGBA{0x2E, 0x3A, 0x40, 0xFF},
		centre: color.RGBA{0x1C, 0x23, 0x29, 0xFF}},
	{name: "inv_slot_highlighted.png", size: 32, slice: 6,
		border: color.RGBA{0xC8, 0x8A, 0x2E, 0xFF},
		centre: color.RGBA{0x2A, 0x2A, 0x22, 0xFF},
		accent: color.RGBA{0xF0, 0xC0, 0x60, 0xFF}},
	{name: "inv_slot_equipped.png", size: 32, slice: 6,
		border: color.RGBA{0x3A, 0x6E, 0x46, 0xFF},
		centre: color.RGBA{0x1A, 0x28, 0x1E, 0xFF}},
	{name: "inv_tooltip.png", size: 48, slice: 8,
		border: color.RGBA{0x5C, 0x38, 0x18, 0xFF},
		centre: color.RGBA{0x10, 0x16, 0x1A, 0xFF}},
}

func main() {
	dir := filepath.Join("assets", "ui")
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, p := range placeholders {
		path := filepath.Join(dir, p.name)
		if err := p.render().SavePNG(path); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		log.Printf("  wrote %s (%dx%d slice=%d)", path, p.size, p.size, p.slice)
	}
	log.Printf("Placeholder textures written to %s/", dir)
}

func (p placeholder) render() *gg.Context {
	s := float64(p.size)
	inset := float64(p.slice)
	dc := gg.NewContext(p.size, p.size)

	dc.SetColor(p.border)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	dc.SetColor(p.centre)
	dc.DrawRectangle(inset, inset, s-2*inset, s-2*inset)
	dc.Fill()

	if p.accent.A > 0 {
		dc.SetColor(p.accent)
		dc.SetLineWidth(1)
		dc.DrawRectangle(inset/2, inset/2, s-inset, s-inset)
		dc.Stroke()
	}
	return dc
}
