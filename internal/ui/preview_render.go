package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/preview"
)

// renderPreviewANSI draws the posed bounding box of it as a wireframe and
// returns it as ANSI half-block rows, two pixels per character cell.
func renderPreviewANSI(it item.Item, phase float32, opt preview.Options, tint color.RGBA, widthChars, heightRows int) string {
	if widthChars < 4 || heightRows < 2 {
		return ""
	}
	w := widthChars
	h := heightRows * 2
	dc := gg.NewContext(w, h)

	// Transparent background so the pane shows through.
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	size := float32(min(w, h)) * 0.7
	m := preview.Fit(it, size, false, phase, opt)
	corners := preview.Project(it.Bounds, m)
	cx, cy := float64(w)/2, float64(h)/2

	// Faint floor shadow.
	dc.SetRGBA(0, 0, 0, 0.25)
	dc.DrawEllipse(cx, cy+float64(size)*0.55, float64(size)*0.45, 1.5)
	dc.Fill()

	dc.SetLineCapRound()
	dc.SetLineWidth(1)
	dc.SetColor(tint)
	for _, e := range preview.BoxEdges {
		a, b := corners[e[0]], corners[e[1]]
		dc.DrawLine(cx+float64(a.X), cy-float64(a.Y), cx+float64(b.X), cy-float64(b.Y))
		dc.Stroke()
	}
	return rgbaImageToANSIHalfBlocks(dc.Image())
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			out.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb))
		}
		out.WriteString("\x1b[0m")
		if y+2 < height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}
