package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/invview/internal/ui/theme"
)

// Preferred UI faces under <assets>/fonts, first found wins.
var fontFiles = []string{"Inter-Regular.ttf", "IBMPlexSans-Regular.ttf", "NotoSans-Regular.ttf"}

const fontBaseSize = 36

// windowFont is a TTF loaded once at the base size and scaled per call.
type windowFont struct {
	font    rl.Font
	spacing float32
}

// loadWindowFont installs the first font found under assetDir as the
// theme font. It returns nil, leaving the built-in font, when none loads.
func loadWindowFont(assetDir string) *windowFont {
	for _, name := range fontFiles {
		path := filepath.Join(assetDir, "fonts", name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontBaseSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		f := &windowFont{font: font, spacing: 1}
		uitheme.UseFont(f)
		return f
	}
	uitheme.UseFont(nil)
	return nil
}

func (f *windowFont) Draw(text string, x, y, size int32, clr rl.Color) {
	rl.DrawTextEx(f.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), f.spacing, clr)
}

func (f *windowFont) Measure(text string, size int32) int32 {
	return int32(math.Round(float64(rl.MeasureTextEx(f.font, text, float32(size), f.spacing).X)))
}

func (f *windowFont) unload() {
	if f == nil {
		return
	}
	uitheme.UseFont(nil)
	rl.UnloadFont(f.font)
}
