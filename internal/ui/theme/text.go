package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Font draws and measures UI text.
type Font interface {
	Draw(text string, x, y, size int32, clr rl.Color)
	Measure(text string, size int32) int32
}

type builtinFont struct{}

func (builtinFont) Draw(text string, x, y, size int32, clr rl.Color) {
	rl.DrawText(text, x, y, size, clr)
}

func (builtinFont) Measure(text string, size int32) int32 {
	return int32(rl.MeasureText(text, size))
}

var activeFont Font = builtinFont{}

// UseFont routes all theme text through f. nil restores raylib's built-in
// font.
func UseFont(f Font) {
	if f == nil {
		f = builtinFont{}
	}
	activeFont = f
}

func DrawText(text string, x, y, size int32, clr rl.Color) {
	activeFont.Draw(text, x, y, size, clr)
}

func MeasureText(text string, size int32) int32 {
	return activeFont.Measure(text, size)
}

// TextSizes are pixel sizes for the three text roles of the inventory.
type TextSizes struct {
	Header     int32 // panel titles, tooltip names
	Body       int32
	Small      int32 // slot counts, hints
	LineFactor float32
}

var Type = TextSizes{
	Header:     22,
	Body:       18,
	Small:      14,
	LineFactor: 1.34,
}

// LineHeight is the row advance for text of the given size.
func LineHeight(size int32) int32 {
	return int32(float32(max(size, 1))*Type.LineFactor + 0.5)
}
