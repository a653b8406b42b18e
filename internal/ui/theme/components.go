package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(6)
	PaddingS  = float32(10)
	PaddingM  = float32(16)

	CornerRadius   = float32(0.06)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	HighlightWidth   = float32(3.0)
)

// SlotStyle picks the background of one grid cell.
type SlotStyle int

const (
	SlotPlain SlotStyle = iota
	SlotHighlighted
	SlotEquipped
)

// DrawInventoryPanel draws a panel background with an optional title above
// it. The focused panel gets a brass border.
func DrawInventoryPanel(rect rl.Rectangle, title string, focused bool) {
	tint := Border
	if focused {
		tint = AccentBrass
	}
	DrawNineSlice(Skin.Back, rect, rl.Fade(Panel, 0.92), tint)
	if title == "" {
		return
	}
	x := int32(rect.X)
	y := int32(rect.Y) - Type.Header - int32(PaddingXS) - 4
	DrawHeader(title, x, y, focused)
}

func DrawSlot(rect rl.Rectangle, style SlotStyle) {
	switch style {
	case SlotHighlighted:
		DrawNineSlice(Skin.SlotHighlighted, rect, PanelRaised, AccentBrass)
	case SlotEquipped:
		DrawNineSlice(Skin.SlotEquipped, rect, mix(SlotFill, AccentEquip, 0.25), AccentEquip)
	default:
		DrawNineSlice(Skin.Slot, rect, SlotFill, Divider)
	}
}

// DrawHighlight outlines the selected slot; rect may sit between slots
// while it glides.
func DrawHighlight(rect rl.Rectangle) {
	rl.DrawRectangleLinesEx(rect, HighlightWidth, AccentBrass)
}

// DrawSlotLabel prints a short caption along the bottom edge of a slot.
func DrawSlotLabel(rect rl.Rectangle, text string) {
	if text == "" {
		return
	}
	size := Type.Small
	text = fitText(text, size, int32(rect.Width-PaddingXS))
	DrawText(text, int32(rect.X+PaddingXS/2), int32(rect.Y+rect.Height)-size-2, size, TextSecondary)
}

// DrawTooltip fills rect with the selected item's info; the first line is
// the title.
func DrawTooltip(rect rl.Rectangle, lines []string) {
	if len(lines) == 0 || rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	DrawNineSlice(Skin.Tooltip, rect, rl.Fade(PanelRaised, 0.95), Border)
	y := rect.Y + PaddingS
	for i, line := range lines {
		size, clr := Type.Body, TextSecondary
		if i == 0 {
			size, clr = Type.Header, TextPrimary
		}
		if y+float32(size) > rect.Y+rect.Height-PaddingXS {
			return
		}
		DrawText(line, int32(rect.X+PaddingM), int32(y), size, clr)
		y += float32(LineHeight(size))
	}
}

func DrawHeader(text string, x, y int32, focused bool) {
	if text == "" {
		return
	}
	clr := TextSecondary
	if focused {
		clr = TextPrimary
	}
	DrawText(text, x, y, Type.Header, clr)
	if !focused {
		return
	}
	w := max(MeasureText(text, Type.Header), 44)
	drawLine(float32(x), float32(y+Type.Header+3), float32(x+w), float32(y+Type.Header+3), 2.0, AccentBrass)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Small, TextMuted)
}

// fitText cuts text with an ellipsis until it is at most width wide.
func fitText(text string, size, width int32) string {
	if MeasureText(text, size) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		cut := string(runes) + "…"
		if MeasureText(cut, size) <= width {
			return cut
		}
	}
	return string(runes)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = min(max(t, 0), 1)
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
