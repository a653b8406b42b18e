package ui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/invview/internal/inventory"
)

// Terminal rendition of the window palette.
var (
	colorBorder = lipgloss.Color("#4A3C2C")
	colorBrass  = lipgloss.Color("#C9A24B")
	colorEquip  = lipgloss.Color("#4F7D5A")
	colorText   = lipgloss.Color("#E8E2D8")
	colorDim    = lipgloss.Color("#A69C8C")
	colorMuted  = lipgloss.Color("#7D7468")

	titleStyle       = lipgloss.NewStyle().Foreground(colorDim).Bold(true)
	titleFocusStyle  = lipgloss.NewStyle().Foreground(colorBrass).Bold(true).Underline(true)
	slotStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Foreground(colorDim)
	slotEquipStyle   = slotStyle.BorderForeground(colorEquip).Foreground(colorText)
	slotFocusStyle   = slotStyle.Border(lipgloss.ThickBorder()).BorderForeground(colorBrass).Foreground(colorText).Bold(true)
	slotEmptyStyle   = slotStyle.Foreground(colorMuted)
	tooltipStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorBorder).Padding(0, 1)
	tooltipTitle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	tooltipLine      = lipgloss.NewStyle().Foreground(colorDim)
	statusStyle      = lipgloss.NewStyle().Foreground(colorBrass)
	hiddenPanelStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

// bucketTints colour the item preview.
var bucketTints = map[inventory.Bucket]color.RGBA{
	inventory.BucketQuest:        {R: 0xD9, G: 0xB8, B: 0x5C, A: 255},
	inventory.BucketMeleeWeapon:  {R: 0xA8, G: 0xAE, B: 0xB4, A: 255},
	inventory.BucketRangedWeapon: {R: 0x8C, G: 0x6A, B: 0x46, A: 255},
	inventory.BucketArmor:        {R: 0x9E, G: 0x7A, B: 0x58, A: 255},
	inventory.BucketMagic:        {R: 0x6C, G: 0x7C, B: 0xC8, A: 255},
	inventory.BucketJewelry:      {R: 0xC8, G: 0xA0, B: 0xD8, A: 255},
	inventory.BucketConsumable:   {R: 0xD0, G: 0x5A, B: 0x48, A: 255},
	inventory.BucketDocument:     {R: 0xE0, G: 0xD6, B: 0xB8, A: 255},
	inventory.BucketValuable:     {R: 0xE8, G: 0xC8, B: 0x40, A: 255},
	inventory.BucketMisc:         {R: 0x8A, G: 0x84, B: 0x7A, A: 255},
}

func bucketTint(b inventory.Bucket) color.RGBA {
	if c, ok := bucketTints[b]; ok {
		return c
	}
	return bucketTints[inventory.BucketMisc]
}
