package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Inventory palette: dark leather panels with brass accents.
var (
	BG            = rl.NewColor(0x12, 0x10, 0x0E, 255) // #12100E
	Panel         = rl.NewColor(0x24, 0x1E, 0x18, 255) // #241E18
	PanelRaised   = rl.NewColor(0x2E, 0x26, 0x1E, 255) // #2E261E
	Border        = rl.NewColor(0x4A, 0x3C, 0x2C, 255) // #4A3C2C
	Divider       = rl.NewColor(0x36, 0x2C, 0x22, 255) // #362C22
	SlotFill      = rl.NewColor(0x1A, 0x16, 0x12, 255) // #1A1612
	TextPrimary   = rl.NewColor(0xE8, 0xE2, 0xD8, 255) // #E8E2D8
	TextSecondary = rl.NewColor(0xA6, 0x9C, 0x8C, 255) // #A69C8C
	TextMuted     = rl.NewColor(0x7D, 0x74, 0x68, 255) // #7D7468
	AccentBrass   = rl.NewColor(0xC9, 0xA2, 0x4B, 255) // #C9A24B
	AccentEquip   = rl.NewColor(0x4F, 0x7D, 0x5A, 255) // #4F7D5A
	Danger        = rl.NewColor(0xB8, 0x4A, 0x3A, 255) // #B84A3A
	DisabledPanel = rl.NewColor(0x16, 0x13, 0x10, 255)
)
