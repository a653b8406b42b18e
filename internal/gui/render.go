package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/inventory"
	"github.com/appengine-ltd/invview/internal/item"
	uitheme "github.com/appengine-ltd/invview/internal/ui/theme"
	"github.com/appengine-ltd/invview/internal/view"
)

// bucketColors tint the stand-in box drawn for each item.
var bucketColors = map[inventory.Bucket]rl.Color{
	inventory.BucketQuest:        rl.NewColor(0xD9, 0xB8, 0x5C, 255),
	inventory.BucketMeleeWeapon:  rl.NewColor(0xA8, 0xAE, 0xB4, 255),
	inventory.BucketRangedWeapon: rl.NewColor(0x8C, 0x6A, 0x46, 255),
	inventory.BucketArmor:        rl.NewColor(0x6E, 0x5A, 0x48, 255),
	inventory.BucketMagic:        rl.NewColor(0x6C, 0x7C, 0xC8, 255),
	inventory.BucketJewelry:      rl.NewColor(0xC8, 0xA0, 0xD8, 255),
	inventory.BucketConsumable:   rl.NewColor(0xB8, 0x4A, 0x3A, 255),
	inventory.BucketDocument:     rl.NewColor(0xE0, 0xD6, 0xB8, 255),
	inventory.BucketValuable:     rl.NewColor(0xE8, 0xC8, 0x40, 255),
	inventory.BucketMisc:         rl.NewColor(0x8A, 0x84, 0x7A, 255),
}

// renderer draws view frames: 2D backgrounds and slots, then the items as
// boxes in an orthographic 3D pass whose units are screen pixels, then the
// 2D overlay.
type renderer struct {
	policy *inventory.Policy
	names  func(item.EntityID) string
	cube   rl.Model
	camera rl.Camera3D
	ready  bool
}

func newRenderer(policy *inventory.Policy, names func(item.EntityID) string) *renderer {
	return &renderer{policy: policy, names: names}
}

// load must run after rl.InitWindow.
func (r *renderer) load() {
	if r.ready {
		return
	}
	r.cube = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	r.ready = true
}

func (r *renderer) unload() {
	if !r.ready {
		return
	}
	rl.UnloadModel(r.cube)
	r.ready = false
}

// fitCamera looks down +z with y growing downwards so world x/y match
// screen pixels.
func (r *renderer) fitCamera(width, height int32) {
	w, h := float32(width), float32(height)
	r.camera = rl.Camera3D{
		Position:   rl.NewVector3(w/2, h/2, -500),
		Target:     rl.NewVector3(w/2, h/2, 0),
		Up:         rl.NewVector3(0, -1, 0),
		Fovy:       h,
		Projection: rl.CameraOrthographic,
	}
}

func (r *renderer) draw(frame view.Frame) {
	if !frame.Visible() {
		return
	}
	for _, cmd := range frame.Commands {
		switch cmd.Kind {
		case view.CmdPanelBackground:
			r.drawPanel(frame, cmd)
		case view.CmdSlot:
			uitheme.DrawSlot(cmd.Rect, slotStyle(cmd.Variant))
		}
	}

	rl.BeginMode3D(r.camera)
	rl.DisableBackfaceCulling()
	for _, cmd := range frame.Commands {
		if cmd.Kind == view.CmdItem && cmd.Item != nil {
			r.drawItem(cmd)
		}
	}
	rl.EnableBackfaceCulling()
	rl.EndMode3D()

	for _, cmd := range frame.Commands {
		switch cmd.Kind {
		case view.CmdItem:
			if cmd.Item != nil {
				uitheme.DrawSlotLabel(cmd.Rect, cmd.Item.Label())
			}
		case view.CmdHighlight:
			uitheme.DrawHighlight(cmd.Rect)
		case view.CmdTooltip:
			uitheme.DrawTooltip(cmd.Rect, cmd.Text)
		}
	}
}

func (r *renderer) drawPanel(frame view.Frame, cmd view.DrawCommand) {
	title := ""
	if pf, ok := frame.Panel(cmd.Panel); ok && r.names != nil {
		title = r.names(pf.Owner)
	}
	uitheme.DrawInventoryPanel(cmd.Rect, title, cmd.Panel == frame.Focus)
}

// drawItem stretches the unit cube over the item's bounds and applies the
// pose from the view. The final z flip turns the view's toward-camera -z
// into this camera's.
func (r *renderer) drawItem(cmd view.DrawCommand) {
	size := cmd.Item.Bounds.Size()
	center := cmd.Item.Bounds.Center()
	m := rl.MatrixMultiply(rl.MatrixScale(size.X, size.Y, size.Z), rl.MatrixTranslate(center.X, center.Y, center.Z))
	m = rl.MatrixMultiply(m, cmd.Transform)
	r.cube.Transform = rl.MatrixMultiply(m, rl.MatrixScale(1, 1, -1))

	tint := itemColor(r.policy, *cmd.Item)
	if cmd.Item.Flags.Has(item.FlagBroken) {
		tint = rl.Fade(tint, 0.5)
	}
	rl.DrawModel(r.cube, rl.Vector3{}, 1, tint)
	rl.DrawModelWires(r.cube, rl.Vector3{}, 1, rl.Fade(uitheme.BG, 0.7))
}

func itemColor(policy *inventory.Policy, it item.Item) rl.Color {
	if c, ok := bucketColors[policy.Bucket(it)]; ok {
		return c
	}
	return bucketColors[inventory.BucketMisc]
}

func slotStyle(v view.SlotVariant) uitheme.SlotStyle {
	switch v {
	case view.SlotHighlighted:
		return uitheme.SlotHighlighted
	case view.SlotEquipped:
		return uitheme.SlotEquipped
	default:
		return uitheme.SlotPlain
	}
}
