package view

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/cursor"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/layout"
)

type CommandKind int

const (
	CmdPanelBackground CommandKind = iota
	CmdSlot
	CmdItem
	CmdHighlight
	CmdTooltip
)

// SlotVariant picks the slot background texture.
type SlotVariant int

const (
	SlotPlain SlotVariant = iota
	SlotHighlighted
	SlotEquipped
)

// DrawCommand is one positioned element for an external renderer. Fields
// not used by a kind are zero.
type DrawCommand struct {
	Kind      CommandKind
	Panel     Panel
	Rect      rl.Rectangle
	Variant   SlotVariant
	SlotIndex int
	Item      *item.Item
	Transform rl.Matrix
	Selected  bool
	Text      []string
}

// PanelFrame is the laid out state of one panel.
type PanelFrame struct {
	Panel  Panel
	Owner  item.EntityID
	Rect   rl.Rectangle
	Grid   cursor.Grid
	Cursor cursor.State
	// List is the panel's items in display order; slots index into it.
	List  []item.Item
	Slots []layout.Slot
}

// Selected returns the panel's selected item.
func (p PanelFrame) Selected() (item.Item, bool) {
	idx, ok := p.Cursor.Selected()
	if !ok || idx >= len(p.List) {
		return item.Item{}, false
	}
	return p.List[idx], true
}

// ItemAt returns the item shown in a slot.
func (p PanelFrame) ItemAt(slot int) (item.Item, bool) {
	if slot < 0 || slot >= len(p.Slots) || p.Slots[slot].Empty {
		return item.Item{}, false
	}
	idx := p.Slots[slot].Item.Index
	if idx < 0 || idx >= len(p.List) {
		return item.Item{}, false
	}
	return p.List[idx], true
}

// Frame is everything needed to draw the view once. An invisible view
// yields an empty frame.
type Frame struct {
	State    State
	Focus    Panel
	Panels   []PanelFrame
	Commands []DrawCommand
	// Phase is the idle rotation of the focused selection, radians.
	Phase float32
}

func (f Frame) Visible() bool { return len(f.Panels) > 0 }

// Panel returns the frame of p when it is shown.
func (f Frame) Panel(p Panel) (PanelFrame, bool) {
	for _, pf := range f.Panels {
		if pf.Panel == p {
			return pf, true
		}
	}
	return PanelFrame{}, false
}
