// Package view is the inventory view's mode controller. Once per frame it
// consumes input, refreshes both item lists, runs the cursor of each panel,
// lays out the visible windows and emits transfer intents.
package view

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/config"
	"github.com/appengine-ltd/invview/internal/cursor"
	"github.com/appengine-ltd/invview/internal/inventory"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/layout"
	"github.com/appengine-ltd/invview/internal/logging"
	"github.com/appengine-ltd/invview/internal/preview"
)

var (
	ErrUnknownState = errors.New("unknown view state")
	ErrInvalidOther = errors.New("invalid other entity")
)

// Source serves the read-only item lists of inventory owners.
type Source interface {
	Items(owner item.EntityID) ([]item.Item, error)
	Exists(owner item.EntityID) bool
}

// Layout is where the panels sit on screen.
type Layout struct {
	SlotSize   float32
	Self       rl.Rectangle
	SelfAlign  layout.Alignment
	Other      rl.Rectangle
	OtherAlign layout.Alignment
	// InfoBox holds the tooltip of the focused selection.
	InfoBox rl.Rectangle
	// ItemPadding is the gap between a slot edge and the item it shows.
	ItemPadding float32
}

func LayoutFromConfig(cfg config.Config) Layout {
	rect := func(r config.Rect) rl.Rectangle { return rl.NewRectangle(r.X, r.Y, r.Width, r.Height) }
	self := rect(cfg.Self.Rect)
	return Layout{
		SlotSize:    cfg.SlotSize,
		Self:        self,
		SelfAlign:   cfg.Self.Alignment(),
		Other:       rect(cfg.Other.Rect),
		OtherAlign:  cfg.Other.Alignment(),
		InfoBox:     rl.NewRectangle(self.X, self.Y+self.Height+16, self.Width, float32(cfg.Window.Height)-(self.Y+self.Height+32)),
		ItemPadding: cfg.SlotSize * 0.1,
	}
}

func PreviewFromConfig(cfg config.Config) (preview.Options, float32) {
	opt := preview.Options{
		Tilt:          rl.NewVector3(cfg.Preview.TiltX, cfg.Preview.TiltY, cfg.Preview.TiltZ),
		SelectedScale: cfg.Preview.SelectedScale,
	}
	return opt, cfg.Preview.SpinDegPerSec * rl.Deg2rad
}

type Options struct {
	// Self is the player whose inventory is always the first panel.
	Self    item.EntityID
	Layout  Layout
	Preview preview.Options
	// SpinSpeed is the idle spin of the selected item in radians/second.
	SpinSpeed float32
	Policy    *inventory.Policy
	Sink      IntentSink
	Logger    *logging.Logger
}

type panelState struct {
	cursor  cursor.State
	filter  inventory.Filter
	symbols []item.Symbol
}

type Controller struct {
	source Source
	opts   Options
	policy *inventory.Policy
	log    *logging.Logger

	specs map[State]StateSpec
	state State
	other item.EntityID

	hidden   bool
	bindings bool

	panels [2]panelState
	focus  Panel

	pending  cursor.Step
	triggers []Action

	spinner    preview.Spinner
	spinSymbol item.Symbol
	highlight  glide
}

func New(source Source, opts Options) *Controller {
	if opts.Policy == nil {
		opts.Policy = inventory.NewPolicy(nil)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Preview.SelectedScale == 0 {
		opts.Preview = preview.DefaultOptions()
	}
	c := &Controller{
		source:     source,
		opts:       opts,
		policy:     opts.Policy,
		log:        opts.Logger,
		specs:      builtinStates(),
		state:      StateDisabled,
		hidden:     true,
		spinSymbol: item.NoSymbol,
	}
	c.panels[PanelSelf].cursor = cursor.New()
	c.panels[PanelOther].cursor = cursor.New()
	return c
}

// RegisterState adds or replaces a mode. Disabled cannot be replaced.
func (c *Controller) RegisterState(spec StateSpec) error {
	if spec.State == "" {
		return fmt.Errorf("register state: empty name")
	}
	if spec.State == StateDisabled {
		return fmt.Errorf("register state: %q is reserved", spec.State)
	}
	c.specs[spec.State] = spec
	return nil
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Other() item.EntityID { return c.other }

func (c *Controller) Focus() Panel { return c.focus }

// Enabled is synonymous with not being hidden.
func (c *Controller) Enabled() bool { return !c.hidden }

// Cursor returns a copy of a panel's cursor.
func (c *Controller) Cursor(p Panel) cursor.State { return c.panels[p].cursor }

func (c *Controller) SetLayout(l Layout) { c.opts.Layout = l }

func (c *Controller) Layout() Layout { return c.opts.Layout }

// SetState switches mode. Entering a visible mode from Disabled resets both
// cursors; leaving for Disabled keeps them. A dual mode needs a live other
// entity, otherwise the view falls back to Disabled and ErrInvalidOther is
// returned.
func (c *Controller) SetState(s State, other item.EntityID) error {
	spec, ok := c.specs[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	if spec.Dual {
		if other == item.NoEntity || other == c.opts.Self || !c.source.Exists(other) {
			c.disable()
			c.log.Error("inventory view: cannot enter %s, entity %d unavailable", s, other)
			return fmt.Errorf("%w: entity %d for state %s", ErrInvalidOther, other, s)
		}
	} else {
		other = item.NoEntity
	}

	if !spec.Visible {
		c.log.Info("inventory view: %s -> %s", c.state, s)
		c.state = s
		c.hidden = true
		c.bindings = false
		c.clearInput()
		return nil
	}

	prev := c.specs[c.state]
	switch {
	case !prev.Visible:
		c.panels[PanelSelf].cursor.Reset()
		c.panels[PanelOther].cursor.Reset()
		c.spinner.Reset()
		c.spinSymbol = item.NoSymbol
		c.focus = PanelSelf
	case other != c.other:
		c.panels[PanelOther].cursor.Reset()
	}
	if !spec.Dual {
		c.focus = PanelSelf
	}

	c.log.Info("inventory view: %s -> %s (other=%d)", c.state, s, other)
	c.state = s
	c.other = other
	c.hidden = false
	c.bindings = true
	c.clearInput()
	return nil
}

// SetEnabled shows or hides the view and its input bindings without
// touching the mode. Enabling while Disabled keeps the view hidden.
func (c *Controller) SetEnabled(enabled bool) {
	if enabled && c.specs[c.state].Visible {
		c.hidden = false
		c.bindings = true
		return
	}
	c.hidden = true
	c.bindings = false
	c.clearInput()
}

// SetFilter narrows a panel. The cursor re-anchors on the next update.
func (c *Controller) SetFilter(p Panel, f inventory.Filter) {
	c.panels[p].filter = f
}

func (c *Controller) Filter(p Panel) inventory.Filter { return c.panels[p].filter }

// AddDelta accumulates directional input until the next Update.
func (c *Controller) AddDelta(rows, columns int) {
	if !c.bindings {
		return
	}
	c.pending.Rows += rows
	c.pending.Columns += columns
}

// Trigger records a one-shot action for the next Update.
func (c *Controller) Trigger(a Action) {
	if !c.bindings {
		return
	}
	c.triggers = append(c.triggers, a)
}

// SelectSlot focuses p and selects the item in one of its visible slots,
// as a pointer click would.
func (c *Controller) SelectSlot(p Panel, slot int) bool {
	if !c.bindings || !c.panelShown(p) {
		return false
	}
	ps := &c.panels[p]
	if !ps.cursor.SelectVisible(slot, ps.symbols) {
		return false
	}
	c.focus = p
	return true
}

// SelectItem focuses p and selects the item with symbol sym, scrolling as
// needed on the next update. It only sees items listed by the last update.
func (c *Controller) SelectItem(p Panel, sym item.Symbol) bool {
	if !c.bindings || !c.panelShown(p) {
		return false
	}
	ps := &c.panels[p]
	if !ps.cursor.SelectSymbol(sym, ps.symbols) {
		return false
	}
	c.focus = p
	return true
}

func (c *Controller) clearInput() {
	c.pending = cursor.Step{}
	c.triggers = nil
}

func (c *Controller) disable() {
	c.state = StateDisabled
	c.other = item.NoEntity
	c.hidden = true
	c.bindings = false
	c.focus = PanelSelf
	c.clearInput()
}

func (c *Controller) panelShown(p Panel) bool {
	spec := c.specs[c.state]
	if !spec.Visible {
		return false
	}
	return p == PanelSelf || spec.Dual
}

func (c *Controller) owner(p Panel) item.EntityID {
	if p == PanelOther {
		return c.other
	}
	return c.opts.Self
}

func (c *Controller) rect(p Panel) (rl.Rectangle, layout.Alignment) {
	if p == PanelOther {
		return c.opts.Layout.Other, c.opts.Layout.OtherAlign
	}
	return c.opts.Layout.Self, c.opts.Layout.SelfAlign
}

// Update runs one frame. dt is the elapsed time in seconds. Pending input is
// consumed whether or not the view is visible.
func (c *Controller) Update(dt float64) (Frame, error) {
	step := c.pending
	triggers := c.triggers
	c.clearInput()

	spec := c.specs[c.state]
	if c.hidden || !spec.Visible {
		return Frame{State: c.state}, nil
	}
	if spec.Dual && !c.source.Exists(c.other) {
		other := c.other
		c.disable()
		c.log.Error("inventory view: entity %d vanished, closing", other)
		return Frame{State: c.state}, fmt.Errorf("%w: entity %d vanished", ErrInvalidOther, other)
	}

	for _, a := range triggers {
		if a == ActionSwitchPanel && spec.Dual {
			c.focus = 1 - c.focus
		}
	}
	if !spec.Dual {
		c.focus = PanelSelf
	}

	frame := Frame{State: c.state, Focus: c.focus}
	var errs []error
	for _, p := range []Panel{PanelSelf, PanelOther} {
		if !c.panelShown(p) {
			continue
		}
		pf, err := c.updatePanel(p, step)
		if err != nil {
			errs = append(errs, err)
		}
		frame.Panels = append(frame.Panels, pf)
	}

	for _, a := range triggers {
		if a == ActionSwitchPanel {
			continue
		}
		c.emit(spec, a, frame)
	}

	c.advanceSpin(dt, frame)
	frame.Phase = c.spinner.Phase
	frame.Commands = c.commands(dt, frame)
	return frame, errors.Join(errs...)
}

func (c *Controller) updatePanel(p Panel, step cursor.Step) (PanelFrame, error) {
	ps := &c.panels[p]
	rect, align := c.rect(p)
	grid := cursor.GridFor(c.opts.Layout.SlotSize, rect.Width, rect.Height)
	owner := c.owner(p)

	items, err := c.source.Items(owner)
	if err != nil {
		items = nil
		err = fmt.Errorf("load items for entity %d: %w", owner, err)
	}
	order := c.policy.View(items, ps.filter)
	list := make([]item.Item, len(order))
	for i, idx := range order {
		list[i] = items[idx]
	}
	ps.symbols = item.Symbols(list, identity(len(list)))

	if p != c.focus {
		step = cursor.Step{}
	}
	ps.cursor.Update(grid, ps.symbols, step)

	states := layout.DrawStates(ps.cursor, func(i int) bool { return list[i].Equipped() })
	return PanelFrame{
		Panel:  p,
		Owner:  owner,
		Rect:   rect,
		Grid:   grid,
		Cursor: ps.cursor,
		List:   list,
		Slots:  layout.Arrange(rect, c.opts.Layout.SlotSize, align, grid, states),
	}, err
}

func (c *Controller) emit(spec StateSpec, a Action, frame Frame) {
	kind, ok := spec.Actions[Binding{Panel: c.focus, Action: a}]
	if !ok {
		c.log.Debug("inventory view: %s on %s panel is unbound in %s", a, c.focus, spec.State)
		return
	}
	pf, ok := frame.Panel(c.focus)
	if !ok {
		return
	}
	it, ok := pf.Selected()
	if !ok {
		return
	}
	from, to := endpoints(kind, c.focus, c.opts.Self, c.other)
	intent := Intent{Kind: kind, Symbol: it.Symbol, From: from, To: to}
	c.log.Verbose("inventory view: intent %s", intent)
	if c.opts.Sink != nil {
		c.opts.Sink.EnqueueIntent(intent)
	}
}

func (c *Controller) advanceSpin(dt float64, frame Frame) {
	sym := item.NoSymbol
	if pf, ok := frame.Panel(frame.Focus); ok {
		if it, ok := pf.Selected(); ok {
			sym = it.Symbol
		}
	}
	if sym != c.spinSymbol {
		c.spinSymbol = sym
		c.spinner.Reset()
		return
	}
	c.spinner.Advance(dt, c.opts.SpinSpeed)
}

func (c *Controller) commands(dt float64, frame Frame) []DrawCommand {
	l := c.opts.Layout
	itemSize := max(1, l.SlotSize-2*l.ItemPadding)
	var cmds []DrawCommand
	var highlight *DrawCommand
	var tooltip *DrawCommand

	for pi := range frame.Panels {
		pf := &frame.Panels[pi]
		cmds = append(cmds, DrawCommand{Kind: CmdPanelBackground, Panel: pf.Panel, Rect: pf.Rect})
		for si, slot := range pf.Slots {
			variant := SlotPlain
			switch {
			case slot.Item.Flags.Has(layout.DrawSelected) && pf.Panel == frame.Focus:
				variant = SlotHighlighted
			case slot.Item.Flags.Has(layout.DrawEquipped):
				variant = SlotEquipped
			}
			cmds = append(cmds, DrawCommand{Kind: CmdSlot, Panel: pf.Panel, Rect: slot.Rect, Variant: variant, SlotIndex: si})
		}
		for si, slot := range pf.Slots {
			if slot.Empty {
				continue
			}
			it := &pf.List[slot.Item.Index]
			selected := slot.Item.Flags.Has(layout.DrawSelected) && pf.Panel == frame.Focus
			phase := float32(0)
			if selected {
				phase = c.spinner.Phase
			}
			center := layout.Center(slot.Rect)
			m := preview.Fit(*it, itemSize, selected, phase, c.opts.Preview)
			cmds = append(cmds, DrawCommand{
				Kind:      CmdItem,
				Panel:     pf.Panel,
				Rect:      slot.Rect,
				SlotIndex: si,
				Item:      it,
				Transform: preview.Place(m, rl.NewVector3(center.X, center.Y, 0)),
				Selected:  selected,
			})
			if selected {
				pos := c.highlight.update(dt, pf.Panel, rl.NewVector2(slot.Rect.X, slot.Rect.Y))
				highlight = &DrawCommand{
					Kind:      CmdHighlight,
					Panel:     pf.Panel,
					Rect:      rl.NewRectangle(pos.X, pos.Y, slot.Rect.Width, slot.Rect.Height),
					SlotIndex: si,
					Item:      it,
				}
				tooltip = &DrawCommand{
					Kind:  CmdTooltip,
					Panel: pf.Panel,
					Rect:  l.InfoBox,
					Item:  it,
					Text:  it.InfoLines(),
				}
			}
		}
	}
	if highlight == nil {
		c.highlight.forget()
	} else {
		cmds = append(cmds, *highlight)
	}
	if tooltip != nil {
		cmds = append(cmds, *tooltip)
	}
	return cmds
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
