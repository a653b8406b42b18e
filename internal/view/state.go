package view

import "github.com/appengine-ltd/invview/internal/item"

// State names a mode of the view. The set is open: new modes such as trade
// are added with RegisterState and need no changes to cursor, layout or
// sorting.
type State string

const (
	StateDisabled State = "disabled"
	StateNormal   State = "normal"
	StateLoot     State = "loot"
)

type Panel int

const (
	PanelSelf Panel = iota
	PanelOther
)

func (p Panel) String() string {
	if p == PanelOther {
		return "other"
	}
	return "self"
}

type Action int

const (
	ActionUse Action = iota
	ActionDrop
	ActionAlternate
	ActionSwitchPanel
)

func (a Action) String() string {
	switch a {
	case ActionUse:
		return "use"
	case ActionDrop:
		return "drop"
	case ActionAlternate:
		return "alternate"
	case ActionSwitchPanel:
		return "switch_panel"
	default:
		return "unknown"
	}
}

// Binding keys an action on a panel.
type Binding struct {
	Panel  Panel
	Action Action
}

// StateSpec describes one mode.
type StateSpec struct {
	State State
	// Visible modes show the view and accept input.
	Visible bool
	// Dual modes pair the player inventory with another entity and show
	// both panels.
	Dual bool
	// Actions maps a triggered action on a panel's selection to the intent
	// sent to the inventory service. Unmapped actions do nothing.
	Actions map[Binding]IntentKind
}

func builtinStates() map[State]StateSpec {
	return map[State]StateSpec{
		StateDisabled: {State: StateDisabled},
		StateNormal: {
			State:   StateNormal,
			Visible: true,
			Actions: map[Binding]IntentKind{
				{PanelSelf, ActionUse}:       IntentUse,
				{PanelSelf, ActionDrop}:      IntentDrop,
				{PanelSelf, ActionAlternate}: IntentAlternate,
			},
		},
		StateLoot: {
			State:   StateLoot,
			Visible: true,
			Dual:    true,
			Actions: map[Binding]IntentKind{
				{PanelSelf, ActionUse}:        IntentPut,
				{PanelSelf, ActionDrop}:       IntentDrop,
				{PanelSelf, ActionAlternate}:  IntentAlternate,
				{PanelOther, ActionUse}:       IntentTake,
				{PanelOther, ActionAlternate}: IntentAlternate,
			},
		},
	}
}

// endpoints returns the source and destination of an intent triggered on
// panel.
func endpoints(kind IntentKind, panel Panel, self, other item.EntityID) (from, to item.EntityID) {
	owner := self
	if panel == PanelOther {
		owner = other
	}
	switch kind {
	case IntentPut:
		return self, other
	case IntentTake:
		return other, self
	default:
		return owner, item.NoEntity
	}
}
