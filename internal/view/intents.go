package view

import (
	"fmt"

	"github.com/appengine-ltd/invview/internal/item"
)

type IntentKind int

const (
	IntentUse IntentKind = iota
	IntentDrop
	IntentAlternate
	// IntentTake moves an item from the other panel into the player inventory.
	IntentTake
	// IntentPut moves an item from the player inventory to the other panel.
	IntentPut
)

func (k IntentKind) String() string {
	switch k {
	case IntentUse:
		return "use"
	case IntentDrop:
		return "drop"
	case IntentAlternate:
		return "alternate"
	case IntentTake:
		return "take"
	case IntentPut:
		return "put"
	default:
		return fmt.Sprintf("intent(%d)", int(k))
	}
}

// Intent asks the inventory service to change something. The view never
// applies it; the next frame's item lists show the outcome.
type Intent struct {
	Kind   IntentKind
	Symbol item.Symbol
	From   item.EntityID
	To     item.EntityID
}

func (i Intent) String() string {
	return fmt.Sprintf("%s symbol=%d from=%d to=%d", i.Kind, i.Symbol, i.From, i.To)
}

type IntentSink interface {
	EnqueueIntent(Intent)
}

// IntentQueue is a bounded, non-blocking IntentSink drained once per frame
// by whoever applies the intents.
type IntentQueue struct {
	ch chan Intent
}

func NewIntentQueue(size int) *IntentQueue {
	if size < 1 {
		size = 16
	}
	return &IntentQueue{ch: make(chan Intent, size)}
}

func (q *IntentQueue) EnqueueIntent(intent Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		// Drop only when saturated; the player can trigger again.
	}
}

func (q *IntentQueue) Dequeue() (Intent, bool) {
	if q == nil {
		return Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return Intent{}, false
	}
}

// Drain returns every queued intent in order.
func (q *IntentQueue) Drain() []Intent {
	var out []Intent
	for {
		intent, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, intent)
	}
}
