package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appengine-ltd/invview/internal/inventory"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/logging"
	"github.com/appengine-ltd/invview/internal/parser"
	"github.com/appengine-ltd/invview/internal/view"
)

var (
	ErrNoContainers = errors.New("no containers to loot")
	ErrNotLooting   = errors.New("no container is open")
	ErrNoSuchItem   = errors.New("no such item")
)

// Session runs the inventory view over a world: the view emits intents
// into a queue, and Step applies them once per frame. Console lines from
// Execute take the same path.
type Session struct {
	world   *World
	view    *view.Controller
	queue   *view.IntentQueue
	console *parser.Parser
	log     *logging.Logger

	frame    view.Frame
	status   string
	lastItem string
}

// NewSession pairs a world with a new view controller. Self, Sink and a
// missing Policy or Logger in opts are filled from the world.
func NewSession(world *World, opts view.Options) *Session {
	queue := view.NewIntentQueue(32)
	opts.Self = world.Player()
	opts.Sink = queue
	if opts.Policy == nil {
		opts.Policy = world.Policy()
	}
	if opts.Logger == nil {
		opts.Logger = world.log
	}
	return &Session{
		world:   world,
		view:    view.New(world, opts),
		queue:   queue,
		console: parser.New(),
		log:     opts.Logger,
	}
}

func (s *Session) World() *World { return s.world }

func (s *Session) View() *view.Controller { return s.view }

// Frame is the result of the last Step.
func (s *Session) Frame() view.Frame { return s.frame }

// Status is a one-line message about the last thing that happened.
func (s *Session) Status() string { return s.status }

func (s *Session) setStatus(format string, v ...any) {
	s.status = fmt.Sprintf(format, v...)
}

// Step updates the view and applies the intents it emitted. View errors
// are returned; rejected intents only end up in the status line.
func (s *Session) Step(dt float64) (view.Frame, error) {
	frame, err := s.view.Update(dt)
	s.frame = frame
	if err != nil {
		s.setStatus("%v", err)
	}
	for _, intent := range s.queue.Drain() {
		name := s.itemName(intent.From, intent.Symbol)
		if applyErr := s.world.Apply(intent); applyErr != nil {
			s.setStatus("cannot %s %s: %v", intent.Kind, name, applyErr)
			continue
		}
		s.lastItem = name
		s.setStatus("%s", describe(intent, name, s.world))
	}
	return frame, err
}

func describe(intent view.Intent, name string, w *World) string {
	switch intent.Kind {
	case view.IntentTake:
		return fmt.Sprintf("took %s from %s", name, w.Name(intent.From))
	case view.IntentPut:
		return fmt.Sprintf("put %s into %s", name, w.Name(intent.To))
	case view.IntentDrop:
		return fmt.Sprintf("dropped %s", name)
	case view.IntentAlternate:
		return fmt.Sprintf("dropped one %s", name)
	default:
		return fmt.Sprintf("used %s", name)
	}
}

func (s *Session) itemName(owner item.EntityID, sym item.Symbol) string {
	items, err := s.world.Items(owner)
	if err != nil {
		return fmt.Sprintf("item %d", sym)
	}
	for _, it := range items {
		if it.Symbol == sym {
			return it.DisplayName()
		}
	}
	return fmt.Sprintf("item %d", sym)
}

// ToggleInventory opens the player inventory, or closes whatever is open.
func (s *Session) ToggleInventory() error {
	if s.view.State() == view.StateDisabled {
		return s.view.SetState(view.StateNormal, item.NoEntity)
	}
	return s.Close()
}

func (s *Session) Close() error {
	return s.view.SetState(view.StateDisabled, item.NoEntity)
}

// Loot pairs the player inventory with a container.
func (s *Session) Loot(id item.EntityID) error {
	if err := s.view.SetState(view.StateLoot, id); err != nil {
		s.setStatus("%v", err)
		return err
	}
	s.setStatus("looting %s", s.world.Name(id))
	return nil
}

// CycleLoot opens the container after the current one, wrapping around.
func (s *Session) CycleLoot() error {
	ids := s.world.Containers()
	if len(ids) == 0 {
		return ErrNoContainers
	}
	next := ids[0]
	if s.view.State() == view.StateLoot {
		for i, id := range ids {
			if id == s.view.Other() {
				next = ids[(i+1)%len(ids)]
				break
			}
		}
	}
	return s.Loot(next)
}

// CycleFilter narrows a panel to the next bucket present in it, then back
// to everything.
func (s *Session) CycleFilter(p view.Panel) {
	owner := s.owner(p)
	items, _ := s.world.Items(owner)
	policy := s.world.Policy()
	present := map[inventory.Bucket]bool{}
	for _, it := range items {
		present[policy.Bucket(it)] = true
	}

	current := s.view.Filter(p)
	from := inventory.Bucket(-1)
	if len(current.Buckets) == 1 {
		from = current.Buckets[0]
	}
	for b := from + 1; b <= inventory.BucketMisc; b++ {
		if present[b] {
			s.view.SetFilter(p, inventory.Filter{Buckets: []inventory.Bucket{b}})
			s.setStatus("%s panel: %s", p, b)
			return
		}
	}
	s.view.SetFilter(p, inventory.Filter{})
	s.setStatus("%s panel: everything", p)
}

func (s *Session) owner(p view.Panel) item.EntityID {
	if p == view.PanelOther {
		return s.view.Other()
	}
	return s.world.Player()
}

// parseContext lists the names the console resolves against, in display
// order.
func (s *Session) parseContext() parser.ParseContext {
	ctx := parser.ParseContext{LastItem: s.lastItem}
	ctx.Own = s.names(s.world.Player())
	if s.view.State() == view.StateLoot {
		ctx.Other = s.names(s.view.Other())
	}
	for _, id := range s.world.Containers() {
		ctx.Containers = append(ctx.Containers, s.world.Name(id))
	}
	for b := inventory.BucketQuest; b <= inventory.BucketMisc; b++ {
		ctx.Buckets = append(ctx.Buckets, b.String())
	}
	return ctx
}

func (s *Session) names(owner item.EntityID) []string {
	items, err := s.world.Items(owner)
	if err != nil {
		return nil
	}
	var out []string
	for _, idx := range s.world.Policy().View(items, inventory.Filter{}) {
		out = append(out, items[idx].DisplayName())
	}
	return out
}

// lookup finds an item of owner by a console name: an exact name first,
// then the first fuzzy match in display order.
func (s *Session) lookup(owner item.EntityID, name string) (item.Item, error) {
	items, err := s.world.Items(owner)
	if err != nil {
		return item.Item{}, err
	}
	order := s.world.Policy().View(items, inventory.Filter{})
	want := parser.Normalise(name)
	for _, idx := range order {
		if parser.Normalise(items[idx].DisplayName()) == want {
			return items[idx], nil
		}
	}
	for _, idx := range order {
		if inventory.MatchName(want, items[idx].DisplayName()) {
			return items[idx], nil
		}
	}
	return item.Item{}, fmt.Errorf("%w: %q", ErrNoSuchItem, name)
}

// Execute runs one console line and returns the reply. Item commands are
// queued and applied by the next Step.
func (s *Session) Execute(line string) (string, error) {
	intent := s.console.Parse(s.parseContext(), line)
	if intent.Clarify != nil {
		reply := intent.Clarify.Prompt
		var opts []string
		for _, o := range intent.Clarify.Options {
			opts = append(opts, o.CommandLine())
		}
		if len(opts) > 0 {
			reply += " " + strings.Join(opts, " | ")
		}
		s.status = reply
		return reply, nil
	}

	reply, err := s.execute(intent)
	if err != nil {
		s.setStatus("%v", err)
		return "", err
	}
	s.status = reply
	return reply, nil
}

func (s *Session) execute(intent parser.Intent) (string, error) {
	arg := ""
	if len(intent.Args) > 0 {
		arg = intent.Args[0]
	}
	switch intent.Verb {
	case "help":
		var verbs []string
		for _, c := range s.console.Commands() {
			verbs = append(verbs, c.Canonical)
		}
		return "commands: " + strings.Join(verbs, ", "), nil
	case "inventory":
		if err := s.view.SetState(view.StateNormal, item.NoEntity); err != nil {
			return "", err
		}
		return "inventory open", nil
	case "close":
		if err := s.Close(); err != nil {
			return "", err
		}
		return "closed", nil
	case "loot":
		id, ok := s.containerByName(arg)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownEntity, arg)
		}
		if err := s.Loot(id); err != nil {
			return "", err
		}
		return "looting " + s.world.Name(id), nil
	case "switch":
		s.view.Trigger(view.ActionSwitchPanel)
		return "switched panel", nil
	case "find":
		p := s.view.Focus()
		s.view.SetFilter(p, inventory.Filter{Query: arg})
		return fmt.Sprintf("%s panel: matching %q", p, arg), nil
	case "show":
		b, ok := inventory.ParseBucket(arg)
		if !ok {
			return "", fmt.Errorf("unknown group %q", arg)
		}
		p := s.view.Focus()
		s.view.SetFilter(p, inventory.Filter{Buckets: []inventory.Bucket{b}})
		return fmt.Sprintf("%s panel: %s", p, b), nil
	case "clear":
		s.view.SetFilter(view.PanelSelf, inventory.Filter{})
		s.view.SetFilter(view.PanelOther, inventory.Filter{})
		return "filters cleared", nil
	case "take":
		if s.view.State() != view.StateLoot {
			return "", ErrNotLooting
		}
		return s.queueItem(view.PanelOther, arg, view.Intent{Kind: view.IntentTake, From: s.view.Other(), To: s.world.Player()})
	case "put":
		if s.view.State() != view.StateLoot {
			return "", ErrNotLooting
		}
		return s.queueItem(view.PanelSelf, arg, view.Intent{Kind: view.IntentPut, From: s.world.Player(), To: s.view.Other()})
	case "use":
		return s.queueItem(view.PanelSelf, arg, view.Intent{Kind: view.IntentUse, From: s.world.Player()})
	case "drop":
		kind := view.IntentDrop
		if intent.Quantity != nil && intent.Quantity.N == 1 {
			kind = view.IntentAlternate
		}
		return s.queueItem(view.PanelSelf, arg, view.Intent{Kind: kind, From: s.world.Player()})
	case "split":
		return s.queueItem(view.PanelSelf, arg, view.Intent{Kind: view.IntentAlternate, From: s.world.Player()})
	default:
		return "", fmt.Errorf("unsupported command %q", intent.Verb)
	}
}

// queueItem resolves name in the panel's owner, moves the cursor onto it
// when the panel is shown and queues the intent for the next Step.
func (s *Session) queueItem(p view.Panel, name string, intent view.Intent) (string, error) {
	it, err := s.lookup(intent.From, name)
	if err != nil {
		return "", err
	}
	intent.Symbol = it.Symbol
	s.view.SelectItem(p, it.Symbol)
	s.lastItem = it.DisplayName()
	s.queue.EnqueueIntent(intent)
	return fmt.Sprintf("%s %s", intent.Kind, it.DisplayName()), nil
}

func (s *Session) containerByName(name string) (item.EntityID, bool) {
	want := parser.Normalise(name)
	for _, id := range s.world.Containers() {
		if parser.Normalise(s.world.Name(id)) == want {
			return id, true
		}
	}
	for _, id := range s.world.Containers() {
		if inventory.MatchName(want, s.world.Name(id)) {
			return id, true
		}
	}
	return item.NoEntity, false
}
