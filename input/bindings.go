package input

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rotisserie/eris"
)

// Bindings maps physical keys to actions. Several keys may share an action.
type Bindings map[ebiten.Key]Action

// ParseBindings builds Bindings from action names to ebiten key names,
// for example {"thrust": ["W", "ArrowUp"]}.
func ParseBindings(keys map[string][]string) (Bindings, error) {
	bindings := make(Bindings)
	for name, keyNames := range keys {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, keyName := range keyNames {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return nil, eris.Wrapf(err, "binding %q for action %s", keyName, action)
			}
			if other, ok := bindings[key]; ok && other != action {
				return nil, eris.Errorf("key %q bound to both %s and %s", keyName, other, action)
			}
			bindings[key] = action
		}
	}
	return bindings, nil
}

// Keys returns the bound keys in ascending order.
func (b Bindings) Keys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// KeySource reports per-frame key transitions.
type KeySource interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// Poller feeds key transitions into a State once per frame.
type Poller struct {
	bindings Bindings
	keys     []ebiten.Key
	source   KeySource
	held     map[ebiten.Key]bool
}

// NewPoller creates a Poller reading from ebiten's input state.
func NewPoller(bindings Bindings) *Poller {
	return NewPollerWithSource(bindings, ebitenKeys{})
}

func NewPollerWithSource(bindings Bindings, source KeySource) *Poller {
	return &Poller{
		bindings: bindings,
		keys:     bindings.Keys(),
		source:   source,
		held:     make(map[ebiten.Key]bool),
	}
}

// Poll applies this frame's presses and releases to state. A release is
// applied after a press of the same key, so a tap shorter than one frame
// leaves the action released. An action stays pressed while any of its
// keys is held.
func (p *Poller) Poll(state *State) {
	for _, key := range p.keys {
		if p.source.JustPressed(key) {
			p.held[key] = true
			state.KeyDown(p.bindings[key])
		}
	}
	p.PollReleases(state)
}

// PollReleases applies only this frame's releases. It is used while another
// consumer owns the keyboard so no action is left stuck down.
func (p *Poller) PollReleases(state *State) {
	for _, key := range p.keys {
		if !p.source.JustReleased(key) {
			continue
		}
		delete(p.held, key)
		action := p.bindings[key]
		if !p.anyHeld(action) {
			state.KeyUp(action)
		}
	}
}

func (p *Poller) anyHeld(action Action) bool {
	for key := range p.held {
		if p.bindings[key] == action {
			return true
		}
	}
	return false
}
