package editor

import "fmt"

// Action is something a key binding triggers.
type Action int

const (
	ActionNone Action = iota
	ActionExport
	ActionSurprise
	ActionRedo
	ActionUndo
	ActionTogglePlayback

	ActionSave
	ActionRandomizeColors
	ActionRandomizeAnimation
	ActionRandomizeFont
	ActionNextLayer
	ActionPrevLayer
	ActionEditText
	ActionMoveUp
	ActionMoveDown
	ActionGrow
	ActionShrink
	ActionToggleShadow
	ActionToggleGlow
	ActionToggleGradient
	ActionCycleAnimation
	ActionCycleParticles
	ActionCycleBackground
	ActionTemplates
	ActionDesigns
	ActionCopyCSS
	ActionHelp
	ActionQuit
)

var actionNames = map[Action]string{
	ActionExport:             "export",
	ActionSurprise:           "surprise me",
	ActionRedo:               "redo",
	ActionUndo:               "undo",
	ActionTogglePlayback:     "play / pause",
	ActionSave:               "save design",
	ActionRandomizeColors:    "random colors",
	ActionRandomizeAnimation: "random animation",
	ActionRandomizeFont:      "random font",
	ActionNextLayer:          "next layer",
	ActionPrevLayer:          "previous layer",
	ActionEditText:           "edit layer text",
	ActionMoveUp:             "move layer up",
	ActionMoveDown:           "move layer down",
	ActionGrow:               "larger text",
	ActionShrink:             "smaller text",
	ActionToggleShadow:       "toggle shadow",
	ActionToggleGlow:         "toggle glow",
	ActionToggleGradient:     "toggle gradient",
	ActionCycleAnimation:     "next layer animation",
	ActionCycleParticles:     "next particle effect",
	ActionCycleBackground:    "next background effect",
	ActionTemplates:          "templates",
	ActionDesigns:            "saved designs",
	ActionCopyCSS:            "copy keyframes",
	ActionHelp:               "help",
	ActionQuit:               "quit",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// Binding ties one key to one action. Keys use bubbletea's key names.
type Binding struct {
	Key    string
	Action Action
}

// DefaultBindings is the editor's key layout. Terminals cannot tell
// ctrl+shift+z from ctrl+z, so redo sits on ctrl+y.
var DefaultBindings = []Binding{
	{"ctrl+s", ActionExport},
	{"ctrl+r", ActionSurprise},
	{"ctrl+y", ActionRedo},
	{"ctrl+z", ActionUndo},
	{" ", ActionTogglePlayback},

	{"w", ActionSave},
	{"c", ActionRandomizeColors},
	{"a", ActionRandomizeAnimation},
	{"f", ActionRandomizeFont},
	{"tab", ActionNextLayer},
	{"shift+tab", ActionPrevLayer},
	{"enter", ActionEditText},
	{"up", ActionMoveUp},
	{"down", ActionMoveDown},
	{"+", ActionGrow},
	{"-", ActionShrink},
	{"s", ActionToggleShadow},
	{"g", ActionToggleGlow},
	{"d", ActionToggleGradient},
	{"n", ActionCycleAnimation},
	{"p", ActionCycleParticles},
	{"b", ActionCycleBackground},
	{"t", ActionTemplates},
	{"o", ActionDesigns},
	{"y", ActionCopyCSS},
	{"?", ActionHelp},
	{"q", ActionQuit},
}

// Keymap resolves keys to actions. Every action has at most one key and
// every key fires at most one action.
type Keymap struct {
	bindings []Binding
	byKey    map[string]Action
	byAction map[Action]string
}

// NewKeymap builds a keymap, rejecting a key bound twice or an action
// given two keys.
func NewKeymap(bindings []Binding) (*Keymap, error) {
	k := &Keymap{
		bindings: append([]Binding(nil), bindings...),
		byKey:    make(map[string]Action, len(bindings)),
		byAction: make(map[Action]string, len(bindings)),
	}
	for _, b := range bindings {
		if b.Key == "" || b.Action == ActionNone {
			return nil, fmt.Errorf("keymap: empty binding %q -> %s", b.Key, b.Action)
		}
		if prev, ok := k.byKey[b.Key]; ok {
			return nil, fmt.Errorf("keymap: key %q bound to both %s and %s", b.Key, prev, b.Action)
		}
		if prev, ok := k.byAction[b.Action]; ok {
			return nil, fmt.Errorf("keymap: %s bound to both %q and %q", b.Action, prev, b.Key)
		}
		k.byKey[b.Key] = b.Action
		k.byAction[b.Action] = b.Key
	}
	return k, nil
}

// DefaultKeymap returns the keymap for DefaultBindings.
func DefaultKeymap() *Keymap {
	k, err := NewKeymap(DefaultBindings)
	if err != nil {
		panic(err)
	}
	return k
}

// Lookup returns the action bound to key.
func (k *Keymap) Lookup(key string) (Action, bool) {
	a, ok := k.byKey[key]
	return a, ok
}

// Key returns the key bound to a.
func (k *Keymap) Key(a Action) (string, bool) {
	key, ok := k.byAction[a]
	return key, ok
}

// Bindings returns the bindings in declaration order.
func (k *Keymap) Bindings() []Binding {
	return append([]Binding(nil), k.bindings...)
}
