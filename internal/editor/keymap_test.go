package editor

import "testing"

func TestDefaultKeymapCoreBindings(t *testing.T) {
	k := DefaultKeymap()
	tests := []struct {
		key  string
		want Action
	}{
		{"ctrl+s", ActionExport},
		{"ctrl+r", ActionSurprise},
		{"ctrl+y", ActionRedo},
		{"ctrl+z", ActionUndo},
		{" ", ActionTogglePlayback},
	}
	for _, tt := range tests {
		got, ok := k.Lookup(tt.key)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %s, %v; want %s", tt.key, got, ok, tt.want)
		}
		if key, _ := k.Key(tt.want); key != tt.key {
			t.Errorf("Key(%s) = %q, want %q", tt.want, key, tt.key)
		}
	}
}

func TestDefaultKeymapOneBindingPerAction(t *testing.T) {
	k := DefaultKeymap()
	seen := map[Action]bool{}
	for _, b := range k.Bindings() {
		if seen[b.Action] {
			t.Errorf("%s bound twice", b.Action)
		}
		seen[b.Action] = true
	}
	for a := range actionNames {
		if !seen[a] {
			t.Errorf("%s has no binding", a)
		}
	}
}

func TestNewKeymapRejectsConflicts(t *testing.T) {
	tests := []struct {
		name     string
		bindings []Binding
	}{
		{"key twice", []Binding{{"x", ActionUndo}, {"x", ActionRedo}}},
		{"action twice", []Binding{{"x", ActionUndo}, {"y", ActionUndo}}},
		{"empty key", []Binding{{"", ActionUndo}}},
		{"no action", []Binding{{"x", ActionNone}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKeymap(tt.bindings); err == nil {
				t.Error("NewKeymap() error = nil")
			}
		})
	}
}

func TestLookupUnbound(t *testing.T) {
	if a, ok := DefaultKeymap().Lookup("ctrl+shift+q"); ok {
		t.Errorf("Lookup(unbound) = %s", a)
	}
}

func TestBindingsIsCopy(t *testing.T) {
	k := DefaultKeymap()
	b := k.Bindings()
	b[0].Action = ActionQuit
	if got, _ := k.Lookup(b[0].Key); got == ActionQuit {
		t.Error("Bindings() exposes internal state")
	}
	if k.Bindings()[0].Action == ActionQuit {
		t.Error("Bindings() exposes internal slice")
	}
}
