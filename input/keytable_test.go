package input

import (
	"testing"
)

// TestDefaultKeyTable verifies the stock bindings
func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	tests := map[string]Action{
		"w":      ActionP1Up,
		"s":      ActionP1Down,
		"d":      ActionP1Shoot,
		"up":     ActionP2Up,
		"down":   ActionP2Down,
		"left":   ActionP2Shoot,
		"p":      ActionPause,
		"r":      ActionRestart,
		"esc":    ActionQuit,
		"ctrl+c": ActionQuit,
	}
	for key, want := range tests {
		got, ok := kt.Lookup(key)
		if !ok || got != want {
			t.Errorf("key %q: expected %s, got %s (bound=%v)", key, want, got, ok)
		}
	}

	if _, ok := kt.Lookup("x"); ok {
		t.Error("Expected x unbound")
	}
}

// TestKeyTableApply overrides and moves bindings
func TestKeyTableApply(t *testing.T) {
	kt := DefaultKeyTable()

	err := kt.Apply(map[string][]string{
		"p1_shoot": {"Space", " f "},
		"p2_shoot": {"d"}, // Steals d from p1_shoot
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := kt.Keys(ActionP1Shoot); len(got) != 2 || got[0] != "f" || got[1] != "space" {
		t.Errorf("Expected p1_shoot [f space], got %v", got)
	}
	if a, _ := kt.Lookup("d"); a != ActionP2Shoot {
		t.Errorf("Expected d on p2_shoot, got %s", a)
	}
	if _, ok := kt.Lookup("left"); ok {
		t.Error("Expected left unbound after p2_shoot override")
	}
	if a, _ := kt.Lookup("w"); a != ActionP1Up {
		t.Error("Expected untouched actions kept")
	}
}

// TestKeyTableApplyErrors leaves the table unchanged on bad input
func TestKeyTableApplyErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string][]string
	}{
		{"unknown action", map[string][]string{"jump": {"j"}}},
		{"none action", map[string][]string{"none": {"j"}}},
		{"unknown key", map[string][]string{"p1_up": {"pageup"}}},
		{"punctuation", map[string][]string{"p1_up": {";"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kt := DefaultKeyTable()
			before := kt.Names()

			if err := kt.Apply(tt.overrides); err == nil {
				t.Fatal("Expected error")
			}

			after := kt.Names()
			if len(before) != len(after) {
				t.Errorf("Expected table unchanged, had %v now %v", before, after)
			}
		})
	}
}

// TestActionNamesRoundTrip resolves every action by its own name
func TestActionNamesRoundTrip(t *testing.T) {
	for a := ActionP1Up; a < actionCount; a++ {
		got, ok := ActionByName(a.String())
		if !ok || got != a {
			t.Errorf("action %d: expected %s to resolve, got %s (%v)", a, a, got, ok)
		}
	}
}
