package binding

import "testing"

func TestModifierBits(t *testing.T) {
	// The wire/profile encoding relies on these exact values.
	if ModCtrl != 1 || ModShift != 2 || ModAlt != 4 {
		t.Fatalf("modifier bits = %d/%d/%d, want 1/2/4", ModCtrl, ModShift, ModAlt)
	}
}

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mods   Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModShift, ModShift, true},
		{ModCtrl | ModShift, ModAlt, false},
	}
	for _, tt := range tests {
		if got := tt.mods.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mods, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	mods := ModNone.With(ModCtrl).With(ModAlt)
	if !mods.HasCtrl() || !mods.HasAlt() || mods.HasShift() {
		t.Errorf("With chain produced %v", mods)
	}
	mods = mods.Without(ModCtrl)
	if mods.HasCtrl() || !mods.HasAlt() {
		t.Errorf("Without(ModCtrl) produced %v", mods)
	}
	if !ModNone.IsEmpty() || mods.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModShift, "Shift"},
		{ModAlt, "Alt"},
		{ModCtrl | ModShift | ModAlt, "Ctrl+Shift+Alt"},
	}
	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"Control", ModCtrl},
		{"control", ModCtrl},
		{"SHIFT", ModShift},
		{"Alt", ModAlt},
		{"R", ModNone},
		{"Meta", ModNone},
	}
	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
