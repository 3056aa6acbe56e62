package input

import (
	"strings"

	"github.com/dskane/keyhud/internal/binding"
)

// modifierKeyNames maps capture key names (lowercase) of the modifier
// keys themselves, either side, to the modifier they represent.
var modifierKeyNames = map[string]binding.Modifier{
	"control":      binding.ModCtrl,
	"leftcontrol":  binding.ModCtrl,
	"rightcontrol": binding.ModCtrl,
	"ctrl":         binding.ModCtrl,
	"leftctrl":     binding.ModCtrl,
	"rightctrl":    binding.ModCtrl,
	"shift":        binding.ModShift,
	"leftshift":    binding.ModShift,
	"rightshift":   binding.ModShift,
	"alt":          binding.ModAlt,
	"leftalt":      binding.ModAlt,
	"rightalt":     binding.ModAlt,
}

// ModifierForKey returns the modifier a key name represents, or ModNone
// when the key is not a modifier key.
func ModifierForKey(keyText string) binding.Modifier {
	if m, ok := modifierKeyNames[strings.ToLower(keyText)]; ok {
		return m
	}
	return binding.ModNone
}

// IsModifierKey returns true if keyText names a Ctrl, Shift, or Alt key,
// either side.
func IsModifierKey(keyText string) bool {
	return ModifierForKey(keyText) != binding.ModNone
}
