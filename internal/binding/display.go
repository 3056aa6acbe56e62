package binding

import "strings"

// upperAbbreviations are command-name words rendered fully upper-case.
var upperAbbreviations = map[string]struct{}{
	"ui":  {},
	"hud": {},
	"aoe": {},
	"rts": {},
	"hp":  {},
	"mp":  {},
	"xp":  {},
}

// FormatCommandName turns a command id like "toggle_hud_overlay" into a
// display name like "Toggle HUD Overlay": underscores become spaces and
// each word is capitalized, except known abbreviations which are rendered
// upper-case.
func FormatCommandName(commandID string) string {
	if commandID == "" {
		return ""
	}

	words := strings.Split(commandID, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		if _, ok := upperAbbreviations[lower]; ok {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}
