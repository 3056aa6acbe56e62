package binding

import "strings"

// Category is a coarse classification of a binding group, used for
// display grouping and coloring.
type Category uint8

const (
	// CategoryUnknown is the fallback for names nothing else claims.
	CategoryUnknown Category = iota

	// CategoryCamera holds camera movement and zoom bindings.
	CategoryCamera

	// CategoryControlGroups holds control-group assignment and recall.
	CategoryControlGroups

	// CategoryUnitCommands holds the dynamic command card bindings.
	CategoryUnitCommands

	// CategoryGeneral holds general in-game HUD bindings.
	CategoryGeneral

	// CategoryGameMenu holds menu navigation bindings.
	CategoryGameMenu

	// CategoryObserver holds replay and observer bindings.
	CategoryObserver

	// CategoryUnitSelection holds selection-order bindings.
	CategoryUnitSelection

	// CategoryUnitControl holds direct unit-control bindings.
	CategoryUnitControl

	// CategoryBuildings holds per-building production menus.
	CategoryBuildings

	// CategoryAbilities holds unit ability bindings.
	CategoryAbilities
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryCamera:
		return "Camera"
	case CategoryControlGroups:
		return "Control Groups"
	case CategoryUnitCommands:
		return "Unit Commands"
	case CategoryGeneral:
		return "General"
	case CategoryGameMenu:
		return "Game Menu"
	case CategoryObserver:
		return "Observer"
	case CategoryUnitSelection:
		return "Unit Selection"
	case CategoryUnitControl:
		return "Unit Control"
	case CategoryBuildings:
		return "Buildings"
	case CategoryAbilities:
		return "Abilities"
	default:
		return "Unknown"
	}
}

// categoryNameMap maps exact group names (lowercase) to categories.
var categoryNameMap = map[string]Category{
	"camera":               CategoryCamera,
	"hud_control_groups":   CategoryControlGroups,
	"hud_dynamic_classic":  CategoryUnitCommands,
	"hud_dynamic_modern":   CategoryUnitCommands,
	"hud_game":             CategoryGeneral,
	"hud_menu":             CategoryGameMenu,
	"hud_replay":           CategoryObserver,
	"hud_selection_orders": CategoryUnitSelection,
	"hud_unit_control":     CategoryUnitControl,
	"abilities":            CategoryAbilities,
	"unit_abilities":       CategoryAbilities,
}

// CategoryForGroup classifies a binding group by name. Exact names take
// precedence; any build_menu_ prefix and any other name outside the hud_
// namespace is a building or unit production menu (profiles carry 70+ of
// those, one per building, and they are not individually enumerated).
func CategoryForGroup(groupName string) Category {
	name := strings.ToLower(strings.TrimSpace(groupName))
	if c, ok := categoryNameMap[name]; ok {
		return c
	}
	if strings.HasPrefix(name, "build_menu_") {
		return CategoryBuildings
	}
	if !strings.HasPrefix(name, "hud_") {
		return CategoryBuildings
	}
	return CategoryUnknown
}
