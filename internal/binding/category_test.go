package binding

import "testing"

func TestCategoryForGroup(t *testing.T) {
	tests := []struct {
		group string
		want  Category
	}{
		{"camera", CategoryCamera},
		{"Camera", CategoryCamera},
		{"  camera  ", CategoryCamera},
		{"hud_control_groups", CategoryControlGroups},
		{"hud_dynamic_classic", CategoryUnitCommands},
		{"hud_dynamic_modern", CategoryUnitCommands},
		{"hud_game", CategoryGeneral},
		{"hud_menu", CategoryGameMenu},
		{"hud_replay", CategoryObserver},
		{"hud_selection_orders", CategoryUnitSelection},
		{"hud_unit_control", CategoryUnitControl},
		{"abilities", CategoryAbilities},
		{"unit_abilities", CategoryAbilities},
		// The build_menu_ prefix and anything outside hud_ is a
		// building or production menu.
		{"build_menu_barracks", CategoryBuildings},
		{"war_factory", CategoryBuildings},
		{"rifleman", CategoryBuildings},
		// Unrecognized hud_ names stay unknown.
		{"hud_experimental", CategoryUnknown},
	}

	for _, tt := range tests {
		if got := CategoryForGroup(tt.group); got != tt.want {
			t.Errorf("CategoryForGroup(%q) = %v, want %v", tt.group, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if got := CategoryCamera.String(); got != "Camera" {
		t.Errorf("CategoryCamera.String() = %q", got)
	}
	if got := Category(200).String(); got != "Unknown" {
		t.Errorf("out-of-range category = %q, want Unknown", got)
	}
}
