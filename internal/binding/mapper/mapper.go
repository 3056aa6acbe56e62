// Package mapper walks a parsed .rkp value tree into binding domain
// entities.
//
// The walk is permissive on purpose: missing fields take defaults,
// wrongly-typed fields are skipped, and a binding without a command is
// dropped. Profile files are hand-edited and frequently incomplete; a
// partial profile is still useful.
package mapper

import (
	"path/filepath"
	"strings"

	"github.com/dskane/keyhud/internal/binding"
	"github.com/dskane/keyhud/internal/rkp/ast"
)

// Map turns the root table of a parsed profile document into a
// BindingProfile. path is the source file path, used for the default
// profile name and recorded on the result.
func Map(root *ast.Table, path string) *binding.BindingProfile {
	profile := &binding.BindingProfile{
		Name:           root.GetString("name", defaultName(path)),
		FilePath:       path,
		WarnConflicts:  root.GetBool("warnConflicts", true),
		WarnUnremapped: root.GetBool("warnUnremapped", false),
	}

	groups := root.GetTable("bindingGroups")
	for _, entry := range groups.Keyed() {
		tbl, ok := entry.Value.(*ast.Table)
		if !ok {
			// Non-table values under bindingGroups carry no bindings.
			continue
		}
		profile.Groups = append(profile.Groups, mapGroup(entry.Name, tbl))
	}
	return profile
}

// mapGroup builds one group. Duplicate group names across the profile
// stay separate groups; callers must not merge them.
func mapGroup(name string, tbl *ast.Table) *binding.BindingGroup {
	group := &binding.BindingGroup{
		Name:     name,
		Category: binding.CategoryForGroup(name),
	}

	for _, v := range tbl.Anonymous() {
		entry, ok := v.(*ast.Table)
		if !ok {
			continue
		}
		if kb := mapBinding(group, entry); kb != nil {
			group.Bindings = append(group.Bindings, kb)
		}
	}
	return group
}

// mapBinding builds one keybinding from an anonymous group entry.
// Returns nil when the entry has no usable command.
func mapBinding(group *binding.BindingGroup, tbl *ast.Table) *binding.Keybinding {
	command := strings.TrimSpace(tbl.GetString("command", ""))
	if command == "" {
		return nil
	}

	kb := &binding.Keybinding{
		CommandID:   command,
		GroupName:   group.Name,
		Category:    group.Category,
		RepeatCount: -1,
	}

	combos := tbl.GetTable("keycombos")
	for i, v := range combos.Anonymous() {
		descriptor, ok := v.(*ast.Table)
		if !ok {
			continue
		}
		combo := binding.ParseCombo(descriptor.GetString("combo", ""))
		switch i {
		case 0:
			kb.Primary = combo
			// Event type and repeat behavior come from the first
			// descriptor only.
			kb.EventType = descriptor.GetString("event", "")
			kb.RepeatCount = descriptor.GetInt("repeatCount", -1)
		case 1:
			kb.Alternate = combo
		}
	}
	return kb
}

func defaultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
