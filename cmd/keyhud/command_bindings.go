package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dskane/keyhud/internal/binding"
	"github.com/dskane/keyhud/internal/matcher"
	"github.com/dskane/keyhud/internal/profile"
)

var bindingsCategory string

func init() {
	bindingsCmd.Flags().StringVarP(&bindingsCategory, "category", "c", "", "Only show one category (e.g. Camera)")
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings <profile.rkp>",
	Short: "List the bindings of a profile",
	Long:  `Load a .rkp profile and print its bindings grouped by category.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := profile.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		idx := matcher.Build(p.AllBindings())
		fmt.Printf("profile %q (%d bindings)\n", p.Name, idx.Len())

		for c := binding.CategoryUnknown; c <= binding.CategoryAbilities; c++ {
			if bindingsCategory != "" && c.String() != bindingsCategory {
				continue
			}
			bindings := idx.GetBindingsForCategory(c)
			if len(bindings) == 0 {
				continue
			}
			fmt.Printf("\n%s\n", c)
			for _, kb := range bindings {
				line := fmt.Sprintf("  %-40s %s", kb.DisplayName(), kb.Primary)
				if !kb.Alternate.IsEmpty() {
					line += fmt.Sprintf(" (alt %s)", kb.Alternate)
				}
				fmt.Println(line)
			}
		}
	},
}
