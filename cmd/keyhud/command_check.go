package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dskane/keyhud/internal/profile"
)

var checkCmd = &cobra.Command{
	Use:   "check <profile.rkp>",
	Short: "Parse a profile and report errors",
	Long:  `Parse a .rkp profile file and report syntax errors with line numbers.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := profile.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok: profile %q, %d groups, %d bindings\n",
			args[0], p.Name, len(p.Groups), p.BindingCount())
	},
}
