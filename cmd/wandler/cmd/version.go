package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/wandler/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		for _, c := range []struct{ label, name string }{
			{"Catalog:", "catalog"},
			{"Protocol:", "protocol"},
			{"TUI:", "tui"},
		} {
			fmt.Fprintf(out, "  %-9s %s\n", c.label, version.ComponentVersion(c.name))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
