package cmd

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/transform"
)

var listGroup string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available transforms",
	Long: `Lists every transform with its ID, tab and label.

Examples:
  wandler list
  wandler list --group sql`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "only list one tab (misc, case, sql, regex)")
}

func runList(cmd *cobra.Command, args []string) error {
	catalog := transform.Default()

	groups := catalog.Groups()
	if listGroup != "" {
		g := transform.Group(listGroup)
		if !slices.Contains(groups, g) {
			return mdwerror.Newf("unknown group %q", listGroup).WithCode(mdwerror.CodeInvalidInput)
		}
		groups = []transform.Group{g}
	}

	var rows [][]string
	for _, g := range groups {
		for _, e := range catalog.ByGroup(g) {
			rows = append(rows, []string{string(e.ID), string(g), e.Label})
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TAB", "LABEL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
