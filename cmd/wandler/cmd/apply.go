package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/engine"
	"github.com/msto63/wandler/internal/transform"
	"github.com/msto63/wandler/pkg/core/logging"
)

var (
	applyPattern     string
	applyReplacement string
	applyChain       []string
)

var applyCmd = &cobra.Command{
	Use:   "apply <id> [text...]",
	Short: "Applies a transform to text or stdin",
	Long: `Applies one transform, or a chain of transforms, and prints the result.

Without text arguments the input is read from stdin; one trailing line
break of the input is dropped. Run "wandler list" for the IDs.

Examples:
  wandler apply spaces-to-camel hello big world
  wandler apply camel-to-upper-snake --chain upper-snake-to-pascal myFieldName
  cat ids.txt | wandler apply in-clause-int
  wandler apply regex-replace -p '(\w+)@(\w+)' -r '$2 at $1' me@home

` + transform.RegexHelp,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyPattern, "pattern", "p", "", "regular expression for regex-replace")
	applyCmd.Flags().StringVarP(&applyReplacement, "replacement", "r", "", "replacement for regex-replace")
	applyCmd.Flags().StringSliceVar(&applyChain, "chain", nil, "further transform IDs, applied in order")
}

func runApply(cmd *cobra.Command, args []string) error {
	eng := engine.New(engine.WithLogger(logging.New("apply")))
	catalog := eng.Catalog()

	ids := make([]transform.ID, 0, 1+len(applyChain))
	for _, raw := range append([]string{args[0]}, applyChain...) {
		id, err := catalog.ParseID(raw)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	input, err := readInput(cmd.InOrStdin(), args[1:])
	if err != nil {
		return err
	}

	out, err := chain(eng, ids, input, transform.Args{Pattern: applyPattern, Replacement: applyReplacement})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// chain applies ids in order, each to the result of the previous one
func chain(eng *engine.Engine, ids []transform.ID, input string, args transform.Args) (string, error) {
	text := input
	for _, id := range ids {
		out, err := eng.ApplyTransform(id, text, args)
		if err != nil {
			return "", err
		}
		text = out
	}
	return text, nil
}

// readInput joins the text arguments or, when there are none, reads r
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read stdin").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.apply")
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}
