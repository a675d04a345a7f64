package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/repohealth/pkg/io"
)

// reportCommand creates the report command, which rebuilds a report from
// stored result documents without re-checking.
func (c *CLI) reportCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "report <results-dir>",
		Short: "Build a report from stored result documents",
		Long: `Report reads every *.yaml result document in a directory (as written by
"check --output-dir"), flattens and aligns them, and writes the report.`,
		Example: `  repohealth report results/ -o dashboard.csv -c report.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nested, err := pkgio.ImportDir(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("imported documents", "dir", args[0], "repos", nested.Len())
			return c.emit(cmd, nested, &out)
		},
	}

	out.register(cmd)
	return cmd
}
