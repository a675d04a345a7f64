package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repohealth/pkg/deps"
	"github.com/matzehuels/repohealth/pkg/deps/ecosystems"
)

// depsCommand creates the deps command, which prints the dependency
// summary of a single repository.
func (c *CLI) depsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "deps <repo-dir>",
		Short:   "Show the dependency summary of one repository",
		Example: `  repohealth deps ~/src/credentials --json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			reg := ecosystems.Registry()
			sum, err := deps.Aggregate(ctx, args[0], reg, deps.Options{Logger: logger.Errorf})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum.Metadata())
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(args[0]))
			printKeyValue(w, "count", StyleNumber.Render(strconv.Itoa(sum.Count)))
			for _, name := range reg.Groups() {
				g := sum.Group(name)
				printKeyValue(w, name, StyleNumber.Render(strconv.Itoa(g.Count)))
				if g.Count > 0 {
					printDetail(w, "%s", g.List)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}
