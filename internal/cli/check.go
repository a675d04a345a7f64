package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repohealth/pkg/checks"
	"github.com/matzehuels/repohealth/pkg/deps"
	"github.com/matzehuels/repohealth/pkg/health"
	pkgio "github.com/matzehuels/repohealth/pkg/io"
	"github.com/matzehuels/repohealth/pkg/repofs"
)

// checkCommand creates the check command, which runs all checks over a
// set of repositories and writes the aggregated report.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		out       outputFlags
		workers   int
		policy    string
		outputDir string
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "check <repo-dir>...",
		Short: "Check repositories and report their health",
		Long: `Check runs the dependency and setup.py checks over every repository
directory given, then flattens and aligns the results into one report.

Repositories are named after their directory and must be unique.`,
		Example: `  repohealth check ~/src/credentials ~/src/frontend-app-learning
  repohealth check -o health.csv -c report.toml ~/src/*
  repohealth check --policy record --output-dir results/ ~/src/*`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			pol, err := health.ParsePolicy(policy)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = c.env.Workers
			}
			files, err := repofs.NewReader(cacheSize)
			if err != nil {
				return err
			}

			runner := &health.Runner{
				Checks: []checks.Check{
					&checks.Dependencies{Options: deps.Options{Files: files, Logger: logger.Errorf}},
					&checks.SetupPy{Logger: logger.Warnf},
				},
				Workers: workers,
				Policy:  pol,
				Logger:  logger,
			}

			prog := newProgress(logger)
			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Checking %d repositories...", len(args)))
			var done counter
			runner.OnDone = func(health.Outcome) {
				spinner.SetMessage(fmt.Sprintf("Checked %d/%d repositories...", done.inc(), len(args)))
			}
			spinner.Start()
			batch, err := runner.Run(ctx, args)
			if err != nil {
				spinner.StopWithError("Check aborted")
				return err
			}
			spinner.Stop()
			prog.done("Checked %d repositories", len(batch.Outcomes))

			for _, o := range batch.Failed() {
				printWarning("%s: %s failed: %v", o.Repo, o.FailedCheck, o.Err)
			}
			if outputDir != "" {
				if err := writeDocuments(outputDir, batch.Documents()); err != nil {
					return err
				}
			}
			return c.emit(cmd, batch.Nested(), &out)
		},
	}

	out.register(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, fmt.Sprintf("repositories checked in parallel (default $%s or %d)", envWorkers, health.DefaultWorkers))
	cmd.Flags().StringVar(&policy, "policy", health.PolicySkip.String(), "on check failure: skip, record or abort")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "also write one YAML result document per repository")
	cmd.Flags().IntVar(&cacheSize, "cache-size", repofs.DefaultCacheSize, "requirement files kept in memory")

	return cmd
}

func writeDocuments(dir string, docs []*pkgio.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, doc := range docs {
		if err := pkgio.ExportYAML(doc, filepath.Join(dir, pkgio.FileName(doc.Repo))); err != nil {
			return err
		}
	}
	printSuccess("Wrote %d result documents", len(docs))
	printFile(dir)
	return nil
}
