package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repohealth/pkg/dashboard"
	pkgio "github.com/matzehuels/repohealth/pkg/io"
	"github.com/matzehuels/repohealth/pkg/metadata"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command, which exposes stored results
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		out    outputFlags
		addr   string
		reload time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve <results-dir>",
		Short: "Serve stored results as a JSON and CSV dashboard",
		Example: `  repohealth serve results/ --addr :9000
  repohealth serve results/ --reload 1m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			dir := args[0]

			load := func() (*metadata.ResultSet, error) {
				nested, err := pkgio.ImportDir(dir)
				if err != nil {
					return nil, err
				}
				return out.standardize(nested)
			}

			set, err := load()
			if err != nil {
				return err
			}
			cfg, err := loadReportConfig(out.configPath(c.env))
			if err != nil {
				return err
			}
			if addr == "" {
				addr = c.env.Addr
			}

			srv := dashboard.New(set, cfg)
			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			if reload > 0 {
				go func() {
					ticker := time.NewTicker(reload)
					defer ticker.Stop()
					for {
						select {
						case <-ctx.Done():
							return
						case <-ticker.C:
							fresh, err := load()
							if err != nil {
								logger.Warn("reload failed", "dir", dir, "err", err)
								continue
							}
							srv.Update(fresh)
							logger.Debug("reloaded", "repos", fresh.Len())
						}
					}
				}()
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- httpSrv.ListenAndServe()
			}()
			printInfo("Serving %d repositories on %s", set.Len(), StyleHighlight.Render(addr))

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			}
		},
	}

	out.registerShape(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $"+envAddr+" or "+defaultAddr+")")
	cmd.Flags().DurationVar(&reload, "reload", 0, "re-read the results directory at this interval (0 disables)")
	return cmd
}
