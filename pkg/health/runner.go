package health

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/repohealth/pkg/checks"
	"github.com/matzehuels/repohealth/pkg/errors"
	"github.com/matzehuels/repohealth/pkg/observability"
)

// DefaultWorkers is the number of repositories checked concurrently.
const DefaultWorkers = 4

// ErrorKey is the results section written under [PolicyRecord].
const ErrorKey = "error"

// Runner checks repositories in parallel.
type Runner struct {
	Checks  []checks.Check
	Workers int         // Concurrent repositories (default: DefaultWorkers)
	Policy  Policy      // Failure handling (default: PolicySkip)
	Logger  *log.Logger // Progress and failure log (optional)

	// OnDone is called after each repository completes. It may be called
	// from several goroutines at once.
	OnDone func(Outcome)
}

// Run checks every repository in repoPaths. Repository names are the base
// names of their paths and must be unique within a batch.
func (r *Runner) Run(ctx context.Context, repoPaths []string) (*Batch, error) {
	names, err := repoNames(repoPaths)
	if err != nil {
		return nil, err
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	batch := &Batch{
		RunID:    uuid.NewString(),
		Policy:   r.Policy,
		Started:  time.Now(),
		Outcomes: make([]Outcome, len(repoPaths)),
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		abortMu  sync.Mutex
		abortErr error
	)
	jobs := make(chan int, workers*2)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				out := r.check(ctx, batch.RunID, names[i], repoPaths[i])
				batch.Outcomes[i] = out
				if out.Err != nil {
					logger.Warn("check failed", "repo", out.Repo, "check", out.FailedCheck, "err", out.Err)
					if r.Policy == PolicyAbort {
						abortMu.Lock()
						if abortErr == nil {
							abortErr = fmt.Errorf("%s: %w", out.Repo, out.Err)
						}
						abortMu.Unlock()
						cancel()
					}
				} else {
					logger.Debug("checked", "repo", out.Repo)
				}
				if r.OnDone != nil {
					r.OnDone(out)
				}
			}
		}()
	}

schedule:
	for i := range repoPaths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break schedule
		}
	}
	close(jobs)
	wg.Wait()

	if abortErr != nil {
		return nil, abortErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch.Duration = time.Since(batch.Started)
	ok, failed := batch.counts()
	observability.Checks().OnBatchComplete(ctx, batch.RunID, ok, failed, batch.Duration)
	logger.Info("batch complete", "run", batch.RunID, "repos", len(repoPaths), "failed", failed, "took", batch.Duration.Round(time.Millisecond))
	return batch, nil
}

func (r *Runner) check(ctx context.Context, runID, name, path string) Outcome {
	list := make([]checks.Check, len(r.Checks))
	for i, c := range r.Checks {
		list[i] = instrumented{Check: c, repo: name}
	}

	out := Outcome{Repo: name, Path: path, RunID: runID, CheckedAt: time.Now().UTC()}
	results, failed, err := checks.Run(ctx, path, list)
	out.Results = results
	if err != nil {
		out.Err = err
		out.FailedCheck = failed.Key()
		if r.Policy == PolicyRecord {
			section := results.Section(ErrorKey)
			section["check"] = out.FailedCheck
			section["message"] = errors.UserMessage(err)
		}
	}
	return out
}

type instrumented struct {
	checks.Check
	repo string
}

func (c instrumented) Run(ctx context.Context, repoPath string, results checks.Results) error {
	hooks := observability.Checks()
	hooks.OnCheckStart(ctx, c.repo, c.Key())
	start := time.Now()
	err := c.Check.Run(ctx, repoPath, results)
	hooks.OnCheckComplete(ctx, c.repo, c.Key(), time.Since(start), err)
	return err
}

func repoNames(paths []string) ([]string, error) {
	names := make([]string, len(paths))
	seen := make(map[string]string, len(paths))
	for i, p := range paths {
		name := filepath.Base(filepath.Clean(p))
		if name == "." || name == string(filepath.Separator) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "cannot name repository at %q", p)
		}
		if prev, dup := seen[name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "repositories %q and %q share the name %q", prev, p, name)
		}
		seen[name] = p
		names[i] = name
	}
	return names, nil
}
