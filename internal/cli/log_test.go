package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLogger_PrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)

	logger.Debug("reloaded", "repos", 3)
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	logger.Warn("reload failed", "dir", "results")
	out := buf.String()
	if !strings.Contains(out, appName) || !strings.Contains(out, "reload failed") {
		t.Errorf("log line = %q, want %s prefix and message", out, appName)
	}
}

// Durations rounded to the millisecond print as "0s", "12ms", "1.234s"...
var elapsedRE = regexp.MustCompile(`Checked 3 repositories \([0-9.hm]*[0-9.]+m?s\)`)

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))

	prog.done("Checked %d repositories", 3)

	if !elapsedRE.MatchString(buf.String()) {
		t.Errorf("progress line = %q, want message followed by elapsed time", buf.String())
	}
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without attached logger should return log.Default()")
	}
}

// runInspect executes root with an extra subcommand that captures the
// logger a real subcommand would see.
func runInspect(t *testing.T, c *CLI, flags ...string) *log.Logger {
	t.Helper()
	clearEnv(t)

	var got *log.Logger
	root := c.RootCommand()
	root.AddCommand(&cobra.Command{
		Use: "inspect",
		RunE: func(cmd *cobra.Command, _ []string) error {
			got = loggerFromContext(cmd.Context())
			return nil
		},
	})
	root.SetArgs(append(flags, "inspect"))
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	return got
}

func TestRootCommand_AttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	got := runInspect(t, c)
	if got != c.Logger {
		t.Fatal("subcommand context does not carry the CLI logger")
	}
	if lvl := c.Logger.GetLevel(); lvl != LogInfo {
		t.Errorf("level = %v, want info without --verbose", lvl)
	}
}

func TestRootCommand_Verbose(t *testing.T) {
	for _, flag := range []string{"--verbose", "-v"} {
		t.Run(flag, func(t *testing.T) {
			var buf bytes.Buffer
			c := New(&buf, LogInfo)

			got := runInspect(t, c, flag)
			if lvl := c.Logger.GetLevel(); lvl != LogDebug {
				t.Fatalf("level = %v, want debug", lvl)
			}
			got.Debug("imported documents", "repos", 2)
			if !strings.Contains(buf.String(), "imported documents") {
				t.Errorf("debug line missing: %q", buf.String())
			}
		})
	}
}

func TestCheckCommand_LogsElapsed(t *testing.T) {
	clearEnv(t)
	_, repos := sampleRepos(t)

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs(append([]string{"check", "-f", "csv"}, repos...))
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := regexp.MustCompile(`Checked 2 repositories \(\S+s\)`)
	if !want.MatchString(logs.String()) {
		t.Errorf("logs = %q, want batch completion with elapsed time", logs.String())
	}
}
