package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/matzehuels/repohealth/pkg/errors"
	"github.com/matzehuels/repohealth/pkg/report"
)

// Environment variables read at startup. A .env file in the working
// directory is loaded first; variables already set in the process win.
const (
	envConfigPath = "REPOHEALTH_CONFIG"
	envWorkers    = "REPOHEALTH_WORKERS"
	envAddr       = "REPOHEALTH_ADDR"
)

// envConfig holds flag defaults taken from the environment.
type envConfig struct {
	ConfigPath string
	Workers    int
	Addr       string
}

func loadEnv() (envConfig, error) {
	_ = godotenv.Load()
	return envFrom(os.LookupEnv)
}

func envFrom(lookup func(string) (string, bool)) (envConfig, error) {
	env := envConfig{Addr: defaultAddr}
	if v, ok := lookup(envConfigPath); ok {
		env.ConfigPath = strings.TrimSpace(v)
	}
	if v, ok := lookup(envWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return env, errors.New(errors.ErrCodeInvalidConfig, "%s must be a positive integer, got %q", envWorkers, v)
		}
		env.Workers = n
	}
	if v, ok := lookup(envAddr); ok && strings.TrimSpace(v) != "" {
		env.Addr = strings.TrimSpace(v)
	}
	return env, nil
}

// loadReportConfig reads the report configuration at path. An empty path
// yields an empty configuration: all columns sorted, no aliases.
func loadReportConfig(path string) (*report.Config, error) {
	if path == "" {
		return &report.Config{}, nil
	}
	return report.LoadConfig(path)
}
