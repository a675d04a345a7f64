package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repohealth/pkg/errors"
	"github.com/matzehuels/repohealth/pkg/metadata"
	"github.com/matzehuels/repohealth/pkg/report"
)

// Report output formats.
const (
	formatCSV   = "csv"
	formatTable = "table"
	formatJSON  = "json"
)

// outputFlags are shared by every command that produces a report.
type outputFlags struct {
	config    string
	output    string
	format    string
	delimiter string
	sort      bool
}

// register adds the report shaping and destination flags to cmd.
func (o *outputFlags) register(cmd *cobra.Command) {
	o.registerShape(cmd)
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVarP(&o.format, "format", "f", "", "report format: csv, table, json (default: from --output extension, else table)")
}

// registerShape adds only the flags that shape columns and rows, for
// commands that pick their own output format.
func (o *outputFlags) registerShape(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "report config with check_order and key_aliases (.toml or .yaml; default $"+envConfigPath+")")
	f.StringVar(&o.delimiter, "delimiter", metadata.DefaultDelimiter, "separator for flattened keys")
	f.BoolVar(&o.sort, "sort", false, "order repositories by name instead of input order")
}

// resolveFormat picks the report format from --format, then the output
// file extension.
func (o *outputFlags) resolveFormat() (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(o.output)) {
		case ".csv":
			format = formatCSV
		case ".json":
			format = formatJSON
		default:
			format = formatTable
		}
	}
	switch format {
	case formatCSV, formatTable, formatJSON:
		return format, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want csv, table or json)", o.format)
}

// configPath returns --config, falling back to the environment.
func (o *outputFlags) configPath(env envConfig) string {
	if o.config != "" {
		return o.config
	}
	return env.ConfigPath
}

// standardize flattens nested results and applies --sort.
func (o *outputFlags) standardize(nested *metadata.ResultSet) (*metadata.ResultSet, error) {
	if o.sort {
		nested = nested.Sorted()
	}
	return metadata.FlattenAndStandardize(nested, o.delimiter)
}

// emit standardizes nested and writes the report to --output or stdout.
func (c *CLI) emit(cmd *cobra.Command, nested *metadata.ResultSet, o *outputFlags) error {
	format, err := o.resolveFormat()
	if err != nil {
		return err
	}
	cfg, err := loadReportConfig(o.configPath(c.env))
	if err != nil {
		return err
	}
	set, err := o.standardize(nested)
	if err != nil {
		return err
	}

	if o.output == "" {
		return writeReport(cmd.OutOrStdout(), format, set, cfg)
	}
	f, err := os.Create(o.output)
	if err != nil {
		return err
	}
	if err := writeReport(f, format, set, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess("Report: %d repositories, %d columns", set.Len(), len(report.Columns(set, cfg)))
	printFile(o.output)
	return nil
}

func writeReport(w io.Writer, format string, set *metadata.ResultSet, cfg *report.Config) error {
	switch format {
	case formatCSV:
		return report.WriteCSV(w, set, cfg)
	case formatJSON:
		return report.WriteJSON(w, set, cfg)
	default:
		return report.WriteTable(w, set, cfg)
	}
}
