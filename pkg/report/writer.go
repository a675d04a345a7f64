package report

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/repohealth/pkg/metadata"
)

// WriteCSV writes the header and one row per repository to w.
func WriteCSV(w io.Writer, set *metadata.ResultSet, cfg *Config) error {
	cols := Columns(set, cfg)
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(cols, cfg)); err != nil {
		return err
	}
	if err := cw.WriteAll(Rows(set, cols)); err != nil {
		return err
	}
	return cw.Error()
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// WriteTable renders the report as a bordered terminal table.
func WriteTable(w io.Writer, set *metadata.ResultSet, cfg *Config) error {
	cols := Columns(set, cfg)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(Header(cols, cfg)...).
		Rows(Rows(set, cols)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableNameStyle
			}
			return lipgloss.NewStyle()
		})
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

// Record is one repository's row keyed by column name.
type Record map[string]any

// Records returns one Record per repository in insertion order. Values keep
// their original types; keys are raw column keys plus [RepoNameColumn].
func Records(set *metadata.ResultSet, cfg *Config) []Record {
	cols := Columns(set, cfg)
	out := make([]Record, 0, set.Len())
	for _, name := range set.Names() {
		result, _ := set.Get(name)
		rec := make(Record, len(cols)+1)
		rec[RepoNameColumn] = name
		for _, c := range cols {
			rec[c] = result[c]
		}
		out = append(out, rec)
	}
	return out
}

// WriteJSON writes [Records] as an indented JSON array.
func WriteJSON(w io.Writer, set *metadata.ResultSet, cfg *Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(set, cfg))
}
