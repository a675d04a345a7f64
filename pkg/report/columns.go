package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/repohealth/pkg/metadata"
)

// RepoNameColumn heads the first column of every report.
const RepoNameColumn = "repo_name"

// Columns returns cfg.CheckOrder followed by the remaining keys of set in
// sorted order. A nil cfg orders all keys lexicographically.
func Columns(set *metadata.ResultSet, cfg *Config) []string {
	var order []string
	if cfg != nil {
		order = cfg.CheckOrder
	}
	listed := make(map[string]bool, len(order))
	cols := make([]string, 0, len(order))
	for _, k := range order {
		if !listed[k] {
			listed[k] = true
			cols = append(cols, k)
		}
	}
	for _, k := range set.Keys() {
		if !listed[k] {
			cols = append(cols, k)
		}
	}
	return cols
}

// Header returns the header row for columns.
func Header(columns []string, cfg *Config) []string {
	h := make([]string, 0, len(columns)+1)
	h = append(h, RepoNameColumn)
	for _, c := range columns {
		h = append(h, cfg.Alias(c))
	}
	return h
}

// Rows renders one row per repository in insertion order. Columns a
// repository does not carry render as empty cells.
func Rows(set *metadata.ResultSet, columns []string) [][]string {
	rows := make([][]string, 0, set.Len())
	for _, name := range set.Names() {
		result, _ := set.Get(name)
		row := make([]string, 0, len(columns)+1)
		row = append(row, name)
		for _, c := range columns {
			row = append(row, FormatValue(result[c]))
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatValue renders a result value as a report cell.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
