package difficulty

import (
	"sort"
	"strconv"
	"strings"
)

// ChartColumns lists the chart column headers in display order.
var ChartColumns = []string{
	"Enemy",
	"Base/Origin",
	"Rarity",
	"DifficultyRating",
	"SpawnAmountModifier",
	"Encounters",
	"ConstantPressure",
	"Pool",
}

// DefaultSortField is the column the chart is sorted by when the caller
// picks none.
const DefaultSortField = "Enemy"

// Row is one chart line, keyed by column name. Rows carry no identity
// beyond their position in the output; they are rebuilt on every run.
type Row map[string]string

// sortKind describes how the values of one column compare.
type sortKind int

const (
	// kindText compares cell text as-is.
	kindText sortKind = iota
	// kindBoolText compares the stringified flag values
	// (True/False/Mutated) lexically.
	kindBoolText
	// kindNumeric compares by extracted numeric key with a -1 sentinel
	// for non-numeric cells.
	kindNumeric
)

// sortKinds is the declarative comparison table for the sortable fields.
var sortKinds = map[string]sortKind{
	"Enemy":               kindText,
	"Pool":                kindText,
	"Encounters":          kindBoolText,
	"ConstantPressure":    kindBoolText,
	"Rarity":              kindNumeric,
	"DifficultyRating":    kindNumeric,
	"SpawnAmountModifier": kindNumeric,
}

// sortFieldOrder fixes the order SortFields lists the accepted values in.
var sortFieldOrder = []string{
	"Enemy", "Rarity", "SpawnAmountModifier", "Encounters",
	"DifficultyRating", "Pool", "ConstantPressure",
}

// ValidSortField reports whether the chart can be sorted by the field.
func ValidSortField(field string) bool {
	_, ok := sortKinds[field]
	return ok
}

// SortFields returns the accepted sort field names.
func SortFields() []string {
	return append([]string(nil), sortFieldOrder...)
}

// numericKey extracts the numeric sort key from a cell. Baseline-marked
// values ("3.5 (*)") parse their leading number; multi-part values use only
// their first part; anything non-numeric ("Mutated", "N/A") sorts before
// all real numbers via a -1 sentinel.
func numericKey(cell string) float64 {
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return -1
	}

	token := strings.Trim(fields[0], "[],")
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	return -1
}

// SortRows orders rows in place by the chosen field using its declared
// comparison kind. The sort is stable, so rows with equal keys keep their
// assembly order.
func SortRows(rows []Row, field string) {
	kind := sortKinds[field]
	sort.SliceStable(rows, func(i, j int) bool {
		if kind == kindNumeric {
			return numericKey(rows[i][field]) < numericKey(rows[j][field])
		}
		return rows[i][field] < rows[j][field]
	})
}

// RowCells flattens rows into cell slices following ChartColumns order,
// ready for the table renderer.
func RowCells(rows []Row) [][]string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(ChartColumns))
		for j, col := range ChartColumns {
			line[j] = row[col]
		}
		cells[i] = line
	}
	return cells
}
