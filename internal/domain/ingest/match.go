package ingest

import (
	"strings"
	"unicode"
)

// ColumnMap resolves expected column names to the header names found in
// an uploaded table.
type ColumnMap map[string]string

// Lookup returns the table column that stands for name.
func (m ColumnMap) Lookup(name string) (string, bool) {
	col, ok := m[name]
	return col, ok
}

// resolve matches each wanted name against columns. A match is, in order
// of preference, the exact name, a case-insensitive match or a column
// whose word tokens include every token of the wanted name. Columns are
// claimed at most once, so earlier names win ambiguous headers.
func resolve(columns []string, wanted []string) ColumnMap {
	return resolveColumns(columns, wanted, true)
}

// resolveExact is resolve without token matching. Statistics exports use
// fixed headers, so a token match there would only catch template files.
func resolveExact(columns []string, wanted []string) ColumnMap {
	return resolveColumns(columns, wanted, false)
}

func resolveColumns(columns []string, wanted []string, fuzzy bool) ColumnMap {
	out := make(ColumnMap, len(wanted))
	used := make(map[string]struct{}, len(wanted))
	for _, name := range wanted {
		if col, ok := matchColumn(columns, name, used, fuzzy); ok {
			out[name] = col
			used[col] = struct{}{}
		}
	}
	return out
}

func matchColumn(columns []string, name string, used map[string]struct{}, fuzzy bool) (string, bool) {
	free := func(col string) bool {
		_, taken := used[col]
		return !taken
	}

	for _, col := range columns {
		if col == name && free(col) {
			return col, true
		}
	}
	for _, col := range columns {
		if strings.EqualFold(strings.TrimSpace(col), name) && free(col) {
			return col, true
		}
	}

	if !fuzzy {
		return "", false
	}
	want := tokens(name)
	if len(want) == 0 {
		return "", false
	}
	for _, col := range columns {
		if !free(col) {
			continue
		}
		have := tokens(col)
		if containsAll(have, want) {
			return col, true
		}
	}
	return "", false
}

// tokens lower-cases s, drops apostrophes and splits on anything that is
// not a letter or digit, so "Ballon d'Or Wins" and "ballon_dor_wins"
// both yield ballon, dor, wins.
func tokens(s string) []string {
	s = strings.NewReplacer("'", "", "’", "").Replace(strings.ToLower(s))
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsAll(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, tok := range have {
		set[tok] = struct{}{}
	}
	for _, tok := range want {
		if _, ok := set[tok]; !ok {
			return false
		}
	}
	return true
}
