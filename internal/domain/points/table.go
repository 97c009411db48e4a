package points

import (
	"fmt"
	"sort"
	"strings"
)

var defaultValues = map[Label]int{
	BallonDorWin:             5,
	BallonDorSecond:          3,
	BallonDorThird:           1,
	LaLigaTitle:              1,
	ChampionsLeagueWin:       5,
	LaLigaBestPlayer:         4,
	LaLigaBreakthroughPlayer: 1,
	LaLigaGoldenBoot:         3,
	TwentyGoalSeason:         2,
	MostAssistsLaLigaSeason:  2,
	TenAssistSeason:          1,
	CupFinalWinner:           1,
	OtherTrophies:            1,
	TwoHundredLaLigaGoals:    5,
	OneHundredLaLigaGoals:    2,
	CLTopScorer:              5,
	MostAssistsInCLSeason:    2,
}

// Table maps achievement labels to point values. The zero value is an
// empty table where every lookup returns 0.
type Table struct {
	values map[Label]int
}

// Entry is one priced label.
type Entry struct {
	Label Label
	Value int
}

// Default returns the canonical points table.
func Default() Table {
	values := make(map[Label]int, len(defaultValues))
	for label, value := range defaultValues {
		values[label] = value
	}
	return Table{values: values}
}

// New builds an alternate table. Labels are trimmed; empty labels and
// negative values are rejected.
func New(values map[string]int) (Table, error) {
	out := make(map[Label]int, len(values))
	for raw, value := range values {
		label := strings.TrimSpace(raw)
		if label == "" {
			return Table{}, fmt.Errorf("points label is required")
		}
		if value < 0 {
			return Table{}, fmt.Errorf("points value must be >= 0: label=%q value=%d", label, value)
		}
		out[Label(label)] = value
	}
	return Table{values: out}, nil
}

// ValueOf returns the points for label, or 0 when the label is unknown.
func (t Table) ValueOf(label string) int {
	return t.values[Label(label)]
}

// Value is ValueOf for typed labels.
func (t Table) Value(label Label) int {
	return t.values[label]
}

// With returns a copy of the table with label set to value.
func (t Table) With(label Label, value int) (Table, error) {
	if value < 0 {
		return t, fmt.Errorf("points value must be >= 0: label=%q value=%d", label, value)
	}
	values := make(map[Label]int, len(t.values)+1)
	for k, v := range t.values {
		values[k] = v
	}
	values[label] = value
	return Table{values: values}, nil
}

// Len returns the number of priced labels.
func (t Table) Len() int {
	return len(t.values)
}

// Entries lists the table with canonical labels first, in their display
// order, followed by any extra labels sorted alphabetically.
func (t Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.values))
	seen := make(map[Label]struct{}, len(CanonicalLabels))
	for _, label := range CanonicalLabels {
		value, ok := t.values[label]
		if !ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, Entry{Label: label, Value: value})
	}

	extras := make([]Label, 0)
	for label := range t.values {
		if _, ok := seen[label]; ok {
			continue
		}
		extras = append(extras, label)
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	for _, label := range extras {
		out = append(out, Entry{Label: label, Value: t.values[label]})
	}
	return out
}
