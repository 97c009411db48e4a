package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/laliga-forwards/internal/platform/tabular"
)

const (
	sampleColumns       = 10
	maxNonNumericRatio  = 0.5
	templateHint        = "Hint: download the detailed or simple template and copy your data into it."
	footballHint        = "Hint: statistics exports need at least a Player column with one name per row."
	noDataRowsMessage   = "The file has a header but no data rows. Add at least one player row."
	footballAdvisoryFmt = "Note: recommended columns not found: %s. Missing values default to 0 or %q."
)

var (
	templateNumeric   = []string{ColCareerGoals, ColLaLigaTitles, ColCLTitles}
	footballAdvisory  = []string{ColGoals, ColAssists, ColSquad, ColPos}
	templateOptionals = func() []string {
		out := []string{ColBallonDorWins}
		for i := 1; i <= templateSeasons; i++ {
			out = append(out,
				SeasonColumn(i, "goals"),
				SeasonColumn(i, "assists"),
				SeasonColumn(i, "awards"),
				SeasonColumn(i, "team_achievements"),
			)
		}
		return append(out, ColBestGoals, ColBestAssists, ColMainAwards)
	}()
)

// Result is the outcome of validating a table. Columns is only set when
// Valid is true and tells the transformer where each expected column
// lives in the table.
type Result struct {
	Valid   bool
	Format  Format
	Message string
	Columns ColumnMap
	Rows    int
}

// Validate checks table against the layout Detect reports. When the
// layout is unknown both validators run; the first success wins and two
// failures are reported together.
func Validate(table tabular.Table) Result {
	detected := Detect(table.Columns)
	if table.NumRows() == 0 {
		return Result{Format: detected, Message: noDataRowsMessage}
	}

	switch detected {
	case FormatCustomTemplate:
		return validateCustomTemplate(table)
	case FormatFootballStats:
		return validateFootballStats(table)
	}

	custom := validateCustomTemplate(table)
	if custom.Valid {
		return custom
	}
	football := validateFootballStats(table)
	if football.Valid {
		return football
	}
	return Result{
		Format: FormatUnknown,
		Message: "The file layout was not recognised.\n" +
			"As a custom template: " + custom.Message + "\n" +
			"As a statistics export: " + football.Message,
	}
}

func validateCustomTemplate(table tabular.Table) Result {
	fail := func(msg string) Result {
		return Result{Format: FormatCustomTemplate, Message: msg + "\n" + availableColumns(table.Columns) + "\n" + templateHint}
	}

	required := resolve(table.Columns, templateColumns)
	var missing []string
	for _, name := range templateColumns {
		if _, ok := required[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fail("Missing required columns: " + strings.Join(missing, ", "))
	}

	for _, name := range templateNumeric {
		values := table.Column(required[name])
		bad := 0
		for _, cell := range values {
			if _, ok := parseNumber(cell); !ok {
				bad++
			}
		}
		if float64(bad) > float64(len(values))*maxNonNumericRatio {
			return fail(fmt.Sprintf("Column '%s' must contain numeric values (%d of %d could not be read)", required[name], bad, len(values)))
		}
	}

	if empty := countMissing(table.Column(required[ColPlayerName])); empty > 0 {
		return fail(fmt.Sprintf("Player names cannot be empty: found %d empty '%s' values", empty, required[ColPlayerName]))
	}

	columns := required
	for name, col := range resolveOptional(table.Columns, required) {
		columns[name] = col
	}

	totalGoals := 0
	for _, cell := range table.Column(required[ColCareerGoals]) {
		if n, ok := parseCount(cell); ok {
			totalGoals += n
		}
	}
	return Result{
		Valid:   true,
		Format:  FormatCustomTemplate,
		Message: fmt.Sprintf("Successfully loaded %d players with %d total career goals", table.NumRows(), totalGoals),
		Columns: columns,
		Rows:    table.NumRows(),
	}
}

func validateFootballStats(table tabular.Table) Result {
	columns := resolveExact(table.Columns, []string{ColPlayer, ColGoals, ColAssists, ColSquad, ColPos})
	playerCol, ok := columns[ColPlayer]
	if !ok {
		return Result{
			Format:  FormatFootballStats,
			Message: "Missing required column: Player\n" + availableColumns(table.Columns) + "\n" + footballHint,
		}
	}
	if empty := countMissing(table.Column(playerCol)); empty > 0 {
		return Result{
			Format:  FormatFootballStats,
			Message: fmt.Sprintf("Player names cannot be empty: found %d empty '%s' values\n%s", empty, playerCol, footballHint),
		}
	}

	var absent []string
	for _, name := range footballAdvisory {
		if _, ok := columns[name]; !ok {
			absent = append(absent, name)
		}
	}

	msg := fmt.Sprintf("Successfully loaded %d players from a statistics export", table.NumRows())
	if goalsCol, ok := columns[ColGoals]; ok {
		total := 0
		for _, cell := range table.Column(goalsCol) {
			if n, ok := parseCount(cell); ok {
				total += n
			}
		}
		msg += fmt.Sprintf(" with %d total goals", total)
	}
	if len(absent) > 0 {
		msg += "\n" + fmt.Sprintf(footballAdvisoryFmt, strings.Join(absent, ", "), unknownSquad)
	}

	return Result{
		Valid:   true,
		Format:  FormatFootballStats,
		Message: msg,
		Columns: columns,
		Rows:    table.NumRows(),
	}
}

// resolveOptional matches the optional template columns against the
// columns not already claimed by required ones.
func resolveOptional(columns []string, required ColumnMap) ColumnMap {
	claimed := make(map[string]struct{}, len(required))
	for _, col := range required {
		claimed[col] = struct{}{}
	}
	free := make([]string, 0, len(columns))
	for _, col := range columns {
		if _, ok := claimed[col]; !ok {
			free = append(free, col)
		}
	}
	return resolve(free, templateOptionals)
}

func availableColumns(columns []string) string {
	if len(columns) == 0 {
		return "Available columns: none"
	}
	shown := columns
	if len(shown) > sampleColumns {
		shown = shown[:sampleColumns]
	}
	out := "Available columns: " + strings.Join(shown, ", ")
	if extra := len(columns) - len(shown); extra > 0 {
		out += fmt.Sprintf(" (+%d more)", extra)
	}
	return out
}

func countMissing(values []string) int {
	n := 0
	for _, cell := range values {
		if tabular.IsMissing(cell) {
			n++
		}
	}
	return n
}

// parseNumber reads a finite decimal number. Missing cells are not
// numbers.
func parseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if tabular.IsMissing(cell) {
		return 0, false
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseCount reads a non-negative count, truncating fractions so that
// "150.0" is 150.
func parseCount(cell string) (int, bool) {
	f, ok := parseNumber(cell)
	if !ok || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
