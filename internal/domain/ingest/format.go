// Package ingest turns parsed upload tables into player records. It
// recognises two layouts: the hand-written multi-season template and the
// raw single-season statistics export.
package ingest

import "strconv"

// Format is the layout of an uploaded table.
type Format int

const (
	FormatUnknown Format = iota
	FormatCustomTemplate
	FormatFootballStats
)

func (f Format) String() string {
	switch f {
	case FormatCustomTemplate:
		return "custom_template"
	case FormatFootballStats:
		return "football_stats"
	default:
		return "unknown"
	}
}

// Custom template columns.
const (
	ColPlayerName    = "player_name"
	ColCareerGoals   = "career_goals"
	ColLaLigaTitles  = "total_la_liga_titles"
	ColCLTitles      = "total_champions_league_titles"
	ColBallonDorWins = "ballon_dor_wins"
	ColBestGoals     = "best_season_goals"
	ColBestAssists   = "best_season_assists"
	ColMainAwards    = "main_awards"
)

// Statistics export columns.
const (
	ColPlayer  = "Player"
	ColSquad   = "Squad"
	ColGoals   = "Goals"
	ColAssists = "Assists"
	ColPos     = "Pos"
	ColComp    = "Comp"
)

const (
	footballMinMatch = 4
	templateMinMatch = 3
	templateSeasons  = 3
)

var (
	footballColumns = []string{ColPlayer, ColSquad, ColGoals, ColAssists, ColPos, ColComp}
	templateColumns = []string{ColPlayerName, ColCareerGoals, ColLaLigaTitles, ColCLTitles}
)

// Detect classifies a header by exact column names. The statistics
// layout is checked first, so a header that satisfies both thresholds is
// football_stats.
func Detect(columns []string) Format {
	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[col] = struct{}{}
	}
	if overlap(present, footballColumns) >= footballMinMatch {
		return FormatFootballStats
	}
	if overlap(present, templateColumns) >= templateMinMatch {
		return FormatCustomTemplate
	}
	return FormatUnknown
}

func overlap(present map[string]struct{}, want []string) int {
	n := 0
	for _, col := range want {
		if _, ok := present[col]; ok {
			n++
		}
	}
	return n
}

// SeasonColumn returns the template column for field of season i
// (1-based), e.g. season_2_goals.
func SeasonColumn(i int, field string) string {
	return "season_" + strconv.Itoa(i) + "_" + field
}
