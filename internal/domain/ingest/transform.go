package ingest

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
	"github.com/riskibarqy/laliga-forwards/internal/platform/tabular"
)

const (
	unknownSquad       = "Unknown"
	footballSeasonTag  = "2022/23"
	bestSeasonTag      = "Best Season"
	topScorerCandidate = "Top Scorer Candidate"
	topAssistsProvider = "Top Assists Provider"
	topScorerGoals     = 20
	topAssistsAssists  = 10
	clTopScorerGoals   = 10
	firstTemplateYear  = 2020
	// maxBallonDorWins bounds the awards one cell can expand into.
	maxBallonDorWins = 100
)

// Transformed is the output of Transform. Skipped counts data rows that
// produced no record.
type Transformed struct {
	Players player.Collection
	Skipped int
}

// Transform converts a validated table into player records. Rows that
// cannot be read are skipped; one bad row never fails the upload. A
// later row with the same player name replaces the earlier one.
func Transform(table tabular.Table, v Result) Transformed {
	var convert func(row rowReader) (player.Record, bool)
	switch v.Format {
	case FormatCustomTemplate:
		convert = customTemplateRecord
	case FormatFootballStats:
		convert = footballStatsRecord
	default:
		return Transformed{Players: player.NewBuilder().Collection(), Skipped: table.NumRows()}
	}

	builder := player.NewBuilder()
	skipped := 0
	for idx := range table.Rows {
		record, ok := convert(rowReader{table: table, row: idx, columns: v.Columns})
		if !ok {
			skipped++
			continue
		}
		if err := builder.Put(record); err != nil {
			skipped++
		}
	}
	return Transformed{Players: builder.Collection(), Skipped: skipped}
}

func customTemplateRecord(row rowReader) (player.Record, bool) {
	name := row.text(ColPlayerName)
	if name == "" {
		return player.Record{}, false
	}

	record := player.Record{Name: name}
	var ok bool
	if record.CareerGoals, ok = row.count(ColCareerGoals); !ok {
		return player.Record{}, false
	}
	if record.TotalLaLigaTitles, ok = row.count(ColLaLigaTitles); !ok {
		return player.Record{}, false
	}
	if record.TotalChampionsLeagueTitles, ok = row.count(ColCLTitles); !ok {
		return player.Record{}, false
	}
	ballonDors, ok := row.count(ColBallonDorWins)
	if !ok || ballonDors > maxBallonDorWins {
		return player.Record{}, false
	}
	for i := 0; i < ballonDors; i++ {
		record.CareerAwards = append(record.CareerAwards, string(points.BallonDorWin))
	}

	_, hasSeasons := row.columns.Lookup(SeasonColumn(1, "goals"))
	if hasSeasons {
		for i := 1; i <= templateSeasons; i++ {
			if season, ok := templateSeason(row, i); ok {
				record.Seasons = append(record.Seasons, season)
			}
		}
	} else if season, ok := bestSeason(row); ok {
		record.Seasons = append(record.Seasons, season)
	}
	return record, true
}

// templateSeason reads season block i. A block without goals is absent;
// a block with unreadable numbers is dropped.
func templateSeason(row rowReader, i int) (player.SeasonRecord, bool) {
	if row.missing(SeasonColumn(i, "goals")) {
		return player.SeasonRecord{}, false
	}
	goals, ok := row.count(SeasonColumn(i, "goals"))
	if !ok {
		return player.SeasonRecord{}, false
	}
	assists, ok := row.count(SeasonColumn(i, "assists"))
	if !ok {
		return player.SeasonRecord{}, false
	}

	season := player.SeasonRecord{
		Season:           fmt.Sprintf("%d/%d", firstTemplateYear+i, firstTemplateYear+i+1),
		Goals:            goals,
		Assists:          assists,
		Awards:           row.list(SeasonColumn(i, "awards")),
		TeamAchievements: row.list(SeasonColumn(i, "team_achievements")),
	}
	season.CupFinalWinner = season.HasTeamAchievement(points.CopaDelRey)
	// Approximation: the template has no CL scoring data.
	if season.HasTeamAchievement(string(points.ChampionsLeagueWin)) && goals >= clTopScorerGoals {
		season.CLAchievements = []string{string(points.CLTopScorer)}
	}
	return season, true
}

// bestSeason reads the simple template's single best season.
func bestSeason(row rowReader) (player.SeasonRecord, bool) {
	if row.missing(ColBestGoals) {
		return player.SeasonRecord{}, false
	}
	goals, ok := row.count(ColBestGoals)
	if !ok {
		return player.SeasonRecord{}, false
	}
	assists, ok := row.count(ColBestAssists)
	if !ok {
		return player.SeasonRecord{}, false
	}
	return player.SeasonRecord{
		Season:  bestSeasonTag,
		Goals:   goals,
		Assists: assists,
		Awards:  row.list(ColMainAwards),
	}, true
}

func footballStatsRecord(row rowReader) (player.Record, bool) {
	name := row.text(ColPlayer)
	if name == "" {
		return player.Record{}, false
	}

	goals, _ := row.count(ColGoals)
	assists, _ := row.count(ColAssists)
	squad := row.text(ColSquad)
	if squad == "" {
		squad = unknownSquad
	}

	// A single season export has no career totals; current goals stand in.
	record := player.Record{Name: name, CareerGoals: goals}
	if goals > 0 || assists > 0 {
		season := player.SeasonRecord{
			Season:  footballSeasonTag,
			Goals:   goals,
			Assists: assists,
			Squad:   squad,
		}
		if goals >= topScorerGoals {
			season.Awards = append(season.Awards, topScorerCandidate)
		}
		if assists >= topAssistsAssists {
			season.Awards = append(season.Awards, topAssistsProvider)
		}
		record.Seasons = []player.SeasonRecord{season}
	}
	return record, true
}

// rowReader reads one table row through a ColumnMap.
type rowReader struct {
	table   tabular.Table
	row     int
	columns ColumnMap
}

func (r rowReader) raw(name string) (string, bool) {
	col, ok := r.columns.Lookup(name)
	if !ok {
		return "", false
	}
	return r.table.Value(r.row, col)
}

func (r rowReader) missing(name string) bool {
	cell, ok := r.raw(name)
	return !ok || tabular.IsMissing(cell)
}

// text returns the trimmed cell, or "" when it is absent or missing.
func (r rowReader) text(name string) string {
	if r.missing(name) {
		return ""
	}
	cell, _ := r.raw(name)
	return strings.TrimSpace(cell)
}

// count is 0 for absent or missing cells and fails for anything that is
// not a non-negative number.
func (r rowReader) count(name string) (int, bool) {
	if r.missing(name) {
		return 0, true
	}
	cell, _ := r.raw(name)
	return parseCount(cell)
}

// list splits a comma separated cell, dropping empty items.
func (r rowReader) list(name string) []string {
	var out []string
	for _, item := range strings.Split(r.text(name), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
