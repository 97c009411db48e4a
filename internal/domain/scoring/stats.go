package scoring

import (
	"sort"

	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
)

// Column names shared by the stats table and its CSV export.
const (
	ColumnPlayer            = "Player"
	ColumnScore             = "Score"
	ColumnCareerGoals       = "Career Goals"
	ColumnLaLigaTitles      = "La Liga Titles"
	ColumnCLTitles          = "Champions League Titles"
	ColumnBallonDorWins     = "Ballon d'Or Wins"
	ColumnTotalScore        = "Total Score"
	ColumnGoldenBoots       = "La Liga Golden Boots"
	ColumnTwentyGoalSeasons = "20+ Goal Seasons"
	ColumnTenAssistSeasons  = "10+ Assist Seasons"
	ColumnCupFinalWins      = "Cup Final Wins"
	ColumnCLTopScorerAwards = "CL Top Scorer Awards"
)

// StatsColumns is the stats table header after the Player column.
var StatsColumns = []string{
	ColumnCareerGoals,
	ColumnLaLigaTitles,
	ColumnCLTitles,
	ColumnBallonDorWins,
	ColumnTotalScore,
	ColumnGoldenBoots,
	ColumnTwentyGoalSeasons,
	ColumnTenAssistSeasons,
	ColumnCupFinalWins,
	ColumnCLTopScorerAwards,
}

// Stats are the derived counters shown next to a player's score.
type Stats struct {
	Player            string
	CareerGoals       int
	LaLigaTitles      int
	CLTitles          int
	BallonDorWins     int
	TotalScore        int
	GoldenBoots       int
	TwentyGoalSeasons int
	TenAssistSeasons  int
	CupFinalWins      int
	CLTopScorerAwards int
}

// Values returns the counters in StatsColumns order.
func (s Stats) Values() []int {
	return []int{
		s.CareerGoals,
		s.LaLigaTitles,
		s.CLTitles,
		s.BallonDorWins,
		s.TotalScore,
		s.GoldenBoots,
		s.TwentyGoalSeasons,
		s.TenAssistSeasons,
		s.CupFinalWins,
		s.CLTopScorerAwards,
	}
}

func DeriveStats(r player.Record, table points.Table) Stats {
	s := Stats{
		Player:        r.Name,
		CareerGoals:   r.CareerGoals,
		LaLigaTitles:  r.TotalLaLigaTitles,
		CLTitles:      r.TotalChampionsLeagueTitles,
		BallonDorWins: r.CountCareerAward(string(points.BallonDorWin)),
		TotalScore:    Score(r, table),
	}
	for _, season := range r.Seasons {
		if season.HasAward(string(points.LaLigaGoldenBoot)) {
			s.GoldenBoots++
		}
		if season.Goals >= seasonGoalsMark {
			s.TwentyGoalSeasons++
		}
		if season.Assists >= seasonAssists {
			s.TenAssistSeasons++
		}
		if season.CupFinalWinner {
			s.CupFinalWins++
		}
		s.CLTopScorerAwards += season.CountCLAchievement(string(points.CLTopScorer))
	}
	return s
}

// Entry is one row of a ranking.
type Entry struct {
	Player string
	Score  int
}

// Ranking is ordered by descending score; ties keep collection order.
type Ranking []Entry

func Rank(c player.Collection, table points.Table) Ranking {
	records := c.Records()
	out := make(Ranking, 0, len(records))
	for _, r := range records {
		out = append(out, Entry{Player: r.Name, Score: Score(r, table)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Top returns at most n entries; n <= 0 returns the whole ranking.
func (r Ranking) Top(n int) Ranking {
	if n <= 0 || n >= len(r) {
		return r
	}
	return r[:n]
}

// Analysis is what presentation layers consume: the ranking and the
// per-player stats in collection order.
type Analysis struct {
	Ranking Ranking
	Stats   []Stats
}

func Analyze(c player.Collection, table points.Table) Analysis {
	records := c.Records()
	stats := make([]Stats, 0, len(records))
	for _, r := range records {
		stats = append(stats, DeriveStats(r, table))
	}
	return Analysis{
		Ranking: Rank(c, table),
		Stats:   stats,
	}
}

// StatsFor returns the stats row of name.
func (a Analysis) StatsFor(name string) (Stats, bool) {
	for _, s := range a.Stats {
		if s.Player == name {
			return s, true
		}
	}
	return Stats{}, false
}
