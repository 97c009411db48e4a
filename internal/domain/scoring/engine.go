package scoring

import (
	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
)

const (
	twoHundredGoals = 200
	oneHundredGoals = 100
	seasonGoalsMark = 20
	seasonAssists   = 10
)

// SeasonScore is the contribution of one season.
type SeasonScore struct {
	Season         string
	GoalsBonus     int
	AssistsBonus   int
	Awards         int
	OtherTrophies  int
	CupFinal       int
	CLAchievements int
	Total          int
}

// Breakdown splits a player's score into its components.
type Breakdown struct {
	GoalTier     int
	BallonDor    int
	LaLigaTitles int
	CLTitles     int
	Seasons      []SeasonScore
	Total        int
}

// Score computes the greatness score of r under table. League and
// Champions League titles only count through the career totals, and
// Ballon d'Or wins only through the career awards, whatever the season
// lists say.
func Score(r player.Record, table points.Table) int {
	return Explain(r, table).Total
}

// Explain returns the score of r with every contribution itemised.
func Explain(r player.Record, table points.Table) Breakdown {
	var b Breakdown

	switch {
	case r.CareerGoals >= twoHundredGoals:
		b.GoalTier = table.Value(points.TwoHundredLaLigaGoals)
	case r.CareerGoals >= oneHundredGoals:
		b.GoalTier = table.Value(points.OneHundredLaLigaGoals)
	}

	b.BallonDor = r.CountCareerAward(string(points.BallonDorWin)) * table.Value(points.BallonDorWin)
	b.LaLigaTitles = r.TotalLaLigaTitles * table.Value(points.LaLigaTitle)
	b.CLTitles = r.TotalChampionsLeagueTitles * table.Value(points.ChampionsLeagueWin)
	b.Total = b.GoalTier + b.BallonDor + b.LaLigaTitles + b.CLTitles

	b.Seasons = make([]SeasonScore, 0, len(r.Seasons))
	for _, season := range r.Seasons {
		s := scoreSeason(season, table)
		b.Seasons = append(b.Seasons, s)
		b.Total += s.Total
	}
	return b
}

func scoreSeason(season player.SeasonRecord, table points.Table) SeasonScore {
	s := SeasonScore{Season: season.Season}

	if season.Goals >= seasonGoalsMark {
		s.GoalsBonus = table.Value(points.TwentyGoalSeason)
	}
	if season.Assists >= seasonAssists {
		s.AssistsBonus = table.Value(points.TenAssistSeason)
	}

	for _, award := range season.Awards {
		if award == string(points.BallonDorWin) {
			continue
		}
		s.Awards += table.ValueOf(award)
	}

	// Allow-list: league and CL titles are already in the career totals,
	// anything unlisted is worth nothing here.
	for _, achievement := range season.TeamAchievements {
		if points.IsOtherTrophy(achievement) {
			s.OtherTrophies += table.Value(points.OtherTrophies)
		}
	}

	if season.CupFinalWinner {
		s.CupFinal = table.Value(points.CupFinalWinner)
	}

	for _, entry := range season.CLAchievements {
		s.CLAchievements += table.ValueOf(entry)
	}

	s.Total = s.GoalsBonus + s.AssistsBonus + s.Awards + s.OtherTrophies + s.CupFinal + s.CLAchievements
	return s
}
