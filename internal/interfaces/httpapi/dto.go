package httpapi

import (
	"strings"

	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
	"github.com/riskibarqy/laliga-forwards/internal/domain/scoring"
	"github.com/riskibarqy/laliga-forwards/internal/usecase"
)

type pointsEntryDTO struct {
	Label     string `json:"label"`
	Points    int    `json:"points"`
	Canonical bool   `json:"canonical"`
}

type rankingEntryDTO struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Score  int    `json:"score"`
}

type playerStatsDTO struct {
	Player                string `json:"player"`
	CareerGoals           int    `json:"careerGoals"`
	LaLigaTitles          int    `json:"laLigaTitles"`
	ChampionsLeagueTitles int    `json:"championsLeagueTitles"`
	BallonDorWins         int    `json:"ballonDorWins"`
	TotalScore            int    `json:"totalScore"`
	GoldenBoots           int    `json:"goldenBoots"`
	TwentyGoalSeasons     int    `json:"twentyGoalSeasons"`
	TenAssistSeasons      int    `json:"tenAssistSeasons"`
	CupFinalWins          int    `json:"cupFinalWins"`
	CLTopScorerAwards     int    `json:"clTopScorerAwards"`
}

type analysisDTO struct {
	Rankings []rankingEntryDTO `json:"rankings"`
	Stats    []playerStatsDTO  `json:"stats"`
}

type seasonDTO struct {
	Season           string   `json:"season"`
	Goals            int      `json:"goals"`
	Assists          int      `json:"assists"`
	Squad            string   `json:"squad,omitempty"`
	Awards           []string `json:"awards"`
	TeamAchievements []string `json:"teamAchievements"`
	CupFinalWinner   bool     `json:"cupFinalWinner"`
	CLAchievements   []string `json:"clAchievements"`
}

type seasonScoreDTO struct {
	Season         string `json:"season"`
	GoalsBonus     int    `json:"goalsBonus"`
	AssistsBonus   int    `json:"assistsBonus"`
	Awards         int    `json:"awards"`
	OtherTrophies  int    `json:"otherTrophies"`
	CupFinal       int    `json:"cupFinal"`
	CLAchievements int    `json:"clAchievements"`
	Total          int    `json:"total"`
}

type breakdownDTO struct {
	GoalTier     int              `json:"goalTier"`
	BallonDor    int              `json:"ballonDor"`
	LaLigaTitles int              `json:"laLigaTitles"`
	CLTitles     int              `json:"championsLeagueTitles"`
	Seasons      []seasonScoreDTO `json:"seasons"`
	Total        int              `json:"total"`
}

type playerDetailDTO struct {
	Name                       string         `json:"name"`
	CareerGoals                int            `json:"careerGoals"`
	CareerAwards               []string       `json:"careerAwards"`
	TotalLaLigaTitles          int            `json:"totalLaLigaTitles"`
	TotalChampionsLeagueTitles int            `json:"totalChampionsLeagueTitles"`
	Seasons                    []seasonDTO    `json:"seasons"`
	Breakdown                  breakdownDTO   `json:"breakdown"`
	Stats                      playerStatsDTO `json:"stats"`
}

type uploadDTO struct {
	Filename  string `json:"filename"`
	Format    string `json:"format"`
	Encoding  string `json:"encoding"`
	Delimiter string `json:"delimiter,omitempty"`
	Message   string `json:"message"`
	Rows      int    `json:"rows"`
	Skipped   int    `json:"skipped"`
	analysisDTO
}

func toPointsTableDTO(table points.Table) []pointsEntryDTO {
	entries := table.Entries()
	out := make([]pointsEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, pointsEntryDTO{
			Label:     string(entry.Label),
			Points:    entry.Value,
			Canonical: points.IsCanonical(string(entry.Label)),
		})
	}
	return out
}

func toRankingDTO(ranking scoring.Ranking) []rankingEntryDTO {
	out := make([]rankingEntryDTO, 0, len(ranking))
	for idx, entry := range ranking {
		out = append(out, rankingEntryDTO{Rank: idx + 1, Player: entry.Player, Score: entry.Score})
	}
	return out
}

func toStatsDTO(s scoring.Stats) playerStatsDTO {
	return playerStatsDTO{
		Player:                s.Player,
		CareerGoals:           s.CareerGoals,
		LaLigaTitles:          s.LaLigaTitles,
		ChampionsLeagueTitles: s.CLTitles,
		BallonDorWins:         s.BallonDorWins,
		TotalScore:            s.TotalScore,
		GoldenBoots:           s.GoldenBoots,
		TwentyGoalSeasons:     s.TwentyGoalSeasons,
		TenAssistSeasons:      s.TenAssistSeasons,
		CupFinalWins:          s.CupFinalWins,
		CLTopScorerAwards:     s.CLTopScorerAwards,
	}
}

func toAnalysisDTO(analysis scoring.Analysis, limit int) analysisDTO {
	stats := make([]playerStatsDTO, 0, len(analysis.Stats))
	for _, s := range analysis.Stats {
		stats = append(stats, toStatsDTO(s))
	}
	return analysisDTO{
		Rankings: toRankingDTO(analysis.Ranking.Top(limit)),
		Stats:    stats,
	}
}

func toSeasonDTO(s player.SeasonRecord) seasonDTO {
	return seasonDTO{
		Season:           s.Season,
		Goals:            s.Goals,
		Assists:          s.Assists,
		Squad:            s.Squad,
		Awards:           nonNil(s.Awards),
		TeamAchievements: nonNil(s.TeamAchievements),
		CupFinalWinner:   s.CupFinalWinner,
		CLAchievements:   nonNil(s.CLAchievements),
	}
}

func toPlayerDetailDTO(detail usecase.PlayerDetail) playerDetailDTO {
	seasons := make([]seasonDTO, 0, len(detail.Record.Seasons))
	for _, s := range detail.Record.Seasons {
		seasons = append(seasons, toSeasonDTO(s))
	}

	seasonScores := make([]seasonScoreDTO, 0, len(detail.Breakdown.Seasons))
	for _, s := range detail.Breakdown.Seasons {
		seasonScores = append(seasonScores, seasonScoreDTO{
			Season:         s.Season,
			GoalsBonus:     s.GoalsBonus,
			AssistsBonus:   s.AssistsBonus,
			Awards:         s.Awards,
			OtherTrophies:  s.OtherTrophies,
			CupFinal:       s.CupFinal,
			CLAchievements: s.CLAchievements,
			Total:          s.Total,
		})
	}

	return playerDetailDTO{
		Name:                       detail.Record.Name,
		CareerGoals:                detail.Record.CareerGoals,
		CareerAwards:               nonNil(detail.Record.CareerAwards),
		TotalLaLigaTitles:          detail.Record.TotalLaLigaTitles,
		TotalChampionsLeagueTitles: detail.Record.TotalChampionsLeagueTitles,
		Seasons:                    seasons,
		Breakdown: breakdownDTO{
			GoalTier:     detail.Breakdown.GoalTier,
			BallonDor:    detail.Breakdown.BallonDor,
			LaLigaTitles: detail.Breakdown.LaLigaTitles,
			CLTitles:     detail.Breakdown.CLTitles,
			Seasons:      seasonScores,
			Total:        detail.Breakdown.Total,
		},
		Stats: toStatsDTO(detail.Stats),
	}
}

func toUploadDTO(result usecase.UploadResult) uploadDTO {
	delimiter := ""
	if result.Delimiter != 0 {
		delimiter = string(result.Delimiter)
	}
	return uploadDTO{
		Filename:    result.Filename,
		Format:      result.Format.String(),
		Encoding:    string(result.Encoding),
		Delimiter:   delimiter,
		Message:     result.Message,
		Rows:        result.Rows,
		Skipped:     result.Skipped,
		analysisDTO: toAnalysisDTO(result.Analysis, 0),
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func toPlayerRecords(inputs []playerInput) []player.Record {
	out := make([]player.Record, 0, len(inputs))
	for _, in := range inputs {
		record := player.Record{
			Name:                       strings.TrimSpace(in.Name),
			CareerGoals:                in.CareerGoals,
			CareerAwards:               in.CareerAwards,
			TotalLaLigaTitles:          in.TotalLaLigaTitles,
			TotalChampionsLeagueTitles: in.TotalChampionsLeagueTitles,
			Seasons:                    make([]player.SeasonRecord, 0, len(in.Seasons)),
		}
		for _, s := range in.Seasons {
			record.Seasons = append(record.Seasons, player.SeasonRecord{
				Season:           s.Season,
				Goals:            s.Goals,
				Assists:          s.Assists,
				Squad:            s.Squad,
				Awards:           s.Awards,
				TeamAchievements: s.TeamAchievements,
				CupFinalWinner:   s.CupFinalWinner,
				CLAchievements:   s.CLAchievements,
			})
		}
		out = append(out, record)
	}
	return out
}
