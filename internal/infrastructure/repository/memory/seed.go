package memory

import (
	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
)

// SeedPlayers is the built-in dataset of La Liga forwards. Seasons list
// each player's standout campaigns, not every season played.
func SeedPlayers() []player.Record {
	return []player.Record{
		{
			Name:                       "Lionel Messi",
			CareerGoals:                474,
			CareerAwards:               ballonDors(4),
			TotalLaLigaTitles:          10,
			TotalChampionsLeagueTitles: 4,
			Seasons: []player.SeasonRecord{
				{
					Season:           "2011/2012",
					Goals:            50,
					Assists:          15,
					Awards:           []string{string(points.BallonDorWin), string(points.LaLigaBestPlayer), string(points.LaLigaGoldenBoot)},
					TeamAchievements: []string{string(points.LaLigaTitle), points.CopaDelRey},
					CupFinalWinner:   true,
					CLAchievements:   []string{string(points.CLTopScorer)},
				},
				{
					Season:           "2014/2015",
					Goals:            43,
					Assists:          18,
					Awards:           []string{string(points.LaLigaBestPlayer)},
					TeamAchievements: []string{string(points.LaLigaTitle), string(points.ChampionsLeagueWin), points.CopaDelRey},
					CupFinalWinner:   true,
				},
				{
					Season:           "2009/2010",
					Goals:            34,
					Assists:          11,
					Awards:           []string{string(points.BallonDorWin), string(points.LaLigaBestPlayer), string(points.LaLigaGoldenBoot)},
					TeamAchievements: []string{string(points.LaLigaTitle)},
				},
			},
		},
		{
			Name:                       "Cristiano Ronaldo",
			CareerGoals:                311,
			CareerAwards:               ballonDors(4),
			TotalLaLigaTitles:          2,
			TotalChampionsLeagueTitles: 4,
			Seasons: []player.SeasonRecord{
				{
					Season:           "2013/2014",
					Goals:            31,
					Assists:          11,
					Awards:           []string{string(points.BallonDorWin)},
					TeamAchievements: []string{string(points.ChampionsLeagueWin), points.CopaDelRey},
					CupFinalWinner:   true,
					CLAchievements:   []string{string(points.CLTopScorer)},
				},
				{
					Season:           "2015/2016",
					Goals:            35,
					Assists:          11,
					Awards:           []string{string(points.BallonDorWin)},
					TeamAchievements: []string{string(points.ChampionsLeagueWin)},
					CLAchievements:   []string{string(points.CLTopScorer)},
				},
				{
					Season:           "2011/2012",
					Goals:            46,
					Assists:          12,
					Awards:           []string{string(points.LaLigaGoldenBoot)},
					TeamAchievements: []string{string(points.LaLigaTitle)},
				},
			},
		},
		{
			Name:                       "Luis Suárez",
			CareerGoals:                147,
			TotalLaLigaTitles:          4,
			TotalChampionsLeagueTitles: 1,
			Seasons: []player.SeasonRecord{
				{
					Season:           "2015/2016",
					Goals:            40,
					Assists:          16,
					Awards:           []string{string(points.LaLigaGoldenBoot)},
					TeamAchievements: []string{string(points.LaLigaTitle), points.CopaDelRey},
					CupFinalWinner:   true,
				},
				{
					Season:           "2016/2017",
					Goals:            29,
					Assists:          13,
					TeamAchievements: []string{points.CopaDelRey},
					CupFinalWinner:   true,
				},
				{
					Season:           "2017/2018",
					Goals:            25,
					Assists:          12,
					TeamAchievements: []string{string(points.LaLigaTitle), points.CopaDelRey},
					CupFinalWinner:   true,
				},
			},
		},
		{
			Name:                       "Karim Benzema",
			CareerGoals:                238,
			CareerAwards:               ballonDors(1),
			TotalLaLigaTitles:          5,
			TotalChampionsLeagueTitles: 5,
			Seasons: []player.SeasonRecord{
				{
					Season:           "2021/2022",
					Goals:            27,
					Assists:          12,
					Awards:           []string{string(points.BallonDorWin), string(points.LaLigaBestPlayer)},
					TeamAchievements: []string{string(points.LaLigaTitle), string(points.ChampionsLeagueWin), points.SupercopaDeEspana},
					CupFinalWinner:   true,
					CLAchievements:   []string{string(points.CLTopScorer)},
				},
				{
					Season:           "2015/2016",
					Goals:            24,
					Assists:          7,
					TeamAchievements: []string{string(points.ChampionsLeagueWin)},
				},
				{
					Season:           "2019/2020",
					Goals:            21,
					Assists:          8,
					TeamAchievements: []string{string(points.LaLigaTitle)},
				},
			},
		},
		{
			Name:                       "Neymar Jr.",
			CareerGoals:                68,
			TotalLaLigaTitles:          2,
			TotalChampionsLeagueTitles: 1,
			Seasons: []player.SeasonRecord{
				{
					Season:           "2015/2016",
					Goals:            24,
					Assists:          12,
					TeamAchievements: []string{string(points.LaLigaTitle), points.CopaDelRey},
					CupFinalWinner:   true,
				},
				{
					Season:           "2014/2015",
					Goals:            22,
					Assists:          7,
					TeamAchievements: []string{string(points.LaLigaTitle), string(points.ChampionsLeagueWin), points.CopaDelRey},
					CupFinalWinner:   true,
				},
				{
					Season:           "2016/2017",
					Goals:            13,
					Assists:          11,
					Awards:           []string{string(points.MostAssistsLaLigaSeason)},
					TeamAchievements: []string{points.CopaDelRey},
					CupFinalWinner:   true,
				},
			},
		},
		{
			Name:                       "Gareth Bale",
			CareerGoals:                81,
			TotalLaLigaTitles:          3,
			TotalChampionsLeagueTitles: 5,
			Seasons: []player.SeasonRecord{
				{
					Season:           "2013/2014",
					Goals:            15,
					Assists:          12,
					Awards:           []string{string(points.LaLigaBreakthroughPlayer)},
					TeamAchievements: []string{string(points.ChampionsLeagueWin), points.CopaDelRey},
					CupFinalWinner:   true,
				},
				{
					Season:           "2015/2016",
					Goals:            19,
					Assists:          10,
					TeamAchievements: []string{string(points.ChampionsLeagueWin)},
				},
				{
					Season:           "2017/2018",
					Goals:            16,
					Assists:          2,
					TeamAchievements: []string{string(points.ChampionsLeagueWin)},
					CupFinalWinner:   true,
				},
			},
		},
		{
			Name:                       "Raúl González",
			CareerGoals:                228,
			TotalLaLigaTitles:          6,
			TotalChampionsLeagueTitles: 3,
			Seasons: []player.SeasonRecord{
				{
					Season:  "1998/1999",
					Goals:   25,
					Assists: 5,
					Awards:  []string{string(points.LaLigaGoldenBoot)},
				},
				{
					Season:           "2000/2001",
					Goals:            24,
					Assists:          6,
					Awards:           []string{string(points.BallonDorSecond)},
					TeamAchievements: []string{string(points.LaLigaTitle)},
					CLAchievements:   []string{string(points.CLTopScorer)},
				},
				{
					Season:           "1999/2000",
					Goals:            17,
					Assists:          9,
					TeamAchievements: []string{string(points.ChampionsLeagueWin)},
					CLAchievements:   []string{string(points.CLTopScorer)},
				},
			},
		},
	}
}

func ballonDors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(points.BallonDorWin)
	}
	return out
}
