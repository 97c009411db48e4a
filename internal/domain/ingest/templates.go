package ingest

import (
	"encoding/csv"
	"strings"
)

// DetailedTemplate is the multi-season custom template with three example
// players.
func DetailedTemplate() string {
	return renderCSV([][]string{
		{
			ColPlayerName, ColCareerGoals, ColLaLigaTitles, ColCLTitles, ColBallonDorWins,
			"la_liga_golden_boots", "la_liga_best_player_awards",
			"season_1_goals", "season_1_assists", "season_1_awards", "season_1_team_achievements",
			"season_2_goals", "season_2_assists", "season_2_awards", "season_2_team_achievements",
			"season_3_goals", "season_3_assists", "season_3_awards", "season_3_team_achievements",
		},
		{
			"Example Player 1", "250", "3", "2", "1", "2", "1",
			"35", "12", "La Liga Golden Boot,La Liga Best Player Award", "La Liga Title,Copa del Rey",
			"40", "15", "Ballon d'Or Win,La Liga Golden Boot", "Champions League Win,La Liga Title",
			"38", "10", "La Liga Best Player Award", "La Liga Title",
		},
		{
			"Example Player 2", "180", "1", "0", "0", "1", "0",
			"25", "8", "", "Copa del Rey",
			"30", "10", "La Liga Golden Boot", "La Liga Title",
			"22", "6", "", "",
		},
		{
			"Example Player 3", "320", "5", "4", "2", "3", "2",
			"42", "15", "Ballon d'Or Win,La Liga Golden Boot", "La Liga Title,Champions League Win",
			"38", "12", "La Liga Best Player Award", "Copa del Rey",
			"35", "18", "Ballon d'Or Win,La Liga Golden Boot,Most Assists in La Liga Season", "Champions League Win,La Liga Title",
		},
	})
}

// SimpleTemplate is the single best-season template.
func SimpleTemplate() string {
	return renderCSV([][]string{
		{ColPlayerName, ColCareerGoals, ColLaLigaTitles, ColCLTitles, ColBallonDorWins, ColBestGoals, ColBestAssists, ColMainAwards, "notes"},
		{"Lionel Messi Example", "474", "10", "4", "4", "50", "18", "Ballon d'Or Win,La Liga Golden Boot", "Barcelona Legend"},
		{"Cristiano Ronaldo Example", "311", "2", "4", "4", "48", "16", "Ballon d'Or Win,La Liga Golden Boot", "Real Madrid Legend"},
		{"Your Player Name", "150", "1", "0", "0", "25", "10", "Your Awards Here", "Add your notes"},
	})
}

// SampleContent is a two-season sample with real players.
func SampleContent() string {
	return renderCSV([][]string{
		{
			ColPlayerName, ColCareerGoals, ColLaLigaTitles, ColCLTitles, ColBallonDorWins,
			"season_1_goals", "season_1_assists", "season_1_awards", "season_1_team_achievements",
			"season_2_goals", "season_2_assists", "season_2_awards", "season_2_team_achievements",
		},
		{
			"Lionel Messi", "474", "10", "4", "4",
			"50", "15", "Ballon d'Or Win,La Liga Golden Boot", "La Liga Title,Copa del Rey",
			"43", "18", "La Liga Best Player Award", "La Liga Title,Champions League Win,Copa del Rey",
		},
		{
			"Cristiano Ronaldo", "311", "2", "4", "4",
			"46", "12", "La Liga Golden Boot", "La Liga Title",
			"35", "11", "Ballon d'Or Win", "Champions League Win",
		},
		{
			"Luis Suarez", "147", "4", "1", "0",
			"40", "16", "La Liga Golden Boot", "La Liga Title,Copa del Rey",
			"29", "13", "", "Copa del Rey",
		},
		{
			"Karim Benzema", "238", "5", "5", "1",
			"27", "12", "Ballon d'Or Win,La Liga Best Player Award", "La Liga Title,Champions League Win",
			"24", "7", "", "Champions League Win",
		},
		{
			"Robert Lewandowski", "89", "0", "0", "0",
			"23", "8", "", "",
			"0", "0", "", "",
		},
	})
}

// Template returns the template called kind: detailed, simple or sample.
func Template(kind string) (string, bool) {
	switch kind {
	case "detailed":
		return DetailedTemplate(), true
	case "simple":
		return SimpleTemplate(), true
	case "sample":
		return SampleContent(), true
	default:
		return "", false
	}
}

// TemplateKinds lists the names accepted by Template.
var TemplateKinds = []string{"detailed", "simple", "sample"}

func renderCSV(rows [][]string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	// Writing to a strings.Builder cannot fail.
	_ = w.WriteAll(rows)
	return b.String()
}
