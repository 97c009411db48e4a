package player

import (
	"fmt"
	"strings"
)

// SeasonRecord is one season's goals, assists and honours.
type SeasonRecord struct {
	Season           string
	Goals            int
	Assists          int
	Awards           []string
	TeamAchievements []string
	CupFinalWinner   bool
	CLAchievements   []string
	Squad            string
}

// Record is a forward's La Liga career. Name is the identity key.
// CareerAwards and CLAchievements are multisets: duplicates count.
type Record struct {
	Name                       string
	CareerGoals                int
	CareerAwards               []string
	TotalLaLigaTitles          int
	TotalChampionsLeagueTitles int
	Seasons                    []SeasonRecord
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if r.CareerGoals < 0 {
		return fmt.Errorf("career goals must be >= 0: player=%s", r.Name)
	}
	if r.TotalLaLigaTitles < 0 {
		return fmt.Errorf("la liga titles must be >= 0: player=%s", r.Name)
	}
	if r.TotalChampionsLeagueTitles < 0 {
		return fmt.Errorf("champions league titles must be >= 0: player=%s", r.Name)
	}
	for idx, season := range r.Seasons {
		if season.Goals < 0 || season.Assists < 0 {
			return fmt.Errorf("season goals and assists must be >= 0: player=%s season_index=%d", r.Name, idx)
		}
	}
	return nil
}

// CountCareerAward returns how many times label appears in CareerAwards.
func (r Record) CountCareerAward(label string) int {
	return countOf(r.CareerAwards, label)
}

// HasAward reports whether the season lists label among its awards.
func (s SeasonRecord) HasAward(label string) bool {
	return countOf(s.Awards, label) > 0
}

// CountCLAchievement returns the multiplicity of label in CLAchievements.
func (s SeasonRecord) CountCLAchievement(label string) int {
	return countOf(s.CLAchievements, label)
}

// HasTeamAchievement reports whether the season lists label.
func (s SeasonRecord) HasTeamAchievement(label string) bool {
	return countOf(s.TeamAchievements, label) > 0
}

func countOf(items []string, label string) int {
	n := 0
	for _, item := range items {
		if item == label {
			n++
		}
	}
	return n
}
