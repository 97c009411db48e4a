package csvexport

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
	"github.com/riskibarqy/laliga-forwards/internal/domain/scoring"
)

func sampleAnalysis(t *testing.T) scoring.Analysis {
	t.Helper()

	players, err := player.NewCollection(
		player.Record{
			Name:                       "Lionel Messi",
			CareerGoals:                474,
			CareerAwards:               []string{"Ballon d'Or Win", "Ballon d'Or Win"},
			TotalLaLigaTitles:          10,
			TotalChampionsLeagueTitles: 4,
			Seasons: []player.SeasonRecord{{
				Season: "2011/2012", Goals: 50, Assists: 16,
				Awards:         []string{"La Liga Golden Boot"},
				CupFinalWinner: true,
				CLAchievements: []string{"CL Top Scorer"},
			}},
		},
		player.Record{Name: `Raúl "El Ángel", González`, CareerGoals: 228, TotalLaLigaTitles: 6},
		player.Record{Name: "Nobody"},
	)
	require.NoError(t, err)
	return scoring.Analyze(players, points.Default())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	analysis := sampleAnalysis(t)

	var scores bytes.Buffer
	require.NoError(t, WriteScores(&scores, analysis.Ranking))
	gotScores, err := ReadScores(&scores)
	require.NoError(t, err)
	require.Equal(t, analysis.Ranking, gotScores)

	var stats bytes.Buffer
	require.NoError(t, WriteStats(&stats, analysis.Stats))
	gotStats, err := ReadStats(&stats)
	require.NoError(t, err)
	require.Equal(t, analysis.Stats, gotStats)
}

func TestRender(t *testing.T) {
	t.Parallel()

	analysis := sampleAnalysis(t)

	scores, err := Render(analysis, TableScores)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(scores)), "\n")
	require.Equal(t, "Player,Score", lines[0])
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[1], "Lionel Messi,"))

	stats, err := Render(analysis, TableStats)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(stats),
		"Player,Career Goals,La Liga Titles,Champions League Titles,Ballon d'Or Wins,Total Score,"+
			"La Liga Golden Boots,20+ Goal Seasons,10+ Assist Seasons,Cup Final Wins,CL Top Scorer Awards\n"))
	require.Contains(t, string(stats), "\nLionel Messi,474,10,4,2,")

	_, err = Render(analysis, "charts")
	require.ErrorIs(t, err, ErrUnknownTable)
}

func TestRead_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		read func(string) error
		data string
	}{
		{name: "empty scores", data: "", read: func(s string) error { _, err := ReadScores(strings.NewReader(s)); return err }},
		{name: "wrong header", data: "Name,Score\nA,1\n", read: func(s string) error { _, err := ReadScores(strings.NewReader(s)); return err }},
		{name: "non integer score", data: "Player,Score\nA,1.5\n", read: func(s string) error { _, err := ReadScores(strings.NewReader(s)); return err }},
		{name: "short stats row", data: "Player,Career Goals\nA,1\n", read: func(s string) error { _, err := ReadStats(strings.NewReader(s)); return err }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.read(tt.data)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformed), "unexpected error: %v", err)
		})
	}
}
