package scoring

import (
	"testing"

	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
)

func TestDeriveStats(t *testing.T) {
	t.Parallel()

	r := messiLike()
	r.Seasons = append(r.Seasons,
		player.SeasonRecord{
			Season:         "2009/2010",
			Goals:          34,
			Assists:        11,
			Awards:         []string{"La Liga Golden Boot"},
			CLAchievements: []string{"CL Top Scorer", "CL Top Scorer"},
		},
		player.SeasonRecord{Season: "2014/2015", Goals: 19, Assists: 9, CupFinalWinner: true},
	)

	got := DeriveStats(r, points.Default())
	want := Stats{
		Player:            "Lionel Messi",
		CareerGoals:       474,
		LaLigaTitles:      10,
		CLTitles:          4,
		BallonDorWins:     4,
		TotalScore:        Score(r, points.Default()),
		GoldenBoots:       2,
		TwentyGoalSeasons: 2,
		TenAssistSeasons:  2,
		CupFinalWins:      2,
		CLTopScorerAwards: 3,
	}
	if got != want {
		t.Fatalf("unexpected stats:\n got=%+v\nwant=%+v", got, want)
	}
	if len(got.Values()) != len(StatsColumns) {
		t.Fatalf("values and columns out of sync: %d vs %d", len(got.Values()), len(StatsColumns))
	}
}

func TestRank_DescendingWithStableTies(t *testing.T) {
	t.Parallel()

	c, err := player.NewCollection(
		player.Record{Name: "Low", CareerGoals: 10},
		player.Record{Name: "TieA", TotalLaLigaTitles: 3},
		player.Record{Name: "High", CareerGoals: 300},
		player.Record{Name: "TieB", TotalLaLigaTitles: 3},
	)
	if err != nil {
		t.Fatalf("NewCollection error: %v", err)
	}

	ranking := Rank(c, points.Default())
	want := []Entry{
		{Player: "High", Score: 5},
		{Player: "TieA", Score: 3},
		{Player: "TieB", Score: 3},
		{Player: "Low", Score: 0},
	}
	if len(ranking) != len(want) {
		t.Fatalf("unexpected ranking length: %d", len(ranking))
	}
	for i := range want {
		if ranking[i] != want[i] {
			t.Fatalf("unexpected entry %d: got=%+v want=%+v", i, ranking[i], want[i])
		}
	}

	if top := ranking.Top(2); len(top) != 2 || top[0].Player != "High" {
		t.Fatalf("unexpected top 2: %+v", top)
	}
	if all := ranking.Top(0); len(all) != 4 {
		t.Fatalf("Top(0) should return everything, got %d", len(all))
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	c, err := player.NewCollection(messiLike(), player.Record{Name: "Other", CareerGoals: 120})
	if err != nil {
		t.Fatalf("NewCollection error: %v", err)
	}

	a := Analyze(c, points.Default())
	if len(a.Ranking) != 2 || len(a.Stats) != 2 {
		t.Fatalf("unexpected analysis sizes: ranking=%d stats=%d", len(a.Ranking), len(a.Stats))
	}
	if a.Stats[0].Player != "Lionel Messi" {
		t.Fatalf("stats should follow collection order, got %s first", a.Stats[0].Player)
	}
	s, ok := a.StatsFor("Other")
	if !ok || s.TotalScore != 2 {
		t.Fatalf("unexpected stats for Other: %+v ok=%v", s, ok)
	}
	if _, ok := a.StatsFor("missing"); ok {
		t.Fatalf("expected missing player lookup to fail")
	}
}
