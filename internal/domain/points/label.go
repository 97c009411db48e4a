package points

// Label names an achievement that the points table can price.
// Ingested data may carry labels outside this set; they score zero.
type Label string

const (
	BallonDorWin             Label = "Ballon d'Or Win"
	BallonDorSecond          Label = "Ballon d'Or 2nd Place"
	BallonDorThird           Label = "Ballon d'Or 3rd Place"
	LaLigaTitle              Label = "La Liga Title"
	ChampionsLeagueWin       Label = "Champions League Win"
	LaLigaBestPlayer         Label = "La Liga Best Player Award"
	LaLigaBreakthroughPlayer Label = "La Liga Breakthrough Player"
	LaLigaGoldenBoot         Label = "La Liga Golden Boot"
	TwentyGoalSeason         Label = "20+ Goal La Liga Season"
	MostAssistsLaLigaSeason  Label = "Most Assists in La Liga Season"
	TenAssistSeason          Label = "10+ Assist La Liga Season"
	CupFinalWinner           Label = "Cup Final Winner"
	OtherTrophies            Label = "Other Trophies"
	TwoHundredLaLigaGoals    Label = "200+ La Liga Goals"
	OneHundredLaLigaGoals    Label = "100+ La Liga Goals"
	CLTopScorer              Label = "CL Top Scorer"
	MostAssistsInCLSeason    Label = "Most Assists in CL Season"
)

// Team achievements that are not priced individually. Each one is worth
// the OtherTrophies value.
const (
	CopaDelRey        = "Copa del Rey"
	SupercopaDeEspana = "Supercopa de España"
	UEFASuperCup      = "UEFA Super Cup"
	FIFAClubWorldCup  = "FIFA Club World Cup"
)

// CanonicalLabels lists every label of the default table in display order.
var CanonicalLabels = []Label{
	BallonDorWin,
	BallonDorSecond,
	BallonDorThird,
	LaLigaTitle,
	ChampionsLeagueWin,
	LaLigaBestPlayer,
	LaLigaBreakthroughPlayer,
	LaLigaGoldenBoot,
	TwentyGoalSeason,
	MostAssistsLaLigaSeason,
	TenAssistSeason,
	CupFinalWinner,
	OtherTrophies,
	TwoHundredLaLigaGoals,
	OneHundredLaLigaGoals,
	CLTopScorer,
	MostAssistsInCLSeason,
}

var otherTrophies = map[string]struct{}{
	CopaDelRey:        {},
	SupercopaDeEspana: {},
	UEFASuperCup:      {},
	FIFAClubWorldCup:  {},
}

// IsOtherTrophy reports whether a team achievement belongs to the
// flattened "Other Trophies" bucket.
func IsOtherTrophy(achievement string) bool {
	_, ok := otherTrophies[achievement]
	return ok
}

// IsCanonical reports whether label is part of the default table.
func IsCanonical(label string) bool {
	_, ok := defaultValues[Label(label)]
	return ok
}
