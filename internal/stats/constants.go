package stats

// Verdict thresholds for a scenario run
const (
	// PileUpPlayers is how many players sitting at the accumulator cap mark a pile-up
	PileUpPlayers = 3
	// TooManyReleasesShare is the release share of wins above which releases dominate
	TooManyReleasesShare = "0.4"
	// TrendingCapShare is the average accumulator, as a share of the cap, that trends toward the cap
	TrendingCapShare = "0.7"
	// GoodReleasesShare and GoodCapShare bound a well balanced run
	GoodReleasesShare = "0.1"
	GoodCapShare      = "0.3"
)

// Balance check thresholds, in percent for rates
const (
	WinRateMinPercent     = 30
	WinRateMaxPercent     = 40
	ReleaseRateMaxPercent = 10
	FairnessMax           = "0.5"
)

// Rounding applied to reported figures
const (
	RatePlaces     = 1
	StdDevPlaces   = 2
	AvgWinsPlaces  = 2
	FairnessPlaces = 3
)

// ExpectationPlaces rounds expected counts and variances
const ExpectationPlaces = 2
