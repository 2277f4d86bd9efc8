package entry

// HistoryRound is one round of a classic team's season history.
type HistoryRound struct {
	Event              int
	Points             int
	TotalPoints        int
	Rank               *int
	RankSort           *int
	OverallRank        *int
	Bank               int
	Value              int
	EventTransfers     int
	EventTransfersCost int
	PointsOnBench      int
}

// Summary is the overview of a classic team.
type Summary struct {
	TeamName   string
	Points     int
	PlayerName string
	// Rank is nil when upstream reports no overall rank.
	Rank    *int
	History []HistoryRound
}

// FirstNonZero returns the first non-zero value, or zero.
func FirstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
