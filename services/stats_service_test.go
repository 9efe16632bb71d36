package services

import "testing"

func floatPtr(v float64) *float64 {
	return &v
}

func TestNewAvgGameLength(t *testing.T) {
	tests := []struct {
		name           string
		avgTurns       *float64
		gamesWithTurns int
		wantAvg        float64
	}{
		{
			name:           "rounds to one decimal",
			avgTurns:       floatPtr(10.666666),
			gamesWithTurns: 3,
			wantAvg:        10.7,
		},
		{
			name:           "rounds down",
			avgTurns:       floatPtr(9.24),
			gamesWithTurns: 5,
			wantAvg:        9.2,
		},
		{
			name:           "no recorded turns",
			avgTurns:       nil,
			gamesWithTurns: 0,
			wantAvg:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newAvgGameLength(tt.avgTurns, tt.gamesWithTurns)
			if got.AvgTurns != tt.wantAvg {
				t.Errorf("AvgTurns = %v, want %v", got.AvgTurns, tt.wantAvg)
			}
			if got.GamesWithTurns != tt.gamesWithTurns {
				t.Errorf("GamesWithTurns = %d, want %d", got.GamesWithTurns, tt.gamesWithTurns)
			}
			if got.TotalGames != tt.gamesWithTurns {
				t.Errorf("TotalGames = %d, want %d; both counts cover recorded-turn games only", got.TotalGames, tt.gamesWithTurns)
			}
		})
	}
}
