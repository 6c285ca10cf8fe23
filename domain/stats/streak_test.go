package stats

import (
	"testing"

	"bettracker/domain/entities"

	"github.com/stretchr/testify/assert"
)

const (
	W = entities.WagerResultWon
	L = entities.WagerResultLost
	P = entities.WagerResultPush
	V = entities.WagerResultVoid
)

func TestTrackStreaks(t *testing.T) {
	tests := []struct {
		name    string
		results []entities.WagerResult
		current int
		best    int
		worst   int
	}{
		{"empty", nil, 0, 0, 0},
		{"single win", []entities.WagerResult{W}, 1, 1, 0},
		{"single loss", []entities.WagerResult{L}, -1, 0, -1},
		{"mixed sequence", []entities.WagerResult{W, W, L, W, W, W, L, L}, -2, 3, -2},
		{"push does not break a run", []entities.WagerResult{W, P, W, V, W}, 3, 3, 0},
		{"only pushes and voids", []entities.WagerResult{P, V, P}, 0, 0, 0},
		{"loss run then win", []entities.WagerResult{L, L, L, W}, 1, 1, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackStreaks(tt.results)
			assert.Equal(t, tt.current, got.Current)
			assert.Equal(t, tt.best, got.Best)
			assert.Equal(t, tt.worst, got.Worst)
		})
	}
}

func TestStreakTracker_Bounds(t *testing.T) {
	seq := []entities.WagerResult{L, W, W, P, L, L, L, V, W, W, W, W, L, P}

	var tracker StreakTracker
	for _, r := range seq {
		tracker.Apply(r)

		assert.GreaterOrEqual(t, tracker.Best, 0)
		assert.LessOrEqual(t, tracker.Worst, 0)
		assert.GreaterOrEqual(t, tracker.Best, tracker.Current)
		assert.LessOrEqual(t, tracker.Worst, tracker.Current)
	}

	assert.Equal(t, 4, tracker.Best)
	assert.Equal(t, -3, tracker.Worst)
	assert.Equal(t, -1, tracker.Current)
}
