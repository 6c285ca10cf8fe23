package stats

import "bettracker/domain/entities"

// StreakTracker folds settled results in chronological order.
// Current is positive for a run of wins and negative for a run of losses.
// Pushes and voids leave every value untouched.
type StreakTracker struct {
	Current int
	Best    int
	Worst   int
}

// Apply advances the tracker by one settled result
func (t *StreakTracker) Apply(result entities.WagerResult) {
	switch result {
	case entities.WagerResultWon:
		if t.Current >= 0 {
			t.Current++
		} else {
			t.Current = 1
		}
	case entities.WagerResultLost:
		if t.Current <= 0 {
			t.Current--
		} else {
			t.Current = -1
		}
	default:
		return
	}

	if t.Current > t.Best {
		t.Best = t.Current
	}
	if t.Current < t.Worst {
		t.Worst = t.Current
	}
}

// TrackStreaks runs a fresh tracker over results
func TrackStreaks(results []entities.WagerResult) StreakTracker {
	var t StreakTracker
	for _, r := range results {
		t.Apply(r)
	}
	return t
}
