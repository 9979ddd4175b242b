// Package stats aggregates per-seat performance over many rounds and
// writes it to a CSV performance log.
package stats

import (
	"fmt"

	"zole/internal/engine"
)

// Tracker counts, per seat, how often the seat took the table and how
// often it ended on the winning side.
type Tracker struct {
	PickUpCounts [engine.NumPlayers]int
	WonLarge     [engine.NumPlayers]int
	WonSmall     [engine.NumPlayers]int
	Rounds       int
}

// TrackRound records one finished round. Rounds where nobody took the
// table still count toward the round total.
func (t *Tracker) TrackRound(round *engine.Round) {
	t.Rounds++
	large, ok := round.LargePlayerID()
	if !ok {
		return
	}
	t.PickUpCounts[large]++
	if round.WonTrickPoints[0] > 61 {
		t.WonLarge[large]++
		return
	}
	for id := 0; id < engine.NumPlayers; id++ {
		if id != large {
			t.WonSmall[id]++
		}
	}
}

// LargeWinRate is the share of a seat's large games it won.
func (t *Tracker) LargeWinRate(seat int) float64 {
	if t.PickUpCounts[seat] == 0 {
		return 0
	}
	return float64(t.WonLarge[seat]) / float64(t.PickUpCounts[seat])
}

// SmallWinRate is the share of a seat's small-side games it won.
func (t *Tracker) SmallWinRate(seat int) float64 {
	total := 0
	for _, c := range t.PickUpCounts {
		total += c
	}
	small := total - t.PickUpCounts[seat]
	if small == 0 {
		return 0
	}
	return float64(t.WonSmall[seat]) / float64(small)
}

// AsLargeRate is the share of all rounds the seat played as large player.
func (t *Tracker) AsLargeRate(seat int) float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.PickUpCounts[seat]) / float64(t.Rounds)
}

func (t *Tracker) String() string {
	return fmt.Sprintf("rounds=%d pickups=%v large_wins=%v small_wins=%v",
		t.Rounds, t.PickUpCounts, t.WonLarge, t.WonSmall)
}
