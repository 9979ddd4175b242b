package engine

import "fmt"

// Score maps a finished round's point split to the (large, small) scores.
// incentive sweetens winning large-player brackets only. The two totals
// must sum to the deck's 120 points.
//
// The bottom bracket treats 0 points as a total loss without checking won
// tricks; that approximation is carried over as-is.
func Score(largePoints, smallPoints, incentive int) (int, int, error) {
	if largePoints+smallPoints != DeckPoints {
		return 0, 0, fmt.Errorf("points do not sum to %d: %d+%d", DeckPoints, largePoints, smallPoints)
	}
	switch points := largePoints; {
	case points == DeckPoints:
		return 6 + incentive*2, -3 - incentive, nil
	case points >= 91:
		return 4 + incentive*2, -2 - incentive, nil
	case points >= 61:
		return 2 + incentive*2, -1 - incentive, nil
	case points > 31:
		return -4, 2, nil
	case points > 1:
		return -6, 3, nil
	default:
		return -8, 4, nil
	}
}

// Payoffs computes the per-seat payoff of a finished round. All zeros when
// nobody took the table.
func Payoffs(g *Game, incentive int) ([NumPlayers]int, error) {
	var payoffs [NumPlayers]int
	large, ok := g.Round.LargePlayerID()
	if !ok {
		return payoffs, nil
	}
	largeScore, smallScore, err := Score(g.Round.WonTrickPoints[sideLarge], g.Round.WonTrickPoints[sideSmall], incentive)
	if err != nil {
		return payoffs, err
	}
	for id := 0; id < NumPlayers; id++ {
		if id == large {
			payoffs[id] = largeScore
		} else {
			payoffs[id] = smallScore
		}
	}
	return payoffs, nil
}
