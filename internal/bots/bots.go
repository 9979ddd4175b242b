package bots

import (
	"math/rand"

	"zole/internal/engine"
)

type Bot interface {
	ChooseAction(round *engine.Round, legal []engine.Action) engine.Action
}

// RandomBot picks uniformly among the legal actions.
type RandomBot struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *RandomBot {
	return &RandomBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) ChooseAction(round *engine.Round, legal []engine.Action) engine.Action {
	return legal[b.RNG.Intn(len(legal))]
}

// GreedyBot takes the table on a trump-heavy hand, buries its cheapest
// cards and plays to win tricks cheaply.
type GreedyBot struct {
	RNG *rand.Rand
}

func NewGreedy(seed int64) *GreedyBot {
	return &GreedyBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *GreedyBot) ChooseAction(round *engine.Round, legal []engine.Action) engine.Action {
	switch legal[0].(type) {
	case engine.Pass, engine.Take:
		return b.callByHeuristic(round)
	case engine.Bury:
		return buryLowestPoints(legal)
	case engine.Play:
		return b.playHeuristic(round, legal)
	default:
		return legal[0]
	}
}

func (b *GreedyBot) callByHeuristic(round *engine.Round) engine.Action {
	hand := round.CurrentPlayer().Hand
	trumps := 0
	points := 0
	for _, c := range hand {
		points += c.Points()
		if c.IsTrump() {
			trumps++
		}
	}
	if trumps >= 5 && points >= 30 {
		return engine.Take{}
	}
	return engine.Pass{}
}

func buryLowestPoints(legal []engine.Action) engine.Action {
	best := legal[0]
	bestScore := 1<<31 - 1
	for _, a := range legal {
		bury, ok := a.(engine.Bury)
		if !ok {
			continue
		}
		// prefer shedding cheap plain-suit cards, keep trumps
		score := bury.Card.Points() * 10
		if bury.Card.IsTrump() {
			score += 100
		}
		if score < bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

func (b *GreedyBot) playHeuristic(round *engine.Round, legal []engine.Action) engine.Action {
	trickMoves := round.TrickMoves()
	leading := round.PlayCardCount%engine.NumPlayers == 0

	if leading || len(trickMoves) == 0 {
		// lead with the strongest card
		best := legal[0]
		bestID := -1
		for _, a := range legal {
			if play, ok := a.(engine.Play); ok && play.Card.ID > bestID {
				bestID = play.Card.ID
				best = a
			}
		}
		return best
	}

	// win the trick with the weakest winning card if possible
	var winning engine.Action
	winningID := 1<<31 - 1
	for _, a := range legal {
		play, ok := a.(engine.Play)
		if !ok {
			continue
		}
		if winsTrick(trickMoves, play.Card) && play.Card.ID < winningID {
			winningID = play.Card.ID
			winning = a
		}
	}
	if winning != nil {
		return winning
	}

	// otherwise shed the cheapest card
	best := legal[0]
	bestScore := 1<<31 - 1
	for _, a := range legal {
		play, ok := a.(engine.Play)
		if !ok {
			continue
		}
		score := play.Card.Points()*100 + play.Card.ID
		if score < bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

func winsTrick(trickMoves []engine.PlayMove, card engine.Card) bool {
	winning := trickMoves[0].Card
	for _, m := range trickMoves[1:] {
		if engine.Competes(winning, m.Card) && m.Card.ID > winning.ID {
			winning = m.Card
		}
	}
	return engine.Competes(winning, card) && card.ID > winning.ID
}
