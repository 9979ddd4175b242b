package engine

// LegalActions is a pure function of the round state returning the actions
// the current player may take, in hand order.
func LegalActions(r *Round) []Action {
	if r.IsOver() {
		return nil
	}
	current := r.CurrentPlayer()
	if !r.IsBiddingOver() {
		return biddingLegalActions(current)
	}
	return trickLegalActions(r, current)
}

func biddingLegalActions(current *Player) []Action {
	// more than 8 cards means the table was just taken: two buries are due
	if len(current.Hand) > playHandSize {
		out := make([]Action, 0, len(current.Hand))
		for _, c := range current.Hand {
			out = append(out, Bury{Card: c})
		}
		return out
	}
	return []Action{Pass{}, Take{}}
}

func trickLegalActions(r *Round, current *Player) []Action {
	cards := legalCards(r, current)
	out := make([]Action, 0, len(cards))
	for _, c := range cards {
		out = append(out, Play{Card: c})
	}
	return out
}

func legalCards(r *Round, current *Player) []Card {
	trickMoves := r.TrickMoves()
	if len(trickMoves) > 0 && len(trickMoves) < NumPlayers {
		led := trickMoves[0].Card
		matching := make([]Card, 0, len(current.Hand))
		for _, c := range current.Hand {
			if led.SameGroup(c) {
				matching = append(matching, c)
			}
		}
		if len(matching) > 0 {
			return matching
		}
	}
	return current.Hand
}
