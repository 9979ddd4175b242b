// Package features turns engine state into the fixed-size one-hot
// observation consumed by agents operating over integer action spaces. The
// engine itself stays free of any numeric representation.
package features

import "zole/internal/engine"

// Observation layout: per-seat hand one-hots, per-seat current-trick
// one-hots, the hidden-card set, then dealer/large/current seat one-hots
// and the bidding-over flag.
const (
	handsRepSize        = engine.NumPlayers * engine.NumCards
	trickRepSize        = engine.NumPlayers * engine.NumCards
	hiddenCardsRepSize  = engine.NumCards
	seatRepSize         = engine.NumPlayers
	biddingOverFlagSize = 1

	StateShapeSize = handsRepSize + trickRepSize + hiddenCardsRepSize + 3*seatRepSize + biddingOverFlagSize
)

type Observation struct {
	Obs          []int
	LegalActions []int
	ActionMask   []int
}

// Extract builds the observation for the player currently to move. Only
// that player's own hand is revealed; opponents' hands and either the table
// or the buried cards count as hidden.
func Extract(g *engine.Game) Observation {
	round := g.Round
	currentID := round.CurrentPlayerID
	largeID, hasLarge := round.LargePlayerID()

	obs := make([]int, 0, StateShapeSize)

	handsRep := make([]int, handsRepSize)
	if !g.IsOver() {
		for _, c := range round.Players[currentID].Hand {
			handsRep[currentID*engine.NumCards+c.ID] = 1
		}
	}
	obs = append(obs, handsRep...)

	trickRep := make([]int, trickRepSize)
	if round.IsBiddingOver() && !g.IsOver() {
		for _, move := range round.TrickMoves() {
			trickRep[move.PlayerID*engine.NumCards+move.Card.ID] = 1
		}
	}
	obs = append(obs, trickRep...)

	obs = append(obs, hiddenCardsRep(g, currentID, largeID, hasLarge)...)

	dealerRep := make([]int, seatRepSize)
	dealerRep[round.DealerID()] = 1
	obs = append(obs, dealerRep...)

	largeRep := make([]int, seatRepSize)
	if hasLarge {
		largeRep[largeID] = 1
	}
	obs = append(obs, largeRep...)

	currentRep := make([]int, seatRepSize)
	currentRep[currentID] = 1
	obs = append(obs, currentRep...)

	if round.IsBiddingOver() {
		obs = append(obs, 1)
	} else {
		obs = append(obs, 0)
	}

	legal := g.LegalActions()
	ids := make([]int, 0, len(legal))
	mask := make([]int, engine.NumActions)
	for _, a := range legal {
		ids = append(ids, a.ID())
		mask[a.ID()] = 1
	}

	return Observation{Obs: obs, LegalActions: ids, ActionMask: mask}
}

func hiddenCardsRep(g *engine.Game, currentID, largeID int, hasLarge bool) []int {
	round := g.Round
	hidden := make([]int, hiddenCardsRepSize)
	if g.IsOver() {
		return hidden
	}

	for _, p := range round.Players {
		if p.ID == currentID {
			continue
		}
		for _, c := range p.Hand {
			hidden[c.ID] = 1
		}
	}

	if round.IsBiddingOver() {
		// buried cards are known only to the large player
		if !hasLarge || currentID != largeID {
			for _, c := range round.BuriedCards {
				hidden[c.ID] = 1
			}
		}
	} else {
		for _, c := range round.Table.Hand {
			hidden[c.ID] = 1
		}
	}
	return hidden
}
