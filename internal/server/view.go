package server

import "zole/internal/engine"

type PlayerView struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
}

type TrickCardView struct {
	Player int     `json:"player"`
	Card   CardDTO `json:"card"`
}

type GameView struct {
	SessionID      string          `json:"sessionId"`
	BoardID        int             `json:"boardId"`
	Dealer         int             `json:"dealer"`
	CurrentPlayer  int             `json:"currentPlayer"`
	LargePlayer    *int            `json:"largePlayer,omitempty"`
	BiddingOver    bool            `json:"biddingOver"`
	Over           bool            `json:"over"`
	Players        []PlayerView    `json:"players"`
	TableCount     int             `json:"tableCount"`
	TrickCards     []TrickCardView `json:"trickCards"`
	WonTrickPoints [2]int          `json:"wonTrickPoints"`
	LegalActions   []ActionDTO     `json:"legalActions"`
	Payoffs        *[3]int         `json:"payoffs,omitempty"`
}

// BuildGameView renders the round for one viewer seat. Only the viewer's
// hand is revealed; legal actions are included only when it is the
// viewer's turn.
func BuildGameView(g *engine.Game, viewer int, sessionID string, incentive int) *GameView {
	round := g.Round
	players := make([]PlayerView, 0, engine.NumPlayers)
	for _, p := range round.Players {
		view := PlayerView{
			ID:        p.ID,
			Name:      p.String(),
			HandCount: len(p.Hand),
		}
		if p.ID == viewer {
			view.Hand = cardsToDTO(p.Hand)
		}
		players = append(players, view)
	}

	var large *int
	if id, ok := round.LargePlayerID(); ok {
		large = &id
	}

	trickCards := []TrickCardView{}
	if round.IsBiddingOver() && round.PlayCardCount%engine.NumPlayers != 0 {
		for _, m := range round.TrickMoves() {
			trickCards = append(trickCards, TrickCardView{Player: m.PlayerID, Card: *cardToDTO(m.Card)})
		}
	}

	legal := []ActionDTO{}
	if !g.IsOver() && round.CurrentPlayerID == viewer {
		legal = actionsToDTO(g.LegalActions())
	}

	view := &GameView{
		SessionID:      sessionID,
		BoardID:        round.BoardID(),
		Dealer:         round.DealerID(),
		CurrentPlayer:  round.CurrentPlayerID,
		LargePlayer:    large,
		BiddingOver:    round.IsBiddingOver(),
		Over:           g.IsOver(),
		Players:        players,
		TableCount:     len(round.Table.Hand),
		TrickCards:     trickCards,
		WonTrickPoints: round.WonTrickPoints,
		LegalActions:   legal,
	}
	if g.IsOver() {
		if payoffs, err := engine.Payoffs(g, incentive); err == nil {
			view.Payoffs = &payoffs
		}
	}
	return view
}
