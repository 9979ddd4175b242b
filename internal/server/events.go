package server

import "zole/internal/engine"

type EventPayload struct {
	Player  int      `json:"player"`
	Card    *CardDTO `json:"card,omitempty"`
	Points  []int    `json:"points,omitempty"`
	Payoffs *[3]int  `json:"payoffs,omitempty"`
}

// buildEvents derives the public events of one applied action. Buried
// cards stay face-down in the public stream.
func buildEvents(g *engine.Game, player int, action engine.Action, incentive int) []Event {
	events := []Event{}
	switch a := action.(type) {
	case engine.Pass:
		events = append(events, Event{Type: "passed", Data: EventPayload{Player: player}})
	case engine.Take:
		events = append(events, Event{Type: "took_table", Data: EventPayload{Player: player}})
	case engine.Bury:
		events = append(events, Event{Type: "buried", Data: EventPayload{Player: player}})
	case engine.Play:
		events = append(events, Event{Type: "card_played", Data: EventPayload{Player: player, Card: cardToDTO(a.Card)}})
		if g.Round.PlayCardCount%engine.NumPlayers == 0 {
			events = append(events, Event{Type: "trick_won", Data: EventPayload{Player: g.Round.CurrentPlayerID}})
		}
	}

	if g.IsOver() {
		payload := EventPayload{
			Points: []int{g.Round.WonTrickPoints[0], g.Round.WonTrickPoints[1]},
		}
		if payoffs, err := engine.Payoffs(g, incentive); err == nil {
			payload.Payoffs = &payoffs
		}
		events = append(events, Event{Type: "round_over", Data: payload})
	}
	return events
}
