package server

import (
	"zole/internal/engine"
)

type CardDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ActionDTO carries the stable action id plus a display name. Clients
// submit actions by id; cards are attached for bury/play actions.
type ActionDTO struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Card *CardDTO `json:"card,omitempty"`
}

func cardToDTO(c engine.Card) *CardDTO {
	return &CardDTO{ID: c.ID, Name: c.String()}
}

func cardsToDTO(cards []engine.Card) []CardDTO {
	out := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, *cardToDTO(c))
	}
	return out
}

func actionToDTO(a engine.Action) ActionDTO {
	switch act := a.(type) {
	case engine.Pass:
		return ActionDTO{ID: act.ID(), Name: "pass"}
	case engine.Take:
		return ActionDTO{ID: act.ID(), Name: "take"}
	case engine.Bury:
		return ActionDTO{ID: act.ID(), Name: "bury", Card: cardToDTO(act.Card)}
	case engine.Play:
		return ActionDTO{ID: act.ID(), Name: "play", Card: cardToDTO(act.Card)}
	default:
		return ActionDTO{ID: -1, Name: "unknown"}
	}
}

func actionsToDTO(actions []engine.Action) []ActionDTO {
	out := make([]ActionDTO, 0, len(actions))
	for _, a := range actions {
		out = append(out, actionToDTO(a))
	}
	return out
}
