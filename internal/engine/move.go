package engine

import (
	"fmt"
	"strings"
)

// Move is one entry of a round's append-only move sheet. The sheet is the
// only source of truth for the bidding/trick phase.
type Move interface {
	isMove()
}

// DealHandMove opens every move sheet and records the shuffle.
type DealHandMove struct {
	DealerID     int
	ShuffledDeck []Card
}

type PassMove struct {
	PlayerID int
}

type TakeMove struct {
	PlayerID int
}

type BuryMove struct {
	PlayerID int
	Card     Card
}

type PlayMove struct {
	PlayerID int
	Card     Card
}

func (DealHandMove) isMove() {}
func (PassMove) isMove()     {}
func (TakeMove) isMove()     {}
func (BuryMove) isMove()     {}
func (PlayMove) isMove()     {}

func (m DealHandMove) String() string {
	cards := make([]string, 0, len(m.ShuffledDeck))
	for _, c := range m.ShuffledDeck {
		cards = append(cards, c.String())
	}
	return fmt.Sprintf("%s deal shuffled_deck=[%s]", seatNames[m.DealerID], strings.Join(cards, " "))
}

func (m PassMove) String() string {
	return fmt.Sprintf("%s pass", seatNames[m.PlayerID])
}

func (m TakeMove) String() string {
	return fmt.Sprintf("%s took table", seatNames[m.PlayerID])
}

func (m BuryMove) String() string {
	return fmt.Sprintf("%s buried %s", seatNames[m.PlayerID], m.Card)
}

func (m PlayMove) String() string {
	return fmt.Sprintf("%s plays %s", seatNames[m.PlayerID], m.Card)
}
