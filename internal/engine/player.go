package engine

import "fmt"

const NumPlayers = 3

var seatNames = [NumPlayers]string{"N", "E", "S"}

// Player is a mutable hand container addressable by seat id 0..2.
type Player struct {
	ID   int
	Hand []Card
}

func NewPlayer(id int) (*Player, error) {
	if id < 0 || id >= NumPlayers {
		return nil, fmt.Errorf("invalid player id %d", id)
	}
	return &Player{ID: id}, nil
}

// RemoveFromHand removes the card with the given id. Returns false if the
// player does not hold it.
func (p *Player) RemoveFromHand(card Card) bool {
	for i, c := range p.Hand {
		if c.ID == card.ID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// TakeTable moves the table's cards into the player's hand.
func (p *Player) TakeTable(t *Table) {
	p.Hand = append(p.Hand, t.Hand...)
	t.Hand = nil
}

func (p *Player) String() string {
	return seatNames[p.ID]
}

// Table holds the two cards set aside before the contract is decided.
type Table struct {
	Hand []Card
}

func (t *Table) String() string {
	return "T"
}
