package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitHearts Suit = iota
	SuitSpades
	SuitClubs
	SuitDiamonds
)

const (
	Rank7 Rank = iota
	Rank8
	Rank9
	RankK
	Rank10
	RankA
	RankJ
	RankQ
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case RankK:
		return "K"
	case Rank10:
		return "10"
	case RankA:
		return "A"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	default:
		return "?"
	}
}

// Card is one of the 26 playable cards. ID is the identity: it fixes the
// catalog position and the relative strength within a group (higher wins).
type Card struct {
	ID   int
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

const (
	NumCards = 26

	// Trump is ids 12..25: all diamonds plus every jack and queen.
	firstTrumpID = 12

	// DeckPoints is the fixed point total of the full deck.
	DeckPoints = 120
)

// catalog order: Hearts 9 K 10 A, Spades 9 K 10 A, Clubs 9 K 10 A,
// then trump 7D 8D 9D KD 10D AD JD JH JS JC QD QH QS QC.
var catalog = buildCatalog()

var cardPoints = [NumCards]int{
	0, 4, 10, 11, // hearts
	0, 4, 10, 11, // spades
	0, 4, 10, 11, // clubs
	0, 0, 0, 4, 10, 11, // 7D 8D 9D KD 10D AD
	2, 2, 2, 2, // jacks
	3, 3, 3, 3, // queens
}

func buildCatalog() [NumCards]Card {
	plainRanks := []Rank{Rank9, RankK, Rank10, RankA}
	specs := make([]Card, 0, NumCards)
	for _, s := range []Suit{SuitHearts, SuitSpades, SuitClubs} {
		for _, r := range plainRanks {
			specs = append(specs, Card{Suit: s, Rank: r})
		}
	}
	for _, r := range []Rank{Rank7, Rank8, Rank9, RankK, Rank10, RankA} {
		specs = append(specs, Card{Suit: SuitDiamonds, Rank: r})
	}
	for _, r := range []Rank{RankJ, RankQ} {
		for _, s := range []Suit{SuitDiamonds, SuitHearts, SuitSpades, SuitClubs} {
			specs = append(specs, Card{Suit: s, Rank: r})
		}
	}

	var deck [NumCards]Card
	for i, c := range specs {
		c.ID = i
		deck[i] = c
	}
	return deck
}

// Deck returns the full catalog in canonical order.
func Deck() []Card {
	deck := make([]Card, NumCards)
	copy(deck, catalog[:])
	return deck
}

// CardByID returns the catalog entry for id.
func CardByID(id int) (Card, error) {
	if id < 0 || id >= NumCards {
		return Card{}, fmt.Errorf("invalid card id %d", id)
	}
	return catalog[id], nil
}

// Points returns the fixed point value of the card.
func (c Card) Points() int {
	return cardPoints[c.ID]
}

// IsTrump reports whether the card belongs to the trump group.
func (c Card) IsTrump() bool {
	return c.ID >= firstTrumpID
}

func (c Card) group() int {
	if c.IsTrump() {
		return 3
	}
	return c.ID / 4
}

// SameGroup reports whether both cards belong to the same of the four
// groups (hearts, spades, clubs, trump). Trump only matches trump; this is
// the follow-suit test.
func (c Card) SameGroup(o Card) bool {
	return c.group() == o.group()
}

// Competes reports whether candidate is comparable against the current best
// card of a trick. A trump competes against anything; otherwise the
// candidate must be in the best card's group.
func Competes(best, candidate Card) bool {
	if candidate.IsTrump() {
		return true
	}
	return best.SameGroup(candidate)
}
