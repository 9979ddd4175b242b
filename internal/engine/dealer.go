package engine

import (
	"fmt"
	"math/rand"
)

// Dealer shuffles the deck once and deals fixed-size batches from the top
// of the stock. ShuffledDeck keeps the shuffle for the deal record.
type Dealer struct {
	ShuffledDeck []Card
	stock        []Card
}

func NewDealer(rng *rand.Rand) *Dealer {
	deck := Deck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	stock := make([]Card, len(deck))
	copy(stock, deck)
	return &Dealer{ShuffledDeck: deck, stock: stock}
}

// DealCards pops n cards from the stock into the player's hand.
func (d *Dealer) DealCards(p *Player, n int) {
	p.Hand = append(p.Hand, d.pop(n)...)
}

// DealTableCards pops n cards from the stock onto the table.
func (d *Dealer) DealTableCards(t *Table, n int) {
	t.Hand = append(t.Hand, d.pop(n)...)
}

// StockSize returns the number of undealt cards.
func (d *Dealer) StockSize() int {
	return len(d.stock)
}

func (d *Dealer) pop(n int) []Card {
	if n > len(d.stock) {
		// The fixed dealing sequence exhausts the deck exactly; underflow
		// means the bookkeeping is broken.
		panic(fmt.Sprintf("dealer stock underflow: want %d, have %d", n, len(d.stock)))
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		top := d.stock[len(d.stock)-1]
		d.stock = d.stock[:len(d.stock)-1]
		cards = append(cards, top)
	}
	return cards
}
