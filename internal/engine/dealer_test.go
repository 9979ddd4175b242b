package engine

import (
	"math/rand"
	"testing"
)

func TestDealerShuffleDeterministic(t *testing.T) {
	d1 := NewDealer(rand.New(rand.NewSource(42)))
	d2 := NewDealer(rand.New(rand.NewSource(42)))
	for i := range d1.ShuffledDeck {
		if d1.ShuffledDeck[i] != d2.ShuffledDeck[i] {
			t.Fatalf("shuffle mismatch at %d", i)
		}
	}
}

func TestDealerDealsFromTop(t *testing.T) {
	d := NewDealer(rand.New(rand.NewSource(1)))
	top := d.ShuffledDeck[len(d.ShuffledDeck)-1]

	p, _ := NewPlayer(0)
	d.DealCards(p, 4)
	if len(p.Hand) != 4 {
		t.Fatalf("hand size: got %d", len(p.Hand))
	}
	if p.Hand[0] != top {
		t.Fatalf("first dealt card should be top of stock")
	}
	if d.StockSize() != NumCards-4 {
		t.Fatalf("stock size: got %d", d.StockSize())
	}

	table := &Table{}
	d.DealTableCards(table, 2)
	if len(table.Hand) != 2 {
		t.Fatalf("table size: got %d", len(table.Hand))
	}
}

func TestDealerStockUnderflowPanics(t *testing.T) {
	d := NewDealer(rand.New(rand.NewSource(1)))
	p, _ := NewPlayer(0)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on stock underflow")
		}
	}()
	d.DealCards(p, NumCards+1)
}
