package engine

import "testing"

func TestGameInit(t *testing.T) {
	g := NewGame(42)
	state, current := g.Init()

	if g.Round.BoardID() < 1 || g.Round.BoardID() > 3 {
		t.Fatalf("board id out of range: %d", g.Round.BoardID())
	}
	if current != (g.Round.DealerID()+1)%NumPlayers {
		t.Fatalf("first mover: got %d", current)
	}
	if state.CurrentPlayerID != current || state.PlayerID != current {
		t.Fatalf("state ids mismatch: %+v", state)
	}
	if len(state.Hand) != 8 {
		t.Fatalf("state hand size: got %d", len(state.Hand))
	}
	total := len(g.Round.Table.Hand)
	for _, p := range g.Round.Players {
		total += len(p.Hand)
	}
	if total != NumCards {
		t.Fatalf("cards accounted for: got %d", total)
	}
}

func TestGameInitDeterministic(t *testing.T) {
	g1 := NewGame(7)
	g2 := NewGame(7)
	g1.Init()
	g2.Init()
	if g1.Round.BoardID() != g2.Round.BoardID() {
		t.Fatalf("board mismatch")
	}
	for id := 0; id < NumPlayers; id++ {
		for i := range g1.Round.Players[id].Hand {
			if g1.Round.Players[id].Hand[i] != g2.Round.Players[id].Hand[i] {
				t.Fatalf("determinism mismatch at player %d card %d", id, i)
			}
		}
	}
}

func TestGameStepRoutesCalls(t *testing.T) {
	g := NewGame(3)
	_, current := g.Init()

	state, next, err := g.Step(Pass{})
	if err != nil {
		t.Fatalf("step pass: %v", err)
	}
	if next != (current+1)%NumPlayers {
		t.Fatalf("next player: got %d", next)
	}
	if state.CurrentPlayerID != next {
		t.Fatalf("state current: got %d", state.CurrentPlayerID)
	}
	if len(g.Actions) != 1 {
		t.Fatalf("action log: got %d entries", len(g.Actions))
	}
}

func TestGameStepRejectsUnknownAction(t *testing.T) {
	g := NewGame(3)
	g.Init()
	if _, _, err := g.Step(nil); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if len(g.Actions) != 0 {
		t.Fatalf("failed step must not be logged")
	}
}

func TestGameThreePassesIsOver(t *testing.T) {
	g := NewGame(12)
	g.Init()
	for i := 0; i < NumPlayers; i++ {
		if _, _, err := g.Step(Pass{}); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	if !g.IsOver() {
		t.Fatalf("game should be over after three passes")
	}
	payoffs, err := Payoffs(g, 0)
	if err != nil {
		t.Fatalf("payoffs: %v", err)
	}
	if payoffs != [NumPlayers]int{0, 0, 0} {
		t.Fatalf("stalemate payoffs: got %v", payoffs)
	}
}

func TestGameFullRoundSettlesTo120(t *testing.T) {
	g := NewGame(99)
	g.Init()

	// take, bury twice, then always play the first legal card
	for steps := 0; !g.IsOver(); steps++ {
		if steps > 100 {
			t.Fatalf("round did not finish")
		}
		legal := g.LegalActions()
		if len(legal) == 0 {
			t.Fatalf("no legal actions at step %d", steps)
		}
		action := legal[0]
		if !g.Round.IsBiddingOver() && len(g.Round.CurrentPlayer().Hand) == 8 && g.Round.ContractTakeMove == nil {
			action = Take{}
		}
		if _, _, err := g.Step(action); err != nil {
			t.Fatalf("step %d: %v", steps, err)
		}
	}

	total := g.Round.WonTrickPoints[0] + g.Round.WonTrickPoints[1]
	if total != DeckPoints {
		t.Fatalf("settled points: got %d", total)
	}
	payoffs, err := Payoffs(g, 0)
	if err != nil {
		t.Fatalf("payoffs: %v", err)
	}
	large, ok := g.Round.LargePlayerID()
	if !ok {
		t.Fatalf("large player should exist")
	}
	var small []int
	for id, p := range payoffs {
		if id != large {
			small = append(small, p)
		}
	}
	if small[0] != small[1] {
		t.Fatalf("small side payoffs differ: %v", payoffs)
	}
}
