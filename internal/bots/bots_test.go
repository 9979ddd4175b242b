package bots

import (
	"fmt"
	"testing"

	"zole/internal/engine"
)

func TestBotSelfPlayManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		if err := runBotSelfPlay(seed, 6, 200); err != nil {
			t.Fatalf("bot self-play failed: %v", err)
		}
	}
}

func FuzzBotSelfPlay(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(20260211))
	f.Fuzz(func(t *testing.T, seed int64) {
		if err := runBotSelfPlay(seed, 3, 200); err != nil {
			t.Fatalf("bot self-play failed: %v", err)
		}
	})
}

func runBotSelfPlay(seed int64, rounds int, maxSteps int) error {
	players := map[int]Bot{
		0: NewGreedy(seed + 10),
		1: NewRandom(seed + 20),
		2: NewGreedy(seed + 30),
	}

	game := engine.NewGame(seed)
	for r := 0; r < rounds; r++ {
		game.Init()
		for step := 0; step < maxSteps; step++ {
			if game.IsOver() {
				break
			}
			current := game.CurrentPlayerID()
			legal := game.LegalActions()
			if len(legal) == 0 {
				return fmt.Errorf("seed=%d round=%d step=%d: no legal actions", seed, r, step)
			}
			action := players[current].ChooseAction(game.Round, legal)
			if !actionInList(action, legal) {
				return fmt.Errorf("seed=%d round=%d step=%d: bot chose illegal action %v", seed, r, step, action)
			}
			if _, _, err := game.Step(action); err != nil {
				return fmt.Errorf("seed=%d round=%d step=%d: %v", seed, r, step, err)
			}
		}
		if !game.IsOver() {
			return fmt.Errorf("seed=%d round=%d: round did not finish", seed, r)
		}
		if _, err := engine.Payoffs(game, 0); err != nil {
			return fmt.Errorf("seed=%d round=%d: %v", seed, r, err)
		}
	}
	return nil
}

func actionInList(a engine.Action, list []engine.Action) bool {
	for _, l := range list {
		if a.ID() == l.ID() {
			return true
		}
	}
	return false
}
