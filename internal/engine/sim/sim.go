package sim

import (
	"fmt"
	"math/rand"

	"zole/internal/engine"
)

type ActionRecord struct {
	Round int
	Step  int
	P     int
	A     engine.Action
}

// RunSelfPlayRounds drives full rounds with a seeded random policy and
// checks engine invariants after every step. Returns an error with a
// trailing action trace on the first violation.
func RunSelfPlayRounds(seed int64, rounds int, maxStepsPerRound int) error {
	game := engine.NewGame(seed)
	policy := rand.New(rand.NewSource(seed + 1))

	for r := 0; r < rounds; r++ {
		game.Init()

		records := []ActionRecord{}
		for step := 0; step < maxStepsPerRound; step++ {
			if game.IsOver() {
				break
			}
			player := game.CurrentPlayerID()
			legal := game.LegalActions()
			if len(legal) == 0 {
				return failure(seed, r, step, player, records, "no legal actions")
			}
			action := legal[policy.Intn(len(legal))]
			if _, _, err := game.Step(action); err != nil {
				return failure(seed, r, step, player, records, fmt.Sprintf("step error: %v", err))
			}
			records = append(records, ActionRecord{Round: r, Step: step, P: player, A: action})
			if err := checkInvariants(game); err != nil {
				return failure(seed, r, step, player, records, err.Error())
			}
		}
		if !game.IsOver() {
			return failure(seed, r, maxStepsPerRound, -1, records, "round did not finish")
		}
		if err := checkSettlement(game); err != nil {
			return failure(seed, r, maxStepsPerRound, -1, records, err.Error())
		}
	}
	return nil
}

func checkInvariants(g *engine.Game) error {
	round := g.Round
	total, dup := countCards(round)
	if total != engine.NumCards {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	for _, p := range round.Players {
		if len(p.Hand) > 10 {
			return fmt.Errorf("hand size too large: %d", len(p.Hand))
		}
	}
	if len(round.Table.Hand) > 2 {
		return fmt.Errorf("table size too large: %d", len(round.Table.Hand))
	}
	if len(round.BuriedCards) > 2 {
		return fmt.Errorf("too many buried cards: %d", len(round.BuriedCards))
	}
	points := 0
	for side := 0; side < 2; side++ {
		for _, c := range round.WonTrickCards[side] {
			points += c.Points()
		}
	}
	if points != round.WonTrickPoints[0]+round.WonTrickPoints[1] {
		return fmt.Errorf("points bookkeeping mismatch: cards=%d counted=%d",
			points, round.WonTrickPoints[0]+round.WonTrickPoints[1])
	}
	return nil
}

func checkSettlement(g *engine.Game) error {
	round := g.Round
	if _, ok := round.LargePlayerID(); !ok {
		if round.WonTrickPoints[0] != 0 || round.WonTrickPoints[1] != 0 {
			return fmt.Errorf("points awarded without a contract: %v", round.WonTrickPoints)
		}
		return nil
	}
	total := round.WonTrickPoints[0] + round.WonTrickPoints[1]
	if total != engine.DeckPoints {
		return fmt.Errorf("settled points do not sum to %d: %v", engine.DeckPoints, round.WonTrickPoints)
	}
	if _, err := engine.Payoffs(g, 0); err != nil {
		return err
	}
	return nil
}

func countCards(round *engine.Round) (int, bool) {
	seen := map[int]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c.ID] {
			dup = true
		}
		seen[c.ID] = true
	}
	for _, p := range round.Players {
		for _, c := range p.Hand {
			add(c)
		}
	}
	for _, c := range round.Table.Hand {
		add(c)
	}
	for side := 0; side < 2; side++ {
		for _, c := range round.WonTrickCards[side] {
			add(c)
		}
	}
	// cards of an unfinished trick live only in the move sheet; a finished
	// trick is already in the won piles
	if round.PlayCardCount%engine.NumPlayers != 0 {
		for _, m := range round.TrickMoves() {
			add(m.Card)
		}
	}
	return total, dup
}

func failure(seed int64, round int, step int, player int, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[r%d s%d p%d] %v\n", r.Round, r.Step, r.P, r.A)
	}
	return fmt.Errorf("seed=%d round=%d step=%d player=%d reason=%s\nlast actions:\n%s",
		seed, round, step, player, reason, log)
}
