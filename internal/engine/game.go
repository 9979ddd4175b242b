package engine

import (
	"fmt"
	"math/rand"
)

// State is the per-player view returned by Init and Step.
type State struct {
	PlayerID        int
	CurrentPlayerID int
	Hand            []Card
}

// Game owns the random source and one round at a time and exposes the
// initialize/step/query protocol external callers drive the engine with.
// It assumes exclusive, sequential ownership by one caller.
type Game struct {
	rng     *rand.Rand
	Round   *Round
	Actions []Action
}

func NewGame(seed int64) *Game {
	return &Game{rng: rand.New(rand.NewSource(seed))}
}

// Init starts a fresh round on a board picked uniformly from {1,2,3} and
// returns the state plus the id of the player to move.
func (g *Game) Init() (State, int) {
	boardID := g.rng.Intn(NumPlayers) + 1
	round, err := NewRound(boardID, g.rng)
	if err != nil {
		// board ids 1..3 are always valid
		panic(err)
	}
	g.Round = round
	g.Actions = nil
	current := g.Round.CurrentPlayerID
	return g.State(current), current
}

// Step submits one action, routes it to the round and returns the next
// state plus the next player to move. Legality is the caller's contract:
// use LegalActions before stepping.
func (g *Game) Step(action Action) (State, int, error) {
	switch a := action.(type) {
	case CallAction:
		if err := g.Round.MakeCall(a); err != nil {
			return State{}, 0, err
		}
	case Play:
		if err := g.Round.PlayCard(a); err != nil {
			return State{}, 0, err
		}
	default:
		return State{}, 0, fmt.Errorf("step: unknown action %T", action)
	}
	g.Actions = append(g.Actions, action)
	next := g.Round.CurrentPlayerID
	return g.State(next), next, nil
}

func (g *Game) IsOver() bool {
	return g.Round.IsOver()
}

func (g *Game) CurrentPlayerID() int {
	return g.Round.CurrentPlayerID
}

// LegalActions returns the legal actions for the player to move.
func (g *Game) LegalActions() []Action {
	return LegalActions(g.Round)
}

// State returns the public-plus-own-hand view for one seat.
func (g *Game) State(playerID int) State {
	return State{
		PlayerID:        playerID,
		CurrentPlayerID: g.Round.CurrentPlayerID,
		Hand:            append([]Card(nil), g.Round.Players[playerID].Hand...),
	}
}
