package engine

import (
	"fmt"
	"math/rand"
)

const (
	// sideLarge collects points for the player who took the table,
	// sideSmall for the other two seats pooled together.
	sideLarge = 0
	sideSmall = 1

	playHandSize = 8
	tableSize    = 2
	dealBatch    = 4
)

// Round is the state machine for one hand: dealing, bidding, trick play and
// score bookkeeping. It trusts its caller to submit only actions the judger
// declared legal; it re-checks structure, not legality.
type Round struct {
	Tray    Tray
	Dealer  *Dealer
	Players [NumPlayers]*Player
	Table   *Table

	CurrentPlayerID  int
	PlayCardCount    int
	ContractTakeMove *TakeMove
	WonTrickPoints   [2]int
	WonTrickCards    [2][]Card
	BuriedCards      []Card
	MoveSheet        []Move
}

// NewRound deals a fresh hand for the given board: four cards to each seat
// starting after the dealer, two to the table, then four to each seat again.
func NewRound(boardID int, rng *rand.Rand) (*Round, error) {
	tray, err := NewTray(boardID)
	if err != nil {
		return nil, err
	}
	r := &Round{
		Tray:   tray,
		Dealer: NewDealer(rng),
		Table:  &Table{},
	}
	for id := 0; id < NumPlayers; id++ {
		p, err := NewPlayer(id)
		if err != nil {
			return nil, err
		}
		r.Players[id] = p
	}
	r.CurrentPlayerID = r.personAfterDealer()
	r.MoveSheet = append(r.MoveSheet, DealHandMove{
		DealerID:     tray.DealerID(),
		ShuffledDeck: r.Dealer.ShuffledDeck,
	})

	r.dealPlayerCards()
	r.Dealer.DealTableCards(r.Table, tableSize)
	r.dealPlayerCards()
	return r, nil
}

func (r *Round) dealPlayerCards() {
	r.Dealer.DealCards(r.Players[r.personAfterDealer()], dealBatch)
	r.Dealer.DealCards(r.Players[r.secondPersonAfterDealer()], dealBatch)
	r.Dealer.DealCards(r.Players[r.DealerID()], dealBatch)
}

func (r *Round) BoardID() int {
	return r.Tray.BoardID
}

func (r *Round) DealerID() int {
	return r.Tray.DealerID()
}

// LargePlayerID returns the seat that took the table, or false if the
// contract is still open or nobody took it.
func (r *Round) LargePlayerID() (int, bool) {
	if r.ContractTakeMove == nil {
		return 0, false
	}
	return r.ContractTakeMove.PlayerID, true
}

func (r *Round) CurrentPlayer() *Player {
	return r.Players[r.CurrentPlayerID]
}

func (r *Round) personAfterDealer() int {
	return (r.DealerID() + 1) % NumPlayers
}

func (r *Round) secondPersonAfterDealer() int {
	return (r.DealerID() + 2) % NumPlayers
}

// IsBiddingOver derives the bidding status by walking the move sheet
// backward. The phase is never cached; the sheet is the single source of
// truth, which keeps replay from history alone possible.
func (r *Round) IsBiddingOver() bool {
	passes := 0
	buries := 0
	for i := len(r.MoveSheet) - 1; i >= 0; i-- {
		switch r.MoveSheet[i].(type) {
		case PlayMove:
			return true
		case PassMove:
			passes++
			if passes == NumPlayers {
				return true
			}
		case TakeMove:
			return false
		case BuryMove:
			buries++
			if buries == tableSize {
				return true
			}
		case DealHandMove:
			return false
		default:
			panic(fmt.Sprintf("unknown move type %T in move sheet", r.MoveSheet[i]))
		}
	}
	return false
}

// IsOver reports whether the round is terminal: bidding ended with no taker,
// or every hand has been played out after a taken contract.
func (r *Round) IsOver() bool {
	if !r.IsBiddingOver() {
		return false
	}
	if r.ContractTakeMove == nil {
		return true
	}
	for _, p := range r.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// TrickMoves returns the plays of the current, possibly partial trick. The
// trick resets every third play.
func (r *Round) TrickMoves() []PlayMove {
	if !r.IsBiddingOver() || r.PlayCardCount == 0 {
		return nil
	}
	count := r.PlayCardCount % NumPlayers
	if count == 0 {
		count = NumPlayers
	}
	moves := make([]PlayMove, 0, count)
	for _, m := range r.MoveSheet[len(r.MoveSheet)-count:] {
		if pm, ok := m.(PlayMove); ok {
			moves = append(moves, pm)
		}
	}
	if len(moves) != count {
		panic(fmt.Sprintf("trick move count mismatch: got %d, want %d", len(moves), count))
	}
	return moves
}

// MakeCall executes one bidding-phase action for the current player.
func (r *Round) MakeCall(action CallAction) error {
	current := r.CurrentPlayer()
	switch a := action.(type) {
	case Pass:
		r.MoveSheet = append(r.MoveSheet, PassMove{PlayerID: current.ID})
	case Take:
		take := TakeMove{PlayerID: current.ID}
		current.TakeTable(r.Table)
		r.ContractTakeMove = &take
		r.MoveSheet = append(r.MoveSheet, take)
		// taking does not rotate the turn; burying comes next
		return nil
	case Bury:
		if !current.RemoveFromHand(a.Card) {
			return fmt.Errorf("bury: %s not in hand of %s", a.Card, current)
		}
		r.WonTrickPoints[sideLarge] += a.Card.Points()
		r.WonTrickCards[sideLarge] = append(r.WonTrickCards[sideLarge], a.Card)
		r.MoveSheet = append(r.MoveSheet, BuryMove{PlayerID: current.ID, Card: a.Card})
		r.BuriedCards = append(r.BuriedCards, a.Card)
		if len(current.Hand) > playHandSize {
			// a second bury is expected from the same seat
			return nil
		}
	default:
		return fmt.Errorf("make call: unknown action %T", action)
	}
	if r.IsBiddingOver() {
		if !r.IsOver() {
			r.CurrentPlayerID = r.personAfterDealer()
		}
	} else {
		r.CurrentPlayerID = (r.CurrentPlayerID + 1) % NumPlayers
	}
	return nil
}

// PlayCard executes one trick-phase play for the current player. When the
// play completes a trick, the winner is resolved and its points and cards
// are credited to the winning side; the winner leads the next trick.
func (r *Round) PlayCard(action Play) error {
	current := r.CurrentPlayer()
	if !current.RemoveFromHand(action.Card) {
		return fmt.Errorf("play: %s not in hand of %s", action.Card, current)
	}
	r.MoveSheet = append(r.MoveSheet, PlayMove{PlayerID: current.ID, Card: action.Card})
	r.PlayCardCount++

	trickMoves := r.TrickMoves()
	if len(trickMoves) < NumPlayers {
		r.CurrentPlayerID = (r.CurrentPlayerID + 1) % NumPlayers
		return nil
	}

	winning := trickMoves[0].Card
	winnerID := trickMoves[0].PlayerID
	trickPoints := winning.Points()
	trickCards := []Card{winning}
	for _, move := range trickMoves[1:] {
		trickCards = append(trickCards, move.Card)
		trickPoints += move.Card.Points()
		if Competes(winning, move.Card) && move.Card.ID > winning.ID {
			winning = move.Card
			winnerID = move.PlayerID
		}
	}

	r.CurrentPlayerID = winnerID
	side := sideSmall
	if large, ok := r.LargePlayerID(); ok && winnerID == large {
		side = sideLarge
	}
	r.WonTrickCards[side] = append(r.WonTrickCards[side], trickCards...)
	r.WonTrickPoints[side] += trickPoints
	return nil
}
