package engine

import "fmt"

// Action ids are stable and bit-exact for serialized traces and for agents
// operating over integer action spaces:
//
//	0        deal hand (history only, never a step input)
//	1        pass table
//	2        take table
//	3..28    bury card with id = action id - 3
//	29..54   play card with id = action id - 29
const (
	DealHandActionID      = 0
	PassTableActionID     = 1
	TakeTableActionID     = 2
	FirstBuryCardActionID = 3
	FirstPlayCardActionID = 29
)

// NumActions is the size of the full action space.
const NumActions = 3 + NumCards + NumCards

// Action is one of the closed set of player actions. CallAction variants
// drive the bidding phase, Play drives the trick phase.
type Action interface {
	ID() int
	isAction()
}

// CallAction marks the bidding-phase variants.
type CallAction interface {
	Action
	isCall()
}

type Pass struct{}

type Take struct{}

type Bury struct {
	Card Card
}

type Play struct {
	Card Card
}

func (Pass) isAction() {}
func (Take) isAction() {}
func (Bury) isAction() {}
func (Play) isAction() {}

func (Pass) isCall() {}
func (Take) isCall() {}
func (Bury) isCall() {}

func (Pass) ID() int { return PassTableActionID }
func (Take) ID() int { return TakeTableActionID }

func (a Bury) ID() int { return FirstBuryCardActionID + a.Card.ID }
func (a Play) ID() int { return FirstPlayCardActionID + a.Card.ID }

func (Pass) String() string { return "pass" }
func (Take) String() string { return "pick up" }

func (a Bury) String() string { return a.Card.String() }
func (a Play) String() string { return a.Card.String() }

// ActionFromID decodes a stable action id. The deal-hand id and anything
// outside [1,54] fail.
func ActionFromID(id int) (Action, error) {
	switch {
	case id == PassTableActionID:
		return Pass{}, nil
	case id == TakeTableActionID:
		return Take{}, nil
	case id >= FirstBuryCardActionID && id < FirstPlayCardActionID:
		card, err := CardByID(id - FirstBuryCardActionID)
		if err != nil {
			return nil, err
		}
		return Bury{Card: card}, nil
	case id >= FirstPlayCardActionID && id < FirstPlayCardActionID+NumCards:
		card, err := CardByID(id - FirstPlayCardActionID)
		if err != nil {
			return nil, err
		}
		return Play{Card: card}, nil
	default:
		return nil, fmt.Errorf("invalid action id %d", id)
	}
}
