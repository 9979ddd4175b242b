package engine

import "fmt"

// Tray maps a board id to a dealer seat.
type Tray struct {
	BoardID int
}

func NewTray(boardID int) (Tray, error) {
	if boardID <= 0 {
		return Tray{}, fmt.Errorf("invalid board id %d", boardID)
	}
	return Tray{BoardID: boardID}, nil
}

func (t Tray) DealerID() int {
	return (t.BoardID - 1) % NumPlayers
}

func (t Tray) String() string {
	return fmt.Sprintf("%d: dealer_id=%d", t.BoardID, t.DealerID())
}
