package engine

import "testing"

func TestTrayDealerID(t *testing.T) {
	for boardID, want := range map[int]int{1: 0, 2: 1, 3: 2, 4: 0, 7: 0} {
		tray, err := NewTray(boardID)
		if err != nil {
			t.Fatalf("board %d: %v", boardID, err)
		}
		if tray.DealerID() != want {
			t.Fatalf("board %d: dealer %d, want %d", boardID, tray.DealerID(), want)
		}
	}
}

func TestTrayRejectsNonPositiveBoard(t *testing.T) {
	for _, boardID := range []int{0, -1} {
		if _, err := NewTray(boardID); err == nil {
			t.Fatalf("expected error for board id %d", boardID)
		}
	}
}
