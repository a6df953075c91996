package ble

import (
	"testing"

	"github.com/SeamusWaldron/gocube_solver_library"
)

// newTestTracker builds a tracker without touching the BLE adapter, so the
// notification path can be exercised with crafted frames.
func newTestTracker() *Tracker {
	return &Tracker{
		battery: -1,
		state:   cubesolver.Solved(),
	}
}

func TestTracker_RotationNotification(t *testing.T) {
	tr := newTestTracker()

	// Face code 0x02 is a clockwise green turn.
	tr.handleNotification([]byte{0x2A, 0x06, 0x01, 0x02, 0x00, 0x33, 0x0D, 0x0A})

	history := tr.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 turn in history, got %d", len(history))
	}
	wantTurn := cubesolver.Turn{Face: cubesolver.FaceF, Direction: cubesolver.Clockwise}
	if history[0] != wantTurn {
		t.Errorf("expected turn %v, got %v", wantTurn, history[0])
	}

	if tr.IsSolved() {
		t.Error("expected unsolved configuration after one turn")
	}

	m, err := cubesolver.Replay([]cubesolver.Turn{wantTurn})
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if tr.Configuration() != cubesolver.Solved().Transform(m) {
		t.Error("tracked configuration does not match replayed turn")
	}
}

func TestTracker_TurnAndInverseResolve(t *testing.T) {
	tr := newTestTracker()

	// F followed by F' returns to solved while history keeps both turns.
	tr.handleNotification([]byte{0x2A, 0x06, 0x01, 0x02, 0x00, 0x33, 0x0D, 0x0A})
	tr.handleNotification([]byte{0x2A, 0x06, 0x01, 0x03, 0x00, 0x34, 0x0D, 0x0A})

	if !tr.IsSolved() {
		t.Error("expected solved configuration after turn and inverse")
	}
	if len(tr.History()) != 2 {
		t.Errorf("expected 2 turns in history, got %d", len(tr.History()))
	}
}

func TestTracker_BatteryNotification(t *testing.T) {
	tr := newTestTracker()

	if tr.Battery() != -1 {
		t.Errorf("expected unknown battery level, got %d", tr.Battery())
	}

	tr.handleNotification([]byte{0x2A, 0x05, 0x05, 0x55, 0x89, 0x0D, 0x0A})

	if tr.Battery() != 85 {
		t.Errorf("expected battery level 85, got %d", tr.Battery())
	}
}

func TestTracker_CorruptNotificationIgnored(t *testing.T) {
	tr := newTestTracker()

	tr.handleNotification([]byte{0xFF, 0x00})
	tr.handleNotification([]byte{0x2A, 0x06, 0x01, 0x02, 0x00, 0x34, 0x0D, 0x0A})

	if len(tr.History()) != 0 {
		t.Errorf("expected empty history, got %d turns", len(tr.History()))
	}
	if !tr.IsSolved() {
		t.Error("expected configuration to stay solved")
	}
}

func TestTracker_OnTurnCallback(t *testing.T) {
	tr := newTestTracker()

	var gotTurns []cubesolver.Turn
	var lastState cubesolver.Configuration
	tr.OnTurn(func(turn cubesolver.Turn, state cubesolver.Configuration) {
		gotTurns = append(gotTurns, turn)
		lastState = state
	})

	tr.handleNotification([]byte{0x2A, 0x06, 0x01, 0x02, 0x00, 0x33, 0x0D, 0x0A})

	if len(gotTurns) != 1 {
		t.Fatalf("expected 1 callback, got %d", len(gotTurns))
	}
	if lastState != tr.Configuration() {
		t.Error("callback state does not match tracked configuration")
	}
}

func TestTracker_History_ReturnsCopy(t *testing.T) {
	tr := newTestTracker()
	tr.handleNotification([]byte{0x2A, 0x06, 0x01, 0x02, 0x00, 0x33, 0x0D, 0x0A})

	history := tr.History()
	history[0] = cubesolver.Turn{Face: cubesolver.FaceD, Direction: cubesolver.Clockwise}

	if tr.History()[0].Face != cubesolver.FaceF {
		t.Error("mutating the returned history changed the tracker")
	}
}

func TestTracker_SendCommandRequiresConnection(t *testing.T) {
	tr := newTestTracker()

	if err := tr.RequestBattery(); err != ErrNotConnected {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
	if err := tr.FlashBacklight(); err != ErrNotConnected {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
	if err := tr.ResetSolved(); err != ErrNotConnected {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
}
