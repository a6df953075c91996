package ble

import (
	"testing"

	"github.com/SeamusWaldron/gocube_solver_library"
)

func TestDecodeRotation_AllFaceCodes(t *testing.T) {
	tests := []struct {
		code byte
		want cubesolver.Turn
	}{
		{0x00, cubesolver.Turn{Face: cubesolver.FaceB, Direction: cubesolver.Clockwise}},
		{0x01, cubesolver.Turn{Face: cubesolver.FaceB, Direction: cubesolver.CounterClockwise}},
		{0x02, cubesolver.Turn{Face: cubesolver.FaceF, Direction: cubesolver.Clockwise}},
		{0x03, cubesolver.Turn{Face: cubesolver.FaceF, Direction: cubesolver.CounterClockwise}},
		{0x04, cubesolver.Turn{Face: cubesolver.FaceU, Direction: cubesolver.Clockwise}},
		{0x05, cubesolver.Turn{Face: cubesolver.FaceU, Direction: cubesolver.CounterClockwise}},
		{0x06, cubesolver.Turn{Face: cubesolver.FaceD, Direction: cubesolver.Clockwise}},
		{0x07, cubesolver.Turn{Face: cubesolver.FaceD, Direction: cubesolver.CounterClockwise}},
		{0x08, cubesolver.Turn{Face: cubesolver.FaceR, Direction: cubesolver.Clockwise}},
		{0x09, cubesolver.Turn{Face: cubesolver.FaceR, Direction: cubesolver.CounterClockwise}},
		{0x0A, cubesolver.Turn{Face: cubesolver.FaceL, Direction: cubesolver.Clockwise}},
		{0x0B, cubesolver.Turn{Face: cubesolver.FaceL, Direction: cubesolver.CounterClockwise}},
	}

	for _, tt := range tests {
		turns, err := DecodeRotation([]byte{tt.code, 0x00})
		if err != nil {
			t.Errorf("code 0x%02X: %v", tt.code, err)
			continue
		}
		if len(turns) != 1 || turns[0] != tt.want {
			t.Errorf("code 0x%02X: expected %v, got %v", tt.code, tt.want, turns)
		}
	}
}

func TestDecodeRotation_MultiplePairs(t *testing.T) {
	// U then R' in a single notification.
	turns, err := DecodeRotation([]byte{0x04, 0x00, 0x09, 0x01})
	if err != nil {
		t.Fatalf("DecodeRotation failed: %v", err)
	}

	want := []cubesolver.Turn{
		{Face: cubesolver.FaceU, Direction: cubesolver.Clockwise},
		{Face: cubesolver.FaceR, Direction: cubesolver.CounterClockwise},
	}
	if len(turns) != len(want) {
		t.Fatalf("expected %d turns, got %d", len(want), len(turns))
	}
	for i := range want {
		if turns[i] != want[i] {
			t.Errorf("turn %d: expected %v, got %v", i, want[i], turns[i])
		}
	}
}

func TestDecodeRotation_Invalid(t *testing.T) {
	if _, err := DecodeRotation([]byte{0x04}); err == nil {
		t.Error("expected error for odd payload length")
	}
	if _, err := DecodeRotation([]byte{0x0C, 0x00}); err == nil {
		t.Error("expected error for unknown face code")
	}
}

func TestDecodeBattery(t *testing.T) {
	level, err := DecodeBattery([]byte{0x55})
	if err != nil {
		t.Fatalf("DecodeBattery failed: %v", err)
	}
	if level != 85 {
		t.Errorf("expected level 85, got %d", level)
	}

	if _, err := DecodeBattery(nil); err == nil {
		t.Error("expected error for empty payload")
	}
}
