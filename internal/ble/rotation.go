package ble

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_solver_library"
)

// The cube reports rotations by center-sticker color. Face letters follow the
// standard orientation: white up, green front.
var colorFaces = [6]cubesolver.Face{
	0: cubesolver.FaceB, // blue
	1: cubesolver.FaceF, // green
	2: cubesolver.FaceU, // white
	3: cubesolver.FaceD, // yellow
	4: cubesolver.FaceR, // red
	5: cubesolver.FaceL, // orange
}

// DecodeRotation decodes a rotation message payload into turns. The payload
// carries pairs of bytes, [face_code] [center_orientation]; even face codes
// are clockwise, odd ones counter-clockwise.
func DecodeRotation(payload []byte) ([]cubesolver.Turn, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("ble: rotation payload must have even length, got %d", len(payload))
	}

	turns := make([]cubesolver.Turn, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		faceCode := payload[i]
		colorIdx := faceCode / 2
		if int(colorIdx) >= len(colorFaces) {
			return nil, fmt.Errorf("ble: unknown face code 0x%02X", faceCode)
		}

		dir := cubesolver.Clockwise
		if faceCode%2 == 1 {
			dir = cubesolver.CounterClockwise
		}

		turns = append(turns, cubesolver.Turn{Face: colorFaces[colorIdx], Direction: dir})
	}

	return turns, nil
}

// DecodeBattery decodes a battery message payload into a 0-100 level.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("ble: battery payload too short")
	}
	return int(payload[0]), nil
}
