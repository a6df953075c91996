// Package ble connects the solver library to GoCube smart cubes over
// Bluetooth Low Energy: it decodes the cube's notification stream into turns
// and keeps a live cube configuration.
package ble

import (
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // Notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // Write
)

// Message type identifiers.
const (
	MsgTypeRotation     byte = 0x01
	MsgTypeState        byte = 0x02
	MsgTypeOrientation  byte = 0x03
	MsgTypeBattery      byte = 0x05
	MsgTypeOfflineStats byte = 0x07
	MsgTypeCubeType     byte = 0x08
)

// Command codes for writing to the RX characteristic.
const (
	CmdRequestBattery      byte = 0x32
	CmdRequestState        byte = 0x33
	CmdReboot              byte = 0x34
	CmdResetSolved         byte = 0x35
	CmdDisableOrientation  byte = 0x37
	CmdEnableOrientation   byte = 0x38
	CmdRequestOfflineStats byte = 0x39
	CmdFlashBacklight      byte = 0x41
	CmdRequestCubeType     byte = 0x56
)

// Message frame constants.
const (
	framePrefix  byte = 0x2A // '*'
	frameSuffix1 byte = 0x0D // CR
	frameSuffix2 byte = 0x0A // LF
)

// Frame errors.
var (
	ErrInvalidPrefix   = errors.New("ble: invalid message prefix")
	ErrInvalidSuffix   = errors.New("ble: invalid message suffix")
	ErrInvalidChecksum = errors.New("ble: invalid checksum")
	ErrMessageTooShort = errors.New("ble: message too short")
	ErrInvalidLength   = errors.New("ble: invalid message length")
)

// Message is one parsed GoCube notification.
type Message struct {
	Type    byte
	Payload []byte
}

// ParseFrame parses a raw BLE notification.
//
// Frame format: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A]
// where length counts every byte after the length field itself and the
// checksum is the sum of all bytes preceding it.
func ParseFrame(data []byte) (*Message, error) {
	if len(data) < 5 {
		return nil, ErrMessageTooShort
	}

	if data[0] != framePrefix {
		return nil, ErrInvalidPrefix
	}

	length := int(data[1])
	expectedLen := 2 + length
	if len(data) < expectedLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, expectedLen, len(data))
	}

	checksumIdx := length - 1
	if checksumIdx < 3 {
		return nil, ErrMessageTooShort
	}

	if data[checksumIdx+1] != frameSuffix1 || data[checksumIdx+2] != frameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	var checksum byte
	for i := 0; i < checksumIdx; i++ {
		checksum += data[i]
	}
	if checksum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X", ErrInvalidChecksum, data[checksumIdx], checksum)
	}

	return &Message{
		Type:    data[2],
		Payload: data[3:checksumIdx],
	}, nil
}

// BuildCommand creates a payload-free command frame to send to the cube.
func BuildCommand(cmd byte) []byte {
	length := byte(0x01)
	checksum := framePrefix + length + cmd
	return []byte{framePrefix, length, cmd, checksum, frameSuffix1, frameSuffix2}
}

// MessageTypeName returns a short name for logging.
func MessageTypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeOfflineStats:
		return "offline_stats"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}
