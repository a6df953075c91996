package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/SeamusWaldron/gocube_solver_library"
)

// Connection errors.
var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
	ErrServiceNotFound  = errors.New("ble: cube service not found")
)

var (
	serviceUUID = bluetooth.NewUUID(mustParseUUID(ServiceUUID))
	txCharUUID  = bluetooth.NewUUID(mustParseUUID(TxCharUUID))
	rxCharUUID  = bluetooth.NewUUID(mustParseUUID(RxCharUUID))
)

func mustParseUUID(s string) [16]byte {
	var uuid [16]byte
	clean := strings.ReplaceAll(s, "-", "")
	for i := 0; i < 16; i++ {
		var b byte
		fmt.Sscanf(clean[i*2:i*2+2], "%02x", &b)
		uuid[i] = b
	}
	return uuid
}

// ScanResult is a discovered smart cube.
type ScanResult struct {
	Name    string
	UUID    string
	RSSI    int16
	Address bluetooth.Address
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithScanTimeout bounds how long Scan waits for advertisements.
func WithScanTimeout(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.scanTimeout = d
		}
	}
}

// WithNamePrefix filters scan results by advertised name.
func WithNamePrefix(prefix string) Option {
	return func(t *Tracker) {
		if prefix != "" {
			t.namePrefix = strings.ToLower(prefix)
		}
	}
}

// Tracker follows a smart cube over BLE. It decodes the rotation stream into
// turns, replays each turn onto a live configuration, and reports both
// through the OnTurn callback. The turn history since the last solved reset
// doubles as the scramble for the solver.
type Tracker struct {
	adapter     *bluetooth.Adapter
	scanTimeout time.Duration
	namePrefix  string

	mu         sync.RWMutex
	device     bluetooth.Device
	txChar     bluetooth.DeviceCharacteristic
	rxChar     bluetooth.DeviceCharacteristic
	connected  bool
	deviceName string
	battery    int
	state      cubesolver.Configuration
	history    []cubesolver.Turn
	onTurn     func(cubesolver.Turn, cubesolver.Configuration)
}

// NewTracker enables the default BLE adapter and returns a tracker.
func NewTracker(opts ...Option) (*Tracker, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}

	t := &Tracker{
		adapter:     adapter,
		scanTimeout: 5 * time.Second,
		namePrefix:  "gocube",
		battery:     -1,
		state:       cubesolver.Solved(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// OnTurn sets the callback invoked for every decoded turn, with the
// configuration after the turn was applied. The callback runs on the BLE
// notification goroutine.
func (t *Tracker) OnTurn(cb func(cubesolver.Turn, cubesolver.Configuration)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTurn = cb
}

// Scan discovers smart cubes until the scan timeout or context cancellation.
func (t *Tracker) Scan(ctx context.Context) ([]ScanResult, error) {
	t.mu.RLock()
	if t.connected {
		t.mu.RUnlock()
		return nil, ErrAlreadyConnected
	}
	t.mu.RUnlock()

	var results []ScanResult
	var mu sync.Mutex
	seen := make(map[string]bool)

	done := make(chan struct{})
	go func() {
		t.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			addr := result.Address.String()

			mu.Lock()
			defer mu.Unlock()
			if seen[addr] {
				return
			}
			seen[addr] = true

			name := result.LocalName()
			if strings.HasPrefix(strings.ToLower(name), t.namePrefix) {
				results = append(results, ScanResult{
					Name:    name,
					UUID:    addr,
					RSSI:    result.RSSI,
					Address: result.Address,
				})
			}
		})
		close(done)
	}()

	select {
	case <-time.After(t.scanTimeout):
	case <-ctx.Done():
	}

	t.adapter.StopScan()
	<-done

	mu.Lock()
	defer mu.Unlock()
	return results, nil
}

// Connect connects to a scanned cube and subscribes to its rotation stream.
func (t *Tracker) Connect(ctx context.Context, result ScanResult) error {
	t.mu.Lock()
	if t.connected {
		t.mu.Unlock()
		return ErrAlreadyConnected
	}
	t.mu.Unlock()

	device, err := t.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover characteristics: %w", err)
	}

	var txChar, rxChar bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			txChar = ch
		case rxCharUUID:
			rxChar = ch
		}
	}

	if err := txChar.EnableNotifications(t.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to enable notifications: %w", err)
	}

	t.mu.Lock()
	t.device = device
	t.txChar = txChar
	t.rxChar = rxChar
	t.connected = true
	t.deviceName = result.Name
	t.state = cubesolver.Solved()
	t.history = nil
	t.mu.Unlock()

	t.RequestBattery()

	return nil
}

// Close disconnects from the cube.
func (t *Tracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return nil
	}

	err := t.device.Disconnect()
	t.connected = false
	t.deviceName = ""
	t.battery = -1

	return err
}

// IsConnected reports whether a cube is connected.
func (t *Tracker) IsConnected() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.connected
}

// DeviceName returns the connected cube's advertised name.
func (t *Tracker) DeviceName() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.deviceName
}

// Battery returns the last reported battery level, or -1 when unknown.
func (t *Tracker) Battery() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.battery
}

// Configuration returns the cube configuration implied by the turns seen
// since the last solved reset.
func (t *Tracker) Configuration() cubesolver.Configuration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// History returns a copy of the turns seen since the last solved reset.
func (t *Tracker) History() []cubesolver.Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]cubesolver.Turn, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved reports whether the tracked configuration is solved.
func (t *Tracker) IsSolved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.IsSolved()
}

// ResetSolved tells the cube its current physical state is solved and clears
// the tracked configuration and history to match.
func (t *Tracker) ResetSolved() error {
	if err := t.sendCommand(CmdResetSolved); err != nil {
		return err
	}

	t.mu.Lock()
	t.state = cubesolver.Solved()
	t.history = nil
	t.mu.Unlock()

	return nil
}

// RequestBattery asks the cube for its battery level. The answer arrives as
// a notification.
func (t *Tracker) RequestBattery() error {
	return t.sendCommand(CmdRequestBattery)
}

// FlashBacklight flashes the cube backlight, useful for confirming which
// cube is connected.
func (t *Tracker) FlashBacklight() error {
	return t.sendCommand(CmdFlashBacklight)
}

func (t *Tracker) sendCommand(cmd byte) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.connected {
		return ErrNotConnected
	}

	_, err := t.rxChar.WriteWithoutResponse(BuildCommand(cmd))
	return err
}

// handleNotification decodes one notification and advances the tracked
// configuration. Other message types than rotations and battery levels are
// ignored.
func (t *Tracker) handleNotification(data []byte) {
	msg, err := ParseFrame(data)
	if err != nil {
		return
	}

	switch msg.Type {
	case MsgTypeBattery:
		if level, err := DecodeBattery(msg.Payload); err == nil {
			t.mu.Lock()
			t.battery = level
			t.mu.Unlock()
		}

	case MsgTypeRotation:
		turns, err := DecodeRotation(msg.Payload)
		if err != nil {
			return
		}
		for _, turn := range turns {
			t.applyTurn(turn)
		}
	}
}

func (t *Tracker) applyTurn(turn cubesolver.Turn) {
	m, err := cubesolver.Replay([]cubesolver.Turn{turn})
	if err != nil {
		return
	}

	t.mu.Lock()
	t.state = t.state.Transform(m)
	t.history = append(t.history, turn)
	state := t.state
	cb := t.onTurn
	t.mu.Unlock()

	if cb != nil {
		cb(turn, state)
	}
}
