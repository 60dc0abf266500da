package monitor

import (
	"fmt"

	"github.com/popeskul/tg-forwarder/internal/settings"
)

type ConnectivityKind string

const (
	ConnectivityWifi      ConnectivityKind = "wifi"
	ConnectivityBluetooth ConnectivityKind = "bluetooth"
	ConnectivityAirplane  ConnectivityKind = "airplane_mode"
)

// ConnectivityEvent is one edge of a radio state. Active means connected
// for wifi and bluetooth, and enabled for airplane mode.
type ConnectivityEvent struct {
	Kind   ConnectivityKind `json:"kind"`
	Active bool             `json:"active"`
}

func (e ConnectivityEvent) Validate() error {
	switch e.Kind {
	case ConnectivityWifi, ConnectivityBluetooth, ConnectivityAirplane:
		return nil
	}
	return fmt.Errorf("%w: connectivity kind %q", ErrInvalidEvent, e.Kind)
}

func connectivityAlert(e ConnectivityEvent, snap settings.Snapshot) (string, bool) {
	switch e.Kind {
	case ConnectivityWifi:
		if e.Active {
			return "📶 <b>WiFi Connected</b>", snap.NotifyWifiConnected
		}
		return "📶 <b>WiFi/Network Disconnected</b>", snap.NotifyWifiDisconnected
	case ConnectivityBluetooth:
		if e.Active {
			return "🎧 <b>Bluetooth Device Connected</b>", snap.NotifyBluetoothConnected
		}
		return "🎧 <b>Bluetooth Device Disconnected</b>", snap.NotifyBluetoothDisconnected
	case ConnectivityAirplane:
		if e.Active {
			return "✈️ <b>Airplane Mode Enabled</b>", snap.NotifyAirplaneOn
		}
		return "✈️ <b>Airplane Mode Disabled</b>", snap.NotifyAirplaneOff
	}
	return "", false
}

type SystemKind string

const (
	SystemBootCompleted SystemKind = "boot_completed"
	SystemAppUpdated    SystemKind = "app_updated"
)

type SystemEvent struct {
	Kind SystemKind `json:"kind"`
}

func (e SystemEvent) Validate() error {
	switch e.Kind {
	case SystemBootCompleted, SystemAppUpdated:
		return nil
	}
	return fmt.Errorf("%w: system event %q", ErrInvalidEvent, e.Kind)
}

func systemAlert(e SystemEvent, snap settings.Snapshot) (string, bool) {
	switch e.Kind {
	case SystemBootCompleted:
		return "🚀 <b>System Boot Completed</b>\nTelegram Forwarder is active.", snap.NotifyBootCompleted
	case SystemAppUpdated:
		return "✨ <b>App Updated</b>\nTelegram Forwarder was updated.", snap.NotifyAppUpdated
	}
	return "", false
}

type CallState string

const (
	CallIdle    CallState = "idle"
	CallRinging CallState = "ringing"
	CallOffhook CallState = "offhook"
)

type CallEvent struct {
	State  CallState `json:"state"`
	Number string    `json:"number"`
}

func (e CallEvent) Validate() error {
	switch e.State {
	case CallIdle, CallRinging, CallOffhook:
		return nil
	}
	return fmt.Errorf("%w: call state %q", ErrInvalidEvent, e.State)
}

// CallTracker classifies a ringing to idle transition as a missed call.
// Rejected calls look the same and are reported too.
type CallTracker struct {
	last         CallState
	lastIncoming string
}

func NewCallTracker() *CallTracker {
	return &CallTracker{last: CallIdle}
}

// Observe returns the caller's number when e completes a missed call.
func (t *CallTracker) Observe(e CallEvent) (string, bool) {
	var (
		number string
		missed bool
	)

	if t.last == CallRinging && e.State == CallIdle {
		number = e.Number
		if number == "" {
			number = t.lastIncoming
		}
		missed = number != ""
	}

	if e.State == CallRinging {
		t.lastIncoming = e.Number
	}
	t.last = e.State

	return number, missed
}
