// Package settings holds the runtime configuration surface: credentials,
// feature switches and battery thresholds. Values live in a Redis hash and
// are published to readers as an immutable Snapshot.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

const (
	KeyBotToken                    = "telegram_bot_token"
	KeyChatID                      = "telegram_chat_id"
	KeySMSEnabled                  = "is_sms_enabled"
	KeyMissedCallEnabled           = "is_missed_call_enabled"
	KeyBatteryNotifyEnabled        = "is_battery_notify_enabled"
	KeyEnhancedBatteryAlerts       = "is_enhanced_battery_alerts_enabled"
	KeyBatteryLowThreshold         = "battery_low_threshold"
	KeyBatteryHighThreshold        = "battery_high_threshold"
	KeyPollingEnabled              = "is_bot_polling_enabled"
	KeyNotifyBootCompleted         = "is_notify_boot_completed"
	KeyNotifyAppUpdated            = "is_notify_app_updated"
	KeyNotifyPowerConnected        = "is_notify_power_connected"
	KeyNotifyPowerDisconnected     = "is_notify_power_disconnected"
	KeyNotifyAirplaneOn            = "is_notify_airplane_mode_on"
	KeyNotifyAirplaneOff           = "is_notify_airplane_mode_off"
	KeyNotifyWifiConnected         = "is_notify_wifi_connected"
	KeyNotifyWifiDisconnected      = "is_notify_wifi_disconnected"
	KeyNotifyBluetoothConnected    = "is_notify_bluetooth_connected"
	KeyNotifyBluetoothDisconnected = "is_notify_bluetooth_disconnected"
)

var (
	ErrUnknownKey   = errors.New("unknown settings key")
	ErrInvalidValue = errors.New("invalid settings value")
)

// Credentials identify the bot and the single chat it talks to.
type Credentials struct {
	BotToken string
	ChatID   int64
}

// Valid reports whether outbound sends are allowed.
func (c Credentials) Valid() bool {
	return c.BotToken != "" && c.ChatID != 0
}

type Snapshot struct {
	Credentials Credentials

	SMSEnabled            bool
	MissedCallEnabled     bool
	BatteryNotifyEnabled  bool
	EnhancedBatteryAlerts bool
	BatteryLowThreshold   float64
	BatteryHighThreshold  float64
	PollingEnabled        bool

	NotifyBootCompleted         bool
	NotifyAppUpdated            bool
	NotifyPowerConnected        bool
	NotifyPowerDisconnected     bool
	NotifyAirplaneOn            bool
	NotifyAirplaneOff           bool
	NotifyWifiConnected         bool
	NotifyWifiDisconnected      bool
	NotifyBluetoothConnected    bool
	NotifyBluetoothDisconnected bool
}

// Defaults matches a fresh install.
func Defaults() Snapshot {
	return Snapshot{
		SMSEnabled:            true,
		EnhancedBatteryAlerts: true,
		BatteryLowThreshold:   20,
		BatteryHighThreshold:  90,
		NotifyBootCompleted:   true,
		NotifyAppUpdated:      true,
	}
}

type boolField struct {
	key string
	get func(*Snapshot) *bool
}

var boolFields = []boolField{
	{KeySMSEnabled, func(s *Snapshot) *bool { return &s.SMSEnabled }},
	{KeyMissedCallEnabled, func(s *Snapshot) *bool { return &s.MissedCallEnabled }},
	{KeyBatteryNotifyEnabled, func(s *Snapshot) *bool { return &s.BatteryNotifyEnabled }},
	{KeyEnhancedBatteryAlerts, func(s *Snapshot) *bool { return &s.EnhancedBatteryAlerts }},
	{KeyPollingEnabled, func(s *Snapshot) *bool { return &s.PollingEnabled }},
	{KeyNotifyBootCompleted, func(s *Snapshot) *bool { return &s.NotifyBootCompleted }},
	{KeyNotifyAppUpdated, func(s *Snapshot) *bool { return &s.NotifyAppUpdated }},
	{KeyNotifyPowerConnected, func(s *Snapshot) *bool { return &s.NotifyPowerConnected }},
	{KeyNotifyPowerDisconnected, func(s *Snapshot) *bool { return &s.NotifyPowerDisconnected }},
	{KeyNotifyAirplaneOn, func(s *Snapshot) *bool { return &s.NotifyAirplaneOn }},
	{KeyNotifyAirplaneOff, func(s *Snapshot) *bool { return &s.NotifyAirplaneOff }},
	{KeyNotifyWifiConnected, func(s *Snapshot) *bool { return &s.NotifyWifiConnected }},
	{KeyNotifyWifiDisconnected, func(s *Snapshot) *bool { return &s.NotifyWifiDisconnected }},
	{KeyNotifyBluetoothConnected, func(s *Snapshot) *bool { return &s.NotifyBluetoothConnected }},
	{KeyNotifyBluetoothDisconnected, func(s *Snapshot) *bool { return &s.NotifyBluetoothDisconnected }},
}

// Parse builds a Snapshot from stored string values on top of Defaults.
// Malformed values keep their default and are reported in the returned error.
func Parse(values map[string]string) (Snapshot, error) {
	s := Defaults()
	var errs []error

	if token, ok := values[KeyBotToken]; ok {
		s.Credentials.BotToken = strings.TrimSpace(token)
	}
	if raw, ok := values[KeyChatID]; ok && strings.TrimSpace(raw) != "" {
		id, err := parseChatID(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.Credentials.ChatID = id
		}
	}

	for _, f := range boolFields {
		raw, ok := values[f.key]
		if !ok {
			continue
		}
		v, err := cast.ToBoolE(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, f.key, raw))
			continue
		}
		*f.get(&s) = v
	}

	if raw, ok := values[KeyBatteryLowThreshold]; ok {
		v, err := parseThreshold(KeyBatteryLowThreshold, raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.BatteryLowThreshold = v
		}
	}
	if raw, ok := values[KeyBatteryHighThreshold]; ok {
		v, err := parseThreshold(KeyBatteryHighThreshold, raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.BatteryHighThreshold = v
		}
	}

	return s, errors.Join(errs...)
}

// Normalize validates a patch and returns canonical string values for storage.
func Normalize(patch map[string]interface{}) (map[string]string, error) {
	out := make(map[string]string, len(patch))

	for key, raw := range patch {
		switch {
		case key == KeyBotToken:
			v, err := cast.ToStringE(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidValue, key)
			}
			out[key] = strings.TrimSpace(v)
		case key == KeyChatID:
			v, err := cast.ToStringE(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidValue, key)
			}
			v = strings.TrimSpace(v)
			if v != "" {
				if _, err := parseChatID(v); err != nil {
					return nil, err
				}
			}
			out[key] = v
		case key == KeyBatteryLowThreshold || key == KeyBatteryHighThreshold:
			v, err := cast.ToFloat64E(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidValue, key)
			}
			out[key] = strconv.FormatFloat(clamp(v), 'f', -1, 64)
		case isBoolKey(key):
			v, err := cast.ToBoolE(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidValue, key)
			}
			out[key] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}

	return out, nil
}

// Values renders a Snapshot back to its stored form.
func (s Snapshot) Values() map[string]string {
	out := map[string]string{
		KeyBotToken:             s.Credentials.BotToken,
		KeyChatID:               "",
		KeyBatteryLowThreshold:  strconv.FormatFloat(s.BatteryLowThreshold, 'f', -1, 64),
		KeyBatteryHighThreshold: strconv.FormatFloat(s.BatteryHighThreshold, 'f', -1, 64),
	}
	if s.Credentials.ChatID != 0 {
		out[KeyChatID] = strconv.FormatInt(s.Credentials.ChatID, 10)
	}
	for _, f := range boolFields {
		out[f.key] = strconv.FormatBool(*f.get(&s))
	}
	return out
}

func isBoolKey(key string) bool {
	for _, f := range boolFields {
		if f.key == key {
			return true
		}
	}
	return false
}

func parseChatID(raw string) (int64, error) {
	id, err := cast.ToInt64E(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeyChatID, raw)
	}
	return id, nil
}

func parseThreshold(key, raw string) (float64, error) {
	v, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
	}
	return clamp(v), nil
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
