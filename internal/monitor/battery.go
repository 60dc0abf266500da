package monitor

import (
	"fmt"
	"time"

	"github.com/popeskul/tg-forwarder/internal/settings"
)

type BatteryStatus string

const (
	BatteryCharging    BatteryStatus = "charging"
	BatteryFull        BatteryStatus = "full"
	BatteryDischarging BatteryStatus = "discharging"
	BatteryNotCharging BatteryStatus = "not_charging"
	BatteryUnknown     BatteryStatus = "unknown"
)

func (s BatteryStatus) valid() bool {
	switch s {
	case BatteryCharging, BatteryFull, BatteryDischarging, BatteryNotCharging, BatteryUnknown:
		return true
	}
	return false
}

// BatterySample is one battery reading as reported by the device.
type BatterySample struct {
	Level  int           `json:"level"`
	Scale  int           `json:"scale"`
	Status BatteryStatus `json:"status"`
}

func (s BatterySample) Validate() error {
	if s.Scale <= 0 || s.Level < 0 || s.Level > s.Scale {
		return fmt.Errorf("%w: level %d of scale %d", ErrInvalidEvent, s.Level, s.Scale)
	}
	if !s.Status.valid() {
		return fmt.Errorf("%w: battery status %q", ErrInvalidEvent, s.Status)
	}
	return nil
}

func (s BatterySample) percent() float64 {
	return float64(s.Level) / float64(s.Scale) * 100
}

func (s BatterySample) charging() bool {
	return s.Status == BatteryCharging || s.Status == BatteryFull
}

var (
	chargeSteps    = []int{90, 95, 100}
	dischargeSteps = []int{20, 15, 10, 5}
)

const fullReminderInterval = 10 * time.Minute

// BatteryTracker turns a stream of samples into alert texts. It is owned by
// a single goroutine.
type BatteryTracker struct {
	seen     bool
	charging bool

	notifiedLow  bool
	notifiedHigh bool

	lastReported int
	lastReportAt time.Time
}

func NewBatteryTracker() *BatteryTracker {
	return &BatteryTracker{lastReported: -1}
}

// Observe returns the alerts triggered by s. The first sample only records
// the charging state. Level tracking is frozen while credentials are missing
// so an excursion is still reported once they arrive.
func (t *BatteryTracker) Observe(s BatterySample, snap settings.Snapshot, now time.Time) []string {
	var alerts []string

	charging := s.charging()
	if t.seen && charging != t.charging {
		if charging && snap.NotifyPowerConnected {
			alerts = append(alerts, "🔌 <b>Power Connected</b>")
		}
		if !charging && snap.NotifyPowerDisconnected {
			alerts = append(alerts, "🔌 <b>Power Disconnected</b>")
		}
	}
	t.seen = true
	t.charging = charging

	if !snap.BatteryNotifyEnabled || !snap.Credentials.Valid() {
		return alerts
	}

	if snap.EnhancedBatteryAlerts {
		if text, ok := t.enhanced(s, now); ok {
			alerts = append(alerts, text)
		}
		return alerts
	}

	return append(alerts, t.simple(s.percent(), snap)...)
}

func (t *BatteryTracker) enhanced(s BatterySample, now time.Time) (string, bool) {
	level := int(s.percent())

	if s.charging() {
		step := -1
		for _, v := range chargeSteps {
			if v <= level && v > t.lastReported {
				step = v
			}
		}
		if step >= 0 {
			t.lastReported = step
			t.lastReportAt = now
			if level >= 95 {
				return fmt.Sprintf("🔋 <b>Battery Charged:</b> %d%%\nIt is recommended to unplug.", level), true
			}
			return fmt.Sprintf("🔋 <b>Battery Charged:</b> %d%%", level), true
		}
		if level >= 100 && now.Sub(t.lastReportAt) >= fullReminderInterval {
			t.lastReportAt = now
			return "🔋 <b>Battery Fully Charged:</b> 100%\nIt is recommended to unplug.", true
		}
		return "", false
	}

	step := -1
	for _, v := range dischargeSteps {
		if level <= v && (t.lastReported < 0 || v < t.lastReported) {
			step = v
		}
	}
	if step < 0 {
		return "", false
	}
	t.lastReported = step
	t.lastReportAt = now
	return fmt.Sprintf("⚠️ <b>Battery Low:</b> %d%%", level), true
}

func (t *BatteryTracker) simple(pct float64, snap settings.Snapshot) []string {
	var alerts []string

	if pct <= snap.BatteryLowThreshold {
		if !t.notifiedLow {
			alerts = append(alerts, fmt.Sprintf("⚠️ <b>Battery Low:</b> %d%%", int(pct)))
			t.notifiedLow = true
		}
	} else {
		t.notifiedLow = false
	}

	if pct >= snap.BatteryHighThreshold {
		if !t.notifiedHigh {
			alerts = append(alerts, fmt.Sprintf("🔋 <b>Battery Charged:</b> %d%%", int(pct)))
			t.notifiedHigh = true
		}
	} else {
		t.notifiedHigh = false
	}

	return alerts
}
