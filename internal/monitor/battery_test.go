package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/popeskul/tg-forwarder/internal/settings"
)

var testCredentials = settings.Credentials{BotToken: "token", ChatID: 42}

func simpleSnapshot() settings.Snapshot {
	s := settings.Defaults()
	s.Credentials = testCredentials
	s.BatteryNotifyEnabled = true
	s.EnhancedBatteryAlerts = false
	return s
}

func enhancedSnapshot() settings.Snapshot {
	s := settings.Defaults()
	s.Credentials = testCredentials
	s.BatteryNotifyEnabled = true
	s.EnhancedBatteryAlerts = true
	return s
}

func sample(level int, status BatteryStatus) BatterySample {
	return BatterySample{Level: level, Scale: 100, Status: status}
}

func TestBatteryTracker_SimpleLowExcursions(t *testing.T) {
	tracker := NewBatteryTracker()
	snap := simpleSnapshot()
	now := time.Now()

	var alerts []string
	for _, level := range []int{50, 30, 20, 15, 10, 25, 20} {
		alerts = append(alerts, tracker.Observe(sample(level, BatteryDischarging), snap, now)...)
	}

	assert.Equal(t, []string{
		"⚠️ <b>Battery Low:</b> 20%",
		"⚠️ <b>Battery Low:</b> 20%",
	}, alerts)
}

func TestBatteryTracker_SimpleHigh(t *testing.T) {
	tracker := NewBatteryTracker()
	snap := simpleSnapshot()
	now := time.Now()

	assert.Empty(t, tracker.Observe(sample(80, BatteryCharging), snap, now))
	assert.Equal(t, []string{"🔋 <b>Battery Charged:</b> 90%"}, tracker.Observe(sample(90, BatteryCharging), snap, now))
	assert.Empty(t, tracker.Observe(sample(99, BatteryCharging), snap, now))
	assert.Empty(t, tracker.Observe(sample(85, BatteryCharging), snap, now))
	assert.Len(t, tracker.Observe(sample(91, BatteryCharging), snap, now), 1)
}

func TestBatteryTracker_SimpleUsesScale(t *testing.T) {
	tracker := NewBatteryTracker()
	snap := simpleSnapshot()

	alerts := tracker.Observe(BatterySample{Level: 40, Scale: 200, Status: BatteryDischarging}, snap, time.Now())
	assert.Equal(t, []string{"⚠️ <b>Battery Low:</b> 20%"}, alerts)
}

func TestBatteryTracker_EnhancedCharging(t *testing.T) {
	tracker := NewBatteryTracker()
	snap := enhancedSnapshot()
	now := time.Now()

	var alerts []string
	for _, level := range []int{88, 90, 93, 95} {
		alerts = append(alerts, tracker.Observe(sample(level, BatteryCharging), snap, now)...)
	}

	assert.Equal(t, []string{
		"🔋 <b>Battery Charged:</b> 90%",
		"🔋 <b>Battery Charged:</b> 95%\nIt is recommended to unplug.",
	}, alerts)
}

func TestBatteryTracker_EnhancedFullReminder(t *testing.T) {
	tracker := NewBatteryTracker()
	snap := enhancedSnapshot()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tracker.Observe(sample(99, BatteryCharging), snap, start)
	assert.Equal(t,
		[]string{"🔋 <b>Battery Charged:</b> 100%\nIt is recommended to unplug."},
		tracker.Observe(sample(100, BatteryFull), snap, start))

	assert.Empty(t, tracker.Observe(sample(100, BatteryFull), snap, start.Add(9*time.Minute)))
	assert.Equal(t,
		[]string{"🔋 <b>Battery Fully Charged:</b> 100%\nIt is recommended to unplug."},
		tracker.Observe(sample(100, BatteryFull), snap, start.Add(10*time.Minute)))
	assert.Empty(t, tracker.Observe(sample(100, BatteryFull), snap, start.Add(15*time.Minute)))
}

func TestBatteryTracker_EnhancedDischarging(t *testing.T) {
	tracker := NewBatteryTracker()
	snap := enhancedSnapshot()
	now := time.Now()

	var alerts []string
	for _, level := range []int{40, 21, 20, 19, 16, 15, 12, 9, 5, 4} {
		alerts = append(alerts, tracker.Observe(sample(level, BatteryDischarging), snap, now)...)
	}

	assert.Equal(t, []string{
		"⚠️ <b>Battery Low:</b> 20%",
		"⚠️ <b>Battery Low:</b> 15%",
		"⚠️ <b>Battery Low:</b> 9%",
		"⚠️ <b>Battery Low:</b> 5%",
	}, alerts)
}

func TestBatteryTracker_PowerEdges(t *testing.T) {
	snap := settings.Defaults()
	snap.NotifyPowerConnected = true
	snap.NotifyPowerDisconnected = true
	tracker := NewBatteryTracker()
	now := time.Now()

	assert.Empty(t, tracker.Observe(sample(50, BatteryDischarging), snap, now), "first sample is a baseline")
	assert.Equal(t, []string{"🔌 <b>Power Connected</b>"}, tracker.Observe(sample(50, BatteryCharging), snap, now))
	assert.Empty(t, tracker.Observe(sample(51, BatteryFull), snap, now))
	assert.Equal(t, []string{"🔌 <b>Power Disconnected</b>"}, tracker.Observe(sample(51, BatteryNotCharging), snap, now))

	snap.NotifyPowerConnected = false
	assert.Empty(t, tracker.Observe(sample(51, BatteryCharging), snap, now))
}

func TestBatteryTracker_LevelAlertsDisabled(t *testing.T) {
	snap := simpleSnapshot()
	snap.BatteryNotifyEnabled = false
	tracker := NewBatteryTracker()

	assert.Empty(t, tracker.Observe(sample(5, BatteryDischarging), snap, time.Now()))
}

func TestBatteryTracker_WaitsForCredentials(t *testing.T) {
	tests := []struct {
		name  string
		snap  func() settings.Snapshot
		first []int
		then  int
		want  string
	}{
		{
			name:  "simple low",
			snap:  simpleSnapshot,
			first: []int{50, 15, 10},
			then:  10,
			want:  "⚠️ <b>Battery Low:</b> 10%",
		},
		{
			name:  "enhanced low",
			snap:  enhancedSnapshot,
			first: []int{50, 20, 15},
			then:  15,
			want:  "⚠️ <b>Battery Low:</b> 15%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewBatteryTracker()
			now := time.Now()

			missing := tt.snap()
			missing.Credentials = settings.Credentials{}
			for _, level := range tt.first {
				assert.Empty(t, tracker.Observe(sample(level, BatteryDischarging), missing, now))
			}

			assert.Equal(t, []string{tt.want}, tracker.Observe(sample(tt.then, BatteryDischarging), tt.snap(), now))
		})
	}
}

func TestBatterySample_Validate(t *testing.T) {
	assert.NoError(t, sample(50, BatteryCharging).Validate())
	assert.ErrorIs(t, BatterySample{Level: 5, Scale: 0, Status: BatteryCharging}.Validate(), ErrInvalidEvent)
	assert.ErrorIs(t, BatterySample{Level: 150, Scale: 100, Status: BatteryCharging}.Validate(), ErrInvalidEvent)
	assert.ErrorIs(t, BatterySample{Level: 50, Scale: 100, Status: "plugged"}.Validate(), ErrInvalidEvent)
}
