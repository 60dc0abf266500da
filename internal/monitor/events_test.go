package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallTracker(t *testing.T) {
	tests := []struct {
		name       string
		events     []CallEvent
		wantNumber string
		wantMissed bool
	}{
		{
			name:       "ringing then idle",
			events:     []CallEvent{{State: CallRinging, Number: "+1555"}, {State: CallIdle}},
			wantNumber: "+1555",
			wantMissed: true,
		},
		{
			name:       "idle event carries the number",
			events:     []CallEvent{{State: CallRinging}, {State: CallIdle, Number: "+1666"}},
			wantNumber: "+1666",
			wantMissed: true,
		},
		{
			name:   "answered",
			events: []CallEvent{{State: CallRinging, Number: "+1555"}, {State: CallOffhook}, {State: CallIdle}},
		},
		{
			name:   "unknown caller",
			events: []CallEvent{{State: CallRinging}, {State: CallIdle}},
		},
		{
			name:   "idle without ringing",
			events: []CallEvent{{State: CallIdle, Number: "+1555"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewCallTracker()
			var (
				number string
				missed bool
			)
			for _, e := range tt.events {
				number, missed = tracker.Observe(e)
			}
			assert.Equal(t, tt.wantMissed, missed)
			assert.Equal(t, tt.wantNumber, number)
		})
	}
}
