package poller

import "time"

// Backoff is a doubling delay clamped to [floor, ceiling].
type Backoff struct {
	floor   time.Duration
	ceiling time.Duration
	current time.Duration
}

func NewBackoff(floor, ceiling time.Duration) *Backoff {
	if floor <= 0 {
		floor = time.Second
	}
	if ceiling < floor {
		ceiling = floor
	}
	return &Backoff{floor: floor, ceiling: ceiling, current: floor}
}

// Next returns the delay to wait now and doubles the one after it.
func (b *Backoff) Next() time.Duration {
	d := b.current
	b.current *= 2
	if b.current > b.ceiling {
		b.current = b.ceiling
	}
	return d
}

func (b *Backoff) Reset() {
	b.current = b.floor
}

func (b *Backoff) Current() time.Duration {
	return b.current
}
