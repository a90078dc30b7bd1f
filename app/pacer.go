package app

import "time"

// Pacer schedules frames on a fixed grid of ticks start + k*interval. A late
// frame moves to the first tick still ahead instead of drifting or bursting.
type Pacer struct {
	start    time.Time
	interval time.Duration
	tick     int64
}

func NewPacer(start time.Time, interval time.Duration) *Pacer {
	return &Pacer{start: start, interval: interval}
}

// Next returns the first tick strictly after now. It never moves backwards.
func (p *Pacer) Next(now time.Time) time.Time {
	if elapsed := now.Sub(p.start); elapsed >= 0 {
		if k := int64(elapsed/p.interval) + 1; k > p.tick {
			p.tick = k
		}
	} else if p.tick == 0 {
		p.tick = 1
	}
	return p.start.Add(time.Duration(p.tick) * p.interval)
}

func (p *Pacer) Interval() time.Duration { return p.interval }
