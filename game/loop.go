package game

import (
	"time"
)

// LoopState is the run state of a Loop.
type LoopState int

const (
	Stopped LoopState = iota
	Running
)

func (s LoopState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Loop decides when the next tick fires. It never sleeps: the frame loop
// polls Due with the current time.
type Loop struct {
	state    LoopState
	interval time.Duration
	last     time.Time
}

// NewLoop returns a running loop whose first tick is due one interval
// after now.
func NewLoop(interval time.Duration, now time.Time) *Loop {
	return &Loop{
		state:    Running,
		interval: interval,
		last:     now,
	}
}

// Due reports whether a tick should fire at now, and if so records it.
func (l *Loop) Due(now time.Time) bool {
	if l.state != Running {
		return false
	}
	if now.Sub(l.last) < l.interval {
		return false
	}
	l.last = now
	return true
}

// SetInterval changes the interval used for the next firing.
func (l *Loop) SetInterval(d time.Duration) {
	l.interval = d
}

func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Start resumes a stopped loop; the next tick is due one interval after
// now. Starting a running loop changes nothing.
func (l *Loop) Start(now time.Time) {
	if l.state == Running {
		return
	}
	l.state = Running
	l.last = now
}

func (l *Loop) Stop() {
	l.state = Stopped
}

func (l *Loop) State() LoopState {
	return l.state
}
