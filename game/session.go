package game

import (
	"sync"
	"time"

	"snakebox/game/types"
)

// EventKind identifies one of the three things that can change a game.
type EventKind int

const (
	EventTick EventKind = iota
	EventSteer
	EventRestart
)

// Event is the single input type of a Session.
type Event struct {
	Kind      EventKind
	Direction types.Direction // EventSteer only
}

func TickEvent() Event { return Event{Kind: EventTick} }
func SteerEvent(dir types.Direction) Event { return Event{Kind: EventSteer, Direction: dir} }
func RestartEvent() Event { return Event{Kind: EventRestart} }

// Option configures a Session.
type Option func(*Session)

// WithLogger routes game events to logf.
func WithLogger(logf Logf) Option {
	return func(s *Session) {
		s.logf = logf
	}
}

// Session pairs a Game with the Loop that drives it. Every change goes
// through Dispatch or Advance, which hold mu for the whole operation, so
// readers never see a half-applied tick.
type Session struct {
	mu   sync.RWMutex
	game *Game
	loop *Loop
	logf Logf
}

// NewSession validates cfg and starts a running session at now.
func NewSession(cfg types.Config, now time.Time, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{logf: discard}
	for _, opt := range opts {
		opt(s)
	}
	s.game = NewGame(cfg, s.logf)
	s.loop = NewLoop(s.game.Delay(), now)
	return s, nil
}

// Dispatch applies ev. Restarting resumes a stopped loop.
func (s *Session) Dispatch(ev Event, now time.Time) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case EventTick:
		return s.tick()
	case EventSteer:
		s.game.Steer(ev.Direction)
	case EventRestart:
		s.game.Reset()
		s.loop.SetInterval(s.game.Delay())
		s.loop.Start(now)
	}
	return Outcome{}
}

// Advance fires a tick if one is due at now. It reports whether a tick
// fired.
func (s *Session) Advance(now time.Time) (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loop.Due(now) {
		return Outcome{}, false
	}
	return s.tick(), true
}

func (s *Session) tick() Outcome {
	out := s.game.Tick()
	if !s.game.Alive() {
		s.loop.Stop()
	}
	s.loop.SetInterval(s.game.Delay())
	return out
}

// Snapshot returns a copy of the current state for drawing.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Snapshot()
}

func (s *Session) LoopState() LoopState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loop.State()
}

func (s *Session) Interval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loop.Interval()
}
