package service

import (
	"sync/atomic"
	"time"
)

// State is the shared health snapshot: readiness, websocket liveness and the
// outcome of the most recent run.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	wsConnected atomic.Bool

	lastRunUnix atomic.Int64 // unix seconds
	lastOutcome atomic.Value // string
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	s.lastOutcome.Store("")
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

func (s *State) SetWSConnected(v bool) { s.wsConnected.Store(v) }
func (s *State) WSConnected() bool     { return s.wsConnected.Load() }

func (s *State) SetLastRun(t time.Time, outcome string) {
	s.lastRunUnix.Store(t.Unix())
	s.lastOutcome.Store(outcome)
}

func (s *State) LastRun() time.Time {
	u := s.lastRunUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) LastOutcome() string {
	v, _ := s.lastOutcome.Load().(string)
	return v
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
