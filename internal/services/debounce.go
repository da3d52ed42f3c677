package services

import (
	"sync"
	"time"
)

// SearchScheduler debounces automatic re-search while a user is typing.
// Each Schedule call cancels the previously pending one, so the task runs
// only after a full quiet period. Stop cancels outright and is meant for
// session teardown.
type SearchScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	stopped bool
}

func NewSearchScheduler(delay time.Duration) *SearchScheduler {
	return &SearchScheduler{delay: delay}
}

// Schedule queues fn to run after the quiet period, replacing any pending
// task. fn runs on the timer goroutine.
func (s *SearchScheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, fn)
}

// Cancel drops the pending task, if any. Further Schedule calls still work.
func (s *SearchScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Stop cancels the pending task and rejects all future scheduling.
func (s *SearchScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.stopped = true
}
