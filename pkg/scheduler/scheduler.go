package scheduler

import (
	"sync"
	"time"
)

// Scheduler runs delayed callbacks that can be cancelled individually or
// all at once on shutdown, so a torn-down session never receives a stale
// callback.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Handle
	Shutdown()
}

type Handle interface {
	// Cancel stops the pending callback. Returns false if it already fired
	// or was cancelled before.
	Cancel() bool
}

type timerScheduler struct {
	mu      sync.Mutex
	tasks   map[int64]*task
	nextID  int64
	stopped bool
}

type task struct {
	s     *timerScheduler
	id    int64
	timer *time.Timer
	once  sync.Once
	done  bool
}

func New() Scheduler {
	return &timerScheduler{tasks: make(map[int64]*task)}
}

func (s *timerScheduler) Schedule(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := &task{s: s, id: s.nextID}

	if s.stopped {
		t.done = true
		return t
	}

	t.timer = time.AfterFunc(d, func() {
		t.once.Do(func() {
			s.forget(t.id)
			fn()
		})
	})
	s.tasks[t.id] = t
	return t
}

func (s *timerScheduler) Shutdown() {
	s.mu.Lock()
	s.stopped = true
	tasks := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	s.tasks = make(map[int64]*task)
	s.mu.Unlock()

	for _, t := range tasks {
		t.stop()
	}
}

func (s *timerScheduler) forget(id int64) {
	s.mu.Lock()
	delete(s.tasks, id)
	s.mu.Unlock()
}

func (t *task) Cancel() bool {
	t.s.forget(t.id)
	return t.stop()
}

func (t *task) stop() bool {
	if t.done || t.timer == nil {
		return false
	}
	cancelled := false
	t.once.Do(func() {
		t.timer.Stop()
		cancelled = true
	})
	t.done = true
	return cancelled
}
