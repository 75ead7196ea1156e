// Package scheduler runs periodic game tasks on simulated time.
//
// The scheduler never starts goroutines: the owner advances it from its own
// frame loop, so every task runs to completion before the next one starts.
package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// MaxCatchUp caps how many times one task fires in a single Advance.
// Periods beyond the cap are dropped, so a long stall does not replay.
const MaxCatchUp = 8

var ErrInvalidPeriod = errors.New("scheduler: period must be positive")

// Task — периодическая задача.
type Task struct {
	name      string
	period    time.Duration
	elapsed   time.Duration
	fn        func()
	immediate bool
	cancelled bool
	runs      int
}

// Option настраивает задачу при регистрации.
type Option func(*Task)

// Immediate запускает задачу при первом Advance, не дожидаясь периода.
func Immediate() Option {
	return func(t *Task) { t.immediate = true }
}

func (t *Task) Name() string          { return t.name }
func (t *Task) Period() time.Duration { return t.period }
func (t *Task) Runs() int             { return t.runs }
func (t *Task) Cancelled() bool       { return t.cancelled }

// SinceFire — сколько времени прошло с момента, на который пришлось последнее
// срабатывание. Срабатывание по Immediate относится к началу Advance.
func (t *Task) SinceFire() time.Duration { return t.elapsed }

// Cancel останавливает задачу; уже начатый вызов fn завершится.
func (t *Task) Cancel() {
	t.cancelled = true
}

// Scheduler — набор отменяемых периодических задач.
type Scheduler struct {
	tasks   []*Task
	elapsed time.Duration
	stopped bool
}

func New() *Scheduler {
	return &Scheduler{}
}

// Every регистрирует задачу fn с периодом period.
func (s *Scheduler) Every(name string, period time.Duration, fn func(), opts ...Option) (*Task, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: task %q got %s", ErrInvalidPeriod, name, period)
	}
	t := &Task{name: name, period: period, fn: fn}
	for _, opt := range opts {
		opt(t)
	}
	if s.stopped {
		t.cancelled = true
		return t, nil
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Advance продвигает время на dt и вызывает все задачи, чей период истёк,
// в порядке регистрации.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.stopped {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt

	for _, t := range s.tasks {
		if s.stopped {
			break
		}
		if t.cancelled {
			continue
		}
		if t.immediate {
			t.immediate = false
			t.fire()
		}

		t.elapsed += dt
		due := int(t.elapsed / t.period)
		t.elapsed %= t.period
		if due > MaxCatchUp {
			due = MaxCatchUp
		}
		for i := 0; i < due && !t.cancelled && !s.stopped; i++ {
			t.fire()
		}
	}
	s.prune()
}

func (t *Task) fire() {
	t.runs++
	t.fn()
}

// Stop отменяет все задачи; дальнейшие Advance ничего не делают.
func (s *Scheduler) Stop() {
	s.stopped = true
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
}

func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Elapsed — суммарное время, прошедшее через Advance.
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}

// Len — число активных задач.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) prune() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
