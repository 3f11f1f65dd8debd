// Package schedule runs one-shot deferred callbacks on the frame loop. Every scheduled task
// returns a handle that can cancel it, so a view that is torn down can drop the work it
// queued.
package schedule

import (
	"slices"
	"time"
)

// Task is a handle to a scheduled callback.
type Task struct {
	name      string
	due       time.Time
	seq       uint64
	fn        func()
	cancelled bool
	done      bool
}

// Name returns the label given at scheduling time (used in logs).
func (t *Task) Name() string {
	return t.name
}

// Cancel prevents the callback from running. It reports whether the task was still pending.
// Cancelling a nil, finished, or already cancelled task is a no-op.
func (t *Task) Cancel() bool {
	if t == nil || t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the task will still run.
func (t *Task) Pending() bool {
	return t != nil && !t.done && !t.cancelled
}

// Scheduler keeps tasks ordered by due time. Run is called once per frame from the main loop;
// callbacks therefore run on the same goroutine as every other state mutation.
type Scheduler struct {
	now   func() time.Time
	tasks []*Task
	seq   uint64
}

// New returns a scheduler reading time from now. A nil now uses time.Now.
func New(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// After schedules fn to run on the first Run at or after now+d. A zero delay defers fn to
// the next Run, never the current one.
func (s *Scheduler) After(d time.Duration, name string, fn func()) *Task {
	s.seq++
	t := &Task{name: name, due: s.now().Add(d), seq: s.seq, fn: fn}
	i, _ := slices.BinarySearchFunc(s.tasks, t, compareTasks)
	s.tasks = slices.Insert(s.tasks, i, t)
	return t
}

func compareTasks(a, b *Task) int {
	if c := a.due.Compare(b.due); c != 0 {
		return c
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

// Run executes every task due by now, in due order (ties in scheduling order), and returns
// how many ran. Tasks scheduled by a callback wait for the next Run.
func (s *Scheduler) Run() int {
	now := s.now()
	k := 0
	for k < len(s.tasks) && !s.tasks[k].due.After(now) {
		k++
	}
	if k == 0 {
		return 0
	}
	due := slices.Clone(s.tasks[:k])
	s.tasks = slices.Delete(s.tasks, 0, k)
	n := 0
	for _, t := range due {
		// an earlier callback in this batch may have cancelled t
		if t.cancelled {
			continue
		}
		t.done = true
		t.fn()
		n++
	}
	s.compact()
	return n
}

// compact drops finished and cancelled tasks.
func (s *Scheduler) compact() {
	s.tasks = slices.DeleteFunc(s.tasks, func(t *Task) bool { return t.done || t.cancelled })
}

// Pending returns the number of tasks that will still run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
