package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestScheduler() (*Scheduler, *fakeClock) {
	clk := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return New(clk.now), clk
}

func TestRunsInDueOrder(t *testing.T) {
	s, clk := newTestScheduler()
	var got []string
	s.After(2*time.Second, "b", func() { got = append(got, "b") })
	s.After(time.Second, "a", func() { got = append(got, "a") })
	s.After(2*time.Second, "c", func() { got = append(got, "c") })

	assert.Zero(t, s.Run())
	clk.advance(time.Second)
	assert.Equal(t, 1, s.Run())
	clk.advance(5 * time.Second)
	assert.Equal(t, 2, s.Run())
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, s.Pending())
}

func TestCancel(t *testing.T) {
	s, clk := newTestScheduler()
	ran := false
	task := s.After(time.Second, "redirect", func() { ran = true })
	assert.True(t, task.Pending())
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())
	assert.False(t, task.Pending())

	clk.advance(time.Minute)
	assert.Zero(t, s.Run())
	assert.False(t, ran)

	var nilTask *Task
	assert.False(t, nilTask.Cancel())
}

func TestCancelAfterRunIsNoop(t *testing.T) {
	s, _ := newTestScheduler()
	task := s.After(0, "mount", func() {})
	assert.Equal(t, 1, s.Run())
	assert.False(t, task.Cancel())
}

func TestZeroDelayWaitsForNextRun(t *testing.T) {
	s, _ := newTestScheduler()
	var got []int
	s.After(0, "outer", func() {
		got = append(got, 1)
		s.After(0, "inner", func() { got = append(got, 2) })
	})
	assert.Equal(t, 1, s.Run())
	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 1, s.Run())
	assert.Equal(t, []int{1, 2}, got)
}

func TestCallbackCancelsSibling(t *testing.T) {
	s, _ := newTestScheduler()
	ran := false
	var second *Task
	s.After(0, "first", func() { second.Cancel() })
	second = s.After(0, "second", func() { ran = true })
	assert.Equal(t, 1, s.Run())
	assert.False(t, ran)
}
