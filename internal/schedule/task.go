package schedule

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	statePending int32 = iota
	stateFired
	stateCancelled
)

// Task is a function scheduled to run once after a delay
type Task struct {
	state atomic.Int32
	timer *time.Timer
}

// After schedules fn to run on its own goroutine after d
func After(d time.Duration, fn func()) *Task {
	t := &Task{}
	t.timer = time.AfterFunc(d, func() {
		if t.state.CompareAndSwap(statePending, stateFired) {
			fn()
		}
	})
	return t
}

// Cancel stops the task. It returns true if fn will not run because of this call.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	if t.state.CompareAndSwap(statePending, stateCancelled) {
		t.timer.Stop()
		return true
	}
	return false
}

// Pending returns true if the task has neither fired nor been cancelled
func (t *Task) Pending() bool {
	return t != nil && t.state.Load() == statePending
}

// Group tracks tasks so they can be cancelled together
type Group struct {
	mu    sync.Mutex
	tasks map[*Task]struct{}
}

// NewGroup creates an empty task group
func NewGroup() *Group {
	return &Group{tasks: make(map[*Task]struct{})}
}

// After schedules fn in the group. The task leaves the group once it has run.
func (g *Group) After(d time.Duration, fn func()) *Task {
	g.mu.Lock()
	defer g.mu.Unlock()

	// task is read only after g.mu is taken, i.e. after the assignment below
	var task *Task
	task = After(d, func() {
		g.mu.Lock()
		delete(g.tasks, task)
		g.mu.Unlock()
		fn()
	})
	g.tasks[task] = struct{}{}
	return task
}

// Len returns the number of pending tasks in the group
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tasks)
}

// CancelAll cancels every pending task and returns how many were stopped
func (g *Group) CancelAll() int {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = make(map[*Task]struct{})
	g.mu.Unlock()

	cancelled := 0
	for task := range tasks {
		if task.Cancel() {
			cancelled++
		}
	}
	return cancelled
}

// Slot holds at most one pending task; scheduling a new one cancels the old
type Slot struct {
	mu   sync.Mutex
	task *Task
}

// Replace cancels the pending task, if any, and schedules fn after d.
// It returns true if a pending task was superseded.
func (s *Slot) Replace(d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	superseded := s.task.Cancel()
	s.task = After(d, fn)
	return superseded
}

// Cancel cancels the pending task, if any
func (s *Slot) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.task.Cancel()
}
