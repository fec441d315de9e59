package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	shortDelay = 10 * time.Millisecond
	longDelay  = time.Hour
	waitFor    = time.Second
	tick       = 5 * time.Millisecond
)

func TestAfter_Runs(t *testing.T) {
	var ran atomic.Bool
	task := After(shortDelay, func() { ran.Store(true) })

	assert.Eventually(t, ran.Load, waitFor, tick)
	assert.False(t, task.Pending())
	assert.False(t, task.Cancel(), "cancel after firing should report false")
}

func TestAfter_CancelPreventsRun(t *testing.T) {
	var ran atomic.Bool
	task := After(shortDelay, func() { ran.Store(true) })

	assert.True(t, task.Pending())
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel(), "second cancel should report false")

	time.Sleep(5 * shortDelay)
	assert.False(t, ran.Load())
}

func TestTask_NilCancel(t *testing.T) {
	var task *Task
	assert.False(t, task.Cancel())
	assert.False(t, task.Pending())
}

func TestGroup_CancelAll(t *testing.T) {
	g := NewGroup()
	var ran atomic.Int32

	for i := 0; i < 3; i++ {
		g.After(longDelay, func() { ran.Add(1) })
	}
	assert.Equal(t, 3, g.Len())

	assert.Equal(t, 3, g.CancelAll())
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, int32(0), ran.Load())
}

func TestGroup_TaskLeavesAfterRunning(t *testing.T) {
	g := NewGroup()
	var ran atomic.Bool

	g.After(shortDelay, func() { ran.Store(true) })

	assert.Eventually(t, ran.Load, waitFor, tick)
	assert.Eventually(t, func() bool { return g.Len() == 0 }, waitFor, tick)
	assert.Equal(t, 0, g.CancelAll())
}

func TestSlot_ReplaceSupersedes(t *testing.T) {
	var slot Slot
	var first, second atomic.Bool

	assert.False(t, slot.Replace(longDelay, func() { first.Store(true) }))
	assert.True(t, slot.Replace(shortDelay, func() { second.Store(true) }))

	assert.Eventually(t, second.Load, waitFor, tick)
	assert.False(t, first.Load())
	assert.False(t, slot.Cancel(), "fired task cannot be cancelled")
}
