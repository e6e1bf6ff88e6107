package ui

import (
	"time"

	"github.com/lixenwraith/upside-gate/constants"
	"github.com/lixenwraith/upside-gate/lights"
)

// Scheduler delays callbacks and hands them back to the event loop, so every
// state change happens on the loop goroutine
type Scheduler struct {
	callbacks chan func()
	done      chan struct{}
}

// NewScheduler creates a scheduler; its callbacks run once App.Run drains them
func NewScheduler() *Scheduler {
	return &Scheduler{
		callbacks: make(chan func(), constants.EventQueueSize),
		done:      make(chan struct{}),
	}
}

// AfterFunc queues f on the event loop after d
func (s *Scheduler) AfterFunc(d time.Duration, f func()) lights.Timer {
	return time.AfterFunc(d, func() {
		select {
		case s.callbacks <- f:
		case <-s.done:
		}
	})
}

// C delivers due callbacks
func (s *Scheduler) C() <-chan func() { return s.callbacks }

// Close drops callbacks that fire after the loop has exited
func (s *Scheduler) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}
