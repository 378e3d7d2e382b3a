package loop

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Time only moves when
// Advance is called, and due callbacks run on the caller's goroutine in
// deadline order. It is used by tests and by hosts that own their own frame
// loop.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	m        *Manual
	at       time.Duration
	seq      uint64
	fn       func()
	finished bool
}

func (t *manualTask) Cancel() bool {
	if t.finished {
		return false
	}
	t.finished = true
	t.m.remove(t)
	return true
}

func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of scheduled, not yet run tasks.
func (m *Manual) Pending() int { return len(m.tasks) }

func (m *Manual) Schedule(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at != m.tasks[j].at {
			return m.tasks[i].at < m.tasks[j].at
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	return t
}

// Advance moves the clock forward by d, running every task that falls due,
// including tasks scheduled by those callbacks. It returns how many ran.
func (m *Manual) Advance(d time.Duration) int {
	end := m.now + d
	ran := 0
	for len(m.tasks) > 0 && m.tasks[0].at <= end {
		t := m.tasks[0]
		m.tasks = m.tasks[1:]
		m.now = t.at
		t.finished = true
		t.fn()
		ran++
	}
	m.now = end
	return ran
}

func (m *Manual) remove(t *manualTask) {
	for i, x := range m.tasks {
		if x == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}
