package loop

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	m := NewManual()
	var got []string
	m.Schedule(30*time.Millisecond, func() { got = append(got, "c") })
	m.Schedule(10*time.Millisecond, func() { got = append(got, "a") })
	m.Schedule(10*time.Millisecond, func() { got = append(got, "b") })

	if n := m.Advance(5 * time.Millisecond); n != 0 {
		t.Fatalf("ran %d tasks before any was due", n)
	}
	if n := m.Advance(5 * time.Millisecond); n != 2 {
		t.Fatalf("ran %d tasks at 10ms, want 2", n)
	}
	if m.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", m.Pending())
	}
	m.Advance(time.Second)
	if want := "abc"; len(got) != 3 || got[0]+got[1]+got[2] != want {
		t.Errorf("order = %v, want %s", got, want)
	}
	if m.Now() != 1010*time.Millisecond {
		t.Errorf("now = %v", m.Now())
	}
}

func TestManualRescheduleFromCallback(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			m.Schedule(10*time.Millisecond, tick)
		}
	}
	m.Schedule(10*time.Millisecond, tick)
	m.Advance(100 * time.Millisecond)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false
	task := m.Schedule(10*time.Millisecond, func() { ran = true })
	if !task.Cancel() {
		t.Fatal("Cancel of pending task returned false")
	}
	if task.Cancel() {
		t.Error("second Cancel returned true")
	}
	m.Advance(time.Second)
	if ran {
		t.Error("cancelled task ran")
	}

	done := m.Schedule(0, func() {})
	m.Advance(0)
	if done.Cancel() {
		t.Error("Cancel after run returned true")
	}
}
