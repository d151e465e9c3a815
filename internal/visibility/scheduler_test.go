package visibility

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLoopFiresTimersInOrder(t *testing.T) {
	l := NewLoop()
	var got []string
	l.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	l.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	l.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	l.Advance(20 * time.Millisecond)
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("fired (-want +got):\n%s", diff)
	}

	l.Advance(10 * time.Millisecond)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("fired (-want +got):\n%s", diff)
	}
	assert.Equal(t, 30*time.Millisecond, l.Now())
}

func TestLoopCancel(t *testing.T) {
	l := NewLoop()
	fired := false
	cancel := l.AfterFunc(time.Millisecond, func() { fired = true })
	cancel()
	cancel()
	l.Advance(time.Second)
	assert.False(t, fired)

	timers, _ := l.Pending()
	assert.Zero(t, timers)
}

func TestLoopNestedTimerWithinWindow(t *testing.T) {
	l := NewLoop()
	var at []time.Duration
	l.AfterFunc(10*time.Millisecond, func() {
		at = append(at, l.Now())
		l.AfterFunc(5*time.Millisecond, func() { at = append(at, l.Now()) })
	})
	l.Advance(20 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 15 * time.Millisecond}, at)
}

func TestLoopFrameDefersNewRequests(t *testing.T) {
	l := NewLoop()
	n := 0
	l.RequestFrame(func() {
		n++
		l.RequestFrame(func() { n++ })
	})

	l.Frame()
	assert.Equal(t, 1, n)
	l.Frame()
	assert.Equal(t, 2, n)
}

func TestDebouncerStaleTokenIgnored(t *testing.T) {
	l := NewLoop()
	d := NewDebouncer(l, 10*time.Millisecond)
	n := 0
	d.Schedule(func() { n++ })
	d.Schedule(func() { n += 10 })
	l.Advance(10 * time.Millisecond)
	assert.Equal(t, 10, n)

	d.Schedule(func() { n++ })
	d.Stop()
	l.Advance(time.Second)
	assert.Equal(t, 10, n)
}

func TestDebouncerWithoutSchedulerRunsNow(t *testing.T) {
	d := NewDebouncer(nil, time.Second)
	n := 0
	d.Schedule(func() { n++ })
	assert.Equal(t, 1, n)
}
