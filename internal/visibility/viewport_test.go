package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifierBreakpoint(t *testing.T) {
	tests := []struct {
		width float64
		want  bool
	}{
		{375, true},
		{767, true},
		{768, false},
		{1024, false},
	}
	for _, tt := range tests {
		c := NewClassifier(DefaultBreakpoint)
		got := c.IsMobile(&fakeWindow{width: tt.width}, false)
		assert.Equal(t, tt.want, got, "width %v", tt.width)
	}
}

func TestClassifierNoWindow(t *testing.T) {
	c := NewClassifier(DefaultBreakpoint)
	assert.False(t, c.IsMobile(nil, false))
	assert.False(t, c.IsMobile(nil, true))
	assert.Equal(t, 0, c.Evaluations())
}

func TestClassifierCachesUntilWidthChanges(t *testing.T) {
	c := NewClassifier(DefaultBreakpoint)
	w := &fakeWindow{width: 1024}

	first := c.IsMobile(w, false)
	second := c.IsMobile(w, false)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Evaluations())

	w.width = 375
	assert.True(t, c.IsMobile(w, false))
	assert.Equal(t, 2, c.Evaluations())
}

func TestClassifierForceCheck(t *testing.T) {
	c := NewClassifier(DefaultBreakpoint)
	w := &fakeWindow{width: 1024}
	c.IsMobile(w, false)

	assert.False(t, c.IsMobile(w, true))
	assert.Equal(t, 2, c.Evaluations())
}

func TestTrackerNoWindowIsDesktop(t *testing.T) {
	tr := New(nil, nil, NewLoop(), DefaultConfig(), nil)
	assert.False(t, tr.IsMobileViewport(true))
}
