package visibility

import "time"

const (
	// DefaultBreakpoint is the viewport width, in logical pixels, below
	// which the viewport is classified as mobile.
	DefaultBreakpoint = 768

	// DefaultScrollPastThreshold is how far, in logical pixels, a section's
	// top edge must be above the viewport before it counts as scrolled past.
	DefaultScrollPastThreshold = 200

	// DefaultRedrawThreshold is the initial-visibility ratio ObserveRedraw
	// uses when no threshold is given.
	DefaultRedrawThreshold = 0.2
)

// Preset is one named intersection configuration.
type Preset struct {
	Threshold  float64       `yaml:"threshold"`
	RootMargin string        `yaml:"root_margin"`
	Debounce   time.Duration `yaml:"debounce"`
}

// Config holds the static values the observers read. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	Breakpoint          float64 `yaml:"breakpoint"`
	ScrollPastThreshold float64 `yaml:"scroll_past_threshold"`
	Desktop             Preset  `yaml:"desktop"`
	Mobile              Preset  `yaml:"mobile"`
}

// DefaultConfig returns the desktop and mobile presets the site ships with.
func DefaultConfig() Config {
	return Config{
		Breakpoint:          DefaultBreakpoint,
		ScrollPastThreshold: DefaultScrollPastThreshold,
		Desktop: Preset{
			Threshold:  0.2,
			RootMargin: "0px 0px -50px 0px",
			Debounce:   50 * time.Millisecond,
		},
		Mobile: Preset{
			Threshold:  0.1,
			RootMargin: "0px 0px -20px 0px",
			Debounce:   150 * time.Millisecond,
		},
	}
}
