package visibility

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is a margin component in pixels or percent of the root box.
type Length struct {
	Value   float64
	Percent bool
}

func (l Length) resolve(base float64) float64 {
	if l.Percent {
		return base * l.Value / 100
	}
	return l.Value
}

// Margin is a parsed root margin. Positive values grow the root box.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// ParseMargin parses CSS margin shorthand with one to four px or % values.
// An empty string is a zero margin.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("root margin %q: too many values", s)
	}

	vals := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("root margin %q: %w", s, err)
		}
		vals[i] = l
	}

	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	default:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
}

func parseLength(s string) (Length, error) {
	var (
		num     string
		percent bool
	)
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		num = strings.TrimSuffix(s, "%")
		percent = true
	case s == "0":
		return Length{}, nil
	default:
		return Length{}, fmt.Errorf("value %q must be in px or %%", s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("value %q: %w", s, err)
	}
	return Length{Value: v, Percent: percent}, nil
}

// Apply returns root grown (or shrunk, for negative values) by the margin.
func (m Margin) Apply(root Rect) Rect {
	top := m.Top.resolve(root.Height)
	bottom := m.Bottom.resolve(root.Height)
	left := m.Left.resolve(root.Width)
	right := m.Right.resolve(root.Width)
	return Rect{
		Top:    root.Top - top,
		Left:   root.Left - left,
		Width:  root.Width + left + right,
		Height: root.Height + top + bottom,
	}
}
