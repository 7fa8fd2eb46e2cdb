package ui

import "strings"

// Bar renders a horizontal bar for value scaled against limit over width cells.
// Values above limit are drawn full; negative values draw nothing.
func (s *Styles) Bar(value, limit float64, width int) string {
	if width <= 0 || limit <= 0 || value <= 0 {
		return ""
	}
	n := int(value / limit * float64(width))
	if n > width {
		n = width
	}
	if n == 0 {
		n = 1
	}
	return s.BarStyle.Render(strings.Repeat(s.BarFull, n))
}
