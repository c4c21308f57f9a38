package ui

import (
	"fmt"
	"image"
	"strconv"

	"mad-cca/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statsSpacing   = 16
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// refreshControls copies current values out of the snapshot. Controls the
// snapshot does not report, or reports in a non-integer form, are disabled.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		s := &states[i]
		s.hasValue = false
		p, ok := snap.Lookup(s.control.Key)
		if !ok || p.Type != core.ParamTypeInt {
			continue
		}
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			continue
		}
		s.value = v
		s.hasValue = true
	}
}

// target returns the value one step in direction, bounded by the control
// range, and whether it differs from the current value.
func (s controlState) target(direction int) (int, bool) {
	if !s.hasValue || direction == 0 {
		return s.value, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	next := s.control.Clamp(s.value + direction*step)
	return next, next != s.value
}

func (s controlState) label() string {
	if !s.hasValue {
		return "--"
	}
	return strconv.Itoa(s.value)
}

// hitTest maps a panel-local point to a control index and direction.
func hitTest(states []controlState, x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i, s := range states {
		if pt.In(s.minusRect) {
			return i, -1, true
		}
		if pt.In(s.plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// statLines renders the snapshot groups as text, skipping keys that already
// have a control row.
func statLines(snap core.ParameterSnapshot, controls []controlState) []string {
	skip := make(map[string]bool, len(controls))
	for _, c := range controls {
		skip[c.control.Key] = true
	}
	var lines []string
	for _, g := range snap.Groups {
		var rows []string
		for _, p := range g.Params {
			if skip[p.Key] {
				continue
			}
			rows = append(rows, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
		if len(rows) == 0 {
			continue
		}
		lines = append(lines, g.Name)
		lines = append(lines, rows...)
	}
	return lines
}
