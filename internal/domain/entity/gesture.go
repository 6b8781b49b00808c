package entity

import "math"

// PanelDirection is the action a horizontal drag asks for.
type PanelDirection int

const (
	PanelOpen PanelDirection = iota
	PanelClose
)

// String returns "open" or "close".
func (d PanelDirection) String() string {
	if d == PanelOpen {
		return "open"
	}
	return "close"
}

// Gesture is the cumulative displacement of a drag since it began.
type Gesture struct {
	DX float64
	DY float64
}

// Direction maps the drag to a panel action: left-to-right opens.
func (g Gesture) Direction() PanelDirection {
	if g.DX > 0 {
		return PanelOpen
	}
	return PanelClose
}

// HorizontallyDominant reports whether the drag moved more sideways than
// vertically.
func (g Gesture) HorizontallyDominant() bool {
	return math.Abs(g.DX) > math.Abs(g.DY)
}

// GesturePolicy decides which drags are panel gestures.
type GesturePolicy struct {
	// Threshold is the minimum |DX|, exclusive.
	Threshold float64
	// RequireHorizontal rejects drags that are mostly vertical.
	RequireHorizontal bool
	// RespectScroll rejects drags while the page scrolls horizontally.
	RespectScroll bool
}

// Claims reports whether the policy takes ownership of the drag.
func (p GesturePolicy) Claims(g Gesture, contentScrolling bool) bool {
	if p.RespectScroll && contentScrolling {
		return false
	}
	if math.Abs(g.DX) <= p.Threshold {
		return false
	}
	if p.RequireHorizontal && !g.HorizontallyDominant() {
		return false
	}
	return true
}
