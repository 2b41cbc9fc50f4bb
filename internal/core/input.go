package core

import (
	"math/bits"
	"strings"
)

// Action is a player intent, independent of the key that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - shift piece left
	ActionRight           // D, Right arrow - shift piece right
	ActionRotate          // W, Up arrow - rotate piece clockwise
	ActionSoftDrop        // S, Down arrow - fall faster
	ActionDrop            // Space - drop piece to the floor
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game
	ActionPause           // P - pause/unpause game
)

var actionNames = [...]string{
	ActionNone:     "None",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionRotate:   "Rotate",
	ActionSoftDrop: "SoftDrop",
	ActionDrop:     "Drop",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return InputFrame{} }

func (a Action) bit() uint32 {
	if a <= ActionNone || a > ActionPause {
		return 0
	}
	return 1 << uint(a)
}

// Set marks a as triggered. Unknown actions are ignored.
func (f *InputFrame) Set(a Action) { f.bits |= a.bit() }

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() { f.bits = 0 }

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame { return f }

// Len is the number of distinct actions in the frame.
func (f InputFrame) Len() int { return bits.OnesCount32(f.bits) }

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a <= ActionPause; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f InputFrame) String() string {
	names := make([]string, 0, f.Len())
	for _, a := range f.Actions() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
