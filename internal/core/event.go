package core

import "fmt"

// EventKind identifies something a game wants the platform to react to,
// typically with a sound cue or a log line.
type EventKind int

const (
	EventLevelUp     EventKind = iota + 1 // Speed level increased; Value is the new level
	EventWarning                          // Speed reached the warning level
	EventMusicChange                      // Speed reached the level that switches music
	EventRowsCleared                      // Value is the number of rows removed
	EventLanded                           // Value is the number of steered groups that settled
	EventGameOver                         // No room for the next piece
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelUp:
		return "level_up"
	case EventWarning:
		return "warning"
	case EventMusicChange:
		return "music_change"
	case EventRowsCleared:
		return "rows_cleared"
	case EventLanded:
		return "landed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by Game.Step.
type Event struct {
	Kind  EventKind
	Value int
}

// String returns a compact representation, e.g. "level_up(3)".
func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
}
