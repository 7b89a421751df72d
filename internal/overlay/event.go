package overlay

import "fmt"

// EventKind tags the Event union.
type EventKind int

const (
	EventTick EventKind = iota + 1
	EventGesture
	EventMenuAction
	EventReloadBackground
	EventResize
)

// GestureKind is a user input the overlay reacts to.
type GestureKind int

const (
	GestureEscape GestureKind = iota + 1
	GestureRightClick
	GestureLeftClick
	GestureDoubleClick
)

// MenuAction is an entry of the context menu.
type MenuAction int

const (
	ActionChooseBackground MenuAction = iota + 1
	ActionQuit
)

// Event is one unit of work for the loop. Only the fields matching Kind are set.
type Event struct {
	Kind    EventKind
	Gesture GestureKind
	Action  MenuAction
	X, Y    int // cursor for gestures, size for EventResize
}

func TickEvent() Event { return Event{Kind: EventTick} }

func GestureEvent(g GestureKind, x, y int) Event {
	return Event{Kind: EventGesture, Gesture: g, X: x, Y: y}
}

func MenuActionEvent(a MenuAction) Event { return Event{Kind: EventMenuAction, Action: a} }

func ReloadEvent() Event { return Event{Kind: EventReloadBackground} }

func ResizeEvent(w, h int) Event { return Event{Kind: EventResize, X: w, Y: h} }

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventGesture:
		return "gesture"
	case EventMenuAction:
		return "menu_action"
	case EventReloadBackground:
		return "reload_background"
	case EventResize:
		return "resize"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

func (g GestureKind) String() string {
	switch g {
	case GestureEscape:
		return "escape"
	case GestureRightClick:
		return "right_click"
	case GestureLeftClick:
		return "left_click"
	case GestureDoubleClick:
		return "double_click"
	}
	return fmt.Sprintf("GestureKind(%d)", int(g))
}

func (a MenuAction) String() string {
	switch a {
	case ActionChooseBackground:
		return "choose_background"
	case ActionQuit:
		return "quit"
	}
	return fmt.Sprintf("MenuAction(%d)", int(a))
}
