package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Input collects key events from a tcell screen and hands them out per tick.
type Input struct {
	events chan tcell.Event
}

// NewInput starts reading events from s. Reading stops when s is finalized.
func NewInput(s tcell.Screen) *Input {
	in := &Input{events: make(chan tcell.Event, 100)}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				// Screen finalized
				close(in.events)
				return
			}
			select {
			case in.events <- ev:
			default:
				// Nobody is polling; drop
			}
		}
	}()
	return in
}

// Poll drains the pending events without blocking and returns their actions
// in arrival order. A finalized screen yields ActionQuit.
func (in *Input) Poll() core.InputFrame {
	frame := core.NewInputFrame()
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				frame.Set(core.ActionQuit)
				return frame
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				frame.Set(MapKey(key))
			}
		default:
			return frame
		}
	}
}

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
