package triangle

// Key is a backend-neutral key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

type Action int

const (
	Release Action = iota
	Press
	Repeat
)

type KeyEvent struct {
	Key    Key
	Action Action
}

// Input queues key events between PollEvents calls. Backends push, the frame
// loop drains once per frame.
type Input struct {
	events []KeyEvent
}

func (in *Input) Push(ev KeyEvent) {
	in.events = append(in.events, ev)
}

// Drain returns the queued events and empties the queue.
func (in *Input) Drain() []KeyEvent {
	evs := in.events
	in.events = nil
	return evs
}

// CloseRequested reports whether events contain an Escape press. Held keys
// (Repeat) do not count.
func CloseRequested(events []KeyEvent) bool {
	for _, ev := range events {
		if ev.Key == KeyEscape && ev.Action == Press {
			return true
		}
	}
	return false
}
