package input

// Event is one buffered input occurrence from a host that delivers input
// asynchronously (the terminal preview).
type Event struct {
	Key     int32
	Pointer bool
	X, Y    int
}

type Queue struct {
	ch chan Event
}

func NewQueue(size int) *Queue {
	if size < 1 {
		size = 16
	}
	return &Queue{ch: make(chan Event, size)}
}

func (q *Queue) Enqueue(ev Event) {
	if q == nil {
		return
	}
	select {
	case q.ch <- ev:
	default:
		// Drop when saturated; a missed key press is harmless.
	}
}

func (q *Queue) Dequeue() (Event, bool) {
	if q == nil {
		return Event{}, false
	}
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

// Flush discards everything buffered.
func (q *Queue) Flush() {
	for {
		if _, ok := q.Dequeue(); !ok {
			return
		}
	}
}
