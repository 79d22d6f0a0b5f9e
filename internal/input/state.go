package input

const (
	DefaultRepeatWait     = 24
	DefaultRepeatInterval = 6
)

// Pointer is the tick's pointer sample. Pressed is the press edge, not the
// button level.
type Pointer struct {
	X, Y    int
	Pressed bool
}

// Sample is everything a host polled during one tick.
type Sample struct {
	Down    []int32
	Pointer Pointer
}

// State turns per-tick samples into trigger and repeat edges per action.
type State struct {
	keymap   Keymap
	wait     int
	interval int
	queue    *Queue

	held      map[Action]int
	triggered map[Action]bool
	repeated  map[Action]bool
	pointer   Pointer
}

func NewState(km Keymap) *State {
	return &State{
		keymap:    km,
		wait:      DefaultRepeatWait,
		interval:  DefaultRepeatInterval,
		held:      map[Action]int{},
		triggered: map[Action]bool{},
		repeated:  map[Action]bool{},
	}
}

// Attach makes Clear also flush q.
func (s *State) Attach(q *Queue) {
	s.queue = q
}

// Update advances one tick. A held action repeats on the tick it is first
// pressed and then every interval ticks once it has been held for wait ticks.
func (s *State) Update(sample Sample) {
	down := map[Action]bool{}
	for _, key := range sample.Down {
		if a, ok := s.keymap[key]; ok {
			down[a] = true
		}
	}
	clear(s.triggered)
	clear(s.repeated)
	for a := range s.held {
		if !down[a] {
			delete(s.held, a)
		}
	}
	for a := range down {
		t, wasHeld := s.held[a]
		if !wasHeld {
			s.held[a] = 0
			s.triggered[a] = true
			s.repeated[a] = true
			continue
		}
		t++
		s.held[a] = t
		if t >= s.wait && t%s.interval == 0 {
			s.repeated[a] = true
		}
	}
	s.pointer = sample.Pointer
}

// Drain feeds the next buffered event, if any, as this tick's sample.
func (s *State) Drain(q *Queue) {
	ev, ok := q.Dequeue()
	if !ok {
		s.Update(Sample{Pointer: Pointer{X: s.pointer.X, Y: s.pointer.Y}})
		return
	}
	if ev.Pointer {
		s.Update(Sample{Pointer: Pointer{X: ev.X, Y: ev.Y, Pressed: true}})
		return
	}
	// Terminal key messages carry no release, so each one is a fresh press.
	if a, ok := s.keymap[ev.Key]; ok {
		delete(s.held, a)
	}
	s.Update(Sample{Down: []int32{ev.Key}, Pointer: Pointer{X: s.pointer.X, Y: s.pointer.Y}})
}

func (s *State) IsTriggered(a Action) bool { return s.triggered[a] }

func (s *State) IsRepeated(a Action) bool { return s.repeated[a] }

func (s *State) PointerTriggered() bool { return s.pointer.Pressed }

func (s *State) PointerPosition() (int, int) { return s.pointer.X, s.pointer.Y }

// Clear drops this tick's edges and any buffered events so that the input
// which opened a window is not seen again by the window it opened.
func (s *State) Clear() {
	clear(s.triggered)
	clear(s.repeated)
	s.pointer.Pressed = false
	if s.queue != nil {
		s.queue.Flush()
	}
}
