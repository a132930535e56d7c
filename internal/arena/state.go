package arena

// PlayState is the top-level game state.
type PlayState uint8

const (
	StateMenu PlayState = iota
	StatePause
	StateLose
	StatePlaying
)

// States lists every play state.
var States = []PlayState{StateMenu, StatePause, StateLose, StatePlaying}

// String returns a human-readable name for the state.
func (s PlayState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePause:
		return "pause"
	case StateLose:
		return "lose"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// allowed[from][to] is true when a request for `to` is accepted in `from`.
// Playing -> Playing and Lose -> Playing are restarts.
var allowed = [4][4]bool{
	StateMenu:    {StatePlaying: true},
	StatePause:   {StateMenu: true, StatePlaying: true},
	StateLose:    {StateMenu: true, StatePlaying: true},
	StatePlaying: {StateMenu: true, StatePause: true, StateLose: true, StatePlaying: true},
}

// Transition looks up a requested state change. Rejected requests return
// the current state and false; they are not errors.
func Transition(current, requested PlayState) (PlayState, bool) {
	if current > StatePlaying || requested > StatePlaying {
		return current, false
	}
	if !allowed[current][requested] {
		return current, false
	}
	return requested, true
}

// StateChanged is emitted for every accepted transition.
type StateChanged struct {
	From PlayState
	To   PlayState
}

// StateMachine holds the current play state.
type StateMachine struct {
	current PlayState
}

// NewStateMachine starts in the menu.
func NewStateMachine() *StateMachine {
	return &StateMachine{current: StateMenu}
}

// Current returns the current state.
func (m *StateMachine) Current() PlayState {
	return m.current
}

// Request applies the transition table. The event is only meaningful when
// ok is true.
func (m *StateMachine) Request(requested PlayState) (ev StateChanged, ok bool) {
	next, ok := Transition(m.current, requested)
	if !ok {
		return StateChanged{}, false
	}
	ev = StateChanged{From: m.current, To: next}
	m.current = next
	return ev, true
}
