package narration

// Narrator receives game events as they happen
type Narrator interface {
	Narrate(Event)
}

// NarratorFunc adapts a function to the Narrator interface
type NarratorFunc func(Event)

func (f NarratorFunc) Narrate(e Event) {
	f(e)
}

// Discard drops every event
var Discard Narrator = NarratorFunc(func(Event) {})

type multi []Narrator

// Multi fans events out to every narrator in order. Nil entries are skipped.
func Multi(narrators ...Narrator) Narrator {
	var m multi
	for _, n := range narrators {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m multi) Narrate(e Event) {
	for _, n := range m {
		n.Narrate(e)
	}
}

// Recorder keeps every event it receives
type Recorder struct {
	Events []Event
}

func (r *Recorder) Narrate(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of the recorded events in order
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind()
	}
	return kinds
}

// Count returns how many recorded events have kind k
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded events
func (r *Recorder) Reset() {
	r.Events = nil
}
