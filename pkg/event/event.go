// Package event is a small synchronous publish/subscribe hub. Systems
// dispatch what happened during combat; the session controller, the
// progress ledger and the metrics recorder listen.
package event

// EventType names an event.
type EventType string

// Event is one occurrence. Data holds the payload struct for the type, if any.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events to subscribers in subscription order.
// Delivery is synchronous: Dispatch returns after every listener ran.
type Dispatcher struct {
	listeners map[EventType][]Listener
	history   []Event
	recording bool
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc registers a function for eventType.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) {
	d.Subscribe(eventType, ListenerFunc(fn))
}

// Dispatch sends e to every listener of its type.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	if d.recording {
		d.history = append(d.history, e)
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}

// Record turns on keeping a copy of every dispatched event until the next Drain.
func (d *Dispatcher) Record(on bool) {
	d.recording = on
	if !on {
		d.history = nil
	}
}

// Drain returns the events recorded since the previous call and clears them.
func (d *Dispatcher) Drain() []Event {
	out := d.history
	d.history = nil
	return out
}
