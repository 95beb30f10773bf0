package fieldset

// Event types that trigger recomputation of the derived display states.
const (
	EventKeyUp  = "keyup"
	EventChange = "change"
)

// Event is a change notification raised by a field. Target is the field that
// originated the event; it is preserved while the event bubbles.
type Event struct {
	Type   string
	Target any
}

// Listener handles a dispatched event.
type Listener func(Event)

// Dispatcher is a synchronous listener list. It is embedded by fields that
// implement Notifier.
type Dispatcher struct {
	listeners []*subscription
}

type subscription struct {
	fn Listener
}

// Subscribe registers listener and returns a function that removes it.
func (d *Dispatcher) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	sub := &subscription{fn: listener}
	d.listeners = append(d.listeners, sub)
	return func() {
		for i, existing := range d.listeners {
			if existing == sub {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers evt to every listener in subscription order.
func (d *Dispatcher) Dispatch(evt Event) {
	if d == nil || len(d.listeners) == 0 {
		return
	}
	snapshot := append([]*subscription(nil), d.listeners...)
	for _, sub := range snapshot {
		sub.fn(evt)
	}
}

func triggersChange(evt Event) bool {
	return evt.Type == EventKeyUp || evt.Type == EventChange
}
