package store

// Action is an ephemeral request to run named app logic, carrying an
// optional payload. Actions are values passed through dispatch; they are
// never stored.
type Action struct {
	// Name identifies the logic to run (e.g., "calculate_blend").
	Name string
	// Payload carries additional data for the handler.
	Payload map[string]Value
}

// NewAction creates an action with just a name.
func NewAction(name string) Action {
	return Action{Name: name, Payload: make(map[string]Value)}
}

// With adds a payload entry and returns the action for chaining.
func (a Action) With(key string, value Value) Action {
	if a.Payload == nil {
		a.Payload = make(map[string]Value)
	}
	a.Payload[key] = value
	return a
}

// Get returns a payload value and whether it exists.
func (a Action) Get(key string) (Value, bool) {
	v, ok := a.Payload[key]
	return v, ok
}

// GetStr returns a payload string, or "" when missing or mistyped.
func (a Action) GetStr(key string) string {
	if v, ok := a.Payload[key]; ok {
		if s, isStr := v.AsString(); isStr {
			return s
		}
	}
	return ""
}

// GetNumber returns a payload number and whether it exists as one.
func (a Action) GetNumber(key string) (float64, bool) {
	if v, ok := a.Payload[key]; ok {
		return v.AsNumber()
	}
	return 0, false
}

// Services carries resources available to action handlers. It is an
// extension point; the core passes it through untouched.
type Services struct{}

// ActionHandler processes actions against the store.
//
// Handle returns (true, nil) when the action was handled, (false, nil) to
// pass it to the next handler in the chain, or an error to abort dispatch.
// Implementations can be native Go code or adapters over an embedded
// interpreter; the toolkit doesn't care which.
type ActionHandler interface {
	Handle(action Action, st *Store, services *Services) (bool, error)
}

// HandlerFunc adapts a function to the ActionHandler interface.
type HandlerFunc func(action Action, st *Store, services *Services) (bool, error)

// Handle calls the function.
func (f HandlerFunc) Handle(action Action, st *Store, services *Services) (bool, error) {
	return f(action, st, services)
}

// ActionDispatcher chains handlers in registration order.
type ActionDispatcher struct {
	handlers []ActionHandler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *ActionDispatcher {
	return &ActionDispatcher{}
}

// AddHandler appends a handler to the chain.
func (d *ActionDispatcher) AddHandler(h ActionHandler) {
	d.handlers = append(d.handlers, h)
}

// Dispatch offers the action to each handler in registration order until
// one claims it. A handler error aborts the remaining chain and is
// returned to the caller. An action no handler claims yields (false, nil);
// whether that matters is the caller's decision.
func (d *ActionDispatcher) Dispatch(action Action, st *Store, services *Services) (bool, error) {
	for _, h := range d.handlers {
		handled, err := h.Handle(action, st, services)
		if err != nil {
			return false, err
		}
		if handled {
			return true, nil
		}
	}
	return false, nil
}
