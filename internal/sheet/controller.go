// Package sheet implements the state behind a draggable, spring-animated
// panel: a Controller that records intent and an Engine that owns the height.
package sheet

// ActionKind identifies what the controller last asked the engine to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpen
	ActionClose
	ActionAnimateTo
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionClose:
		return "close"
	case ActionAnimateTo:
		return "animate_to"
	default:
		return "none"
	}
}

// Action is the controller's single pending intent.
// Height is only meaningful for ActionAnimateTo.
type Action struct {
	Kind   ActionKind
	Height float64
}

type listener struct {
	fn      func()
	removed bool
}

// Controller holds the caller-facing state of a sheet. Every public mutation
// that matters to the engine emits one change notification; the engine-facing
// setters UpdateHeight and UpdateOpenState are silent.
type Controller struct {
	isOpen          bool
	currentHeight   float64
	isHandleVisible bool
	pending         Action

	listeners []*listener
}

// NewController creates a controller. The handle starts visible.
func NewController(initialIsOpen bool) *Controller {
	return &Controller{
		isOpen:          initialIsOpen,
		isHandleVisible: true,
	}
}

// IsOpen reports whether the sheet is considered at or near its max height.
func (c *Controller) IsOpen() bool { return c.isOpen }

// CurrentHeight is the last height reported by the engine.
func (c *Controller) CurrentHeight() float64 { return c.currentHeight }

// IsHandleVisible reports whether the drag handle should be rendered.
func (c *Controller) IsHandleVisible() bool { return c.isHandleVisible }

// PendingAction returns the last recorded intent.
func (c *Controller) PendingAction() Action { return c.pending }

// Open asks the engine to animate to max height.
func (c *Controller) Open() {
	if c.isOpen && c.pending.Kind == ActionOpen {
		return
	}
	c.isOpen = true
	c.pending = Action{Kind: ActionOpen}
	c.notify()
}

// Close asks the engine to animate to min height.
func (c *Controller) Close() {
	if !c.isOpen && c.pending.Kind == ActionClose {
		return
	}
	c.isOpen = false
	c.pending = Action{Kind: ActionClose}
	c.notify()
}

// Toggle closes an open sheet and opens a closed one.
func (c *Controller) Toggle() {
	if c.isOpen {
		c.Close()
		return
	}
	c.Open()
}

// AnimateTo asks the engine to animate to height. The engine clamps it.
func (c *Controller) AnimateTo(height float64) {
	c.pending = Action{Kind: ActionAnimateTo, Height: height}
	c.notify()
}

// ShowHandle makes the handle visible.
func (c *Controller) ShowHandle() {
	c.setHandleVisible(true)
}

// HideHandle hides the handle.
func (c *Controller) HideHandle() {
	c.setHandleVisible(false)
}

func (c *Controller) setHandleVisible(visible bool) {
	if c.isHandleVisible == visible {
		return
	}
	c.isHandleVisible = visible
	// Listeners must not replay a stale open/close on a visibility change.
	c.pending = Action{}
	c.notify()
}

// UpdateHeight mirrors the engine's height. It does not notify.
func (c *Controller) UpdateHeight(height float64) {
	c.currentHeight = height
}

// UpdateOpenState mirrors the engine's openness. It does not notify.
func (c *Controller) UpdateOpenState(isOpen bool) {
	c.isOpen = isOpen
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Calling the returned function more than once is a no-op.
func (c *Controller) Subscribe(fn func()) (unsubscribe func()) {
	l := &listener{fn: fn}
	c.listeners = append(c.listeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, other := range c.listeners {
			if other == l {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of subscribed listeners.
func (c *Controller) ListenerCount() int {
	return len(c.listeners)
}

func (c *Controller) notify() {
	// Iterate a snapshot: listeners may unsubscribe from inside their callback.
	snapshot := make([]*listener, len(c.listeners))
	copy(snapshot, c.listeners)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn()
	}
}
