package sheet

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Direction is the edge the sheet is anchored to and grows away from.
type Direction int

const (
	// TopToBottom anchors the sheet to the top; dragging down opens it.
	TopToBottom Direction = iota
	// BottomToTop anchors the sheet to the bottom; dragging up opens it.
	BottomToTop
)

func (d Direction) String() string {
	if d == BottomToTop {
		return "bottom_to_top"
	}
	return "top_to_bottom"
}

// SnapBehavior decides where the sheet settles after a drag.
type SnapBehavior int

const (
	SnapToEdge SnapBehavior = iota
	FreePosition
)

func (s SnapBehavior) String() string {
	if s == FreePosition {
		return "free"
	}
	return "edge"
}

// Ownership states who owns the engine's controller.
type Ownership int

const (
	// OwnInternal makes the engine create the controller and release it on Close.
	OwnInternal Ownership = iota
	// SharedExternal uses a caller-supplied controller that outlives the engine.
	SharedExternal
)

// Phase is the driver currently writing the height.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseAnimating
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseAnimating:
		return "animating"
	default:
		return "idle"
	}
}

// Options configures an Engine. Zero values select the documented defaults.
type Options struct {
	MinHeight float64
	MaxHeight float64
	// InitialHeight defaults to MinHeight.
	InitialHeight *float64
	Direction     Direction
	Snap          SnapBehavior
	// Physics defaults to DefaultPhysics().
	Physics *Physics

	Ownership Ownership
	// Controller must be set for SharedExternal and nil for OwnInternal.
	Controller *Controller

	// Draggable defaults to true.
	Draggable *bool
	// Width is optional; when set it must be positive.
	Width *float64
	// FPS is the frame rate the spring is sampled at. Defaults to 60.
	FPS int

	OnStateChanged  func(isOpen bool)
	OnHeightChanged func(height float64)

	Logger *slog.Logger
}

// Engine owns the authoritative height of a sheet. Exactly one driver writes
// the height at a time: a drag, a spring animation, or nothing.
type Engine struct {
	minHeight float64
	maxHeight float64
	height    float64

	direction Direction
	snap      SnapBehavior
	physics   Physics
	fps       int
	draggable bool
	width     float64
	hasWidth  bool

	controller  *Controller
	ownership   Ownership
	unsubscribe func()
	closed      bool

	phase      Phase
	sim        *simulation
	simFrom    float64
	simTo      float64
	generation uint64

	onStateChanged  func(bool)
	onHeightChanged func(float64)
	logger          *slog.Logger
}

// New validates opts and returns an engine subscribed to its controller.
// Invalid options are a programming error; New refuses to construct rather
// than clamping.
func New(opts Options) (*Engine, error) {
	if err := validateBounds(opts.MinHeight, opts.MaxHeight); err != nil {
		return nil, err
	}

	height := opts.MinHeight
	if opts.InitialHeight != nil {
		height = *opts.InitialHeight
		if height < opts.MinHeight || height > opts.MaxHeight {
			return nil, fmt.Errorf("%w: initial=%g min=%g max=%g",
				ErrInitialOutOfRange, height, opts.MinHeight, opts.MaxHeight)
		}
	}

	physics := DefaultPhysics()
	if opts.Physics != nil {
		physics = *opts.Physics
	}
	if err := physics.Validate(); err != nil {
		return nil, err
	}

	fps := opts.FPS
	if fps == 0 {
		fps = DefaultFPS
	}
	if fps < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveFPS, fps)
	}

	var width float64
	if opts.Width != nil {
		width = *opts.Width
		if width <= 0 {
			return nil, fmt.Errorf("%w: got %g", ErrNonPositiveWidth, width)
		}
	}

	draggable := true
	if opts.Draggable != nil {
		draggable = *opts.Draggable
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		minHeight:       opts.MinHeight,
		maxHeight:       opts.MaxHeight,
		height:          height,
		direction:       opts.Direction,
		snap:            opts.Snap,
		physics:         physics,
		fps:             fps,
		draggable:       draggable,
		width:           width,
		hasWidth:        opts.Width != nil,
		ownership:       opts.Ownership,
		onStateChanged:  opts.OnStateChanged,
		onHeightChanged: opts.OnHeightChanged,
		logger:          logger,
	}

	switch opts.Ownership {
	case SharedExternal:
		if opts.Controller == nil {
			return nil, ErrControllerMissing
		}
		e.controller = opts.Controller
	default:
		if opts.Controller != nil {
			return nil, ErrControllerNotAllowed
		}
		e.controller = NewController(e.opennessAt(height))
	}

	e.controller.UpdateHeight(height)
	e.unsubscribe = e.controller.Subscribe(e.handleControllerChange)
	return e, nil
}

func validateBounds(minHeight, maxHeight float64) error {
	if minHeight < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeMinHeight, minHeight)
	}
	if maxHeight < minHeight {
		return fmt.Errorf("%w: min=%g max=%g", ErrMaxBelowMin, minHeight, maxHeight)
	}
	return nil
}

// Close detaches the engine from its controller and stops any animation.
// An internally owned controller is released with the engine.
func (e *Engine) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.cancelAnimation()
	e.closed = true
	if e.ownership == OwnInternal {
		e.controller = nil
	}
}

// Height returns the current height.
func (e *Engine) Height() float64 { return e.height }

// MinHeight returns the lower bound.
func (e *Engine) MinHeight() float64 { return e.minHeight }

// MaxHeight returns the upper bound.
func (e *Engine) MaxHeight() float64 { return e.maxHeight }

// Phase returns the active driver.
func (e *Engine) Phase() Phase { return e.phase }

// Animating reports whether a spring simulation is in flight.
func (e *Engine) Animating() bool { return e.phase == PhaseAnimating }

// Generation identifies the current simulation. It changes whenever a
// simulation starts or is cancelled, so frames scheduled for an older
// simulation can be recognised and dropped.
func (e *Engine) Generation() uint64 { return e.generation }

// Target returns the height the active animation is heading to.
func (e *Engine) Target() (float64, bool) {
	if e.phase != PhaseAnimating {
		return 0, false
	}
	return e.simTo, true
}

// Controller returns the controller the engine is bound to. It is nil after
// Close for internally owned controllers.
func (e *Engine) Controller() *Controller { return e.controller }

// Direction returns the anchoring direction.
func (e *Engine) Direction() Direction { return e.direction }

// Snap returns the release behavior.
func (e *Engine) Snap() SnapBehavior { return e.snap }

// Physics returns the motion configuration.
func (e *Engine) Physics() Physics { return e.physics }

// Draggable reports whether drag gestures are honoured.
func (e *Engine) Draggable() bool { return e.draggable }

// Width returns the optional width.
func (e *Engine) Width() (float64, bool) { return e.width, e.hasWidth }

// FrameInterval is the time between two simulation frames.
func (e *Engine) FrameInterval() time.Duration {
	return time.Second / time.Duration(e.fps)
}

// SetBounds reconfigures the height range. A height left outside the new
// range is clamped immediately, without animating.
func (e *Engine) SetBounds(minHeight, maxHeight float64) error {
	if err := validateBounds(minHeight, maxHeight); err != nil {
		return err
	}
	e.minHeight = minHeight
	e.maxHeight = maxHeight
	if clamped := e.clamp(e.height); clamped != e.height {
		e.logger.Debug("bounds re-clamp", "from", e.height, "to", clamped)
		e.setHeight(clamped)
	}
	return nil
}

// DragStart hands the height to a drag, cancelling any animation.
func (e *Engine) DragStart() {
	if !e.draggable || e.closed {
		return
	}
	e.cancelAnimation()
	e.phase = PhaseDragging
	e.logger.Debug("drag start", "height", e.height)
}

// DragUpdate applies one pointer displacement. Only the vertical component
// counts, oriented so that moving toward the open side is positive.
func (e *Engine) DragUpdate(delta Offset) {
	if !e.draggable || e.closed {
		return
	}
	if e.phase != PhaseDragging {
		e.DragStart()
	}
	e.setHeight(e.height + e.project(delta))
}

// DragEnd resolves a released gesture with the given pointer velocity.
func (e *Engine) DragEnd(velocity Offset) {
	if !e.draggable || e.closed {
		return
	}
	if e.phase == PhaseDragging {
		e.phase = PhaseIdle
	}
	v := e.project(velocity)

	if e.snap == FreePosition {
		isOpen := e.opennessAt(e.height)
		e.logger.Debug("release free", "height", e.height, "open", isOpen)
		if isOpen != e.controller.IsOpen() {
			e.controller.UpdateOpenState(isOpen)
			e.emitState(isOpen)
		}
		return
	}

	var (
		isOpen bool
		speed  float64
	)
	threshold := e.physics.DefaultVelocity / 2
	if math.Abs(v) > threshold {
		isOpen = v > 0
		speed = math.Abs(v)
	} else {
		isOpen = e.opennessAt(e.height)
		speed = e.physics.DefaultVelocity
	}
	target := e.minHeight
	if isOpen {
		target = e.maxHeight
	}
	e.logger.Debug("release snap", "height", e.height, "velocity", v, "target", target)

	e.controller.UpdateOpenState(isOpen)
	e.emitState(isOpen)
	e.animateTo(target, speed)
}

// Tick samples the active simulation for one frame. It returns true while
// more frames are needed.
func (e *Engine) Tick() bool {
	if e.phase != PhaseAnimating || e.sim == nil {
		return false
	}
	pos := e.sim.step()
	e.setHeight(e.simFrom + (e.simTo-e.simFrom)*pos)
	if e.sim.done() {
		// The spring settles near the target; the last sampled height stands.
		e.logger.Debug("animation settled", "height", e.height, "target", e.simTo, "frames", e.sim.frames)
		e.sim = nil
		e.phase = PhaseIdle
		return false
	}
	return true
}

func (e *Engine) handleControllerChange() {
	action := e.controller.PendingAction()
	switch action.Kind {
	case ActionOpen:
		e.emitState(true)
		e.animateTo(e.maxHeight, e.physics.DefaultVelocity)
	case ActionClose:
		e.emitState(false)
		e.animateTo(e.minHeight, e.physics.DefaultVelocity)
	case ActionAnimateTo:
		target := e.clamp(action.Height)
		if isOpen := e.opennessAt(target); isOpen != e.controller.IsOpen() {
			e.controller.UpdateOpenState(isOpen)
			e.emitState(isOpen)
		}
		e.animateTo(target, e.physics.DefaultVelocity)
	case ActionNone:
	}
}

// animateTo starts a spring from the current height toward target with the
// given entry speed in height units per second.
func (e *Engine) animateTo(target, speed float64) {
	target = e.clamp(target)
	// The spring always runs from 0 to 1. A shrinking sheet starts it with a
	// negative velocity, so it first swings away from the target; at a bound
	// the clamp holds it in place.
	nv := e.normalizedVelocity(target, speed)

	e.cancelAnimation()
	e.sim = newSimulation(e.physics.Spring, e.fps, nv)
	e.simFrom = e.height
	e.simTo = target
	e.phase = PhaseAnimating
	e.logger.Debug("animation start", "from", e.simFrom, "to", target, "velocity", nv)
}

// normalizedVelocity rescales speed into 0..1 travel space, signed by the
// direction the height moves: positive when growing toward target.
func (e *Engine) normalizedVelocity(target, speed float64) float64 {
	nv := speed / math.Max(minNormalizationExtent, e.maxHeight-e.minHeight)
	if target > e.height {
		return nv
	}
	return -nv
}

func (e *Engine) cancelAnimation() {
	if e.sim != nil {
		e.sim = nil
		e.phase = PhaseIdle
	}
	e.generation++
}

func (e *Engine) setHeight(h float64) {
	h = e.clamp(h)
	if h == e.height {
		return
	}
	e.height = h
	if e.controller != nil {
		e.controller.UpdateHeight(h)
	}
	if e.onHeightChanged != nil {
		e.onHeightChanged(h)
	}
}

func (e *Engine) emitState(isOpen bool) {
	if e.onStateChanged != nil {
		e.onStateChanged(isOpen)
	}
}

func (e *Engine) project(o Offset) float64 {
	if e.direction == BottomToTop {
		return -o.Y
	}
	return o.Y
}

func (e *Engine) opennessAt(h float64) bool {
	return h > (e.minHeight+e.maxHeight)/2
}

func (e *Engine) clamp(h float64) float64 {
	return math.Min(math.Max(h, e.minHeight), e.maxHeight)
}
