package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settleEpsilon = 0.1

type event struct {
	kind   string
	open   bool
	height float64
}

type recorder struct {
	events []event
}

func (r *recorder) options(opts Options) Options {
	opts.OnStateChanged = func(isOpen bool) {
		r.events = append(r.events, event{kind: "state", open: isOpen})
	}
	opts.OnHeightChanged = func(h float64) {
		r.events = append(r.events, event{kind: "height", height: h})
	}
	return opts
}

func (r *recorder) states() []bool {
	var out []bool
	for _, ev := range r.events {
		if ev.kind == "state" {
			out = append(out, ev.open)
		}
	}
	return out
}

func (r *recorder) heights() []float64 {
	var out []float64
	for _, ev := range r.events {
		if ev.kind == "height" {
			out = append(out, ev.height)
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func newTestEngine(t *testing.T, opts Options) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e, err := New(rec.options(opts))
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e, rec
}

// settle ticks until the simulation reports it is done.
func settle(t *testing.T, e *Engine) int {
	t.Helper()
	for frames := 1; frames <= 10_000; frames++ {
		if !e.Tick() {
			return frames
		}
	}
	t.Fatal("simulation did not settle")
	return 0
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"negative min", Options{MinHeight: -1, MaxHeight: 10}, ErrNegativeMinHeight},
		{"max below min", Options{MinHeight: 20, MaxHeight: 10}, ErrMaxBelowMin},
		{"initial below min", Options{MinHeight: 10, MaxHeight: 20, InitialHeight: ptr(5.0)}, ErrInitialOutOfRange},
		{"initial above max", Options{MinHeight: 10, MaxHeight: 20, InitialHeight: ptr(25.0)}, ErrInitialOutOfRange},
		{"zero velocity", Options{MaxHeight: 10, Physics: &Physics{Spring: DefaultPhysics().Spring}}, ErrNonPositiveVelocity},
		{"zero width", Options{MaxHeight: 10, Width: ptr(0.0)}, ErrNonPositiveWidth},
		{"zero mass", Options{MaxHeight: 10, Physics: &Physics{Spring: Spring{Stiffness: 1}, DefaultVelocity: 1}}, ErrInvalidSpring},
		{"negative damping", Options{MaxHeight: 10, Physics: &Physics{Spring: Spring{Mass: 1, Stiffness: 1, Damping: -1}, DefaultVelocity: 1}}, ErrInvalidSpring},
		{"negative fps", Options{MaxHeight: 10, FPS: -30}, ErrNonPositiveFPS},
		{"shared without controller", Options{MaxHeight: 10, Ownership: SharedExternal}, ErrControllerMissing},
		{"internal with controller", Options{MaxHeight: 10, Controller: NewController(false)}, ErrControllerNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.opts)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, e)
		})
	}
}

func TestNew_InitialHeight(t *testing.T) {
	tests := []struct {
		name    string
		initial *float64
		want    float64
	}{
		{"defaults to min", nil, 50},
		{"at min", ptr(50.0), 50},
		{"inside", ptr(120.0), 120},
		{"at max", ptr(300.0), 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: tt.initial})
			assert.InDelta(t, tt.want, e.Height(), 0)
			assert.InDelta(t, tt.want, e.Controller().CurrentHeight(), 0)
			assert.Equal(t, PhaseIdle, e.Phase())
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	e, _ := newTestEngine(t, Options{MaxHeight: 10})

	assert.Equal(t, TopToBottom, e.Direction())
	assert.Equal(t, SnapToEdge, e.Snap())
	assert.Equal(t, DefaultPhysics(), e.Physics())
	assert.True(t, e.Draggable())
	_, hasWidth := e.Width()
	assert.False(t, hasWidth)
	assert.Equal(t, 16666666, int(e.FrameInterval()))
}

func TestEngine_OpenAnimatesToMax(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300})

	e.Controller().Open()

	require.NotEmpty(t, rec.events)
	assert.Equal(t, event{kind: "state", open: true}, rec.events[0], "state change must precede the animation")
	assert.Equal(t, PhaseAnimating, e.Phase())

	settle(t, e)

	assert.InDelta(t, 300, e.Height(), settleEpsilon)
	assert.InDelta(t, e.Height(), e.Controller().CurrentHeight(), 0)
	assert.Equal(t, []bool{true}, rec.states())
	assert.True(t, e.Controller().IsOpen())
	assert.Equal(t, PhaseIdle, e.Phase())
	for _, h := range rec.heights() {
		assert.LessOrEqual(t, h, 300.0)
		assert.GreaterOrEqual(t, h, 50.0)
	}
}

func TestEngine_CloseAnimatesToMin(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(300.0)})
	require.True(t, e.Controller().IsOpen())

	e.Controller().Close()
	settle(t, e)

	assert.InDelta(t, 50, e.Height(), settleEpsilon)
	assert.Equal(t, []bool{false}, rec.states())
}

func TestEngine_CloseFromMaxHoldsAtMaxOnFirstFrame(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(300.0)})

	e.Controller().Close()
	require.NotNil(t, e.sim)
	assert.InDelta(t, -6, e.sim.velocity, 1e-9, "shrinking starts the spring backwards")

	e.Tick()

	assert.Empty(t, rec.heights(), "the clamp holds the height at max")
	assert.InDelta(t, 300, e.Height(), 0)

	settle(t, e)
	assert.InDelta(t, 50, e.Height(), settleEpsilon)
	for _, h := range rec.heights() {
		assert.LessOrEqual(t, h, 300.0)
		assert.GreaterOrEqual(t, h, 50.0)
	}
}

func TestEngine_OpenStartsSpringForward(t *testing.T) {
	e, _ := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300})

	e.Controller().Open()

	require.NotNil(t, e.sim)
	assert.InDelta(t, 6, e.sim.velocity, 1e-9)
}

func TestEngine_AnimateToClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{"above max", 1000, 300},
		{"below min", -100, 50},
		{"inside", 180, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(120.0)})

			e.Controller().AnimateTo(tt.target)
			settle(t, e)

			assert.InDelta(t, tt.want, e.Height(), settleEpsilon)
			for _, h := range rec.heights() {
				assert.LessOrEqual(t, h, 300.0)
				assert.GreaterOrEqual(t, h, 50.0)
			}
		})
	}
}

func TestEngine_AnimateToUpdatesOpenness(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 0, MaxHeight: 100})

	e.Controller().AnimateTo(40)
	assert.Empty(t, rec.states(), "below midpoint keeps the sheet closed")

	e.Controller().AnimateTo(80)
	assert.Equal(t, []bool{true}, rec.states())
	assert.True(t, e.Controller().IsOpen())
}

func TestEngine_DragUpdateClampsAndTracks(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300})

	e.DragStart()
	e.DragUpdate(Offset{X: 30, Y: 20})
	assert.InDelta(t, 70, e.Height(), 0)

	e.DragUpdate(Offset{Y: 500})
	assert.InDelta(t, 300, e.Height(), 0)

	e.DragUpdate(Offset{Y: 10})
	assert.Equal(t, []float64{70, 300}, rec.heights(), "unchanged clamped height emits nothing")
	assert.Equal(t, PhaseDragging, e.Phase())
}

func TestEngine_DragBottomToTopNegates(t *testing.T) {
	e, _ := newTestEngine(t, Options{MinHeight: 0, MaxHeight: 100, Direction: BottomToTop})

	e.DragStart()
	e.DragUpdate(Offset{Y: -40})
	assert.InDelta(t, 40, e.Height(), 0)

	e.DragUpdate(Offset{Y: 15})
	assert.InDelta(t, 25, e.Height(), 0)
}

func TestEngine_DragReleaseSnapsToMax(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300})

	e.DragStart()
	e.DragUpdate(Offset{Y: 200})
	require.InDelta(t, 250, e.Height(), 0)

	e.DragEnd(Offset{})
	assert.Equal(t, []bool{true}, rec.states())
	assert.True(t, e.Controller().IsOpen())
	target, ok := e.Target()
	require.True(t, ok)
	assert.InDelta(t, 300, target, 0)

	settle(t, e)
	assert.InDelta(t, 300, e.Height(), settleEpsilon)
}

func TestEngine_SlowReleaseBelowMidpointSnapsToMin(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(300.0)})

	e.DragStart()
	e.DragUpdate(Offset{Y: -200})
	e.DragEnd(Offset{Y: -100})

	assert.Equal(t, []bool{false}, rec.states())
	settle(t, e)
	assert.InDelta(t, 50, e.Height(), settleEpsilon)
}

func TestEngine_FastFlickSnapsInVelocityDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		initial   float64
		velocity  Offset
		want      float64
		wantOpen  bool
	}{
		{"open flick below midpoint", TopToBottom, 60, Offset{Y: 800}, 300, true},
		{"close flick above midpoint", TopToBottom, 290, Offset{Y: -800}, 50, false},
		{"bottom sheet flick up opens", BottomToTop, 60, Offset{Y: -800}, 300, true},
		{"bottom sheet flick down closes", BottomToTop, 290, Offset{Y: 800}, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEngine(t, Options{
				MinHeight:     50,
				MaxHeight:     300,
				InitialHeight: ptr(tt.initial),
				Direction:     tt.direction,
			})

			e.DragStart()
			e.DragEnd(tt.velocity)
			settle(t, e)

			assert.InDelta(t, tt.want, e.Height(), settleEpsilon)
			assert.Equal(t, []bool{tt.wantOpen}, rec.states())
		})
	}
}

func TestEngine_SlowFlickUsesPosition(t *testing.T) {
	// 700 is below the 750 threshold: position decides, not velocity.
	e, _ := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(100.0)})

	e.DragStart()
	e.DragEnd(Offset{Y: 700})
	settle(t, e)

	assert.InDelta(t, 50, e.Height(), settleEpsilon)
}

func TestEngine_FreePositionRelease(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 0, MaxHeight: 100, Snap: FreePosition})

	e.DragStart()
	e.DragUpdate(Offset{Y: 30})
	e.DragEnd(Offset{Y: 5000})

	assert.InDelta(t, 30, e.Height(), 0)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.False(t, e.Tick())
	assert.Empty(t, rec.states(), "openness did not flip")

	e.DragStart()
	e.DragUpdate(Offset{Y: 40})
	e.DragEnd(Offset{})

	assert.InDelta(t, 70, e.Height(), 0)
	assert.Equal(t, []bool{true}, rec.states())
	assert.True(t, e.Controller().IsOpen())
	assert.False(t, e.Animating())
}

func TestEngine_HandleVisibilityNeverChangesState(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 0, MaxHeight: 100})
	c := e.Controller()

	c.Open()
	c.HideHandle()
	c.ShowHandle()
	c.Close()
	c.HideHandle()

	assert.Equal(t, []bool{true, false}, rec.states())
}

func TestEngine_SetBoundsReclampsWithoutAnimating(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(300.0)})

	require.NoError(t, e.SetBounds(50, 200))

	assert.InDelta(t, 200, e.Height(), 0)
	assert.Equal(t, []float64{200}, rec.heights())
	assert.False(t, e.Animating())
	assert.InDelta(t, 200, e.Controller().CurrentHeight(), 0)
}

func TestEngine_SetBoundsInsideRangeIsSilent(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(100.0)})

	require.NoError(t, e.SetBounds(0, 400))

	assert.Empty(t, rec.events)
	assert.InDelta(t, 400, e.MaxHeight(), 0)
	assert.InDelta(t, 0, e.MinHeight(), 0)
}

func TestEngine_SetBoundsRejectsInvalid(t *testing.T) {
	e, _ := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300})

	require.ErrorIs(t, e.SetBounds(100, 10), ErrMaxBelowMin)
	require.ErrorIs(t, e.SetBounds(-5, 10), ErrNegativeMinHeight)
	assert.InDelta(t, 300, e.MaxHeight(), 0)
}

func TestEngine_DragStartCancelsAnimation(t *testing.T) {
	e, _ := newTestEngine(t, Options{MinHeight: 0, MaxHeight: 100})

	e.Controller().Open()
	gen := e.Generation()
	e.Tick()
	e.Tick()
	mid := e.Height()

	e.DragStart()

	assert.Equal(t, PhaseDragging, e.Phase())
	assert.NotEqual(t, gen, e.Generation())
	assert.False(t, e.Tick())
	assert.InDelta(t, mid, e.Height(), 0)
}

func TestEngine_NewAnimationSupersedesOld(t *testing.T) {
	e, _ := newTestEngine(t, Options{MinHeight: 0, MaxHeight: 100})

	e.Controller().Open()
	first := e.Generation()
	e.Tick()
	e.Controller().Close()

	assert.NotEqual(t, first, e.Generation())
	target, ok := e.Target()
	require.True(t, ok)
	assert.InDelta(t, 0, target, 0)

	settle(t, e)
	assert.InDelta(t, 0, e.Height(), settleEpsilon)
}

func TestEngine_NotDraggable(t *testing.T) {
	e, rec := newTestEngine(t, Options{MinHeight: 0, MaxHeight: 100, Draggable: ptr(false)})

	e.DragStart()
	e.DragUpdate(Offset{Y: 80})
	e.DragEnd(Offset{Y: 5000})

	assert.InDelta(t, 0, e.Height(), 0)
	assert.Empty(t, rec.events)
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestEngine_SharedControllerOutlivesEngine(t *testing.T) {
	c := NewController(false)
	e, err := New(Options{MinHeight: 0, MaxHeight: 100, Ownership: SharedExternal, Controller: c})
	require.NoError(t, err)
	require.Equal(t, 1, c.ListenerCount())

	c.Open()
	assert.True(t, e.Animating())

	e.Close()
	assert.Equal(t, 0, c.ListenerCount())
	assert.Same(t, c, e.Controller())
	assert.False(t, e.Animating())

	c.Close()
	assert.False(t, e.Animating(), "closed engine ignores controller")
}

func TestEngine_CloseReleasesOwnedController(t *testing.T) {
	e, err := New(Options{MaxHeight: 100})
	require.NoError(t, err)

	e.Close()

	assert.Nil(t, e.Controller())
	e.DragStart()
	e.DragUpdate(Offset{Y: 10})
	e.DragEnd(Offset{})
	assert.InDelta(t, 0, e.Height(), 0)
}

func TestEngine_NormalizedVelocity(t *testing.T) {
	e, _ := newTestEngine(t, Options{MinHeight: 50, MaxHeight: 300, InitialHeight: ptr(100.0)})
	assert.InDelta(t, 6, e.normalizedVelocity(300, 1500), 1e-9)
	assert.InDelta(t, -6, e.normalizedVelocity(50, 1500), 1e-9)

	tiny, _ := newTestEngine(t, Options{MinHeight: 10, MaxHeight: 10.5})
	assert.InDelta(t, -1500, tiny.normalizedVelocity(10, 1500), 1e-9, "extent below 1 normalizes by 1")
}
