// Package sheetview renders a sheet.Engine as a Bubble Tea component and feeds
// it mouse drags and animation frames.
package sheetview

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/sheet"
	"github.com/llehouerou/sheet/internal/ui"
	"github.com/llehouerou/sheet/internal/ui/action"
	"github.com/llehouerou/sheet/internal/ui/layout"
)

// DefaultGripWidth is the width of the default handle grip in cells.
const DefaultGripWidth = 8

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// RenderFunc builds the text for a part of the sheet given its current
// height in rows and its width in cells.
type RenderFunc func(height float64, width int) string

// Options configures a Model.
type Options struct {
	Engine sheet.Options
	// Content renders the sheet body. Lines beyond the available rows are cut.
	Content RenderFunc
	// Handle renders the handle row. Defaults to a centered gradient grip.
	Handle    RenderFunc
	GripWidth int
}

// FrameMsg asks the sheet to sample its animation. Frames carry the
// generation of the simulation they were scheduled for.
type FrameMsg struct {
	id  int
	gen uint64
}

type dragState struct {
	active  bool
	x, y    int
	tracker sheet.VelocityTracker
}

// Model is the sheet component.
type Model struct {
	ui.Base
	id      int
	engine  *sheet.Engine
	content RenderFunc
	handle  RenderFunc
	grip    int

	drag dragState

	framePending bool
	frameGen     uint64

	pending []action.Action

	now      func() time.Time
	schedule func(time.Duration, FrameMsg) tea.Cmd
}

// New creates the component and its engine.
func New(opts Options) (*Model, error) {
	m := &Model{
		id:       nextID(),
		content:  opts.Content,
		handle:   opts.Handle,
		grip:     opts.GripWidth,
		now:      time.Now,
		schedule: tickFrame,
	}
	if m.grip <= 0 {
		m.grip = DefaultGripWidth
	}

	engineOpts := opts.Engine
	onState := engineOpts.OnStateChanged
	engineOpts.OnStateChanged = func(isOpen bool) {
		m.pending = append(m.pending, StateChanged{Open: isOpen})
		if onState != nil {
			onState(isOpen)
		}
	}

	engine, err := sheet.New(engineOpts)
	if err != nil {
		return nil, err
	}
	m.engine = engine
	return m, nil
}

func tickFrame(d time.Duration, msg FrameMsg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Engine exposes the underlying motion engine.
func (m *Model) Engine() *sheet.Engine { return m.engine }

// Controller exposes the controller the engine is bound to.
func (m *Model) Controller() *sheet.Controller { return m.engine.Controller() }

// Dragging reports whether a drag gesture is in progress.
func (m *Model) Dragging() bool { return m.drag.active }

// Init implements tea.Model-style initialization.
func (m *Model) Init() tea.Cmd {
	return m.sync()
}

// Close releases the engine.
func (m *Model) Close() {
	m.engine.Close()
}

// Do runs fn against the controller and returns the commands needed to
// animate the outcome and deliver emitted actions.
func (m *Model) Do(fn func(c *sheet.Controller)) tea.Cmd {
	fn(m.engine.Controller())
	return m.sync()
}

// SetBounds reconfigures the height range; see sheet.Engine.SetBounds.
func (m *Model) SetBounds(minHeight, maxHeight float64) (tea.Cmd, error) {
	if err := m.engine.SetBounds(minHeight, maxHeight); err != nil {
		return nil, err
	}
	return m.sync(), nil
}

func (m *Model) anchor() layout.Anchor {
	if m.engine.Direction() == sheet.BottomToTop {
		return layout.AnchorBottom
	}
	return layout.AnchorTop
}

// Rows is the number of container rows the sheet currently covers.
func (m *Model) Rows() int {
	return min(layout.SheetRows(m.engine.Height()), m.Height())
}

// Top is the first container row covered by the sheet.
func (m *Model) Top() int {
	return layout.SheetTop(m.anchor(), m.Rows(), m.Height())
}

// HandleRow is the container row of the handle, or -1 when it is hidden or
// the sheet is empty.
func (m *Model) HandleRow() int {
	c := m.engine.Controller()
	if c == nil || !c.IsHandleVisible() {
		return -1
	}
	return layout.HandleRow(m.anchor(), m.Rows(), m.Height())
}

// sync flushes queued actions and makes sure a frame is scheduled for the
// current simulation.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd
	for _, a := range m.pending {
		cmds = append(cmds, action.Cmd(Source, a))
	}
	m.pending = m.pending[:0]

	if m.engine.Animating() {
		gen := m.engine.Generation()
		if !m.framePending || m.frameGen != gen {
			m.framePending = true
			m.frameGen = gen
			cmds = append(cmds, m.schedule(m.engine.FrameInterval(), FrameMsg{id: m.id, gen: gen}))
		}
	}
	return tea.Batch(cmds...)
}
