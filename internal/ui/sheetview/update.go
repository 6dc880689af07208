package sheetview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/sheet"
)

// Update handles frames and mouse gestures.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != m.id {
			return nil
		}
		m.handleFrame(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m.sync()
}

func (m *Model) handleFrame(msg FrameMsg) {
	if msg.gen == m.frameGen {
		m.framePending = false
	}
	if msg.gen != m.engine.Generation() {
		return // superseded simulation
	}
	m.engine.Tick()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.engine.Draggable() {
			return
		}
		if row := m.HandleRow(); row < 0 || msg.Y != row {
			return
		}
		m.drag.active = true
		m.drag.x, m.drag.y = msg.X, msg.Y
		m.drag.tracker.Reset()
		m.drag.tracker.Add(m.now(), m.pointer(msg))
		m.engine.DragStart()

	case tea.MouseActionMotion:
		if !m.drag.active {
			return
		}
		dx, dy := msg.X-m.drag.x, msg.Y-m.drag.y
		m.drag.x, m.drag.y = msg.X, msg.Y
		m.drag.tracker.Add(m.now(), m.pointer(msg))
		if dx == 0 && dy == 0 {
			return
		}
		m.engine.DragUpdate(sheet.Offset{X: float64(dx), Y: float64(dy)})

	case tea.MouseActionRelease:
		if !m.drag.active {
			return
		}
		m.drag.active = false
		m.drag.tracker.Add(m.now(), m.pointer(msg))
		velocity := m.drag.tracker.Velocity()
		m.engine.DragEnd(velocity)

		v := velocity.Y
		if m.engine.Direction() == sheet.BottomToTop {
			v = -v
		}
		m.pending = append(m.pending, DragEnded{Height: m.engine.Height(), Velocity: v})
	}
}

func (m *Model) pointer(msg tea.MouseMsg) sheet.Offset {
	return sheet.Offset{X: float64(msg.X), Y: float64(msg.Y)}
}
