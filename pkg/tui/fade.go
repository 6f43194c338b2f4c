package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// fadeDuration is how long a removed local row fades before it is deleted.
	fadeDuration = 300 * time.Millisecond
	fadeFrames   = 6
)

type fadeMsg struct {
	key string
}

func fadeTick(key string) tea.Cmd {
	return tea.Tick(fadeDuration/fadeFrames, func(time.Time) tea.Msg {
		return fadeMsg{key: key}
	})
}

// startDelete fades local rows out before deleting them. Remote rows are
// deleted at once.
func (m *Model) startDelete(key string) tea.Cmd {
	if !m.b.local() {
		return m.deleteCmd(key)
	}
	if m.isFading(key) {
		return nil
	}
	m.fading[key] = 0
	return fadeTick(key)
}

func (m *Model) advanceFade(key string) tea.Cmd {
	frame, ok := m.fading[key]
	if !ok {
		return nil
	}
	frame++
	if frame >= fadeFrames {
		delete(m.fading, key)
		return m.deleteCmd(key)
	}
	m.fading[key] = frame
	return fadeTick(key)
}

func (m *Model) isFading(key string) bool {
	_, ok := m.fading[key]
	return ok
}

// fadeStyle blends the text color toward the background for the frame.
func (m *Model) fadeStyle(key string) (lipgloss.Style, bool) {
	frame, ok := m.fading[key]
	if !ok {
		return lipgloss.Style{}, false
	}
	from, err := colorful.Hex(m.theme.Text)
	if err != nil {
		return lipgloss.Style{}, false
	}
	to, err := colorful.Hex(m.theme.Base)
	if err != nil {
		return lipgloss.Style{}, false
	}
	c := from.BlendLab(to, float64(frame+1)/float64(fadeFrames+1)).Clamped()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())), true
}
