// Package tui is the Bubble Tea front end of the ledger: a form, one page of
// transactions with edit and delete, numbered pagination and a status line.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/ledger/pkg/app"
	"tableflip.dev/ledger/pkg/errs"
	"tableflip.dev/ledger/pkg/store"
	"tableflip.dev/ledger/pkg/tui/theme"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeAlert
)

// Model contains UI state
type Model struct {
	svc    *app.Service
	b      backend
	ctx    context.Context
	cancel context.CancelFunc
	theme  theme.Theme
	mode   mode

	fields  []field
	inputs  []textinput.Model
	choices []int
	active  int
	// editKey is the record being edited, "" while creating.
	editKey string

	cursor int
	fading map[string]int
	alert  string
	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the Service.
func New(ctx context.Context, svc *app.Service) *Model {
	ctx, cancel := context.WithCancel(ctx)
	b := newBackend(svc)
	m := &Model{
		svc:    svc,
		b:      b,
		ctx:    ctx,
		cancel: cancel,
		theme:  theme.For(svc.Prefs.DarkMode()),
		mode:   modeList,
		fields: b.fields(),
		fading: make(map[string]int),
	}
	m.inputs = make([]textinput.Model, len(m.fields))
	m.choices = make([]int, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.placeholder
		ti.CharLimit = 128
		m.inputs[i] = ti
	}
	m.resetForm()
	m.status = "a add, e edit, d delete, ←/→ pages, t theme, q quit"
	return m
}

// Init loads the first page and, for the local ledger, watches the store.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadPage(0)}
	if m.b.local() {
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	}
	return tea.Batch(cmds...)
}

// Close stops the store watch.
func (m *Model) Close() {
	m.stopWatch()
	m.cancel()
}

// messages
type loadedMsg struct {
	page int
	err  error
}

type savedMsg struct {
	edit bool
	err  error
}

type deletedMsg struct {
	key string
	err error
}

type themeMsg struct {
	dark bool
	err  error
}

func (m *Model) loadPage(page int) tea.Cmd {
	ctx, b := m.ctx, m.b
	return func() tea.Msg {
		return loadedMsg{page: page, err: b.load(ctx, page)}
	}
}

func (m *Model) refresh() tea.Cmd {
	ctx, b := m.ctx, m.b
	return func() tea.Msg {
		return loadedMsg{page: b.page(), err: b.refresh(ctx)}
	}
}

func (m *Model) submit() tea.Cmd {
	ctx, b, key := m.ctx, m.b, m.editKey
	values := m.formValues()
	return func() tea.Msg {
		if key != "" {
			return savedMsg{edit: true, err: b.update(ctx, key, values)}
		}
		return savedMsg{err: b.create(ctx, values)}
	}
}

func (m *Model) deleteCmd(key string) tea.Cmd {
	ctx, b := m.ctx, m.b
	return func() tea.Msg {
		return deletedMsg{key: key, err: b.remove(ctx, key)}
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	prefs := m.svc.Prefs
	return func() tea.Msg {
		dark, err := prefs.ToggleDarkMode()
		return themeMsg{dark: dark, err: err}
	}
}

// Update handles messages and keybindings
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case loadedMsg:
		if msg.err != nil && !errs.IsTransport(msg.err) {
			m.status = errs.UserMessage(msg.err)
		}
		m.clampCursor()
	case savedMsg:
		m.handleSaved(msg)
	case deletedMsg:
		if msg.err == nil {
			m.status = "Deleted " + msg.key
		}
		m.clampCursor()
	case fadeMsg:
		if cmd := m.advanceFade(msg.key); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case themeMsg:
		if msg.err != nil {
			m.status = "ERR: theme " + msg.err.Error()
			break
		}
		m.theme = theme.For(msg.dark)
		if msg.dark {
			m.status = "Dark theme"
		} else {
			m.status = "Light theme"
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.refresh())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleSaved(msg savedMsg) {
	switch {
	case msg.err == nil:
		if msg.edit {
			m.status = "Updated " + m.editKey
		} else {
			m.status = "Added"
		}
		m.resetForm()
		m.setMode(modeList)
		m.clampCursor()
	case errs.IsValidation(msg.err):
		m.alert = errs.UserMessage(msg.err)
		m.setMode(modeAlert)
	default:
		// The form keeps its values so the user can correct and resend.
		m.status = "ERR: " + errs.UserMessage(msg.err)
	}
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		*cmds = append(*cmds, tea.Quit)
		return
	}
	switch m.mode {
	case modeAlert:
		m.handleAlertKey(msg)
	case modeForm:
		m.handleFormKey(msg, cmds)
	default:
		m.handleListKey(msg, cmds)
	}
}

func (m *Model) handleAlertKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "enter", "esc", "space", " ":
		m.alert = ""
		m.setMode(modeForm)
	}
}

func (m *Model) handleListKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		*cmds = append(*cmds, tea.Quit)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.b.rows())-1 {
			m.cursor++
		}
	case "left", "h", "pgup":
		if m.b.hasPrev() {
			m.cursor = 0
			*cmds = append(*cmds, m.loadPage(m.b.page()-1))
		}
	case "right", "l", "pgdown":
		if m.b.hasNext() {
			m.cursor = 0
			*cmds = append(*cmds, m.loadPage(m.b.page()+1))
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		if n <= m.b.totalPages() && n-1 != m.b.page() {
			m.cursor = 0
			*cmds = append(*cmds, m.loadPage(n-1))
		}
	case "a", "n", "tab":
		m.resetForm()
		m.setMode(modeForm)
		*cmds = append(*cmds, m.focusActive())
	case "e", "enter":
		if r, ok := m.selected(); ok && !m.isFading(r.key) {
			if m.openEdit(r.key) {
				*cmds = append(*cmds, m.focusActive())
			}
		}
	case "d", "x", "delete":
		if r, ok := m.selected(); ok {
			if cmd := m.startDelete(r.key); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		}
	case "t":
		*cmds = append(*cmds, m.toggleTheme())
	case "r":
		*cmds = append(*cmds, m.refresh())
	}
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.editKey != "" {
			m.status = "Edit cancelled"
		} else {
			m.status = "Add cancelled"
		}
		m.resetForm()
		m.setMode(modeList)
	case "enter":
		*cmds = append(*cmds, m.submit())
	case "tab", "down":
		m.moveField(1)
		*cmds = append(*cmds, m.focusActive())
	case "shift+tab", "up":
		m.moveField(-1)
		*cmds = append(*cmds, m.focusActive())
	case "left", "right":
		if m.fields[m.active].kind == choiceField {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			m.cycleChoice(step)
			return
		}
		fallthrough
	default:
		if m.fields[m.active].kind == textField {
			var cmd tea.Cmd
			m.inputs[m.active], cmd = m.inputs[m.active].Update(msg)
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) setMode(md mode) {
	m.mode = md
	if md != modeForm {
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
	}
}

// resetForm empties the form for a new record.
func (m *Model) resetForm() {
	m.editKey = ""
	m.setValues(m.b.defaults())
	m.active = 0
}

// openEdit prefills the form with the record's current fields.
func (m *Model) openEdit(key string) bool {
	values, ok := m.b.values(key)
	if !ok {
		return false
	}
	m.editKey = key
	m.setValues(values)
	m.active = 0
	if !m.editable(0) {
		m.moveField(1)
	}
	m.setMode(modeForm)
	m.status = "Editing " + key
	return true
}

func (m *Model) setValues(values []string) {
	for i, f := range m.fields {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		if f.kind == choiceField {
			m.choices[i] = 0
			for j, c := range f.choices {
				if c == v {
					m.choices[i] = j
				}
			}
			continue
		}
		m.inputs[i].Reset()
		m.inputs[i].SetValue(v)
		m.inputs[i].CursorEnd()
	}
}

func (m *Model) formValues() []string {
	values := make([]string, len(m.fields))
	for i, f := range m.fields {
		if f.kind == choiceField {
			values[i] = f.choices[m.choices[i]]
			continue
		}
		values[i] = strings.TrimSpace(m.inputs[i].Value())
	}
	return values
}

func (m *Model) editable(i int) bool {
	return m.editKey == "" || !m.fields[i].locked
}

// moveField steps to the next editable field, wrapping around.
func (m *Model) moveField(step int) {
	n := len(m.fields)
	for i := 1; i <= n; i++ {
		next := ((m.active+step*i)%n + n) % n
		if m.editable(next) {
			m.active = next
			return
		}
	}
}

func (m *Model) cycleChoice(step int) {
	if !m.editable(m.active) {
		return
	}
	n := len(m.fields[m.active].choices)
	m.choices[m.active] = ((m.choices[m.active]+step)%n + n) % n
}

func (m *Model) focusActive() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.fields[m.active].kind != textField {
		return nil
	}
	return tea.Batch(m.inputs[m.active].Focus(), textinput.Blink)
}

func (m *Model) selected() (row, bool) {
	rows := m.b.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.b.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) pageLabel() string {
	pages := m.b.totalPages()
	if pages == 0 {
		return "no pages"
	}
	return fmt.Sprintf("page %d of %d", m.b.page()+1, pages)
}
