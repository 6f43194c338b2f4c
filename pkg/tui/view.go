package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

const (
	minTitleWidth = 12
	maxTitleWidth = 48
	ellipsis      = "…"
)

// View renders header, form or alert, the page of rows, pagination and status.
func (m *Model) View() string {
	th := m.theme
	parts := []string{m.viewHeader()}
	if m.mode == modeAlert {
		parts = append(parts, m.viewAlert())
	} else {
		parts = append(parts, m.viewForm())
	}
	parts = append(parts, m.viewRows(), m.viewPager())

	status := th.Footer.Status.Render(m.status)
	if e := m.b.err(); e != "" && !m.errorBanner() {
		status = th.Footer.Error.Render("ERR: " + e)
	}
	parts = append(parts, status, th.Footer.Help.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) viewHeader() string {
	th := m.theme.Header
	line := th.Title.Render("Ledger") + "  " + th.Balance.Render(m.b.header())
	if m.b.loading() {
		line += "  " + th.Loading.Render("loading…")
	}
	return line
}

func (m *Model) viewForm() string {
	th := m.theme.Form
	title := "New transaction"
	if m.editKey != "" {
		title = "Edit transaction " + m.editKey
	}
	lines := []string{th.Title.Render(title)}
	for i, f := range m.fields {
		label := th.Label
		if m.mode == modeForm && i == m.active {
			label = th.ActiveLabel
		}
		var value string
		switch {
		case !m.editable(i):
			value = th.Locked.Render(m.formValues()[i])
		case f.kind == choiceField:
			value = "‹ " + th.Choice.Render(f.choices[m.choices[i]]) + " ›"
		default:
			value = m.inputs[i].View()
		}
		lines = append(lines, label.Render(padding.String(f.label, 16))+value)
	}
	frame := th.Frame
	if m.mode == modeForm {
		frame = th.FocusFrame
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewAlert() string {
	th := m.theme.Alert
	body := lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render("Invalid transaction"),
		th.Body.Render(m.alert),
		"",
		th.Body.Render("enter to dismiss"),
	)
	return th.Frame.Render(body)
}

// titleWidth leaves room for the detail and amount columns.
func (m *Model) titleWidth() int {
	w := maxTitleWidth
	if m.termWidth > 0 {
		w = m.termWidth - 50
	}
	if w < minTitleWidth {
		w = minTitleWidth
	}
	if w > maxTitleWidth {
		w = maxTitleWidth
	}
	return w
}

// errorBanner reports whether a failed read left the list empty, so the
// error takes the place of the rows.
func (m *Model) errorBanner() bool {
	return !m.b.loading() && m.b.err() != "" && len(m.b.rows()) == 0
}

func (m *Model) viewRows() string {
	th := m.theme.List
	if m.b.loading() {
		return th.Empty.Render("  loading transactions…")
	}
	if m.errorBanner() {
		return th.Error.Render(m.b.err())
	}
	rows := m.b.rows()
	if len(rows) == 0 {
		return th.Empty.Render("  no transactions")
	}
	w := m.titleWidth()
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		title := padding.String(truncate.StringWithTail(r.title, uint(w), ellipsis), uint(w))
		marker := "  "
		if i == m.cursor && m.mode == modeList {
			marker = "» "
		}
		if fade, ok := m.fadeStyle(r.key); ok {
			lines = append(lines, fade.Render(marker+title+"  "+r.detail+"  "+r.amount))
			continue
		}
		amount := th.Deposit
		if r.negative {
			amount = th.Withdraw
		}
		text := th.Row
		if i == m.cursor && m.mode == modeList {
			text = th.Selected
		}
		lines = append(lines, text.Render(marker+title)+"  "+th.Detail.Render(r.detail)+"  "+amount.Render(r.amount))
	}
	return strings.Join(lines, "\n")
}

// viewPager renders prev, page numbers and next. Prev and next are dimmed at
// the ends.
func (m *Model) viewPager() string {
	th := m.theme.Pager
	pages := m.b.totalPages()
	if pages == 0 {
		return th.Disabled.Render(m.pageLabel())
	}
	prev := th.Page.Render("‹ prev")
	if !m.b.hasPrev() {
		prev = th.Disabled.Render("‹ prev")
	}
	next := th.Page.Render("next ›")
	if !m.b.hasNext() {
		next = th.Disabled.Render("next ›")
	}
	nums := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		label := fmt.Sprintf(" %d ", i+1)
		if i == m.b.page() {
			nums = append(nums, th.Current.Render(label))
		} else {
			nums = append(nums, th.Page.Render(label))
		}
	}
	return prev + " " + strings.Join(nums, "") + " " + next
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeForm:
		return "tab/↑/↓ field, ←/→ choose, enter save, esc cancel"
	case modeAlert:
		return "enter dismiss"
	}
	return "j/k move, a add, e edit, d delete, ←/→ or 1-9 page, t theme, r reload, q quit · " + m.pageLabel()
}
