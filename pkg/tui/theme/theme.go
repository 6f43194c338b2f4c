package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool
	// Text and Base are the hex colors a fading row blends between.
	Text string
	Base string

	Header HeaderTheme
	Form   FormTheme
	List   ListTheme
	Pager  PagerTheme
	Alert  AlertTheme
	Footer FooterTheme
}

// HeaderTheme styles the title and balance line.
type HeaderTheme struct {
	Title   lipgloss.Style
	Balance lipgloss.Style
	Loading lipgloss.Style
}

// FormTheme styles the create/edit form.
type FormTheme struct {
	Frame       lipgloss.Style
	FocusFrame  lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	ActiveLabel lipgloss.Style
	Locked      lipgloss.Style
	Choice      lipgloss.Style
}

// ListTheme styles the transaction rows.
type ListTheme struct {
	Row      lipgloss.Style
	Selected lipgloss.Style
	Detail   lipgloss.Style
	Deposit  lipgloss.Style
	Withdraw lipgloss.Style
	Empty    lipgloss.Style
	// Error is the banner shown in place of the rows after a failed read.
	Error    lipgloss.Style
}

// PagerTheme styles the pagination controls.
type PagerTheme struct {
	Page     lipgloss.Style
	Current  lipgloss.Style
	Disabled lipgloss.Style
}

// AlertTheme styles the blocking validation alert.
type AlertTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

type palette struct {
	text, base, muted, accent, positive, negative, alert string
}

// For returns the dark or light theme.
func For(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// Dark returns the theme for dark terminal backgrounds.
func Dark() Theme {
	t := build(palette{
		text:     "#E4E4E4",
		base:     "#1C1C1C",
		muted:    "#8A8A8A",
		accent:   "#FF87D7",
		positive: "#87D787",
		negative: "#FF8787",
		alert:    "#FFAF5F",
	})
	t.Dark = true
	return t
}

// Light returns the theme for light terminal backgrounds.
func Light() Theme {
	return build(palette{
		text:     "#262626",
		base:     "#FFFFFF",
		muted:    "#6C6C6C",
		accent:   "#AF005F",
		positive: "#008700",
		negative: "#D70000",
		alert:    "#AF5F00",
	})
}

func build(p palette) Theme {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(p.text))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.muted)).
		Padding(0, 1)

	return Theme{
		Text: p.text,
		Base: p.base,
		Header: HeaderTheme{
			Title:   accent,
			Balance: text.Bold(true),
			Loading: muted.Italic(true),
		},
		Form: FormTheme{
			Frame:       frame,
			FocusFrame:  frame.BorderForeground(lipgloss.Color(p.accent)),
			Title:       text.Bold(true),
			Label:       muted,
			ActiveLabel: accent,
			Locked:      muted.Italic(true),
			Choice:      text.Bold(true),
		},
		List: ListTheme{
			Row:      text,
			Selected: text.Reverse(true),
			Detail:   muted,
			Deposit:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.positive)),
			Withdraw: lipgloss.NewStyle().Foreground(lipgloss.Color(p.negative)),
			Empty:    muted.Italic(true),
			Error: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.negative)).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color(p.negative)).
				PaddingLeft(1),
		},
		Pager: PagerTheme{
			Page:     text,
			Current:  accent.Reverse(true),
			Disabled: muted.Faint(true),
		},
		Alert: AlertTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color(p.alert)).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Foreground(lipgloss.Color(p.alert)).Bold(true),
			Body:  text,
		},
		Footer: FooterTheme{
			Help:   muted,
			Status: muted,
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.negative)).Bold(true),
		},
	}
}
