package theme

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/store"
)

// Action is what to do with the display preference.
type Action string

const (
	Show   Action = ""
	Dark   Action = "dark"
	Light  Action = "light"
	Toggle Action = "toggle"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case Show, Dark, Light, Toggle:
		return a, nil
	}
	return "", fmt.Errorf("unknown theme %q, expected dark, light or toggle", s)
}

type Theme struct {
	Prefs  *store.Prefs
	Action Action
	JSON   bool
	Out    io.Writer
}

type state struct {
	Theme  string `json:"theme"`
	Stored bool   `json:"stored"`
}

func name(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func (n *Theme) Do(_ context.Context) error {
	if n.Prefs == nil {
		return errors.New("can not change theme, no preferences")
	}

	var err error
	switch n.Action {
	case Dark:
		err = n.Prefs.SetDarkMode(true)
	case Light:
		err = n.Prefs.SetDarkMode(false)
	case Toggle:
		_, err = n.Prefs.ToggleDarkMode()
	}
	if err != nil {
		return err
	}

	_, stored, err := n.Prefs.Stored()
	if err != nil {
		return err
	}
	st := state{Theme: name(n.Prefs.DarkMode()), Stored: stored}
	if n.JSON {
		return printers.JSON(n.Out, st)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if stored {
		pp.Notice("theme: %s", st.Theme)
	} else {
		pp.Notice("theme: %s (from terminal)", st.Theme)
	}
	return nil
}
