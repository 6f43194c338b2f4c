package store

// Prefs reads and writes the display preference.
type Prefs struct {
	p       Persistence
	ambient func() bool
}

// NewPrefs returns the preferences stored in p. ambient supplies the dark mode
// value when none is stored; nil means light.
func NewPrefs(p Persistence, ambient func() bool) *Prefs {
	return &Prefs{p: p, ambient: ambient}
}

// DarkMode returns the stored preference, or the ambient one when nothing is
// stored or the stored value cannot be read.
func (pr *Prefs) DarkMode() bool {
	if dark, ok, err := pr.Stored(); err == nil && ok {
		return dark
	}
	return pr.Ambient()
}

// Stored returns the persisted preference and whether one exists.
func (pr *Prefs) Stored() (dark bool, ok bool, err error) {
	ok, err = pr.p.Load(KeyDarkMode, &dark)
	return dark, ok, err
}

func (pr *Prefs) Ambient() bool {
	if pr.ambient == nil {
		return false
	}
	return pr.ambient()
}

func (pr *Prefs) SetDarkMode(dark bool) error {
	return pr.p.Save(KeyDarkMode, dark)
}

// ToggleDarkMode flips and persists the current preference.
func (pr *Prefs) ToggleDarkMode() (bool, error) {
	dark := !pr.DarkMode()
	return dark, pr.SetDarkMode(dark)
}
