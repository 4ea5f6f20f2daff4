package domain

import (
	sessiondomain "studytrack/internal/modules/session/domain"
	settingsdomain "studytrack/internal/modules/settings/domain"
)

// State is the single durable record. Every write replaces all of it.
type State struct {
	Sessions []sessiondomain.Session `json:"sessions"`
	Settings settingsdomain.Settings `json:"settings"`
}

func Default() State {
	return State{Sessions: []sessiondomain.Session{}, Settings: settingsdomain.Defaults()}
}

// Clone copies the session slice so callers can mutate it freely.
func (s State) Clone() State {
	sessions := make([]sessiondomain.Session, len(s.Sessions))
	copy(sessions, s.Sessions)
	return State{Sessions: sessions, Settings: s.Settings}
}
