package domain

import (
	"fmt"
	"strings"
)

// Settings are independent process-wide toggles persisted next to sessions.
type Settings struct {
	RemindersEnabled            bool `json:"remindersEnabled"`
	DarkModeEnabled             bool `json:"darkModeEnabled"`
	MotivationalMessagesEnabled bool `json:"motivationalMessagesEnabled"`
	QuickAddEnabled             bool `json:"quickAddEnabled"`
}

func Defaults() Settings {
	return Settings{
		RemindersEnabled:            true,
		DarkModeEnabled:             false,
		MotivationalMessagesEnabled: true,
		QuickAddEnabled:             true,
	}
}

type Key string

const (
	KeyReminders            Key = "reminders"
	KeyDarkMode             Key = "dark-mode"
	KeyMotivationalMessages Key = "motivational-messages"
	KeyQuickAdd             Key = "quick-add"
)

var Keys = []Key{KeyReminders, KeyDarkMode, KeyMotivationalMessages, KeyQuickAdd}

func ParseKey(raw string) (Key, error) {
	key := Key(strings.ToLower(strings.TrimSpace(raw)))
	for _, k := range Keys {
		if k == key {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown setting %q", raw)
}

// With returns a copy of s with key set to enabled.
func (s Settings) With(key Key, enabled bool) Settings {
	switch key {
	case KeyReminders:
		s.RemindersEnabled = enabled
	case KeyDarkMode:
		s.DarkModeEnabled = enabled
	case KeyMotivationalMessages:
		s.MotivationalMessagesEnabled = enabled
	case KeyQuickAdd:
		s.QuickAddEnabled = enabled
	}
	return s
}

func (s Settings) Get(key Key) bool {
	switch key {
	case KeyReminders:
		return s.RemindersEnabled
	case KeyDarkMode:
		return s.DarkModeEnabled
	case KeyMotivationalMessages:
		return s.MotivationalMessagesEnabled
	case KeyQuickAdd:
		return s.QuickAddEnabled
	}
	return false
}
