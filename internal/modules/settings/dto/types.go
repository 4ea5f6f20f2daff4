package dto

type SettingsOutput struct {
	RemindersEnabled            bool
	DarkModeEnabled             bool
	MotivationalMessagesEnabled bool
	QuickAddEnabled             bool
}

type UpdateInput struct {
	RemindersEnabled            bool
	DarkModeEnabled             bool
	MotivationalMessagesEnabled bool
	QuickAddEnabled             bool
}

type ToggleInput struct {
	Key     string
	Enabled bool
}
