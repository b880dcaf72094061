package application

// UpdateProfileCommand changes only the fields that are set.
type UpdateProfileCommand struct {
	DisplayName      *string
	LanguageCode     *string
	CountryCode      *string
	AnalyticsConsent *bool
}

func (c UpdateProfileCommand) Empty() bool {
	return c.DisplayName == nil && c.LanguageCode == nil && c.CountryCode == nil && c.AnalyticsConsent == nil
}

// UpdateSettingsCommand changes only the fields that are set. Volumes are
// clamped to [0, 1].
type UpdateSettingsCommand struct {
	MasterVolume *float64
	MusicVolume  *float64
	SFXVolume    *float64
	Vibration    *bool
}

func (c UpdateSettingsCommand) Empty() bool {
	return c.MasterVolume == nil && c.MusicVolume == nil && c.SFXVolume == nil && c.Vibration == nil
}
