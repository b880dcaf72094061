package domain

type Settings struct {
	MasterVolume float64 `json:"master_volume" toml:"master_volume" yaml:"master_volume"`
	MusicVolume  float64 `json:"music_volume" toml:"music_volume" yaml:"music_volume"`
	SFXVolume    float64 `json:"sfx_volume" toml:"sfx_volume" yaml:"sfx_volume"`
	Vibration    bool    `json:"vibration" toml:"vibration" yaml:"vibration"`
}

func NewSettings() *Settings {
	return &Settings{
		MasterVolume: 1,
		MusicVolume:  0.8,
		SFXVolume:    0.8,
		Vibration:    true,
	}
}

// Clamp keeps every volume within [0, 1].
func (s *Settings) Clamp() {
	s.MasterVolume = clampUnit(s.MasterVolume)
	s.MusicVolume = clampUnit(s.MusicVolume)
	s.SFXVolume = clampUnit(s.SFXVolume)
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
