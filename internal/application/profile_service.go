package application

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/ports"
)

// ProfileService edits the player profile and settings held by a data
// lifecycle service. Every change is saved immediately as a checkpoint.
type ProfileService struct {
	lifecycle *DataLifecycleService
	profile   *domain.Profile
	settings  *domain.Settings
}

func NewProfileService(lifecycle *DataLifecycleService, profile *domain.Profile, settings *domain.Settings) *ProfileService {
	return &ProfileService{lifecycle: lifecycle, profile: profile, settings: settings}
}

// PlayerObjects is the slot layout of the player save: profile first, then
// settings.
func PlayerObjects(profile *domain.Profile, settings *domain.Settings) ports.ObjectSource {
	return ports.ObjectSourceFunc(func() []any {
		return []any{profile, settings}
	})
}

func (s *ProfileService) Status() ProfileStatus {
	return ProfileStatus{
		Profile:  *s.profile,
		Settings: *s.settings,
		FileName: s.lifecycle.FileName(),
	}
}

func (s *ProfileService) UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) (domain.Profile, error) {
	next := *s.profile

	if cmd.DisplayName != nil {
		name := strings.TrimSpace(*cmd.DisplayName)
		if name == "" {
			return domain.Profile{}, fmt.Errorf("%w: display name is empty", domain.ErrInvalidProfileField)
		}
		next.DisplayName = name
	}

	if cmd.LanguageCode != nil {
		code, err := normalizeCode(*cmd.LanguageCode, "language code")
		if err != nil {
			return domain.Profile{}, err
		}
		next.LanguageCode = strings.ToLower(code)
	}

	if cmd.CountryCode != nil {
		code, err := normalizeCode(*cmd.CountryCode, "country code")
		if err != nil {
			return domain.Profile{}, err
		}
		next.CountryCode = strings.ToUpper(code)
	}

	if cmd.AnalyticsConsent != nil {
		next.AnalyticsConsent = *cmd.AnalyticsConsent
	}

	restore := s.snapshot()
	*s.profile = next
	if err := s.lifecycle.HandleSignal(ctx, domain.SignalCheckpoint); err != nil {
		restore()
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	return *s.profile, nil
}

func (s *ProfileService) UpdateSettings(ctx context.Context, cmd UpdateSettingsCommand) (domain.Settings, error) {
	restore := s.snapshot()

	if cmd.MasterVolume != nil {
		s.settings.MasterVolume = *cmd.MasterVolume
	}
	if cmd.MusicVolume != nil {
		s.settings.MusicVolume = *cmd.MusicVolume
	}
	if cmd.SFXVolume != nil {
		s.settings.SFXVolume = *cmd.SFXVolume
	}
	if cmd.Vibration != nil {
		s.settings.Vibration = *cmd.Vibration
	}
	s.settings.Clamp()

	if err := s.lifecycle.HandleSignal(ctx, domain.SignalCheckpoint); err != nil {
		restore()
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	return *s.settings, nil
}

// snapshot captures both player objects. A checkpoint stamps the profile
// before writing, so a failed save must roll back the stamp as well.
func (s *ProfileService) snapshot() func() {
	profile, settings := *s.profile, *s.settings
	return func() {
		*s.profile = profile
		*s.settings = settings
	}
}

// normalizeCode accepts two or three ASCII letters.
func normalizeCode(raw, field string) (string, error) {
	code := strings.TrimSpace(raw)
	if len(code) < 2 || len(code) > 3 {
		return "", fmt.Errorf("%w: %s %q must be 2 or 3 letters", domain.ErrInvalidProfileField, field, raw)
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %s %q must be 2 or 3 letters", domain.ErrInvalidProfileField, field, raw)
		}
	}
	return code, nil
}
