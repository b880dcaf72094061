package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (*ProfileService, *mocks.MockSaveService, *domain.Profile, *domain.Settings) {
	t.Helper()

	profile := domain.NewProfile()
	settings := domain.NewSettings()
	saves := mocks.NewMockSaveService(t)
	lifecycle := newLifecycle(saves, PlayerObjects(profile, settings), DefaultLifecycleOptions())
	return NewProfileService(lifecycle, profile, settings), saves, profile, settings
}

func ptr[T any](v T) *T { return &v }

func TestUpdateProfileNormalizesAndSaves(t *testing.T) {
	t.Parallel()

	svc, saves, profile, _ := newProfileService(t)
	saves.EXPECT().SaveMany(mockAnyContext(), mock.Anything, "playerdata.json", true).Return(nil).Once()

	got, err := svc.UpdateProfile(context.Background(), UpdateProfileCommand{
		DisplayName:      ptr("  Ada  "),
		LanguageCode:     ptr("ES"),
		CountryCode:      ptr("ar"),
		AnalyticsConsent: ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", got.DisplayName)
	assert.Equal(t, "es", got.LanguageCode)
	assert.Equal(t, "AR", got.CountryCode)
	assert.False(t, got.AnalyticsConsent)
	assert.Equal(t, *profile, got)
	assert.Equal(t, fixedNow, got.LastSaveAt)
}

func TestUpdateProfileRejectsInvalidFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  UpdateProfileCommand
	}{
		{name: "blank name", cmd: UpdateProfileCommand{DisplayName: ptr("   ")}},
		{name: "long language", cmd: UpdateProfileCommand{LanguageCode: ptr("english")}},
		{name: "digit country", cmd: UpdateProfileCommand{CountryCode: ptr("M1")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _, profile, _ := newProfileService(t)
			_, err := svc.UpdateProfile(context.Background(), tt.cmd)
			require.ErrorIs(t, err, domain.ErrInvalidProfileField)
			assert.Equal(t, *domain.NewProfile(), *profile)
		})
	}
}

func TestUpdateProfileRestoresOnSaveFailure(t *testing.T) {
	t.Parallel()

	svc, saves, profile, _ := newProfileService(t)
	saves.EXPECT().SaveMany(mockAnyContext(), mock.Anything, "playerdata.json", true).Return(errors.New("disk full")).Once()

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileCommand{DisplayName: ptr("Ada")})
	require.Error(t, err)
	assert.Empty(t, profile.DisplayName)
	assert.True(t, profile.LastSaveAt.IsZero())
}

func TestUpdateSettingsClampsAndSaves(t *testing.T) {
	t.Parallel()

	svc, saves, _, settings := newProfileService(t)
	saves.EXPECT().SaveMany(mockAnyContext(), mock.Anything, "playerdata.json", true).Return(nil).Once()

	got, err := svc.UpdateSettings(context.Background(), UpdateSettingsCommand{
		MasterVolume: ptr(1.5),
		SFXVolume:    ptr(-0.2),
		Vibration:    ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, got.MasterVolume)
	assert.Equal(t, 0.8, got.MusicVolume)
	assert.Equal(t, 0.0, got.SFXVolume)
	assert.False(t, got.Vibration)
	assert.Equal(t, *settings, got)
}

func TestUpdateSettingsRestoresOnSaveFailure(t *testing.T) {
	t.Parallel()

	svc, saves, profile, settings := newProfileService(t)
	saves.EXPECT().SaveMany(mockAnyContext(), mock.Anything, "playerdata.json", true).
		Run(func(_ context.Context, objects []any, _ string, _ bool) {
			stamped := objects[0].(*domain.Profile)
			assert.Equal(t, fixedNow, stamped.LastSaveAt)
			assert.Equal(t, "1.2.3", stamped.LastAppVersion)
		}).
		Return(errors.New("disk full")).Once()

	_, err := svc.UpdateSettings(context.Background(), UpdateSettingsCommand{MasterVolume: ptr(0.1)})
	require.Error(t, err)
	assert.ErrorContains(t, err, "save settings")

	assert.Equal(t, *domain.NewSettings(), *settings)
	assert.True(t, profile.LastSaveAt.IsZero())
	assert.Empty(t, profile.LastAppVersion)
}

func TestStatusReportsCurrentState(t *testing.T) {
	t.Parallel()

	svc, _, profile, _ := newProfileService(t)
	profile.DisplayName = "Ada"

	status := svc.Status()
	assert.Equal(t, "Ada", status.Profile.DisplayName)
	assert.Equal(t, "playerdata.json", status.FileName)
	assert.Equal(t, *domain.NewSettings(), status.Settings)
}

func TestCommandEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, UpdateProfileCommand{}.Empty())
	assert.False(t, UpdateProfileCommand{AnalyticsConsent: ptr(true)}.Empty())
	assert.True(t, UpdateSettingsCommand{}.Empty())
	assert.False(t, UpdateSettingsCommand{Vibration: ptr(true)}.Empty())
}
