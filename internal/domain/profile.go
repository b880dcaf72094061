package domain

import (
	"strings"
	"time"
)

const (
	DefaultLanguageCode      = "en"
	DefaultCountryCode       = "MX"
	CurrentSaveSchemaVersion = 1
)

type Profile struct {
	PlayerID          string    `json:"player_id" toml:"player_id" yaml:"player_id"`
	DisplayName       string    `json:"display_name" toml:"display_name" yaml:"display_name"`
	LanguageCode      string    `json:"language_code" toml:"language_code" yaml:"language_code"`
	CountryCode       string    `json:"country_code" toml:"country_code" yaml:"country_code"`
	CreatedAt         time.Time `json:"created_at" toml:"created_at" yaml:"created_at"`
	LastLoginAt       time.Time `json:"last_login_at" toml:"last_login_at" yaml:"last_login_at"`
	LastSaveAt        time.Time `json:"last_save_at" toml:"last_save_at" yaml:"last_save_at"`
	LastAppVersion    string    `json:"last_app_version" toml:"last_app_version" yaml:"last_app_version"`
	SaveSchemaVersion int       `json:"save_schema_version" toml:"save_schema_version" yaml:"save_schema_version"`
	AnalyticsConsent  bool      `json:"analytics_consent" toml:"analytics_consent" yaml:"analytics_consent"`
}

var (
	_ Initializer = (*Profile)(nil)
	_ SaveStamper = (*Profile)(nil)
)

func NewProfile() *Profile {
	return &Profile{
		LanguageCode:      DefaultLanguageCode,
		CountryCode:       DefaultCountryCode,
		SaveSchemaVersion: CurrentSaveSchemaVersion,
		AnalyticsConsent:  true,
	}
}

// EnsureInitialized assigns a player id and creation time on first boot and
// records the login.
func (p *Profile) EnsureInitialized(now time.Time, appVersion string, newID func() string) {
	if strings.TrimSpace(p.PlayerID) == "" && newID != nil {
		p.PlayerID = newID()
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = now.UTC()
	}

	p.LastAppVersion = appVersion
	p.LastLoginAt = now.UTC()
}

func (p *Profile) MarkSaved(now time.Time, appVersion string) {
	p.LastSaveAt = now.UTC()
	p.LastAppVersion = appVersion
}
