package driving

import "github.com/custodia-labs/runepick/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// SetSearchLimit updates the default result cap of the search command.
	SetSearchLimit(limit int) error

	// SetInline chooses whether the picker uses the alternate screen.
	SetInline(inline bool) error

	// SetStorePath overrides the alias store location. Empty restores
	// the default.
	SetStorePath(path string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
