package services

import (
	"fmt"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
	"github.com/custodia-labs/runepick/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySearchLimit = "search.limit"
	keyUIInline    = "ui.inline"
	keyStorePath   = "store.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Search: domain.SearchSettings{
			Limit: s.getInt(keySearchLimit, defaults.Search.Limit),
		},
		UI: domain.UISettings{
			Inline: s.getBool(keyUIInline, defaults.UI.Inline),
		},
		Store: domain.StoreSettings{
			Path: s.getString(keyStorePath, defaults.Store.Path),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("search limit %d: %w", settings.Search.Limit, err)
	}

	if err := s.configStore.Set(keySearchLimit, settings.Search.Limit); err != nil {
		return fmt.Errorf("failed to save search limit: %w", err)
	}
	if err := s.configStore.Set(keyUIInline, settings.UI.Inline); err != nil {
		return fmt.Errorf("failed to save inline mode: %w", err)
	}
	if err := s.configStore.Set(keyStorePath, settings.Store.Path); err != nil {
		return fmt.Errorf("failed to save store path: %w", err)
	}
	return nil
}

// SetSearchLimit updates the default result cap.
func (s *SettingsService) SetSearchLimit(limit int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Search.Limit = limit
	return s.Save(settings)
}

// SetInline updates the picker screen mode.
func (s *SettingsService) SetInline(inline bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.UI.Inline = inline
	return s.Save(settings)
}

// SetStorePath updates the alias store location.
func (s *SettingsService) SetStorePath(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Store.Path = path
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return defaultVal
}
