package domain

// AppSettings holds user-configurable settings.
type AppSettings struct {
	Search SearchSettings
	UI     UISettings
	Store  StoreSettings
}

// SearchSettings configures the search command.
type SearchSettings struct {
	// Limit caps the number of results printed. Zero means no limit.
	Limit int
}

// UISettings configures the interactive picker.
type UISettings struct {
	// Inline runs the picker without the alternate screen.
	Inline bool
}

// StoreSettings configures the alias store.
type StoreSettings struct {
	// Path overrides the alias store file. Empty selects the default
	// location in the configuration directory.
	Path string
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{}
}

// Validate checks the settings for values no command can honour.
func (s *AppSettings) Validate() error {
	if s.Search.Limit < 0 {
		return ErrInvalidInput
	}
	return nil
}
