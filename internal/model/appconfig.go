package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	Theme            string   `json:"theme"` // "light", "dark", "system"
	ShowGrid         bool     `json:"show_grid"`
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentScenes     []string `json:"recent_scenes"`
	DefaultFontSize  float64  `json:"default_font_size"` // for new room labels
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:            "system",
		ShowGrid:         true,
		AutoSaveInterval: 0,
		RecentScenes:     []string{},
		DefaultFontSize:  12,
	}
}
