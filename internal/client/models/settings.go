package models

import (
	"errors"
	"fmt"
)

type ThemeMode string

const (
	ThemeLight  ThemeMode = "LIGHT"
	ThemeDark   ThemeMode = "DARK"
	ThemeSystem ThemeMode = "SYSTEM"
)

var ErrUnknownThemeMode = errors.New("unknown theme mode")

func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(s); m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownThemeMode, s)
}

// Settings are the user's feedback and display preferences.
type Settings struct {
	VibrationEnabled   bool
	VibrationIntensity float64
	SoundEnabled       bool
	SelectedSound      string
	AutoSaveEnabled    bool
	ThemeMode          ThemeMode
	ScannerBrightness  float64
}

func DefaultSettings() Settings {
	return Settings{
		VibrationEnabled:   true,
		VibrationIntensity: 0.5,
		SoundEnabled:       true,
		SelectedSound:      "Default",
		AutoSaveEnabled:    true,
		ThemeMode:          ThemeSystem,
		ScannerBrightness:  0.7,
	}
}

// Preference store keys.
const (
	KeyVibrationEnabled   = "vibration_enabled"
	KeyVibrationIntensity = "vibration_intensity"
	KeySoundEnabled       = "sound_enabled"
	KeySelectedSound      = "selected_sound"
	KeyAutoSaveEnabled    = "auto_save_enabled"
	KeyThemeMode          = "theme_mode"
	KeyScannerBrightness  = "scanner_brightness"
	KeyAccountID          = "account_id"
)
