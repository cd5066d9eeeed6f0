package screens

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/dmitrijs2005/qrscanner/internal/client/feedback"
	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/services"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

var ErrUnknownSound = errors.New("unknown sound")

type SettingsState struct {
	models.Settings
	Error string
}

type Settings struct {
	holder[SettingsState]
	settings     services.SettingsService
	supportEmail string
}

func NewSettings(ctx context.Context, settings services.SettingsService, supportEmail string, logger logging.Logger) *Settings {
	s := &Settings{
		holder: newHolder(ctx, SettingsState{Settings: settings.Settings().Get()}, logger.With("screen", "settings"),
			func(s SettingsState, err error) SettingsState { s.Error = err.Error(); return s }),
		settings:     settings,
		supportEmail: supportEmail,
	}
	collect(&s.holder, settings.Settings().Subscribe, func(st SettingsState, v models.Settings) SettingsState {
		st.Settings = v
		return st
	})
	return s
}

func (s *Settings) update(fn func(*models.Settings)) error {
	return s.run(func(ctx context.Context) error {
		_, err := s.settings.Update(ctx, fn)
		if err == nil {
			s.state.Update(func(st SettingsState) SettingsState { st.Error = ""; return st })
		}
		return err
	})
}

func (s *Settings) SetVibrationEnabled(on bool) error {
	return s.update(func(v *models.Settings) { v.VibrationEnabled = on })
}

// SetVibrationIntensity stores x clamped to [0, 1].
func (s *Settings) SetVibrationIntensity(x float64) error {
	return s.update(func(v *models.Settings) { v.VibrationIntensity = clamp01(x) })
}

func (s *Settings) SetSoundEnabled(on bool) error {
	return s.update(func(v *models.Settings) { v.SoundEnabled = on })
}

func (s *Settings) SetSelectedSound(name string) error {
	if !slices.Contains(feedback.Sounds, name) {
		return s.run(func(context.Context) error { return fmt.Errorf("%w: %s", ErrUnknownSound, name) })
	}
	return s.update(func(v *models.Settings) { v.SelectedSound = name })
}

func (s *Settings) SetAutoSaveEnabled(on bool) error {
	return s.update(func(v *models.Settings) { v.AutoSaveEnabled = on })
}

func (s *Settings) SetThemeMode(m models.ThemeMode) error {
	return s.update(func(v *models.Settings) { v.ThemeMode = m })
}

// SetScannerBrightness stores x clamped to [0, 1].
func (s *Settings) SetScannerBrightness(x float64) error {
	return s.update(func(v *models.Settings) { v.ScannerBrightness = clamp01(x) })
}

// SupportLink returns a mailto link for contacting support.
func (s *Settings) SupportLink() string {
	u := url.URL{
		Scheme:   "mailto",
		Opaque:   s.supportEmail,
		RawQuery: url.Values{"subject": {"QR Scanner Support"}}.Encode(),
	}
	return u.String()
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
