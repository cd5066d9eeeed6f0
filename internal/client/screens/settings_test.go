package screens

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/services"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_SettersPersist(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	s := NewSettings(ctx, e.settings, "support@qrscanner.example", logging.Nop{})
	defer s.Close()

	require.NoError(t, s.SetVibrationEnabled(false))
	require.NoError(t, s.SetVibrationIntensity(1.7))
	require.NoError(t, s.SetSoundEnabled(false))
	require.NoError(t, s.SetSelectedSound("Chime"))
	require.NoError(t, s.SetAutoSaveEnabled(false))
	require.NoError(t, s.SetThemeMode(models.ThemeDark))
	require.NoError(t, s.SetScannerBrightness(-3))

	want := models.Settings{
		VibrationEnabled:   false,
		VibrationIntensity: 1,
		SoundEnabled:       false,
		SelectedSound:      "Chime",
		AutoSaveEnabled:    false,
		ThemeMode:          models.ThemeDark,
		ScannerBrightness:  0,
	}
	assert.Eventually(t, func() bool { return s.State().Settings == want }, waitFor, tick)

	stored, err := services.NewSettingsService(e.repos.Preferences, logging.Nop{}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, stored)
}

func TestSettings_UnknownSound(t *testing.T) {
	e := newEnv(t)
	s := NewSettings(context.Background(), e.settings, "x@y.z", logging.Nop{})
	defer s.Close()

	err := s.SetSelectedSound("Foghorn")
	require.ErrorIs(t, err, ErrUnknownSound)
	assert.Contains(t, s.State().Error, "Foghorn")
	assert.Equal(t, "Default", s.State().SelectedSound)
}

func TestSettings_SupportLink(t *testing.T) {
	e := newEnv(t)
	s := NewSettings(context.Background(), e.settings, "support@qrscanner.example", logging.Nop{})
	defer s.Close()

	assert.Equal(t, "mailto:support@qrscanner.example?subject=QR+Scanner+Support", s.SupportLink())
}
