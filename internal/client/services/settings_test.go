package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_LoadDefaults(t *testing.T) {
	svc := NewSettingsService(setupRepos(t).Preferences, logging.Nop{})

	st, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), st)
	assert.Equal(t, st, svc.Settings().Get())
}

func TestSettingsService_UpdatePersists(t *testing.T) {
	ctx := context.Background()
	repos := setupRepos(t)
	svc := NewSettingsService(repos.Preferences, logging.Nop{})

	st, err := svc.Update(ctx, func(s *models.Settings) {
		s.SoundEnabled = false
		s.VibrationIntensity = 0.25
		s.ThemeMode = models.ThemeDark
		s.SelectedSound = "Chime"
	})
	require.NoError(t, err)
	assert.False(t, st.SoundEnabled)
	assert.Equal(t, st, svc.Settings().Get())

	reloaded, err := NewSettingsService(repos.Preferences, logging.Nop{}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, reloaded)
}

func TestSettingsService_ConcurrentUpdatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	repos := setupRepos(t)
	svc := NewSettingsService(repos.Preferences, logging.Nop{})
	_, err := svc.Update(ctx, func(s *models.Settings) { s.VibrationIntensity = 0 })
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Update(ctx, func(s *models.Settings) { s.VibrationIntensity++ })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(n), svc.Settings().Get().VibrationIntensity)
	reloaded, err := NewSettingsService(repos.Preferences, logging.Nop{}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(n), reloaded.VibrationIntensity)
}

func TestSettingsService_FailedUpdateKeepsValue(t *testing.T) {
	ctx := context.Background()
	repos := setupRepos(t)
	svc := NewSettingsService(repos.Preferences, logging.Nop{})
	before, err := svc.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, repos.DB.Close())
	_, err = svc.Update(ctx, func(s *models.Settings) { s.SoundEnabled = !s.SoundEnabled })
	require.ErrorContains(t, err, "failed to save settings")
	assert.Equal(t, before, svc.Settings().Get())
}

func TestSettingsService_IgnoresCorruptValues(t *testing.T) {
	ctx := context.Background()
	repos := setupRepos(t)
	require.NoError(t, repos.Preferences.Set(ctx, models.KeySoundEnabled, []byte("maybe")))
	require.NoError(t, repos.Preferences.Set(ctx, models.KeyThemeMode, []byte("NEON")))
	require.NoError(t, repos.Preferences.Set(ctx, models.KeyScannerBrightness, []byte("0.9")))

	st, err := NewSettingsService(repos.Preferences, logging.Nop{}).Load(ctx)
	require.NoError(t, err)
	assert.True(t, st.SoundEnabled)
	assert.Equal(t, models.ThemeSystem, st.ThemeMode)
	assert.InDelta(t, 0.9, st.ScannerBrightness, 1e-9)
}

func TestLoadOrCreateAccountID(t *testing.T) {
	ctx := context.Background()
	repos := setupRepos(t)

	id, err := LoadOrCreateAccountID(ctx, repos.Preferences)
	require.NoError(t, err)
	assert.Len(t, id, 36)

	again, err := LoadOrCreateAccountID(ctx, repos.Preferences)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}
