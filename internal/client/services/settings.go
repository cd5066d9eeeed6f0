package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/observable"
)

// SettingsService persists user preferences and exposes them as an
// observable value. Missing or unparsable keys fall back to the defaults.
type SettingsService interface {
	Load(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error)
	Settings() observable.Readable[models.Settings]
}

type settingsService struct {
	repo     preferences.Repository
	logger   logging.Logger
	settings *observable.Value[models.Settings]

	// serialises Update so concurrent screens do not lose writes
	mu sync.Mutex
}

func NewSettingsService(repo preferences.Repository, logger logging.Logger) SettingsService {
	return &settingsService{
		repo:     repo,
		logger:   logger,
		settings: observable.New(models.DefaultSettings()),
	}
}

func (s *settingsService) Settings() observable.Readable[models.Settings] { return s.settings }

func (s *settingsService) Load(ctx context.Context) (models.Settings, error) {
	kv, err := s.repo.List(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	st := models.DefaultSettings()
	s.readBool(ctx, kv, models.KeyVibrationEnabled, &st.VibrationEnabled)
	s.readFloat(ctx, kv, models.KeyVibrationIntensity, &st.VibrationIntensity)
	s.readBool(ctx, kv, models.KeySoundEnabled, &st.SoundEnabled)
	s.readBool(ctx, kv, models.KeyAutoSaveEnabled, &st.AutoSaveEnabled)
	s.readFloat(ctx, kv, models.KeyScannerBrightness, &st.ScannerBrightness)
	if v, ok := kv[models.KeySelectedSound]; ok {
		st.SelectedSound = string(v)
	}
	if v, ok := kv[models.KeyThemeMode]; ok {
		if m, err := models.ParseThemeMode(string(v)); err == nil {
			st.ThemeMode = m
		} else {
			s.logger.Warn(ctx, "ignoring stored preference", "key", models.KeyThemeMode, "error", err)
		}
	}

	s.settings.Set(st)
	return st, nil
}

// Update applies fn to a copy of the current settings, persists every key and
// publishes the result. The published value is unchanged on error.
func (s *settingsService) Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.settings.Get()
	fn(&st)

	values := map[string][]byte{
		models.KeyVibrationEnabled:   []byte(strconv.FormatBool(st.VibrationEnabled)),
		models.KeyVibrationIntensity: []byte(strconv.FormatFloat(st.VibrationIntensity, 'f', -1, 64)),
		models.KeySoundEnabled:       []byte(strconv.FormatBool(st.SoundEnabled)),
		models.KeySelectedSound:      []byte(st.SelectedSound),
		models.KeyAutoSaveEnabled:    []byte(strconv.FormatBool(st.AutoSaveEnabled)),
		models.KeyThemeMode:          []byte(string(st.ThemeMode)),
		models.KeyScannerBrightness:  []byte(strconv.FormatFloat(st.ScannerBrightness, 'f', -1, 64)),
	}
	if err := s.repo.SetAll(ctx, values); err != nil {
		return s.settings.Get(), fmt.Errorf("failed to save settings: %w", err)
	}

	s.settings.Set(st)
	return st, nil
}

func (s *settingsService) readBool(ctx context.Context, kv map[string][]byte, key string, dst *bool) {
	v, ok := kv[key]
	if !ok {
		return
	}
	b, err := strconv.ParseBool(string(v))
	if err != nil {
		s.logger.Warn(ctx, "ignoring stored preference", "key", key, "error", err)
		return
	}
	*dst = b
}

func (s *settingsService) readFloat(ctx context.Context, kv map[string][]byte, key string, dst *float64) {
	v, ok := kv[key]
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		s.logger.Warn(ctx, "ignoring stored preference", "key", key, "error", err)
		return
	}
	*dst = f
}
