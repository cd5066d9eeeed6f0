package screens

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/qrscanner/internal/client/feedback"
	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/services"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

// Torch is the flashlight control of the running capture pipeline.
type Torch interface {
	ToggleTorch() bool
}

type ScannerState struct {
	LastScanned  *models.ScannedCode
	Error        string
	FlashlightOn bool
	SoundEnabled bool
}

// SaveError reports a scan that could not be stored.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "failed to save scan: " + e.Err.Error() }
func (e *SaveError) Unwrap() error { return e.Err }

// scannerError renders err as the message shown on the scanner screen.
func scannerError(st ScannerState, err error) ScannerState {
	var se *SaveError
	if errors.As(err, &se) {
		st.Error = "Failed to save scan: " + se.Err.Error()
		return st
	}
	st.Error = err.Error()
	return st
}

type Scanner struct {
	holder[ScannerState]
	scans    services.ScanService
	settings services.SettingsService
	player   feedback.Player
	torch    Torch
}

func NewScanner(ctx context.Context, scans services.ScanService, settings services.SettingsService,
	player feedback.Player, torch Torch, logger logging.Logger) *Scanner {
	s := &Scanner{
		holder: newHolder(ctx, ScannerState{SoundEnabled: settings.Settings().Get().SoundEnabled},
			logger.With("screen", "scanner"), scannerError),
		scans:    scans,
		settings: settings,
		player:   player,
		torch:    torch,
	}

	collect(&s.holder, settings.Settings().Subscribe, func(st ScannerState, v models.Settings) ScannerState {
		st.SoundEnabled = v.SoundEnabled
		return st
	})
	return s
}

// OnCodeDetected handles a decoded code. The same content is ignored until
// ClearLastScanned is called, so a code held in front of the camera is saved
// once. A code whose save failed is not remembered and is retried on the
// next detection.
func (s *Scanner) OnCodeDetected(code models.ScannedCode) error {
	return s.run(func(ctx context.Context) error {
		if last := s.state.Get().LastScanned; last != nil && last.Content == code.Content {
			return nil
		}

		prefs := s.settings.Settings().Get()
		if prefs.AutoSaveEnabled {
			if _, err := s.scans.Save(ctx, code); err != nil {
				s.logger.Error(ctx, "failed to save scan", "error", err)
				return &SaveError{Err: err}
			}
		}

		c := code
		s.state.Update(func(st ScannerState) ScannerState {
			st.LastScanned = &c
			st.Error = ""
			return st
		})

		if prefs.VibrationEnabled {
			s.player.Vibrate(ctx, prefs.VibrationIntensity)
		}
		if s.state.Get().SoundEnabled {
			s.player.Beep(ctx, prefs.SelectedSound)
		}
		return nil
	})
}

func (s *Scanner) ToggleFlashlight() error {
	return s.run(func(context.Context) error {
		on := s.torch.ToggleTorch()
		s.state.Update(func(st ScannerState) ScannerState { st.FlashlightOn = on; return st })
		return nil
	})
}

// ToggleSound flips the beep preference and persists it.
func (s *Scanner) ToggleSound() error {
	return s.run(func(ctx context.Context) error {
		st, err := s.settings.Update(ctx, func(v *models.Settings) { v.SoundEnabled = !v.SoundEnabled })
		if err != nil {
			return err
		}
		s.state.Update(func(cur ScannerState) ScannerState { cur.SoundEnabled = st.SoundEnabled; return cur })
		return nil
	})
}

// Save stores the last scanned code. Used when auto-save is off.
func (s *Scanner) Save() (*models.ScanRecord, error) {
	var rec *models.ScanRecord
	err := s.run(func(ctx context.Context) error {
		last := s.state.Get().LastScanned
		if last == nil {
			return nil
		}
		var err error
		rec, err = s.scans.Save(ctx, *last)
		if err != nil {
			return &SaveError{Err: err}
		}
		s.state.Update(func(st ScannerState) ScannerState { st.Error = ""; return st })
		return nil
	})
	return rec, err
}

func (s *Scanner) ClearLastScanned() error {
	return s.run(func(context.Context) error {
		s.state.Update(func(st ScannerState) ScannerState {
			st.LastScanned = nil
			st.Error = ""
			return st
		})
		return nil
	})
}
