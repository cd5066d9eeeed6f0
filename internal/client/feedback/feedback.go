// Package feedback produces the haptic and audible cue played after a
// successful scan.
package feedback

import (
	"context"
	"io"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

// Player emits scan feedback.
type Player interface {
	Vibrate(ctx context.Context, intensity float64)
	Beep(ctx context.Context, sound string)
}

const (
	vibrationDuration = 100 * time.Millisecond
	beepDuration      = 150 * time.Millisecond
)

// Sounds lists the selectable beep sounds.
var Sounds = []string{"Default", "Beep", "Chime", "Click"}

// Terminal rings the terminal bell for beeps and logs vibrations, which a
// terminal cannot render.
type Terminal struct {
	w      io.Writer
	logger logging.Logger
}

func NewTerminal(w io.Writer, logger logging.Logger) *Terminal {
	return &Terminal{w: w, logger: logger}
}

func (t *Terminal) Vibrate(ctx context.Context, intensity float64) {
	t.logger.Debug(ctx, "vibrate", "duration", vibrationDuration, "intensity", intensity)
}

func (t *Terminal) Beep(ctx context.Context, sound string) {
	if _, err := io.WriteString(t.w, "\a"); err != nil {
		t.logger.Debug(ctx, "beep failed", "error", err)
		return
	}
	t.logger.Debug(ctx, "beep", "sound", sound, "duration", beepDuration)
}
