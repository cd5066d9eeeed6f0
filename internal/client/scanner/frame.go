package scanner

import (
	"context"
	"image"
	"sync"
)

// Frame is one image delivered by a Camera. Close must be called exactly
// once when the consumer is done with it; further calls are no-ops.
type Frame interface {
	Image() image.Image
	// Rotation is the clockwise rotation in degrees (0, 90, 180 or 270) that
	// turns the image upright.
	Rotation() int
	Close() error
}

// Analyzer receives frames from a Camera.
type Analyzer interface {
	Analyze(f Frame)
}

// Camera is a frame source.
type Camera interface {
	// Bind delivers frames to a until the source is exhausted or ctx is done.
	Bind(ctx context.Context, a Analyzer) error
	SetTorch(on bool) error
}

type imageFrame struct {
	img      image.Image
	rotation int
	once     sync.Once
	onClose  func()
}

// NewFrame wraps img. onClose, if not nil, runs on the first Close.
func NewFrame(img image.Image, rotation int, onClose func()) Frame {
	return &imageFrame{img: img, rotation: rotation, onClose: onClose}
}

func (f *imageFrame) Image() image.Image { return f.img }
func (f *imageFrame) Rotation() int      { return f.rotation }

func (f *imageFrame) Close() error {
	f.once.Do(func() {
		if f.onClose != nil {
			f.onClose()
		}
	})
	return nil
}
