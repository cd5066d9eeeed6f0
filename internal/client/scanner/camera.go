package scanner

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif"}

func isImageFile(name string) bool {
	return slices.Contains(imageExts, strings.ToLower(filepath.Ext(name)))
}

// LoadImage decodes a PNG, JPEG or GIF file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ImageCamera emits a fixed list of images once. The next image is handed
// out only after the previous frame has been closed, so none is dropped.
type ImageCamera struct {
	images   []image.Image
	rotation int
	logger   logging.Logger
}

func NewImageCamera(logger logging.Logger, rotation int, images ...image.Image) *ImageCamera {
	return &ImageCamera{images: images, rotation: rotation, logger: logger}
}

func (c *ImageCamera) Bind(ctx context.Context, a Analyzer) error {
	for _, img := range c.images {
		released := make(chan struct{})
		a.Analyze(NewFrame(img, c.rotation, func() { close(released) }))

		select {
		case <-released:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (c *ImageCamera) SetTorch(on bool) error {
	c.logger.Debug(context.Background(), "torch", "on", on)
	return nil
}

// DirCamera watches a directory and emits every new image file that appears
// in it as a frame. It behaves like a live feed: frames are produced at the
// poll rate whether or not the previous one has been analyzed.
type DirCamera struct {
	dir      string
	interval time.Duration
	logger   logging.Logger
	seen     map[string]time.Time
}

func NewDirCamera(dir string, interval time.Duration, logger logging.Logger) *DirCamera {
	return &DirCamera{dir: dir, interval: interval, logger: logger, seen: make(map[string]time.Time)}
}

func (c *DirCamera) Bind(ctx context.Context, a Analyzer) error {
	if _, err := os.Stat(c.dir); err != nil {
		return fmt.Errorf("frame directory: %w", err)
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.poll(ctx, a)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *DirCamera) poll(ctx context.Context, a Analyzer) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.logger.Warn(ctx, "failed to read frame directory", "dir", c.dir, "error", err)
		return
	}

	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mod, ok := c.seen[e.Name()]; ok && !info.ModTime().After(mod) {
			continue
		}
		c.seen[e.Name()] = info.ModTime()

		path := filepath.Join(c.dir, e.Name())
		img, err := LoadImage(path)
		if err != nil {
			c.logger.Warn(ctx, "skipping unreadable frame", "path", path, "error", err)
			continue
		}
		a.Analyze(NewFrame(img, 0, nil))
	}
}

func (c *DirCamera) SetTorch(on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	c.logger.Info(context.Background(), "torch switched "+state, "dir", c.dir)
	return nil
}
