package scanner

import (
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrImage(t *testing.T, content string) image.Image {
	t.Helper()
	m, err := qrcode.NewQRCodeWriter().Encode(content, gozxing.BarcodeFormat_QR_CODE, 200, 200, nil)
	require.NoError(t, err)
	return m
}

func TestZXingDecoder_DecodesQR(t *testing.T) {
	d := NewZXingDecoder()

	codes, err := d.Decode(NewFrame(qrImage(t, "WIFI:S:home;T:WPA;P:pw;;"), 0, nil))
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "WIFI:S:home;T:WPA;P:pw;;", codes[0].Text)
	assert.Equal(t, KindWiFi, codes[0].Kind)
}

func TestZXingDecoder_RotatedFrame(t *testing.T) {
	d := NewZXingDecoder()
	sideways := Rotate(qrImage(t, "https://example.com"), 90)

	codes, err := d.Decode(NewFrame(sideways, 270, nil))
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, KindURL, codes[0].Kind)
}

func TestZXingDecoder_NoCode(t *testing.T) {
	d := NewZXingDecoder()
	blank := image.NewGray(image.Rect(0, 0, 100, 100))
	for i := range blank.Pix {
		blank.Pix[i] = 0xff
	}

	codes, err := d.Decode(NewFrame(blank, 0, nil))
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestRotate(t *testing.T) {
	// 2x1: red at (0,0), blue at (1,0)
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	src.Set(0, 0, red)
	src.Set(1, 0, blue)

	r90 := Rotate(src, 90)
	require.Equal(t, image.Rect(0, 0, 1, 2), r90.Bounds())
	assert.Equal(t, red, r90.At(0, 0))
	assert.Equal(t, blue, r90.At(0, 1))

	r180 := Rotate(src, 180)
	assert.Equal(t, blue, r180.At(0, 0))
	assert.Equal(t, red, r180.At(1, 0))

	r270 := Rotate(src, 270)
	assert.Equal(t, blue, r270.At(0, 0))
	assert.Equal(t, red, r270.At(0, 1))

	assert.Same(t, src, Rotate(src, 0))
	assert.Same(t, src, Rotate(src, 45))
	assert.Equal(t, r90.Bounds(), Rotate(src, -270).Bounds())
}
