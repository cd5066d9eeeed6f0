package scanner

import (
	"errors"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Decoder finds barcodes in a frame. A frame without a code yields an empty
// slice and no error.
type Decoder interface {
	Decode(f Frame) ([]Barcode, error)
}

// ZXingDecoder decodes QR codes with gozxing.
type ZXingDecoder struct {
	reader gozxing.Reader
	hints  map[gozxing.DecodeHintType]interface{}
}

func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		reader: qrcode.NewQRCodeReader(),
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

func (d *ZXingDecoder) Decode(f Frame) ([]Barcode, error) {
	img := Rotate(f.Image(), f.Rotation())

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, err
	}

	res, err := d.reader.Decode(bmp, d.hints)
	if err != nil {
		var re gozxing.ReaderException
		if errors.As(err, &re) {
			return nil, nil
		}
		return nil, err
	}

	text := res.GetText()
	return []Barcode{{Text: text, Kind: DetectKind(text)}}, nil
}

// Rotate turns img clockwise by degrees. Angles that are not a multiple of
// 90 leave img unchanged.
func Rotate(img image.Image, degrees int) image.Image {
	degrees = ((degrees % 360) + 360) % 360
	if degrees != 90 && degrees != 180 && degrees != 270 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.RGBA
	if degrees == 180 {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			switch degrees {
			case 90:
				dst.Set(h-1-y, x, c)
			case 180:
				dst.Set(w-1-x, h-1-y, c)
			case 270:
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return dst
}
