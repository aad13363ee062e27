package qr

import (
	"bytes"
	"image"

	// Raster formats the decoder accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"go.uber.org/zap"
)

// Decoder extracts the text payload of a QR code from raw image bytes.
type Decoder struct {
	reader gozxing.Reader
}

func CreateDecoder() *Decoder {
	return &Decoder{
		reader: qrcode.NewQRCodeReader(),
	}
}

// Decode rasterizes the image and runs QR recognition against the pixel
// buffer. It returns the embedded payload verbatim. An unreadable image or
// an image without a recognizable code is a normal outcome, reported as
// ok=false; Decode never fails in a way the caller must distinguish.
func (d *Decoder) Decode(data []byte) (string, bool) {
	const funcName = "qr.Decoder.Decode"

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Debug("image could not be decoded",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return "", false
	}

	bitmap, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		logger.Debug("image could not be binarized",
			zap.String("function", funcName),
			zap.String("format", format),
			zap.Error(err),
		)
		return "", false
	}

	result, err := d.reader.Decode(bitmap, nil)
	if err != nil {
		// One more pass with the slower exhaustive mode before giving up.
		result, err = d.reader.Decode(bitmap, map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		})
	}
	if err != nil {
		logger.Debug("no code found in image",
			zap.String("function", funcName),
			zap.String("format", format),
		)
		return "", false
	}

	return result.GetText(), true
}
