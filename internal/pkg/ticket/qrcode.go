package ticket

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	goqrcode "github.com/skip2/go-qrcode"
)

const (
	qrImageSize   = 200
	pngDataURLTag = "data:image/png;base64,"
)

var (
	ErrEmptyContent   = errors.New("qr code content is empty")
	ErrInvalidDataURL = errors.New("qr code is not a png data url")
)

// EncodeQRCode renders content as a PNG QR code and returns it as an inline data URL.
// The output is deterministic for a given content.
func EncodeQRCode(content string) (string, error) {
	raw, err := EncodeQRCodePNG(content)
	if err != nil {
		return "", err
	}

	return pngDataURLTag + base64.StdEncoding.EncodeToString(raw), nil
}

func EncodeQRCodePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	raw, err := goqrcode.Encode(content, goqrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("goqrcode.Encode -> %w", err)
	}

	return raw, nil
}

// PNGFromDataURL extracts the raw PNG bytes from a data URL produced by EncodeQRCode.
func PNGFromDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, pngDataURLTag) {
		return nil, ErrInvalidDataURL
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, pngDataURLTag))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}

	return raw, nil
}

// DecodeQRCode reads the text carried by a QR code image.
func DecodeQRCode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("gozxing.NewBinaryBitmapFromImage -> %w", err)
	}

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("qrcode reader -> %w", err)
	}

	return result.GetText(), nil
}

func DecodeQRCodeDataURL(dataURL string) (string, error) {
	raw, err := PNGFromDataURL(dataURL)
	if err != nil {
		return "", err
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("png.Decode -> %w", err)
	}

	return DecodeQRCode(img)
}
