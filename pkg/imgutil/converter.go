package imgutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

// DefaultJPEGQuality は JPEG 変換時の品質です。
const DefaultJPEGQuality = 90

var (
	// ErrUnsupportedSource はローカルでデコードできない入力 (SVG, JSON 等) の場合に返されます。
	ErrUnsupportedSource = errors.New("local image processing is not available for this source")
	// ErrUnsupportedTarget はローカルで生成できない出力フォーマットの場合に返されます。
	ErrUnsupportedTarget = errors.New("local image processing is not available for this target")
)

// Convert はラスター画像データを target フォーマットに変換します。
// SVG のラスタライズは行わないため、呼び出し側はリモートでの再生成にフォールバックしてください。
func Convert(data []byte, target domain.Format) ([]byte, error) {
	if !CanDecode(data) {
		return nil, fmt.Errorf("%w (detected %s)", ErrUnsupportedSource, http.DetectContentType(data))
	}
	switch target {
	case domain.FormatJPG:
		return ConvertToJPEG(data, DefaultJPEGQuality)
	case domain.FormatPNG:
		return ConvertToPNG(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedTarget, target)
}

// CanDecode はデータが image.Decode で扱えるラスター画像かを返します。
func CanDecode(data []byte) bool {
	mime := http.DetectContentType(data)
	return mime == "image/png" || mime == "image/jpeg" || mime == "image/gif"
}

// ConvertToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に変換します。
// 透明部分は白背景で塗りつぶします。
func ConvertToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToPNG は画像データを PNG 形式に変換します。
func ConvertToPNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DetectFormat はデータの先頭から DiceBear の出力フォーマットを推定します。
func DetectFormat(data []byte) (domain.Format, bool) {
	mime := http.DetectContentType(data)
	switch {
	case mime == "image/png":
		return domain.FormatPNG, true
	case mime == "image/jpeg":
		return domain.FormatJPG, true
	case strings.HasPrefix(strings.TrimSpace(string(data[:min(len(data), 64)])), "{"):
		return domain.FormatJSON, true
	case bytes.Contains(data[:min(len(data), 512)], []byte("<svg")):
		return domain.FormatSVG, true
	}
	return "", false
}
