package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Format はアバターの出力フォーマットです。
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJSON Format = "json"
)

var allFormats = []Format{FormatSVG, FormatPNG, FormatJPG, FormatJSON}

// Formats は有効なフォーマットの一覧を返します。
func Formats() []Format {
	return slices.Clone(allFormats)
}

// 列挙子名として書かれたフォーマット指定で受け付ける修飾子です。
var formatQualifiers = []string{"DFormat.", "Format."}

// FormatFromName は名前からフォーマットを引きます。"DFormat.png" / "Format.png" の修飾付き指定も受け付けます。
// それ以外の "." を含む名前は不正として扱います。
func FormatFromName(name string) (Format, error) {
	n := strings.TrimSpace(name)
	for _, q := range formatQualifiers {
		if rest, ok := strings.CutPrefix(n, q); ok {
			n = rest
			break
		}
	}
	f := Format(n)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

func (f Format) Valid() bool {
	return slices.Contains(allFormats, f)
}

// MimeType はフォーマットに対応する MIME タイプを返します。
func (f Format) MimeType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJPG:
		return "image/jpeg"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// Extension はファイル保存時の拡張子 (ドット付き) を返します。
func (f Format) Extension() string {
	return "." + string(f)
}

// IsRaster はラスター画像フォーマットかを返します。
func (f Format) IsRaster() bool {
	return f == FormatPNG || f == FormatJPG
}

func (f Format) String() string { return string(f) }
