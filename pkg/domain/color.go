package domain

import (
	"math/rand/v2"
	"strings"
)

// TransparentCode は透明を表す特別な色指定です。
const TransparentCode = "transparent"

const randomColorAlphabet = "abcdef0123456789"

// Transparent は背景色のデフォルト値です。Color のゼロ値と等価です。
var Transparent = Color{code: TransparentCode}

// Color は検証・正規化済みの色指定を保持する値オブジェクトです。
// code はカンマ区切りの 6 桁小文字16進数、または "transparent" です。
// 複数セグメントはグラデーション (backgroundType=gradientLinear) 用ですが、
// その組み合わせの妥当性は DiceBear 側に任せます。
type Color struct {
	code string
}

// NewColor は "#AABBCC", "aabbcc, ddeeff", "transparent" のような文字列から Color を生成します。
// 空白を取り除き、カンマで分割した各セグメントを検証します。
func NewColor(spec string) (Color, error) {
	return newColor(strings.Split(strings.ReplaceAll(spec, " ", ""), ","))
}

// NewGradient は順序付きの色指定の並びから Color を生成します。
func NewGradient(specs ...string) (Color, error) {
	if len(specs) == 0 {
		return Color{}, &InvalidColorError{Segment: ""}
	}
	segments := make([]string, len(specs))
	for i, s := range specs {
		segments[i] = strings.ReplaceAll(s, " ", "")
	}
	return newColor(segments)
}

// MustColor は NewColor のパニック版です。定数的な初期化にのみ使用してください。
func MustColor(spec string) Color {
	c, err := NewColor(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func newColor(segments []string) (Color, error) {
	normalized := make([]string, 0, len(segments))
	for _, seg := range segments {
		raw := strings.TrimPrefix(seg, "#")
		code := strings.ToLower(raw)
		if code != TransparentCode && !isHexCode(code) {
			return Color{}, &InvalidColorError{Segment: raw}
		}
		normalized = append(normalized, code)
	}
	return Color{code: strings.Join(normalized, ",")}, nil
}

func isHexCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if !strings.ContainsRune(randomColorAlphabet, r) {
			return false
		}
	}
	return true
}

// RandomColor は 0-9a-f から一様に選んだ 6 文字の Color を返します。
func RandomColor() Color {
	b := make([]byte, 6)
	for i := range b {
		b[i] = randomColorAlphabet[rand.IntN(len(randomColorAlphabet))]
	}
	return Color{code: string(b)}
}

// String は正規化済みの色指定を返します。ゼロ値は "transparent" です。
func (c Color) String() string {
	if c.code == "" {
		return TransparentCode
	}
	return c.code
}

// Equal は正規化済みの色指定同士を比較します。
func (c Color) Equal(other Color) bool {
	return c.String() == other.String()
}

// EqualString は正規化済みの色指定と文字列をそのまま比較します。
func (c Color) EqualString(s string) bool {
	return c.String() == s
}

// IsTransparent は Color が "transparent" 単体であるかを返します。
func (c Color) IsTransparent() bool {
	return c.String() == TransparentCode
}

// IsGradient は複数セグメントを持つかを返します。
func (c Color) IsGradient() bool {
	return strings.Contains(c.code, ",")
}

// Segments はカンマ区切りの各セグメントを返します。
func (c Color) Segments() []string {
	return strings.Split(c.String(), ",")
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := NewColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
