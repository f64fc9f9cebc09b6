package domain

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
)

// 生成パラメータのキーです。DiceBear のクエリパラメータ名と一致します。
const (
	KeyFlip               = "flip"
	KeyRotate             = "rotate"
	KeyScale              = "scale"
	KeyRadius             = "radius"
	KeySize               = "size"
	KeyBackgroundColor    = "backgroundColor"
	KeyBackgroundType     = "backgroundType"
	KeyBackgroundRotation = "backgroundRotation"
	KeyTranslateX         = "translateX"
	KeyTranslateY         = "translateY"
	KeyRandomizeIDs       = "randomizeIds"
)

// OptionKeys は既知のパラメータキーを正規の順序で並べたものです。
var OptionKeys = []string{
	KeyFlip, KeyRotate, KeyScale, KeyRadius, KeySize, KeyBackgroundColor,
	KeyBackgroundType, KeyBackgroundRotation, KeyTranslateX, KeyTranslateY, KeyRandomizeIDs,
}

// BackgroundType は背景の塗り方です。
type BackgroundType string

const (
	BackgroundSolid          BackgroundType = "solid"
	BackgroundGradientLinear BackgroundType = "gradientLinear"
)

// Params は全生成パラメータを保持します。DefaultParams がドキュメント上のデフォルト値です。
type Params struct {
	Flip               bool
	Rotate             int
	Scale              int
	Radius             int
	Size               int // 0 は「サイズ指定なし」
	BackgroundColor    Color
	BackgroundType     BackgroundType
	BackgroundRotation int
	TranslateX         int
	TranslateY         int
	RandomizeIDs       bool
}

// DefaultParams はドキュメント上のデフォルト値を返します。
func DefaultParams() Params {
	return Params{
		Scale:           100,
		BackgroundColor: Transparent,
		BackgroundType:  BackgroundSolid,
	}
}

var defaultValues = DefaultParams().values()

func (p Params) values() map[string]any {
	return map[string]any{
		KeyFlip:               p.Flip,
		KeyRotate:             p.Rotate,
		KeyScale:              p.Scale,
		KeyRadius:             p.Radius,
		KeySize:               p.Size,
		KeyBackgroundColor:    p.BackgroundColor,
		KeyBackgroundType:     string(p.BackgroundType),
		KeyBackgroundRotation: p.BackgroundRotation,
		KeyTranslateX:         p.TranslateX,
		KeyTranslateY:         p.TranslateY,
		KeyRandomizeIDs:       p.RandomizeIDs,
	}
}

// Option は Params を変更する関数オプションです。
type Option func(*Params)

func WithFlip(v bool) Option { return func(p *Params) { p.Flip = v } }
func WithRotate(deg int) Option { return func(p *Params) { p.Rotate = deg } }
func WithScale(percent int) Option { return func(p *Params) { p.Scale = percent } }
func WithRadius(v int) Option { return func(p *Params) { p.Radius = v } }
func WithSize(px int) Option { return func(p *Params) { p.Size = px } }
func WithRandomizeIDs(v bool) Option { return func(p *Params) { p.RandomizeIDs = v } }
func WithBackgroundColor(c Color) Option {
	return func(p *Params) { p.BackgroundColor = c }
}
func WithBackgroundType(t BackgroundType) Option {
	return func(p *Params) { p.BackgroundType = t }
}
func WithBackgroundRotation(deg int) Option {
	return func(p *Params) { p.BackgroundRotation = deg }
}

// WithTranslate は translateX / translateY をまとめて設定します。
func WithTranslate(x, y int) Option {
	return func(p *Params) {
		p.TranslateX = x
		p.TranslateY = y
	}
}

// Options はデフォルトと異なるパラメータのみを保持する不変のマッピングです。
// キーが存在しないことは「DiceBear 側のデフォルトを使う」ことを意味します。
type Options struct {
	values map[string]any
}

// NewOptions はデフォルト値に関数オプションを適用し、差分のみを持つ Options を返します。
func NewOptions(opts ...Option) Options {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return Diff(p)
}

// Diff は Params のうちデフォルト値と異なるものだけを取り出します。
func Diff(p Params) Options {
	out := make(map[string]any)
	for key, v := range p.values() {
		if !isDefault(key, v) {
			out[key] = v
		}
	}
	return finalize(out)
}

// OptionsFromMap は部分的なマッピングから Options を生成します。
// 未知のキーとデフォルト値と等しいエントリは黙って捨てられます。
// 数値は int に、色指定の文字列は Color に正規化します。
func OptionsFromMap(m map[string]any) (Options, error) {
	out := make(map[string]any)
	for key, raw := range m {
		if _, known := defaultValues[key]; !known {
			continue
		}
		v, err := normalizeValue(key, raw)
		if err != nil {
			return Options{}, fmt.Errorf("option %q: %w", key, err)
		}
		if !isDefault(key, v) {
			out[key] = v
		}
	}
	return finalize(out), nil
}

// finalize は size=0 を明示的に指定された場合でも取り除きます。
func finalize(m map[string]any) Options {
	if v, ok := m[KeySize]; ok && v == 0 {
		delete(m, KeySize)
	}
	return Options{values: m}
}

func isDefault(key string, v any) bool {
	def := defaultValues[key]
	defColor, defIsColor := def.(Color)
	if c, ok := v.(Color); ok {
		return defIsColor && c.Equal(defColor)
	}
	if defIsColor {
		s, ok := v.(string)
		return ok && defColor.EqualString(s)
	}
	return v == def
}

func normalizeValue(key string, raw any) (any, error) {
	switch defaultValues[key].(type) {
	case int:
		if n, ok := toInt(raw); ok {
			return n, nil
		}
	case Color:
		switch v := raw.(type) {
		case Color:
			return v, nil
		case string:
			return NewColor(v)
		case []string:
			return NewGradient(v...)
		case []any:
			specs := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, &InvalidColorError{Segment: fmt.Sprint(item)}
				}
				specs = append(specs, s)
			}
			return NewGradient(specs...)
		}
	case string:
		if t, ok := raw.(BackgroundType); ok {
			return string(t), nil
		}
	}
	return raw, nil
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return toInt(float64(v))
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

// Get は指定キーの値を返します。
func (o Options) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

func (o Options) Len() int { return len(o.values) }

// Keys は保持しているキーを正規の順序で返します。
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o.values))
	for _, k := range OptionKeys {
		if _, ok := o.values[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// AsMap は内部マッピングのコピーを返します。
func (o Options) AsMap() map[string]any {
	out := make(map[string]any, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// Query はリクエストに埋め込むためのクエリパラメータに変換します。
func (o Options) Query() url.Values {
	q := url.Values{}
	for _, k := range o.Keys() {
		q.Set(k, formatValue(o.values[k]))
	}
	return q
}

func formatValue(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case Color:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// Equal は2つの Options が同じエントリを持つかを比較します。
func (o Options) Equal(other Options) bool {
	if o.Len() != other.Len() {
		return false
	}
	return slices.Equal(o.Keys(), other.Keys()) && o.Query().Encode() == other.Query().Encode()
}
