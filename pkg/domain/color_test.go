package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{"6桁の16進数", "a1b2c3", "a1b2c3"},
		{"先頭の#を取り除く", "#00ff00", "00ff00"},
		{"大文字は小文字に正規化", "#AABBCC", "aabbcc"},
		{"transparent", "transparent", "transparent"},
		{"カンマ区切りのグラデーション", "aabbcc, #ddeeff", "aabbcc,ddeeff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColor(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestNewColor_Invalid(t *testing.T) {
	for _, spec := range []string{"#ZZZZZZ", "", "abc", "aabbccd", "aabbcc,xyz123", "notacolor"} {
		t.Run(spec, func(t *testing.T) {
			_, err := NewColor(spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColorFormat))

			var colorErr *InvalidColorError
			require.ErrorAs(t, err, &colorErr)
		})
	}

	t.Run("エラーには不正なセグメントが含まれるのだ", func(t *testing.T) {
		_, err := NewColor("aabbcc,#ZZZZZZ")
		var colorErr *InvalidColorError
		require.ErrorAs(t, err, &colorErr)
		assert.Equal(t, "ZZZZZZ", colorErr.Segment, "先頭の # を除いたセグメントを報告するのだ")
	})
}

func TestNewColor_AllHexDigits(t *testing.T) {
	const digits = "0123456789abcdef"
	for i := 0; i < len(digits); i++ {
		spec := strings.Repeat(string(digits[i]), 3) + digits[len(digits)-1-i:len(digits)-i] + "0f"
		c, err := NewColor(spec)
		require.NoError(t, err, spec)
		assert.Equal(t, strings.ToLower(spec), c.String())
	}
}

func TestNewGradient(t *testing.T) {
	c, err := NewGradient("aabbcc", "ddeeff")
	require.NoError(t, err)
	assert.Equal(t, "aabbcc,ddeeff", c.String())
	assert.True(t, c.IsGradient())
	assert.Equal(t, []string{"aabbcc", "ddeeff"}, c.Segments())

	_, err = NewGradient()
	assert.ErrorIs(t, err, ErrInvalidColorFormat)

	_, err = NewGradient("aabbcc", "#ggg000")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestColor_Equal(t *testing.T) {
	a := MustColor("#AABBCC")
	b := MustColor("aabbcc")

	assert.True(t, a.Equal(b))
	assert.True(t, a.EqualString("aabbcc"))
	assert.False(t, a.EqualString("#aabbcc"))
	assert.False(t, a.Equal(Transparent))

	t.Run("ゼロ値は transparent と等価なのだ", func(t *testing.T) {
		var zero Color
		assert.True(t, zero.Equal(Transparent))
		assert.True(t, zero.IsTransparent())
		assert.Equal(t, "transparent", zero.String())
	})
}

func TestRandomColor(t *testing.T) {
	for i := 0; i < 1000; i++ {
		c := RandomColor()
		code := c.String()
		require.Len(t, code, 6)
		for _, r := range code {
			require.Contains(t, "0123456789abcdef", string(r))
		}
	}
}

func TestColor_TextMarshaling(t *testing.T) {
	var payload struct {
		Background Color `json:"background"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"background":"#FF0000, 00ff00"}`), &payload))
	assert.Equal(t, "ff0000,00ff00", payload.Background.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"background":"ff0000,00ff00"}`, string(out))

	err = json.Unmarshal([]byte(`{"background":"red"}`), &payload)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}
