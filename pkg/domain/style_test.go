package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyles(t *testing.T) {
	styles := Styles()
	assert.Len(t, styles, 26)
	assert.Equal(t, StyleAdventurer, styles[0])
	assert.Equal(t, StyleThumbs, styles[len(styles)-1])

	styles[0] = "mutated"
	assert.Equal(t, StyleAdventurer, Styles()[0], "Styles はコピーを返すべきなのだ")
}

func TestStyleFromName(t *testing.T) {
	t.Run("ハイフン区切りの名前", func(t *testing.T) {
		s, err := StyleFromName("big-ears")
		require.NoError(t, err)
		assert.Equal(t, StyleBigEars, s)
		assert.Equal(t, "big-ears", s.String())
	})

	t.Run("アンダースコア区切りも受け付けるのだ", func(t *testing.T) {
		s, err := StyleFromName("pixel_art_neutral")
		require.NoError(t, err)
		assert.Equal(t, StylePixelArtNeutral, s)
	})

	t.Run("未知のスタイル", func(t *testing.T) {
		_, err := StyleFromName("not-a-style")
		assert.ErrorIs(t, err, ErrUnknownStyle)
	})
}

func TestRandomStyle(t *testing.T) {
	for i := 0; i < 200; i++ {
		assert.True(t, RandomStyle().Valid())
	}
}
