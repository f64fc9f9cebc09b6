package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarRequest_Validate(t *testing.T) {
	t.Run("有効なリクエスト", func(t *testing.T) {
		req := AvatarRequest{Style: StyleBottts, Format: FormatSVG}
		assert.NoError(t, req.Validate())
	})

	t.Run("スタイルが不正", func(t *testing.T) {
		req := AvatarRequest{Style: "female", Format: FormatSVG}
		assert.ErrorIs(t, req.Validate(), ErrUnknownStyle)
	})

	t.Run("フォーマットが不正", func(t *testing.T) {
		req := AvatarRequest{Style: StyleBottts, Format: "webp"}
		assert.ErrorIs(t, req.Validate(), ErrUnknownFormat)
	})
}
