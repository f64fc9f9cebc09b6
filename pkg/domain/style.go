package domain

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Style は DiceBear のアバタースタイル識別子です。
// 一覧は https://dicebear.com/styles を参照してください。
type Style string

const (
	StyleAdventurer        Style = "adventurer"
	StyleAdventurerNeutral Style = "adventurer-neutral"
	StyleAvataaars         Style = "avataaars"
	StyleAvataaarsNeutral  Style = "avataaars-neutral"
	StyleBigEars           Style = "big-ears"
	StyleBigEarsNeutral    Style = "big-ears-neutral"
	StyleBigSmile          Style = "big-smile"
	StyleBottts            Style = "bottts"
	StyleBotttsNeutral     Style = "bottts-neutral"
	StyleCroodles          Style = "croodles"
	StyleCroodlesNeutral   Style = "croodles-neutral"
	StyleFunEmoji          Style = "fun-emoji"
	StyleIcons             Style = "icons"
	StyleIdenticon         Style = "identicon"
	StyleInitials          Style = "initials"
	StyleLorelei           Style = "lorelei"
	StyleLoreleiNeutral    Style = "lorelei-neutral"
	StyleMicah             Style = "micah"
	StyleMiniavs           Style = "miniavs"
	StyleOpenPeeps         Style = "open-peeps"
	StylePersonas          Style = "personas"
	StylePixelArt          Style = "pixel-art"
	StylePixelArtNeutral   Style = "pixel-art-neutral"
	StyleRings             Style = "rings"
	StyleShapes            Style = "shapes"
	StyleThumbs            Style = "thumbs"
)

var allStyles = []Style{
	StyleAdventurer, StyleAdventurerNeutral, StyleAvataaars, StyleAvataaarsNeutral,
	StyleBigEars, StyleBigEarsNeutral, StyleBigSmile, StyleBottts, StyleBotttsNeutral,
	StyleCroodles, StyleCroodlesNeutral, StyleFunEmoji, StyleIcons, StyleIdenticon,
	StyleInitials, StyleLorelei, StyleLoreleiNeutral, StyleMicah, StyleMiniavs,
	StyleOpenPeeps, StylePersonas, StylePixelArt, StylePixelArtNeutral, StyleRings,
	StyleShapes, StyleThumbs,
}

// Styles は有効なスタイルの一覧をコピーで返します。
func Styles() []Style {
	return slices.Clone(allStyles)
}

// StyleFromName は "big-ears" のような表示名をスタイル識別子に変換します。
// "big_ears" のようなアンダースコア区切りも受け付けます。
func StyleFromName(name string) (Style, error) {
	s := Style(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// RandomStyle は有効なスタイルから一様に1つ選びます。
func RandomStyle() Style {
	return allStyles[rand.IntN(len(allStyles))]
}

// Valid はスタイルが有効な識別子かを返します。
func (s Style) Valid() bool {
	return slices.Contains(allStyles, s)
}

func (s Style) String() string { return string(s) }
