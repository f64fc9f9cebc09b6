package cli

import (
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

// requestFlags holds the flags shared by the avatar and url commands.
type requestFlags struct {
	style     string
	seed      string
	format    string
	flip      bool
	rotate    int
	scale     int
	radius    int
	size      int
	bg        string
	bgType    string
	bgRotate  int
	translate []int
	randomIDs bool
	extras    []string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.style, "style", "s", "", "avatar style (default from config, \"random\" picks one)")
	fl.StringVar(&f.seed, "seed", "", "seed (random when empty)")
	fl.StringVarP(&f.format, "format", "f", "", "output format: svg, png, jpg, json")
	fl.BoolVar(&f.flip, "flip", false, "flip the avatar")
	fl.IntVar(&f.rotate, "rotate", 0, "rotation in degrees")
	fl.IntVar(&f.scale, "scale", 100, "scale in percent")
	fl.IntVar(&f.radius, "radius", 0, "corner radius")
	fl.IntVar(&f.size, "size", 0, "size in pixels (0 lets the service choose)")
	fl.StringVar(&f.bg, "bg", "", "background colour(s), e.g. \"#aabbcc\" or \"aabbcc,ddeeff\"")
	fl.StringVar(&f.bgType, "bg-type", "", "background type: solid, gradientLinear")
	fl.IntVar(&f.bgRotate, "bg-rotation", 0, "background rotation in degrees")
	fl.IntSliceVar(&f.translate, "translate", nil, "translateX,translateY")
	fl.BoolVar(&f.randomIDs, "randomize-ids", false, "randomize SVG ids")
	fl.StringArrayVar(&f.extras, "set", nil, "style specific parameter key=value (repeatable)")
}

// build merges the config defaults with the flags that were set explicitly.
func (f *requestFlags) build(cmd *cobra.Command, a *app) (domain.AvatarRequest, error) {
	styleName := firstNonEmpty(f.style, a.cfg.Defaults.Style, string(domain.StyleAdventurer))
	var style domain.Style
	if styleName == "random" {
		style = domain.RandomStyle()
	} else {
		s, err := domain.StyleFromName(styleName)
		if err != nil {
			return domain.AvatarRequest{}, err
		}
		style = s
	}

	format, err := domain.FormatFromName(firstNonEmpty(f.format, a.cfg.Defaults.Format, string(domain.FormatSVG)))
	if err != nil {
		return domain.AvatarRequest{}, err
	}

	values := maps.Clone(a.cfg.Defaults.Options)
	if values == nil {
		values = make(map[string]any)
	}
	changed := cmd.Flags().Changed
	if changed("flip") {
		values[domain.KeyFlip] = f.flip
	}
	if changed("rotate") {
		values[domain.KeyRotate] = f.rotate
	}
	if changed("scale") {
		values[domain.KeyScale] = f.scale
	}
	if changed("radius") {
		values[domain.KeyRadius] = f.radius
	}
	if changed("size") {
		values[domain.KeySize] = f.size
	}
	if changed("bg") {
		values[domain.KeyBackgroundColor] = f.bg
	}
	if changed("bg-type") {
		values[domain.KeyBackgroundType] = f.bgType
	}
	if changed("bg-rotation") {
		values[domain.KeyBackgroundRotation] = f.bgRotate
	}
	if changed("translate") {
		if len(f.translate) != 2 {
			return domain.AvatarRequest{}, fmt.Errorf("--translate expects two values, got %d", len(f.translate))
		}
		values[domain.KeyTranslateX] = f.translate[0]
		values[domain.KeyTranslateY] = f.translate[1]
	}
	if changed("randomize-ids") {
		values[domain.KeyRandomizeIDs] = f.randomIDs
	}

	opts, err := domain.OptionsFromMap(values)
	if err != nil {
		return domain.AvatarRequest{}, err
	}

	extras := make(map[string]string, len(f.extras))
	for _, kv := range f.extras {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return domain.AvatarRequest{}, fmt.Errorf("--set expects key=value, got %q", kv)
		}
		extras[k] = v
	}

	return domain.AvatarRequest{
		Style:   style,
		Seed:    f.seed,
		Format:  format,
		Options: opts,
		Extras:  extras,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
