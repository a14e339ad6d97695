package prompts

import (
	"fmt"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// textileFallback は素材そのものが「おまかせ」のときの汎用句です。
const textileFallback = "elegant event textiles appropriate to the scene"

// TextileDescription は素材と2つの任意色から布ものの記述句を作ります。
// 色はそれぞれ独立に OptionAuto を取り得ます。
func TextileDescription(material, color1, color2 string) string {
	if material == domain.OptionAuto || material == "" {
		return textileFallback
	}

	hasC1 := color1 != domain.OptionAuto && color1 != ""
	hasC2 := color2 != domain.OptionAuto && color2 != ""

	switch {
	case hasC1 && hasC2:
		return fmt.Sprintf("%s in a primary color of %s and secondary color of %s", material, color1, color2)
	case hasC1:
		return fmt.Sprintf("%s in %s", material, color1)
	case hasC2:
		return fmt.Sprintf("%s with accents of %s", material, color2)
	default:
		return material
	}
}
