// Package prompts は、各操作へ送る自然言語指示を決定論的に組み立てる
// 純粋関数群です。副作用もネットワーク呼び出しも持ちません。
package prompts

import (
	"strings"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// 「おまかせ」項目ごとの矯正指示なのだ。モデルに新案を発明させず、
// 元画像から当該属性を導出させる。
const (
	empowerCategory = "CATEGORY is unspecified: preserve the existing spatial structure and function of the venue exactly as photographed; do not reinterpret the room type."
	empowerStyle    = "STYLE is unspecified: extract the existing design language from the source image and amplify it; do not graft a foreign style onto the scene."
	empowerColor    = "COLOR is unspecified: strictly sample and match the original palette of the source image; no new hues may be introduced."
	empowerSurface  = "SURFACE MATERIAL is unspecified: enhance the quality and finish of the existing surfaces; never replace one material with another."
	empowerTextile  = "TEXTILE MATERIAL is unspecified: upgrade the existing fabrics in kind, keeping their weave, drape and sheen family."
	empowerTexClr   = "TEXTILE COLORS are unspecified: keep the fabric colors faithful to the source image, refining saturation only."
)

// empowermentHeader はブロック先頭の宣言文です。
const empowermentHeader = "### AUTO-DERIVED ATTRIBUTES ###\nFor each rule below, derive the attribute from the source image itself:"

// Empowerment は「おまかせ」(OptionAuto) の項目ごとに矯正指示を積み上げます。
// ひとつも該当しない場合は空文字列で、ブロックごと省略されます。
// 布ものの色は、親となる布もの素材が明示されているときだけ対象になるのだ。
func Empowerment(opts domain.RenderOptions) string {
	var rules []string

	if opts.Category == domain.OptionAuto {
		rules = append(rules, empowerCategory)
	}
	if opts.Style == domain.OptionAuto {
		rules = append(rules, empowerStyle)
	}
	if opts.Palette == domain.OptionAuto {
		rules = append(rules, empowerColor)
	}
	if opts.SurfaceMaterial == domain.OptionAuto {
		rules = append(rules, empowerSurface)
	}
	if opts.TextileMaterial == domain.OptionAuto {
		rules = append(rules, empowerTextile)
	} else if opts.TextileColor1 == domain.OptionAuto && opts.TextileColor2 == domain.OptionAuto {
		rules = append(rules, empowerTexClr)
	}

	if len(rules) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(empowermentHeader)
	for _, r := range rules {
		sb.WriteString("\n- ")
		sb.WriteString(r)
	}
	return sb.String()
}
