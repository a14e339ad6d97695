package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// BuildUpscalePrompt はアップスケール操作の指示を構築します。
func BuildUpscalePrompt(opts domain.UpscaleOptions) string {
	factor := opts.Factor
	if factor != 2 && factor != 4 {
		factor = 2
	}
	return fmt.Sprintf("Upscale this image to %dx resolution. Reconstruct fine detail faithfully: fabric weave, flower petals, wood grain and metal finish. Do not change composition, colors or content in any way. %s", factor, qualitySuffix)
}

// BuildSketchPrompt はスケッチ→フォトリアル変換の指示を構築します。
func BuildSketchPrompt(opts domain.SketchOptions) string {
	var sb strings.Builder
	sb.WriteString("Convert this sketch into a photorealistic render of the same scene. Honor every drawn line; invent nothing that contradicts the sketch.")
	if opts.Style != "" && opts.Style != domain.OptionAuto {
		sb.WriteString(fmt.Sprintf(" Apply a %s design style.", opts.Style))
	}
	if opts.Palette != "" && opts.Palette != domain.OptionAuto {
		sb.WriteString(fmt.Sprintf(" Use a %s color palette.", opts.Palette))
	}
	sb.WriteString(" ")
	sb.WriteString(qualitySuffix)
	return sb.String()
}

// DetectSimilarInstruction は「類似オブジェクト検出」の構造化出力指示です。
// 応答は {x, y} の JSON 配列（パーセンテージ空間）でなければなりません。
func DetectSimilarInstruction(selected domain.Point) string {
	return fmt.Sprintf(
		"Look at the object located at (X:%.0f%%, Y:%.0f%%) in this image. Find every OTHER visually similar object elsewhere in the image. Respond with a JSON array of objects, each {\"x\": number, \"y\": number}, giving the center of each similar object in percent of image bounds. Do not include the originally selected object. Return [] if there are none.",
		selected.X, selected.Y,
	)
}
