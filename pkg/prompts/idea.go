package prompts

import (
	"strings"
)

// structureFraming はアイデア生成フェーズ1の固定建築フレーミングです。
// 家具・装飾の配置はフェーズ2へ明示的に先送りするのだ。
const structureFraming = `### ARCHITECTURAL STRUCTURE PASS ###
Convert the provided sketch into a photorealistic EMPTY architectural base:
- CAMERA: dead-center frontal view, perfectly level, no tilt.
- FRAMING: the structure fills 85% of the horizontal frame.
- VERTICAL LAYOUT: bottom 20% of the frame is floor, middle 70% is the structure itself, top 10% is empty background void.
- Do NOT place any furniture, florals or decor in this pass; they are composited in a later pass.
- Keep every line of the sketch's architecture: openings, arches, levels and proportions.`

// decoratePreamble はフェーズ2（装飾合成）の固定前置きです。
const decoratePreamble = `### DECOR COMPOSITING PASS ###
The first image is the finished architectural background. Composite the listed items into it:
- Preserve the background's lighting direction, white balance and perspective exactly.
- Each subsequent image is the reference crop for the item with the same index, where attached.
- Blend contact points with correct shadows and reflections.`

// BuildStructurePrompt はフェーズ1のプロンプトを構築します。
// analysis はスケッチの事前解析テキスト（空可）、styleHint は
// スタイル参照画像がある場合の注釈です。
func BuildStructurePrompt(analysis string, hasStyleReference bool) string {
	var sb strings.Builder
	sb.WriteString(structureFraming)
	if s := strings.TrimSpace(analysis); s != "" {
		sb.WriteString("\n\n### SKETCH ANALYSIS ###\n")
		sb.WriteString(s)
	}
	if hasStyleReference {
		sb.WriteString("\n\n### STYLE REFERENCE ###\nThe second image is a style reference: borrow its material palette and mood, not its geometry.")
	}
	return sb.String()
}

// BuildDecoratePrompt はフェーズ2のプロンプトを構築します。
// spatialBlock は空間指示シンセサイザの出力で、空なら省略されます。
func BuildDecoratePrompt(spatialBlock string) string {
	var sb strings.Builder
	sb.WriteString(decoratePreamble)
	if spatialBlock != "" {
		sb.WriteString("\n\n")
		sb.WriteString(spatialBlock)
	}
	return sb.String()
}

// AnalyzeSketchInstruction はフェーズ1前のスケッチ解析指示です。
const AnalyzeSketchInstruction = "Describe the architectural structure in this sketch in 3 short sentences: overall form, openings and levels, and approximate proportions. Output plain text only."

// DescribeVenueInstruction はレンダー用のシーン自動記述の指示です。
const DescribeVenueInstruction = "Describe this venue photo for an event designer in 2 short sentences: the space itself, and its dominant materials and light. Output plain text only."
