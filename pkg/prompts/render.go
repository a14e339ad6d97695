package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// 品質・リアリズムの固定修飾句です。全レンダーに共通で付与されます。
const qualitySuffix = "photorealistic, physically based lighting, accurate global illumination, true-to-life materials, professional architectural photography, ultra-detailed, high resolution, no illustration, no CGI look"

// renderSystemInstruction はレンダー操作におけるモデルの役割定義なのだ。
const renderSystemInstruction = "You are a master event designer and architectural photographer. Transform the provided venue photo into a photorealistic decorated render while keeping the room's real geometry intact."

// 自動フォーカスの分岐指示です。
const (
	autoFocusOn  = "FOCUS: auto-detect the single most visually prominent decorative element in the scene and apply photographic depth-of-field centered on it; let surrounding elements fall off softly."
	autoFocusOff = "FOCUS: render the entire scene with uniform sharpness from foreground to background; no selective depth-of-field."
)

// BuildRenderPrompt はレンダー操作のユーザープロンプトとシステムプロンプトを
// 組み立てます。シーン説明・カメラプリセット・フォーカス指示・布ものの記述・
// エンパワーメントブロックをこの順で束ねるのだ。
func BuildRenderPrompt(opts domain.RenderOptions) (userPrompt, systemPrompt string) {
	preset := LookupCameraPreset(opts.CameraPreset)

	var us strings.Builder
	us.WriteString("### SCENE ###\n")
	if s := strings.TrimSpace(opts.Scene); s != "" {
		us.WriteString(s)
	} else {
		us.WriteString("Decorate the venue shown in the source image for the event.")
	}
	us.WriteString("\n\n### DESIGN OPTIONS ###\n")

	writeOption(&us, "CATEGORY", opts.Category)
	writeOption(&us, "STYLE", opts.Style)
	writeOption(&us, "PALETTE", opts.Palette)
	writeOption(&us, "SURFACE MATERIAL", opts.SurfaceMaterial)
	us.WriteString(fmt.Sprintf("- TEXTILES: %s\n", TextileDescription(opts.TextileMaterial, opts.TextileColor1, opts.TextileColor2)))

	us.WriteString(fmt.Sprintf("\n### CAMERA: %s ###\n%s\n", preset.Name, preset.Fragment))
	if opts.AutoFocus {
		us.WriteString(autoFocusOn)
	} else {
		us.WriteString(autoFocusOff)
	}

	if block := Empowerment(opts); block != "" {
		us.WriteString("\n\n")
		us.WriteString(block)
	}

	us.WriteString("\n\n### QUALITY ###\n")
	us.WriteString(qualitySuffix)

	return us.String(), renderSystemInstruction
}

// writeOption は明示された選択肢だけを列挙します。「おまかせ」項目は
// エンパワーメントブロック側が引き受けるため、ここには書かないのだ。
func writeOption(sb *strings.Builder, label, value string) {
	if value == domain.OptionAuto || value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("- %s: %s\n", label, value))
}
