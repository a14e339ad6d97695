package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// annotationEditInstruction は注釈ベース編集の固定指示です。
// 2枚目（注釈画像）のマークの解釈と、マーク外の完全保存を義務づけます。
const annotationEditInstruction = `The second image is the first image with red annotations drawn by the user: brush strokes circle areas to change, arrows point at targets, and text states what to do there.
Apply the requested changes ONLY inside the marked regions.
Everything outside the marked regions must remain pixel-faithful to the first image: same geometry, same lighting, same colors.
Remove all annotation marks from the output.`

// BuildAnnotationEditPrompt は注釈編集のプロンプトを構築します。
// 呼び出し側は注釈画像の存在を保証しなければなりません。
func BuildAnnotationEditPrompt(instruction string) string {
	var sb strings.Builder
	sb.WriteString(annotationEditInstruction)
	if s := strings.TrimSpace(instruction); s != "" {
		sb.WriteString("\n\n### USER REQUEST ###\n")
		sb.WriteString(s)
	}
	return sb.String()
}

// BuildObjectSwapPrompt は座標指定のオブジェクト置換プロンプトを構築します。
// points には選択点と検出済みの類似点をこの順で渡します。
// 呼び出し側は参照画像と1点以上の座標の存在を保証しなければなりません。
func BuildObjectSwapPrompt(points []domain.Point, instruction string) string {
	var sb strings.Builder
	sb.WriteString("The second image shows a replacement object.\n")
	sb.WriteString("In the first image, replace the object located at each of the following positions (percent of image bounds) with that replacement object:\n")
	for i, p := range points {
		sb.WriteString(fmt.Sprintf("%d. (X:%.0f%%, Y:%.0f%%)\n", i+1, p.X, p.Y))
	}
	sb.WriteString("Match the perspective, scale and lighting of each original object so the replacement sits naturally in the scene.\n")
	sb.WriteString("Do not alter anything else in the image.")
	if s := strings.TrimSpace(instruction); s != "" {
		sb.WriteString("\n\n### USER REQUEST ###\n")
		sb.WriteString(s)
	}
	return sb.String()
}
