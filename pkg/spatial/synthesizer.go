// Package spatial は、配置済みリージョンの集合を遠近・スケール・遮蔽の
// ルールを織り込んだ自然言語ブロックへ写像する純粋関数です。
package spatial

import (
	"fmt"
	"strings"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// 形状ヒントのしきい値なのだ。
const (
	wideAspect = 1.5
	tallAspect = 0.6
)

// spatialPreamble は下流モデルに課す4つの不変ルールです。
const spatialPreamble = `### SPATIAL COMPOSITION RULES ###
1. Align every placed object to the scene's single vanishing point.
2. Every object in contact with the floor MUST cast a grounding shadow.
3. Respect human-scale reference objects when sizing each item.
4. Foreground objects MUST occlude background objects wherever their screen positions overlap.`

// ShapeHint はアスペクト比からの形状分類です。
func ShapeHint(width, height float64) string {
	if height <= 0 {
		return "balanced"
	}
	ratio := width / height
	switch {
	case ratio > wideAspect:
		return "horizontal spread"
	case ratio < tallAspect:
		return "vertical tall"
	default:
		return "balanced"
	}
}

// Synthesize はリージョン群から構造化された空間指示ブロックを構築します。
// リージョンが空のときは空文字列を返し、ブロックごと省略されます。
// 奥行き分類はキャッシュされず、呼び出しのたびに再計算されるのだ。
func Synthesize(regions []domain.Region) string {
	if len(regions) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(spatialPreamble)
	sb.WriteString("\n\n### PLACED ITEMS ###\n")

	for i, r := range regions {
		sb.WriteString(fmt.Sprintf("#### ITEM %d: %s ####\n", i+1, r.Label))
		sb.WriteString(fmt.Sprintf("- BOUNDS: x=%.1f%%, y=%.1f%%, width=%.1f%%, height=%.1f%%\n",
			r.X, r.Y, r.Width, r.Height))
		sb.WriteString(fmt.Sprintf("- DEPTH_ZONE: %s (bottom edge at %.1f%%)\n", r.Zone(), r.BottomEdge()))
		sb.WriteString(fmt.Sprintf("- SHAPE: %s\n", ShapeHint(r.Width, r.Height)))
		if r.HasReference() {
			sb.WriteString("- REFERENCE: a reference crop for this item is attached; reproduce its materials and colors faithfully.\n")
		} else {
			sb.WriteString("- REFERENCE: no reference crop; derive the item's appearance from its label.\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
