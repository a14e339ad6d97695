package domain

import (
	"github.com/google/uuid"
)

// DepthZone は配置済みリージョンの前後関係の粗い分類です。
type DepthZone string

const (
	DepthForeground DepthZone = "FOREGROUND"
	DepthMidGround  DepthZone = "MID_GROUND"
	DepthBackground DepthZone = "BACKGROUND"
)

// Region はスケッチ上にドラッグで配置された装飾アセットの矩形です。
// 座標・寸法はすべてパーセンテージ空間で、x+width <= 100, y+height <= 100 を満たします。
type Region struct {
	ID        string        `json:"id"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Label     string        `json:"label"`
	Reference *ImagePayload `json:"reference,omitempty"`
}

// NewRegion は一意な ID を付与したリージョンを生成します。
// 右端・下端が 100 を超えないように幅と高さを切り詰めるのだ。
func NewRegion(x, y, width, height float64, label string) Region {
	x = ClampPercent(x)
	y = ClampPercent(y)
	if x+width > 100 {
		width = 100 - x
	}
	if y+height > 100 {
		height = 100 - y
	}
	return Region{
		ID:     uuid.NewString(),
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Label:  label,
	}
}

// BottomEdge はリージョン下端の Y 座標（パーセント）を返します。
func (r Region) BottomEdge() float64 {
	return r.Y + r.Height
}

// Zone は下端位置からの奥行き分類です。判定は毎回再計算され、
// キャッシュは持ちません。境界はいずれも「より大きい」で判定します。
func (r Region) Zone() DepthZone {
	bottom := r.BottomEdge()
	switch {
	case bottom > 85:
		return DepthForeground
	case bottom > 50:
		return DepthMidGround
	default:
		return DepthBackground
	}
}

// HasReference は参照クロップ画像が添付済みかどうかを返します。
func (r Region) HasReference() bool {
	return r.Reference != nil && !r.Reference.IsZero()
}
