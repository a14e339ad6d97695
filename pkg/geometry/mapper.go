// Package geometry は、スクリーン座標・表示画像座標・パーセンテージ座標の
// 相互変換を担う純粋関数群です。レターボックス（contain フィット）下の
// 実表示領域の算出と、カーソル基準ズームの平行移動計算を提供します。
package geometry

import (
	"math"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// Rect はコンテナ原点基準の矩形です。単位はデバイスピクセル。
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// dragThreshold はリージョン確定に必要な最小ドラッグ距離（各軸、ピクセル）です。
const dragThreshold = 10

// ContentRect は contain フィットで表示された画像が実際に占める矩形を返します。
// 画像の自然寸法が未確定（0 以下）の場合はゼロ矩形を返し、呼び出し側は
// 変換を保留します。
func ContentRect(containerW, containerH, naturalW, naturalH float64) Rect {
	if containerW <= 0 || containerH <= 0 || naturalW <= 0 || naturalH <= 0 {
		return Rect{}
	}

	imageRatio := naturalW / naturalH
	containerRatio := containerW / containerH

	var r Rect
	if imageRatio > containerRatio {
		// 横長: 幅いっぱいに表示され、上下に余白が出る
		r.Width = containerW
		r.Height = containerW / imageRatio
		r.Top = (containerH - r.Height) / 2
	} else {
		// 縦長: 高さいっぱいに表示され、左右に余白が出る
		r.Height = containerH
		r.Width = containerH * imageRatio
		r.Left = (containerW - r.Width) / 2
	}
	return r
}

// PointFromPointer はポインタ座標をパーセンテージ空間の Point に変換します。
// 表示領域の寸法が 0 の場合（画像未ロード）は ok=false を返し、ゼロ除算を
// 起こしません。領域外のポインタ位置は [0,100] にクランプされます。
func PointFromPointer(pointerX, pointerY float64, content Rect) (domain.Point, bool) {
	if content.Width <= 0 || content.Height <= 0 {
		return domain.Point{}, false
	}
	x := (pointerX - content.Left) / content.Width * 100
	y := (pointerY - content.Top) / content.Height * 100
	return domain.NewPoint(x, y), true
}

// RectFromDrag はドラッグの始点・終点からパーセンテージ空間の矩形を作ります。
// 各軸のドラッグ距離が dragThreshold を超えない場合は ok=false で、
// リージョンは生成されません。
func RectFromDrag(startX, startY, endX, endY float64, content Rect) (x, y, w, h float64, ok bool) {
	if content.Width <= 0 || content.Height <= 0 {
		return 0, 0, 0, 0, false
	}
	if math.Abs(endX-startX) <= dragThreshold || math.Abs(endY-startY) <= dragThreshold {
		return 0, 0, 0, 0, false
	}

	p1, ok1 := PointFromPointer(math.Min(startX, endX), math.Min(startY, endY), content)
	p2, ok2 := PointFromPointer(math.Max(startX, endX), math.Max(startY, endY), content)
	if !ok1 || !ok2 {
		return 0, 0, 0, 0, false
	}
	return p1.X, p1.Y, p2.X - p1.X, p2.Y - p1.Y, true
}

// ZoomAt はカーソル位置を不動点とするズームの新しい平行移動量を返します。
// newT = mouse - (mouse - oldT) * (newScale / oldScale) の標準式です。
func ZoomAt(mouseX, mouseY, oldTx, oldTy, oldScale, newScale float64) (newTx, newTy float64) {
	if oldScale == 0 {
		return oldTx, oldTy
	}
	factor := newScale / oldScale
	newTx = mouseX - (mouseX-oldTx)*factor
	newTy = mouseY - (mouseY-oldTy)*factor
	return newTx, newTy
}

// ClampScale は拡大率を [min, max] に収めます。
func ClampScale(scale, min, max float64) float64 {
	if scale < min {
		return min
	}
	if scale > max {
		return max
	}
	return scale
}

// MarkerScale はオーバーレイのマーカーが任意のズーム下でも画面上の寸法を
// 保つための逆スケール係数を返します。
func MarkerScale(currentScale float64) float64 {
	if currentScale <= 0 {
		return 1
	}
	return 1 / currentScale
}
