package domain

// Point はパーセンテージ空間（両軸 0〜100）上の座標です。
// 解像度に依存しない唯一の座標表現であり、UI とプロンプトの境界を
// 越えるのはこの形だけなのだ。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint は値を [0,100] にクランプした Point を生成します。
func NewPoint(x, y float64) Point {
	return Point{X: ClampPercent(x), Y: ClampPercent(y)}
}

// ClampPercent は値を [0,100] に収めます。
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
