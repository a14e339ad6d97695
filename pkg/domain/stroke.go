package domain

// StrokeKind は注釈ツールの種別です。
type StrokeKind string

const (
	StrokeBrush StrokeKind = "brush"
	StrokeArrow StrokeKind = "arrow"
	StrokeText  StrokeKind = "text"
)

// Stroke は描画セッション中だけ生きる注釈一筆分のタグ付きユニオンです。
// 確定出力はフラット化されたラスタ画像であり、Stroke 自体は保存されません。
type Stroke struct {
	Kind StrokeKind

	// brush 用。パーセンテージ空間の軌跡。
	Points []Point

	// arrow 用。始点・終点ともにパーセンテージ空間。
	StartX, StartY float64
	EndX, EndY     float64

	// text 用。アンカー位置とその内容。Content が空のまま確定されることはない。
	X, Y     float64
	Content  string
	FontSize float64

	Color     string
	LineWidth float64
}
