// Package annotate は、元画像の上に筆・矢印・テキストの注釈を重ねる
// 描画セッションです。確定済みの出力は単一のフラット化ラスタ（JPEG の
// Base64）であり、ストローク列はセッション中しか生きません。
package annotate

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/geometry"
	"github.com/shouni/go-decor-kit/pkg/imaging"
)

// 拡大率のクランプ範囲なのだ。
const (
	minZoom = 0.1
	maxZoom = 5.0
)

// defaultLineWidth は等倍時の筆の太さ（ピクセル）です。
const defaultLineWidth = 6.0

// CompleteFunc は save() 完了時にフラット化済み Base64 を受け取ります。
type CompleteFunc func(base64JPEG string)

// CancelFunc は cancel() 時に呼ばれます。
type CancelFunc func()

// Engine は1枚の元画像に対する注釈セッションです。
// 描画面が用意できない環境では各描画操作は静かに無視されます。
// セッションを跨いだアンドゥは存在せず、再オープンは元画像からやり直しです。
type Engine struct {
	base   *image.RGBA // 確定済みレイヤー。nil なら描画は no-op
	width  int
	height int

	scale  float64
	transX float64
	transY float64

	panning bool
	stroke  *domain.Stroke // 進行中の筆ストローク
	draft   *textDraft     // 確定待ちのテキスト入力

	onComplete CompleteFunc
	onCancel   CancelFunc
}

type textDraft struct {
	x, y float64 // パーセンテージ空間
}

// New は元画像を読み込んだ注釈セッションを開きます。
// 画像がデコードできない場合、セッションは開くものの描画は no-op になります。
func New(source domain.ImagePayload, onComplete CompleteFunc, onCancel CancelFunc) *Engine {
	e := &Engine{
		scale:      1.0,
		onComplete: onComplete,
		onCancel:   onCancel,
	}

	data, err := source.Bytes()
	if err != nil {
		return e
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return e
	}

	b := src.Bounds()
	e.base = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(e.base, e.base.Bounds(), src, b.Min, draw.Src)
	e.width = b.Dx()
	e.height = b.Dy()
	return e
}

// Ready は描画面が利用可能かどうかを返します。
func (e *Engine) Ready() bool {
	return e.base != nil
}

// Scale は現在の拡大率を返します。
func (e *Engine) Scale() float64 {
	return e.scale
}

// Zoom はホイール操作による拡大率の変更です。[0.1, 5] にクランプされます。
func (e *Engine) Zoom(delta float64) {
	e.scale = geometry.ClampScale(e.scale+delta, minZoom, maxZoom)
}

// BeginPan はパン操作を開始します。パン中はツール操作を受け付けないのだ。
func (e *Engine) BeginPan() {
	e.panning = true
}

// Pan はキャンバスコンテナを平行移動します。
func (e *Engine) Pan(dx, dy float64) {
	if !e.panning {
		return
	}
	e.transX += dx
	e.transY += dy
}

// EndPan はパン操作を終了します。
func (e *Engine) EndPan() {
	e.panning = false
}

// BeginStroke は筆の一筆を開始します。パン中・描画面なしでは無視されます。
func (e *Engine) BeginStroke(p domain.Point) {
	if e.base == nil || e.panning {
		return
	}
	e.stroke = &domain.Stroke{
		Kind: domain.StrokeBrush,
		// 画面上の見かけの太さを一定に保つため、太さは現在の拡大率で割る
		LineWidth: defaultLineWidth / e.scale,
		Points:    []domain.Point{p},
	}
}

// ExtendStroke は進行中の筆に点を追加し、前の点との間を直ちに描画します。
func (e *Engine) ExtendStroke(p domain.Point) {
	if e.base == nil || e.stroke == nil {
		return
	}
	last := e.stroke.Points[len(e.stroke.Points)-1]
	e.stroke.Points = append(e.stroke.Points, p)

	x1, y1 := e.toPixel(last)
	x2, y2 := e.toPixel(p)
	drawLine(e.base, x1, y1, x2, y2, e.stroke.LineWidth, annotationRed)
}

// EndStroke は筆の一筆を確定します。
func (e *Engine) EndStroke() {
	e.stroke = nil
}

// CommitArrow はドラッグ終了時に矢印を確定レイヤーへ焼き込みます。
// ドラッグ中のプレビューは揮発レイヤーの責務で、ここには残りません。
func (e *Engine) CommitArrow(start, end domain.Point) {
	if e.base == nil || e.panning {
		return
	}
	x1, y1 := e.toPixel(start)
	x2, y2 := e.toPixel(end)
	drawArrow(e.base, x1, y1, x2, y2, defaultLineWidth/e.scale, annotationRed)
}

// PlaceText はクリック位置にテキスト入力を浮かべます。
func (e *Engine) PlaceText(p domain.Point) {
	if e.base == nil || e.panning {
		return
	}
	e.draft = &textDraft{x: p.X, y: p.Y}
}

// CommitText は入力中のテキストを確定します。トリム後に空なら何も描かず
// 捨てるだけで、キャンバスは変化しません。
func (e *Engine) CommitText(content string) {
	draft := e.draft
	e.draft = nil
	if e.base == nil || draft == nil {
		return
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	x, y := e.toPixelXY(draft.x, draft.y)
	size := e.textSize()
	if err := drawOutlinedText(e.base, x, y, content, size); err != nil {
		// フォント環境の不備は描画面の不備と同じ扱いで、静かに諦める
		return
	}
}

// textSize は画像解像度に追従する文字サイズ（最低30px、目安は幅の3%）です。
func (e *Engine) textSize() float64 {
	return math.Max(30, float64(e.width)*0.03)
}

// Save は確定待ちのテキストを流し込み、キャンバスを JPEG (品質0.9) の
// Base64 にフラット化して完了コールバックへ渡します。
func (e *Engine) Save(pendingText string) (string, error) {
	if e.draft != nil {
		e.CommitText(pendingText)
	}
	if e.base == nil {
		return "", fmt.Errorf("描画面が利用できないため保存できません")
	}

	payload, err := imaging.Encode(e.base, imaging.FlattenQuality)
	if err != nil {
		return "", fmt.Errorf("注釈画像のフラット化に失敗しました: %w", err)
	}
	if e.onComplete != nil {
		e.onComplete(payload.Base64)
	}
	return payload.Base64, nil
}

// Cancel は全ストロークを破棄して取消コールバックを呼びます。
func (e *Engine) Cancel() {
	e.stroke = nil
	e.draft = nil
	if e.onCancel != nil {
		e.onCancel()
	}
}

// Snapshot は現在の確定レイヤーの複製を返します（検証用）。
func (e *Engine) Snapshot() *image.RGBA {
	if e.base == nil {
		return nil
	}
	dup := image.NewRGBA(e.base.Bounds())
	copy(dup.Pix, e.base.Pix)
	return dup
}

func (e *Engine) toPixel(p domain.Point) (float64, float64) {
	return e.toPixelXY(p.X, p.Y)
}

func (e *Engine) toPixelXY(xPct, yPct float64) (float64, float64) {
	return xPct / 100 * float64(e.width), yPct / 100 * float64(e.height)
}
