// Package selector は、パン・ズーム機構を共有する2つの選択モードを提供します。
// ポイントモードは置換対象の1点選択とAI支援の類似オブジェクト検出、
// リージョンモードはドラッグによるアセット矩形の配置を担います。
package selector

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/geometry"
	"github.com/shouni/go-decor-kit/pkg/prompts"
)

// ズーム範囲なのだ。拡大率はフィット表示を 1.0 とする相対値で、
// 下限はフィットの半分、上限は20倍。
const (
	fitScale = 1.0
	minScale = fitScale / 2
	maxScale = 20.0
)

// 前提条件エラー。ネットワーク呼び出しの前に同期的に検出されます。
var (
	ErrNoImage         = errors.New("画像が設定されていません")
	ErrNoPointSelected = errors.New("対象の点が選択されていません")
)

// Selector は1枚のホスト画像に対する選択セッションです。
// 内部状態はミューテックスで自己完結的に保護されます。
type Selector struct {
	mu sync.Mutex

	image   domain.ImagePayload
	content geometry.Rect

	scale float64
	tx    float64
	ty    float64

	selected *domain.Point
	detected []domain.Point

	regions   []domain.Region
	nextLabel int

	drag *dragState

	client gemini.Client
	deduct domain.DeductFunc
}

type dragState struct {
	startX, startY float64
}

// New は選択セッションを生成します。deduct は検出コストの引き落とし先です。
func New(client gemini.Client, deduct domain.DeductFunc) *Selector {
	return &Selector{
		scale:     fitScale,
		nextLabel: 1,
		client:    client,
		deduct:    deduct,
	}
}

// SetImage はホスト画像を差し替えます。リージョンは連鎖的に全削除され、
// 選択点・検出結果・ラベル採番も初期化されるのだ。
func (s *Selector) SetImage(img domain.ImagePayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.image = img
	s.regions = nil
	s.selected = nil
	s.detected = nil
	s.nextLabel = 1
	s.scale = fitScale
	s.tx, s.ty = 0, 0
}

// SetViewport はコンテナ寸法から contain フィットの表示領域を再計算します。
// ウィンドウリサイズと画像ロード完了の両方で呼ばれます。
func (s *Selector) SetViewport(containerW, containerH float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = geometry.ContentRect(containerW, containerH, float64(s.image.Width), float64(s.image.Height))
}

// ZoomAt はカーソル位置を不動点としてズームします。
func (s *Selector) ZoomAt(mouseX, mouseY, delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	newScale := geometry.ClampScale(s.scale+delta, minScale, maxScale)
	s.tx, s.ty = geometry.ZoomAt(mouseX, mouseY, s.tx, s.ty, s.scale, newScale)
	s.scale = newScale
}

// Pan は表示を平行移動します。
func (s *Selector) Pan(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tx += dx
	s.ty += dy
}

// Scale は現在の拡大率を返します。
func (s *Selector) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

// MarkerScale はオーバーレイマーカーに適用する逆スケール係数です。
// これによりマーカーは任意のズーム下で画面上の寸法を保ちます。
func (s *Selector) MarkerScale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return geometry.MarkerScale(s.scale)
}

// --- ポイントモード ---

// SelectPoint はクリック位置を1点として記録します。新しい選択は
// 以前の検出結果を破棄します。画像未ロード時は何もしません。
func (s *Selector) SelectPoint(pointerX, pointerY float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := geometry.PointFromPointer(pointerX, pointerY, s.content)
	if !ok {
		return false
	}
	s.selected = &p
	s.detected = nil
	return true
}

// SelectedPoint は現在の選択点を返します。
func (s *Selector) SelectedPoint() (domain.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.Point{}, false
	}
	return *s.selected, true
}

// DetectedPoints は検出済みの類似点の複製を返します。
func (s *Selector) DetectedPoints() []domain.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Point, len(s.detected))
	copy(out, s.detected)
	return out
}

// TargetPoints は選択点＋検出点をこの順で返します（プロンプト用）。
func (s *Selector) TargetPoints() []domain.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	out := make([]domain.Point, 0, 1+len(s.detected))
	out = append(out, *s.selected)
	out = append(out, s.detected...)
	return out
}

// DetectSimilar は選択点と視覚的に類似するオブジェクトをモデルに探させます。
// 検出1回分のクレジットは呼び出し前に引き落とされ、応答が不正でも
// 返金されません。失敗しても選択済みの点はそのまま残るのだ。
func (s *Selector) DetectSimilar(ctx context.Context) ([]domain.Point, error) {
	s.mu.Lock()
	img := s.image
	sel := s.selected
	s.mu.Unlock()

	if img.IsZero() {
		return nil, ErrNoImage
	}
	if sel == nil {
		return nil, ErrNoPointSelected
	}

	if err := s.deduct(ctx, domain.CostDetect, "find similar objects"); err != nil {
		return nil, err
	}

	points, err := s.client.DetectPoints(ctx, img, prompts.DetectSimilarInstruction(*sel))
	if err != nil {
		return nil, fmt.Errorf("類似オブジェクトの検出に失敗しました: %w", err)
	}

	s.mu.Lock()
	s.detected = points
	s.mu.Unlock()
	return points, nil
}

// --- リージョンモード ---

// BeginDrag はリージョン定義のドラッグを開始します。
func (s *Selector) BeginDrag(pointerX, pointerY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image.IsZero() {
		return
	}
	s.drag = &dragState{startX: pointerX, startY: pointerY}
}

// EndDrag はドラッグを確定します。両軸のドラッグ距離がしきい値を超えた
// 場合だけ、連番ラベルつきの新しいリージョンが生まれます。
func (s *Selector) EndDrag(pointerX, pointerY float64) (domain.Region, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drag := s.drag
	s.drag = nil
	if drag == nil {
		return domain.Region{}, false
	}

	x, y, w, h, ok := geometry.RectFromDrag(drag.startX, drag.startY, pointerX, pointerY, s.content)
	if !ok {
		return domain.Region{}, false
	}

	region := domain.NewRegion(x, y, w, h, fmt.Sprintf("Asset %d", s.nextLabel))
	s.nextLabel++
	s.regions = append(s.regions, region)
	return region, true
}

// Regions は配置済みリージョンの複製を返します。
func (s *Selector) Regions() []domain.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// RenameRegion はリージョンのラベルを変更します。
func (s *Selector) RenameRegion(id, label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions[i].Label = label
			return true
		}
	}
	return false
}

// AttachReference はリージョンに参照クロップ画像を添付します。
func (s *Selector) AttachReference(id string, ref domain.ImagePayload) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions[i].Reference = &ref
			return true
		}
	}
	return false
}

// RemoveRegion はリージョンを明示的に削除します。
func (s *Selector) RemoveRegion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return true
		}
	}
	return false
}
