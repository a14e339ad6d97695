package selector

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
)

// fakeClient は gemini.Client の偽実装です。
type fakeClient struct {
	detectPoints []domain.Point
	detectErr    error
	detectCalls  int
	lastPrompt   string
}

func (f *fakeClient) GenerateText(_ context.Context, _ []domain.ImagePayload, _ string) (string, error) {
	return "", nil
}

func (f *fakeClient) DetectPoints(_ context.Context, _ domain.ImagePayload, instruction string) ([]domain.Point, error) {
	f.detectCalls++
	f.lastPrompt = instruction
	return f.detectPoints, f.detectErr
}

func (f *fakeClient) GenerateImage(_ context.Context, _ gemini.ImageRequest) (domain.ImagePayload, error) {
	return domain.ImagePayload{}, nil
}

func noDeduct(_ context.Context, _ int, _ string) error { return nil }

func testImage() domain.ImagePayload {
	return domain.ImagePayload{Base64: "aGVsbG8=", MimeType: "image/jpeg", Width: 1000, Height: 1000}
}

func newReady(client gemini.Client, deduct domain.DeductFunc) *Selector {
	s := New(client, deduct)
	s.SetImage(testImage())
	s.SetViewport(1000, 1000)
	return s
}

func TestSelector_PointMode(t *testing.T) {
	t.Run("クリックで1点が記録されるのだ", func(t *testing.T) {
		s := newReady(&fakeClient{}, noDeduct)
		if !s.SelectPoint(500, 500) {
			t.Fatal("選択に失敗しました")
		}
		p, ok := s.SelectedPoint()
		if !ok || p.X != 50 || p.Y != 50 {
			t.Errorf("選択点が不正です: %+v", p)
		}
	})

	t.Run("新しい選択は以前の検出結果を破棄するのだ", func(t *testing.T) {
		fc := &fakeClient{detectPoints: []domain.Point{{X: 10, Y: 10}}}
		s := newReady(fc, noDeduct)
		s.SelectPoint(500, 500)
		if _, err := s.DetectSimilar(context.Background()); err != nil {
			t.Fatalf("検出に失敗しました: %v", err)
		}
		if len(s.DetectedPoints()) != 1 {
			t.Fatal("検出結果が保存されていません")
		}

		s.SelectPoint(300, 300)
		if len(s.DetectedPoints()) != 0 {
			t.Error("新しい選択後も検出結果が残っています")
		}
	})

	t.Run("画像未ロード時は選択できないのだ", func(t *testing.T) {
		s := New(&fakeClient{}, noDeduct)
		if s.SelectPoint(10, 10) {
			t.Error("画像なしで選択が成立しました")
		}
	})
}

func TestSelector_DetectSimilar(t *testing.T) {
	t.Run("検出前にクレジットが引き落とされるのだ", func(t *testing.T) {
		var deducted int
		deduct := func(_ context.Context, cost int, _ string) error {
			deducted += cost
			return nil
		}
		s := newReady(&fakeClient{}, deduct)
		s.SelectPoint(500, 500)
		if _, err := s.DetectSimilar(context.Background()); err != nil {
			t.Fatalf("検出に失敗しました: %v", err)
		}
		if deducted != domain.CostDetect {
			t.Errorf("引き落とし額が不正です: %d", deducted)
		}
	})

	t.Run("残高不足なら呼び出し自体が行われないのだ", func(t *testing.T) {
		fc := &fakeClient{}
		deduct := func(_ context.Context, _ int, _ string) error {
			return domain.ErrInsufficientCredits
		}
		s := newReady(fc, deduct)
		s.SelectPoint(500, 500)
		_, err := s.DetectSimilar(context.Background())
		if !errors.Is(err, domain.ErrInsufficientCredits) {
			t.Errorf("期待したエラーではありません: %v", err)
		}
		if fc.detectCalls != 0 {
			t.Error("残高不足なのにモデルが呼び出されました")
		}
	})

	t.Run("検出失敗でも選択点は失われないのだ", func(t *testing.T) {
		fc := &fakeClient{detectErr: gemini.ErrDetectMalformed}
		s := newReady(fc, noDeduct)
		s.SelectPoint(500, 500)
		_, err := s.DetectSimilar(context.Background())
		if !errors.Is(err, gemini.ErrDetectMalformed) {
			t.Errorf("検出エラーが伝播していません: %v", err)
		}
		if _, ok := s.SelectedPoint(); !ok {
			t.Error("失敗した検出で選択点が消えました")
		}
	})

	t.Run("点未選択は前提条件エラーなのだ", func(t *testing.T) {
		s := newReady(&fakeClient{}, noDeduct)
		if _, err := s.DetectSimilar(context.Background()); !errors.Is(err, ErrNoPointSelected) {
			t.Errorf("期待したエラーではありません: %v", err)
		}
	})

	t.Run("検出指示に選択座標が埋め込まれるのだ", func(t *testing.T) {
		fc := &fakeClient{}
		s := newReady(fc, noDeduct)
		s.SelectPoint(500, 250)
		if _, err := s.DetectSimilar(context.Background()); err != nil {
			t.Fatalf("検出に失敗しました: %v", err)
		}
		if !strings.Contains(fc.lastPrompt, "(X:50%, Y:25%)") {
			t.Errorf("指示に座標が含まれていません: %q", fc.lastPrompt)
		}
	})
}

func TestSelector_RegionMode(t *testing.T) {
	t.Run("しきい値未満のドラッグはリージョンを作らないのだ", func(t *testing.T) {
		s := newReady(&fakeClient{}, noDeduct)
		s.BeginDrag(100, 100)
		if _, ok := s.EndDrag(108, 150); ok {
			t.Error("幅8pxでリージョンが生成されました")
		}
		if len(s.Regions()) != 0 {
			t.Error("リージョン一覧が空ではありません")
		}
	})

	t.Run("しきい値超過のドラッグは連番ラベルのリージョンを作るのだ", func(t *testing.T) {
		s := newReady(&fakeClient{}, noDeduct)
		s.BeginDrag(100, 100)
		r1, ok := s.EndDrag(300, 300)
		if !ok {
			t.Fatal("リージョンが生成されませんでした")
		}
		if r1.Label != "Asset 1" {
			t.Errorf("ラベルが不正です: %q", r1.Label)
		}

		s.BeginDrag(400, 400)
		r2, _ := s.EndDrag(600, 600)
		if r2.Label != "Asset 2" {
			t.Errorf("連番が不正です: %q", r2.Label)
		}
		if len(s.Regions()) != 2 {
			t.Errorf("リージョン数が不正です: %d", len(s.Regions()))
		}
	})

	t.Run("ラベル編集・参照添付・削除ができるのだ", func(t *testing.T) {
		s := newReady(&fakeClient{}, noDeduct)
		s.BeginDrag(100, 100)
		r, _ := s.EndDrag(300, 300)

		if !s.RenameRegion(r.ID, "flower arch") {
			t.Error("ラベル編集に失敗しました")
		}
		if !s.AttachReference(r.ID, testImage()) {
			t.Error("参照添付に失敗しました")
		}
		got := s.Regions()[0]
		if got.Label != "flower arch" || !got.HasReference() {
			t.Errorf("更新が反映されていません: %+v", got)
		}

		if !s.RemoveRegion(r.ID) {
			t.Error("削除に失敗しました")
		}
		if len(s.Regions()) != 0 {
			t.Error("削除後もリージョンが残っています")
		}
	})

	t.Run("画像差し替えで全リージョンが連鎖削除されるのだ", func(t *testing.T) {
		s := newReady(&fakeClient{}, noDeduct)
		s.BeginDrag(100, 100)
		s.EndDrag(300, 300)
		s.SetImage(testImage())
		s.SetViewport(1000, 1000)
		if len(s.Regions()) != 0 {
			t.Error("画像差し替え後もリージョンが残っています")
		}

		// 採番もやり直しになる
		s.BeginDrag(100, 100)
		r, _ := s.EndDrag(300, 300)
		if r.Label != "Asset 1" {
			t.Errorf("採番が初期化されていません: %q", r.Label)
		}
	})
}

func TestSelector_ZoomBounds(t *testing.T) {
	s := newReady(&fakeClient{}, noDeduct)
	s.ZoomAt(500, 500, 1000)
	if s.Scale() != 20 {
		t.Errorf("上限クランプが不正です: %v", s.Scale())
	}
	s.ZoomAt(500, 500, -1000)
	if s.Scale() != 0.5 {
		t.Errorf("下限クランプが不正です: %v", s.Scale())
	}
	if got := s.MarkerScale(); got != 2 {
		t.Errorf("マーカー逆スケールが不正です: %v", got)
	}
}
