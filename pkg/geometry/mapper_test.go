package geometry

import (
	"math"
	"testing"
)

func TestContentRect(t *testing.T) {
	t.Run("横長画像は上下にレターボックスが出るのだ", func(t *testing.T) {
		r := ContentRect(1000, 1000, 2000, 1000)
		if r.Width != 1000 || r.Height != 500 {
			t.Errorf("寸法が不正です: %+v", r)
		}
		if r.Top != 250 || r.Left != 0 {
			t.Errorf("余白の配置が不正です: %+v", r)
		}
	})

	t.Run("縦長画像は左右にレターボックスが出るのだ", func(t *testing.T) {
		r := ContentRect(1000, 1000, 500, 1000)
		if r.Width != 500 || r.Height != 1000 {
			t.Errorf("寸法が不正です: %+v", r)
		}
		if r.Left != 250 || r.Top != 0 {
			t.Errorf("余白の配置が不正です: %+v", r)
		}
	})

	t.Run("自然寸法が未確定ならゼロ矩形なのだ", func(t *testing.T) {
		r := ContentRect(1000, 1000, 0, 0)
		if r.Width != 0 || r.Height != 0 {
			t.Errorf("ゼロ矩形ではありません: %+v", r)
		}
	})
}

func TestPointFromPointer_Clamp(t *testing.T) {
	content := Rect{Left: 100, Top: 100, Width: 800, Height: 600}

	tests := []struct {
		name         string
		px, py       float64
		wantX, wantY float64
	}{
		{"中央は(50,50)になるのだ", 500, 400, 50, 50},
		{"左上の遥か外側は(0,0)にクランプされるのだ", -9999, -9999, 0, 0},
		{"右下の遥か外側は(100,100)にクランプされるのだ", 99999, 99999, 100, 100},
		{"左端ちょうどは(0,50)なのだ", 100, 400, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PointFromPointer(tt.px, tt.py, content)
			if !ok {
				t.Fatal("変換が拒否されました")
			}
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("期待値 (%v,%v), 実際の値 (%v,%v)", tt.wantX, tt.wantY, p.X, p.Y)
			}
			if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
				t.Errorf("範囲外の値です: %+v", p)
			}
		})
	}

	t.Run("表示領域が0なら変換は保留されるのだ", func(t *testing.T) {
		if _, ok := PointFromPointer(10, 10, Rect{}); ok {
			t.Error("ゼロ寸法で変換が成立してしまいました")
		}
	})
}

func TestRectFromDrag_Threshold(t *testing.T) {
	content := Rect{Width: 1000, Height: 1000}

	t.Run("幅8pxのドラッグはリージョンを作らないのだ", func(t *testing.T) {
		_, _, _, _, ok := RectFromDrag(100, 100, 108, 150, content)
		if ok {
			t.Error("しきい値未満なのにリージョンが生成されました")
		}
	})

	t.Run("12x12pxのドラッグはちょうど1つリージョンを作るのだ", func(t *testing.T) {
		x, y, w, h, ok := RectFromDrag(100, 100, 112, 112, content)
		if !ok {
			t.Fatal("しきい値超過なのにリージョンが生成されませんでした")
		}
		if w <= 0 || h <= 0 {
			t.Errorf("寸法が不正です: w=%v h=%v", w, h)
		}
		if x != 10 || y != 10 {
			t.Errorf("位置が不正です: x=%v y=%v", x, y)
		}
	})

	t.Run("逆向きドラッグでも正規化されるのだ", func(t *testing.T) {
		x, y, w, h, ok := RectFromDrag(500, 500, 300, 250, content)
		if !ok {
			t.Fatal("リージョンが生成されませんでした")
		}
		if x != 30 || y != 25 || w != 20 || h != 25 {
			t.Errorf("正規化が不正です: x=%v y=%v w=%v h=%v", x, y, w, h)
		}
	})
}

func TestZoomAt(t *testing.T) {
	t.Run("カーソル位置が不動点になるのだ", func(t *testing.T) {
		// 画像上の点 p は screen = p*scale + t で写る。
		// ズーム前後でカーソル下の画像点が一致することを確認する。
		mouseX, mouseY := 400.0, 300.0
		oldTx, oldTy, oldScale := 50.0, 20.0, 1.0
		newScale := 2.0

		newTx, newTy := ZoomAt(mouseX, mouseY, oldTx, oldTy, oldScale, newScale)

		imgX := (mouseX - oldTx) / oldScale
		imgY := (mouseY - oldTy) / oldScale
		backX := imgX*newScale + newTx
		backY := imgY*newScale + newTy

		if math.Abs(backX-mouseX) > 1e-9 || math.Abs(backY-mouseY) > 1e-9 {
			t.Errorf("不動点がずれています: (%v,%v)", backX, backY)
		}
	})
}

func TestClampScaleAndMarkerScale(t *testing.T) {
	if got := ClampScale(0.01, 0.1, 5); got != 0.1 {
		t.Errorf("下限クランプが不正です: %v", got)
	}
	if got := ClampScale(9, 0.1, 5); got != 5 {
		t.Errorf("上限クランプが不正です: %v", got)
	}
	if got := MarkerScale(4); got != 0.25 {
		t.Errorf("逆スケールが不正です: %v", got)
	}
	if got := MarkerScale(0); got != 1 {
		t.Errorf("ゼロ保護が不正です: %v", got)
	}
}
