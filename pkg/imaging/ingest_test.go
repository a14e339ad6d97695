package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func makePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 180, B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("テスト画像の作成に失敗しました: %v", err)
	}
	return &buf
}

func TestIngest(t *testing.T) {
	t.Run("長辺が上限を超える画像は縮小されるのだ", func(t *testing.T) {
		p, err := Ingest(makePNG(t, 2048, 1024), DefaultMaxEdge, DefaultQuality)
		if err != nil {
			t.Fatalf("取り込みに失敗しました: %v", err)
		}
		if p.Width != 1024 || p.Height != 512 {
			t.Errorf("縮小後の寸法が不正です: %dx%d", p.Width, p.Height)
		}
		if p.MimeType != "image/jpeg" {
			t.Errorf("JPEGに再エンコードされていません: %s", p.MimeType)
		}
		if p.Base64 == "" {
			t.Error("Base64 が空です")
		}
	})

	t.Run("上限以下の画像はそのままの寸法なのだ", func(t *testing.T) {
		p, err := Ingest(makePNG(t, 300, 200), DefaultMaxEdge, DefaultQuality)
		if err != nil {
			t.Fatalf("取り込みに失敗しました: %v", err)
		}
		if p.Width != 300 || p.Height != 200 {
			t.Errorf("寸法が変化しています: %dx%d", p.Width, p.Height)
		}
	})

	t.Run("縦長画像は高さ基準で縮小されるのだ", func(t *testing.T) {
		p, err := Ingest(makePNG(t, 512, 2048), ReferenceEdge, DefaultQuality)
		if err != nil {
			t.Fatalf("取り込みに失敗しました: %v", err)
		}
		if p.Height != 512 || p.Width != 128 {
			t.Errorf("縮小後の寸法が不正です: %dx%d", p.Width, p.Height)
		}
	})

	t.Run("画像以外の入力はエラーになるのだ", func(t *testing.T) {
		if _, err := Ingest(bytes.NewBufferString("not an image"), DefaultMaxEdge, DefaultQuality); err == nil {
			t.Error("不正な入力でエラーが返りませんでした")
		}
	})
}
