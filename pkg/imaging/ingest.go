// Package imaging は、取り込み画像の正規化を担うユーティリティです。
// デコード → 長辺の縮小 → JPEG 再エンコード → Base64 化までを一度に行い、
// 下流が要求する {base64, mimeType, width, height} を返します。
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// 取り込み時の既定値なのだ。
const (
	DefaultMaxEdge = 1024 // 通常アップロードの長辺上限
	ReferenceEdge  = 512  // リージョン参照クロップの長辺上限
	PrimaryEdge    = 1280 // 主作業画像の長辺上限

	DefaultQuality = 80 // JPEG 再エンコード品質 (0.8)
	FlattenQuality = 90 // 注釈フラット化時の品質 (0.9)
)

// Ingest はリーダーから画像を読み込み、長辺が maxEdge を超えないよう縮小して
// JPEG に再エンコードした ImagePayload を返します。
func Ingest(r io.Reader, maxEdge, quality int) (domain.ImagePayload, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return domain.ImagePayload{}, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}
	return Encode(Downscale(src, maxEdge), quality)
}

// Downscale は長辺が maxEdge を超える画像を CatmullRom 補間で縮小します。
// 超えない場合は元画像をそのまま返します。
func Downscale(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = maxEdge
		nh = h * maxEdge / w
	} else {
		nh = maxEdge
		nw = w * maxEdge / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// Encode は画像を JPEG にエンコードして ImagePayload に包みます。
func Encode(img image.Image, quality int) (domain.ImagePayload, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return domain.ImagePayload{}, fmt.Errorf("JPEGエンコードに失敗しました: %w", err)
	}
	b := img.Bounds()
	return domain.NewImagePayload(buf.Bytes(), "image/jpeg", b.Dx(), b.Dy()), nil
}

// Doer は URL フェッチに使う最小の HTTP クライアント契約です。
// *http.Client と go-http-kit のクライアントの双方が満たします。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchURL は参照画像を URL から取得して Ingest にかけます。
func FetchURL(ctx context.Context, client Doer, url string, maxEdge int) (domain.ImagePayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ImagePayload{}, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.ImagePayload{}, fmt.Errorf("参照画像の取得に失敗しました (%s): %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ImagePayload{}, fmt.Errorf("参照画像の取得に失敗しました (%s): status %d", url, resp.StatusCode)
	}
	return Ingest(resp.Body, maxEdge, DefaultQuality)
}
