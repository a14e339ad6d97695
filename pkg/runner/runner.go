// Package runner は外部モデルへの呼び出し列を編成するオーケストレータです。
// 単一パス操作（アップスケール・スケッチ変換・編集・レンダー）と、
// 構造→装飾の2フェーズからなるアイデアパイプラインを提供します。
package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// 前提条件エラー。どれもネットワーク呼び出しの前に同期的に検出され、
// 進行中フラグを変化させません。
var (
	ErrNoSource     = errors.New("元画像がありません")
	ErrNoSketch     = errors.New("スケッチ画像がありません")
	ErrNoAnnotation = errors.New("注釈が確定されていません")
	ErrNoReference  = errors.New("置換用の参照オブジェクトがありません")
	ErrNoTargets    = errors.New("置換対象の座標が選択されていません")
)

// ErrBusy は同一ツールでの再入可能な送信を拒否する印です。
// ロード中の2回目のクリックはキューイングされず、単なる no-op になります。
var ErrBusy = errors.New("別の生成が進行中です")

// ErrGeneration は外部呼び出しの失敗をユーザー向けに丸めたエラーです。
// 生のエラーは診断用にログへ落とし、そのまま表示してはいけません。
var ErrGeneration = errors.New("操作に問題が発生しました。もう一度お試しください")

// StatusFunc は各ネットワーク呼び出しの直前に、人間可読なフェーズ名と
// ともに呼ばれるオプションの観測者です。
type StatusFunc func(stage string)

// Deps は各 Runner が共有する注入依存の束です。
type Deps struct {
	Deduct  domain.DeductFunc
	Refund  domain.RefundFunc
	Limiter *rate.Limiter
	Status  StatusFunc
}

// notify は Status が設定されているときだけフェーズ名を通知します。
func (d Deps) notify(stage string) {
	if d.Status != nil {
		d.Status(stage)
	}
}

// wait はレートリミッタが設定されているときだけ流量制御します。
func (d Deps) wait(ctx context.Context) error {
	if d.Limiter == nil {
		return nil
	}
	return d.Limiter.Wait(ctx)
}

// deduct / refund は台帳コールバック未設定の環境（テスト等）を許容します。
func (d Deps) deduct(ctx context.Context, cost int, reason string) error {
	if d.Deduct == nil {
		return nil
	}
	return d.Deduct(ctx, cost, reason)
}

func (d Deps) refund(ctx context.Context, cost int, reason string) {
	if d.Refund == nil {
		return
	}
	if err := d.Refund(ctx, cost, reason); err != nil {
		slog.Error("返金に失敗しました", "reason", reason, "error", err)
	}
}

// inFlight はツールごとの単一実行保証です。CAS に失敗した送信は
// ErrBusy として弾かれ、追加のネットワーク呼び出しは発生しません。
type inFlight struct {
	busy atomic.Bool
}

func (f *inFlight) begin() bool {
	return f.busy.CompareAndSwap(false, true)
}

func (f *inFlight) end() {
	f.busy.Store(false)
}

// generationFailure は生のエラーをログへ落とし、ユーザー向けの
// 汎用メッセージへ翻訳します。
func generationFailure(op string, err error) error {
	slog.Error("外部モデル呼び出しに失敗しました", "op", op, "error", err)
	return fmt.Errorf("%w (%s)", ErrGeneration, op)
}

// cacheKey は画像とプロンプトから決定論的なキャッシュキーを作るのだ。
func cacheKey(img domain.ImagePayload, prompt string) string {
	h := sha256.New()
	h.Write([]byte(img.Base64))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}
