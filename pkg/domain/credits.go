package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// 操作ごとのクレジット消費量なのだ。
const (
	CostRender  = 2
	CostUpscale = 1
	CostEdit    = 1
	CostSketch  = 1
	CostView    = 1
	CostIdea    = 3

	// CostDecorate は既存の完成画像に対する装飾追加（フェーズ2のみの
	// 再実行）1回分のコストです。
	CostDecorate = 1

	// CostDetect は「類似オブジェクト検出」1回分のコストです。
	// 編集操作本体のコストとは別に、検出呼び出しの前に引き落とされます。
	// モデル応答が不正でも返金しません（呼び出し自体は課金済みのため）。
	CostDetect = 1
)

// ErrInsufficientCredits は残高不足を示す前提条件エラーです。
var ErrInsufficientCredits = errors.New("クレジット残高が不足しています")

// DeductFunc は残高からの引き落としを行う注入コールバックです。
// コアは残高そのものを一切保持しません。
type DeductFunc func(ctx context.Context, cost int, reason string) error

// RefundFunc は失敗した生成操作の返金を行う注入コールバックです。
type RefundFunc func(ctx context.Context, cost int, reason string) error

// Ledger はメモリ上の単純なクレジット台帳です。CLI ホストが使う既定実装で、
// ツール側は DeductFunc / RefundFunc だけに依存します。
type Ledger struct {
	mu      sync.Mutex
	balance int
}

// NewLedger は初期残高つきの台帳を生成します。
func NewLedger(balance int) *Ledger {
	return &Ledger{balance: balance}
}

// Balance は現在の残高を返します。
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Deduct は残高を確認してから引き落とします。不足時は ErrInsufficientCredits を返すのだ。
func (l *Ledger) Deduct(_ context.Context, cost int, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balance < cost {
		return fmt.Errorf("%w (必要: %d, 残高: %d, 用途: %s)", ErrInsufficientCredits, cost, l.balance, reason)
	}
	l.balance -= cost
	return nil
}

// Refund は引き落とし済みのコストを戻します。
func (l *Ledger) Refund(_ context.Context, cost int, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += cost
	return nil
}
