package domain

import (
	"context"
	"errors"
	"testing"
)

func TestLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("引き落としと返金が往復するのだ", func(t *testing.T) {
		l := NewLedger(5)
		if err := l.Deduct(ctx, CostEdit, "edit"); err != nil {
			t.Fatalf("引き落としに失敗しました: %v", err)
		}
		if l.Balance() != 5-CostEdit {
			t.Errorf("残高が不正です: %d", l.Balance())
		}
		if err := l.Refund(ctx, CostEdit, "edit"); err != nil {
			t.Fatalf("返金に失敗しました: %v", err)
		}
		if l.Balance() != 5 {
			t.Errorf("返金後の残高が不正です: %d", l.Balance())
		}
	})

	t.Run("残高不足で ErrInsufficientCredits が返るのだ", func(t *testing.T) {
		l := NewLedger(1)
		err := l.Deduct(ctx, CostIdea, "idea")
		if !errors.Is(err, ErrInsufficientCredits) {
			t.Errorf("期待したエラーではありません: %v", err)
		}
		if l.Balance() != 1 {
			t.Errorf("失敗した引き落としで残高が変化しています: %d", l.Balance())
		}
	})
}
