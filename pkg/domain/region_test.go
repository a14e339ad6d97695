package domain

import (
	"testing"
)

func TestRegion_Zone(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		height float64
		want   DepthZone
	}{
		{"下端90は前景になるのだ", 80, 10, DepthForeground},
		{"下端40は背景になるのだ", 30, 10, DepthBackground},
		{"下端85ちょうどは中景になるのだ（境界は超過判定）", 75, 10, DepthMidGround},
		{"下端50ちょうどは背景になるのだ", 40, 10, DepthBackground},
		{"下端100は前景になるのだ", 90, 10, DepthForeground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Region{Y: tt.y, Height: tt.height}
			if got := r.Zone(); got != tt.want {
				t.Errorf("期待値 %s, 実際の値 %s (bottom=%v)", tt.want, got, r.BottomEdge())
			}
		})
	}
}

func TestNewRegion(t *testing.T) {
	t.Run("右端・下端が100を超えないように切り詰められるのだ", func(t *testing.T) {
		r := NewRegion(90, 95, 20, 20, "Asset 1")
		if r.X+r.Width > 100 {
			t.Errorf("x+width が 100 を超えています: %v", r.X+r.Width)
		}
		if r.Y+r.Height > 100 {
			t.Errorf("y+height が 100 を超えています: %v", r.Y+r.Height)
		}
	})

	t.Run("IDが一意に採番されるのだ", func(t *testing.T) {
		a := NewRegion(0, 0, 10, 10, "Asset 1")
		b := NewRegion(0, 0, 10, 10, "Asset 2")
		if a.ID == "" || a.ID == b.ID {
			t.Errorf("IDが一意ではありません: %q, %q", a.ID, b.ID)
		}
	})
}

func TestRegion_HasReference(t *testing.T) {
	r := Region{}
	if r.HasReference() {
		t.Error("参照未添付なのに HasReference が true です")
	}
	ref := NewImagePayload([]byte{0xFF, 0xD8}, "image/jpeg", 100, 100)
	r.Reference = &ref
	if !r.HasReference() {
		t.Error("参照添付済みなのに HasReference が false です")
	}
}
