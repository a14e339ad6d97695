package spatial

import (
	"strings"
	"testing"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

func TestSynthesize_EmptyRegions(t *testing.T) {
	if got := Synthesize(nil); got != "" {
		t.Errorf("リージョンなしで空文字列以外が返りました: %q", got)
	}
	if got := Synthesize([]domain.Region{}); got != "" {
		t.Errorf("空スライスで空文字列以外が返りました: %q", got)
	}
}

func TestSynthesize_Blocks(t *testing.T) {
	regions := []domain.Region{
		{ID: "a", X: 10, Y: 80, Width: 30, Height: 15, Label: "flower arch"},
		{ID: "b", X: 60, Y: 20, Width: 10, Height: 25, Label: "candle stand"},
	}

	out := Synthesize(regions)

	t.Run("固定プリアンブルの4ルールを含むのだ", func(t *testing.T) {
		for _, want := range []string{"vanishing point", "grounding shadow", "human-scale", "occlude"} {
			if !strings.Contains(out, want) {
				t.Errorf("ルール %q が含まれていません", want)
			}
		}
	})

	t.Run("各リージョンのラベルと奥行きが含まれるのだ", func(t *testing.T) {
		if !strings.Contains(out, "flower arch") || !strings.Contains(out, "candle stand") {
			t.Error("ラベルが欠落しています")
		}
		if !strings.Contains(out, string(domain.DepthForeground)) {
			t.Error("前景の分類が欠落しています (bottom=95)")
		}
		if !strings.Contains(out, string(domain.DepthBackground)) {
			t.Error("背景の分類が欠落しています (bottom=45)")
		}
	})

	t.Run("参照クロップの有無が明記されるのだ", func(t *testing.T) {
		if !strings.Contains(out, "no reference crop") {
			t.Error("参照なしの注記が欠落しています")
		}
	})
}

func TestShapeHint(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          string
	}{
		{"横長は horizontal spread なのだ", 30, 10, "horizontal spread"},
		{"縦長は vertical tall なのだ", 10, 30, "vertical tall"},
		{"中庸は balanced なのだ", 20, 20, "balanced"},
		{"比1.5ちょうどは balanced なのだ", 15, 10, "balanced"},
		{"比0.6ちょうどは balanced なのだ", 6, 10, "balanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShapeHint(tt.width, tt.height); got != tt.want {
				t.Errorf("期待値 %q, 実際の値 %q", tt.want, got)
			}
		})
	}
}
