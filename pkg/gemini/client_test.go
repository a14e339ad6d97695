package gemini

import (
	"errors"
	"testing"
)

func TestParseDetectedPoints(t *testing.T) {
	t.Run("正常な配列がパースされるのだ", func(t *testing.T) {
		pts, err := ParseDetectedPoints(`[{"x": 25.5, "y": 70}, {"x": 80, "y": 10}]`)
		if err != nil {
			t.Fatalf("パースに失敗しました: %v", err)
		}
		if len(pts) != 2 || pts[0].X != 25.5 || pts[1].Y != 10 {
			t.Errorf("パース結果が不正です: %+v", pts)
		}
	})

	t.Run("空配列は検出ゼロとして成功するのだ", func(t *testing.T) {
		pts, err := ParseDetectedPoints(`[]`)
		if err != nil {
			t.Fatalf("空配列でエラーが返りました: %v", err)
		}
		if len(pts) != 0 {
			t.Errorf("検出数が不正です: %d", len(pts))
		}
	})

	t.Run("範囲外の座標はクランプされるのだ", func(t *testing.T) {
		pts, err := ParseDetectedPoints(`[{"x": -10, "y": 150}]`)
		if err != nil {
			t.Fatalf("パースに失敗しました: %v", err)
		}
		if pts[0].X != 0 || pts[0].Y != 100 {
			t.Errorf("クランプされていません: %+v", pts[0])
		}
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"配列でないJSONは不正なのだ", `{"x": 1, "y": 2}`},
		{"JSONですらない文字列は不正なのだ", `similar objects: (10, 20)`},
		{"座標が欠けた要素は不正なのだ", `[{"x": 10}]`},
		{"座標が数値でない要素は不正なのだ", `[{"x": "10", "y": "20"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDetectedPoints(tt.raw)
			if !errors.Is(err, ErrDetectMalformed) {
				t.Errorf("ErrDetectMalformed が返りませんでした: %v", err)
			}
		})
	}
}
