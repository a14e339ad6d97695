package prompts

import (
	"strings"
	"testing"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

func fullySpecified() domain.RenderOptions {
	return domain.RenderOptions{
		Category:        "ballroom",
		Style:           "classic",
		Palette:         "ivory and gold",
		SurfaceMaterial: "marble",
		TextileMaterial: "silk",
		TextileColor1:   "ivory",
		TextileColor2:   "gold",
	}
}

func TestEmpowerment(t *testing.T) {
	t.Run("全項目が明示済みなら空文字列なのだ", func(t *testing.T) {
		if got := Empowerment(fullySpecified()); got != "" {
			t.Errorf("空ブロックが出力されてしまいました: %q", got)
		}
	})

	t.Run("おまかせ項目ごとに矯正指示が積まれるのだ", func(t *testing.T) {
		opts := fullySpecified()
		opts.Style = domain.OptionAuto
		opts.Palette = domain.OptionAuto

		got := Empowerment(opts)
		if !strings.Contains(got, "design language") {
			t.Error("スタイルの矯正指示が欠落しています")
		}
		if !strings.Contains(got, "sample and match") {
			t.Error("配色の矯正指示が欠落しています")
		}
		if strings.Contains(got, "SURFACE MATERIAL is unspecified") {
			t.Error("明示済み項目に矯正指示が付いています")
		}
	})

	t.Run("布の色は布素材が明示のときだけ対象なのだ", func(t *testing.T) {
		opts := fullySpecified()
		opts.TextileMaterial = domain.OptionAuto
		opts.TextileColor1 = domain.OptionAuto
		opts.TextileColor2 = domain.OptionAuto

		got := Empowerment(opts)
		if !strings.Contains(got, "upgrade the existing fabrics") {
			t.Error("布素材の矯正指示が欠落しています")
		}
		if strings.Contains(got, "TEXTILE COLORS are unspecified") {
			t.Error("布素材がおまかせなのに布色の矯正指示が出ています")
		}

		opts.TextileMaterial = "velvet"
		got = Empowerment(opts)
		if !strings.Contains(got, "TEXTILE COLORS are unspecified") {
			t.Error("布素材が明示なのに布色の矯正指示が出ません")
		}
	})
}

func TestTextileDescription(t *testing.T) {
	tests := []struct {
		name                      string
		material, color1, color2  string
		wantContain, wantExclude string
	}{
		{"色2のみは accents 句なのだ", "Silk", "none", "Gold", "with accents of Gold", "primary color"},
		{"両色ありは primary/secondary なのだ", "Silk", "Ivory", "Gold", "primary color of Ivory and secondary color of Gold", ""},
		{"色1のみは in 句なのだ", "Silk", "Ivory", "none", "Silk in Ivory", "accents"},
		{"素材のみは素材だけなのだ", "Silk", "none", "none", "Silk", "in"},
		{"素材がおまかせなら汎用句なのだ", "none", "Ivory", "Gold", "elegant event textiles", "Ivory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextileDescription(tt.material, tt.color1, tt.color2)
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("%q を含みません: %q", tt.wantContain, got)
			}
			if tt.wantExclude != "" && strings.Contains(got, tt.wantExclude) {
				t.Errorf("%q を含んではいけません: %q", tt.wantExclude, got)
			}
		})
	}
}
