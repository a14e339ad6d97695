package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// ideaCmd は、スケッチから「構造→装飾」の2フェーズ生成を実行する最終ステージなのだ！
var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "スケッチから建築ベースと装飾合成の2段生成を実行するのだ！",
	Long: `会場スケッチを解析して空っぽの建築ベースを生成し（フェーズ1）、
その上に配置リージョンの装飾アイテムを遠近・影・遮蔽のルール込みで
合成するのだ（フェーズ2）。構造画像と最終画像の両方が保存されるのだよ。`,
	Example: "  ap-decor-go idea -s sketch.jpg -r regions.json --style-ref mood.jpg -o output/idea.png",
	RunE:    ideaCommand,
}

// init は将来的にフラグを追加する場合に使うのだ。
func init() {
}

// ideaCommand は、idea サブコマンドの実行ロジック本体なのだ。
func ideaCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceFile == "" {
		return fmt.Errorf("スケッチ画像（--source）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.TextModel = opts.TextModel
	cfg.ImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("アイデア生成パイプラインを起動するのだ！",
		"sketch", opts.SourceFile,
		"regions", opts.RegionsFile,
		"style_ref", opts.StyleFile,
		"image_model", cfg.ImageModel)

	if err := pipeline.ExecuteIdea(ctx, cfg); err != nil {
		return fmt.Errorf("アイデア生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("アイデア生成の全工程が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
