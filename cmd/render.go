package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// renderCmd は、会場写真からフォトリアルな装飾レンダーを生成するのだ。
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "会場写真からフォトリアルな装飾レンダーを生成するのだ。",
	Long: `会場写真を読み込み、カテゴリ・様式・素材などの選択肢に沿って
装飾済みのフォトリアル画像を生成するのだ。未指定の選択肢はAIが自動で決めるのだよ。`,
	Example: "  ap-decor-go render -s venue.jpg --category ballroom --textile velvet -o output/render.png",
	RunE:    renderCommand,
}

func init() {
}

func renderCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.SourceFile == "" {
		return fmt.Errorf("会場写真（--source）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.TextModel = opts.TextModel
	cfg.ImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("レンダー生成を起動するのだ！",
		"source", opts.SourceFile,
		"image_model", cfg.ImageModel,
		"output", opts.OutputFile)

	// 3. パイプライン実行
	if err := pipeline.ExecuteRender(ctx, cfg); err != nil {
		return fmt.Errorf("レンダー生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("レンダー生成が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
