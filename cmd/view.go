package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// viewCmd は、レンダー済みシーンの視点を切り替えるのだ。
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "シーンの内容を保ったまま視点アングルを切り替えるのだ。",
	Long: `レンダー済みの画像を読み込み、部屋の形状と装飾を保ったままカメラだけを
指定アングルへ動かすのだ。BIRDS_EYE だけは天井を外した真上からの
カットアウェイになるのだよ。`,
	Example: "  ap-decor-go view -s output/render.png --angle BIRDS_EYE -o output/render_top.png",
	RunE:    viewCommand,
}

func init() {
}

func viewCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceFile == "" {
		return fmt.Errorf("入力画像（--source）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.ImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("視点変更を起動するのだ！",
		"source", opts.SourceFile,
		"angle", opts.ViewAngle)

	if err := pipeline.ExecuteView(ctx, cfg); err != nil {
		return fmt.Errorf("視点変更中にエラーが発生したのだ: %w", err)
	}

	slog.Info("視点変更が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
