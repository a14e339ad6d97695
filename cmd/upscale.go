package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// upscaleCmd は、生成済み画像を高解像度化するのだ。
var upscaleCmd = &cobra.Command{
	Use:   "upscale",
	Short: "画像をディテール保持で高解像度化するのだ。",
	Long: `生成済みのレンダー画像などを読み込み、構図を変えずに解像度とディテールを
引き上げるのだ。同じ入力での再実行はキャッシュから即座に返るのだよ。`,
	Example: "  ap-decor-go upscale -s output/render.png --factor 4 -o output/render_4x.png",
	RunE:    upscaleCommand,
}

func init() {
}

func upscaleCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceFile == "" {
		return fmt.Errorf("入力画像（--source）を指定してほしいのだ")
	}
	if opts.Factor != 2 && opts.Factor != 4 {
		return fmt.Errorf("アップスケール倍率（--factor）は 2 か 4 を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.ImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("アップスケールを起動するのだ！",
		"source", opts.SourceFile,
		"factor", opts.Factor,
		"image_model", cfg.ImageModel)

	if err := pipeline.ExecuteUpscale(ctx, cfg); err != nil {
		return fmt.Errorf("アップスケール中にエラーが発生したのだ: %w", err)
	}

	slog.Info("アップスケールが完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
