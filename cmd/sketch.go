package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// sketchCmd は、手描きスケッチをフォトリアル画像へ変換するのだ。
var sketchCmd = &cobra.Command{
	Use:   "sketch",
	Short: "手描きスケッチをフォトリアル画像へ変換するのだ。",
	Long: `装飾プランの手描きスケッチや線画を読み込み、線の構図を保ったまま
フォトリアルなイメージへ一発変換するのだ。`,
	Example: "  ap-decor-go sketch -s plan.jpg --design-style rustic -o output/plan_photo.png",
	RunE:    sketchCommand,
}

func init() {
}

func sketchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceFile == "" {
		return fmt.Errorf("スケッチ画像（--source）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.ImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("スケッチ変換を起動するのだ！",
		"source", opts.SourceFile,
		"image_model", cfg.ImageModel)

	if err := pipeline.ExecuteSketch(ctx, cfg); err != nil {
		return fmt.Errorf("スケッチ変換中にエラーが発生したのだ: %w", err)
	}

	slog.Info("スケッチ変換が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
