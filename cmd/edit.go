package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// editCmd は、注釈ベース編集またはオブジェクト置換編集を実行するのだ。
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "画像の注釈編集・オブジェクト置換を実行するのだ。",
	Long: `--annotated でマーク入り画像を渡せばマーク範囲だけの注釈編集、
--reference と --targets を渡せば指定座標のオブジェクトを参照画像で
置き換える置換編集になるのだ。`,
	Example: `  ap-decor-go edit -s render.png --annotated marked.png -t "make the drapes gold"
  ap-decor-go edit -s render.png --reference chair.jpg --targets "25,75;60,40"`,
	RunE: editCommand,
}

func init() {
}

func editCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceFile == "" {
		return fmt.Errorf("編集対象の画像（--source）を指定してほしいのだ")
	}
	if opts.AnnotatedFile == "" && opts.ReferenceFile == "" {
		return fmt.Errorf("編集には --annotated か --reference のどちらかが必要なのだ")
	}

	cfg := config.LoadConfig()
	cfg.ImageModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("編集モードを起動するのだ！",
		"source", opts.SourceFile,
		"annotated", opts.AnnotatedFile,
		"reference", opts.ReferenceFile)

	if err := pipeline.ExecuteEdit(ctx, cfg); err != nil {
		return fmt.Errorf("編集中にエラーが発生したのだ: %w", err)
	}

	slog.Info("編集が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
