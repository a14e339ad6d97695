package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-decor-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は addAppFlags で各フラグに紐付けられる実行時パラメータなのだ。
var opts config.RunOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.SourceFile, "source", "s", "", "会場写真またはスケッチのパス（ローカル, gs://..., https://...）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", config.DefaultOutputFile, "保存パス（ローカル or gs://...）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.TextModel, "model", config.DefaultTextModel, "テキスト解析に使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "画像生成に使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- レンダー選択肢（未指定の項目はAIの自動選択に委ねるのだ） ---
	renderCmd.Flags().StringVar(&opts.Category, "category", "", "会場カテゴリ（ballroom, garden など）なのだ。")
	renderCmd.Flags().StringVar(&opts.Style, "design-style", "", "デザイン様式なのだ。")
	renderCmd.Flags().StringVar(&opts.Palette, "palette", "", "全体の配色なのだ。")
	renderCmd.Flags().StringVar(&opts.SurfaceMaterial, "surface", "", "床・卓上の表面素材なのだ。")
	renderCmd.Flags().StringVar(&opts.TextileMaterial, "textile", "", "布もの（クロス・ドレープ）の素材なのだ。")
	renderCmd.Flags().StringVar(&opts.TextileColor1, "textile-color1", "", "布ものの主色なのだ。")
	renderCmd.Flags().StringVar(&opts.TextileColor2, "textile-color2", "", "布ものの差し色なのだ。")
	renderCmd.Flags().StringVar(&opts.Scene, "scene", "", "自由記述のシーン説明（空なら写真から自動記述するのだ）。")
	renderCmd.Flags().StringVar(&opts.CameraPreset, "camera", "", "カメラ/レンズプリセットのキーなのだ。")
	renderCmd.Flags().BoolVar(&opts.AutoFocus, "auto-focus", false, "主要装飾要素へ被写界深度を当てるのだ。")

	// --- 編集・変換固有設定 ---
	editCmd.Flags().StringVarP(&opts.Instruction, "instruction", "t", "", "編集内容の自由記述指示なのだ。")
	editCmd.Flags().StringVar(&opts.AnnotatedFile, "annotated", "", "マークを焼き込んだ注釈画像のパスなのだ。")
	editCmd.Flags().StringVar(&opts.ReferenceFile, "reference", "", "置換用の参照オブジェクト画像のパスなのだ。")
	editCmd.Flags().StringVar(&opts.Targets, "targets", "", "置換対象の座標（\"x,y;x,y\" パーセント指定）なのだ。")
	upscaleCmd.Flags().IntVar(&opts.Factor, "factor", 2, "アップスケール倍率（2 または 4）なのだ。")
	viewCmd.Flags().StringVar(&opts.ViewAngle, "angle", "FRONT", "視点アングルのキー（FRONT, CORNER, ENTRANCE, HEAD_TABLE, BIRDS_EYE）なのだ。")
	sketchCmd.Flags().StringVar(&opts.Style, "design-style", "", "変換後のデザイン様式なのだ。")
	sketchCmd.Flags().StringVar(&opts.Palette, "palette", "", "変換後の配色なのだ。")
	ideaCmd.Flags().StringVar(&opts.StyleFile, "style-ref", "", "スタイル参照画像のパスなのだ。")
	ideaCmd.Flags().StringVarP(&opts.RegionsFile, "regions", "r", "", "配置リージョンを記述したJSONのパスなのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-decor-go",
		addAppFlags,
		preRunAppE,
		renderCmd,
		upscaleCmd,
		editCmd,
		sketchCmd,
		viewCmd,
		ideaCmd,
	)
}
