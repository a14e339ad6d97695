package config

import (
	"strconv"
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultTextModel    = "gemini-3-flash-preview"
	DefaultImageModel   = "gemini-3-pro-image-preview"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateInterval = 10 * time.Second // 連続するモデル呼び出しの最小間隔
	DefaultCacheTTL     = 15 * time.Minute // アップスケール結果キャッシュの生存時間
	DefaultCredits      = 40               // 起動時のクレジット残高

	// 生成結果のデフォルト保存先（ローカル or gs://...）なのだ
	DefaultOutputFile = "output/decor.png"
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	TextModel    string
	ImageModel   string
	Credits      int

	Options RunOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		TextModel:    envutil.GetEnv("GEMINI_MODEL", DefaultTextModel),
		ImageModel:   envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		Credits:      getEnvInt("DECOR_CREDITS", DefaultCredits),
	}
}

// getEnvInt は整数の環境変数を読み、不正値ならデフォルトへ落とすのだ。
func getEnvInt(key string, fallback int) int {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// RunOptions は CLI フラグから渡される実行時のパラメータなのだ。
type RunOptions struct {
	// ソース入力関連
	SourceFile    string // --source: 会場写真やスケッチのパス（ローカル or gs://...）
	ReferenceFile string // --reference: オブジェクト置換用の参照画像パス
	AnnotatedFile string // --annotated: マークを焼き込んだ注釈画像パス
	StyleFile     string // --style-ref: アイデア生成用のスタイル参照画像パス
	RegionsFile   string // --regions: 配置リージョンを記述したJSONパス
	OutputFile    string // --output-file

	// レンダー選択肢
	Category        string
	Style           string
	Palette         string
	SurfaceMaterial string
	TextileMaterial string
	TextileColor1   string
	TextileColor2   string
	Scene           string
	CameraPreset    string
	AutoFocus       bool

	// 編集・変換関連
	Instruction string // --instruction: ユーザーの自由記述指示
	Targets     string // --targets: 置換座標 "x,y;x,y"（パーセント）
	Factor      int    // --factor: アップスケール倍率
	ViewAngle   string // --angle: 視点変更のアングルキー

	// AI挙動設定
	TextModel  string // --model: テキスト解析用のGeminiモデル
	ImageModel string // --image-model: 画像生成用のGeminiモデル

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
