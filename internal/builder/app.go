package builder

import (
	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options    config.RunOptions       // Optionsは、コマンドラインから渡された実行時の設定です（入力パス、選択肢など）。
	Reader     remoteio.InputReader    // Readerは、会場写真や参照画像の読み込みに使用する入力元です。
	Writer     remoteio.OutputWriter   // Writerは、生成された画像を保存するための出力先です。
	Ledger     *domain.Ledger          // Ledgerは、操作コストを管理するクレジット台帳です。
	aiClient   gemini.Client           // aiClient はGeminiの通信に使う共通クライアント
	httpClient httpkit.Doer // httpClient は外部画像の取得に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.Doer,
	aiClient gemini.Client,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	ledger *domain.Ledger,
) AppContext {
	return AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		aiClient:   aiClient,
		httpClient: httpClient,
		Reader:     reader,
		Writer:     writer,
		Ledger:     ledger,
	}
}
