package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/imaging"
	"github.com/shouni/go-decor-kit/pkg/runner"
	"github.com/shouni/go-decor-kit/pkg/selector"
)

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, cfg *config.Config) (gemini.Client, error) {
	const defaultTemperature = float32(0.2)
	temperature := defaultTemperature
	aiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.GeminiAPIKey,
		TextModel:   cfg.TextModel,
		ImageModel:  cfg.ImageModel,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// buildDeps は全 Runner が共有する依存の束を組み立てるのだ。
// 流量制御は呼び出し間隔ベースで、バーストは1に固定します。
func buildDeps(appCtx *AppContext) runner.Deps {
	return runner.Deps{
		Deduct:  appCtx.Ledger.Deduct,
		Refund:  appCtx.Ledger.Refund,
		Limiter: rate.NewLimiter(rate.Every(config.DefaultRateInterval), 1),
		Status: func(stage string) {
			slog.Info(stage, "balance", appCtx.Ledger.Balance())
		},
	}
}

// BuildRenderRunner はフォトリアル・レンダーを担当する Runner を構築します。
func BuildRenderRunner(appCtx *AppContext) *runner.RenderRunner {
	return runner.NewRenderRunner(appCtx.aiClient, buildDeps(appCtx))
}

// BuildUpscaleRunner はアップスケールを担当する Runner を構築します。
// 同一入力の再実行に備えて結果キャッシュを併設するのだ。
func BuildUpscaleRunner(appCtx *AppContext) *runner.UpscaleRunner {
	resultCache := cache.New(config.DefaultCacheTTL, 2*config.DefaultCacheTTL)
	return runner.NewUpscaleRunner(appCtx.aiClient, buildDeps(appCtx), resultCache)
}

// BuildEditRunner は注釈編集・オブジェクト置換を担当する Runner を構築します。
func BuildEditRunner(appCtx *AppContext) *runner.EditRunner {
	return runner.NewEditRunner(appCtx.aiClient, buildDeps(appCtx))
}

// BuildSketchRunner はスケッチ→フォトリアル変換を担当する Runner を構築します。
func BuildSketchRunner(appCtx *AppContext) *runner.SketchRunner {
	return runner.NewSketchRunner(appCtx.aiClient, buildDeps(appCtx))
}

// BuildViewRunner はレンダー済みシーンの視点変更を担当する Runner を構築します。
func BuildViewRunner(appCtx *AppContext) *runner.ViewRunner {
	return runner.NewViewRunner(appCtx.aiClient, buildDeps(appCtx))
}

// BuildIdeaRunner は構造→装飾のアイデアパイプラインを構築します。
func BuildIdeaRunner(appCtx *AppContext) *runner.IdeaRunner {
	return runner.NewIdeaRunner(appCtx.aiClient, buildDeps(appCtx))
}

// BuildSelector は置換対象の点選択セッションを構築します。
func BuildSelector(appCtx *AppContext) *selector.Selector {
	return selector.New(appCtx.aiClient, appCtx.Ledger.Deduct)
}

// HTTPTimeout は実行時オプションのタイムアウトを返します。未指定なら既定値なのだ。
func (a *AppContext) HTTPTimeout() time.Duration {
	if a.Options.HTTPTimeout > 0 {
		return a.Options.HTTPTimeout
	}
	return config.DefaultHTTPTimeout
}

// Fetcher は外部URL画像の取得に使う HTTP クライアントを返します。
func (a *AppContext) Fetcher() imaging.Doer {
	return a.httpClient
}
