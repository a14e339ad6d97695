package runner

import (
	"context"
	"log/slog"

	"github.com/patrickmn/go-cache"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/prompts"
)

// UpscaleRunner は単一パスのアップスケール操作を実行します。
type UpscaleRunner struct {
	client gemini.Client
	deps   Deps
	cache  *cache.Cache
	flight inFlight
}

// NewUpscaleRunner は依存を注入して初期化します。cache は nil 可です。
func NewUpscaleRunner(client gemini.Client, deps Deps, resultCache *cache.Cache) *UpscaleRunner {
	return &UpscaleRunner{
		client: client,
		deps:   deps,
		cache:  resultCache,
	}
}

// Run はアップスケール結果を data URI で返します。
// 入力検証 → 引き落とし → プロンプト構築 → 1回の呼び出し → 先頭画像の抽出、
// の順で、応答に画像がなければ失敗です。自動リトライはしないのだ。
func (r *UpscaleRunner) Run(ctx context.Context, source domain.ImagePayload, opts domain.UpscaleOptions) (string, error) {
	if !r.flight.begin() {
		return "", ErrBusy
	}
	defer r.flight.end()

	if source.IsZero() {
		return "", ErrNoSource
	}

	prompt := prompts.BuildUpscalePrompt(opts)

	if r.cache != nil {
		if hit, ok := r.cache.Get(cacheKey(source, prompt)); ok {
			slog.Info("アップスケール結果をキャッシュから返すのだ")
			return hit.(string), nil
		}
	}

	if err := r.deps.deduct(ctx, domain.CostUpscale, "upscale"); err != nil {
		return "", err
	}

	r.deps.notify("画像を高解像度化しています...")
	if err := r.deps.wait(ctx); err != nil {
		return "", err
	}

	result, err := r.client.GenerateImage(ctx, gemini.ImageRequest{
		Images:      []domain.ImagePayload{source},
		Prompt:      prompt,
		AspectRatio: domain.AspectRatioFor(source.Width, source.Height),
	})
	if err != nil {
		r.deps.refund(ctx, domain.CostUpscale, "upscale failed")
		return "", generationFailure("upscale", err)
	}

	uri := result.DataURI()
	if r.cache != nil {
		r.cache.Set(cacheKey(source, prompt), uri, cache.DefaultExpiration)
	}
	return uri, nil
}
