package runner

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/prompts"
)

// RenderRunner は会場写真からのフォトリアル・レンダーを実行します。
type RenderRunner struct {
	client gemini.Client
	deps   Deps
	flight inFlight
}

// NewRenderRunner は依存を注入して初期化します。
func NewRenderRunner(client gemini.Client, deps Deps) *RenderRunner {
	return &RenderRunner{client: client, deps: deps}
}

// Run はレンダー結果を data URI で返します。シーン説明が空のときは
// 先に元画像をテキスト解析し、その記述でプロンプトを補うのだ。
func (r *RenderRunner) Run(ctx context.Context, source domain.ImagePayload, opts domain.RenderOptions) (string, error) {
	if !r.flight.begin() {
		return "", ErrBusy
	}
	defer r.flight.end()

	if source.IsZero() {
		return "", ErrNoSource
	}

	if err := r.deps.deduct(ctx, domain.CostRender, "render"); err != nil {
		return "", err
	}

	if strings.TrimSpace(opts.Scene) == "" {
		r.deps.notify("会場写真を解析しています...")
		if err := r.deps.wait(ctx); err != nil {
			return "", err
		}
		described, err := r.client.GenerateText(ctx, []domain.ImagePayload{source}, prompts.DescribeVenueInstruction)
		if err != nil {
			// 自動記述は補助なので、失敗してもレンダー自体は続行する
			slog.Warn("シーンの自動記述に失敗しました", "error", err)
		} else {
			opts.Scene = described
		}
	}

	userPrompt, systemPrompt := prompts.BuildRenderPrompt(opts)

	r.deps.notify("レンダーを生成しています...")
	if err := r.deps.wait(ctx); err != nil {
		return "", err
	}

	result, err := r.client.GenerateImage(ctx, gemini.ImageRequest{
		Images:       []domain.ImagePayload{source},
		Prompt:       userPrompt,
		SystemPrompt: systemPrompt,
		AspectRatio:  domain.AspectRatioFor(source.Width, source.Height),
	})
	if err != nil {
		r.deps.refund(ctx, domain.CostRender, "render failed")
		return "", generationFailure("render", err)
	}
	return result.DataURI(), nil
}
