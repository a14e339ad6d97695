package runner

import (
	"context"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/prompts"
)

// ViewRunner はレンダー済みシーンの視点変更を実行します。
type ViewRunner struct {
	client gemini.Client
	deps   Deps
	flight inFlight
}

// NewViewRunner は依存を注入して初期化します。
func NewViewRunner(client gemini.Client, deps Deps) *ViewRunner {
	return &ViewRunner{client: client, deps: deps}
}

// Run は視点変更の結果を data URI で返します。未知のアングルキーは
// カタログの既定アングルへ落ちるのだ。
func (r *ViewRunner) Run(ctx context.Context, source domain.ImagePayload, angleKey string) (string, error) {
	if !r.flight.begin() {
		return "", ErrBusy
	}
	defer r.flight.end()

	if source.IsZero() {
		return "", ErrNoSource
	}

	if err := r.deps.deduct(ctx, domain.CostView, "view change"); err != nil {
		return "", err
	}

	angle := prompts.LookupViewAngle(angleKey)

	r.deps.notify("視点を切り替えています...")
	if err := r.deps.wait(ctx); err != nil {
		return "", err
	}

	result, err := r.client.GenerateImage(ctx, gemini.ImageRequest{
		Images:      []domain.ImagePayload{source},
		Prompt:      prompts.BuildViewChangePrompt(angle),
		AspectRatio: domain.AspectRatioFor(source.Width, source.Height),
	})
	if err != nil {
		r.deps.refund(ctx, domain.CostView, "view change failed")
		return "", generationFailure("view", err)
	}
	return result.DataURI(), nil
}
