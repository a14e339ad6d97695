package runner

import (
	"context"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/prompts"
)

// SketchRunner はスケッチ→フォトリアル変換を実行します。
type SketchRunner struct {
	client gemini.Client
	deps   Deps
	flight inFlight
}

// NewSketchRunner は依存を注入して初期化します。
func NewSketchRunner(client gemini.Client, deps Deps) *SketchRunner {
	return &SketchRunner{client: client, deps: deps}
}

// Run は変換結果を data URI で返します。
func (r *SketchRunner) Run(ctx context.Context, sketch domain.ImagePayload, opts domain.SketchOptions) (string, error) {
	if !r.flight.begin() {
		return "", ErrBusy
	}
	defer r.flight.end()

	if sketch.IsZero() {
		return "", ErrNoSketch
	}

	if err := r.deps.deduct(ctx, domain.CostSketch, "sketch conversion"); err != nil {
		return "", err
	}

	r.deps.notify("スケッチをフォトリアル化しています...")
	if err := r.deps.wait(ctx); err != nil {
		return "", err
	}

	result, err := r.client.GenerateImage(ctx, gemini.ImageRequest{
		Images:      []domain.ImagePayload{sketch},
		Prompt:      prompts.BuildSketchPrompt(opts),
		AspectRatio: domain.AspectRatioFor(sketch.Width, sketch.Height),
	})
	if err != nil {
		r.deps.refund(ctx, domain.CostSketch, "sketch conversion failed")
		return "", generationFailure("sketch", err)
	}
	return result.DataURI(), nil
}
