package runner

import (
	"context"
	"fmt"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/prompts"
)

// EditRunner は注釈ベース編集とオブジェクト置換編集を実行します。
type EditRunner struct {
	client gemini.Client
	deps   Deps
	flight inFlight
}

// NewEditRunner は依存を注入して初期化します。
func NewEditRunner(client gemini.Client, deps Deps) *EditRunner {
	return &EditRunner{client: client, deps: deps}
}

// Run は編集結果を data URI で返します。必要な副画像・座標が揃っているかを
// モードごとに検証してからでないと、一切の引き落ても呼び出しも行いません。
func (r *EditRunner) Run(ctx context.Context, source domain.ImagePayload, opts domain.EditOptions) (string, error) {
	if !r.flight.begin() {
		return "", ErrBusy
	}
	defer r.flight.end()

	if source.IsZero() {
		return "", ErrNoSource
	}

	var (
		prompt string
		images []domain.ImagePayload
		stage  string
	)

	switch opts.Mode {
	case domain.EditAnnotation:
		if opts.Annotated.IsZero() {
			return "", ErrNoAnnotation
		}
		prompt = prompts.BuildAnnotationEditPrompt(opts.Instruction)
		images = []domain.ImagePayload{source, opts.Annotated}
		stage = "注釈に沿って編集しています..."

	case domain.EditObjectSwap:
		if opts.Reference.IsZero() {
			return "", ErrNoReference
		}
		if len(opts.Targets) == 0 {
			return "", ErrNoTargets
		}
		prompt = prompts.BuildObjectSwapPrompt(opts.Targets, opts.Instruction)
		images = []domain.ImagePayload{source, opts.Reference}
		stage = "オブジェクトを置換しています..."

	default:
		return "", fmt.Errorf("未知の編集モードです: %q", opts.Mode)
	}

	if err := r.deps.deduct(ctx, domain.CostEdit, "edit"); err != nil {
		return "", err
	}

	r.deps.notify(stage)
	if err := r.deps.wait(ctx); err != nil {
		return "", err
	}

	result, err := r.client.GenerateImage(ctx, gemini.ImageRequest{
		Images:      images,
		Prompt:      prompt,
		AspectRatio: domain.AspectRatioFor(source.Width, source.Height),
	})
	if err != nil {
		r.deps.refund(ctx, domain.CostEdit, "edit failed")
		return "", generationFailure("edit", err)
	}
	return result.DataURI(), nil
}
