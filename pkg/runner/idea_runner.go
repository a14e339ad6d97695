package runner

import (
	"bytes"
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/gemini"
	"github.com/shouni/go-decor-kit/pkg/imaging"
	"github.com/shouni/go-decor-kit/pkg/prompts"
	"github.com/shouni/go-decor-kit/pkg/spatial"
)

// IdeaState はアイデアパイプラインの状態です。
type IdeaState string

const (
	StateUpload    IdeaState = "UPLOAD"
	StateStructure IdeaState = "STRUCTURE_GENERATED"
	StateCompleted IdeaState = "COMPLETED"
)

// IdeaResult は2フェーズの成果物の組です。
type IdeaResult struct {
	Structure domain.ImagePayload // フェーズ1の建築ベース
	Final     domain.ImagePayload // フェーズ2の装飾合成結果
}

// IdeaRunner は「解析 → 構造 → 装飾」の逐次パイプラインを実行します。
// フェーズ2はフェーズ1の応答を完全に受信するまで開始されず、
// 2フェーズの投機的・並列実行は存在しません。
type IdeaRunner struct {
	client gemini.Client
	deps   Deps
	flight inFlight

	mu    sync.Mutex
	state IdeaState
}

// NewIdeaRunner は依存を注入して初期化します。
func NewIdeaRunner(client gemini.Client, deps Deps) *IdeaRunner {
	return &IdeaRunner{
		client: client,
		deps:   deps,
		state:  StateUpload,
	}
}

// State は現在のパイプライン状態を返します。
func (r *IdeaRunner) State() IdeaState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Reset は新しいスケッチのアップロードに伴い状態を UPLOAD へ戻します。
// リージョンの連鎖削除はスケッチを所有する selector 側の責務なのだ。
func (r *IdeaRunner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = StateUpload
}

func (r *IdeaRunner) setState(s IdeaState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = s
}

// Run はフル・パイプラインを実行し、構造画像と最終画像の両方を返します。
func (r *IdeaRunner) Run(ctx context.Context, sketch domain.ImagePayload, styleRef *domain.ImagePayload, regions []domain.Region) (*IdeaResult, error) {
	if !r.flight.begin() {
		return nil, ErrBusy
	}
	defer r.flight.end()

	if sketch.IsZero() {
		return nil, ErrNoSketch
	}

	if err := r.deps.deduct(ctx, domain.CostIdea, "idea generation"); err != nil {
		return nil, err
	}

	// フェーズ0: スケッチの事前解析（テキスト）
	r.deps.notify("スケッチを解析しています...")
	if err := r.deps.wait(ctx); err != nil {
		return nil, err
	}
	analysis, err := r.client.GenerateText(ctx, []domain.ImagePayload{sketch}, prompts.AnalyzeSketchInstruction)
	if err != nil {
		r.deps.refund(ctx, domain.CostIdea, "idea analyze failed")
		return nil, generationFailure("idea/analyze", err)
	}

	// フェーズ1: 建築ベースの生成
	r.deps.notify("建築構造を生成しています...")
	if err := r.deps.wait(ctx); err != nil {
		return nil, err
	}
	images := []domain.ImagePayload{sketch}
	if styleRef != nil && !styleRef.IsZero() {
		images = append(images, *styleRef)
	}
	structure, err := r.client.GenerateImage(ctx, gemini.ImageRequest{
		Images:      images,
		Prompt:      prompts.BuildStructurePrompt(analysis, styleRef != nil && !styleRef.IsZero()),
		AspectRatio: domain.AspectRatioFor(sketch.Width, sketch.Height),
	})
	if err != nil {
		r.deps.refund(ctx, domain.CostIdea, "idea structure failed")
		return nil, generationFailure("idea/structure", err)
	}
	r.setState(StateStructure)

	// フェーズ2: 装飾の合成
	final, err := r.decorate(ctx, structure, regions)
	if err != nil {
		r.deps.refund(ctx, domain.CostIdea, "idea decorate failed")
		return nil, err
	}
	r.setState(StateCompleted)

	return &IdeaResult{Structure: structure, Final: final}, nil
}

// Redecorate はフェーズ2だけを再実行します。呼び出し側が明示的に選ぶ
// モードで、直前の最終画像を新しい背景として渡すことで、フェーズ1を
// やり直さずに装飾の追加を繰り返せます。状態は COMPLETED のまま遷移しません。
func (r *IdeaRunner) Redecorate(ctx context.Context, background domain.ImagePayload, regions []domain.Region) (domain.ImagePayload, error) {
	if !r.flight.begin() {
		return domain.ImagePayload{}, ErrBusy
	}
	defer r.flight.end()

	if background.IsZero() {
		return domain.ImagePayload{}, ErrNoSource
	}

	if err := r.deps.deduct(ctx, domain.CostDecorate, "decor re-run"); err != nil {
		return domain.ImagePayload{}, err
	}

	final, err := r.decorate(ctx, background, regions)
	if err != nil {
		r.deps.refund(ctx, domain.CostDecorate, "decor re-run failed")
		return domain.ImagePayload{}, err
	}
	return final, nil
}

// decorate は背景画像へリージョンの装飾を合成します。背景が常に先頭の
// inline-data パートで、参照クロップがその後にリージョン順で続くのだ。
func (r *IdeaRunner) decorate(ctx context.Context, background domain.ImagePayload, regions []domain.Region) (domain.ImagePayload, error) {
	refs, err := r.prepareReferences(ctx, regions)
	if err != nil {
		return domain.ImagePayload{}, generationFailure("idea/prepare", err)
	}

	r.deps.notify("装飾アイテムを配置しています...")
	if err := r.deps.wait(ctx); err != nil {
		return domain.ImagePayload{}, err
	}

	images := append([]domain.ImagePayload{background}, refs...)
	final, err := r.client.GenerateImage(ctx, gemini.ImageRequest{
		Images:      images,
		Prompt:      prompts.BuildDecoratePrompt(spatial.Synthesize(regions)),
		AspectRatio: domain.AspectRatioFor(background.Width, background.Height),
	})
	if err != nil {
		return domain.ImagePayload{}, generationFailure("idea/decorate", err)
	}
	return final, nil
}

// prepareReferences は各リージョンの参照クロップを並列で正規化します。
// 長辺を参照用上限まで縮小して転送量を抑えるのだ。
func (r *IdeaRunner) prepareReferences(ctx context.Context, regions []domain.Region) ([]domain.ImagePayload, error) {
	withRef := make([]domain.Region, 0, len(regions))
	for _, reg := range regions {
		if reg.HasReference() {
			withRef = append(withRef, reg)
		}
	}

	refs := make([]domain.ImagePayload, len(withRef))
	eg, _ := errgroup.WithContext(ctx)
	for i, reg := range withRef {
		i, reg := i, reg
		eg.Go(func() error {
			data, err := reg.Reference.Bytes()
			if err != nil {
				return err
			}
			normalized, err := imaging.Ingest(bytes.NewReader(data), imaging.ReferenceEdge, imaging.DefaultQuality)
			if err != nil {
				// デコードできない参照はそのまま送る（モデル側で解釈させる）
				refs[i] = *reg.Reference
				return nil
			}
			refs[i] = normalized
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return refs, nil
}
