package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shouni/go-decor-kit/internal/builder"
	"github.com/shouni/go-decor-kit/internal/config"
	"github.com/shouni/go-decor-kit/pkg/domain"
	"github.com/shouni/go-decor-kit/pkg/imaging"

	"github.com/shouni/go-http-kit/httpkit"
	gcsfactory "github.com/shouni/go-remote-io/remoteio/gcs"
)

// ExecuteRender は、会場写真を読み込んでフォトリアル・レンダーを実行し、
// 結果を保存先へ書き出すのだ。
func ExecuteRender(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := loadImage(ctx, appCtx, cfg.Options.SourceFile, imaging.PrimaryEdge)
	if err != nil {
		return err
	}

	renderRunner := builder.BuildRenderRunner(appCtx)
	uri, err := renderRunner.Run(ctx, source, renderOptions(cfg.Options))
	if err != nil {
		return fmt.Errorf("レンダーの実行に失敗したのだ: %w", err)
	}

	return saveResult(ctx, appCtx, uri)
}

// ExecuteUpscale は、画像を読み込んで高解像度化し、結果を保存するのだ。
func ExecuteUpscale(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := loadImage(ctx, appCtx, cfg.Options.SourceFile, imaging.PrimaryEdge)
	if err != nil {
		return err
	}

	upscaleRunner := builder.BuildUpscaleRunner(appCtx)
	uri, err := upscaleRunner.Run(ctx, source, domain.UpscaleOptions{Factor: cfg.Options.Factor})
	if err != nil {
		return fmt.Errorf("アップスケールの実行に失敗したのだ: %w", err)
	}

	return saveResult(ctx, appCtx, uri)
}

// ExecuteEdit は、注釈編集またはオブジェクト置換を実行するのだ。
// --annotated が指定されていれば注釈モード、--reference と --targets が
// 揃っていれば置換モードとして解釈します。
func ExecuteEdit(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := loadImage(ctx, appCtx, cfg.Options.SourceFile, imaging.PrimaryEdge)
	if err != nil {
		return err
	}

	opts := domain.EditOptions{Instruction: cfg.Options.Instruction}
	switch {
	case cfg.Options.AnnotatedFile != "":
		annotated, err := loadImage(ctx, appCtx, cfg.Options.AnnotatedFile, imaging.PrimaryEdge)
		if err != nil {
			return err
		}
		opts.Mode = domain.EditAnnotation
		opts.Annotated = annotated

	case cfg.Options.ReferenceFile != "":
		reference, err := loadImage(ctx, appCtx, cfg.Options.ReferenceFile, imaging.ReferenceEdge)
		if err != nil {
			return err
		}
		targets, err := parseTargets(cfg.Options.Targets)
		if err != nil {
			return err
		}
		opts.Mode = domain.EditObjectSwap
		opts.Reference = reference
		opts.Targets = targets

	default:
		return fmt.Errorf("編集には --annotated または --reference と --targets の指定が必要なのだ")
	}

	editRunner := builder.BuildEditRunner(appCtx)
	uri, err := editRunner.Run(ctx, source, opts)
	if err != nil {
		return fmt.Errorf("編集の実行に失敗したのだ: %w", err)
	}

	return saveResult(ctx, appCtx, uri)
}

// ExecuteView は、レンダー済みシーンの視点を切り替えるのだ。
func ExecuteView(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := loadImage(ctx, appCtx, cfg.Options.SourceFile, imaging.PrimaryEdge)
	if err != nil {
		return err
	}

	viewRunner := builder.BuildViewRunner(appCtx)
	uri, err := viewRunner.Run(ctx, source, cfg.Options.ViewAngle)
	if err != nil {
		return fmt.Errorf("視点変更の実行に失敗したのだ: %w", err)
	}

	return saveResult(ctx, appCtx, uri)
}

// ExecuteSketch は、手描きスケッチをフォトリアル画像へ変換するのだ。
func ExecuteSketch(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	sketch, err := loadImage(ctx, appCtx, cfg.Options.SourceFile, imaging.PrimaryEdge)
	if err != nil {
		return err
	}

	sketchRunner := builder.BuildSketchRunner(appCtx)
	uri, err := sketchRunner.Run(ctx, sketch, domain.SketchOptions{
		Style:   cfg.Options.Style,
		Palette: cfg.Options.Palette,
	})
	if err != nil {
		return fmt.Errorf("スケッチ変換の実行に失敗したのだ: %w", err)
	}

	return saveResult(ctx, appCtx, uri)
}

// ExecuteIdea は、スケッチから「構造→装飾」の2フェーズ生成を実行し、
// 構造画像と最終画像の両方を保存するのだ。
func ExecuteIdea(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	sketch, err := loadImage(ctx, appCtx, cfg.Options.SourceFile, imaging.PrimaryEdge)
	if err != nil {
		return err
	}

	var styleRef *domain.ImagePayload
	if cfg.Options.StyleFile != "" {
		style, err := loadImage(ctx, appCtx, cfg.Options.StyleFile, imaging.ReferenceEdge)
		if err != nil {
			return err
		}
		styleRef = &style
	}

	regions, err := loadRegions(ctx, appCtx, cfg.Options.RegionsFile)
	if err != nil {
		return err
	}

	ideaRunner := builder.BuildIdeaRunner(appCtx)
	result, err := ideaRunner.Run(ctx, sketch, styleRef, regions)
	if err != nil {
		return fmt.Errorf("アイデア生成の実行に失敗したのだ: %w", err)
	}

	// 構造画像は最終画像の隣へ _structure サフィックスで保存するのだ
	structurePath := suffixPath(outputPath(appCtx), "_structure")
	if err := writePayload(ctx, appCtx, structurePath, result.Structure); err != nil {
		return err
	}
	if err := writePayload(ctx, appCtx, outputPath(appCtx), result.Final); err != nil {
		return err
	}

	slog.Info("アイデア生成が完了したのだ！",
		"structure", structurePath,
		"final", outputPath(appCtx),
		"balance", appCtx.Ledger.Balance())
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	httpClient := httpkit.New(config.DefaultHTTPTimeout)
	aiClient, err := builder.InitializeAIClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	ledger := domain.NewLedger(cfg.Credits)
	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer, ledger)
	return &appCtx, nil
}

// loadImage は入力パスから画像を読み込み、長辺を上限まで縮小して正規化するのだ。
// http(s):// の画像は共有 HTTP クライアント経由で取得します。
func loadImage(ctx context.Context, appCtx *builder.AppContext, path string, maxEdge int) (domain.ImagePayload, error) {
	if path == "" {
		return domain.ImagePayload{}, fmt.Errorf("入力画像（--source など）を指定してほしいのだ")
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		payload, err := imaging.FetchURL(ctx, appCtx.Fetcher(), path, maxEdge)
		if err != nil {
			return domain.ImagePayload{}, fmt.Errorf("画像 '%s' の取得に失敗しました: %w", path, err)
		}
		return payload, nil
	}

	rc, err := appCtx.Reader.Open(ctx, path)
	if err != nil {
		return domain.ImagePayload{}, fmt.Errorf("画像 '%s' の読み込みに失敗しました: %w", path, err)
	}
	defer rc.Close()

	payload, err := imaging.Ingest(rc, maxEdge, imaging.DefaultQuality)
	if err != nil {
		return domain.ImagePayload{}, fmt.Errorf("画像 '%s' の正規化に失敗しました: %w", path, err)
	}
	return payload, nil
}

// loadRegions は配置リージョンのJSONファイルを読み込むのだ。パスが空なら
// リージョンなしとして扱います。
func loadRegions(ctx context.Context, appCtx *builder.AppContext, path string) ([]domain.Region, error) {
	if path == "" {
		return nil, nil
	}

	rc, err := appCtx.Reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("リージョンファイル '%s' の読み込みに失敗しました: %w", path, err)
	}
	defer rc.Close()

	var regions []domain.Region
	if err := json.NewDecoder(rc).Decode(&regions); err != nil {
		return nil, fmt.Errorf("リージョンファイル '%s' のデコードに失敗しました: %w", path, err)
	}
	return regions, nil
}

// parseTargets は "x,y;x,y" 形式の座標指定をパースするのだ。
// 値はパーセンテージ空間 [0,100] として解釈されます。
func parseTargets(raw string) ([]domain.Point, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("置換対象の座標（--targets）を指定してほしいのだ")
	}

	var points []domain.Point
	for _, pair := range strings.Split(raw, ";") {
		parts := strings.Split(strings.TrimSpace(pair), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("座標指定 '%s' が不正なのだ（x,y 形式で指定してほしい）", pair)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("座標指定 '%s' を数値として解釈できないのだ", pair)
		}
		points = append(points, domain.NewPoint(x, y))
	}
	return points, nil
}

// renderOptions は CLI オプションをレンダー選択肢へ写すのだ。
// 未指定の項目は自動選択の番兵値のままにします。
func renderOptions(opts config.RunOptions) domain.RenderOptions {
	orAuto := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return domain.OptionAuto
		}
		return v
	}
	return domain.RenderOptions{
		Category:        orAuto(opts.Category),
		Style:           orAuto(opts.Style),
		Palette:         orAuto(opts.Palette),
		SurfaceMaterial: orAuto(opts.SurfaceMaterial),
		TextileMaterial: orAuto(opts.TextileMaterial),
		TextileColor1:   orAuto(opts.TextileColor1),
		TextileColor2:   orAuto(opts.TextileColor2),
		Scene:           opts.Scene,
		CameraPreset:    opts.CameraPreset,
		AutoFocus:       opts.AutoFocus,
	}
}

// outputPath は保存先パスを返します。未指定ならデフォルトへ落とすのだ。
func outputPath(appCtx *builder.AppContext) string {
	if appCtx.Options.OutputFile != "" {
		return appCtx.Options.OutputFile
	}
	return config.DefaultOutputFile
}

// suffixPath は拡張子の手前にサフィックスを差し込むのだ。
func suffixPath(path, suffix string) string {
	if idx := strings.LastIndex(path, "."); idx > strings.LastIndex(path, "/") {
		return path[:idx] + suffix + path[idx:]
	}
	return path + suffix
}

// saveResult は data URI の生成結果をデコードして保存先へ書き出すのだ。
func saveResult(ctx context.Context, appCtx *builder.AppContext, uri string) error {
	return writePayload(ctx, appCtx, outputPath(appCtx), domain.PayloadFromDataURI(uri))
}

func writePayload(ctx context.Context, appCtx *builder.AppContext, path string, payload domain.ImagePayload) error {
	data, err := payload.Bytes()
	if err != nil {
		return fmt.Errorf("生成結果のデコードに失敗しました: %w", err)
	}
	if err := appCtx.Writer.Write(ctx, path, bytes.NewReader(data), payload.MimeType); err != nil {
		return fmt.Errorf("生成結果の保存に失敗したのだ: %w", err)
	}
	slog.Info("生成結果を保存したのだ！", "path", path, "balance", appCtx.Ledger.Balance())
	return nil
}
