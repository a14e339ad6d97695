// Package gemini は外部生成モデルとの唯一の通信境界です。
// テキスト解析・構造化JSON検出・画像生成の3能力だけを公開し、
// 画像は常に Base64 + MIME タイプの組で往復します。
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/shouni/go-decor-kit/pkg/domain"
)

// ErrNoImage はモデル応答に画像が1枚も含まれなかったことを示します。
// 自動リトライは行いません。
var ErrNoImage = errors.New("モデル応答に画像が含まれていません")

// ErrDetectMalformed は検出応答が期待スキーマに適合しないことを示します。
var ErrDetectMalformed = errors.New("検出応答が不正な形式です")

// ImageRequest は画像生成1回分の要求です。Images の順序はそのまま
// inline-data パートの順序になり、プロンプト内の番号参照と対応します。
type ImageRequest struct {
	Images       []domain.ImagePayload
	Prompt       string
	SystemPrompt string
	AspectRatio  string // "1:1" | "3:4" | "4:3" | "9:16" | "16:9"、空なら未指定
}

// Client は生成モデルの3能力の契約です。Runner はこの契約にだけ依存し、
// テストでは偽実装に差し替えられます。
type Client interface {
	// GenerateText は画像＋指示から自然言語の解析文を返します。
	GenerateText(ctx context.Context, images []domain.ImagePayload, instruction string) (string, error)
	// DetectPoints は画像＋指示から {x, y} 配列の構造化JSONを取得します。
	// 応答の検証に失敗した場合は ErrDetectMalformed を包んで返します。
	DetectPoints(ctx context.Context, image domain.ImagePayload, instruction string) ([]domain.Point, error)
	// GenerateImage は画像群＋指示から最初のインライン画像を返します。
	GenerateImage(ctx context.Context, req ImageRequest) (domain.ImagePayload, error)
}

// Config は GenAI クライアントの初期化設定です。
type Config struct {
	APIKey      string
	TextModel   string
	ImageModel  string
	Temperature *float32
}

// GenAIClient は google.golang.org/genai に基づく Client 実装です。
type GenAIClient struct {
	client      *genai.Client
	textModel   string
	imageModel  string
	temperature *float32
}

// NewClient は Gemini API バックエンドのクライアントを初期化します。
func NewClient(ctx context.Context, cfg Config) (*GenAIClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return &GenAIClient{
		client:      client,
		textModel:   cfg.TextModel,
		imageModel:  cfg.ImageModel,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateText は Client 契約のテキスト解析を実装します。
func (c *GenAIClient) GenerateText(ctx context.Context, images []domain.ImagePayload, instruction string) (string, error) {
	contents, err := buildContents(instruction, images)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, contents, &genai.GenerateContentConfig{
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("テキスト生成に失敗しました: %w", err)
	}
	return resp.Text(), nil
}

// DetectPoints は Client 契約の構造化検出を実装します。
func (c *GenAIClient) DetectPoints(ctx context.Context, image domain.ImagePayload, instruction string) ([]domain.Point, error) {
	contents, err := buildContents(instruction, []domain.ImagePayload{image})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, contents, &genai.GenerateContentConfig{
		Temperature:      c.temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"x": {Type: genai.TypeNumber},
					"y": {Type: genai.TypeNumber},
				},
				Required: []string{"x", "y"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("検出呼び出しに失敗しました: %w", err)
	}

	return ParseDetectedPoints(resp.Text())
}

// ParseDetectedPoints は検出応答の JSON を厳密に検証してパースします。
// 配列以外・数値座標以外はすべて ErrDetectMalformed です。
func ParseDetectedPoints(raw string) ([]domain.Point, error) {
	type rawPoint struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}

	var parsed []rawPoint
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectMalformed, err)
	}

	points := make([]domain.Point, 0, len(parsed))
	for i, p := range parsed {
		if p.X == nil || p.Y == nil {
			return nil, fmt.Errorf("%w: %d 番目の要素に数値座標がありません", ErrDetectMalformed, i)
		}
		points = append(points, domain.NewPoint(*p.X, *p.Y))
	}
	return points, nil
}

// GenerateImage は Client 契約の画像生成を実装します。
func (c *GenAIClient) GenerateImage(ctx context.Context, req ImageRequest) (domain.ImagePayload, error) {
	contents, err := buildContents(req.Prompt, req.Images)
	if err != nil {
		return domain.ImagePayload{}, err
	}

	config := &genai.GenerateContentConfig{
		Temperature:        c.temperature,
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(req.SystemPrompt)},
		}
	}
	if req.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, contents, config)
	if err != nil {
		return domain.ImagePayload{}, fmt.Errorf("画像生成に失敗しました: %w", err)
	}

	return FirstInlineImage(resp)
}

// FirstInlineImage は応答から最初のインライン画像パートを取り出します。
func FirstInlineImage(resp *genai.GenerateContentResponse) (domain.ImagePayload, error) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return domain.NewImagePayload(part.InlineData.Data, part.InlineData.MIMEType, 0, 0), nil
			}
		}
	}
	return domain.ImagePayload{}, ErrNoImage
}

// buildContents はテキスト指示と画像群を genai のコンテンツ列へ変換します。
// 画像はテキストの後に、与えられた順で inline-data として並ぶのだ。
func buildContents(instruction string, images []domain.ImagePayload) ([]*genai.Content, error) {
	parts := []*genai.Part{genai.NewPartFromText(instruction)}
	for i, img := range images {
		data, err := img.Bytes()
		if err != nil {
			return nil, fmt.Errorf("%d 番目の画像が不正です: %w", i+1, err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, img.MimeType))
	}
	return []*genai.Content{{Role: genai.RoleUser, Parts: parts}}, nil
}
