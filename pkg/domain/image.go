package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ImagePayload は生成・編集の境界を横断する画像データの正規形です。
// Base64 には data URI プレフィックスを含めず、MimeType と常に対で扱います。
type ImagePayload struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mime_type"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// NewImagePayload は生バイト列から ImagePayload を生成します。
func NewImagePayload(data []byte, mimeType string, width, height int) ImagePayload {
	return ImagePayload{
		Base64:   base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
		Width:    width,
		Height:   height,
	}
}

// IsZero はペイロードが未設定かどうかを返します。
func (p ImagePayload) IsZero() bool {
	return p.Base64 == ""
}

// Bytes は Base64 をデコードして生バイト列を返すのだ。
func (p ImagePayload) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.Base64)
	if err != nil {
		return nil, fmt.Errorf("画像データのデコードに失敗しました: %w", err)
	}
	return data, nil
}

// DataURI は表示用の data URI を組み立てて返します。
func (p ImagePayload) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", p.MimeType, p.Base64)
}

// PayloadFromDataURI は data URI を分解して ImagePayload に戻します。
// プレフィックスを持たない文字列は JPEG の素の Base64 として扱うのだ。
func PayloadFromDataURI(uri string) ImagePayload {
	const marker = ";base64,"
	if !strings.HasPrefix(uri, "data:") {
		return ImagePayload{Base64: uri, MimeType: "image/jpeg"}
	}
	idx := strings.Index(uri, marker)
	if idx < 0 {
		return ImagePayload{Base64: uri, MimeType: "image/jpeg"}
	}
	return ImagePayload{
		MimeType: strings.TrimPrefix(uri[:idx], "data:"),
		Base64:   uri[idx+len(marker):],
	}
}

// AspectRatioFor は画像の縦横比を、生成 API が受け付ける固定の列挙
// {1:1, 3:4, 4:3, 9:16, 16:9} に写像します。しきい値は固定です。
func AspectRatioFor(width, height int) string {
	if width <= 0 || height <= 0 {
		return "1:1"
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio > 1.5:
		return "16:9"
	case ratio > 1.0:
		return "4:3"
	case ratio < 0.6:
		return "9:16"
	case ratio < 1.0:
		return "3:4"
	default:
		return "1:1"
	}
}
