package domain

import (
	"testing"
)

func TestAspectRatioFor(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          string
	}{
		{"1920x1080 は 16:9 になるのだ", 1920, 1080, "16:9"},
		{"1000x1000 は 1:1 になるのだ", 1000, 1000, "1:1"},
		{"600x1200 は 9:16 になるのだ", 600, 1200, "9:16"},
		{"1200x1000 は 4:3 になるのだ", 1200, 1000, "4:3"},
		{"800x1000 は 3:4 になるのだ", 800, 1000, "3:4"},
		{"寸法不明は 1:1 に落ちるのだ", 0, 0, "1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AspectRatioFor(tt.width, tt.height); got != tt.want {
				t.Errorf("期待値 %q, 実際の値 %q", tt.want, got)
			}
		})
	}
}

func TestImagePayload_DataURI(t *testing.T) {
	p := NewImagePayload([]byte("hello"), "image/png", 10, 10)
	uri := p.DataURI()
	want := "data:image/png;base64,aGVsbG8="
	if uri != want {
		t.Errorf("期待値 %q, 実際の値 %q", want, uri)
	}

	back := PayloadFromDataURI(uri)
	if back.MimeType != "image/png" || back.Base64 != p.Base64 {
		t.Errorf("data URI からの復元に失敗しました: %+v", back)
	}
}

func TestPayloadFromDataURI_PrefixlessBase64(t *testing.T) {
	back := PayloadFromDataURI("aGVsbG8=")
	if back.Base64 != "aGVsbG8=" || back.MimeType != "image/jpeg" {
		t.Errorf("素の Base64 の扱いが不正です: %+v", back)
	}
}

func TestNewPoint_Clamp(t *testing.T) {
	p := NewPoint(-15, 250)
	if p.X != 0 || p.Y != 100 {
		t.Errorf("クランプされていません: %+v", p)
	}
}
