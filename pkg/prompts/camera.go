package prompts

// CameraPreset はレンダーに適用するカメラ/レンズの定義です。
type CameraPreset struct {
	Key         string
	Name        string
	Fragment    string // プロンプトへそのまま注入する断片
	Description string // UI 表示用の説明
}

// DefaultCameraKey は未知のキーに対するフォールバック先です。
const DefaultCameraKey = "CINEMATIC"

// cameraCatalog は選択可能なプリセットの固定カタログなのだ。
var cameraCatalog = map[string]CameraPreset{
	"CINEMATIC": {
		Key:         "CINEMATIC",
		Name:        "Cinematic Wide",
		Fragment:    "shot on a cinema camera with a 35mm anamorphic lens, gentle film grain, wide establishing composition",
		Description: "映画的な広角。会場全体の空気感を収める標準プリセット",
	},
	"EDITORIAL": {
		Key:         "EDITORIAL",
		Name:        "Editorial 50mm",
		Fragment:    "shot on a full-frame camera with a 50mm prime lens at f/2.8, editorial magazine framing, natural perspective",
		Description: "雑誌のような自然な遠近感の標準レンズ",
	},
	"INTIMATE": {
		Key:         "INTIMATE",
		Name:        "Intimate 85mm",
		Fragment:    "shot with an 85mm portrait lens at f/1.8, compressed perspective, soft creamy background falloff",
		Description: "望遠の圧縮効果で装飾のディテールへ寄る",
	},
	"GRAND": {
		Key:         "GRAND",
		Name:        "Grand 16mm",
		Fragment:    "shot with a 16mm ultra-wide lens from a low vantage, dramatic ceiling height, sweeping grandeur",
		Description: "超広角で天井高と壮大さを強調する",
	},
}

// LookupCameraPreset はキーに対応するプリセットを返します。
// 未知のキーはカタログ内の唯一の明示フォールバック (CINEMATIC) に落ちます。
func LookupCameraPreset(key string) CameraPreset {
	if p, ok := cameraCatalog[key]; ok {
		return p
	}
	return cameraCatalog[DefaultCameraKey]
}

// CameraPresets はカタログの複製を返します（UI 列挙用）。
func CameraPresets() []CameraPreset {
	out := make([]CameraPreset, 0, len(cameraCatalog))
	for _, key := range []string{"CINEMATIC", "EDITORIAL", "INTIMATE", "GRAND"} {
		out = append(out, cameraCatalog[key])
	}
	return out
}
