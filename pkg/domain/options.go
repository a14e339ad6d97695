package domain

// OptionAuto はユーザーが選択を AI に委ねたことを示す番兵値です。
// この値を持つ項目はエンパワーメント指示の対象になるのだ。
const OptionAuto = "none"

// RenderOptions はフォトリアル・レンダー操作の選択肢一式です。
// 各フィールドは明示値か OptionAuto のどちらかを取ります。
type RenderOptions struct {
	Category        string // 会場カテゴリ（ballroom, garden, ...）
	Style           string // デザイン様式
	Palette         string // 全体の配色
	SurfaceMaterial string // 床・卓上などの表面素材
	TextileMaterial string // 布もの（クロス・ドレープ）の素材
	TextileColor1   string // 布ものの主色
	TextileColor2   string // 布ものの差し色
	Scene           string // 自由記述のシーン説明
	CameraPreset    string // カメラ/レンズプリセットのキー
	AutoFocus       bool   // true なら主要装飾要素へ被写界深度を当てる
}

// EditMode は編集操作の閉じた種別です。
type EditMode string

const (
	// EditAnnotation は注釈画像のマークに基づく範囲限定編集です。
	EditAnnotation EditMode = "annotation"
	// EditObjectSwap は指定座標のオブジェクトを参照画像で置換する編集です。
	EditObjectSwap EditMode = "object_swap"
)

// EditOptions は編集操作への入力一式です。モードに応じて必須項目が変わります。
type EditOptions struct {
	Mode        EditMode
	Instruction string // ユーザーの自由記述指示

	// EditAnnotation 用: マークを焼き込んだ注釈画像。
	Annotated ImagePayload

	// EditObjectSwap 用: 置換対象の座標群と参照オブジェクト画像。
	Targets   []Point
	Reference ImagePayload
}

// SketchOptions はスケッチ→フォトリアル変換の選択肢です。
type SketchOptions struct {
	Style   string
	Palette string
}

// UpscaleOptions はアップスケール操作の選択肢です。
type UpscaleOptions struct {
	Factor int // 2 or 4
}
