package prompts

import (
	"fmt"
)

// ViewAngle は視点変更の対象アングルです。分岐は RemovesCeiling の
// 真偽で選択され、文字列照合には依存しません。
type ViewAngle struct {
	Key            string
	Label          string
	RemovesCeiling bool
}

// viewCatalog は選択可能なアングルの固定カタログなのだ。
var viewCatalog = map[string]ViewAngle{
	"FRONT":      {Key: "FRONT", Label: "frontal view at eye level"},
	"CORNER":     {Key: "CORNER", Label: "three-quarter view from the room corner"},
	"ENTRANCE":   {Key: "ENTRANCE", Label: "view from the guest entrance"},
	"HEAD_TABLE": {Key: "HEAD_TABLE", Label: "view from behind the head table"},
	"BIRDS_EYE":  {Key: "BIRDS_EYE", Label: "top-down bird's-eye view", RemovesCeiling: true},
}

// LookupViewAngle はキーに対応するアングルを返します。未知のキーは FRONT に落ちます。
func LookupViewAngle(key string) ViewAngle {
	if v, ok := viewCatalog[key]; ok {
		return v
	}
	return viewCatalog["FRONT"]
}

// BuildViewChangePrompt は視点変更の指示を構築します。
// 天井除去型のアングルだけがカットアウェイ指示になり、それ以外は
// 部屋の形状を保ったままカメラのみを動かします。
func BuildViewChangePrompt(angle ViewAngle) string {
	if angle.RemovesCeiling {
		return fmt.Sprintf("Re-render the scene as a %s: remove the ceiling entirely and show a clean top-down cutaway of the room. Keep every wall, floor and decoration exactly where it is; only the ceiling is removed and the camera looks straight down.", angle.Label)
	}
	return fmt.Sprintf("Re-render the scene from a %s. Preserve ALL room geometry, decorations, materials and lighting exactly as they are; only the camera position changes.", angle.Label)
}
