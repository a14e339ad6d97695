package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	annotationRed = color.RGBA{R: 229, G: 26, B: 26, A: 255}
	outlineWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var (
	fontOnce   sync.Once
	fontParsed *opentype.Font
	fontErr    error
)

// loadFont は埋め込みフォントを一度だけパースします。
func loadFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontParsed, fontErr = opentype.Parse(goregular.TTF)
	})
	return fontParsed, fontErr
}

// drawDisc は中心 (cx, cy)・半径 r の塗りつぶし円を打ちます。
func drawDisc(dst draw.Image, cx, cy, r float64, c color.Color) {
	if r < 0.5 {
		r = 0.5
	}
	minX, maxX := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	minY, maxY := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	rr := r * r
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= rr {
				dst.Set(x, y, c)
			}
		}
	}
}

// drawLine は太さ width の線分を円スタンプの連続で描きます。
func drawLine(dst draw.Image, x1, y1, x2, y2, width float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	r := width / 2

	steps := int(math.Ceil(length))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		drawDisc(dst, x1+dx*t, y1+dy*t, r, c)
	}
}

// arrowHeadAngle は軸線に対する矢頭の開き角（±30度）です。
const arrowHeadAngle = math.Pi / 6

// drawArrow は直線と固定角の二枚羽の矢頭を描きます。
func drawArrow(dst draw.Image, x1, y1, x2, y2, width float64, c color.Color) {
	drawLine(dst, x1, y1, x2, y2, width, c)

	angle := math.Atan2(y2-y1, x2-x1)
	headLen := math.Max(width*3, 12)
	for _, a := range []float64{angle - math.Pi + arrowHeadAngle, angle - math.Pi - arrowHeadAngle} {
		hx := x2 + headLen*math.Cos(a)
		hy := y2 + headLen*math.Sin(a)
		drawLine(dst, x2, y2, hx, hy, width, c)
	}
}

// drawOutlinedText は白縁取りつきの赤文字を (x, y) をベースラインとして描きます。
func drawOutlinedText(dst draw.Image, x, y float64, content string, sizePx float64) error {
	f, err := loadFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	// 縁取り: 8近傍にずらした白を先に敷き、最後に中心へ赤を重ねる
	offset := math.Max(1, sizePx/15)
	for _, d := range [][2]float64{
		{-offset, 0}, {offset, 0}, {0, -offset}, {0, offset},
		{-offset, -offset}, {offset, -offset}, {-offset, offset}, {offset, offset},
	} {
		drawString(dst, face, x+d[0], y+d[1], content, outlineWhite)
	}
	drawString(dst, face, x, y, content, annotationRed)
	return nil
}

func drawString(dst draw.Image, face font.Face, x, y float64, content string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(content)
}
