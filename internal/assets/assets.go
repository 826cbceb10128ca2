package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed images/*.svg
var imageFS embed.FS

type cacheKey struct {
	name string
	w, h int
}

// 同名同尺寸只栅格化一次
var (
	cacheMu  sync.Mutex
	imgCache = map[cacheKey]*ebiten.Image{}
)

// LoadSVG 读取嵌入的 SVG（不含扩展名）并按目标尺寸渲染成 ebiten.Image。
// w 或 h 为 0 时按 viewBox 比例补齐。
func LoadSVG(name string, w, h int) (*ebiten.Image, error) {
	key := cacheKey{name, w, h}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if img := imgCache[key]; img != nil {
		return img, nil
	}

	rgba, err := RasterizeSVG(name, w, h)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(rgba)
	imgCache[key] = img
	return img, nil
}

// RasterizeSVG renders an embedded SVG into an RGBA buffer.
func RasterizeSVG(name string, w, h int) (*image.RGBA, error) {
	data, err := imageFS.ReadFile("images/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("读取嵌入图片 %s 失败: %w", name, err)
	}
	rgba, err := rasterize(data, w, h)
	if err != nil {
		return nil, fmt.Errorf("解析 SVG %s 失败: %w", name, err)
	}
	return rgba, nil
}

func rasterize(svgData []byte, targetW, targetH int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	vb := icon.ViewBox

	w, h := float64(targetW), float64(targetH)
	switch {
	case w <= 0 && h <= 0:
		w, h = vb.W, vb.H
	case w <= 0:
		w = h * vb.W / vb.H
	case h <= 0:
		h = w * vb.H / vb.W
	}
	w, h = max(w, 1), max(h, 1)

	icon.SetTarget(0, 0, w, h)

	dstW, dstH := int(w+0.5), int(h+0.5)
	rgba := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.Draw(rgba, rgba.Bounds(), image.Transparent, image.Point{}, draw.Src) // 透明底

	scanner := rasterx.NewScannerGV(dstW, dstH, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(dstW, dstH, scanner)
	icon.Draw(dasher, 1.0)
	return rgba, nil
}
