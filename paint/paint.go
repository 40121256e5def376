// Package paint rasterizes a laid-out box tree into an RGBA image.
//
// It is a reference host for the layout engine: text leaves are drawn
// with golang.org/x/image/font at their baseline and decoration paths are
// stroked with golang.org/x/image/vector.
package paint

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/gogpu/mathtex/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type faceKey struct {
	size   float64
	italic bool
}

type painter struct {
	cfg   config
	dst   *image.RGBA
	z     *vector.Rasterizer
	faces map[faceKey]font.Face
}

// Paint renders b onto a new image sized to the box plus the margin.
func Paint(b *layout.Box, opts ...Option) *image.RGBA {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var w, h int
	if b != nil {
		w, h = b.Width, b.Height
	}
	w, h = w+2*cfg.margin, h+2*cfg.margin
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if cfg.background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(cfg.background), image.Point{}, draw.Src)
	}

	p := &painter{
		cfg:   cfg,
		dst:   dst,
		z:     vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy()),
		faces: make(map[faceKey]font.Face),
	}
	defer p.close()

	b.Walk(cfg.margin, cfg.margin, func(box *layout.Box, x, y int) bool {
		if box.Text != "" {
			p.text(box, x, y)
		}
		for _, s := range box.Strokes {
			p.stroke(s, x, y)
		}
		return true
	})
	return dst
}

func (p *painter) text(b *layout.Box, x, y int) {
	face, err := p.face(b.FontSize, b.Italic)
	if err != nil {
		return
	}
	c := b.Color
	if c == nil {
		c = p.cfg.foreground
	}
	d := &font.Drawer{
		Dst:  p.dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+b.Baseline),
	}
	d.DrawString(b.Text)
}

func (p *painter) face(size float64, italic bool) (font.Face, error) {
	key := faceKey{size: size, italic: italic}
	if f, ok := p.faces[key]; ok {
		return f, nil
	}
	src := p.cfg.upright
	if italic {
		src = p.cfg.italic
	}
	f, err := src.Face(size)
	if err != nil {
		return nil, err
	}
	p.faces[key] = f
	return f, nil
}

func (p *painter) close() {
	for _, f := range p.faces {
		_ = f.Close()
	}
}

// stroke draws every contour of s as a band of the stroke width.
func (p *painter) stroke(s layout.Stroke, x, y int) {
	if s.Path == nil || s.Path.IsEmpty() {
		return
	}
	bounds := p.dst.Bounds()
	p.z.Reset(bounds.Dx(), bounds.Dy())

	path := s.Path.Translate(float64(x), float64(y))
	for _, line := range path.Flatten(p.cfg.segments) {
		addPolyline(p.z, line, s.Width/2)
	}
	p.z.Draw(p.dst, bounds, image.NewUniform(p.cfg.foreground), image.Point{})
}

// SavePNG encodes img as PNG into the file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("paint: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("paint: encode %s: %w", path, err)
	}
	return f.Close()
}
