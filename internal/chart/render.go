package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/ishandutta2007/Tops-of-Github/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultTitle is the chart title.
const DefaultTitle = "Distribution of Repository Owners by Country"

// ErrNoSlices is returned when there is nothing to draw.
var ErrNoSlices = errors.New("no slices to render")

// defaultPalette cycles through ten distinguishable colors.
var defaultPalette = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
	color.RGBA{0x8c, 0x56, 0x4b, 0xff},
	color.RGBA{0xe3, 0x77, 0xc2, 0xff},
	color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.RGBA{0xbc, 0xbd, 0x22, 0xff},
	color.RGBA{0x17, 0xbe, 0xcf, 0xff},
}

var (
	textColor       = color.RGBA{0x22, 0x22, 0x22, 0xff}
	backgroundColor = color.White
)

var (
	regularFont = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
	boldFont    = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(gobold.TTF) })
)

// RenderOptions controls the donut chart image.
type RenderOptions struct {
	// Width and Height are the image size in pixels.
	Width  int
	Height int
	// Title is drawn above the chart. Empty means no title.
	Title string
	// HoleRatio is the inner radius as a fraction of the outer radius.
	// Zero draws a full pie.
	HoleRatio float64
	// Palette is cycled through for slice colors.
	Palette []color.Color
}

// DefaultRenderOptions returns a 1000x1000 donut with a 70% hole.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:     1000,
		Height:    1000,
		Title:     DefaultTitle,
		HoleRatio: 0.70,
		Palette:   defaultPalette,
	}
}

func (o RenderOptions) normalized() RenderOptions {
	def := DefaultRenderOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.HoleRatio < 0 || o.HoleRatio >= 1 {
		o.HoleRatio = def.HoleRatio
	}
	if len(o.Palette) == 0 {
		o.Palette = def.Palette
	}
	return o
}

// geometry is where the donut sits in the image.
type geometry struct {
	cx, cy float64
	outer  float64
	inner  float64
}

func layout(o RenderOptions) geometry {
	titleBand := float64(o.Height) / 10
	area := math.Min(float64(o.Width), float64(o.Height)-titleBand)
	outer := area / 2 * 0.72
	return geometry{
		cx:    float64(o.Width) / 2,
		cy:    titleBand + (float64(o.Height)-titleBand)/2,
		outer: outer,
		inner: outer * o.HoleRatio,
	}
}

// RenderPNG draws the slices as a donut chart and encodes it as PNG.
func RenderPNG(w io.Writer, slices []model.Slice, opts RenderOptions) error {
	img, err := Render(slices, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}

// Render draws the slices as a donut chart.
//
// Slices start at twelve o'clock and run clockwise in the given order. Each
// carries its percentage inside the ring and its label outside it.
func Render(slices []model.Slice, opts RenderOptions) (*image.RGBA, error) {
	total := model.TotalCount(slices)
	if total <= 0 {
		return nil, ErrNoSlices
	}
	opts = opts.normalized()
	g := layout(opts)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	labelFace := newFace(regularFont, float64(opts.Width)/50)
	titleFace := newFace(boldFont, float64(opts.Width)/32)

	start := -math.Pi / 2
	for i, s := range slices {
		if s.Count <= 0 {
			continue
		}
		sweep := 2 * math.Pi * float64(s.Count) / float64(total)
		end := start + sweep
		fillRing(img, g, start, end, opts.Palette[i%len(opts.Palette)])

		mid := start + sweep/2
		pctRadius := (g.inner + g.outer) / 2
		if g.inner == 0 {
			pctRadius = g.outer * 0.6
		}
		px, py := polar(g, pctRadius, mid)
		drawText(img, labelFace, fmt.Sprintf("%.1f%%", s.Percent(total)), px, py, alignCenter)

		lx, ly := polar(g, g.outer*1.1, mid)
		align := alignLeft
		if math.Cos(mid) < -1e-9 {
			align = alignRight
		} else if math.Abs(math.Cos(mid)) <= 1e-9 {
			align = alignCenter
		}
		drawText(img, labelFace, s.Label, lx, ly, align)

		start = end
	}

	if opts.Title != "" {
		drawText(img, titleFace, opts.Title, g.cx, float64(opts.Height)/20, alignCenter)
	}
	if g.inner > 0 {
		drawText(img, labelFace, fmt.Sprintf("%d repositories", total), g.cx, g.cy, alignCenter)
	}
	return img, nil
}

func polar(g geometry, r, a float64) (float64, float64) {
	return g.cx + r*math.Cos(a), g.cy + r*math.Sin(a)
}

// fillRing fills the annular sector between angles a0 and a1.
func fillRing(dst *image.RGBA, g geometry, a0, a1 float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	steps := max(int(math.Ceil((a1-a0)/(math.Pi/180))), 1)
	at := func(r float64, i int) (float32, float32) {
		x, y := polar(g, r, a0+(a1-a0)*float64(i)/float64(steps))
		return float32(x), float32(y)
	}

	z.MoveTo(at(g.outer, 0))
	for i := 1; i <= steps; i++ {
		z.LineTo(at(g.outer, i))
	}
	if g.inner > 0 {
		for i := steps; i >= 0; i-- {
			z.LineTo(at(g.inner, i))
		}
	} else {
		z.LineTo(float32(g.cx), float32(g.cy))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// newFace returns a face of the given size from the parsed font, falling
// back to the built-in bitmap face.
func newFace(parsed func() (*opentype.Font, error), size float64) font.Face {
	f, err := parsed()
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    math.Max(size, 8),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// drawText draws s with its vertical middle at y and horizontal anchor at x.
func drawText(dst draw.Image, face font.Face, s string, x, y float64, align alignment) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	width := d.MeasureString(s)
	m := face.Metrics()

	dotX := fixed.Int26_6(x * 64)
	switch align {
	case alignCenter:
		dotX -= width / 2
	case alignRight:
		dotX -= width
	}
	dotY := fixed.Int26_6(y*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: dotX, Y: dotY}
	d.DrawString(s)
}
