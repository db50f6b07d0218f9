package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Style holds the chart colors as hex strings ("#RRGGBB" or "#RRGGBBAA").
type Style struct {
	Background string
	Axis       string
	Grid       string
	Text       string
}

// DefaultStyle is black on white with a light grid.
var DefaultStyle = Style{
	Background: "#FFFFFF",
	Axis:       "#000000",
	Grid:       "#D9D9D9",
	Text:       "#000000",
}

type palette struct {
	bg, axis, grid, text color.RGBA
}

func (s Style) resolve() (palette, error) {
	var p palette
	var err error
	if p.bg, err = parseHexColor(s.Background); err != nil {
		return p, fmt.Errorf("invalid background color: %w", err)
	}
	if p.axis, err = parseHexColor(s.Axis); err != nil {
		return p, fmt.Errorf("invalid axis color: %w", err)
	}
	if p.grid, err = parseHexColor(s.Grid); err != nil {
		return p, fmt.Errorf("invalid grid color: %w", err)
	}
	if p.text, err = parseHexColor(s.Text); err != nil {
		return p, fmt.Errorf("invalid text color: %w", err)
	}
	return p, nil
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// seriesColors returns n distinct colors spaced evenly around the HCL hue wheel.
func seriesColors(n int) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		hue := 250 + float64(i)*360/float64(max(n, 1))
		out[i] = colorful.Hcl(hue, 0.6, 0.5).Clamped()
	}
	return out
}

func newCanvas(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return img
}

func hline(img *image.RGBA, x1, x2, y int, c color.Color) {
	for x := x1; x <= x2; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y1, y2 int, c color.Color) {
	for y := y1; y <= y2; y++ {
		img.Set(x, y, c)
	}
}

// line draws a 1px segment with Bresenham's algorithm.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func marker(img *image.RGBA, x, y int, c color.Color) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			img.Set(x+dx, y+dy, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var face = basicfont.Face7x13

// textWidth returns the rendered width of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawText draws s with its baseline-left corner at (x, y).
func drawText(img draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// drawTextVertical draws s rotated 90 degrees counter-clockwise, its top-left at (x, y).
func drawTextVertical(img *image.RGBA, x, y int, s string, c color.Color) {
	w, h := textWidth(s), face.Height
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawText(tmp, 0, face.Ascent, s, c)
	rotated := imaging.Rotate90(tmp)
	draw.Draw(img, image.Rect(x, y, x+h, y+w), rotated, image.Point{}, draw.Over)
}

// drawNumber draws a small numeric label with a 3x5 pixel font.
func drawNumber(img *image.RGBA, x, y int, text string, fg color.Color) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	const charWidth = 4
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, rowBits := range glyph {
			for col, pixel := range rowBits {
				if pixel == '1' {
					px, py := cx+col, y+row
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}

// numberWidth is the width drawNumber uses for text.
func numberWidth(text string) int { return len(text) * 4 }

// tickStep picks a step of 1, 2 or 5 times a power of ten giving at most
// maxTicks intervals up to top.
func tickStep(top, maxTicks int) int {
	if top <= 0 {
		return 1
	}
	for mag := 1; ; mag *= 10 {
		for _, m := range []int{1, 2, 5} {
			if step := m * mag; top/step <= maxTicks {
				return step
			}
		}
	}
}
