package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// Bitmap dimensions. The pattern is wrapped around the body's cylinder.
const (
	Width  = 512
	Height = 1024
)

// Generate paints the pattern for sel into a new bitmap. Random placement
// is drawn from rng, so the same seed reproduces the same pixels.
func Generate(sel Selector, rng *rand.Rand) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, Width, Height))
	dc := gg.NewContextForRGBA(im)

	switch sel {
	case Cedar:
		paintCedar(dc, rng)
	case Etched:
		paintEtched(dc)
	case Nebula:
		paintNebula(dc, rng)
	case Prism:
		paintPrism(dc, rng)
	case Vibrant:
		paintVibrant(dc, rng)
	case Mori:
		paintLeaves(dc, rng, "#064e3b", "#10b981")
	case MoriRuby:
		paintLeaves(dc, rng, "#450a0a", "#ef4444")
	case MoriAzure:
		paintLeaves(dc, rng, "#1e3a8a", "#60a5fa")
	case MoriGold:
		paintLeaves(dc, rng, "#1a1a1a", "#fbbf24")
	case Aurora:
		paintAurora(dc, rng)
	case Iridescent:
		paintIridescent(dc, rng)
	default:
		fill(dc, "#333333")
	}
	return im
}

func fill(dc *gg.Context, hex string) {
	dc.SetHexColor(hex)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()
}

// withAlpha returns hex at the given opacity.
func withAlpha(hex string, alpha float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Transparent
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

func paintCedar(dc *gg.Context, rng *rand.Rand) {
	fill(dc, "#d4b38d")
	dc.SetHexColor("#a67c52")
	dc.SetLineWidth(1)
	for i := 0; i < 100; i++ {
		x := rng.Float64() * Width
		dc.MoveTo(x, 0)
		dc.CubicTo(x+20, 300, x-20, 700, x, Height)
		dc.Stroke()
	}
}

func paintEtched(dc *gg.Context) {
	fill(dc, "#f5f5f5")
	dc.SetHexColor("#333333")
	dc.SetLineWidth(2)
	for x := 0; x < Width; x += 32 {
		dc.MoveTo(float64(x), 0)
		dc.LineTo(float64(x), Height)
		dc.Stroke()
	}
}

func paintNebula(dc *gg.Context, rng *rand.Rand) {
	fill(dc, "#111111")

	grad := gg.NewRadialGradient(Width/2, Height/2, 10, Width/2, Height/2, 400)
	grad.AddColorStop(0, withAlpha("#1e293b", 1))
	grad.AddColorStop(1, color.Black)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	dc.SetColor(color.White)
	for i := 0; i < 300; i++ {
		x := rng.Float64() * Width
		y := rng.Float64() * Height
		dc.DrawCircle(x, y, rng.Float64()*1.5)
		dc.Fill()
	}
}

var prismColors = []string{"#f472b6", "#60a5fa", "#34d399", "#fbbf24", "#a78bfa"}

func paintPrism(dc *gg.Context, rng *rand.Rand) {
	fill(dc, "#ffffff")
	for i := 0; i < 50; i++ {
		dc.SetColor(withAlpha(prismColors[i%len(prismColors)], 0.5))
		x := rng.Float64() * Width
		y := rng.Float64() * Height
		dc.MoveTo(x, y)
		dc.LineTo(x+150, y+75)
		dc.LineTo(x+75, y+150)
		dc.ClosePath()
		dc.Fill()
	}
}

var vibrantColors = []string{"#ffffff", "#3b82f6", "#fbbf24", "#10b981"}

func paintVibrant(dc *gg.Context, rng *rand.Rand) {
	fill(dc, "#ef4444")
	for i := 0; i < 100; i++ {
		dc.SetHexColor(vibrantColors[rng.Intn(len(vibrantColors))])
		x := rng.Float64() * Width
		y := rng.Float64() * Height
		dc.DrawCircle(x, y, 10+rng.Float64()*20)
		dc.Fill()
	}
}

// paintLeaves draws the chevron leaf marks shared by the mori palettes.
func paintLeaves(dc *gg.Context, rng *rand.Rand, bg, stroke string) {
	fill(dc, bg)
	dc.SetHexColor(stroke)
	dc.SetLineWidth(3)
	for i := 0; i < 60; i++ {
		x := rng.Float64() * Width
		y := rng.Float64() * Height
		dc.MoveTo(x, y)
		dc.LineTo(x+15, y-25)
		dc.LineTo(x+30, y)
		dc.Stroke()
	}
}

func paintAurora(dc *gg.Context, rng *rand.Rand) {
	grad := gg.NewLinearGradient(0, 0, 0, Height)
	grad.AddColorStop(0, withAlpha("#4ade80", 1))
	grad.AddColorStop(0.5, withAlpha("#3b82f6", 1))
	grad.AddColorStop(1, withAlpha("#a78bfa", 1))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	dc.SetColor(withAlpha("#ffffff", 0.3))
	for i := 0; i < 10; i++ {
		x := rng.Float64() * Width
		y := rng.Float64() * Height
		angle := rng.Float64() * math.Pi
		dc.Push()
		dc.RotateAbout(angle, x, y)
		dc.DrawEllipse(x, y, 200, 50)
		dc.Fill()
		dc.Pop()
	}
}

func paintIridescent(dc *gg.Context, rng *rand.Rand) {
	fill(dc, "#fdf2f8")
	for i := 0; i < 15; i++ {
		x := rng.Float64() * Width
		y := rng.Float64() * Height
		r, g, b := colorful.Hsl(rng.Float64()*360, 0.7, 0.8).RGB255()

		grad := gg.NewRadialGradient(x, y, 0, Width/2, Height/2, 512)
		grad.AddColorStop(0, color.NRGBA{R: r, G: g, B: b, A: 102})
		grad.AddColorStop(1, color.Transparent)
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, Width, Height)
		dc.Fill()
	}
}
