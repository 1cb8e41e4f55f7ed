package overlay

import (
	"image/color"
	"math/rand"

	"crashbreak/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// placement positions an object in fractions of the canvas. Lines use
// (x, y) and (w, h) as their two end points.
type placement struct {
	object fyne.CanvasObject
	x, y   float32
	w, h   float32
	line   bool
}

type sceneLayout struct {
	placements []placement
}

func (layout *sceneLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	for _, item := range layout.placements {
		if item.line {
			line := item.object.(*canvas.Line)
			line.Position1 = fyne.NewPos(item.x*size.Width, item.y*size.Height)
			line.Position2 = fyne.NewPos(item.w*size.Width, item.h*size.Height)
			continue
		}
		item.object.Move(fyne.NewPos(item.x*size.Width, item.y*size.Height))
		item.object.Resize(fyne.NewSize(item.w*size.Width, item.h*size.Height))
	}
}

func (layout *sceneLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

const glyphAlphabet = "▓▒░█▌▐■□◆◇○●◘◙♠♣♥♦#%&@$?!<>/\\|{}[]01"

func buildScene(style model.Style, rng *rand.Rand) []placement {
	switch style {
	case model.StyleGradient:
		return gradientScene(rng)
	case model.StyleMountains:
		return mountainScene(rng)
	case model.StylePaperclip:
		return paperclipScene(rng)
	default:
		return glyphScene(rng)
	}
}

func gradientScene(rng *rand.Rand) []placement {
	gradient := canvas.NewLinearGradient(randomColor(rng, 40, 200), randomColor(rng, 40, 200), float64(rng.Intn(360)))
	return []placement{fill(gradient)}
}

func mountainScene(rng *rand.Rand) []placement {
	scene := []placement{fill(canvas.NewRectangle(color.NRGBA{R: 8, G: 4, B: 24, A: 255}))}
	stroke := color.NRGBA{R: 255, G: 60, B: 220, A: 255}
	if rng.Intn(2) == 0 {
		stroke = color.NRGBA{R: 40, G: 255, B: 140, A: 255}
	}

	const ridges = 6
	const points = 14
	for ridge := 0; ridge < ridges; ridge++ {
		base := 0.45 + float32(ridge)*0.09
		amplitude := 0.22 - float32(ridge)*0.03
		var prevX, prevY float32
		for point := 0; point <= points; point++ {
			x := float32(point) / points
			y := base - amplitude*rng.Float32()
			if point > 0 {
				scene = append(scene, lineBetween(stroke, prevX, prevY, x, y))
			}
			prevX, prevY = x, y
		}
	}
	return scene
}

func paperclipScene(rng *rand.Rand) []placement {
	scene := []placement{fill(canvas.NewRectangle(color.NRGBA{R: 230, G: 226, B: 214, A: 255}))}
	clips := 4 + rng.Intn(4)
	for clip := 0; clip < clips; clip++ {
		x := rng.Float32() * 0.8
		y := rng.Float32() * 0.5
		width := 0.04 + rng.Float32()*0.05
		// Stretched downwards so the loops look like they are dripping.
		height := width * (2 + rng.Float32()*3)
		stroke := randomColor(rng, 60, 160)
		for loop := 0; loop < 3; loop++ {
			inset := float32(loop) * width * 0.18
			circle := canvas.NewCircle(color.Transparent)
			circle.StrokeColor = stroke
			circle.StrokeWidth = 3
			scene = append(scene, placement{
				object: circle,
				x:      x + inset,
				y:      y + inset*float32(1+loop),
				w:      width - inset*2,
				h:      height - inset,
			})
		}
	}
	return scene
}

func glyphScene(rng *rand.Rand) []placement {
	scene := []placement{fill(canvas.NewRectangle(color.Black))}
	alphabet := []rune(glyphAlphabet)
	const rows = 28
	for row := 0; row < rows; row++ {
		runes := make([]rune, 40+rng.Intn(80))
		for i := range runes {
			runes[i] = alphabet[rng.Intn(len(alphabet))]
		}
		text := canvas.NewText(string(runes), randomColor(rng, 80, 255))
		text.TextStyle = fyne.TextStyle{Monospace: true}
		text.TextSize = 14 + float32(rng.Intn(10))
		offset := rng.Float32() * 0.2
		scene = append(scene, placement{
			object: text,
			x:      -offset,
			y:      float32(row) / rows,
			w:      1 + offset,
			h:      1.0 / rows,
		})
	}
	return scene
}

func fill(object fyne.CanvasObject) placement {
	return placement{object: object, w: 1, h: 1}
}

func lineBetween(stroke color.Color, x1, y1, x2, y2 float32) placement {
	line := canvas.NewLine(stroke)
	line.StrokeWidth = 2
	return placement{object: line, x: x1, y: y1, w: x2, h: y2, line: true}
}

func randomColor(rng *rand.Rand, low, high int) color.NRGBA {
	span := high - low
	if span < 1 {
		span = 1
	}
	channel := func() uint8 {
		return uint8(low + rng.Intn(span))
	}
	return color.NRGBA{R: channel(), G: channel(), B: channel(), A: 255}
}
