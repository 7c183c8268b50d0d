package world

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/infrastructure/tilemap"
)

// Colors for rendering
var (
	colorBackgroundTile = color.RGBA{60, 90, 60, 255}
	colorForegroundTile = color.RGBA{160, 82, 45, 255}
	colorGoomba         = color.RGBA{139, 69, 19, 255}
	colorGoombaWounded  = color.RGBA{120, 80, 60, 255}
	colorGoombaSad      = color.RGBA{90, 90, 140, 255}
	colorGoombaRage     = color.RGBA{200, 30, 30, 255}
	colorWife           = color.RGBA{205, 133, 63, 255}
	colorKids           = color.RGBA{222, 184, 135, 255}
	colorMario          = color.RGBA{230, 0, 0, 255}
	colorCultist        = color.RGBA{40, 0, 40, 255}
	colorMushroom       = color.RGBA{255, 80, 80, 255}
	colorCoin           = color.RGBA{255, 215, 0, 255}
	colorQuestionBlock  = color.RGBA{240, 180, 20, 255}
	colorUsedBlock      = color.RGBA{120, 90, 60, 255}
	colorSpike          = color.RGBA{200, 200, 210, 255}
	colorTube           = color.RGBA{0, 170, 0, 255}
	colorDialogueBG     = color.RGBA{0, 0, 0, 200}
	colorDialogueBorder = color.RGBA{255, 255, 255, 255}
)

// debug font cell size in pixels
const (
	charWidth  = 6
	lineHeight = 16
)

// Render draws the map, actors and map objects under the world camera
func (w *World) Render(screen *ebiten.Image) {
	screen.Fill(w.ClearColor.RGBA())

	w.drawLayer(screen, w.Map.Background, colorBackgroundTile)
	for _, a := range w.actors {
		w.drawActor(screen, a)
	}
	for _, o := range w.objects {
		w.drawObject(screen, o)
	}
	w.drawLayer(screen, w.Map.Foreground, colorForegroundTile)
}

// RenderUI draws the dialogue box, actor thoughts and the fade overlay in screen space
func (w *World) RenderUI(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	if w.Dialogue.IsActive() {
		w.drawDialogue(screen, sw, sh)
	}

	for _, a := range w.actors {
		if t := a.Thought(); t != "" {
			x, y, _, _ := w.Camera.ToScreen(*a.Bounds(), sw, sh)
			ebitenutil.DebugPrintAt(screen, t, int(x), int(y)-lineHeight)
		}
	}

	if w.Transition.A > 0 {
		ebitenutil.DrawRect(screen, 0, 0, float64(sw), float64(sh), w.Transition.RGBA())
	}
}

func (w *World) drawLayer(screen *ebiten.Image, l *tilemap.Layer, c color.Color) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	startX, startY, endX, endY := w.Camera.VisibleTiles(sw, sh)

	for ty := max(startY, 0); ty <= endY && ty < l.Height; ty++ {
		for tx := max(startX, 0); tx <= endX && tx < l.Width; tx++ {
			if !l.Occupied(tx, ty) {
				continue
			}
			x, y, tw, th := w.Camera.ToScreen(entity.Rect{X: float64(tx), Y: float64(ty), W: 1, H: 1}, sw, sh)
			ebitenutil.DrawRect(screen, x, y, tw, th, c)
		}
	}
}

func (w *World) drawActor(screen *ebiten.Image, a entity.Actor) {
	r := *a.Bounds()
	var c color.Color
	switch a.Kind() {
	case entity.KindPlayer:
		p := a.(*entity.Player)
		c = goombaColor(p.Mode)
		switch {
		case p.SmashedAnimation == entity.AnimGrow:
			// pulse while the mushroom kicks in
			r.H *= 1 + 0.5*(p.StateTime-float64(int(p.StateTime)))
		case p.Smashed:
			r.H /= 2
		}
	case entity.KindWife:
		c = colorWife
	case entity.KindKids:
		c = colorKids
	case entity.KindMario:
		c = colorMario
	case entity.KindCultist:
		c = colorCultist
	case entity.KindMushroom:
		c = colorMushroom
	case entity.KindCoin:
		c = colorCoin
		r.X += 0.25
		r.W = 0.5
	default:
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x, y, rw, rh := w.Camera.ToScreen(r, sw, sh)
	ebitenutil.DrawRect(screen, x, y, rw, rh, c)
}

func (w *World) drawObject(screen *ebiten.Image, o entity.MapObject) {
	r := *o.Bounds()
	var c color.Color
	switch o := o.(type) {
	case *entity.QuestionBlock:
		c = colorQuestionBlock
		if o.Used() {
			c = colorUsedBlock
		}
		r.Y += o.Offset
	case *entity.Spike:
		c = colorSpike
		r.H /= 2
	case *entity.Tube:
		c = colorTube
	default:
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x, y, rw, rh := w.Camera.ToScreen(r, sw, sh)
	ebitenutil.DrawRect(screen, x, y, rw, rh, c)
}

func (w *World) drawDialogue(screen *ebiten.Image, sw, sh int) {
	tile := float64(sw) / entity.ScreenTilesWide
	box := w.Dialogue.Box()
	x := box.X * tile
	y := float64(sh) - (box.Y+box.H)*tile
	bw, bh := box.W*tile, box.H*tile

	ebitenutil.DrawRect(screen, x-1, y-1, bw+2, bh+2, colorDialogueBorder)
	ebitenutil.DrawRect(screen, x, y, bw, bh, colorDialogueBG)

	cols := int(bw)/charWidth - 2
	text := strings.Join(wrap(w.Dialogue.Visible(), cols), "\n")
	ebitenutil.DebugPrintAt(screen, text, int(x)+charWidth, int(y)+4)
}

func goombaColor(m entity.Mode) color.Color {
	switch m {
	case entity.ModeWounded:
		return colorGoombaWounded
	case entity.ModeSad:
		return colorGoombaSad
	case entity.ModeRage:
		return colorGoombaRage
	default:
		return colorGoomba
	}
}

// wrap breaks text into lines of at most cols characters on word boundaries
func wrap(text string, cols int) []string {
	if cols <= 0 {
		return []string{text}
	}

	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		switch {
		case cur.Len() == 0:
		case cur.Len()+1+len(word) > cols:
			lines = append(lines, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
