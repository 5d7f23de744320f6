// Package stage draws a scene graph onto a grid of terminal cells.
package stage

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"moodpet/internal/scene"
)

const (
	// cellAspect is a terminal cell's width over its height.
	cellAspect = 0.5

	// brightStar is the opacity above which a star is drawn bold.
	brightStar = 0.6

	// blinkClosed is the eye scale below which the eye is drawn shut.
	blinkClosed = 0.5

	// flatMouth is the mouth height below which it is drawn as a line.
	flatMouth = 0.7
)

// Glyphs used by the stage
const (
	GlyphStar      = '*'
	GlyphFaintStar = '·'
	GlyphBodyCore  = '█'
	GlyphBodyMid   = '▓'
	GlyphBodyEdge  = '▒'
	GlyphEye       = '◉'
	GlyphEyeClosed = '-'
	GlyphSmile     = '‿'
	GlyphFrown     = '⌒'
	GlyphFlatMouth = '─'
	GlyphSparkle   = '✦'
	GlyphCube      = '■'
	blank          = ' '
)

// Cell is one terminal position.
type Cell struct {
	Rune  rune
	Color string // hex, empty for the terminal default
}

// Grid is a projected frame, row-major.
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

func newGrid(width, height int) Grid {
	g := Grid{Width: width, Height: height, Cells: make([][]Cell, height)}
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, width)
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell{Rune: blank}
		}
	}
	return g
}

// At returns the cell at x, y. Out of range positions read as blank.
func (g Grid) At(x, y int) Cell {
	if !g.inside(x, y) {
		return Cell{Rune: blank}
	}
	return g.Cells[y][x]
}

func (g Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

func (g Grid) set(x, y int, r rune, color string) {
	if g.inside(x, y) {
		g.Cells[y][x] = Cell{Rune: r, Color: color}
	}
}

// String returns the frame without any styling.
func (g Grid) String() string {
	var b strings.Builder
	for y, row := range g.Cells {
		if y > 0 {
			b.WriteRune('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// Styled returns the frame with each run of equal colour rendered through
// lipgloss.
func (g Grid) Styled() string {
	var b strings.Builder
	for y, row := range g.Cells {
		if y > 0 {
			b.WriteRune('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Color == row[start].Color {
				continue
			}
			b.WriteString(paint(row[start:x]))
			start = x
		}
	}
	return b.String()
}

func paint(run []Cell) string {
	var text strings.Builder
	for _, c := range run {
		text.WriteRune(c.Rune)
	}
	if len(run) == 0 || run[0].Color == "" {
		return text.String()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(run[0].Color)).Render(text.String())
}

// Render projects the scene and returns the styled frame.
func Render(sc scene.Scene, width, height int) string {
	return Project(sc, width, height).Styled()
}

// Project draws the scene onto a width x height grid: stars first, then the
// avatar's visible leaves in tree order.
func Project(sc scene.Scene, width, height int) Grid {
	if width <= 0 || height <= 0 {
		return Grid{}
	}

	g := newGrid(width, height)
	cam := newCamera(sc.Camera, width, height)

	for _, star := range sc.Stars {
		if !star.Visible {
			continue
		}
		x, y, _, ok := cam.project(star.Position)
		if !ok {
			continue
		}
		r := GlyphFaintStar
		if star.Opacity > brightStar {
			r = GlyphStar
		}
		g.set(x, y, r, star.Color)
	}

	for _, p := range scene.Flatten(sc.Avatar) {
		drawLeaf(g, cam, p)
	}

	return g
}

func drawLeaf(g Grid, cam camera, p scene.Placed) {
	x, y, _, ok := cam.project(p.World.Position)
	if !ok {
		return
	}
	color := validColor(p.Node.Color)

	switch p.Node.Kind {
	case scene.KindBody:
		drawDisc(g, cam, p, color)
	case scene.KindEye:
		r := GlyphEye
		if p.World.Scale.Y < blinkClosed {
			r = GlyphEyeClosed
		}
		g.set(x, y, r, color)
	case scene.KindPupil:
		// Too small to show at terminal resolution; the eye glyph covers it.
	case scene.KindMouth:
		drawMouth(g, x, y, p.Node, color)
	case scene.KindSparkle:
		g.set(x, y, GlyphSparkle, color)
	case scene.KindCube:
		g.set(x, y, GlyphCube, color)
	default:
		g.set(x, y, GlyphFaintStar, color)
	}
}

func drawDisc(g Grid, cam camera, p scene.Placed, color string) {
	cx, cy, unit := cam.projectFloat(p.World.Position)
	radius := p.Node.Radius * p.World.Scale.Y * unit
	if radius <= 0 {
		return
	}

	minY, maxY := int(math.Floor(cy-radius)), int(math.Ceil(cy+radius))
	spanX := radius / cellAspect
	minX, maxX := int(math.Floor(cx-spanX)), int(math.Ceil(cx+spanX))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5 - cx) * cellAspect
			dy := float64(y) + 0.5 - cy
			d := math.Hypot(dx, dy) / radius
			switch {
			case d < 0.6:
				g.set(x, y, GlyphBodyCore, color)
			case d < 0.85:
				g.set(x, y, GlyphBodyMid, color)
			case d <= 1:
				g.set(x, y, GlyphBodyEdge, color)
			}
		}
	}
}

func drawMouth(g Grid, x, y int, n scene.Node, color string) {
	r := GlyphSmile
	switch {
	case math.Abs(n.Rotation.Z-math.Pi) < 1e-6:
		r = GlyphFrown
	case n.Scale.Y < flatMouth:
		r = GlyphFlatMouth
	}

	width := int(math.Round(n.Scale.X * 3))
	if width < 1 {
		width = 1
	}
	start := x - width/2
	for i := 0; i < width; i++ {
		g.set(start+i, y, r, color)
	}
}

// validColor drops colours a terminal could not render.
func validColor(s string) string {
	if _, err := colorful.Hex(s); err != nil {
		return ""
	}
	return s
}

// camera is a pinhole looking down -Z.
type camera struct {
	pos    scene.Vec3
	focal  float64 // rows per world unit at distance 1
	width  int
	height int
}

func newCamera(c scene.Camera, width, height int) camera {
	fov := c.FOV
	if fov <= 0 {
		fov = scene.DefaultCamera.FOV
	}
	half := fov / 2 * math.Pi / 180
	return camera{
		pos:    c.Position,
		focal:  float64(height) / 2 / math.Tan(half),
		width:  width,
		height: height,
	}
}

// projectFloat returns the cell coordinates of p and the number of rows one
// world unit spans at p's depth. unit is zero behind the camera.
func (c camera) projectFloat(p scene.Vec3) (x, y, unit float64) {
	depth := c.pos.Z - p.Z
	if depth <= 0 {
		return 0, 0, 0
	}
	unit = c.focal / depth
	x = float64(c.width)/2 + (p.X-c.pos.X)*unit/cellAspect
	y = float64(c.height)/2 - (p.Y-c.pos.Y)*unit
	return x, y, unit
}

func (c camera) project(p scene.Vec3) (x, y int, unit float64, ok bool) {
	fx, fy, unit := c.projectFloat(p)
	if unit == 0 {
		return 0, 0, 0, false
	}
	return int(math.Floor(fx)), int(math.Floor(fy)), unit, true
}
