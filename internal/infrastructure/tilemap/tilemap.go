// Package tilemap loads orthogonal Tiled (TMX) maps into the layer and
// object data the game consumes.
//
// Maps carry three layers: "background" (decorative tiles), "foreground"
// (solid tiles) and "objects" (typed map objects). Tile rows are exposed
// bottom-up so that cell (0, 0) is the bottom-left tile of the map.
package tilemap

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer names the game expects in every map
const (
	BackgroundLayer = "background"
	ForegroundLayer = "foreground"
	ObjectsLayer    = "objects"
)

// Map is a parsed tiled map
type Map struct {
	Name       string
	Width      int // tiles
	Height     int // tiles
	TileWidth  int // pixels
	TileHeight int // pixels
	Background *Layer
	Foreground *Layer
	Objects    []Object
}

// PixelHeight returns the map height in source pixels
func (m *Map) PixelHeight() float64 {
	return float64(m.Height * m.TileHeight)
}

// Layer is a grid of tile cells
type Layer struct {
	Width  int
	Height int
	cells  []int // row-major, bottom row first; -1 is empty
}

// NewLayer creates an empty layer
func NewLayer(width, height int) *Layer {
	cells := make([]int, width*height)
	for i := range cells {
		cells[i] = -1
	}
	return &Layer{Width: width, Height: height, cells: cells}
}

// Set places tile id at (x, y). A negative id clears the cell.
func (l *Layer) Set(x, y, id int) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	if id < 0 {
		id = -1
	}
	l.cells[y*l.Width+x] = id
}

// Cell returns the tile id at (x, y), y counted from the bottom row.
// ok is false for empty cells and positions outside the layer.
func (l *Layer) Cell(x, y int) (id int, ok bool) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0, false
	}
	id = l.cells[y*l.Width+x]
	return id, id >= 0
}

// Occupied reports whether (x, y) holds a tile
func (l *Layer) Occupied(x, y int) bool {
	_, ok := l.Cell(x, y)
	return ok
}

// Object is an entry of the objects layer.
// X, Y, W, H are source pixels with Y measured from the bottom of the map
// to the bottom edge of the object.
type Object struct {
	Type       string
	X, Y       float64
	W, H       float64
	Properties map[string]string
}

// Prop returns a required string property
func (o Object) Prop(name string) (string, error) {
	v, ok := o.Properties[name]
	if !ok {
		return "", fmt.Errorf("%s object at (%g, %g) is missing property %q", o.Type, o.X, o.Y, name)
	}
	return v, nil
}

// Loader reads TMX files from a filesystem
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a map loader rooted at fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load parses the named map. The ".tmx" extension is optional.
func (l *Loader) Load(name string) (*Map, error) {
	file := name
	if path.Ext(file) != ".tmx" {
		file += ".tmx"
	}

	tm, err := tiled.LoadFile(file, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", name, err)
	}

	m, err := convert(strings.TrimSuffix(path.Base(file), ".tmx"), tm)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}
	return m, nil
}

func convert(name string, tm *tiled.Map) (*Map, error) {
	m := &Map{
		Name:       name,
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
	}

	for _, tl := range tm.Layers {
		switch tl.Name {
		case BackgroundLayer:
			m.Background = convertLayer(tm, tl)
		case ForegroundLayer:
			m.Foreground = convertLayer(tm, tl)
		}
	}
	if m.Background == nil {
		return nil, fmt.Errorf("missing %q layer", BackgroundLayer)
	}
	if m.Foreground == nil {
		return nil, fmt.Errorf("missing %q layer", ForegroundLayer)
	}

	for _, group := range tm.ObjectGroups {
		if group.Name != ObjectsLayer {
			continue
		}
		for _, o := range group.Objects {
			props := make(map[string]string, len(o.Properties))
			for _, p := range o.Properties {
				props[p.Name] = p.Value
			}
			m.Objects = append(m.Objects, Object{
				Type:       o.Type,
				X:          o.X,
				Y:          m.PixelHeight() - o.Y - o.Height,
				W:          o.Width,
				H:          o.Height,
				Properties: props,
			})
		}
	}

	return m, nil
}

func convertLayer(tm *tiled.Map, tl *tiled.Layer) *Layer {
	l := NewLayer(tm.Width, tm.Height)
	for i, t := range tl.Tiles {
		if t == nil || t.IsNil() {
			continue
		}
		x := i % tm.Width
		row := i / tm.Width
		l.Set(x, tm.Height-1-row, int(t.ID))
	}
	return l
}

// FromRows builds a map from ASCII rows, top row first. Any character other
// than '.' or ' ' is a tile. The map takes the size of the background rows.
func FromRows(name string, background, foreground []string, objects ...Object) *Map {
	height := len(background)
	width := 0
	for _, row := range background {
		if len(row) > width {
			width = len(row)
		}
	}

	return &Map{
		Name:       name,
		Width:      width,
		Height:     height,
		TileWidth:  16,
		TileHeight: 16,
		Background: rowsLayer(background, width, height),
		Foreground: rowsLayer(foreground, width, height),
		Objects:    objects,
	}
}

func rowsLayer(rows []string, width, height int) *Layer {
	l := NewLayer(width, height)
	for r, row := range rows {
		y := height - 1 - r
		for x, ch := range row {
			if ch == '.' || ch == ' ' {
				continue
			}
			l.Set(x, y, int(ch))
		}
	}
	return l
}
