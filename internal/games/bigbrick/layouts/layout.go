// Package layouts loads starting boards for Big Brick: pieces of debris
// placed before the first spawn. This package depends on the board
// engine but the engine does not depend on layouts.
package layouts

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	engine "github.com/vovakirdan/bigbrick/internal/games/bigbrick/core"
)

// Layout is a parsed starting board.
type Layout struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Pieces   []Piece
	FilePath string
}

// Piece is one welded piece of debris.
type Piece struct {
	Cells   []engine.Coord
	Color   engine.Color
	Settled bool // Starts Static instead of falling into place
}

// yamlLayout is the on-disk form of a layout.
type yamlLayout struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Size   yamlSize    `yaml:"size"`
	Pieces []yamlPiece `yaml:"pieces"`
}

type yamlSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlPiece struct {
	Cells   [][2]int `yaml:"cells"` // [x, y] pairs
	Color   int      `yaml:"color"` // Palette index
	Settled bool     `yaml:"settled"`
}

// ParseYAML parses a layout document.
func ParseYAML(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, errors.New("layout id is required")
	}

	layout := Layout{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Size.W,
		Height: yl.Size.H,
		Pieces: make([]Piece, 0, len(yl.Pieces)),
	}
	if layout.Name == "" {
		layout.Name = layout.ID
	}

	for i, p := range yl.Pieces {
		if len(p.Cells) == 0 {
			return Layout{}, fmt.Errorf("piece %d has no cells", i)
		}
		if p.Color < 0 || p.Color >= engine.ColorCount {
			return Layout{}, fmt.Errorf("piece %d: color %d out of range [0,%d)", i, p.Color, engine.ColorCount)
		}
		cells := make([]engine.Coord, len(p.Cells))
		for j, xy := range p.Cells {
			cells[j] = engine.C(xy[0], xy[1])
		}
		layout.Pieces = append(layout.Pieces, Piece{
			Cells:   cells,
			Color:   engine.Color(p.Color),
			Settled: p.Settled,
		})
	}

	return layout, nil
}

// Fits reports whether the layout was drawn for a board of this size.
// A layout without a size fits any board.
func (l Layout) Fits(width, height int) bool {
	if l.Width == 0 && l.Height == 0 {
		return true
	}
	return l.Width == width && l.Height == height
}

// Apply places every piece on the board. Debris is never controllable.
// The board is left partially filled if a piece doesn't fit.
func (l Layout) Apply(level *engine.Level, owner string) error {
	if !l.Fits(level.Width(), level.Height()) {
		return fmt.Errorf("layout %s is %dx%d, board is %dx%d",
			l.ID, l.Width, l.Height, level.Width(), level.Height())
	}

	for i, p := range l.Pieces {
		if !level.Place(owner, p.Cells, p.Color) {
			return fmt.Errorf("layout %s: piece %d overlaps, repeats a cell or leaves the board", l.ID, i)
		}
		for _, c := range p.Cells {
			b := level.Get(c.X, c.Y)
			b.Controllable = false
			if p.Settled {
				b.State = engine.Static
			}
		}
	}
	return nil
}
