package grid

import (
	"errors"
	"fmt"

	"plot/pkg/planting"
)

// Coord addresses one cell, 0-indexed from the top-left.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.Row, c.Col) }

var (
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	ErrRaggedLayout  = errors.New("grid: layout rows have unequal lengths")
	ErrNotPlantCell  = errors.New("grid: cell holds no plant")
)

// Grid is a fixed-size matrix of occupants plus the temporal instance
// attached to each plant-occupied cell. Dimensions never change after
// creation. The grid is not safe for concurrent use; the host serializes
// writes per garden.
type Grid struct {
	width, height int
	cells         [][]Occupant
	instances     map[Coord]*planting.Instance
}

// New returns a grid with every cell empty.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([][]Occupant, height)
	for r := range cells {
		cells[r] = make([]Occupant, width)
	}
	return &Grid{
		width:     width,
		height:    height,
		cells:     cells,
		instances: map[Coord]*planting.Instance{},
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the coordinate addresses a real cell. Callers
// are expected to check before mutating; the mutators themselves treat a
// violation as a programming error and panic.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

func (g *Grid) mustBounds(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %s outside %dx%d", c, g.width, g.height))
	}
}

// At returns the occupant of a cell.
func (g *Grid) At(c Coord) Occupant {
	g.mustBounds(c)
	return g.cells[c.Row][c.Col]
}

// Place sets a cell's occupant. It deliberately does not touch any
// instance already recorded at the coordinate; whether temporal data
// survives a replace is the caller's decision (Move preserves it, a
// fresh drag-and-drop overwrite keeps whatever was there).
func (g *Grid) Place(c Coord, plant string) {
	g.mustBounds(c)
	g.cells[c.Row][c.Col] = PlantOccupant(plant)
}

// SetPath marks a cell as a walkway, dropping any instance.
func (g *Grid) SetPath(c Coord) {
	g.mustBounds(c)
	g.cells[c.Row][c.Col] = Path
	delete(g.instances, c)
}

// Remove clears a cell back to empty and deletes its instance.
func (g *Grid) Remove(c Coord) {
	g.mustBounds(c)
	g.cells[c.Row][c.Col] = Empty
	delete(g.instances, c)
}

// DragOffGrid is the interactive "drag out of the boundary" gesture; it
// is exactly a removal.
func (g *Grid) DragOffGrid(c Coord) { g.Remove(c) }

// Move relocates the occupant at from to to. When the destination is
// occupied the two occupants swap atomically; instances always travel
// with their occupant.
func (g *Grid) Move(from, to Coord) {
	g.mustBounds(from)
	g.mustBounds(to)
	if from == to {
		return
	}

	src := g.cells[from.Row][from.Col]
	dst := g.cells[to.Row][to.Col]
	srcInst := g.instances[from]
	dstInst := g.instances[to]

	g.cells[to.Row][to.Col] = src
	g.cells[from.Row][from.Col] = dst

	delete(g.instances, from)
	delete(g.instances, to)
	if srcInst != nil {
		g.instances[to] = srcInst
	}
	if dstInst != nil {
		g.instances[from] = dstInst
	}
}

// InstanceAt returns the instance at a plant-occupied cell, or nil.
func (g *Grid) InstanceAt(c Coord) *planting.Instance {
	g.mustBounds(c)
	return g.instances[c]
}

// SetInstance attaches temporal data to a plant-occupied cell. A nil or
// empty instance deletes the record. Attaching to an empty or path cell
// fails: the occupant/instance pairing invariant is enforced here, which
// is also what silently drops orphaned rows on load.
func (g *Grid) SetInstance(c Coord, in *planting.Instance) error {
	g.mustBounds(c)
	if in == nil || in.Empty() {
		delete(g.instances, c)
		return nil
	}
	if !g.cells[c.Row][c.Col].IsPlant() {
		return ErrNotPlantCell
	}
	g.instances[c] = in
	return nil
}

// EachInstance visits every recorded instance in unspecified order.
func (g *Grid) EachInstance(fn func(Coord, *planting.Instance)) {
	for c, in := range g.instances {
		fn(c, in)
	}
}

// EachCell visits every cell in row-major order.
func (g *Grid) EachCell(fn func(Coord, Occupant)) {
	for r := 0; r < g.height; r++ {
		for col := 0; col < g.width; col++ {
			fn(Coord{Row: r, Col: col}, g.cells[r][col])
		}
	}
}

// EmptyCells lists the coordinates of every empty cell in row-major
// order. This is the authoritative set the suggestion exporter publishes.
func (g *Grid) EmptyCells() []Coord {
	var out []Coord
	g.EachCell(func(c Coord, o Occupant) {
		if o.Kind == KindEmpty {
			out = append(out, c)
		}
	})
	return out
}

// PlantCount counts plant-occupied cells (paths and empties excluded).
func (g *Grid) PlantCount() int {
	n := 0
	g.EachCell(func(_ Coord, o Occupant) {
		if o.IsPlant() {
			n++
		}
	})
	return n
}

// Serialize renders the full spatial state as rows of occupant tokens,
// the only persisted representation of the layout.
func (g *Grid) Serialize() [][]string {
	rows := make([][]string, g.height)
	for r := 0; r < g.height; r++ {
		rows[r] = make([]string, g.width)
		for c := 0; c < g.width; c++ {
			rows[r][c] = g.cells[r][c].Token()
		}
	}
	return rows
}

// Deserialize rebuilds a grid from persisted occupant tokens. Instances
// are reattached separately via SetInstance, which drops any row whose
// cell is no longer plant-occupied.
func Deserialize(rows [][]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedLayout
		}
	}
	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, tok := range row {
			g.cells[r][c] = ParseToken(tok)
		}
	}
	return g, nil
}
