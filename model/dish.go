package model

import (
	"crypto/md5"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Dish is a sparse lattice of cells keyed by coordinate. Only cells that were
// seeded, or born during an advance, are held. Everything else is implicitly dead.
type Dish struct {
	cells   map[Coordinate]*Cell
	workers int
	pool    *HaloPool
}

// Option configures a Dish
type Option func(*Dish)

// WithWorkers splits the decision phase of each generation across n goroutines.
// Values below 2 keep it sequential.
func WithWorkers(n int) Option {
	return func(d *Dish) {
		d.workers = n
	}
}

// WithPool reuses halo maps between generations
func WithPool(pool *HaloPool) Option {
	return func(d *Dish) {
		d.pool = pool
	}
}

// NewEmptyDish creates a dish with no cells
func NewEmptyDish(opts ...Option) *Dish {
	d := &Dish{cells: make(map[Coordinate]*Cell)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDish creates a dish seeded with the living cells listed in input
func NewDish(input string, opts ...Option) *Dish {
	d := NewEmptyDish(opts...)
	d.Input(input)
	return d
}

// Input spawns a living cell for every coordinate decoded from text
func (d *Dish) Input(text string) {
	for _, c := range DecodeCoordinates(text) {
		d.At(c).Generate()
	}
}

// Add stores cell under its coordinate unless that position is already held
func (d *Dish) Add(cell *Cell) {
	if d.Occupied(cell.coord) {
		return
	}
	d.cells[cell.coord] = cell
}

// Occupied reports whether the dish holds a cell at c
func (d *Dish) Occupied(c Coordinate) bool {
	_, ok := d.cells[c]
	return ok
}

// At returns the cell held at c, or a new dead cell for c that is not added
// to the dish.
func (d *Dish) At(c Coordinate) *Cell {
	if cell, ok := d.cells[c]; ok {
		return cell
	}
	return NewCell(d, c)
}

// aliveAt reports whether a living cell is held at c without creating a placeholder
func (d *Dish) aliveAt(c Coordinate) bool {
	cell, ok := d.cells[c]
	return ok && cell.IsAlive()
}

// AtKey is At for a canonical "x,y" key
func (d *Dish) AtKey(key string) (*Cell, error) {
	c, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return d.At(c), nil
}

// Len returns the number of held cells, dead or alive
func (d *Dish) Len() int {
	return len(d.cells)
}

// Population returns the number of held cells that are alive
func (d *Dish) Population() (count int) {
	for _, cell := range d.cells {
		if cell.IsAlive() {
			count++
		}
	}
	return
}

// Alive returns the coordinates of all living cells ordered by x, then y
func (d *Dish) Alive() []Coordinate {
	alive := make([]Coordinate, 0, len(d.cells))
	for c, cell := range d.cells {
		if cell.IsAlive() {
			alive = append(alive, c)
		}
	}
	slices.SortFunc(alive, compareCoordinates)
	return alive
}

// ActiveNeighborhood returns every held cell together with its 8 neighbors.
// Neighbors not held by the dish are dead placeholders and are not added.
func (d *Dish) ActiveNeighborhood() map[Coordinate]*Cell {
	halo := make(map[Coordinate]*Cell, len(d.cells)*9)
	d.collectHalo(halo)
	return halo
}

// collectHalo fills dst with the active neighborhood and returns its cells in a
// stable order: held cells sorted by coordinate, each followed by its new neighbors.
func (d *Dish) collectHalo(dst map[Coordinate]*Cell) []*Cell {
	owned := make([]Coordinate, 0, len(d.cells))
	for c := range d.cells {
		owned = append(owned, c)
	}
	slices.SortFunc(owned, compareCoordinates)

	ordered := make([]*Cell, 0, len(owned)*9)
	include := func(cell *Cell) {
		if _, ok := dst[cell.coord]; ok {
			return
		}
		dst[cell.coord] = cell
		ordered = append(ordered, cell)
	}

	for _, c := range owned {
		cell := d.cells[c]
		include(cell)
		for _, n := range cell.Neighbors() {
			include(n)
		}
	}

	return ordered
}

// Advance moves every cell forward one generation. On error no cell has changed.
func (d *Dish) Advance() error {
	_, err := d.advance()
	return err
}

// EncodeGeneration advances one generation and returns the cells alive in it,
// in the same text format accepted by NewDish.
func (d *Dish) EncodeGeneration() (string, error) {
	next, err := d.advance()
	if err != nil {
		return "", err
	}
	return EncodeCoordinates(next), nil
}

// advance runs the decision phase over the whole halo before committing any
// cell, so every neighbor count reads the previous generation. Placeholders
// that are born are added to the dish; those that stay dead are dropped.
// It returns the coordinates alive in the new generation, ordered by x, then y.
func (d *Dish) advance() ([]Coordinate, error) {
	var halo map[Coordinate]*Cell
	if d.pool != nil {
		halo = d.pool.Get()
		defer d.pool.Put(halo)
	} else {
		halo = make(map[Coordinate]*Cell, len(d.cells)*9)
	}
	cells := d.collectHalo(halo)

	if err := d.decide(cells); err != nil {
		return nil, errors.Wrap(err, "[advance] decision phase failed")
	}

	next := make([]Coordinate, 0, len(cells))
	for _, cell := range cells {
		if cell.WillSurvive() {
			next = append(next, cell.coord)
			d.Add(cell)
		}
	}

	for _, cell := range cells {
		cell.CommitTransition()
	}

	slices.SortFunc(next, compareCoordinates)
	return next, nil
}

// decide computes BeginTransition for every cell. Each cell only writes its own
// future and only reads present states, so chunks can run concurrently.
func (d *Dish) decide(cells []*Cell) error {
	if d.workers < 2 || len(cells) < d.workers {
		for _, cell := range cells {
			cell.BeginTransition(cell.LivingNeighborCount())
		}
		return nil
	}

	var (
		eg             errgroup.Group
		cellsPerWorker = (len(cells) + d.workers - 1) / d.workers
	)

	for i := 0; i < d.workers; i++ {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(cells))
		)
		if start >= len(cells) {
			break
		}

		eg.Go(func() error {
			for _, cell := range cells[start:end] {
				cell.BeginTransition(cell.LivingNeighborCount())
			}
			return nil
		})
	}

	return eg.Wait()
}

// Prune drops held cells that are dead. Cell handles for pruned positions stay
// valid but are no longer reachable through the dish.
func (d *Dish) Prune() (removed int) {
	for c, cell := range d.cells {
		if cell.IsDead() {
			delete(d.cells, c)
			removed++
		}
	}
	return
}

// Size returns the bounding box of held cells as (max x + 1, max y + 1).
// Negative coordinates do not extend the box and an empty dish is 1x1.
func (d *Dish) Size() (width, height int64) {
	var maxX, maxY int64
	for c := range d.cells {
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return maxX + 1, maxY + 1
}

// Render draws the box returned by Size, one text row per y, x ascending
// within the row.
func (d *Dish) Render() string {
	width, height := d.Size()

	var sb strings.Builder
	for y := int64(0); y < height; y++ {
		for x := int64(0); x < width; x++ {
			sb.WriteString(d.At(Coordinate{X: x, Y: y}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fingerprint returns an MD5 hash of the living population
func (d *Dish) Fingerprint() string {
	h := md5.New()
	for _, c := range d.Alive() {
		h.Write([]byte(c.Key()))
		h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
