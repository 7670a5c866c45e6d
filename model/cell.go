package model

import "github.com/sheikhrachel/go-petri/rules"

// Habitat resolves lattice positions to cells. A Cell uses it to find its
// neighbors and to register itself in Generate; it never owns the Habitat.
type Habitat interface {
	At(c Coordinate) *Cell
	Add(cell *Cell)
	aliveAt(c Coordinate) bool
}

// Cell is one lattice position with its current and next-generation state
type Cell struct {
	coord   Coordinate
	habitat Habitat
	present rules.State
	future  rules.State
}

// NewCell creates a dead cell at c with no decision for the next generation
func NewCell(habitat Habitat, c Coordinate) *Cell {
	return &Cell{
		coord:   c,
		habitat: habitat,
		present: rules.Dead,
		future:  rules.Unset,
	}
}

// Coordinate returns the position of the cell
func (c *Cell) Coordinate() Coordinate {
	return c.coord
}

// Key returns the canonical key of the cell's position
func (c *Cell) Key() string {
	return c.coord.Key()
}

// Present returns the current-generation state
func (c *Cell) Present() rules.State {
	return c.present
}

// Future returns the next-generation state, Unset if nothing has been decided
func (c *Cell) Future() rules.State {
	return c.future
}

// String renders the cell as its grid glyph
func (c *Cell) String() string {
	if c.IsAlive() {
		return gridPosBlock
	}
	return gridPosEmpty
}

func (c *Cell) IsAlive() bool {
	return c.present == rules.Alive
}

func (c *Cell) IsDead() bool {
	return !c.IsAlive()
}

// Spawn brings the cell to life immediately. Only used for seeding.
func (c *Cell) Spawn() {
	c.present = rules.Alive
}

// Generate spawns the cell and adds it to its habitat
func (c *Cell) Generate() {
	c.Spawn()
	c.habitat.Add(c)
}

// MarkDead schedules the cell to be dead in the next generation
func (c *Cell) MarkDead() {
	c.future = rules.Dead
}

// MarkAlive schedules the cell to be alive in the next generation, whether it
// survives or is born.
func (c *Cell) MarkAlive() {
	c.future = rules.Alive
}

// WillSurvive reports whether the cell is scheduled to be alive next generation
func (c *Cell) WillSurvive() bool {
	return c.future == rules.Alive
}

// BeginTransition decides the next state from the number of living neighbors.
// Calling it repeatedly with the same count has the same effect as calling it once.
func (c *Cell) BeginTransition(livingNeighbors uint) {
	switch rules.Decide(livingNeighbors, c.IsAlive()) {
	case rules.Alive:
		c.MarkAlive()
	case rules.Dead:
		c.MarkDead()
	default:
		c.future = rules.Unset
	}
}

// CommitTransition moves the decided future into the present and clears the
// decision. An Unset future leaves the present untouched, which only happens
// for dead cells that stay dead, or when BeginTransition was never called.
func (c *Cell) CommitTransition() {
	if c.future != rules.Unset {
		c.present = c.future
	}
	c.future = rules.Unset
}

// Step runs a full transition for this cell alone. Whole-grid updates must go
// through Dish.Advance instead, which decides every cell before committing any.
func (c *Cell) Step() {
	c.BeginTransition(c.LivingNeighborCount())
	c.CommitTransition()
}

// Neighbors returns the surrounding cells in NeighborOffsets order. Positions
// the habitat does not hold come back as dead placeholders. Positions past the
// int64 edge of the lattice do not exist and are left out.
func (c *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, len(NeighborOffsets))
	for _, off := range NeighborOffsets {
		if pos, ok := c.coord.Offset(off.X, off.Y); ok {
			neighbors = append(neighbors, c.habitat.At(pos))
		}
	}
	return neighbors
}

// LivingNeighbors returns the alive subset of Neighbors
func (c *Cell) LivingNeighbors() []*Cell {
	var living []*Cell
	for _, n := range c.Neighbors() {
		if n.IsAlive() {
			living = append(living, n)
		}
	}
	return living
}

func (c *Cell) LivingNeighborCount() uint {
	var count uint
	for _, off := range NeighborOffsets {
		if pos, ok := c.coord.Offset(off.X, off.Y); ok && c.habitat.aliveAt(pos) {
			count++
		}
	}
	return count
}
