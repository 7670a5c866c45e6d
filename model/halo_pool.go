package model

import "sync"

// HaloPool recycles the coordinate maps built for each generation's halo
type HaloPool struct {
	pool sync.Pool
}

func NewHaloPool() *HaloPool {
	return &HaloPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Coordinate]*Cell)
			},
		},
	}
}

// Get retrieves an empty halo map from the pool
func (p *HaloPool) Get() map[Coordinate]*Cell {
	return p.pool.Get().(map[Coordinate]*Cell)
}

// Put clears the map and returns it to the pool
func (p *HaloPool) Put(halo map[Coordinate]*Cell) {
	clear(halo)
	p.pool.Put(halo)
}
