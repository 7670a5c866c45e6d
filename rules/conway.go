package rules

// State is the life status of a cell, either as it is now or as it will be.
type State uint8

const (
	// Unset means no decision has been made for the next generation.
	Unset State = iota
	Dead
	Alive
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unset"
	}
}

/*
Decide applies Conway's Game of Life rules to determine the next state of a cell.

	alive, n < 2     -> Dead
	alive, n == 2, 3 -> Alive
	alive, n > 3     -> Dead
	dead,  n == 3    -> Alive
	dead,  otherwise -> Unset (the cell stays dead)
*/
func Decide(livingNeighbors uint, alive bool) State {
	if alive {
		if livingNeighbors == 2 || livingNeighbors == 3 {
			return Alive
		}
		return Dead
	}
	if livingNeighbors == 3 {
		return Alive
	}
	return Unset
}
