package entity

// ValueTable maps a canonical board key to a learned value. Agents that learn
// one own the algorithm; the environment only provides the keys.
type ValueTable map[string]float64

// Value - value of the board, or def when the board was never seen.
func (that ValueTable) Value(board Board, def float64) float64 {
	if value, ok := that[board.Key()]; ok {
		return value
	}

	return def
}

func (that ValueTable) Set(board Board, value float64) {
	that[board.Key()] = value
}
