package entity

// Player holds the accumulated standings of a named agent.
type Player struct {
	ID     string `json:"id"`
	Won    int    `json:"won"`
	Drawn  int    `json:"drawn"`
	Lost   int    `json:"lost"`
	Failed int    `json:"failed,omitempty"`
}

func (that *Player) Games() int {
	return that.Won + that.Drawn + that.Lost + that.Failed
}

// Record adds the outcome of one finished game seen from the player's side.
func (that *Player) Record(winner Side) {
	switch winner {
	case SidePlayer:
		that.Won++
	case SideOpponent:
		that.Lost++
	default:
		that.Drawn++
	}
}
