package tictactoe

import "github.com/rocketscienceinc/wild-tictactoe/internal/entity"

// Policy chooses the next action for a board. The environment validates every
// action it gets back, so a policy that breaks the rules fails the call it was made in.
type Policy interface {
	ChooseMove(board entity.Board) (entity.Action, error)
}

// PolicyFunc adapts an ordinary function to Policy.
type PolicyFunc func(board entity.Board) (entity.Action, error)

func (that PolicyFunc) ChooseMove(board entity.Board) (entity.Action, error) {
	return that(board)
}
