package tictactoe

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/wild-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

const (
	RewardWin  = 1
	RewardNone = 0
)

// Transition is what Reset and Step hand back to the caller.
type Transition struct {
	Board  entity.Board
	Reward int
	Done   bool
	Info   map[string]any
}

// Environment plays the opponent against whoever calls Step.
// Every Step is one placement by the player followed, unless the game is over,
// by one placement of the opponent policy.
type Environment struct {
	logger   *slog.Logger
	opponent Policy
	rng      *rand.Rand

	board        entity.Board
	turn         entity.Side
	wentFirst    entity.Side
	winner       entity.Side
	status       Status
	counterSides map[int]entity.Side
	history      []entity.Move
}

// NewEnvironment - rng decides who goes first on every Reset.
func NewEnvironment(logger *slog.Logger, opponent Policy, rng *rand.Rand) *Environment {
	return &Environment{
		logger:       logger.With("component", "environment"),
		opponent:     opponent,
		rng:          rng,
		status:       StatusNotStarted,
		counterSides: map[int]entity.Side{},
	}
}

// Reset - starts a new game on an empty board. When the opponent is picked to
// go first its move is already on the returned board.
func (that *Environment) Reset() (Transition, error) {
	that.board = entity.Board{}
	that.winner = entity.NoSide
	that.status = StatusInProgress
	that.counterSides = map[int]entity.Side{}
	that.history = nil

	that.turn = entity.SidePlayer
	if that.rng.Intn(2) == 1 {
		that.turn = entity.SideOpponent
	}
	that.wentFirst = that.turn

	that.logger.Debug("game starts", "went_first", that.wentFirst)

	reward := RewardNone
	if that.turn == entity.SideOpponent {
		opponentReward, err := that.opponentTurn()
		if err != nil {
			return Transition{}, err
		}
		reward -= opponentReward
	}

	return that.transition(reward), nil
}

// Step - plays the player's action, then the opponent's reply.
// Reward is +1 when the player's placement wins, -1 when the opponent's does.
func (that *Environment) Step(action entity.Action) (Transition, error) {
	if err := that.confirmPlayerTurn(); err != nil {
		return Transition{}, err
	}

	reward, err := that.place(action)
	if err != nil {
		return Transition{}, err
	}

	if that.status != StatusDone {
		opponentReward, err := that.opponentTurn()
		if err != nil {
			return Transition{}, err
		}
		// the opponent's win is the player's loss
		reward -= opponentReward
	}

	switch {
	case reward > 0:
		that.logger.Debug("player wins")
	case reward < 0:
		that.logger.Debug("opponent wins")
	case that.status == StatusDone:
		that.logger.Debug("game drawn")
	}

	return that.transition(reward), nil
}

func (that *Environment) confirmPlayerTurn() error {
	switch {
	case that.status == StatusNotStarted:
		return fmt.Errorf("%w: %w", apperror.ErrPreconditionViolated, apperror.ErrGameIsNotStarted)
	case that.status == StatusDone:
		return fmt.Errorf("%w: %w", apperror.ErrPreconditionViolated, apperror.ErrGameFinished)
	case that.turn != entity.SidePlayer:
		return fmt.Errorf("%w: %w", apperror.ErrPreconditionViolated, apperror.ErrNotYourTurn)
	default:
		return nil
	}
}

func (that *Environment) opponentTurn() (int, error) {
	action, err := that.opponent.ChooseMove(that.board)
	if err != nil {
		return RewardNone, fmt.Errorf("opponent move: %w", err)
	}

	reward, err := that.place(action)
	if err != nil {
		return RewardNone, fmt.Errorf("opponent move: %w", err)
	}

	return reward, nil
}

// place is one half-step for whichever side holds the turn.
// The win goes to the side that placed the counter, whatever the symbol.
func (that *Environment) place(action entity.Action) (int, error) {
	board, err := that.board.Place(action.Position, action.Counter)
	if err != nil {
		return RewardNone, err
	}

	that.board = board
	that.counterSides[action.Position] = that.turn
	that.history = append(that.history, entity.Move{Side: that.turn, Action: action})

	that.logger.Debug("move made", "side", that.turn, "action", action.String(), "board", "\n"+board.String())

	reward := RewardNone
	if board.IsWinner() {
		reward = RewardWin
		that.winner = that.turn
	}

	if reward == RewardWin || board.IsFull() {
		that.status = StatusDone
	}

	that.turn = that.turn.Other()

	return reward, nil
}

func (that *Environment) transition(reward int) Transition {
	return Transition{
		Board:  that.board,
		Reward: reward,
		Done:   that.status == StatusDone,
		Info:   map[string]any{},
	}
}

func (that *Environment) Board() entity.Board {
	return that.board
}

// Turn - side to place next.
func (that *Environment) Turn() entity.Side {
	return that.turn
}

func (that *Environment) WentFirst() entity.Side {
	return that.wentFirst
}

// Winner - NoSide while the game runs or when it was drawn.
func (that *Environment) Winner() entity.Side {
	return that.winner
}

func (that *Environment) Status() Status {
	return that.status
}

func (that *Environment) IsDone() bool {
	return that.status == StatusDone
}

// CounterSides - who placed the counter on each occupied square.
func (that *Environment) CounterSides() map[int]entity.Side {
	return maps.Clone(that.counterSides)
}

func (that *Environment) History() []entity.Move {
	return slices.Clone(that.history)
}
