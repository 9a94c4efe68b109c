package service

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/wild-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
)

var ErrUnknownBot = errors.New("unknown bot kind")

const (
	KindRandom      = "random"
	KindFirstEmptyX = "first-empty-x"
	KindFirstEmptyO = "first-empty-o"
	KindGreedy      = "greedy"
)

// Bot is anything that picks a move for a board. It matches tictactoe.Policy.
type Bot interface {
	ChooseMove(board entity.Board) (entity.Action, error)
}

// RandomBot plays a uniformly random empty square with a random counter.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (that *RandomBot) ChooseMove(board entity.Board) (entity.Action, error) {
	action, err := entity.RandomValidMove(board, that.rng)
	if err != nil {
		return entity.Action{}, fmt.Errorf("random bot: %w", err)
	}

	return action, nil
}

// FirstEmptyBot always puts the same counter on the lowest empty square.
type FirstEmptyBot struct {
	counter entity.Cell
}

func NewFirstEmptyBot(counter entity.Cell) *FirstEmptyBot {
	return &FirstEmptyBot{counter: counter}
}

func (that *FirstEmptyBot) ChooseMove(board entity.Board) (entity.Action, error) {
	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return entity.Action{}, fmt.Errorf("first empty bot: %w", apperror.ErrNoAvailableMoves)
	}

	return entity.Action{Position: availableCells[0], Counter: that.counter}, nil
}

// GreedyBot moves to the successor board with the highest value in its table.
// Boards missing from the table are worth defaultValue. Ties are broken at random.
type GreedyBot struct {
	values       entity.ValueTable
	defaultValue float64
	rng          *rand.Rand
}

func NewGreedyBot(values entity.ValueTable, defaultValue float64, rng *rand.Rand) *GreedyBot {
	return &GreedyBot{
		values:       values,
		defaultValue: defaultValue,
		rng:          rng,
	}
}

func (that *GreedyBot) ChooseMove(board entity.Board) (entity.Action, error) {
	maxValue := math.Inf(-1)
	var bestMoves []entity.Action

	for _, position := range board.EmptyPositions() {
		for _, counter := range entity.Counters {
			// board is a copy, Place never touches it
			next, err := board.Place(position, counter)
			if err != nil {
				return entity.Action{}, fmt.Errorf("greedy bot: %w", err)
			}

			value := that.values.Value(next, that.defaultValue)
			switch {
			case value > maxValue:
				maxValue = value
				bestMoves = []entity.Action{{Position: position, Counter: counter}}
			case value == maxValue:
				bestMoves = append(bestMoves, entity.Action{Position: position, Counter: counter})
			}
		}
	}

	if len(bestMoves) == 0 {
		return entity.Action{}, fmt.Errorf("greedy bot: %w", apperror.ErrNoAvailableMoves)
	}

	return bestMoves[that.rng.Intn(len(bestMoves))], nil
}

// NewBot - builds a bot by its configured kind. Only the greedy bot uses values and defaultValue.
func NewBot(kind string, values entity.ValueTable, defaultValue float64, rng *rand.Rand) (Bot, error) {
	switch kind {
	case KindRandom:
		return NewRandomBot(rng), nil
	case KindFirstEmptyX:
		return NewFirstEmptyBot(entity.X), nil
	case KindFirstEmptyO:
		return NewFirstEmptyBot(entity.O), nil
	case KindGreedy:
		if values == nil {
			values = entity.ValueTable{}
		}
		return NewGreedyBot(values, defaultValue, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBot, kind)
	}
}
