package entity

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/wild-tictactoe/internal/apperror"
)

// Cell is the content of a single square. Either side may place either counter.
type Cell string

const (
	Empty Cell = ""
	X     Cell = "X"
	O     Cell = "O"
)

const (
	BoardSize = 9
	RowSize   = 3

	emptyKey = '-'
)

// Counters lists the counters a side may place.
var Counters = [2]Cell{X, O}

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsCounter reports whether the cell holds a placeable counter.
func (that Cell) IsCounter() bool {
	return that == X || that == O
}

// Action is a single placement: which square and which counter.
type Action struct {
	Position int  `json:"position"`
	Counter  Cell `json:"counter"`
}

func (that Action) String() string {
	return fmt.Sprintf("%s@%d", that.Counter, that.Position)
}

// Board is a row-major 3x3 grid, index = row*3 + col. The zero value is the empty board.
// Board is an array, so passing it around copies it and no method can change a caller's board.
type Board [BoardSize]Cell

// ValidateAction - checks that the action may be played on the board.
func (that Board) ValidateAction(action Action) error {
	if action.Position < 0 || action.Position >= BoardSize {
		return fmt.Errorf("%w: %w: position %d", apperror.ErrInvalidAction, apperror.ErrInvalidCell, action.Position)
	}

	if that[action.Position] != Empty {
		return fmt.Errorf("%w: %w: position %d", apperror.ErrInvalidAction, apperror.ErrCellOccupied, action.Position)
	}

	if !action.Counter.IsCounter() {
		return fmt.Errorf("%w: %w: got %q", apperror.ErrInvalidAction, apperror.ErrInvalidCounter, string(action.Counter))
	}

	return nil
}

// Place returns a copy of the board with counter placed at position.
func (that Board) Place(position int, counter Cell) (Board, error) {
	if err := that.ValidateAction(Action{Position: position, Counter: counter}); err != nil {
		return that, err
	}

	that[position] = counter

	return that, nil
}

// IsWinner - true if any row, column or diagonal holds three identical counters.
func (that Board) IsWinner() bool {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that Board) EmptyPositions() []int {
	positions := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			positions = append(positions, i)
		}
	}

	return positions
}

// Key - canonical order-sensitive encoding of the board, one character per square.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, cell := range that {
		if cell == Empty {
			sb.WriteByte(emptyKey)
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// ParseBoard - inverse of Board.Key.
func ParseBoard(key string) (Board, error) {
	var board Board

	if len(key) != BoardSize {
		return board, fmt.Errorf("%w: key %q has length %d", ErrInvalidBoardKey, key, len(key))
	}

	for i := 0; i < BoardSize; i++ {
		switch key[i] {
		case emptyKey:
			board[i] = Empty
		case 'X':
			board[i] = X
		case 'O':
			board[i] = O
		default:
			return board, fmt.Errorf("%w: key %q has %q at %d", ErrInvalidBoardKey, key, key[i], i)
		}
	}

	return board, nil
}

func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < RowSize; row++ {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}

		for col := 0; col < RowSize; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}

			cell := that[row*RowSize+col]
			if cell == Empty {
				cell = " "
			}
			sb.WriteString(" " + string(cell) + " ")
		}
	}

	return sb.String()
}

// RandomValidMove picks an empty square and a counter, both uniformly at random.
func RandomValidMove(board Board, rng *rand.Rand) (Action, error) {
	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return Action{}, apperror.ErrNoAvailableMoves
	}

	return Action{
		Position: availableCells[rng.Intn(len(availableCells))],
		Counter:  Counters[rng.Intn(len(Counters))],
	}, nil
}
