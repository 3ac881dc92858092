package entity

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Size is the number of rows and columns on the board.
const Size = 3

// EmptyValue is how an empty cell is written in snapshots and rendered boards.
const EmptyValue = " "

const (
	cellSeparator = " | "
	rowDivider    = "\n---------\n"
)

// Cell is the state of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellA
	CellB
)

// Mark is the single-character token a player places on the board.
type Mark string

// Validate - checks that the mark is exactly one visible character.
func (that Mark) Validate() error {
	value := string(that)
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%w: %q must be a single character", apperror.ErrInvalidMark, value)
	}

	r, _ := utf8.DecodeRuneInString(value)
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return fmt.Errorf("%w: %q is not a visible character", apperror.ErrInvalidMark, value)
	}

	return nil
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WinLines lists every winning line in scan order: rows, then columns, then diagonals.
var WinLines = [][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid shared by exactly two marks.
type Board struct {
	marks [2]Mark
	cells [Size][Size]Cell
}

// NewBoard - creates an empty board for the two given marks.
func NewBoard(a, b Mark) (*Board, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	if a == b {
		return nil, fmt.Errorf("%w: both players use %q", apperror.ErrDuplicateMark, string(a))
	}

	return &Board{marks: [2]Mark{a, b}}, nil
}

// NewBoardFromGrid - rebuilds a board from snapshot rows, rejecting anything that is not a 3x3 grid
// of empty cells and the two given marks.
func NewBoardFromGrid(grid [][]string, a, b Mark) (*Board, error) {
	board, err := NewBoard(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptResume, err)
	}

	if len(grid) != Size {
		return nil, fmt.Errorf("%w: grid has %d rows", apperror.ErrCorruptResume, len(grid))
	}

	for row, values := range grid {
		if len(values) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", apperror.ErrCorruptResume, row, len(values))
		}

		for col, value := range values {
			cell, err := board.cellOf(value)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d, %d): %w", apperror.ErrCorruptResume, row, col, err)
			}
			board.cells[row][col] = cell
		}
	}

	return board, nil
}

// MarkAt - returns the mark at the position, false when the cell is empty or outside the grid.
func (that *Board) MarkAt(row, col int) (Mark, bool) {
	if !inBounds(row, col) {
		return "", false
	}

	return that.markOf(that.cells[row][col])
}

// CheckMove - reports whether a mark could be placed at the position without changing the board.
func (that *Board) CheckMove(row, col int) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if that.cells[row][col] != CellEmpty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// PlaceMark - puts the mark into an empty cell. No other cell changes.
func (that *Board) PlaceMark(row, col int, mark Mark) error {
	cell, err := that.cellOf(string(mark))
	if err != nil {
		return err
	}

	if cell == CellEmpty {
		return fmt.Errorf("%w: cannot place an empty mark", apperror.ErrInvalidMark)
	}

	if err = that.CheckMove(row, col); err != nil {
		return err
	}

	that.cells[row][col] = cell

	return nil
}

// CheckWinner - returns the mark of the first completed line in scan order.
func (that *Board) CheckWinner() (Mark, bool) {
	for _, line := range WinLines {
		a := that.cells[line[0].Row][line[0].Col]
		b := that.cells[line[1].Row][line[1].Col]
		c := that.cells[line[2].Row][line[2].Col]

		if a != CellEmpty && a == b && b == c {
			return that.markOf(a)
		}
	}

	return "", false
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

// EmptyCells - returns the free positions in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that.cells[row][col] == CellEmpty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Grid - returns a copy of the cells as snapshot strings.
func (that *Board) Grid() [][]string {
	grid := make([][]string, Size)
	for row := range Size {
		grid[row] = make([]string, Size)
		for col := range Size {
			grid[row][col] = that.valueOf(that.cells[row][col])
		}
	}

	return grid
}

func (that *Board) String() string {
	lines := make([]string, 0, Size)
	for _, row := range that.Grid() {
		lines = append(lines, strings.Join(row, cellSeparator))
	}

	return strings.Join(lines, rowDivider)
}

func (that *Board) cellOf(value string) (Cell, error) {
	switch value {
	case EmptyValue:
		return CellEmpty, nil
	case string(that.marks[0]):
		return CellA, nil
	case string(that.marks[1]):
		return CellB, nil
	default:
		return CellEmpty, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, value)
	}
}

func (that *Board) markOf(cell Cell) (Mark, bool) {
	switch cell {
	case CellA:
		return that.marks[0], true
	case CellB:
		return that.marks[1], true
	default:
		return "", false
	}
}

func (that *Board) valueOf(cell Cell) string {
	if mark, ok := that.markOf(cell); ok {
		return string(mark)
	}

	return EmptyValue
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
