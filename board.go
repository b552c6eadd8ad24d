package main

import "errors"

type Cell int

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

const boardSize = 3

// Board is a fixed 3x3 board stored row-major. It is a value type: copies
// are independent and two boards compare equal by content, so search
// branches can derive positions without any undo bookkeeping.
type Board [boardSize * boardSize]Cell

// Errors returned by board operations.
var (
	ErrOutOfBounds  = errors.New("out of bounds")
	ErrOccupied     = errors.New("cell occupied")
	ErrNoLegalMoves = errors.New("no legal moves")
)

func (b Board) At(x, y int) Cell {
	return b[y*boardSize+x]
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < boardSize && y < boardSize
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

// Apply returns a new board with the move played for player. The receiver is
// never modified; on error the returned board equals the receiver.
func (b Board) Apply(move Move, player PlayerColor) (Board, error) {
	if !move.IsValid() {
		return b, ErrOutOfBounds
	}
	if b[move.Index()] != CellEmpty {
		return b, ErrOccupied
	}
	next := b
	next[move.Index()] = CellFromPlayer(player)
	return next, nil
}

// LegalMoves lists all empty cells in ascending index order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, b.CountEmpty())
	for idx, cell := range b {
		if cell == CellEmpty {
			moves = append(moves, MoveFromIndex(idx))
		}
	}
	return moves
}

func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerX {
		return CellX
	}
	return CellO
}

func PlayerFromCell(cell Cell) (PlayerColor, bool) {
	switch cell {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return PlayerX, false
	}
}
