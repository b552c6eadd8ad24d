package main

import (
	"errors"
	"testing"
)

// parseBoard builds a board from a 9-rune row-major string of 'X', 'O', '.'.
func parseBoard(t *testing.T, cells string) Board {
	t.Helper()
	if len(cells) != boardSize*boardSize {
		t.Fatalf("parseBoard: want %d cells, got %d", boardSize*boardSize, len(cells))
	}
	var board Board
	for i, r := range cells {
		switch r {
		case 'X':
			board[i] = CellX
		case 'O':
			board[i] = CellO
		case '.':
			board[i] = CellEmpty
		default:
			t.Fatalf("parseBoard: unexpected cell %q", r)
		}
	}
	return board
}

func TestLegalMovesAscendingIndexOrder(t *testing.T) {
	board := Board{}
	moves := board.LegalMoves()
	if len(moves) != 9 {
		t.Fatalf("expected 9 legal moves on empty board, got %d", len(moves))
	}
	for i, move := range moves {
		if move.Index() != i {
			t.Fatalf("expected move %d at position %d, got index %d", i, i, move.Index())
		}
	}

	board = parseBoard(t, "X.O.X.O..")
	moves = board.LegalMoves()
	want := []int{1, 3, 5, 7, 8}
	if len(moves) != len(want) {
		t.Fatalf("expected %d legal moves, got %d", len(want), len(moves))
	}
	for i, idx := range want {
		if moves[i].Index() != idx {
			t.Fatalf("expected index %d at position %d, got %d", idx, i, moves[i].Index())
		}
	}
}

func TestApplyReturnsNewBoardWithoutMutation(t *testing.T) {
	board := parseBoard(t, "X........")
	next, err := board.Apply(Move{X: 1, Y: 1}, PlayerO)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if board.At(1, 1) != CellEmpty {
		t.Fatalf("original board mutated by Apply")
	}
	if next.At(1, 1) != CellO {
		t.Fatalf("expected O at (1,1) on derived board, got %v", next.At(1, 1))
	}

	again, err := board.Apply(Move{X: 1, Y: 1}, PlayerO)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if again != next {
		t.Fatalf("apply is not referentially pure: identical inputs gave different boards")
	}
}

func TestApplyOccupiedCell(t *testing.T) {
	board := parseBoard(t, "X........")
	if _, err := board.Apply(Move{X: 0, Y: 0}, PlayerO); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
}

func TestApplyOutOfBounds(t *testing.T) {
	board := Board{}
	cases := []Move{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 5, Y: 5}}
	for _, move := range cases {
		if _, err := board.Apply(move, PlayerX); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds for %v, got %v", move, err)
		}
	}
}

func TestApplyErrorLeavesBoardUnchanged(t *testing.T) {
	board := parseBoard(t, "X........")
	got, err := board.Apply(Move{X: 0, Y: 0}, PlayerO)
	if err == nil {
		t.Fatalf("expected error on occupied cell")
	}
	if got != board {
		t.Fatalf("failed apply should return the original board unchanged")
	}
}

func TestMoveIndexRoundTrip(t *testing.T) {
	for idx := 0; idx < boardSize*boardSize; idx++ {
		move := MoveFromIndex(idx)
		if !move.IsValid() {
			t.Fatalf("move from index %d should be valid", idx)
		}
		if move.Index() != idx {
			t.Fatalf("index round trip failed: %d -> (%d,%d) -> %d", idx, move.X, move.Y, move.Index())
		}
	}
}
