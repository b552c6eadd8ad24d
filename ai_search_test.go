package main

import "testing"

func TestSearchBlocksImmediateThreat(t *testing.T) {
	// X threatens the top row at (2,0); O has no win of its own.
	board := parseBoard(t, "XX..O....")
	result := Search(board, PlayerO, SearchSettings{})
	if !result.HasMove {
		t.Fatalf("expected a move")
	}
	if want := (Move{X: 2, Y: 0}); !result.Move.Equals(want) {
		t.Fatalf("expected blocking move %v, got %v", want, result.Move)
	}
}

func TestSearchBlocksWithTwoMarksOnLine(t *testing.T) {
	// The classic scenario: X on cells 0 and 1, O to move must take cell 2.
	board := parseBoard(t, "XX.......")
	result := Search(board, PlayerO, SearchSettings{})
	if !result.HasMove {
		t.Fatalf("expected a move")
	}
	if want := (Move{X: 2, Y: 0}); !result.Move.Equals(want) {
		t.Fatalf("expected blocking move %v, got %v", want, result.Move)
	}
}

func TestSearchTakesWinOverBlock(t *testing.T) {
	// O can win on the middle row at (2,1) while X threatens the top row.
	// Winning immediately must beat blocking.
	board := parseBoard(t, "XX.OO.X..")
	result := Search(board, PlayerO, SearchSettings{})
	if !result.HasMove {
		t.Fatalf("expected a move")
	}
	if want := (Move{X: 2, Y: 1}); !result.Move.Equals(want) {
		t.Fatalf("expected winning move %v, got %v", want, result.Move)
	}
	if result.Value <= 0 {
		t.Fatalf("expected a winning value, got %d", result.Value)
	}
}

func TestSearchTieBreaksOnLowestIndex(t *testing.T) {
	// X wins immediately at index 6 (anti-diagonal) or index 8 (diagonal);
	// both score the same, so the lower index must be kept.
	board := parseBoard(t, "XOXOXO...")
	for i := 0; i < 10; i++ {
		result := Search(board, PlayerX, SearchSettings{})
		if !result.HasMove {
			t.Fatalf("expected a move")
		}
		if want := (Move{X: 0, Y: 2}); !result.Move.Equals(want) {
			t.Fatalf("run %d: expected lowest-index winning move %v, got %v", i, want, result.Move)
		}
	}
}

func TestSearchOnTerminalPositionReturnsNoMove(t *testing.T) {
	cases := []struct {
		cells string
		value int
	}{
		{"XXXOO....", winScore},  // already won
		{"XOXXOOOXX", 0},         // full board draw
	}
	for _, tc := range cases {
		result := Search(parseBoard(t, tc.cells), PlayerX, SearchSettings{})
		if result.HasMove {
			t.Fatalf("board %q: expected no move on terminal position, got %v", tc.cells, result.Move)
		}
		if result.Value != tc.value {
			t.Fatalf("board %q: expected value %d, got %d", tc.cells, tc.value, result.Value)
		}
	}
}

func TestPerfectPlayFromEmptyBoardDraws(t *testing.T) {
	board := Board{}
	toMove := PlayerX
	for EvaluateOutcome(board) == OutcomeInProgress {
		result := Search(board, toMove, SearchSettings{})
		if !result.HasMove {
			t.Fatalf("expected a move while in progress")
		}
		next, err := board.Apply(result.Move, toMove)
		if err != nil {
			t.Fatalf("optimal move %v rejected: %v", result.Move, err)
		}
		board = next
		toMove = otherPlayer(toMove)
	}
	if outcome := EvaluateOutcome(board); outcome != OutcomeDraw {
		t.Fatalf("expected perfect play to draw, got %v", outcome)
	}
}

// positionsWithinTwoPlies enumerates the empty board plus every position
// reachable in one or two legal moves, paired with the side to act.
func positionsWithinTwoPlies(t *testing.T) []struct {
	board  Board
	toMove PlayerColor
} {
	t.Helper()
	var out []struct {
		board  Board
		toMove PlayerColor
	}
	empty := Board{}
	out = append(out, struct {
		board  Board
		toMove PlayerColor
	}{empty, PlayerX})
	for _, first := range empty.LegalMoves() {
		afterX, err := empty.Apply(first, PlayerX)
		if err != nil {
			t.Fatalf("apply failed: %v", err)
		}
		out = append(out, struct {
			board  Board
			toMove PlayerColor
		}{afterX, PlayerO})
		for _, second := range afterX.LegalMoves() {
			afterO, err := afterX.Apply(second, PlayerO)
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			out = append(out, struct {
				board  Board
				toMove PlayerColor
			}{afterO, PlayerX})
		}
	}
	return out
}

func TestPruningNeverChangesResult(t *testing.T) {
	for _, pos := range positionsWithinTwoPlies(t) {
		pruned := Search(pos.board, pos.toMove, SearchSettings{})
		full := Search(pos.board, pos.toMove, SearchSettings{DisablePruning: true})
		if pruned.Value != full.Value {
			t.Fatalf("board %v: pruned value %d != full value %d", pos.board, pruned.Value, full.Value)
		}
		if pruned.HasMove != full.HasMove || !pruned.Move.Equals(full.Move) {
			t.Fatalf("board %v: pruned move %v (has=%v) != full move %v (has=%v)",
				pos.board, pruned.Move, pruned.HasMove, full.Move, full.HasMove)
		}
	}
}

func TestPruningReducesNodesVisited(t *testing.T) {
	prunedStats := &SearchStats{}
	fullStats := &SearchStats{}
	board := Board{}
	Search(board, PlayerX, SearchSettings{Stats: prunedStats})
	Search(board, PlayerX, SearchSettings{DisablePruning: true, Stats: fullStats})
	if prunedStats.Nodes >= fullStats.Nodes {
		t.Fatalf("expected pruning to visit fewer nodes: pruned=%d full=%d", prunedStats.Nodes, fullStats.Nodes)
	}
	if prunedStats.Cutoffs == 0 {
		t.Fatalf("expected at least one cutoff from the empty board")
	}
	if fullStats.Cutoffs != 0 {
		t.Fatalf("expected no cutoffs with pruning disabled, got %d", fullStats.Cutoffs)
	}
}

func TestDepthCutoffReturnsNeutralScore(t *testing.T) {
	board := parseBoard(t, "X........")
	result := Search(board, PlayerO, SearchSettings{MaxDepth: 1})
	if !result.HasMove {
		t.Fatalf("expected a move at the root even with a shallow bound")
	}
	if result.Value != 0 {
		t.Fatalf("expected neutral score at cutoff, got %d", result.Value)
	}
}
