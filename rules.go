package main

type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

// winningLines are the 8 three-in-a-row lines of the board: 3 rows,
// 3 columns, 2 diagonals, as row-major cell indices.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// EvaluateOutcome checks all winning lines, then board fullness. It returns
// OutcomeInProgress only when no line is complete and an empty cell remains.
func EvaluateOutcome(board Board) Outcome {
	for _, line := range winningLines {
		cell := board[line[0]]
		if cell != CellEmpty && board[line[1]] == cell && board[line[2]] == cell {
			if cell == CellX {
				return OutcomeXWins
			}
			return OutcomeOWins
		}
	}
	if board.CountEmpty() == 0 {
		return OutcomeDraw
	}
	return OutcomeInProgress
}

// HasWon reports whether player completed any line.
func HasWon(board Board, player PlayerColor) bool {
	target := CellFromPlayer(player)
	for _, line := range winningLines {
		if board[line[0]] == target && board[line[1]] == target && board[line[2]] == target {
			return true
		}
	}
	return false
}

// FindWinningLine returns the cells of the first completed line, for the
// front end to highlight.
func FindWinningLine(board Board) ([]Move, bool) {
	for _, line := range winningLines {
		cell := board[line[0]]
		if cell != CellEmpty && board[line[1]] == cell && board[line[2]] == cell {
			return []Move{MoveFromIndex(line[0]), MoveFromIndex(line[1]), MoveFromIndex(line[2])}, true
		}
	}
	return nil, false
}

func (o Outcome) Terminal() bool {
	return o != OutcomeInProgress
}

func (o Outcome) String() string {
	switch o {
	case OutcomeXWins:
		return "x_wins"
	case OutcomeOWins:
		return "o_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "in_progress"
	}
}
