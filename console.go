package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// runConsole is the terminal front end: it owns all I/O, turn sequencing and
// score display, and only talks to the engine through the game controller.
func runConsole(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	scores := NewScoreboard()

	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "Tic-Tac-Toe vs AI")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	for {
		settings := DefaultGameSettings()
		settings.Difficulty = promptDifficulty(scanner, out)
		controller := NewGameController(settings)
		controller.StartGame(settings)

		fmt.Fprintf(out, "You are %s, AI is %s. Enter moves as row and column (0-2).\n", PlayerX, PlayerO)
		playConsoleGame(controller, scanner, out)

		state := controller.State()
		scores.Record(state.Status)
		snapshot := scores.Snapshot()
		fmt.Fprintf(out, "Score: you %d | AI %d | draws %d\n", snapshot.XWins, snapshot.OWins, snapshot.Draws)

		if !promptYesNo(scanner, out, "Play again? (y/n): ") {
			fmt.Fprintln(out, "Thanks for playing!")
			return
		}
	}
}

func playConsoleGame(controller *GameController, scanner *bufio.Scanner, out io.Writer) {
	renderBoard(out, controller.State().Board)
	for {
		state := controller.State()
		if state.Status != StatusRunning {
			printResult(out, state.Status)
			return
		}
		if state.ToMove == PlayerX {
			move, ok := promptMove(scanner, out)
			if !ok {
				fmt.Fprintln(out, "Input closed, leaving game.")
				return
			}
			if applied, reason := controller.ApplyHumanMove(move); !applied {
				fmt.Fprintf(out, "Invalid move: %s\n", reason)
				continue
			}
		} else {
			if !controller.Tick() {
				// AI found no move; the game must already be decided.
				continue
			}
			if entry, ok := controller.LatestHistoryEntry(); ok {
				fmt.Fprintf(out, "AI plays at (%d, %d)\n", entry.Move.Y, entry.Move.X)
			}
		}
		renderBoard(out, controller.State().Board)
	}
}

func renderBoard(out io.Writer, board Board) {
	fmt.Fprintln(out, "\n   0   1   2")
	for y := 0; y < boardSize; y++ {
		fmt.Fprintf(out, "%d  %s | %s | %s\n", y, board.At(0, y), board.At(1, y), board.At(2, y))
		if y < boardSize-1 {
			fmt.Fprintln(out, "  -----------")
		}
	}
	fmt.Fprintln(out)
}

func printResult(out io.Writer, status GameStatus) {
	switch status {
	case StatusXWon:
		fmt.Fprintln(out, "Congratulations, you won!")
	case StatusOWon:
		fmt.Fprintln(out, "AI wins! Better luck next time.")
	case StatusDraw:
		fmt.Fprintln(out, "It's a draw. Well played!")
	}
}

func promptDifficulty(scanner *bufio.Scanner, out io.Writer) string {
	for {
		fmt.Fprintln(out, "Difficulty: 1) hard (unbeatable)  2) medium  3) easy")
		fmt.Fprint(out, "Enter your choice (1-3): ")
		if !scanner.Scan() {
			return DifficultyHard
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "1", "":
			return DifficultyHard
		case "2":
			return DifficultyMedium
		case "3":
			return DifficultyEasy
		}
		fmt.Fprintln(out, "Please enter 1, 2 or 3.")
	}
}

func promptMove(scanner *bufio.Scanner, out io.Writer) (Move, bool) {
	for {
		row, ok := promptInt(scanner, out, "Enter row (0-2): ")
		if !ok {
			return Move{}, false
		}
		col, ok := promptInt(scanner, out, "Enter column (0-2): ")
		if !ok {
			return Move{}, false
		}
		move := Move{X: col, Y: row}
		if move.IsValid() {
			return move, true
		}
		fmt.Fprintln(out, "Out of bounds, use coordinates 0-2.")
	}
}

func promptInt(scanner *bufio.Scanner, out io.Writer, prompt string) (int, bool) {
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return 0, false
		}
		value, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			return value, true
		}
		fmt.Fprintln(out, "Please enter a valid number.")
	}
}

func promptYesNo(scanner *bufio.Scanner, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(scanner.Text())), "y")
}
