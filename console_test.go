package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"testing"
)

func scriptedScanner(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestPromptDifficultyChoices(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1\n", DifficultyHard},
		{"\n", DifficultyHard},
		{"2\n", DifficultyMedium},
		{"3\n", DifficultyEasy},
		{"x\n2\n", DifficultyMedium}, // retries until a valid choice
		{"", DifficultyHard},         // closed input defaults to hard
	}
	for _, tc := range cases {
		got := promptDifficulty(scriptedScanner(tc.input), io.Discard)
		if got != tc.want {
			t.Fatalf("input %q: expected %s, got %s", tc.input, tc.want, got)
		}
	}
}

func TestPromptMoveParsesRowThenColumn(t *testing.T) {
	move, ok := promptMove(scriptedScanner("1\n2\n"), io.Discard)
	if !ok {
		t.Fatalf("expected a move")
	}
	if want := (Move{X: 2, Y: 1}); !move.Equals(want) {
		t.Fatalf("expected %v, got %v", want, move)
	}
}

func TestPromptMoveRejectsOutOfBounds(t *testing.T) {
	// 5,5 is out of bounds; the prompt loops until 0,0.
	move, ok := promptMove(scriptedScanner("5\n5\n0\n0\n"), io.Discard)
	if !ok {
		t.Fatalf("expected a move")
	}
	if want := (Move{X: 0, Y: 0}); !move.Equals(want) {
		t.Fatalf("expected %v, got %v", want, move)
	}
}

func TestPromptMoveStopsOnClosedInput(t *testing.T) {
	if _, ok := promptMove(scriptedScanner(""), io.Discard); ok {
		t.Fatalf("expected promptMove to report closed input")
	}
}

func TestPromptIntRetriesOnGarbage(t *testing.T) {
	value, ok := promptInt(scriptedScanner("abc\n 7 \n"), io.Discard, "n: ")
	if !ok || value != 7 {
		t.Fatalf("expected 7, got %d (ok=%v)", value, ok)
	}
}

func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"n\n", false},
		{"whatever\n", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := promptYesNo(scriptedScanner(tc.input), io.Discard, "again? "); got != tc.want {
			t.Fatalf("input %q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	board := parseBoard(t, "XO..X...O")
	var buf strings.Builder
	renderBoard(&buf, board)
	want := "\n   0   1   2\n" +
		"0  X | O |  \n" +
		"  -----------\n" +
		"1    | X |  \n" +
		"  -----------\n" +
		"2    |   | O\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected board rendering:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestConsoleGamePlaysToCompletion(t *testing.T) {
	// Hard difficulty, then a game where the human concedes the center and
	// the AI cannot lose; the session ends after declining a rematch. The
	// exact sequence depends on AI replies, so feed every cell once and let
	// invalid attempts be re-prompted.
	var input strings.Builder
	input.WriteString("1\n")
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			input.WriteString(strconv.Itoa(y))
			input.WriteString("\n")
			input.WriteString(strconv.Itoa(x))
			input.WriteString("\n")
		}
	}
	input.WriteString("n\n")

	var out strings.Builder
	runConsole(strings.NewReader(input.String()), &out)
	if !strings.Contains(out.String(), "Score:") {
		t.Fatalf("expected a score line in console output:\n%s", out.String())
	}
}
