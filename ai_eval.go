package main

// winScore is the magnitude of a terminal win/loss before depth bias.
const winScore = 10

// evaluateBoard scores a terminal (or depth-cutoff) position from the
// perspective of player. Wins are discounted by the depth it took to reach
// them and losses are credited with it, so among equal outcomes the search
// prefers the fastest win and the slowest loss. Draws and cutoff positions
// score zero.
func evaluateBoard(board Board, depth int, player PlayerColor) int {
	if HasWon(board, player) {
		return winScore - depth
	}
	if HasWon(board, otherPlayer(player)) {
		return -winScore + depth
	}
	return 0
}
