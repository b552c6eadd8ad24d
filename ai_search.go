package main

import (
	"log"
	"math"
	"time"
)

type SearchStats struct {
	Nodes   int64
	Cutoffs int64
	Start   time.Time
	Elapsed time.Duration
}

type SearchSettings struct {
	// MaxDepth bounds the tree walk; <= 0 searches to terminal positions,
	// which is always feasible on a 3x3 board.
	MaxDepth int
	// DisablePruning forces a full-tree walk. Pruning never changes the
	// result, only the node count, so this exists for verification.
	DisablePruning bool
	Stats          *SearchStats
}

type SearchResult struct {
	Move    Move
	HasMove bool
	Value   int
}

// searchContext carries the immutable per-search inputs through the
// recursion. The maximizing side stays fixed for the whole search.
type searchContext struct {
	player   PlayerColor
	settings SearchSettings
}

// Search returns the game-theoretically optimal move for player and its
// minimax value. HasMove is false when the position is already terminal.
func Search(board Board, player PlayerColor, settings SearchSettings) SearchResult {
	if settings.Stats != nil && settings.Stats.Start.IsZero() {
		settings.Stats.Start = time.Now()
	}
	ctx := searchContext{player: player, settings: settings}
	move, hasMove, value := minimax(board, ctx, 0, true, math.MinInt, math.MaxInt)
	if settings.Stats != nil {
		settings.Stats.Elapsed = time.Since(settings.Stats.Start)
	}
	return SearchResult{Move: move, HasMove: hasMove, Value: value}
}

// minimax recursively explores the positions reachable from board. At a
// maximizing node it plays ctx.player's mark, at a minimizing node the
// opponent's. Children are visited in ascending cell-index order and ties
// keep the first move found, so results are reproducible.
func minimax(board Board, ctx searchContext, depth int, maximizing bool, alpha, beta int) (Move, bool, int) {
	if EvaluateOutcome(board).Terminal() {
		return Move{}, false, evaluateBoard(board, depth, ctx.player)
	}
	if ctx.settings.MaxDepth > 0 && depth >= ctx.settings.MaxDepth {
		return Move{}, false, evaluateBoard(board, depth, ctx.player)
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Move{}, false, evaluateBoard(board, depth, ctx.player)
	}
	if ctx.settings.Stats != nil {
		ctx.settings.Stats.Nodes++
	}

	mover := ctx.player
	if !maximizing {
		mover = otherPlayer(ctx.player)
	}

	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}
	bestMove := Move{}
	found := false
	for _, move := range moves {
		next, err := board.Apply(move, mover)
		if err != nil {
			continue
		}
		_, _, value := minimax(next, ctx, depth+1, !maximizing, alpha, beta)
		if maximizing {
			if !found || value > best {
				best = value
				bestMove = move
				found = true
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if !found || value < best {
				best = value
				bestMove = move
				found = true
			}
			if value < beta {
				beta = value
			}
		}
		if !ctx.settings.DisablePruning && alpha >= beta {
			if ctx.settings.Stats != nil {
				ctx.settings.Stats.Cutoffs++
			}
			break
		}
	}
	return bestMove, found, best
}

func logSearchStats(tag string, stats *SearchStats, result SearchResult) {
	if stats == nil {
		return
	}
	elapsed := stats.Elapsed
	if elapsed == 0 && !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	}
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	log.Printf("[ai:%s] t=%dus nodes=%d cutoffs=%d nps=%.0f value=%d move=(%d,%d)",
		tag,
		elapsed.Microseconds(),
		stats.Nodes,
		stats.Cutoffs,
		nps,
		result.Value,
		result.Move.X,
		result.Move.Y,
	)
}
