package ai

import (
	"math"

	"github.com/Amirzzd/Tic-Tac-Toe/internal/board"
)

// winScore is tuned for the 3x3 board: a win is worth winScore minus the
// depth it was found at, so quick wins beat slow ones and slow losses
// beat quick ones.
const winScore = 10

// Engine selects moves for one mark by exhaustive minimax search with
// alpha-beta pruning. It is deterministic: equal moves are broken by
// the board's row-major enumeration order, and the search always runs
// to true terminal states.
type Engine struct {
	mark     string
	opponent string
}

// NewEngine returns an engine playing mark against opponent.
func NewEngine(mark, opponent string) *Engine {
	return &Engine{
		mark:     mark,
		opponent: opponent,
	}
}

// SelectMove returns the optimal move for the engine's mark on the
// given board. The second result is false when no empty cell remains.
// The board is never mutated; every hypothetical move is explored on a
// clone.
func (that *Engine) SelectMove(b *board.Board) (board.Position, bool) {
	positions := b.EmptyPositions()
	if len(positions) == 0 {
		return board.Position{}, false
	}

	// Opening shortcut: the center is an optimal first move, no need
	// to search the full tree for it.
	if len(positions) == 9 {
		return board.Position{Row: 1, Col: 1}, true
	}

	bestScore := math.MinInt
	bestMove := positions[0]

	for _, pos := range positions {
		simulated := b.Clone()
		simulated.Place(pos.Row, pos.Col, that.mark)

		score := that.minimax(simulated, 0, false, math.MinInt, math.MaxInt)

		// Strict comparison keeps the first move found in row-major
		// order when scores tie.
		if score > bestScore {
			bestScore = score
			bestMove = pos
		}
	}

	return bestMove, true
}

// minimax scores a board for the engine's mark. maximizing tells whose
// turn it is at this node: the engine's own mark maximizes, the
// opponent minimizes. alpha and beta bound the scores each side can
// already guarantee; once alpha >= beta the remaining children cannot
// change the result and are skipped.
func (that *Engine) minimax(b *board.Board, depth int, maximizing bool, alpha, beta int) int {
	switch b.Winner() {
	case that.mark:
		return winScore - depth
	case that.opponent:
		return depth - winScore
	}

	if b.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt

		for _, pos := range b.EmptyPositions() {
			simulated := b.Clone()
			simulated.Place(pos.Row, pos.Col, that.mark)

			score := that.minimax(simulated, depth+1, false, alpha, beta)

			best = max(best, score)
			alpha = max(alpha, score)
			if alpha >= beta {
				break
			}
		}

		return best
	}

	best := math.MaxInt

	for _, pos := range b.EmptyPositions() {
		simulated := b.Clone()
		simulated.Place(pos.Row, pos.Col, that.opponent)

		score := that.minimax(simulated, depth+1, true, alpha, beta)

		best = min(best, score)
		beta = min(beta, score)
		if alpha >= beta {
			break
		}
	}

	return best
}
