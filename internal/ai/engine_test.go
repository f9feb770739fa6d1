package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amirzzd/Tic-Tac-Toe/internal/board"
)

func TestEngine_SelectMove(t *testing.T) {
	t.Run("Returns no move on a full board", func(t *testing.T) {
		// Given: a drawn, completely full board
		b := boardFromRows(t, [3][3]string{
			{board.PlayerX, board.PlayerO, board.PlayerX},
			{board.PlayerO, board.PlayerX, board.PlayerO},
			{board.PlayerO, board.PlayerX, board.PlayerO},
		})
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: asking for a move
		_, ok := engine.SelectMove(b)

		// Then: there is nothing to choose
		assert.False(t, ok)
	})

	t.Run("Opens with the center on an empty board", func(t *testing.T) {
		// Given: an empty board
		b := board.New()
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: asking for the opening move
		pos, ok := engine.SelectMove(b)

		// Then: the engine takes the center
		require.True(t, ok)
		assert.Equal(t, board.Position{Row: 1, Col: 1}, pos)
	})

	t.Run("Takes an immediate win over any other move", func(t *testing.T) {
		// Given: X holds two cells of the top row with the third open,
		// and O also threatens a line
		b := boardFromRows(t, [3][3]string{
			{board.PlayerX, board.PlayerX, board.EmptyCell},
			{board.PlayerO, board.PlayerO, board.EmptyCell},
			{board.EmptyCell, board.EmptyCell, board.EmptyCell},
		})
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: asking for X's move
		pos, ok := engine.SelectMove(b)

		// Then: X completes its own row instead of blocking
		require.True(t, ok)
		assert.Equal(t, board.Position{Row: 0, Col: 2}, pos)
	})

	t.Run("Blocks the opponent's immediate win", func(t *testing.T) {
		// Given: X threatens the main diagonal and O has no win of its own
		b := boardFromRows(t, [3][3]string{
			{board.PlayerX, board.EmptyCell, board.EmptyCell},
			{board.EmptyCell, board.PlayerX, board.EmptyCell},
			{board.PlayerO, board.EmptyCell, board.EmptyCell},
		})
		engine := NewEngine(board.PlayerO, board.PlayerX)

		// When: asking for O's move
		pos, ok := engine.SelectMove(b)

		// Then: O must block at (2, 2)
		require.True(t, ok)
		assert.Equal(t, board.Position{Row: 2, Col: 2}, pos)
	})

	t.Run("Is deterministic for a given board", func(t *testing.T) {
		// Given: a mid-game board
		b := boardFromRows(t, [3][3]string{
			{board.PlayerX, board.EmptyCell, board.EmptyCell},
			{board.EmptyCell, board.PlayerO, board.EmptyCell},
			{board.EmptyCell, board.EmptyCell, board.EmptyCell},
		})
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: asking twice
		first, ok := engine.SelectMove(b)
		require.True(t, ok)
		second, ok := engine.SelectMove(b)
		require.True(t, ok)

		// Then: the answer never changes
		assert.Equal(t, first, second)

		// And: the board itself was never touched
		assert.Len(t, b.EmptyPositions(), 7)
	})

	t.Run("Never mutates the caller's board", func(t *testing.T) {
		// Given: a board with one mark
		b := board.New()
		b.Place(0, 0, board.PlayerX)
		engine := NewEngine(board.PlayerO, board.PlayerX)

		// When: running a full search
		_, ok := engine.SelectMove(b)
		require.True(t, ok)

		// Then: only the original mark is on the board
		assert.Len(t, b.EmptyPositions(), 8)
		mark, _ := b.Cell(0, 0)
		assert.Equal(t, board.PlayerX, mark)
	})
}

func TestEngine_SelfPlayAlwaysDraws(t *testing.T) {
	t.Run("Optimal play on both sides from an empty board is a draw", func(t *testing.T) {
		// Given: two engines, one per mark
		playerX := NewEngine(board.PlayerX, board.PlayerO)
		playerO := NewEngine(board.PlayerO, board.PlayerX)

		b := board.New()
		current, waiting := playerX, playerO
		marks := map[*Engine]string{playerX: board.PlayerX, playerO: board.PlayerO}

		// When: both sides play their engine moves until the game ends
		for b.Winner() == board.EmptyCell && !b.IsFull() {
			pos, ok := current.SelectMove(b)
			require.True(t, ok)

			b.Place(pos.Row, pos.Col, marks[current])
			current, waiting = waiting, current
		}

		// Then: the classic result, nobody wins
		assert.Equal(t, board.EmptyCell, b.Winner())
		assert.True(t, b.IsDraw())
	})
}

func TestEngine_Minimax(t *testing.T) {
	t.Run("Scores an already-won board without recursing", func(t *testing.T) {
		// Given: X has the top row
		b := boardFromRows(t, [3][3]string{
			{board.PlayerX, board.PlayerX, board.PlayerX},
			{board.EmptyCell, board.PlayerO, board.EmptyCell},
			{board.PlayerO, board.EmptyCell, board.PlayerO},
		})
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: scoring at depth zero
		score := engine.minimax(b, 0, false, -1000, 1000)

		// Then: a win at depth zero is worth the full win score
		assert.Equal(t, winScore, score)
	})

	t.Run("Prefers the quicker of two wins", func(t *testing.T) {
		// Given: the same winning line found at different depths
		b := boardFromRows(t, [3][3]string{
			{board.PlayerX, board.PlayerX, board.PlayerX},
			{board.EmptyCell, board.PlayerO, board.EmptyCell},
			{board.PlayerO, board.EmptyCell, board.PlayerO},
		})
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: scoring at increasing depths
		shallow := engine.minimax(b, 1, false, -1000, 1000)
		deep := engine.minimax(b, 3, false, -1000, 1000)

		// Then: the shallow win scores higher
		assert.Greater(t, shallow, deep)
	})

	t.Run("Scores an opponent win negatively", func(t *testing.T) {
		// Given: O has the left column and the engine plays X
		b := boardFromRows(t, [3][3]string{
			{board.PlayerO, board.PlayerX, board.EmptyCell},
			{board.PlayerO, board.PlayerX, board.EmptyCell},
			{board.PlayerO, board.EmptyCell, board.PlayerX},
		})
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: scoring at depth two
		score := engine.minimax(b, 2, true, -1000, 1000)

		// Then: the loss carries a negative score shrinking with depth
		assert.Equal(t, 2-winScore, score)
	})

	t.Run("Scores a drawn board as zero", func(t *testing.T) {
		// Given: a full board without a winner
		b := boardFromRows(t, [3][3]string{
			{board.PlayerX, board.PlayerO, board.PlayerX},
			{board.PlayerO, board.PlayerX, board.PlayerO},
			{board.PlayerO, board.PlayerX, board.PlayerO},
		})
		engine := NewEngine(board.PlayerX, board.PlayerO)

		// When: scoring
		score := engine.minimax(b, 4, true, -1000, 1000)

		// Then: a draw is neutral
		assert.Equal(t, 0, score)
	})
}

// boardFromRows builds a board from literal rows, bypassing turn order.
func boardFromRows(t *testing.T, rows [3][3]string) *board.Board {
	t.Helper()

	b := board.New()
	for row := range 3 {
		for col := range 3 {
			if rows[row][col] != board.EmptyCell {
				b.Place(row, col, rows[row][col])
			}
		}
	}

	return b
}
