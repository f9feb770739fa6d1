package game

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Amirzzd/Tic-Tac-Toe/internal/ai"
	"github.com/Amirzzd/Tic-Tac-Toe/internal/apperror"
	"github.com/Amirzzd/Tic-Tac-Toe/internal/board"
)

// MoveFunc is notified after any accepted move, human or computer.
type MoveFunc func(pos board.Position, mark string)

// GameOverFunc is notified once per game end. winner is nil on a draw.
type GameOverFunc func(winner *Player, draw bool)

// Controller sequences one human and one computer player over a single
// board. It validates and applies human moves, asks the engine for
// computer moves, and reports state changes through callbacks. After a
// human move the turn is handed to the computer without moving; the
// front end decides when to call MakeComputerMove (typically after a
// short delay so the reply doesn't feel instant).
type Controller struct {
	logger *slog.Logger

	gameID   string
	board    *board.Board
	human    *Player
	computer *Player
	current  *Player
	engine   *ai.Engine
	active   bool

	onMove     MoveFunc
	onGameOver GameOverFunc
}

func NewController(logger *slog.Logger) *Controller {
	return &Controller{
		logger: logger.With("component", "game"),
		board:  board.New(),
	}
}

// SetMoveCallback registers the function called after every accepted
// move.
func (that *Controller) SetMoveCallback(callback MoveFunc) {
	that.onMove = callback
}

// SetGameOverCallback registers the function called when a game ends.
func (that *Controller) SetGameOverCallback(callback GameOverFunc) {
	that.onGameOver = callback
}

// StartNewGame resets the board and starts a fresh game with the human
// playing humanMark. X always moves first, so if the human picked O the
// computer opens immediately.
func (that *Controller) StartNewGame(humanMark string) error {
	if humanMark != board.PlayerX && humanMark != board.PlayerO {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
	}

	computerMark := board.PlayerO
	if humanMark == board.PlayerO {
		computerMark = board.PlayerX
	}

	that.board.Reset()
	that.gameID = uuid.NewString()
	that.human = &Player{Mark: humanMark, Type: HumanPlayer}
	that.computer = &Player{Mark: computerMark, Type: ComputerPlayer}
	that.engine = ai.NewEngine(computerMark, humanMark)
	that.active = true

	if humanMark == board.PlayerX {
		that.current = that.human
	} else {
		that.current = that.computer
	}

	that.logger.Info("new game started", "game_id", that.gameID, "human_mark", humanMark)

	if that.current.IsComputer() {
		that.MakeComputerMove()
	}

	return nil
}

// MakeHumanMove validates and applies a human move at (row, col). On
// success the move callback fires, the game end is checked, and the
// turn passes to the computer.
func (that *Controller) MakeHumanMove(row, col int) error {
	if !that.active {
		return apperror.ErrGameNotActive
	}

	if that.current == nil || !that.current.IsHuman() {
		return apperror.ErrNotYourTurn
	}

	if _, ok := that.board.Cell(row, col); !ok {
		return fmt.Errorf("%w: cell (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if !that.board.IsValidMove(row, col) {
		return fmt.Errorf("%w: cell (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.board.Place(row, col, that.human.Mark)
	that.logger.Debug("human moved", "game_id", that.gameID, "row", row, "col", col)

	if that.onMove != nil {
		that.onMove(board.Position{Row: row, Col: col}, that.human.Mark)
	}

	if that.checkGameEnded() {
		return nil
	}

	that.current = that.computer

	return nil
}

// MakeComputerMove lets the engine move, if the game is active and it
// is the computer's turn. Everything else is a no-op so the front end
// may call it freely from its delayed reply timer.
func (that *Controller) MakeComputerMove() {
	if !that.active || that.current == nil || !that.current.IsComputer() {
		return
	}

	pos, ok := that.engine.SelectMove(that.board)
	if !ok {
		return
	}

	that.board.Place(pos.Row, pos.Col, that.computer.Mark)
	that.logger.Debug("computer moved", "game_id", that.gameID, "row", pos.Row, "col", pos.Col)

	if that.onMove != nil {
		that.onMove(pos, that.computer.Mark)
	}

	if that.checkGameEnded() {
		return
	}

	that.current = that.human
}

// checkGameEnded reports whether the current board is terminal, firing
// the game-over callback and deactivating the game when it is.
func (that *Controller) checkGameEnded() bool {
	if winner := that.board.Winner(); winner != board.EmptyCell {
		that.active = false

		winningPlayer := that.computer
		if winner == that.human.Mark {
			winningPlayer = that.human
		}

		that.logger.Info("game over", "game_id", that.gameID, "winner", winningPlayer.String())

		if that.onGameOver != nil {
			that.onGameOver(winningPlayer, false)
		}

		return true
	}

	if that.board.IsDraw() {
		that.active = false
		that.logger.Info("game over", "game_id", that.gameID, "winner", "draw")

		if that.onGameOver != nil {
			that.onGameOver(nil, true)
		}

		return true
	}

	return false
}

// IsActive reports whether a game is in progress.
func (that *Controller) IsActive() bool {
	return that.active
}

// IsComputerTurn reports whether the game is waiting on the computer.
func (that *Controller) IsComputerTurn() bool {
	return that.active && that.current != nil && that.current.IsComputer()
}

// CurrentPlayer returns whose turn it is, or nil outside a game.
func (that *Controller) CurrentPlayer() *Player {
	if !that.active {
		return nil
	}

	return that.current
}

// Cell exposes the board cell at (row, col) for rendering; ok is false
// out of bounds.
func (that *Controller) Cell(row, col int) (string, bool) {
	return that.board.Cell(row, col)
}

// Reset abandons any game in progress and clears the board.
func (that *Controller) Reset() {
	that.board.Reset()
	that.active = false
	that.current = nil
}
