package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Amirzzd/Tic-Tac-Toe/internal/board"
	"github.com/Amirzzd/Tic-Tac-Toe/internal/config"
	"github.com/Amirzzd/Tic-Tac-Toe/internal/game"
)

const gridSize = 3

// UI is the desktop front end: a fixed-size window with a 3x3 button
// grid, a status line and a NEW GAME flow. It drives the controller on
// cell clicks and schedules the computer's reply after a short delay
// so the answer doesn't land in the same frame as the click.
type UI struct {
	logger     *slog.Logger
	conf       *config.Config
	controller *game.Controller

	app     fyne.App
	window  fyne.Window
	buttons [gridSize][gridSize]*widget.Button
	status  *widget.Label
}

func New(logger *slog.Logger, conf *config.Config, controller *game.Controller) *UI {
	that := &UI{
		logger:     logger.With("component", "ui"),
		conf:       conf,
		controller: controller,
		app:        app.NewWithID("com.amirzzd.tictactoe"),
	}

	that.app.Settings().SetTheme(newGameTheme(conf.Theme))

	that.controller.SetMoveCallback(that.onMoveMade)
	that.controller.SetGameOverCallback(that.onGameOver)

	return that
}

// Run builds the window and enters the toolkit main loop. It must be
// called on the main goroutine and blocks until the window closes.
func (that *UI) Run() {
	that.window = that.app.NewWindow(that.conf.Window.Title)
	that.window.Resize(fyne.NewSize(float32(that.conf.Window.Width), float32(that.conf.Window.Height)))
	that.window.SetFixedSize(true)
	that.window.CenterOnScreen()
	that.window.SetContent(that.buildLayout())

	that.promptNewGame()
	that.window.ShowAndRun()
}

func (that *UI) buildLayout() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("TIC-TAC-TOE", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Human vs AI", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	that.status = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	cells := make([]fyne.CanvasObject, 0, gridSize*gridSize)
	for row := range gridSize {
		for col := range gridSize {
			button := widget.NewButton("", that.cellClickHandler(row, col))
			that.buttons[row][col] = button
			cells = append(cells, button)
		}
	}

	newGame := widget.NewButton("NEW GAME", that.promptNewGame)

	return container.NewBorder(
		container.NewVBox(title, subtitle, that.status),
		container.NewVBox(widget.NewSeparator(), newGame),
		nil,
		nil,
		container.NewGridWithColumns(gridSize, cells...),
	)
}

func (that *UI) cellClickHandler(row, col int) func() {
	return func() {
		if err := that.controller.MakeHumanMove(row, col); err != nil {
			that.logger.Debug("move rejected", "row", row, "col", col, "error", err)
			return
		}

		that.scheduleComputerMove()
	}
}

// scheduleComputerMove queues the engine's reply on a timer, hopping
// back onto the toolkit thread to apply it.
func (that *UI) scheduleComputerMove() {
	if !that.controller.IsComputerTurn() {
		return
	}

	delay := time.Duration(that.conf.AI.MoveDelayMS) * time.Millisecond
	time.AfterFunc(delay, func() {
		fyne.Do(that.controller.MakeComputerMove)
	})
}

// onMoveMade renders an accepted move: the mark lands on its button,
// X through the primary color, O through the error color.
func (that *UI) onMoveMade(pos board.Position, mark string) {
	button := that.buttons[pos.Row][pos.Col]
	button.SetText(mark)
	if mark == board.PlayerX {
		button.Importance = widget.HighImportance
	} else {
		button.Importance = widget.DangerImportance
	}
	button.Disable()

	if !that.controller.IsActive() {
		return
	}

	if current := that.controller.CurrentPlayer(); current != nil && current.IsHuman() {
		that.status.SetText(fmt.Sprintf("Your Turn (%s)", current.Mark))
	} else {
		that.status.SetText("AI is thinking...")
	}
}

func (that *UI) onGameOver(winner *game.Player, draw bool) {
	var title, message string

	switch {
	case draw:
		that.status.SetText("DRAW!")
		title = "Draw!"
		message = "It's a draw!\nThe game ended in a tie.\n\nPlay again?"
	case winner.IsHuman():
		that.status.SetText("YOU WON!")
		title = "Victory!"
		message = fmt.Sprintf("Congratulations!\nYou won as %s!\n\nPlay again?", winner.Mark)
	default:
		that.status.SetText("AI WON!")
		title = "Defeat"
		message = fmt.Sprintf("AI won as %s.\nBetter luck next time!\n\nPlay again?", winner.Mark)
	}

	that.disableAllCells()

	// Let the final mark render before the popup covers it.
	time.AfterFunc(500*time.Millisecond, func() {
		fyne.Do(func() {
			dialog.ShowConfirm(title, message, func(playAgain bool) {
				if playAgain {
					that.promptNewGame()
					return
				}
				that.window.Close()
			}, that.window)
		})
	})
}

// promptNewGame asks which mark the human wants, then starts the game.
func (that *UI) promptNewGame() {
	content := widget.NewLabelWithStyle(
		"X always makes the first move",
		fyne.TextAlignCenter,
		fyne.TextStyle{},
	)

	dialog.ShowCustomConfirm("Choose Your Symbol", "Play as X", "Play as O", content,
		func(choseX bool) {
			mark := board.PlayerO
			if choseX {
				mark = board.PlayerX
			}
			that.startNewGame(mark)
		}, that.window)
}

func (that *UI) startNewGame(humanMark string) {
	that.resetBoardDisplay()

	if humanMark == board.PlayerX {
		that.status.SetText("Your Turn (X)")
	} else {
		that.status.SetText("AI goes first...")
	}

	// The controller makes the computer's opening move inline when the
	// human picked O; the move callback repaints as usual.
	if err := that.controller.StartNewGame(humanMark); err != nil {
		that.logger.Error("failed to start game", "error", err)
	}
}

func (that *UI) resetBoardDisplay() {
	for row := range gridSize {
		for col := range gridSize {
			button := that.buttons[row][col]
			button.SetText("")
			button.Importance = widget.MediumImportance
			button.Enable()
		}
	}
}

func (that *UI) disableAllCells() {
	for row := range gridSize {
		for col := range gridSize {
			that.buttons[row][col].Disable()
		}
	}
}
