package application

import (
	"log/slog"

	"github.com/Amirzzd/Tic-Tac-Toe/internal/config"
	"github.com/Amirzzd/Tic-Tac-Toe/internal/game"
	"github.com/Amirzzd/Tic-Tac-Toe/internal/ui"
)

// RunApp - wires the controller and the window and runs the game. It
// blocks inside the toolkit main loop, so it must stay on the main
// goroutine, and returns when the window closes.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	controller := game.NewController(logger)
	window := ui.New(logger, conf, controller)

	log.Info("starting game window", "title", conf.Window.Title)
	window.Run()
	log.Info("game window closed")

	return nil
}
