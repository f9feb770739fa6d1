package game

import "fmt"

type PlayerType string

const (
	HumanPlayer    PlayerType = "human"
	ComputerPlayer PlayerType = "computer"
)

// Player pairs a mark with who plays it.
type Player struct {
	Mark string
	Type PlayerType
}

func (that *Player) IsHuman() bool {
	return that.Type == HumanPlayer
}

func (that *Player) IsComputer() bool {
	return that.Type == ComputerPlayer
}

func (that *Player) String() string {
	return fmt.Sprintf("%s (%s)", that.Type, that.Mark)
}
