// Package states implements the application flow on top of the fsm runtime:
// title screen, main menu, controls screen, the game itself and quit.
package states

// State names of the top-level machine.
const (
	Title    = "TITLE"
	Select   = "SELECT"
	Controls = "CONTROLS"
	Game     = "GAME"
	Quit     = "QUIT"
)

// State names of the menu machine nested in SELECT.
const (
	Options     = "OPTIONS"
	PlayCmd     = "PLAY"
	ControlsCmd = "CONTROLS"
	QuitCmd     = "QUIT"
)

// Payload keys handed between states.
const (
	KeyLastScore = "last_score"
	KeyBestScore = "best_score"
)
