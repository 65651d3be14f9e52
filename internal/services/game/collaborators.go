package game

import (
	"github.com/KirkDiggler/roulette/internal/revolver"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_collaborators.go github.com/KirkDiggler/roulette/internal/services/game Presenter,Transcript,TargetChooser

// Presenter shows the table to whoever is watching. Calls never fail and
// never change game state.
type Presenter interface {
	// RenderStatus shows the standings before a turn
	RenderStatus(status *Status)

	// RenderDrum shows the drum as it is
	RenderDrum(drum revolver.Snapshot)

	// RenderSpin animates a free spin of steps positions starting at before
	RenderSpin(before revolver.Snapshot, steps int)

	// RenderShot animates a trigger pull from before to after
	RenderShot(before, after revolver.Snapshot, shot revolver.Shot)
}

// Transcript receives the ordered log of the game
type Transcript interface {
	Info(message string)
	Action(message string)
	Warning(message string)
	Danger(message string)
	Result(message string)
	Player(name, message string)
	Round(n int)
	GameOver(winner string)
}

type nopPresenter struct{}

func (nopPresenter) RenderStatus(*Status)                                           {}
func (nopPresenter) RenderDrum(revolver.Snapshot)                                   {}
func (nopPresenter) RenderSpin(revolver.Snapshot, int)                              {}
func (nopPresenter) RenderShot(revolver.Snapshot, revolver.Snapshot, revolver.Shot) {}

type nopTranscript struct{}

func (nopTranscript) Info(string)           {}
func (nopTranscript) Action(string)         {}
func (nopTranscript) Warning(string)        {}
func (nopTranscript) Danger(string)         {}
func (nopTranscript) Result(string)         {}
func (nopTranscript) Player(string, string) {}
func (nopTranscript) Round(int)             {}
func (nopTranscript) GameOver(string)       {}
