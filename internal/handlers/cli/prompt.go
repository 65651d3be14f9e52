package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/roulette/internal/services/game"
)

// ErrNoInput is returned when input ends before a question was answered
var ErrNoInput = errors.New("no more input")

// Prompter asks questions on a terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// TriggerPause asks for ENTER before every pull
	TriggerPause bool

	lastRound int
}

// NewPrompter creates a prompter reading answers from in
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:           bufio.NewReader(in),
		out:          out,
		TriggerPause: true,
	}
}

var _ game.TargetChooser = (*Prompter)(nil)

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask prints question and returns the trimmed answer
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	return p.readLine()
}

// WaitForEnter prints message and blocks until a line is read
func (p *Prompter) WaitForEnter(message string) error {
	_, err := p.Ask(message)
	return err
}

// AskMode asks for interactive or automatic play. Interactive is the
// default.
func (p *Prompter) AskMode() (game.Mode, error) {
	fmt.Fprintln(p.out, "Select mode:")
	fmt.Fprintln(p.out, "  1. Interactive")
	fmt.Fprintln(p.out, "  2. Automatic")

	answer, err := p.Ask("\nChoose (1 or 2, default 1): ")
	if err != nil {
		return "", err
	}
	if answer == "2" {
		return game.ModeAutomatic, nil
	}
	return game.ModeInteractive, nil
}

// AskName asks for a player's name, falling back to fallback on a blank
// answer
func (p *Prompter) AskName(label, fallback string) (string, error) {
	answer, err := p.Ask(fmt.Sprintf("Enter %s name (or press ENTER for '%s'): ", label, fallback))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// AskBullets asks how many bullets go in each round. Anything that is
// not a number gives fallback; numbers are clamped to the drum.
func (p *Prompter) AskBullets(fallback int) (int, error) {
	answer, err := p.Ask(fmt.Sprintf("Bullets per round (%d-%d, default %d): ",
		game.MinBulletsPerRound, game.MaxBulletsPerRound, fallback))
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		return game.ClampBullets(fallback), nil
	}
	return game.ClampBullets(n), nil
}

// Choose implements game.TargetChooser by asking the shooter
func (p *Prompter) Choose(ctx context.Context, turn *game.TurnContext) (game.Target, error) {
	if p.lastRound != 0 && turn.Round != p.lastRound {
		fmt.Fprintf(p.out, "\n🔄 Drum was empty! Round %d is loaded.\n", turn.Round)
	}
	p.lastRound = turn.Round

	fmt.Fprintf(p.out, "\n%s's turn!\n", turn.Shooter)
	fmt.Fprintln(p.out, "  1. Shoot yourself")
	fmt.Fprintf(p.out, "  2. Shoot %s\n", turn.Opponent)

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		answer, err := p.Ask("\nChoose (1 or 2): ")
		if err != nil {
			return 0, err
		}

		var target game.Target
		switch answer {
		case "1":
			target = game.TargetSelf
		case "2":
			target = game.TargetOpponent
		default:
			fmt.Fprintln(p.out, "Invalid choice. Enter 1 or 2.")
			continue
		}

		if p.TriggerPause {
			if err := p.WaitForEnter("\nPress ENTER to pull the trigger..."); err != nil {
				return 0, err
			}
		}
		return target, nil
	}
}
