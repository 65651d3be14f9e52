package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roulette/internal/audio"
	"github.com/KirkDiggler/roulette/internal/common/clock"
	"github.com/KirkDiggler/roulette/internal/services/game"
)

// Handler runs games and browses records on a terminal
type Handler struct {
	gameService game.Service
	prompter    *Prompter
	presenter   *Presenter
	audio       audio.Player
	out         io.Writer
	logger      *zap.Logger
}

// Config holds the configuration for the terminal handler
type Config struct {
	GameService game.Service

	In  io.Reader
	Out io.Writer

	// Clock paces animations
	Clock clock.Clock

	// Optional
	Audio       audio.Player
	Logger      *zap.Logger
	FrameDelay  time.Duration
	ClearScreen bool
}

// PlayOptions describes the game to play
type PlayOptions struct {
	PlayerOneName   string
	PlayerTwoName   string
	Lives           int
	BulletsPerRound int
	Mode            game.Mode

	// Chooser replaces the prompt, e.g. with scripted targets
	Chooser game.TargetChooser
}

// New creates a new terminal handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	presenter, err := NewPresenter(&PresenterConfig{
		Out:         cfg.Out,
		Clock:       cfg.Clock,
		FrameDelay:  cfg.FrameDelay,
		ClearScreen: cfg.ClearScreen,
	})
	if err != nil {
		return nil, err
	}

	player := cfg.Audio
	if player == nil {
		player = audio.Nop{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		gameService: cfg.GameService,
		prompter:    NewPrompter(cfg.In, cfg.Out),
		presenter:   presenter,
		audio:       player,
		out:         cfg.Out,
		logger:      logger,
	}, nil
}

// Setup asks for whatever opts leaves blank: mode, names and bullets
func (h *Handler) Setup(opts *PlayOptions) (*PlayOptions, error) {
	result := PlayOptions{}
	if opts != nil {
		result = *opts
	}

	fmt.Fprintln(h.out, "\n🔫 ROULETTE 🔫")
	fmt.Fprintln(h.out)

	var err error
	if result.Mode == "" {
		if result.Mode, err = h.prompter.AskMode(); err != nil {
			return nil, err
		}
	}
	if result.PlayerOneName == "" {
		if result.PlayerOneName, err = h.prompter.AskName("Player 1", game.DefaultPlayerOneName); err != nil {
			return nil, err
		}
	}
	if result.PlayerTwoName == "" {
		if result.PlayerTwoName, err = h.prompter.AskName("Player 2", game.DefaultPlayerTwoName); err != nil {
			return nil, err
		}
	}
	if result.BulletsPerRound == 0 {
		if result.BulletsPerRound, err = h.prompter.AskBullets(game.DefaultBulletsPerRound); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// Play runs one game to completion
func (h *Handler) Play(ctx context.Context, opts *PlayOptions) (*game.PlayGameOutput, error) {
	if opts == nil {
		return nil, errors.New("options cannot be nil")
	}

	input := &game.PlayGameInput{
		PlayerOneName:   opts.PlayerOneName,
		PlayerTwoName:   opts.PlayerTwoName,
		Lives:           opts.Lives,
		BulletsPerRound: opts.BulletsPerRound,
		Mode:            opts.Mode,
		Chooser:         opts.Chooser,
	}

	if opts.Mode != game.ModeAutomatic {
		h.printBanner(opts)
		if err := h.prompter.WaitForEnter("\nPress ENTER to start..."); err != nil {
			return nil, err
		}

		input.Presenter = h.presenter
		input.Audio = h.audio
		if input.Chooser == nil {
			input.Chooser = h.prompter
		}
	}

	output, err := h.gameService.PlayGame(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	if opts.Mode == game.ModeAutomatic {
		for _, entry := range output.Entries {
			fmt.Fprintln(h.out, entry.String())
		}
	}

	if output.Winner != "" {
		fmt.Fprintf(h.out, "\n🎉 %s WINS! 🎉\n\n", output.Winner)
	} else {
		fmt.Fprint(h.out, "\n💀 No survivors! 💀\n\n")
	}

	if output.SaveError != nil {
		fmt.Fprintf(h.out, "Game record not saved: %v\n", output.SaveError)
	} else {
		fmt.Fprintf(h.out, "📝 Game record saved to: %s\n", output.RecordLocation)
	}

	return output, nil
}

// ShowHistory lists saved games, newest first
func (h *Handler) ShowHistory(ctx context.Context, limit int) error {
	output, err := h.gameService.ListRecords(ctx, &game.ListRecordsInput{Limit: limit})
	if err != nil {
		return err
	}

	if len(output.Records) == 0 {
		fmt.Fprintln(h.out, "No games recorded yet.")
		return nil
	}

	for _, rec := range output.Records {
		fmt.Fprintln(h.out, renderRecordLine(rec))
	}
	return nil
}

// ShowRecord prints one saved game in full
func (h *Handler) ShowRecord(ctx context.Context, recordID string) error {
	output, err := h.gameService.GetRecord(ctx, &game.GetRecordInput{RecordID: recordID})
	if err != nil {
		return err
	}

	fmt.Fprint(h.out, output.Record.Format())
	return nil
}

func (h *Handler) printBanner(opts *PlayOptions) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(h.out, "\n"+rule)
	fmt.Fprintln(h.out, "       🔫 ROULETTE 🔫")
	fmt.Fprintln(h.out, rule)

	one, two := opts.PlayerOneName, opts.PlayerTwoName
	if one == "" {
		one = game.DefaultPlayerOneName
	}
	if two == "" {
		two = game.DefaultPlayerTwoName
	}
	lives := opts.Lives
	if lives <= 0 {
		lives = game.DefaultLives
	}
	bullets := opts.BulletsPerRound
	if bullets == 0 {
		bullets = game.DefaultBulletsPerRound
	}

	fmt.Fprintf(h.out, "\n%s vs %s\n", one, two)
	fmt.Fprintf(h.out, "Lives: %d | Bullets per round: %d\n", lives, game.ClampBullets(bullets))
	fmt.Fprintln(h.out, "\n"+rule)
}
