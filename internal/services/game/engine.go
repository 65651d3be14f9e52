package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roulette/internal/audio"
	"github.com/KirkDiggler/roulette/internal/revolver"
	"github.com/KirkDiggler/roulette/internal/services/messaging"
	"github.com/KirkDiggler/roulette/internal/table"
)

// Engine runs a two-player game one turn at a time. It is not safe for
// concurrent use.
type Engine struct {
	crupier  *table.Crupier
	players  [2]*table.Player
	maxLives [2]int
	bullets  int

	chooser    TargetChooser
	presenter  Presenter
	audio      audio.Player
	transcript Transcript
	messages   messaging.Service
	logger     *zap.Logger

	state   State
	current int
	round   int
	turns   int
	winner  string
}

// NewEngine seats two players at the crupier's table
func NewEngine(cfg *EngineConfig) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Crupier == nil {
		return nil, ErrNilCrupier
	}
	if cfg.PlayerOne == nil || cfg.PlayerTwo == nil {
		return nil, ErrNilPlayer
	}
	if cfg.PlayerOne == cfg.PlayerTwo {
		return nil, ErrSamePlayer
	}
	if !cfg.PlayerOne.SeatedAt(cfg.Crupier) || !cfg.PlayerTwo.SeatedAt(cfg.Crupier) {
		return nil, ErrPlayerNotSeated
	}
	if cfg.Chooser == nil {
		return nil, ErrNilChooser
	}

	bullets := cfg.BulletsPerRound
	if bullets == 0 {
		bullets = DefaultBulletsPerRound
	}

	e := &Engine{
		crupier:    cfg.Crupier,
		players:    [2]*table.Player{cfg.PlayerOne, cfg.PlayerTwo},
		maxLives:   [2]int{cfg.PlayerOne.Lives(), cfg.PlayerTwo.Lives()},
		bullets:    ClampBullets(bullets),
		chooser:    cfg.Chooser,
		presenter:  cfg.Presenter,
		audio:      cfg.Audio,
		transcript: cfg.Transcript,
		messages:   cfg.Messages,
		logger:     cfg.Logger,
		state:      StateAwaitingRoundSetup,
	}

	if e.presenter == nil {
		e.presenter = nopPresenter{}
	}
	if e.audio == nil {
		e.audio = audio.Nop{}
	}
	if e.transcript == nil {
		e.transcript = nopTranscript{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	// Players seated with no lives end the game before it starts.
	e.checkGameOver()

	return e, nil
}

// State returns the engine state
func (e *Engine) State() State {
	return e.state
}

// BulletsPerRound returns the clamped number of bullets loaded per round
func (e *Engine) BulletsPerRound() int {
	return e.bullets
}

// SetupRound has the crupier load and spin the drum for a new round
func (e *Engine) SetupRound(ctx context.Context) error {
	switch e.state {
	case StateGameOver:
		return ErrGameOver
	case StateInRound:
		return ErrRoundInProgress
	}
	if !e.crupier.HoldsRevolver() {
		return fmt.Errorf("%w: %w", ErrCrupierNotHolding, table.ErrNotHeld)
	}

	setup, err := e.crupier.PrepareRound(e.bullets)
	if err != nil {
		return fmt.Errorf("failed to prepare round: %w", err)
	}
	drum, err := e.crupier.Revolver()
	if err != nil {
		return err
	}

	e.round++
	e.state = StateInRound

	after := drum.Snapshot()
	before := after
	before.Active = ((after.Active-setup.Steps)%revolver.Chambers + revolver.Chambers) % revolver.Chambers

	e.transcript.Round(e.round)
	e.transcript.Action(fmt.Sprintf("Crupier loads %d bullet(s)", len(setup.Loaded)))
	e.audio.Play(audio.CueShellsDrop)
	e.presenter.RenderDrum(before)

	e.audio.Play(audio.CueSpin)
	e.presenter.RenderSpin(before, setup.Steps)
	e.transcript.Action("Crupier spins the drum")

	if e.messages != nil {
		out, err := e.messages.GetRoundMessage(ctx, &messaging.GetRoundMessageInput{
			Round:   e.round,
			Bullets: len(setup.Loaded),
		})
		if err != nil {
			e.logger.Debug("no round message", zap.Error(err))
		} else {
			e.transcript.Info(out.Message)
		}
	}

	e.logger.Debug("round set up",
		zap.Int("round", e.round),
		zap.Ints("loaded", setup.Loaded),
		zap.Int("steps", setup.Steps),
	)

	return nil
}

// PlayTurn has the current player fire at target. A dead current player
// is passed over without firing.
func (e *Engine) PlayTurn(ctx context.Context, target Target) (*TurnResult, error) {
	switch e.state {
	case StateGameOver:
		return nil, ErrGameOver
	case StateAwaitingRoundSetup:
		return nil, ErrRoundNotReady
	}

	shooter := e.players[e.current]
	opponent := e.players[1-e.current]

	if !shooter.IsAlive() {
		e.swap()
		return &TurnResult{
			Round:   e.round,
			Shooter: shooter.Name(),
			Skipped: true,
		}, nil
	}
	if !target.Valid() {
		return nil, ErrInvalidTarget
	}

	if err := e.crupier.GiveRevolverTo(shooter); err != nil {
		return nil, fmt.Errorf("failed to hand revolver to %s: %w", shooter.Name(), err)
	}
	e.transcript.Player(shooter.Name(), "takes the revolver")
	e.audio.Play(audio.CueCock)

	victim := opponent
	if target == TargetSelf {
		victim = shooter
		e.transcript.Danger(fmt.Sprintf("%s points at themselves...", shooter.Name()))
	} else {
		e.transcript.Danger(fmt.Sprintf("%s points at %s...", shooter.Name(), opponent.Name()))
	}

	drum, _ := shooter.HeldRevolver()
	before := drum.Snapshot()

	var shot revolver.Shot
	var err error
	if target == TargetSelf {
		shot, err = shooter.FireAtSelf()
	} else {
		shot, err = shooter.FireAtOpponent(opponent)
	}
	if err != nil {
		if rerr := shooter.ReturnRevolverToCrupier(e.crupier); rerr != nil {
			e.logger.Error("revolver not returned", zap.Error(rerr))
		}
		return nil, fmt.Errorf("failed to fire: %w", err)
	}

	e.presenter.RenderShot(before, drum.Snapshot(), shot)

	result := &TurnResult{
		Round:      e.round,
		Shooter:    shooter.Name(),
		Target:     target,
		TargetName: victim.Name(),
		Shot:       shot,
	}

	if shot.Fired {
		e.audio.Play(audio.CueGunshot)
		e.transcript.Result(fmt.Sprintf("BANG! %s loses a life!", victim.Name()))
		if !victim.IsAlive() {
			result.Eliminated = true
			e.transcript.Result(fmt.Sprintf("%s is eliminated!", victim.Name()))
		}
	} else {
		e.audio.Play(audio.CueDryFire)
		e.transcript.Result(fmt.Sprintf("*click* - %s survives!", victim.Name()))
	}
	result.Message = e.shotMessage(ctx, shooter, victim, result)

	if err := shooter.ReturnRevolverToCrupier(e.crupier); err != nil {
		return nil, fmt.Errorf("failed to return revolver: %w", err)
	}
	e.turns++

	e.logger.Debug("turn played",
		zap.Int("round", e.round),
		zap.String("shooter", shooter.Name()),
		zap.Stringer("target", target),
		zap.Int("position", shot.Position),
		zap.Stringer("chamber", shot.Chamber),
		zap.Bool("fired", shot.Fired),
	)

	if e.checkGameOver() {
		result.GameOver = true
		result.Winner = e.winner
		return result, nil
	}

	e.swap()

	drum, err = e.crupier.Revolver()
	if err != nil {
		return nil, err
	}
	if drum.Exhausted() {
		e.state = StateAwaitingRoundSetup
		result.RoundOver = true
		e.transcript.Info("Drum empty - new round")
	}

	return result, nil
}

// Step advances the game by one turn, setting up a round first when the
// drum has no live rounds left
func (e *Engine) Step(ctx context.Context) (*TurnResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.state == StateGameOver {
		return nil, ErrGameOver
	}
	if e.state == StateAwaitingRoundSetup {
		if err := e.SetupRound(ctx); err != nil {
			return nil, err
		}
	}

	shooter := e.players[e.current]
	if !shooter.IsAlive() {
		return e.PlayTurn(ctx, TargetSelf)
	}

	status := e.Status()
	e.presenter.RenderStatus(status)
	e.transcript.Info(e.livesLine())

	target, err := e.chooser.Choose(ctx, &TurnContext{
		Round:    e.round,
		Shooter:  shooter.Name(),
		Opponent: e.players[1-e.current].Name(),
		Status:   status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to choose target: %w", err)
	}

	return e.PlayTurn(ctx, target)
}

// Run steps the game until one player is left standing
func (e *Engine) Run(ctx context.Context) (*Outcome, error) {
	for e.state != StateGameOver {
		if _, err := e.Step(ctx); err != nil {
			return nil, err
		}
	}

	return &Outcome{
		Winner: e.winner,
		Rounds: e.round,
		Turns:  e.turns,
	}, nil
}

// Status returns a snapshot of the game
func (e *Engine) Status() *Status {
	status := &Status{
		Round:   e.round,
		Turns:   e.turns,
		State:   e.state,
		Current: e.players[e.current].Name(),
		Winner:  e.winner,
	}

	for i, p := range e.players {
		status.Players = append(status.Players, PlayerStatus{
			Name:     p.Name(),
			Lives:    p.Lives(),
			MaxLives: e.maxLives[i],
			Alive:    p.IsAlive(),
		})
	}

	if drum, err := e.crupier.Revolver(); err == nil {
		status.Drum = drum.Snapshot()
		status.HasDrum = true
	}

	return status
}

func (e *Engine) swap() {
	e.current = 1 - e.current
}

// checkGameOver moves the engine to StateGameOver once at most one player
// is alive
func (e *Engine) checkGameOver() bool {
	if e.state == StateGameOver {
		return true
	}

	var alive []*table.Player
	for _, p := range e.players {
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	if len(alive) > 1 {
		return false
	}

	e.state = StateGameOver
	if len(alive) == 1 {
		e.winner = alive[0].Name()
	}

	e.audio.Play(audio.CueHolster)
	e.transcript.GameOver(e.winner)

	if e.messages != nil {
		out, err := e.messages.GetGameOverMessage(context.Background(), &messaging.GetGameOverMessageInput{
			WinnerName: e.winner,
			Rounds:     e.round,
		})
		if err == nil {
			e.transcript.Info(out.Message)
		}
	}

	e.logger.Info("game over",
		zap.String("winner", e.winner),
		zap.Int("rounds", e.round),
		zap.Int("turns", e.turns),
	)

	return true
}

func (e *Engine) shotMessage(ctx context.Context, shooter, victim *table.Player, result *TurnResult) string {
	if e.messages == nil {
		return ""
	}

	out, err := e.messages.GetShotMessage(ctx, &messaging.GetShotMessageInput{
		ShooterName:   shooter.Name(),
		TargetName:    victim.Name(),
		SelfInflicted: shooter == victim,
		Fired:         result.Shot.Fired,
		SpentCasing:   result.Shot.Chamber == revolver.ChamberFired && !result.Shot.Fired,
		Eliminated:    result.Eliminated,
	})
	if err != nil {
		e.logger.Debug("no shot message", zap.Error(err))
		return ""
	}

	e.transcript.Info(out.Message)
	return out.Message
}

func (e *Engine) livesLine() string {
	p1, p2 := e.players[0], e.players[1]
	return fmt.Sprintf("%s: %d lives | %s: %d lives", p1.Name(), p1.Lives(), p2.Name(), p2.Lives())
}
