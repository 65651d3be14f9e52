package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roulette/internal/audio"
	"github.com/KirkDiggler/roulette/internal/common/clock"
	"github.com/KirkDiggler/roulette/internal/common/uuid"
	"github.com/KirkDiggler/roulette/internal/config"
	"github.com/KirkDiggler/roulette/internal/handlers/cli"
	"github.com/KirkDiggler/roulette/internal/logging"
	"github.com/KirkDiggler/roulette/internal/random"
	recordRepo "github.com/KirkDiggler/roulette/internal/repositories/record"
	gameService "github.com/KirkDiggler/roulette/internal/services/game"
	"github.com/KirkDiggler/roulette/internal/services/messaging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("roulette: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.ParseCLI(cfg, flag.NewFlagSet("roulette", flag.ContinueOnError), args); err != nil {
		return err
	}

	logger, err := logging.New(&logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	repo, closeRepo, err := openRecordRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	rnd := random.New(&random.Config{Seed: cfg.Seed})

	messages, err := messaging.NewService(&messaging.ServiceConfig{Random: rnd})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		RecordRepo:    repo,
		Random:        rnd,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Messages:      messages,
		Logger:        logger,
		SpinMin:       cfg.SpinMin,
		SpinMax:       cfg.SpinMax,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	var sound audio.Player = audio.NewLogger(logger)
	if cfg.Sound {
		sound = audio.Multi{sound, audio.NewBell(stdout)}
	}

	handler, err := cli.New(&cli.Config{
		GameService: gameSvc,
		In:          stdin,
		Out:         stdout,
		Clock:       &clock.DefaultClock{},
		Audio:       sound,
		Logger:      logger,
		FrameDelay:  cfg.FrameDelay,
		ClearScreen: cfg.ClearScreen,
	})
	if err != nil {
		return fmt.Errorf("failed to create terminal handler: %w", err)
	}

	switch {
	case cfg.Show != "":
		return handler.ShowRecord(ctx, cfg.Show)
	case cfg.History:
		return handler.ShowHistory(ctx, cfg.HistoryLimit)
	}

	opts, err := playOptions(cfg)
	if err != nil {
		return err
	}

	// A mode given up front means no questions; defaults fill the rest.
	if opts.Mode == "" {
		if opts, err = handler.Setup(opts); err != nil {
			return err
		}
	}

	_, err = handler.Play(ctx, opts)
	return err
}

func playOptions(cfg *config.Config) (*cli.PlayOptions, error) {
	mode, err := gameService.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	opts := &cli.PlayOptions{
		PlayerOneName:   cfg.PlayerOneName,
		PlayerTwoName:   cfg.PlayerTwoName,
		Lives:           cfg.Lives,
		BulletsPerRound: cfg.Bullets,
		Mode:            mode,
	}

	if len(cfg.Targets) > 0 {
		targets := make([]gameService.Target, 0, len(cfg.Targets))
		for _, s := range cfg.Targets {
			t, err := gameService.ParseTarget(s)
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
		}

		chooser, err := gameService.NewFixedChooser(targets...)
		if err != nil {
			return nil, err
		}
		opts.Chooser = chooser
	}

	return opts, nil
}

func openRecordRepo(ctx context.Context, cfg *config.Config) (recordRepo.Repository, func(), error) {
	switch cfg.RecordStore {
	case recordRepo.StoreRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := recordRepo.NewRedis(&recordRepo.RedisConfig{RedisClient: redisClient})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create record repository: %w", err)
		}
		return repo, func() { _ = redisClient.Close() }, nil

	case recordRepo.StoreSQLite:
		repo, err := recordRepo.NewSQLite(&recordRepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create record repository: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		repo, err := recordRepo.NewFile(&recordRepo.FileConfig{Dir: cfg.RecordDir})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create record repository: %w", err)
		}
		return repo, func() {}, nil
	}
}
