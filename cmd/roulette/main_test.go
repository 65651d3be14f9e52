package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roulette/internal/config"
	gameService "github.com/KirkDiggler/roulette/internal/services/game"
)

func TestPlayOptions(t *testing.T) {
	opts, err := playOptions(&config.Config{
		Mode:          "auto",
		PlayerOneName: "Alice",
		Lives:         2,
		Bullets:       3,
		Targets:       []string{"self", "opponent"},
	})
	require.NoError(t, err)

	assert.Equal(t, gameService.ModeAutomatic, opts.Mode)
	assert.Equal(t, "Alice", opts.PlayerOneName)
	assert.Equal(t, 2, opts.Lives)
	assert.Equal(t, 3, opts.BulletsPerRound)
	require.NotNil(t, opts.Chooser)

	first, err := opts.Chooser.Choose(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, gameService.TargetSelf, first)
}

func TestPlayOptions_Invalid(t *testing.T) {
	_, err := playOptions(&config.Config{Mode: "spectate"})
	assert.ErrorIs(t, err, gameService.ErrInvalidMode)

	_, err = playOptions(&config.Config{Targets: []string{"self", "sky"}})
	assert.ErrorIs(t, err, gameService.ErrInvalidTarget)
}

func TestRun_AutomaticGameThenHistory(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	var out bytes.Buffer
	err := run(ctx, []string{
		"-auto",
		"-records", dir,
		"-p1", "Alice",
		"-p2", "Bob",
		"-lives", "1",
		"-bullets", "6",
		"-sound=false",
		"-seed", "3",
	}, strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "=== AUTOMATIC MODE ===")
	assert.Contains(t, out.String(), "WINS!")
	assert.Contains(t, out.String(), "Game record saved to: ")

	files, err := filepath.Glob(filepath.Join(dir, "game_record_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "ROULETTE - GAME RECORD")

	out.Reset()
	require.NoError(t, run(ctx, []string{"-history", "-records", dir}, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "rounds: 1")
}

func TestRun_BadFlag(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-store", "tape"}, strings.NewReader(""), &out)
	assert.Error(t, err)
}
