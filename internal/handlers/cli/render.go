package cli

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/roulette/internal/models"
	"github.com/KirkDiggler/roulette/internal/revolver"
	"github.com/KirkDiggler/roulette/internal/services/game"
)

const (
	symbolEmpty = "○"
	symbolLive  = "●"
	symbolFired = "@"

	heartFull  = "❤️ "
	heartEmpty = "🖤 "

	clearScreen = "\033[H\033[2J"
)

func chamberSymbol(c revolver.Chamber) string {
	switch c {
	case revolver.ChamberLive:
		return symbolLive
	case revolver.ChamberFired:
		return symbolFired
	default:
		return symbolEmpty
	}
}

// cell draws one chamber, with the chamber under the hammer in
// parentheses
func cell(s revolver.Snapshot, pos int) string {
	sym := chamberSymbol(s.Chambers[pos])
	if pos == s.Active {
		return "(" + sym + ")"
	}
	return "[" + sym + "]"
}

// renderDrum draws the drum with chamber 5 at the top, going clockwise
// from chamber 0 on the upper right
func renderDrum(s revolver.Snapshot) string {
	var b strings.Builder
	b.WriteString("   _________\n")
	b.WriteString("  /         \\\n")
	fmt.Fprintf(&b, " /    %s    \\\n", cell(s, 5))
	fmt.Fprintf(&b, " | %s   %s |\n", cell(s, 4), cell(s, 0))
	fmt.Fprintf(&b, " | %s   %s |\n", cell(s, 3), cell(s, 1))
	fmt.Fprintf(&b, " \\    %s    /\n", cell(s, 2))
	b.WriteString("  \\_________/\n")
	return b.String()
}

const revolverArt = `          ^
         | |
       @#####@
     (###   ###)-.
   .(###     ###) \
  /  (###   ###)   )
 (=-  .@#####@|_--"
 /\    \_|l|_/ (\
(=-\     |l|    /
 \  \.___|l|___/
 /\      |_|   /
(=-\._________/\
 \             /
   \._________/
     #  ----  #
     #   __   #
     \########/
`

func hearts(lives, max int) string {
	if lives < 0 {
		lives = 0
	}
	if max < lives {
		max = lives
	}
	return strings.Repeat(heartFull, lives) + strings.Repeat(heartEmpty, max-lives)
}

func renderStatus(status *game.Status) string {
	rule := strings.Repeat("=", 40)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	if status.Round > 0 {
		fmt.Fprintf(&b, "  Round %d\n", status.Round)
	}
	for _, p := range status.Players {
		fmt.Fprintf(&b, "  %s: %s\n", p.Name, hearts(p.Lives, p.MaxLives))
	}
	b.WriteString(rule + "\n")
	return b.String()
}

func renderShotResult(shot revolver.Shot) string {
	switch {
	case shot.Fired:
		return "BANG!"
	case shot.Chamber == revolver.ChamberFired:
		return "*click* (already fired)"
	default:
		return "*click* (empty)"
	}
}

func renderRecordLine(rec *models.Record) string {
	winner := rec.Winner
	if winner == "" {
		winner = "no survivors"
	}
	return fmt.Sprintf("%s  %s  winner: %s  rounds: %d",
		rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.ID, winner, rec.Rounds)
}
