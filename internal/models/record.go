package models

import (
	"fmt"
	"strings"
	"time"
)

// EntryLevel is the category of a transcript entry
type EntryLevel string

const (
	// LevelInfo is general game information
	LevelInfo EntryLevel = "INFO"

	// LevelAction is something the crupier or a player did
	LevelAction EntryLevel = "ACTION"

	// LevelWarning flags an unexpected but harmless condition
	LevelWarning EntryLevel = "WARNING"

	// LevelDanger marks the moment before a trigger pull
	LevelDanger EntryLevel = "DANGER"

	// LevelResult is the outcome of a trigger pull
	LevelResult EntryLevel = "RESULT"

	// LevelRound opens a new round
	LevelRound EntryLevel = "ROUND"

	// LevelGameOver closes the game
	LevelGameOver EntryLevel = "GAME OVER"
)

// PlayerLevel is the level used for entries attributed to a player
func PlayerLevel(name string) EntryLevel {
	return EntryLevel("[" + name + "]")
}

const (
	recordRule     = "=================================================="
	recordTitle    = "ROULETTE - GAME RECORD"
	recordTimeFmt  = "15:04:05"
	recordDateFmt  = "2006-01-02 15:04:05"
	recordFileTime = "2006-01-02_15-04-05"
)

// RecordEntry is one line of a game transcript
type RecordEntry struct {
	// Time is when the entry was recorded
	Time time.Time `json:"time"`

	// Level categorises the entry
	Level EntryLevel `json:"level"`

	// Message is the human readable text
	Message string `json:"message"`
}

// String formats the entry the way it appears in a saved record
func (e *RecordEntry) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Time.Format(recordTimeFmt), e.Level, e.Message)
}

// Record is the saved transcript of one game
type Record struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// Winner is the name of the last player standing, empty if nobody survived
	Winner string `json:"winner"`

	// Rounds is how many rounds the game lasted
	Rounds int `json:"rounds"`

	// CreatedAt is when the record was saved
	CreatedAt time.Time `json:"created_at"`

	// Entries are the transcript lines in emission order
	Entries []*RecordEntry `json:"entries"`
}

// FileName is the name a record is stored under on disk
func (r *Record) FileName() string {
	return fmt.Sprintf("game_record_%s_%s.txt", r.CreatedAt.Format(recordFileTime), shortID(r.ID))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Format renders the record as the flat text transcript
func (r *Record) Format() string {
	var b strings.Builder

	b.WriteString(recordRule + "\n")
	b.WriteString("  " + recordTitle + "\n")
	b.WriteString("  Date: " + r.CreatedAt.Format(recordDateFmt) + "\n")
	if r.ID != "" {
		b.WriteString("  ID: " + r.ID + "\n")
	}
	b.WriteString(recordRule + "\n\n")

	for _, entry := range r.Entries {
		b.WriteString(entry.String())
		b.WriteString("\n")
	}

	b.WriteString("\n" + recordRule + "\n")
	return b.String()
}
