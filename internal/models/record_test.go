package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordFormat(t *testing.T) {
	at := time.Date(2025, 4, 19, 12, 30, 5, 0, time.UTC)
	record := &Record{
		ID:        "0f8e2c7a-1111-2222-3333-444455556666",
		CreatedAt: at,
		Entries: []*RecordEntry{
			{Time: at, Level: LevelRound, Message: "========== Round 1 =========="},
			{Time: at.Add(time.Second), Level: PlayerLevel("Alice"), Message: "takes the revolver"},
			{Time: at.Add(2 * time.Second), Level: LevelGameOver, Message: "Winner: Alice"},
		},
	}

	expected := "==================================================\n" +
		"  ROULETTE - GAME RECORD\n" +
		"  Date: 2025-04-19 12:30:05\n" +
		"  ID: 0f8e2c7a-1111-2222-3333-444455556666\n" +
		"==================================================\n\n" +
		"[12:30:05] ROUND: ========== Round 1 ==========\n" +
		"[12:30:06] [Alice]: takes the revolver\n" +
		"[12:30:07] GAME OVER: Winner: Alice\n" +
		"\n==================================================\n"

	assert.Equal(t, expected, record.Format())
	assert.Equal(t, "game_record_2025-04-19_12-30-05_0f8e2c7a.txt", record.FileName())
}
