package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/roulette/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/roulette/internal/common/uuid/mocks"
	"github.com/KirkDiggler/roulette/internal/models"
	"github.com/KirkDiggler/roulette/internal/random"
	recordRepo "github.com/KirkDiggler/roulette/internal/repositories/record"
	recordMocks "github.com/KirkDiggler/roulette/internal/repositories/record/mocks"
	"github.com/KirkDiggler/roulette/internal/services/messaging"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRecordRepo *recordMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	random         *random.Rand
	gameService    Service
	ctx            context.Context

	// Test data
	testTime     time.Time
	testRecordID string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRecordRepo = recordMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.random = random.New(&random.Config{Seed: 7})
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testRecordID = "test-record-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	var err error
	s.gameService, err = New(&Config{
		RecordRepo:    s.mockRecordRepo,
		Random:        s.random,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) TestNew_Validates() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Random: s.random, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilRecordRepo)

	_, err = New(&Config{RecordRepo: s.mockRecordRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilRandom)

	_, err = New(&Config{RecordRepo: s.mockRecordRepo, Random: s.random, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{RecordRepo: s.mockRecordRepo, Random: s.random, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *GameServiceTestSuite) TestPlayGame_Automatic() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)

	var saved *models.Record
	s.mockRecordRepo.EXPECT().
		SaveRecord(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *recordRepo.SaveRecordInput) (*recordRepo.SaveRecordOutput, error) {
			saved = input.Record
			return &recordRepo.SaveRecordOutput{Location: "records/game.txt"}, nil
		})

	output, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{
		PlayerOneName:   "Alice",
		PlayerTwoName:   "Bob",
		Lives:           1,
		BulletsPerRound: 6,
		Mode:            ModeAutomatic,
	})
	s.Require().NoError(err)

	s.Contains([]string{"Alice", "Bob"}, output.Winner)
	s.Equal(1, output.Rounds)
	s.Equal(1, output.Turns)
	s.Equal(s.testRecordID, output.RecordID)
	s.Equal("records/game.txt", output.RecordLocation)
	s.NoError(output.SaveError)

	s.Require().NotNil(saved)
	s.Equal(s.testRecordID, saved.ID)
	s.Equal(output.Winner, saved.Winner)
	s.Equal(1, saved.Rounds)
	s.Equal(s.testTime, saved.CreatedAt)
	s.Require().NotEmpty(saved.Entries)
	s.Equal("=== AUTOMATIC MODE ===", saved.Entries[0].Message)
	s.Equal("Alice vs Bob", saved.Entries[1].Message)
	s.Equal("Lives: 1 | Bullets: 6", saved.Entries[2].Message)

	last := saved.Entries[len(saved.Entries)-1]
	s.Equal(models.LevelGameOver, last.Level)
	s.Equal("Winner: "+output.Winner, last.Message)

	s.Equal("Game record saved to: records/game.txt", output.Entries[len(output.Entries)-1].Message)
}

func (s *GameServiceTestSuite) TestPlayGame_DefaultsAndScriptedTargets() {
	chooser, err := NewFixedChooser(TargetOpponent)
	s.Require().NoError(err)

	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
	s.mockRecordRepo.EXPECT().SaveRecord(s.ctx, gomock.Any()).Return(&recordRepo.SaveRecordOutput{Location: "loc"}, nil)

	// A full drum fires on every pull, so each shooter hits the other
	// until Player 2 has taken three hits.
	output, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{
		PlayerOneName:   "  ",
		BulletsPerRound: 99,
		Chooser:         chooser,
	})
	s.Require().NoError(err)

	s.Equal(DefaultPlayerOneName, output.Winner)
	s.Equal(1, output.Rounds)
	s.Equal(5, output.Turns)
	s.Equal("Player 1 vs Player 2", output.Entries[0].Message)
	s.Equal("Lives: 3 | Bullets: 6", output.Entries[1].Message)
}

func (s *GameServiceTestSuite) TestPlayGame_SaveFailureKeepsResult() {
	saveErr := errors.New("disk full")
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
	s.mockRecordRepo.EXPECT().SaveRecord(s.ctx, gomock.Any()).Return(nil, saveErr)

	output, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{
		Lives:           1,
		BulletsPerRound: 6,
		Mode:            ModeAutomatic,
	})
	s.Require().NoError(err)

	s.NotEmpty(output.Winner)
	s.ErrorIs(output.SaveError, saveErr)
	s.Empty(output.RecordID)
	s.Empty(output.RecordLocation)
}

func (s *GameServiceTestSuite) TestPlayGame_InteractiveNeedsChooser() {
	_, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{Mode: ModeInteractive})
	s.ErrorIs(err, ErrNilChooser)

	_, err = s.gameService.PlayGame(s.ctx, nil)
	s.Error(err)
}

func (s *GameServiceTestSuite) TestPlayGame_WithMessages() {
	messages, err := messaging.NewService(&messaging.ServiceConfig{Random: s.random})
	s.Require().NoError(err)

	svc, err := New(&Config{
		RecordRepo:    s.mockRecordRepo,
		Random:        s.random,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Messages:      messages,
	})
	s.Require().NoError(err)

	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
	s.mockRecordRepo.EXPECT().SaveRecord(s.ctx, gomock.Any()).Return(&recordRepo.SaveRecordOutput{Location: "loc"}, nil)

	chooser, err := NewFixedChooser(TargetSelf)
	s.Require().NoError(err)

	output, err := svc.PlayGame(s.ctx, &PlayGameInput{
		PlayerOneName:   "Alice",
		PlayerTwoName:   "Bob",
		Lives:           1,
		BulletsPerRound: 6,
		Chooser:         chooser,
	})
	s.Require().NoError(err)
	s.Equal("Bob", output.Winner)

	// round, shot and game over commentary all land in the transcript
	var afterSpin, afterShot, afterGameOver bool
	for i, entry := range output.Entries[:len(output.Entries)-1] {
		next := output.Entries[i+1]
		switch entry.Message {
		case "Crupier spins the drum":
			afterSpin = next.Level == models.LevelInfo
		case "Alice is eliminated!":
			afterShot = next.Level == models.LevelInfo
		case "Winner: Bob":
			afterGameOver = next.Level == models.LevelInfo && next.Message != "Game record saved to: loc"
		}
	}
	s.True(afterSpin)
	s.True(afterShot)
	s.True(afterGameOver)
}

func (s *GameServiceTestSuite) TestGetRecord() {
	rec := &models.Record{ID: s.testRecordID, Winner: "Alice"}
	s.mockRecordRepo.EXPECT().
		GetRecord(s.ctx, &recordRepo.GetRecordInput{RecordID: s.testRecordID}).
		Return(rec, nil)

	output, err := s.gameService.GetRecord(s.ctx, &GetRecordInput{RecordID: s.testRecordID})
	s.Require().NoError(err)
	s.Same(rec, output.Record)
}

func (s *GameServiceTestSuite) TestGetRecord_NotFound() {
	s.mockRecordRepo.EXPECT().
		GetRecord(s.ctx, gomock.Any()).
		Return(nil, recordRepo.ErrRecordNotFound)

	_, err := s.gameService.GetRecord(s.ctx, &GetRecordInput{RecordID: "missing"})
	s.ErrorIs(err, ErrRecordNotFound)

	_, err = s.gameService.GetRecord(s.ctx, &GetRecordInput{})
	s.Error(err)
}

func (s *GameServiceTestSuite) TestListRecords() {
	records := []*models.Record{{ID: "b"}, {ID: "a"}}
	s.mockRecordRepo.EXPECT().
		ListRecords(s.ctx, &recordRepo.ListRecordsInput{Limit: 2}).
		Return(&recordRepo.ListRecordsOutput{Records: records}, nil)

	output, err := s.gameService.ListRecords(s.ctx, &ListRecordsInput{Limit: 2})
	s.Require().NoError(err)
	s.Equal(records, output.Records)

	_, err = s.gameService.ListRecords(s.ctx, &ListRecordsInput{Limit: -1})
	s.Error(err)
}
