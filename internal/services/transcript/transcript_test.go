package transcript

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	clockMocks "github.com/KirkDiggler/roulette/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/roulette/internal/common/uuid/mocks"
	"github.com/KirkDiggler/roulette/internal/models"
	recordRepo "github.com/KirkDiggler/roulette/internal/repositories/record"
	recordMocks "github.com/KirkDiggler/roulette/internal/repositories/record/mocks"
)

type TranscriptTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockRecordRepo *recordMocks.MockRepository
	logs           *observer.ObservedLogs
	transcript     *Transcript
	ctx            context.Context
	testTime       time.Time
}

func (s *TranscriptTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockRecordRepo = recordMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	core, logs := observer.New(zapcore.InfoLevel)
	s.logs = logs

	t, err := New(&Config{
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		RecordRepo:    s.mockRecordRepo,
		Logger:        zap.New(core),
	})
	s.Require().NoError(err)
	s.transcript = t
}

func (s *TranscriptTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTranscriptTestSuite(t *testing.T) {
	suite.Run(t, new(TranscriptTestSuite))
}

func (s *TranscriptTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDSource)
}

func (s *TranscriptTestSuite) TestEntriesInEmissionOrder() {
	s.transcript.Round(1)
	s.transcript.Action("Crupier loads 1 bullet(s)")
	s.transcript.Player("Alice", "takes the revolver")
	s.transcript.Danger("Alice points at Bob...")
	s.transcript.Result("*click* - Bob survives!")
	s.transcript.Warning("odd")
	s.transcript.Info("status")
	s.transcript.GameOver("Alice")

	entries := s.transcript.Entries()
	s.Require().Len(entries, 8)

	levels := []models.EntryLevel{}
	for _, e := range entries {
		levels = append(levels, e.Level)
		s.Equal(s.testTime, e.Time)
	}
	s.Equal([]models.EntryLevel{
		models.LevelRound,
		models.LevelAction,
		models.PlayerLevel("Alice"),
		models.LevelDanger,
		models.LevelResult,
		models.LevelWarning,
		models.LevelInfo,
		models.LevelGameOver,
	}, levels)
	s.Equal("========== Round 1 ==========", entries[0].Message)
	s.Equal("Winner: Alice", entries[7].Message)

	s.Equal(8, s.logs.Len())
	s.Equal(zapcore.WarnLevel, s.logs.All()[5].Level)
}

func (s *TranscriptTestSuite) TestGameOverWithoutWinner() {
	s.transcript.GameOver("")

	entries := s.transcript.Entries()
	s.Require().Len(entries, 1)
	s.Equal("No survivors!", entries[0].Message)
}

func (s *TranscriptTestSuite) TestEntriesIsACopy() {
	s.transcript.Info("one")
	entries := s.transcript.Entries()
	entries[0].Message = "changed"

	s.Equal("one", s.transcript.Entries()[0].Message)
}

func (s *TranscriptTestSuite) TestClear() {
	s.transcript.Round(3)
	s.transcript.Clear()

	s.Empty(s.transcript.Entries())
}

func (s *TranscriptTestSuite) TestSave() {
	s.transcript.Round(1)
	s.transcript.Round(2)
	s.transcript.GameOver("Bob")

	s.mockUUID.EXPECT().NewUUID().Return("record-id")
	s.mockRecordRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *recordRepo.SaveRecordInput) (*recordRepo.SaveRecordOutput, error) {
			s.Equal("record-id", input.Record.ID)
			s.Equal("Bob", input.Record.Winner)
			s.Equal(2, input.Record.Rounds)
			s.Equal(s.testTime, input.Record.CreatedAt)
			s.Len(input.Record.Entries, 3)
			return &recordRepo.SaveRecordOutput{Location: "records/record-id.txt"}, nil
		})

	rec, location, err := s.transcript.Save(s.ctx)
	s.Require().NoError(err)
	s.Equal("record-id", rec.ID)
	s.Equal("records/record-id.txt", location)
}

func (s *TranscriptTestSuite) TestSave_RepositoryError() {
	s.mockUUID.EXPECT().NewUUID().Return("record-id")
	s.mockRecordRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	_, _, err := s.transcript.Save(s.ctx)
	s.ErrorContains(err, "disk full")
}

func (s *TranscriptTestSuite) TestSave_NoRepository() {
	t, err := New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)

	_, _, err = t.Save(s.ctx)
	s.ErrorIs(err, ErrNoRepository)
}
