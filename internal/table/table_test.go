package table

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roulette/internal/random"
	"github.com/KirkDiggler/roulette/internal/revolver"
)

type TableTestSuite struct {
	suite.Suite
	revolver *revolver.Revolver
	crupier  *Crupier
	alice    *Player
	bob      *Player
}

func (s *TableTestSuite) SetupTest() {
	r, err := revolver.New(&revolver.Config{
		Random: random.New(&random.Config{Seed: 5}),
	})
	s.Require().NoError(err)
	s.revolver = r

	s.crupier, err = NewCrupier(r)
	s.Require().NoError(err)

	s.alice, err = NewPlayer("Alice", 3, s.crupier.Custody())
	s.Require().NoError(err)
	s.bob, err = NewPlayer("Bob", 3, s.crupier.Custody())
	s.Require().NoError(err)
}

func TestTableTestSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

// assertSingleHolder checks that exactly one party holds the revolver
func (s *TableTestSuite) assertSingleHolder(expected Holder) {
	holders := 0
	for _, h := range []Holder{s.crupier, s.alice, s.bob} {
		if s.crupier.Custody().Holds(h) {
			holders++
			s.Same(expected, h)
		}
	}
	s.Equal(1, holders)
}

func (s *TableTestSuite) TestConstructors_Validate() {
	_, err := NewCrupier(nil)
	s.ErrorIs(err, ErrNilRevolver)

	_, err = NewPlayer("Nobody", 1, nil)
	s.ErrorIs(err, ErrNilCustody)
}

func (s *TableTestSuite) TestCrupierHoldsFromStart() {
	s.True(s.crupier.HoldsRevolver())
	s.assertSingleHolder(s.crupier)

	_, held := s.alice.HeldRevolver()
	s.False(held)
}

func (s *TableTestSuite) TestHandOff_ExclusiveAtEveryStep() {
	s.Require().NoError(s.crupier.GiveRevolverTo(s.alice))
	s.assertSingleHolder(s.alice)
	s.False(s.crupier.HoldsRevolver())

	r, held := s.alice.HeldRevolver()
	s.True(held)
	s.Same(s.revolver, r)

	s.Require().NoError(s.alice.ReturnRevolverToCrupier(s.crupier))
	s.assertSingleHolder(s.crupier)

	s.Require().NoError(s.crupier.GiveRevolverTo(s.bob))
	s.assertSingleHolder(s.bob)

	s.Require().NoError(s.crupier.TakeRevolverFrom(s.bob))
	s.assertSingleHolder(s.crupier)
}

func (s *TableTestSuite) TestHandOff_FromNonHolder() {
	s.Require().NoError(s.crupier.GiveRevolverTo(s.alice))

	s.ErrorIs(s.crupier.GiveRevolverTo(s.bob), ErrNotHeld)
	s.ErrorIs(s.crupier.TakeRevolverFrom(s.bob), ErrNotHeld)
	s.ErrorIs(s.bob.ReturnRevolverToCrupier(s.crupier), ErrNotHeld)
	s.assertSingleHolder(s.alice)

	s.ErrorIs(s.crupier.Custody().Transfer(s.alice, nil), ErrNilHolder)
	s.assertSingleHolder(s.alice)
}

func (s *TableTestSuite) TestCrupierNeedsCustody() {
	s.Require().NoError(s.crupier.GiveRevolverTo(s.alice))

	_, err := s.crupier.Revolver()
	s.ErrorIs(err, ErrNotHeld)
	s.ErrorIs(s.crupier.DumpAndLoadSingleBullet(), ErrNotHeld)
	_, err = s.crupier.DumpAndLoadBulletsRandomly(2)
	s.ErrorIs(err, ErrNotHeld)
	_, err = s.crupier.PrepareRound(2)
	s.ErrorIs(err, ErrNotHeld)
}

func (s *TableTestSuite) TestDumpAndLoadSingleBullet() {
	s.revolver.SpeedReload()

	s.Require().NoError(s.crupier.DumpAndLoadSingleBullet())

	s.Equal([]int{1, 2, 3, 4, 5}, s.revolver.EmptyChambers())
}

func (s *TableTestSuite) TestDumpAndLoadBulletsRandomly() {
	s.revolver.SpeedReload()
	active := s.revolver.Active()

	loaded, err := s.crupier.DumpAndLoadBulletsRandomly(2)
	s.Require().NoError(err)

	s.Len(loaded, 2)
	s.Equal(2, s.revolver.LiveCount())
	s.Equal(active, s.revolver.Active())
}

func (s *TableTestSuite) TestPrepareRound() {
	s.revolver.SpeedReload()
	_ = s.revolver.PullTrigger()

	setup, err := s.crupier.PrepareRound(3)
	s.Require().NoError(err)

	s.Len(setup.Loaded, 3)
	s.Equal(3, s.revolver.LiveCount())
	s.Len(s.revolver.EmptyChambers(), 3)
	s.GreaterOrEqual(setup.Steps, revolver.DefaultSpinMin)
	s.LessOrEqual(setup.Steps, revolver.DefaultSpinMax)
}

func (s *TableTestSuite) TestPlayerLives() {
	s.True(s.alice.IsAlive())

	s.alice.TakeDamage()
	s.alice.TakeDamage()
	s.Equal(1, s.alice.Lives())
	s.True(s.alice.IsAlive())

	s.alice.TakeDamage()
	s.False(s.alice.IsAlive())

	s.alice.TakeDamage()
	s.Equal(-1, s.alice.Lives())

	s.bob.Eliminate()
	s.Equal(0, s.bob.Lives())
	s.False(s.bob.IsAlive())
}

func (s *TableTestSuite) TestFireWithoutRevolver() {
	_, err := s.alice.FireAtSelf()
	s.ErrorIs(err, ErrNoRevolverHeld)
	s.ErrorIs(err, ErrNotHeld)

	_, err = s.alice.FireAtOpponent(s.bob)
	s.ErrorIs(err, ErrNoRevolverHeld)

	s.Equal(3, s.alice.Lives())
	s.Equal(3, s.bob.Lives())
}

func (s *TableTestSuite) TestFireAtSelf() {
	s.Require().NoError(s.revolver.Restore(revolver.Snapshot{
		Chambers: [revolver.Chambers]revolver.Chamber{revolver.ChamberEmpty, revolver.ChamberLive},
	}))
	s.Require().NoError(s.crupier.GiveRevolverTo(s.alice))

	shot, err := s.alice.FireAtSelf()
	s.Require().NoError(err)
	s.True(shot.Fired)
	s.Equal(2, s.alice.Lives())
	s.Equal(3, s.bob.Lives())

	shot, err = s.alice.FireAtSelf()
	s.Require().NoError(err)
	s.False(shot.Fired)
	s.Equal(2, s.alice.Lives())
}

func (s *TableTestSuite) TestFireAtOpponent() {
	s.revolver.SpeedReload()
	s.Require().NoError(s.crupier.GiveRevolverTo(s.bob))

	shot, err := s.bob.FireAtOpponent(s.alice)
	s.Require().NoError(err)
	s.True(shot.Fired)
	s.Equal(2, s.alice.Lives())
	s.Equal(3, s.bob.Lives())

	_, err = s.bob.FireAtOpponent(nil)
	s.ErrorIs(err, ErrNilHolder)
}

func (s *TableTestSuite) TestSeatedAt() {
	s.True(s.alice.SeatedAt(s.crupier))
	s.False(s.alice.SeatedAt(nil))

	other, err := NewCrupier(s.revolver)
	s.Require().NoError(err)
	s.False(s.alice.SeatedAt(other))
}
