package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
	factories map[RepositoryName]RepositoryFactory
	built     int
}

type fakeRepo struct {
	db DBTX
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) SetupTest() {
	s.built = 0
	s.factories = map[RepositoryName]RepositoryFactory{
		"fake": func(db DBTX) Repository {
			s.built++
			return &fakeRepo{db: db}
		},
	}
}

func (s *TransactionTestSuite) TestGetReusesRepository() {
	tx := NewTransaction(nil, s.factories)

	first, err := tx.Get("fake")
	s.Require().NoError(err)
	second, err := tx.Get("fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, s.built)
}

func (s *TransactionTestSuite) TestGetAs() {
	tx := NewTransaction(nil, s.factories)

	repo, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetAs[*fakeRepo](tx, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)

	_, err = GetAs[string](tx, "fake")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)
}

func (s *TransactionTestSuite) TestRegister() {
	u := NewUnitOfWork(nil)

	s.Require().NoError(u.Register("fake", s.factories["fake"]))
	s.Require().ErrorIs(u.Register("fake", s.factories["fake"]), ErrRepositoryAlreadyRegistered)
	s.Require().ErrorIs(u.Register("nil", nil), ErrNilFactory)

	_, err := GetRepositoryAs[*fakeRepo](u, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}
