package session_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/smkun/MarvelPowers/internal/errors"
	redisclient "github.com/smkun/MarvelPowers/internal/redis"
	"github.com/smkun/MarvelPowers/internal/repositories/session"
	"github.com/smkun/MarvelPowers/internal/testutils"
)

type RepairTestSuite struct {
	suite.Suite
	ctx    context.Context
	client redisclient.Client
	mr     *miniredis.Miniredis
}

func (s *RepairTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())

	s.Require().NoError(s.mr.Set("test:session:Thor", `{"hero_name":"Thor","selected_powers":["Flight"]}`))
	s.Require().NoError(s.mr.Set("test:session:Storm", `{"hero_name":"Storm"}`))
	s.Require().NoError(s.mr.Set("test:session:broken", `not json`))
	_, err := s.mr.SAdd("test:sessions", "Thor", "broken", "Ghost")
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set("other:session:Thor", `not json`))
}

func (s *RepairTestSuite) TestReportOnly() {
	out, err := session.Repair(s.ctx, &session.RepairInput{
		Client:    s.client,
		KeyPrefix: testPrefix,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Checked)
	s.Equal([]string{"broken"}, out.Corrupted)
	s.Equal([]string{"Ghost"}, out.Dangling)
	s.Equal([]string{"Storm"}, out.Unindexed)

	s.True(s.mr.Exists("test:session:broken"))
	members, err := s.mr.Members("test:sessions")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Thor", "broken", "Ghost"}, members)
}

func (s *RepairTestSuite) TestFix() {
	_, err := session.Repair(s.ctx, &session.RepairInput{
		Client:    s.client,
		KeyPrefix: testPrefix,
		Fix:       true,
	})
	s.Require().NoError(err)

	s.False(s.mr.Exists("test:session:broken"))
	s.True(s.mr.Exists("other:session:Thor"))
	members, err := s.mr.Members("test:sessions")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Storm", "Thor"}, members)

	out, err := session.Repair(s.ctx, &session.RepairInput{
		Client:    s.client,
		KeyPrefix: testPrefix,
	})
	s.Require().NoError(err)
	s.Empty(out.Corrupted)
	s.Empty(out.Dangling)
	s.Empty(out.Unindexed)
}

func (s *RepairTestSuite) TestErrors() {
	s.Run("nil client", func() {
		_, err := session.Repair(s.ctx, &session.RepairInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("server error", func() {
		s.mr.SetError("READONLY server down")
		defer s.mr.SetError("")
		_, err := session.Repair(s.ctx, &session.RepairInput{Client: s.client, KeyPrefix: testPrefix})
		s.True(errors.IsIO(err))
		s.Equal(errors.KindPersistence, errors.GetKind(err))
	})
}

func TestRepairTestSuite(t *testing.T) {
	suite.Run(t, new(RepairTestSuite))
}
