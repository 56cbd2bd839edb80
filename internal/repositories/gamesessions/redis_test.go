package gamesessions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	ctx        context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) newSession(id string, status entities.SessionStatus) (*entities.Session, []byte) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sess := &entities.Session{
		ID:         id,
		Name:       "Crypt of Ash",
		RealmID:    "realm-1",
		ChannelID:  "channel-1",
		CreatorID:  "dm-1",
		DMID:       "dm-1",
		Status:     status,
		Difficulty: entities.DifficultyHard,
		Members: map[string]*entities.SessionMember{
			"dm-1": {UserID: "dm-1", Role: entities.SessionRoleDM, JoinedAt: now, IsActive: true},
		},
		CreatedAt:  now,
		LastActive: now,
	}
	data, err := json.Marshal(sess)
	s.Require().NoError(err)
	return sess, data
}

func (s *RedisRepoTestSuite) TestCreate() {
	sess, data := s.newSession("sess-1", entities.SessionStatusPlanning)

	s.mock.ExpectSetNX("session:sess-1", data, sessionTTL).SetVal(true)
	s.mock.ExpectSAdd("realm:realm-1:sessions", "sess-1").SetVal(1)

	s.NoError(s.repo.Create(s.ctx, sess))
}

func (s *RedisRepoTestSuite) TestCreateDuplicate() {
	sess, data := s.newSession("sess-1", entities.SessionStatusPlanning)

	s.mock.ExpectSetNX("session:sess-1", data, sessionTTL).SetVal(false)

	err := s.repo.Create(s.ctx, sess)
	s.Error(err)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateValidation() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.Error(s.repo.Create(s.ctx, &entities.Session{}))
}

func (s *RedisRepoTestSuite) TestGet() {
	sess, data := s.newSession("sess-1", entities.SessionStatusActive)

	s.mock.ExpectGet("session:sess-1").SetVal(string(data))

	got, err := s.repo.Get(s.ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(sess.ID, got.ID)
	s.Equal(entities.DifficultyHard, got.Difficulty)
	s.True(got.IsDM("dm-1"))
}

func (s *RedisRepoTestSuite) TestGetMissing() {
	s.mock.ExpectGet("session:nope").RedisNil()

	_, err := s.repo.Get(s.ctx, "nope")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetRedisError() {
	s.mock.ExpectGet("session:sess-1").SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(s.ctx, "sess-1")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	sess, data := s.newSession("sess-1", entities.SessionStatusActive)

	s.mock.ExpectSetXX("session:sess-1", data, sessionTTL).SetVal(true)
	s.NoError(s.repo.Update(s.ctx, sess))

	s.mock.ExpectSetXX("session:sess-1", data, sessionTTL).SetVal(false)
	s.True(dnderr.IsNotFound(s.repo.Update(s.ctx, sess)))
}

func (s *RedisRepoTestSuite) TestDelete() {
	_, data := s.newSession("sess-1", entities.SessionStatusActive)

	s.mock.ExpectGet("session:sess-1").SetVal(string(data))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("session:sess-1").SetVal(1)
	s.mock.ExpectSRem("realm:realm-1:sessions", "sess-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(s.ctx, "sess-1"))
}

func (s *RedisRepoTestSuite) TestGetActiveByRealm() {
	_, active := s.newSession("sess-1", entities.SessionStatusActive)
	_, ended := s.newSession("sess-2", entities.SessionStatusEnded)

	s.mock.ExpectSMembers("realm:realm-1:sessions").SetVal([]string{"sess-1", "sess-2", "sess-3"})
	s.mock.ExpectMGet("session:sess-1", "session:sess-2", "session:sess-3").
		SetVal([]interface{}{string(active), string(ended), nil})

	sessions, err := s.repo.GetActiveByRealm(s.ctx, "realm-1")
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal("sess-1", sessions[0].ID)
}

func (s *RedisRepoTestSuite) TestGetByRealmEmpty() {
	s.mock.ExpectSMembers("realm:realm-2:sessions").SetVal([]string{})

	sessions, err := s.repo.GetByRealm(s.ctx, "realm-2")
	s.NoError(err)
	s.Empty(sessions)
}
