package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sightstory/internal/database"
	"sightstory/internal/interfaces"
	"sightstory/internal/models"

	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type RepositorySuite struct {
	suite.Suite
	ctx         context.Context
	logger      *zap.Logger
	pgContainer *postgres.PostgresContainer
	rdContainer *tcredis.RedisContainer
	pool        *pgxpool.Pool
	redisClient *redis.Client

	users  interfaces.UserRepository
	tokens interfaces.TokenRepository
	story  interfaces.StoryRepository
	usage  interfaces.UsageRepository
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		t.Skipf("docker client unavailable: %v", err)
	}
	if _, err := cli.Ping(context.Background()); err != nil {
		cli.Close()
		t.Skipf("docker daemon unavailable: %v", err)
	}
	cli.Close()

	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = zap.NewNop()
	var err error

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("sightstory_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute),
		),
	)
	s.Require().NoError(err, "start postgres container")

	dsn, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(database.ApplyMigrations(dsn, s.logger))
	// A second run must be a no-op.
	s.Require().NoError(database.ApplyMigrations(dsn, s.logger))

	s.pool, err = pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)

	s.rdContainer, err = tcredis.Run(s.ctx, "docker.io/redis:7-alpine")
	s.Require().NoError(err, "start redis container")
	host, err := s.rdContainer.Host(s.ctx)
	s.Require().NoError(err)
	port, err := s.rdContainer.MappedPort(s.ctx, "6379/tcp")
	s.Require().NoError(err)
	s.redisClient = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	s.Require().NoError(s.redisClient.Ping(s.ctx).Err())

	s.users = database.NewPgUserRepository(s.pool, s.logger)
	s.tokens = database.NewRedisTokenRepository(s.redisClient, s.logger)
	s.story = database.NewPgStoryRepository(s.pool, s.logger)
	s.usage = database.NewPgUsageRepository(s.pool, s.logger)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
	if s.rdContainer != nil {
		_ = s.rdContainer.Terminate(s.ctx)
	}
}

func (s *RepositorySuite) SetupTest() {
	s.Require().NoError(s.redisClient.FlushDB(s.ctx).Err())
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE usage_events, saved_stories, users RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
}

func (s *RepositorySuite) newUser(name string) *models.User {
	u := &models.User{Username: name, Email: name + "@example.com", PasswordHash: "hash", DisplayName: name}
	s.Require().NoError(s.users.CreateUser(s.ctx, u))
	return u
}

func (s *RepositorySuite) TestUsers_CreateAndConflicts() {
	u := s.newUser("teacher1")
	s.NotEqual(uuid.Nil, u.ID)
	s.Equal([]string{models.RoleUser}, u.Roles)

	got, err := s.users.GetUserByUsername(s.ctx, "teacher1")
	s.Require().NoError(err)
	s.Equal(u.ID, got.ID)
	s.Equal("hash", got.PasswordHash)

	got, err = s.users.GetUserByEmail(s.ctx, "teacher1@example.com")
	s.Require().NoError(err)
	s.Equal(u.ID, got.ID)

	err = s.users.CreateUser(s.ctx, &models.User{Username: "teacher1", Email: "other@example.com", PasswordHash: "x"})
	s.ErrorIs(err, models.ErrUserAlreadyExists)

	err = s.users.CreateUser(s.ctx, &models.User{Username: "other", Email: "teacher1@example.com", PasswordHash: "x"})
	s.ErrorIs(err, models.ErrEmailAlreadyExists)

	_, err = s.users.GetUserByID(s.ctx, uuid.New())
	s.ErrorIs(err, models.ErrUserNotFound)
}

func (s *RepositorySuite) TestTokens_Lifecycle() {
	userID := uuid.New()
	now := time.Now()
	td := &models.TokenDetails{
		AccessUUID:  uuid.NewString(),
		RefreshUUID: uuid.NewString(),
		AtExpires:   now.Add(time.Minute).Unix(),
		RtExpires:   now.Add(time.Hour).Unix(),
	}
	s.Require().NoError(s.tokens.SetToken(s.ctx, userID, td))

	got, err := s.tokens.GetUserIDByAccessUUID(s.ctx, td.AccessUUID)
	s.Require().NoError(err)
	s.Equal(userID, got)

	deleted, err := s.tokens.DeleteTokens(s.ctx, userID, td.AccessUUID, "")
	s.Require().NoError(err)
	s.EqualValues(1, deleted)
	_, err = s.tokens.GetUserIDByAccessUUID(s.ctx, td.AccessUUID)
	s.ErrorIs(err, models.ErrTokenNotFound)

	got, err = s.tokens.GetUserIDByRefreshUUID(s.ctx, td.RefreshUUID)
	s.Require().NoError(err)
	s.Equal(userID, got)

	deleted, err = s.tokens.DeleteTokensByUserID(s.ctx, userID)
	s.Require().NoError(err)
	s.EqualValues(1, deleted)
	_, err = s.tokens.GetUserIDByRefreshUUID(s.ctx, td.RefreshUUID)
	s.ErrorIs(err, models.ErrTokenNotFound)
}

func (s *RepositorySuite) saveStory(userID uuid.UUID, title string) *models.SavedStory {
	st := &models.SavedStory{
		UserID:           userID,
		Title:            title,
		ProtagonistName:  "Mia",
		Sentences:        []string{"Mia woke up.", "Mia went to sleep."},
		TargetWords:      []string{"up", "zebra"},
		UsedWords:        []string{"up"},
		TotalTargetWords: 2,
		CoveragePercent:  50,
		ScenesUsed:       []string{"wake-sunny-morning", "bedtime-story-sleep"},
	}
	s.Require().NoError(s.story.Create(s.ctx, st))
	return st
}

func (s *RepositorySuite) TestStories_CRUDAndOwnership() {
	owner := s.newUser("owner")
	other := s.newUser("other")
	saved := s.saveStory(owner.ID, "A Fun Day")

	got, err := s.story.GetByID(s.ctx, owner.ID, saved.ID)
	s.Require().NoError(err)
	s.Equal(saved.Sentences, got.Sentences)
	s.Equal(saved.ScenesUsed, got.ScenesUsed)
	s.Nil(got.ShareToken)

	_, err = s.story.GetByID(s.ctx, other.ID, saved.ID)
	s.ErrorIs(err, models.ErrStoryNotFound)
	s.ErrorIs(s.story.Delete(s.ctx, other.ID, saved.ID), models.ErrStoryNotFound)

	s.Require().NoError(s.story.Delete(s.ctx, owner.ID, saved.ID))
	_, err = s.story.GetByID(s.ctx, owner.ID, saved.ID)
	s.ErrorIs(err, models.ErrStoryNotFound)
}

func (s *RepositorySuite) TestStories_ListPagesNewestFirst() {
	owner := s.newUser("pager")
	var ids []uuid.UUID
	for i := range 5 {
		ids = append(ids, s.saveStory(owner.ID, fmt.Sprintf("Story %d", i)).ID)
	}

	first, err := s.story.ListByUser(s.ctx, owner.ID, time.Time{}, uuid.Nil, 3)
	s.Require().NoError(err)
	s.Require().Len(first, 3)
	s.Equal(ids[4], first[0].ID)

	last := first[len(first)-1]
	second, err := s.story.ListByUser(s.ctx, owner.ID, last.CreatedAt, last.ID, 3)
	s.Require().NoError(err)
	s.Require().Len(second, 2)
	s.Equal(ids[0], second[1].ID)
}

func (s *RepositorySuite) TestStories_ShareTokenIsStable() {
	owner := s.newUser("sharer")
	saved := s.saveStory(owner.ID, "A Day at the Park")

	token, err := s.story.SetShareToken(s.ctx, owner.ID, saved.ID, "first-token")
	s.Require().NoError(err)
	s.Equal("first-token", token)

	token, err = s.story.SetShareToken(s.ctx, owner.ID, saved.ID, "second-token")
	s.Require().NoError(err)
	s.Equal("first-token", token)

	shared, err := s.story.GetByShareToken(s.ctx, "first-token")
	s.Require().NoError(err)
	s.Equal(saved.ID, shared.ID)
	s.NotNil(shared.SharedAt)

	_, err = s.story.SetShareToken(s.ctx, uuid.New(), saved.ID, "x")
	s.ErrorIs(err, models.ErrStoryNotFound)
	_, err = s.story.GetByShareToken(s.ctx, "missing")
	s.ErrorIs(err, models.ErrStoryNotFound)
}

func (s *RepositorySuite) TestUsage_Summary() {
	u := s.newUser("counter")
	cov := func(v int) *int { return &v }
	events := []models.UsageEvent{
		{UserID: &u.ID, EventType: models.EventStoryComposed, WordCount: 4, CoveragePercent: cov(100)},
		{UserID: &u.ID, EventType: models.EventStoryComposed, WordCount: 6, CoveragePercent: cov(50)},
		{UserID: &u.ID, EventType: models.EventStorySaved},
	}
	for i := range events {
		s.Require().NoError(s.usage.Record(s.ctx, &events[i]))
		s.NotZero(events[i].ID)
	}

	summary, err := s.usage.Summary(s.ctx, u.ID)
	s.Require().NoError(err)
	s.EqualValues(2, summary.EventCounts[models.EventStoryComposed])
	s.EqualValues(1, summary.EventCounts[models.EventStorySaved])
	s.InDelta(75.0, summary.AverageCoverage, 0.001)
	s.EqualValues(10, summary.TotalWordsRequested)

	empty, err := s.usage.Summary(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.Empty(empty.EventCounts)
	s.Zero(empty.AverageCoverage)
}
