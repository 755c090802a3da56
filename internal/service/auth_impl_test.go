package service_test

import (
	"context"
	"testing"
	"time"

	"sightstory/internal/config"
	"sightstory/internal/mocks"
	"sightstory/internal/models"
	"sightstory/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-jwt-secret",
		PasswordPepper:  "test-pepper",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

type authFixture struct {
	users  *mocks.UserRepository
	tokens *mocks.TokenRepository
	svc    service.AuthService
	cfg    *config.Config
}

func newAuthFixture(t *testing.T, cfg *config.Config) *authFixture {
	t.Helper()
	f := &authFixture{users: new(mocks.UserRepository), tokens: new(mocks.TokenRepository), cfg: cfg}
	f.svc = service.NewAuthService(f.users, f.tokens, cfg, zap.NewNop())
	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.tokens.AssertExpectations(t)
	})
	return f
}

// register runs Register against the mock and returns the stored user.
func (f *authFixture) register(t *testing.T, username, password string) *models.User {
	t.Helper()
	var stored *models.User
	f.users.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.User)
			stored.ID = uuid.New()
		}).Return(nil).Once()

	_, err := f.svc.Register(context.Background(), username, username+"@example.com", password)
	require.NoError(t, err)
	return stored
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	user := f.register(t, "teacher", "correct-horse")

	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.Equal(t, []string{models.RoleUser}, user.Roles)
	assert.Equal(t, "teacher@example.com", user.Email)
}

func TestRegister_RejectsBadInput(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	ctx := context.Background()

	_, err := f.svc.Register(ctx, "teacher", "not-an-email", "correct-horse")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = f.svc.Register(ctx, "teacher", "Name <teacher@example.com>", "correct-horse")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = f.svc.Register(ctx, "teacher", "teacher@example.com", "short")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = f.svc.Register(ctx, "  ", "teacher@example.com", "correct-horse")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestRegister_PropagatesConflicts(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	f.users.On("CreateUser", mock.Anything, mock.Anything).Return(models.ErrEmailAlreadyExists).Once()

	_, err := f.svc.Register(context.Background(), "teacher", "teacher@example.com", "correct-horse")
	assert.ErrorIs(t, err, models.ErrEmailAlreadyExists)
}

func TestLogin_VerifyAndRefresh(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	ctx := context.Background()
	user := f.register(t, "parent", "correct-horse")

	f.users.On("GetUserByUsername", mock.Anything, "parent").Return(user, nil)
	f.tokens.On("SetToken", mock.Anything, user.ID, mock.AnythingOfType("*models.TokenDetails")).Return(nil)

	td, err := f.svc.Login(ctx, "parent", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, td.AccessToken)
	require.NotEqual(t, td.AccessUUID, td.RefreshUUID)

	f.tokens.On("GetUserIDByAccessUUID", mock.Anything, td.AccessUUID).Return(user.ID, nil)
	claims, err := f.svc.VerifyAccessToken(ctx, td.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, td.AccessUUID, claims.ID)

	f.tokens.On("GetUserIDByRefreshUUID", mock.Anything, td.RefreshUUID).Return(user.ID, nil)
	f.users.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	f.tokens.On("DeleteTokens", mock.Anything, user.ID, "", td.RefreshUUID).Return(int64(1), nil).Once()

	next, err := f.svc.Refresh(ctx, td.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, td.RefreshUUID, next.RefreshUUID)
}

func TestLogin_Failures(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	ctx := context.Background()
	user := f.register(t, "parent", "correct-horse")

	f.users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound)
	_, err := f.svc.Login(ctx, "ghost", "whatever1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	f.users.On("GetUserByUsername", mock.Anything, "parent").Return(user, nil).Once()
	_, err = f.svc.Login(ctx, "parent", "wrong-password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	banned := *user
	banned.IsBanned = true
	f.users.On("GetUserByUsername", mock.Anything, "parent").Return(&banned, nil).Once()
	_, err = f.svc.Login(ctx, "parent", "correct-horse")
	assert.ErrorIs(t, err, models.ErrUserBanned)
}

func TestVerifyAccessToken_Rejections(t *testing.T) {
	cfg := testAuthConfig()
	f := newAuthFixture(t, cfg)
	ctx := context.Background()

	_, err := f.svc.VerifyAccessToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, models.ErrTokenMalformed)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "sightstory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	_, err = f.svc.VerifyAccessToken(ctx, signed)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestVerifyAccessToken_RevokedAndExpired(t *testing.T) {
	cfg := testAuthConfig()
	cfg.AccessTokenTTL = -time.Minute
	f := newAuthFixture(t, cfg)
	ctx := context.Background()
	user := f.register(t, "parent", "correct-horse")

	f.users.On("GetUserByUsername", mock.Anything, "parent").Return(user, nil)
	f.tokens.On("SetToken", mock.Anything, user.ID, mock.Anything).Return(nil)
	td, err := f.svc.Login(ctx, "parent", "correct-horse")
	require.NoError(t, err)

	_, err = f.svc.VerifyAccessToken(ctx, td.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenExpired)

	f.tokens.On("GetUserIDByRefreshUUID", mock.Anything, td.RefreshUUID).Return(uuid.Nil, models.ErrTokenNotFound)
	_, err = f.svc.Refresh(ctx, td.RefreshToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestLogout_RevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	ctx := context.Background()
	user := f.register(t, "parent", "correct-horse")

	f.users.On("GetUserByUsername", mock.Anything, "parent").Return(user, nil)
	f.tokens.On("SetToken", mock.Anything, user.ID, mock.Anything).Return(nil)
	td, err := f.svc.Login(ctx, "parent", "correct-horse")
	require.NoError(t, err)

	f.tokens.On("DeleteTokens", mock.Anything, user.ID, td.AccessUUID, td.RefreshUUID).Return(int64(2), nil).Once()
	require.NoError(t, f.svc.Logout(ctx, user.ID, td.AccessUUID, td.RefreshToken))

	f.tokens.On("DeleteTokens", mock.Anything, user.ID, "access-only", "").Return(int64(1), nil).Once()
	require.NoError(t, f.svc.Logout(ctx, user.ID, "access-only", "garbage"))
}
