package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"sightstory/internal/config"
	"sightstory/internal/interfaces"
	"sightstory/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer       = "sightstory"
	minPasswordLength = 8
	maxUsernameLength = 64
)

var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	userRepo  interfaces.UserRepository
	tokenRepo interfaces.TokenRepository
	cfg       *config.Config
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService creates the JWT/bcrypt backed AuthService.
func NewAuthService(userRepo interfaces.UserRepository, tokenRepo interfaces.TokenRepository, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
		logger:    logger.Named("AuthService"),
		now:       time.Now,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	logFields := []zap.Field{zap.String("username", username), zap.String("email", email)}

	if username == "" || len(username) > maxUsernameLength {
		return nil, fmt.Errorf("username must be 1-%d characters: %w", maxUsernameLength, models.ErrInvalidInput)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		s.logger.Warn("Registration attempt with invalid email", logFields...)
		return nil, fmt.Errorf("invalid email format: %w", models.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, models.ErrInvalidInput)
	}

	hashed, err := hashPassword(password, s.cfg.PasswordPepper)
	if err != nil {
		s.logger.Error("Failed to hash password", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		DisplayName:  username,
		Email:        email,
		PasswordHash: hashed,
		Roles:        []string{models.RoleUser},
	}
	// Uniqueness is enforced by the users table constraints.
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	registrationsTotal.Inc()
	s.logger.Info("User registered", zap.String("userID", user.ID.String()), zap.String("username", username))
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.TokenDetails, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			s.logger.Warn("Login failed: user not found", zap.String("username", username))
			loginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPasswordHash(password, user.PasswordHash, s.cfg.PasswordPepper) {
		s.logger.Warn("Login failed: wrong password", zap.String("userID", user.ID.String()))
		loginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, models.ErrInvalidCredentials
	}
	if user.IsBanned {
		s.logger.Warn("Login failed: user is banned", zap.String("userID", user.ID.String()))
		loginsTotal.WithLabelValues("banned").Inc()
		return nil, models.ErrUserBanned
	}

	td, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	loginsTotal.WithLabelValues("success").Inc()
	s.logger.Info("User logged in", zap.String("userID", user.ID.String()))
	return td, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshToken string) error {
	var refreshUUID string
	if refreshToken != "" {
		claims, err := s.parseToken(refreshToken)
		if err != nil && !errors.Is(err, models.ErrTokenExpired) {
			s.logger.Warn("Ignoring unusable refresh token on logout", zap.String("userID", userID.String()), zap.Error(err))
			claims = nil
		}
		if claims != nil && claims.UserID == userID {
			refreshUUID = claims.ID
		}
	}

	deleted, err := s.tokenRepo.DeleteTokens(ctx, userID, accessUUID, refreshUUID)
	if err != nil {
		// Tokens may already be gone; logout still succeeds for the client.
		s.logger.Error("Failed to delete tokens during logout", zap.String("userID", userID.String()), zap.Error(err))
		return nil
	}
	s.logger.Info("User logged out", zap.String("userID", userID.String()), zap.Int64("deletedCount", deleted))
	return nil
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, err
	}

	storedUserID, err := s.tokenRepo.GetUserIDByRefreshUUID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, models.ErrTokenNotFound) {
			s.logger.Warn("Refresh with revoked token", zap.String("refreshUUID", claims.ID))
			return nil, models.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if storedUserID != claims.UserID {
		s.logger.Error("Refresh token user mismatch",
			zap.String("tokenUserID", claims.UserID.String()),
			zap.String("storedUserID", storedUserID.String()))
		return nil, models.ErrTokenInvalid
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}
	if user.IsBanned {
		return nil, models.ErrUserBanned
	}

	if _, err := s.tokenRepo.DeleteTokens(ctx, user.ID, "", claims.ID); err != nil {
		s.logger.Error("Failed to delete old refresh token", zap.String("refreshUUID", claims.ID), zap.Error(err))
	}
	td, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshesTotal.Inc()
	return td, nil
}

func (s *authServiceImpl) VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if _, err := s.tokenRepo.GetUserIDByAccessUUID(ctx, claims.ID); err != nil {
		if errors.Is(err, models.ErrTokenNotFound) {
			s.logger.Debug("Access token revoked or unknown", zap.String("accessUUID", claims.ID))
			return nil, models.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to check access token: %w", err)
	}
	return claims, nil
}

func (s *authServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// parseToken checks signature and expiry and maps jwt errors to model errors.
func (s *authServiceImpl) parseToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return claims, models.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, models.ErrTokenMalformed
	default:
		s.logger.Debug("Token rejected", zap.Error(err))
		return nil, models.ErrTokenInvalid
	}
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*models.TokenDetails, error) {
	now := s.now()
	td := &models.TokenDetails{
		AccessUUID:  uuid.NewString(),
		RefreshUUID: uuid.NewString(),
		AtExpires:   now.Add(s.cfg.AccessTokenTTL).Unix(),
		RtExpires:   now.Add(s.cfg.RefreshTokenTTL).Unix(),
	}

	var err error
	if td.AccessToken, err = s.sign(user, td.AccessUUID, now, td.AtExpires); err != nil {
		return nil, err
	}
	if td.RefreshToken, err = s.sign(user, td.RefreshUUID, now, td.RtExpires); err != nil {
		return nil, err
	}
	if err := s.tokenRepo.SetToken(ctx, user.ID, td); err != nil {
		return nil, fmt.Errorf("failed to save token details: %w", err)
	}
	return td, nil
}

func (s *authServiceImpl) sign(user *models.User, tokenUUID string, issuedAt time.Time, expires int64) (string, error) {
	claims := &models.Claims{
		UserID: user.ID,
		Roles:  user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenUUID,
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(time.Unix(expires, 0)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.Error("Failed to sign token", zap.String("userID", user.ID.String()), zap.Error(err))
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// applyPepper mixes the server-side pepper into the password with HMAC-SHA256
// so bcrypt never sees more than 72 bytes.
func applyPepper(password, pepper string) []byte {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

func hashPassword(password, pepper string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(applyPepper(password, pepper), bcrypt.DefaultCost)
	return string(b), err
}

func checkPasswordHash(password, hash, pepper string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), applyPepper(password, pepper)) == nil
}
