package database

import (
	"context"
	"errors"
	"fmt"

	"sightstory/internal/interfaces"
	"sightstory/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

var _ interfaces.UserRepository = (*pgUserRepository)(nil)

type pgUserRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgUserRepository creates a PostgreSQL-backed UserRepository.
func NewPgUserRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.UserRepository {
	return &pgUserRepository{
		db:     db,
		logger: logger.Named("PgUserRepo"),
	}
}

const userFields = `id, username, display_name, email, password_hash, roles, is_banned, created_at, updated_at`

func (r *pgUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if len(user.Roles) == 0 {
		user.Roles = []string{models.RoleUser}
	}
	query := `INSERT INTO users (username, email, password_hash, display_name, roles)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	logFields := []zap.Field{zap.String("username", user.Username), zap.String("email", user.Email)}
	r.logger.Debug("Creating user", logFields...)

	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.DisplayName, user.Roles).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				r.logger.Warn("Attempted to create duplicate user by email", logFields...)
				return models.ErrEmailAlreadyExists
			default:
				r.logger.Warn("Attempted to create duplicate user", append(logFields, zap.String("constraint", pgErr.ConstraintName))...)
				return models.ErrUserAlreadyExists
			}
		}
		r.logger.Error("Failed to create user in postgres", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to create user in postgres: %w", err)
	}
	r.logger.Info("User created", zap.String("userID", user.ID.String()), zap.String("username", user.Username))
	return nil
}

func (r *pgUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userFields+` FROM users WHERE username = $1`, zap.String("username", username), username)
}

func (r *pgUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userFields+` FROM users WHERE email = $1`, zap.String("email", email), email)
}

func (r *pgUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userFields+` FROM users WHERE id = $1`, zap.String("userID", id.String()), id)
}

func (r *pgUserRepository) getOne(ctx context.Context, query string, field zap.Field, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.DisplayName, &user.Email, &user.PasswordHash,
		&user.Roles, &user.IsBanned, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("User not found", field)
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user from postgres", field, zap.Error(err))
		return nil, fmt.Errorf("failed to get user from postgres: %w", err)
	}
	return user, nil
}
