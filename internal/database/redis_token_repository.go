package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sightstory/internal/interfaces"
	"sightstory/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ interfaces.TokenRepository = (*redisTokenRepository)(nil)

type redisTokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisTokenRepository creates a Redis-backed TokenRepository.
//
// Each issued pair is stored as two keys, access_uuid:{uuid} and
// refresh_uuid:{uuid}, both holding the user id, plus a per-user set
// user_tokens:{userID} of "access:{uuid}" / "refresh:{uuid}" identifiers.
func NewRedisTokenRepository(client *redis.Client, logger *zap.Logger) interfaces.TokenRepository {
	return &redisTokenRepository{
		client: client,
		logger: logger.Named("RedisTokenRepo"),
	}
}

func accessKey(id string) string { return "access_uuid:" + id }
func refreshKey(id string) string { return "refresh_uuid:" + id }
func userSetKey(id uuid.UUID) string { return "user_tokens:" + id.String() }

func (r *redisTokenRepository) SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error {
	now := time.Now()
	accessTTL := time.Unix(td.AtExpires, 0).Sub(now)
	refreshTTL := time.Unix(td.RtExpires, 0).Sub(now)
	userIDStr := userID.String()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, accessKey(td.AccessUUID), userIDStr, accessTTL)
	pipe.Set(ctx, refreshKey(td.RefreshUUID), userIDStr, refreshTTL)
	pipe.SAdd(ctx, userSetKey(userID), "access:"+td.AccessUUID, "refresh:"+td.RefreshUUID)
	// The set outlives every token it lists.
	pipe.Expire(ctx, userSetKey(userID), refreshTTL)

	r.logger.Debug("Storing tokens",
		zap.String("userID", userIDStr),
		zap.String("accessUUID", td.AccessUUID),
		zap.String("refreshUUID", td.RefreshUUID),
		zap.Duration("accessTTL", accessTTL),
		zap.Duration("refreshTTL", refreshTTL),
	)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to store tokens in redis", zap.Error(err), zap.String("userID", userIDStr))
		return fmt.Errorf("failed to set token details in redis: %w", err)
	}
	return nil
}

func (r *redisTokenRepository) DeleteTokens(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) (int64, error) {
	var (
		keys        []string
		identifiers []any
	)
	logFields := []zap.Field{zap.String("userID", userID.String())}
	if accessUUID != "" {
		keys = append(keys, accessKey(accessUUID))
		identifiers = append(identifiers, "access:"+accessUUID)
		logFields = append(logFields, zap.String("accessUUID", accessUUID))
	}
	if refreshUUID != "" {
		keys = append(keys, refreshKey(refreshUUID))
		identifiers = append(identifiers, "refresh:"+refreshUUID)
		logFields = append(logFields, zap.String("refreshUUID", refreshUUID))
	}
	if len(keys) == 0 {
		r.logger.Warn("DeleteTokens called with no UUIDs", logFields...)
		return 0, nil
	}

	pipe := r.client.TxPipeline()
	delCmd := pipe.Del(ctx, keys...)
	pipe.SRem(ctx, userSetKey(userID), identifiers...)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to delete tokens", append(logFields, zap.Error(err))...)
		return 0, fmt.Errorf("failed to delete tokens: %w", err)
	}

	deleted := delCmd.Val()
	r.logger.Info("Tokens deleted", append(logFields, zap.Int64("deletedCount", deleted))...)
	return deleted, nil
}

func (r *redisTokenRepository) GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error) {
	return r.lookup(ctx, accessKey(accessUUID))
}

func (r *redisTokenRepository) GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error) {
	return r.lookup(ctx, refreshKey(refreshUUID))
}

func (r *redisTokenRepository) lookup(ctx context.Context, key string) (uuid.UUID, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Token not found in redis", zap.String("key", key))
			return uuid.Nil, models.ErrTokenNotFound
		}
		r.logger.Error("Failed to get token from redis", zap.Error(err), zap.String("key", key))
		return uuid.Nil, fmt.Errorf("failed to get token from redis: %w", err)
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		r.logger.Error("Corrupted user id stored for token", zap.String("key", key), zap.String("value", value))
		return uuid.Nil, fmt.Errorf("corrupted user id for %s: %w", key, err)
	}
	return userID, nil
}

func (r *redisTokenRepository) DeleteTokensByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	log := r.logger.With(zap.String("userID", userID.String()))
	setKey := userSetKey(userID)

	identifiers, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Error("Failed to read user token set", zap.Error(err))
		return 0, fmt.Errorf("failed to read token set for user %s: %w", userID, err)
	}

	keys := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		kind, id, ok := strings.Cut(identifier, ":")
		if !ok {
			log.Warn("Malformed token identifier in user set", zap.String("identifier", identifier))
			continue
		}
		switch kind {
		case "access":
			keys = append(keys, accessKey(id))
		case "refresh":
			keys = append(keys, refreshKey(id))
		default:
			log.Warn("Unknown token kind in user set", zap.String("identifier", identifier))
		}
	}

	pipe := r.client.TxPipeline()
	var delCmd *redis.IntCmd
	if len(keys) > 0 {
		delCmd = pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, setKey)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error("Failed to delete user tokens", zap.Error(err))
		return 0, fmt.Errorf("failed to delete tokens for user %s: %w", userID, err)
	}

	var deleted int64
	if delCmd != nil {
		deleted = delCmd.Val()
	}
	log.Info("Deleted all user tokens", zap.Int64("deletedTokenKeys", deleted), zap.Int("identifiers", len(identifiers)))
	return deleted, nil
}
